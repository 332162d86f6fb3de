package user

// Rejection reasons used as metric labels
const (
	ReasonDuplicateEmail = "duplicate_email"
	ReasonNotFound       = "not_found"
)

// Log messages
const (
	LogMsgUserCreated    = "User created"
	LogMsgUserUpdated    = "User updated"
	LogMsgUserDeleted    = "User deleted"
	LogMsgDuplicateEmail = "Email already registered"
)

// Error messages
const (
	ErrMsgHashPasswordFailed = "failed to hash password"
	ErrMsgCheckEmailFailed   = "failed to check email"
	ErrMsgLoadUserFailed     = "failed to load user"
)
