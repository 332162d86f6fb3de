package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidID             = "Invalid id"
	ErrMsgNotFound              = "%s not found"
	ErrMsgDuplicateName         = "Name already exists"
	ErrMsgDuplicateEmail        = "Email already registered"
	ErrMsgStillReferenced       = "%s is still referenced by other records"
	ErrMsgInvalidReference      = "Referenced record does not exist"
	ErrMsgInvalidInput          = "Invalid input"
	ErrMsgUnavailable           = "Service is temporarily unavailable. Please try again later."
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgTooManyRequests       = "Too many requests. Please try again later."
	ErrMsgRequestTooLarge       = "Request body too large"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgDatabaseUnreachable  = "database connection failed"
)
