package player

// Rejection reasons used as metric labels
const (
	ReasonDuplicateName = "duplicate_name"
	ReasonNotFound      = "not_found"
)

// Log messages
const (
	LogMsgPlayerCreated = "Player created"
	LogMsgPlayerDeleted = "Player deleted"
	LogMsgDuplicateName = "Player name already taken"
)
