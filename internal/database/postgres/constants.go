package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation     = "23505"
	PgErrorCodeForeignKeyViolation = "23503"
	PgErrorCodeCheckViolation      = "23514"
	PgErrorCodeNotNullViolation    = "23502"
	PgErrorCodeStringTooLong       = "22001"
	PgErrorCodeNumericOutOfRange   = "22003"
)

// Constraint names referenced when translating unique violations
const (
	ConstraintPlayersName = "players_name_key"
	ConstraintUsersEmail  = "users_email_key"
)

// Repository operations, used as metric labels and in error messages
const (
	opGetByID    = "get_by_id"
	opGetAll     = "get_all"
	opGetByName  = "get_by_name"
	opGetByEmail = "get_by_email"
	opAdd        = "add"
	opUpdate     = "update"
	opDelete     = "delete"
)

// Error Messages
const (
	ErrMsgFailedToGet    = "failed to get"
	ErrMsgFailedToList   = "failed to list"
	ErrMsgFailedToInsert = "failed to insert"
	ErrMsgFailedToUpdate = "failed to update"
	ErrMsgFailedToDelete = "failed to delete"
	ErrMsgFailedToScan   = "failed to scan"
)
