package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Bootstrap retry defaults
const (
	DefaultConnectRetries = 5
	DefaultConnectDelay   = 5 * time.Second
)

// PostgreSQL error codes that mean the server cannot serve connections right now
const (
	PgClassConnectionException = "08"
	PgCodeAdminShutdown        = "57P01"
	PgCodeCrashShutdown        = "57P02"
	PgCodeCannotConnectNow     = "57P03"
	PgCodeTooManyConnections   = "53300"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgInitializationFailed    = "database initialization failed"
	ErrMsgInitializationAborted   = "database initialization aborted"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgConnectAttemptFailed            = "Database connection attempt failed"
	LogMsgRetryingConnection              = "Retrying database connection"
	LogMsgMigrationsApplied               = "Database migrations applied"
	LogMsgDatabaseClosed                  = "Database connection pool closed"
)

// Migration settings
const (
	migrationsDir = "migrations"
)
