package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections caps the pool when no override is configured
	DefaultMaxConnections = 10

	// DefaultMaxConnIdleTime recycles connections that sat unused
	DefaultMaxConnIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime bounds the age of any pooled connection
	DefaultMaxConnLifetime = 30 * time.Minute

	// MigrationsDir is the embedded directory containing goose migrations
	MigrationsDir = "migrations"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrationDB = "failed to open migration connection"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
