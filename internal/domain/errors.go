package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound     = "user not found"
	ErrMsgProgressNotFound = "user progress not found"

	// Battle errors
	ErrMsgOpponentNotFound = "opponent not found in current roster"

	// Raid errors
	ErrMsgBossNotFound        = "boss not found"
	ErrMsgRaidNotFound        = "raid progress not found"
	ErrMsgRaidCompleted       = "raid already completed"
	ErrMsgAllBossesDefeated   = "all bosses defeated"
	ErrMsgNonPositiveDamage   = "damage must be positive"
	ErrMsgConcurrencyConflict = "progress row was modified concurrently"

	// Daily limit errors
	ErrMsgNoAttemptsRemaining = "no boss attempts remaining today"

	// Validation errors
	ErrMsgInvalidStats = "invalid battler stats"
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound     = errors.New(ErrMsgUserNotFound)
	ErrProgressNotFound = errors.New(ErrMsgProgressNotFound)

	// Battle errors
	ErrOpponentNotFound = errors.New(ErrMsgOpponentNotFound)

	// Raid errors
	ErrBossNotFound      = errors.New(ErrMsgBossNotFound)
	ErrRaidNotFound      = errors.New(ErrMsgRaidNotFound)
	ErrRaidCompleted     = errors.New(ErrMsgRaidCompleted)
	ErrAllBossesDefeated = errors.New(ErrMsgAllBossesDefeated)
	ErrNonPositiveDamage = errors.New(ErrMsgNonPositiveDamage)

	// ErrConcurrencyConflict signals an optimistic-lock failure. The caller
	// should reload the progress row and retry the delta computation.
	ErrConcurrencyConflict = errors.New(ErrMsgConcurrencyConflict)

	// Daily limit errors
	ErrNoAttemptsRemaining = errors.New(ErrMsgNoAttemptsRemaining)

	// Validation errors
	ErrInvalidStats = errors.New(ErrMsgInvalidStats)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
