package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound = "not found"

	// Uniqueness errors
	ErrMsgDuplicateName  = "name already exists"
	ErrMsgDuplicateEmail = "email already registered"

	// Reference errors
	ErrMsgInvalidReference = "referenced entity does not exist"
	ErrMsgStillReferenced  = "entity is still referenced"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgCouldNotConnect = "could not connect to database"
)

// Domain errors are distinct from storage failures so the dispatch layer can
// choose a client error over a server error.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrDuplicateName  = errors.New(ErrMsgDuplicateName)
	ErrDuplicateEmail = errors.New(ErrMsgDuplicateEmail)

	ErrInvalidReference = errors.New(ErrMsgInvalidReference)
	ErrStillReferenced  = errors.New(ErrMsgStillReferenced)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrCouldNotConnect is fatal: it aborts process startup.
	ErrCouldNotConnect = errors.New(ErrMsgCouldNotConnect)
)
