package services

import "fmt"

// ValidationError rejects caller input before any side effect. Field names
// match the request payload so clients can surface per-field messages.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// AuthorizationError marks operations that need an authenticated identity.
// Submission and reporting allow anonymous callers, so today only admin-ish
// surfaces would return it.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StorageError wraps a failed persistence write. Read paths never produce it;
// they degrade to empty results instead.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
