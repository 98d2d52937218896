package reservation

import "fmt"

// ValidationError reports malformed, missing or out-of-range input.
// Message is safe to show to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError is returned when the submitted admin password does not match.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "incorrect password"
}

// NotFoundError is returned when the reservation to delete does not exist.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reservation %d not found", e.ID)
}

// StorageError wraps a persistence failure. The cause is kept for logs and
// must not be sent to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
