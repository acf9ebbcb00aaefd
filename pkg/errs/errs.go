package errs

import "errors"

// Err represents a custom error type with a message.
// Err is an expected error: its message is safe to show to a user
// and it should not be logged as a failure.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error is of custom Err type, including wrapped ones.
func IsExpected(err error) bool {
	var target *Err
	return errors.As(err, &target)
}
