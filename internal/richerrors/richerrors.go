// Package richerrors provides an error type that carries an HTTP status
// code and a safe external message alongside the wrapped cause. Handlers
// and repositories return these; the fiber error handler maps them to
// responses without leaking internals.
package richerrors

// Error is an error with an associated HTTP status code and a message
// that is safe to return to the caller.
type Error struct {
	// Code is the HTTP status code to respond with.
	Code int
	// ExternalMsg is returned to the caller in place of the internal error.
	ExternalMsg string
	// Err is the underlying cause, logged but never sent to the caller.
	Err error
}

func (e Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.ExternalMsg
}

func (e Error) Unwrap() error {
	return e.Err
}
