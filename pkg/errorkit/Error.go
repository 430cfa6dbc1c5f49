package errorkit

import "fmt"

// Error is a string based error, so sentinel errors can be declared as constants.
//
//	const ErrMissingStart errorkit.Error = "missing start expression"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches the cause to err.
// Both err and cause stay matchable with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &causedError{kind: err, cause: cause}
}

// F wraps err with a formatted cause, %w verbs are kept in the chain.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type causedError struct {
	kind  Error
	cause error
}

func (e *causedError) Error() string {
	return string(e.kind) + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}
