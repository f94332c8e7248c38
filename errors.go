// errors.go — the domain error bridging error-returning code into Validation.
//
// An *Error means "this operation failed for a reason that should surface as
// a Failure", never a programming defect. Wrap/FlatWrap convert it; every
// other error is left alone.
//
// Interop:
//   - Error() returns the message only; the cause is reachable via Unwrap and
//     is rendered by %+v.
//   - errors.Is(err, ErrValidation) matches any *Error in the chain.
package validation

import "fmt"

// ErrValidation is the sentinel matched by every *Error through errors.Is.
var ErrValidation = &Error{msg: "validation failed"}

// Error is a validation failure expressed as a Go error: a message plus an
// optional underlying cause.
type Error struct {
	msg   string
	cause error
}

// NewError returns an *Error with the given message.
func NewError(msg string) error {
	return &Error{msg: msg}
}

// Errorf returns an *Error whose message is formatted with fmt.Sprintf.
// Verbs such as %w are not interpreted as wrapping; use WrapError for that.
func Errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// WrapError returns an *Error with message msg caused by cause.
func WrapError(cause error, msg string) error {
	return &Error{msg: msg, cause: cause}
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is ErrValidation, so every *Error classifies as a
// validation failure regardless of its message.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}
