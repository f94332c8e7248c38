// wrap.go — adapters from error-returning code into Validation.
//
// Catching discipline:
//   - Only errors whose chain contains an *Error become Failures.
//   - Any other error is returned as-is in the second result.
//   - Panics are NOT recovered here, unlike Map/FlatMap. Callers of Wrap and
//     FlatWrap must be prepared for non-validation faults to escape.
package validation

import "github.com/cockroachdb/errors"

// Wrap runs fn and lifts its result into a Validation. A nil error yields a
// Success. An error carrying an *Error yields a Failure with that *Error's
// message and a nil error. Any other error is returned unchanged.
func Wrap[A any](fn func() (A, error)) (Validation[A], error) {
	value, err := fn()
	if err == nil {
		return Success(value), nil
	}
	return fromError[A](err)
}

// FlatWrap is Wrap for functions that already return a Validation. A returned
// Failure is passed through; errors are handled exactly as in Wrap.
func FlatWrap[A any](fn func() (Validation[A], error)) (Validation[A], error) {
	value, err := fn()
	if err == nil {
		return Flatten(Success(value)), nil
	}
	return fromError[A](err)
}

func fromError[A any](err error) (Validation[A], error) {
	var verr *Error
	if errors.As(err, &verr) {
		return Failure[A](verr.Error()), nil
	}
	return Validation[A]{}, err
}
