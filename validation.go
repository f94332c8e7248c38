// validation.go — the Validation result type and its constructors.
//
// Scope:
//   - A closed sum type with exactly two variants: Success and Failure.
//   - Value receivers only; nothing mutates a Validation after construction.
//   - Accessors for consuming the two variants from ordinary Go code.
//
// Notes:
//   - The variant is recorded explicitly (ok flag) so a Failure with an empty
//     message is still a Failure, and the zero value is never a Success.
//   - When A is comparable, Validation[A] is comparable too: == compares the
//     variant and its payload.
package validation

// Validation is the outcome of a fallible computation: either a Success
// holding a value of type A, or a Failure holding an error message.
type Validation[A any] struct {
	value A
	msg   string
	ok    bool
}

// Success returns a Validation holding value.
func Success[A any](value A) Validation[A] {
	return Validation[A]{value: value, ok: true}
}

// Failure returns a Validation holding the error message msg.
func Failure[A any](msg string) Validation[A] {
	return Validation[A]{msg: msg}
}

// IsSuccess reports whether v holds a value.
func (v Validation[A]) IsSuccess() bool { return v.ok }

// IsFailure reports whether v holds an error message.
func (v Validation[A]) IsFailure() bool { return !v.ok }

// Get returns the held value and true for a Success, or the zero value of A
// and false for a Failure.
func (v Validation[A]) Get() (A, bool) {
	if !v.ok {
		var zero A
		return zero, false
	}
	return v.value, true
}

// Message returns the error message of a Failure, or "" for a Success.
func (v Validation[A]) Message() string {
	if v.ok {
		return ""
	}
	return v.msg
}

// OrElse returns the held value, or fallback for a Failure.
func (v Validation[A]) OrElse(fallback A) A {
	if !v.ok {
		return fallback
	}
	return v.value
}

// Result converts v back into Go's (value, error) convention. A Failure
// yields the zero value and an *Error carrying the failure message, so the
// error can be fed back into Wrap without losing its classification.
func (v Validation[A]) Result() (A, error) {
	if !v.ok {
		var zero A
		return zero, NewError(v.msg)
	}
	return v.value, nil
}

// Fold consumes v by calling exactly one of the two handlers.
func Fold[A, B any](v Validation[A], onSuccess func(A) B, onFailure func(string) B) B {
	if v.ok {
		return onSuccess(v.value)
	}
	return onFailure(v.msg)
}
