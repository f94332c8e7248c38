// combinators.go — Map, TryMap, FlatMap and Flatten.
//
// Fault handling:
//   - Map/FlatMap/TryMap never panic past this file: any panic raised by the
//     caller's function is recovered and reported as a Failure.
//   - The Failure message embeds the input value (%v), the target type name
//     (reflect.TypeFor) and the fault text, separated as
//     "<value> -> <type>:\n\n<fault>".
//   - A Failure input is passed through untouched; the function is not called.
package validation

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Map applies f to the value of a Success. A Failure is returned with the
// same message. If f panics, the panic is recovered and converted into a
// Failure describing the input value, the type B and the fault.
func Map[A, B any](v Validation[A], f func(A) B) (out Validation[B]) {
	if !v.ok {
		return Failure[B](v.msg)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[B](faultMessage[B](v.value, faultFromPanic(r)))
		}
	}()
	return Success(f(v.value))
}

// TryMap is Map for functions following Go's (value, error) convention: a
// non-nil error from f is converted into a Failure exactly like a panic is.
func TryMap[A, B any](v Validation[A], f func(A) (B, error)) (out Validation[B]) {
	if !v.ok {
		return Failure[B](v.msg)
	}
	defer func() {
		if r := recover(); r != nil {
			out = Failure[B](faultMessage[B](v.value, faultFromPanic(r)))
		}
	}()
	value, err := f(v.value)
	if err != nil {
		return Failure[B](faultMessage[B](v.value, err))
	}
	return Success(value)
}

// FlatMap applies a Validation-returning f to the value of a Success and
// flattens the result. It is Flatten(Map(v, f)), so a panic in f is
// reported the way Map reports it.
func FlatMap[A, B any](v Validation[A], f func(A) Validation[B]) Validation[B] {
	return Flatten(Map(v, f))
}

// Flatten collapses a nested Validation. An outer Failure always wins and the
// inner value is never inspected; otherwise the inner Validation is returned.
func Flatten[A any](v Validation[Validation[A]]) Validation[A] {
	if !v.ok {
		return Failure[A](v.msg)
	}
	return v.value
}

// faultMessage renders the diagnostic stored in a Failure produced from a
// fault raised while mapping value to B.
func faultMessage[B any](value any, fault error) string {
	return fmt.Sprintf("%v -> %s:\n\n%v", value, typeName[B](), fault)
}

// typeName returns a display name for B. Interface types such as error or any
// are named by their declared type rather than a dynamic one.
func typeName[B any]() string {
	return reflect.TypeFor[B]().String()
}

// faultFromPanic converts a recovered panic value into an error. Errors
// (including runtime.Error and *runtime.PanicNilError) are kept as-is.
func faultFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Newf("panic: %v", r)
}
