// doc.go — package documentation for validation
//
// Package validation provides a tiny, two-variant result type for fallible
// computations. A Validation[A] is either a Success holding a value of type A
// or a Failure holding a human-readable message. It is designed to be:
//   - Value-based (no panics escape Map/FlatMap; failures are plain data)
//   - Immutable (every combinator returns a new value; share freely)
//   - Interoperable with Go errors (Wrap/FlatWrap in, Result out)
//
// # Construction
//
//	ok := validation.Success(42)
//	bad := validation.Failure[int]("age must be positive")
//
// The zero Validation is a Failure with an empty message.
//
// # Combinators
//
// Go methods cannot declare type parameters, so value-changing combinators are
// package functions:
//
//	age := validation.Map(raw, strings.TrimSpace)
//	n := validation.FlatMap(age, parseAge)
//	nested := validation.Flatten(validation.Success(n))
//
// Map and FlatMap recover ANY panic raised by their function argument and turn
// it into a Failure whose message names the input value, the target type and
// the fault:
//
//	"abc -> int:
//
//	strconv.Atoi: parsing "abc": invalid syntax"
//
// TryMap does the same for functions that return (B, error).
//
// # Bridging Errors
//
// Domain code signals an expected failure by returning an *Error (NewError,
// Errorf, WrapError). Wrap and FlatWrap turn such errors into Failures:
//
//	v, err := validation.Wrap(func() (User, error) { return repo.Load(id) })
//	if err != nil {
//	    return err // not a validation error: propagates untouched
//	}
//
// Catching breadth is deliberately asymmetric:
//
//	+--------------------+-------------------------+------------------------------+
//	| Operation          | Converted to Failure    | Escapes to the caller        |
//	+--------------------+-------------------------+------------------------------+
//	| Map / FlatMap      | any panic               | nothing                      |
//	| TryMap             | any panic, any error    | nothing                      |
//	| Wrap / FlatWrap    | *Error in the chain     | other errors, every panic    |
//	+--------------------+-------------------------+------------------------------+
//
// # Aggregation
//
// All, AllOf and AllSeq are fail-fast: they return every success value in
// input order, or the first Failure encountered. AllSeq stops pulling from its
// iterator at that point. AllSet works on sets (map[Validation[A]]struct{});
// since maps have no order, the reported failure is the one with the smallest
// message. Collect keeps going and joins every failure message with newlines.
//
// # Formatting
//
//   - `%v`, `%s` → Success(value=42) / Failure(error=age must be positive)
//   - `%+v`      → same, with the value type: Success[int](value=42)
//   - `%q`       → quoted concise form
//
// Validation implements slog.LogValuer, so it can be logged directly:
//
//	logger.Info("parsed", "age", v)
package validation
