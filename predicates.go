// predicates.go — classification helpers for errors crossing into Validation.
//
// Both helpers traverse the full cause chain, so an *Error wrapped by
// fmt.Errorf("%w") or errors.Wrap is still found.
package validation

import "github.com/cockroachdb/errors"

// IsError reports whether err is (or wraps) an *Error.
func IsError(err error) bool {
	if err == nil {
		return false
	}
	var verr *Error
	return errors.As(err, &verr)
}

// MessageOf returns the message of the first *Error in err's chain, which is
// the message Wrap would turn into a Failure.
func MessageOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr.msg, true
	}
	return "", false
}
