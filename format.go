// format.go — fmt.Formatter implementations for Validation and *Error.
//
// Behavior:
//
//   %s, %v   → concise: Success(value=<v>) / Failure(error=<msg>)
//   %+v      → verbose: the value type is included, Success[int](value=1);
//              for *Error, msg="<message>" followed by the cause with %+v.
//   %q       → the concise form, quoted.
package validation

import (
	"fmt"
	"io"
)

// String returns the concise form, Success(value=<v>) or Failure(error=<msg>).
func (v Validation[A]) String() string {
	if v.ok {
		return fmt.Sprintf("Success(value=%v)", v.value)
	}
	return fmt.Sprintf("Failure(error=%s)", v.msg)
}

func (v Validation[A]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			v.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, v.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", v.String())
	default:
		_, _ = io.WriteString(s, v.String())
	}
}

func (v Validation[A]) formatVerbose(w io.Writer) {
	if v.ok {
		_, _ = fmt.Fprintf(w, "Success[%s](value=%+v)", typeName[A](), v.value)
		return
	}
	_, _ = fmt.Fprintf(w, "Failure[%s](error=%s)", typeName[A](), v.msg)
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "msg=%q", e.msg)
			if e.cause != nil {
				_, _ = io.WriteString(s, "\ncause: ")
				// Recurse so nested details render if the cause supports them.
				_, _ = fmt.Fprintf(s, "%+v", e.cause)
			}
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
