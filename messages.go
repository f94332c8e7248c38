package validation

import "fmt"

// InvalidValue formats the standard message for a rejected value:
// Invalid value for <label>: '<value>'.
func InvalidValue(label string, value any) string {
	return fmt.Sprintf("Invalid value for %s: '%v'", label, value)
}

// InvalidListValue formats the message for a rejected element of a list.
func InvalidListValue(label string, value any) string {
	return fmt.Sprintf("Invalid value found in %s: '%v'", label, value)
}

// UnparseableValue formats the message for a value that could not be parsed.
func UnparseableValue(label string, value any) string {
	return fmt.Sprintf("Failed to parse value for %s: '%v'", label, value)
}
