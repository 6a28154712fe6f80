package errors

import (
	"fmt"
	"strings"
)

// ValidationError describes one rejected field of a configuration or
// request.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors so that all problems are reported
// at once.
type ValidationErrors []ValidationError

// Add records a field error.
func (v *ValidationErrors) Add(field, format string, args ...any) {
	*v = append(*v, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Err returns nil when nothing was recorded, or an *Error with the given
// code wrapping the collected field errors.
func (v ValidationErrors) Err(code Code, what string) error {
	if len(v) == 0 {
		return nil
	}
	return Wrap(code, v, "invalid %s", what)
}

// ValidateRange checks lo <= val <= hi.
func ValidateRange(errs *ValidationErrors, field string, val, lo, hi float64) {
	if val < lo || val > hi {
		errs.Add(field, "must be between %g and %g, got %g", lo, hi, val)
	}
}

// ValidatePositive checks val > 0.
func ValidatePositive(errs *ValidationErrors, field string, val int) {
	if val <= 0 {
		errs.Add(field, "must be positive, got %d", val)
	}
}

// ValidateOneOf checks that val is one of the allowed values.
func ValidateOneOf(errs *ValidationErrors, field, val string, allowed ...string) {
	for _, a := range allowed {
		if val == a {
			return
		}
	}
	errs.Add(field, "must be one of: %s, got %q", strings.Join(allowed, ", "), val)
}
