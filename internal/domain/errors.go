package domain

import "fmt"

// ValidationError marks a malformed holding. It aborts that holding's
// processing only, never the whole batch.
type ValidationError struct {
	Symbol string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid holding %q: %s", e.Symbol, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
