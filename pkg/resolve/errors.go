package resolve

import "fmt"

// Error is returned when a document cannot be dereferenced.
type Error struct {
	// Format is the detected document format: "openapi", "swagger" or "schema".
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
