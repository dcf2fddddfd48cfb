package repair

import "fmt"

// Error represents a failure while copying a stored file forward.
type Error struct {
	Phase   string // "inspect", "copy", or "normalize"
	Offset  int64  // Offset where the error occurred
	Message string // Human-readable error message
	Cause   error  // Underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("repair %s failed at offset 0x%X: %s: %v", e.Phase, e.Offset, e.Message, e.Cause)
	}
	return fmt.Sprintf("repair %s failed at offset 0x%X: %s", e.Phase, e.Offset, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}
