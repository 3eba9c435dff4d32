package layout

import "fmt"

// PermissionError reports that the output file could not be written due to
// filesystem permissions, typically because the file is open in another
// application.
type PermissionError struct {
	Path  string
	Cause error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied writing %s", e.Path)
}

func (e *PermissionError) Unwrap() error {
	return e.Cause
}

// RenderError represents any other document build or print failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
