// Package ingestion locates and reads the input markdown file and derives
// the default output path. Resolution falls back to the configured inputs
// folder and collects nearby .md files as suggestions when nothing is
// found.
package ingestion

import "fmt"

// NotFoundError reports a missing input file along with nearby markdown
// files the user may have meant.
type NotFoundError struct {
	Path        string
	Suggestions []Suggestion
}

// Suggestion lists markdown files found in one searched directory.
type Suggestion struct {
	Dir   string
	Files []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// ReadError reports an input file that exists but could not be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// EmptyError reports an input file with no usable content.
type EmptyError struct {
	Path string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("input file %s is empty", e.Path)
}
