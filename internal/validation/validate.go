// Package validation checks that a parsed resume document carries the
// fields rendering requires.
package validation

import (
	"errors"

	"github.com/jdelgado/resumepdf/internal/types"
)

// Validation failures are sentinel errors so callers can tell which
// required field is missing. The messages double as operator hints showing
// the markdown shape that supplies the field.
var (
	ErrMissingName     = errors.New("resume must contain a name (# Name)")
	ErrMissingTitle    = errors.New("resume must contain a title (**Your Title**)")
	ErrMissingSections = errors.New("resume must contain at least one section (## SECTION NAME)")
)

// Validate checks the document in a fixed order and short-circuits on the
// first failure: name, then title, then sections. A nil document fails the
// name check.
func Validate(doc *types.ResumeDocument) error {
	if doc == nil || doc.Name == "" {
		return ErrMissingName
	}
	if doc.Title == "" {
		return ErrMissingTitle
	}
	if len(doc.Sections) == 0 {
		return ErrMissingSections
	}
	return nil
}
