package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdelgado/resumepdf/internal/types"
)

func validDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		Name:     "John Doe",
		Title:    "Engineer",
		Sections: []types.Section{{Name: "SUMMARY"}},
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	assert.NoError(t, Validate(validDocument()))
}

func TestValidate_MissingName(t *testing.T) {
	doc := validDocument()
	doc.Name = ""

	err := Validate(doc)
	assert.ErrorIs(t, err, ErrMissingName)
	assert.Contains(t, err.Error(), "# Name")
}

func TestValidate_MissingTitle(t *testing.T) {
	doc := validDocument()
	doc.Title = ""

	err := Validate(doc)
	assert.ErrorIs(t, err, ErrMissingTitle)
	assert.Contains(t, err.Error(), "**Your Title**")
}

func TestValidate_MissingSections(t *testing.T) {
	doc := validDocument()
	doc.Sections = nil

	err := Validate(doc)
	assert.ErrorIs(t, err, ErrMissingSections)
	assert.Contains(t, err.Error(), "## SECTION NAME")
}

func TestValidate_NameCheckedFirst(t *testing.T) {
	doc := &types.ResumeDocument{}

	// Everything is missing; the name failure must win.
	assert.ErrorIs(t, Validate(doc), ErrMissingName)
}

func TestValidate_TitleCheckedBeforeSections(t *testing.T) {
	doc := &types.ResumeDocument{Name: "John Doe"}

	assert.ErrorIs(t, Validate(doc), ErrMissingTitle)
}

func TestValidate_NilDocument(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrMissingName)
}

func TestValidate_FailureKindsDistinguishable(t *testing.T) {
	noTitle := validDocument()
	noTitle.Title = ""

	noSections := validDocument()
	noSections.Sections = nil

	assert.NotErrorIs(t, Validate(noTitle), ErrMissingSections)
	assert.NotErrorIs(t, Validate(noSections), ErrMissingTitle)
}
