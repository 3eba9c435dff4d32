package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelgado/resumepdf/internal/validation"
)

func TestCheckCommand_ValidResume(t *testing.T) {
	input := writeTestFile(t, t.TempDir(), "resume.md", testResume)

	out, err := execRoot(t, "", "check", input)

	require.NoError(t, err)
	assert.Contains(t, out, "PARSED RESUME")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Resume is valid")
}

func TestCheckCommand_MissingTitleFails(t *testing.T) {
	input := writeTestFile(t, t.TempDir(), "resume.md", "# Jane Doe\n\n## SUMMARY\nText.\n")

	_, err := execRoot(t, "", "check", input)

	require.ErrorIs(t, err, validation.ErrMissingTitle)
}

func TestCheckCommand_RequiresExactlyOneArgument(t *testing.T) {
	_, err := execRoot(t, "", "check")

	require.Error(t, err)
}
