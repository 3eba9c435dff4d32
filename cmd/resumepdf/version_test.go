package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Use(t *testing.T) {
	assert.Equal(t, "version", versionCommand.Use)
}

func TestVersionCommand_Executes(t *testing.T) {
	originalVersion := version
	version = "1.2.3"
	defer func() { version = originalVersion }()

	out, err := execRoot(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "resumepdf version 1.2.3")
}

func TestVersionCommand_DisplaysDevByDefault(t *testing.T) {
	out, err := execRoot(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "resumepdf version dev")
}
