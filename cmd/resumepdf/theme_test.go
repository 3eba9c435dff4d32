package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelgado/resumepdf/internal/config"
	"github.com/jdelgado/resumepdf/internal/schemas"
)

func TestThemeCommand_EmitsBuiltInTheme(t *testing.T) {
	out, err := execRoot(t, "", "theme")

	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "#1e40af", cfg.Colors.Primary)
	assert.Equal(t, "letter", cfg.Page.Size)
	require.NotNil(t, cfg.CalculateDurations)
	assert.True(t, *cfg.CalculateDurations)
	require.NotNil(t, cfg.KeepSectionsTogether)
	assert.True(t, *cfg.KeepSectionsTogether)
}

func TestThemeCommand_OutputPassesOwnSchema(t *testing.T) {
	out, err := execRoot(t, "", "theme")

	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateTheme([]byte(out)))
}
