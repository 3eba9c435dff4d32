package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTheme_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateTheme([]byte(`{}`)))
}

func TestValidateTheme_FullTheme(t *testing.T) {
	theme := `{
		"colors": {"primary": "#1e40af", "accent": "#1e3a8a"},
		"fonts": {"base": "Helvetica", "bold": "Helvetica-Bold"},
		"sizes": {"name": 24, "bullet": 9.5},
		"page": {"size": "a4", "margin_top": 0.5},
		"spacing": {"after_name": 6, "bullet_indent": 12},
		"divider": {"width": 7, "thickness": 1},
		"folders": {"inputs": "inputs", "outputs": "outputs"},
		"calculate_durations": true,
		"keep_sections_together": false
	}`
	assert.NoError(t, ValidateTheme([]byte(theme)))
}

func TestValidateTheme_BadHexColor(t *testing.T) {
	err := ValidateTheme([]byte(`{"colors": {"primary": "blue"}}`))

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Errors[0].Field, "primary")
}

func TestValidateTheme_UnknownPageSize(t *testing.T) {
	err := ValidateTheme([]byte(`{"page": {"size": "tabloid"}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateTheme_NegativeSpacing(t *testing.T) {
	err := ValidateTheme([]byte(`{"spacing": {"after_name": -3}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateTheme_ZeroFontSizeRejected(t *testing.T) {
	err := ValidateTheme([]byte(`{"sizes": {"name": 0}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateTheme_UnknownTopLevelKey(t *testing.T) {
	err := ValidateTheme([]byte(`{"watermark": "draft"}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateTheme_NotJSON(t *testing.T) {
	err := ValidateTheme([]byte(`{not json`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidationError_ListsAllFields(t *testing.T) {
	err := ValidateTheme([]byte(`{"colors": {"primary": "nope", "accent": "also nope"}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, validationErr.Error(), "theme validation failed")
}
