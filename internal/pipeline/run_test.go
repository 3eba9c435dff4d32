package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelgado/resumepdf/internal/config"
	"github.com/jdelgado/resumepdf/internal/ingestion"
	"github.com/jdelgado/resumepdf/internal/validation"
)

const sampleResume = `# Jane Doe
**Staff Engineer**
jane@example.com | Tampa, Florida

## SUMMARY
Builds reliable systems.
Ships on time.

## TECHNICAL SKILLS
**Languages**
Go, Python, SQL

## EXPERIENCE
### Acme Corp
**Senior Engineer**
June 2018 - September 2021
• Led the platform team
`

func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_ValidResume(t *testing.T) {
	doc, err := Check(writeResume(t, sampleResume))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Name)
	assert.Equal(t, "Staff Engineer", doc.Title)
	assert.Len(t, doc.Sections, 3)
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "absent.md"))

	var readErr *ingestion.ReadError
	require.ErrorAs(t, err, &readErr)
}

func TestCheck_MissingTitle(t *testing.T) {
	_, err := Check(writeResume(t, "# Jane Doe\n\n## SUMMARY\nText.\n"))

	require.ErrorIs(t, err, validation.ErrMissingTitle)
}

func TestAssemble_ProducesPrintableHTML(t *testing.T) {
	doc, err := Check(writeResume(t, sampleResume))
	require.NoError(t, err)

	document, stats := assemble(doc, config.DefaultConfig())

	html, err := document.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Led the platform team")
	assert.Greater(t, stats.Paragraphs, 0)
	assert.Greater(t, stats.Dividers, 0)
	assert.Greater(t, stats.Groups, 0)
}

func TestAssemble_UngroupedThemeHasNoGroups(t *testing.T) {
	doc, err := Check(writeResume(t, sampleResume))
	require.NoError(t, err)

	theme := config.DefaultConfig()
	grouped := false
	theme.KeepSectionsTogether = &grouped

	_, stats := assemble(doc, theme)

	assert.Zero(t, stats.Groups)
}

func TestConvert_InvalidInputFailsBeforeBrowser(t *testing.T) {
	err := Convert(context.Background(), Options{
		InputPath:  filepath.Join(t.TempDir(), "absent.md"),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
		Theme:      config.DefaultConfig(),
	})

	var readErr *ingestion.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConvert_Integration(t *testing.T) {
	// Requires a local Chrome installation; skipped by default so the suite
	// passes in environments without a browser.
	if os.Getenv("RESUMEPDF_E2E") == "" {
		t.Skip("Skipping integration test: RESUMEPDF_E2E not set")
	}

	outPath := filepath.Join(t.TempDir(), "resume.pdf")
	err := Convert(context.Background(), Options{
		InputPath:  writeResume(t, sampleResume),
		OutputPath: outPath,
		Theme:      config.DefaultConfig(),
	})

	require.NoError(t, err)
	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
