package ingestion

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveInput_DirectPathWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resume.md", "# Jane")

	resolved, viaInputs, err := ResolveInput(path, "")
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.False(t, viaInputs)
}

func TestResolveInput_RelativePathFallsBackToInputsFolder(t *testing.T) {
	inputs := t.TempDir()
	expected := writeFile(t, inputs, "resume.md", "# Jane")

	resolved, viaInputs, err := ResolveInput("resume.md", inputs)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
	assert.True(t, viaInputs)
}

func TestResolveInput_AbsoluteMissingPathSkipsFallback(t *testing.T) {
	inputs := t.TempDir()
	writeFile(t, inputs, "resume.md", "# Jane")

	missing := filepath.Join(t.TempDir(), "resume.md")
	_, _, err := ResolveInput(missing, inputs)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.Path)
}

func TestResolveInput_NotFoundListsMarkdownSuggestions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alpha.md", "x")
	writeFile(t, dir, "beta.md", "x")
	writeFile(t, dir, "notes.txt", "x")

	_, _, err := ResolveInput(filepath.Join(dir, "missing.md"), "")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Len(t, notFound.Suggestions, 1)
	assert.Equal(t, dir, notFound.Suggestions[0].Dir)
	assert.Equal(t, []string{"alpha.md", "beta.md"}, notFound.Suggestions[0].Files)
}

func TestResolveInput_SuggestionsCappedAtFive(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md", "e.md", "f.md", "g.md"} {
		writeFile(t, dir, name, "x")
	}

	_, _, err := ResolveInput(filepath.Join(dir, "missing.md"), "")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Len(t, notFound.Suggestions, 1)
	assert.Len(t, notFound.Suggestions[0].Files, 5)
}

func TestResolveInput_SearchesInputsFolderForSuggestions(t *testing.T) {
	empty := t.TempDir()
	inputs := t.TempDir()
	writeFile(t, inputs, "draft.md", "x")

	_, _, err := ResolveInput(filepath.Join(empty, "missing.md"), inputs)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Len(t, notFound.Suggestions, 1)
	assert.Equal(t, inputs, notFound.Suggestions[0].Dir)
	assert.Equal(t, []string{"draft.md"}, notFound.Suggestions[0].Files)
}

func TestReadMarkdown_ReturnsContent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.md", "# Jane\n**Engineer**\n")

	content, err := ReadMarkdown(path)
	require.NoError(t, err)
	assert.Equal(t, "# Jane\n**Engineer**\n", content)
}

func TestReadMarkdown_MissingFileIsReadError(t *testing.T) {
	_, err := ReadMarkdown(filepath.Join(t.TempDir(), "missing.md"))

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadMarkdown_WhitespaceOnlyIsEmptyError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.md", "  \n\t\n")

	_, err := ReadMarkdown(path)

	var emptyErr *EmptyError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, path, emptyErr.Path)
}

func TestNormalizeOutputPath(t *testing.T) {
	assert.Equal(t, "out.pdf", NormalizeOutputPath("out"))
	assert.Equal(t, "out.pdf", NormalizeOutputPath("out.pdf"))
	assert.Equal(t, "archive.tar.pdf", NormalizeOutputPath("archive.tar"))
}

func TestDeriveOutputPath_UsesOutputsFolder(t *testing.T) {
	outputs := filepath.Join(t.TempDir(), "exports")

	path, err := DeriveOutputPath("resume.md", outputs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputs, "resume.pdf"), path)

	info, statErr := os.Stat(outputs)
	require.NoError(t, statErr, "outputs folder should be created on demand")
	assert.True(t, info.IsDir())
}

func TestDeriveOutputPath_NoFolderDerivesBesideInput(t *testing.T) {
	path, err := DeriveOutputPath("/data/in/resume.md", "")
	require.NoError(t, err)
	assert.Equal(t, "/data/in/resume.pdf", path)

	path, err = DeriveOutputPath("resume.md", "")
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", path)
}

func TestDeriveOutputPath_FolderCreateFailureFallsBack(t *testing.T) {
	blocker := writeFile(t, t.TempDir(), "blocker", "")
	outputs := filepath.Join(blocker, "exports")

	path, err := DeriveOutputPath("resume.md", outputs)
	require.Error(t, err)
	assert.Equal(t, "resume.pdf", path, "fallback keeps the conversion going in the current directory")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "docs"), ExpandHome("~/docs"))
	assert.Equal(t, "plain/path", ExpandHome("plain/path"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
}
