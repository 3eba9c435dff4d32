package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// maxSuggestions caps how many .md files are listed per searched directory
// when the input cannot be found.
const maxSuggestions = 5

// ResolveInput locates the input markdown file and returns its absolute
// path. The given path wins when it exists; a relative path that doesn't
// is retried under inputsDir. The second return is true when the
// inputs-folder fallback supplied the file.
func ResolveInput(path, inputsDir string) (string, bool, error) {
	if _, err := os.Stat(path); err == nil {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", false, &ReadError{Path: path, Cause: err}
		}
		return abs, false, nil
	}

	if !filepath.IsAbs(path) && inputsDir != "" {
		alternate := filepath.Join(ExpandHome(inputsDir), path)
		if _, err := os.Stat(alternate); err == nil {
			abs, err := filepath.Abs(alternate)
			if err != nil {
				return "", false, &ReadError{Path: alternate, Cause: err}
			}
			return abs, true, nil
		}
	}

	return "", false, &NotFoundError{
		Path:        path,
		Suggestions: collectSuggestions(path, inputsDir),
	}
}

// collectSuggestions lists markdown files from the directory the user
// pointed at and from the configured inputs folder.
func collectSuggestions(path, inputsDir string) []Suggestion {
	searchDirs := []string{filepath.Dir(path)}
	if inputsDir != "" {
		expanded := ExpandHome(inputsDir)
		if _, err := os.Stat(expanded); err == nil {
			searchDirs = append(searchDirs, expanded)
		}
	}

	var suggestions []Suggestion
	for _, dir := range searchDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			files = append(files, entry.Name())
			if len(files) == maxSuggestions {
				break
			}
		}
		if len(files) > 0 {
			suggestions = append(suggestions, Suggestion{Dir: dir, Files: files})
		}
	}
	return suggestions
}

// ExpandHome replaces a leading ~ with the user's home directory. Paths
// without the prefix, and lookups that fail, come back unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
