package ingestion

import (
	"os"
	"strings"
)

// ReadMarkdown reads the resolved input file, rejecting files with no
// content beyond whitespace.
func ReadMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Cause: err}
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", &EmptyError{Path: path}
	}
	return string(content), nil
}
