package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizeOutputPath ensures the output file carries a .pdf extension.
func NormalizeOutputPath(path string) string {
	if strings.HasSuffix(path, ".pdf") {
		return path
	}
	return path + ".pdf"
}

// DeriveOutputPath builds the default output path for an input file: the
// input's base name with a .pdf extension, placed under outputsDir when
// one is configured (creating the directory on demand) and next to the
// input otherwise. The returned path is always usable; a non-nil error
// means the outputs directory could not be created and the name fell back
// to the current directory.
func DeriveOutputPath(inputFile, outputsDir string) (string, error) {
	base := filepath.Base(inputFile)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	pdfName := base + ".pdf"

	if outputsDir != "" {
		dir := ExpandHome(outputsDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pdfName, fmt.Errorf("could not create outputs folder %s: %w", dir, err)
		}
		return filepath.Join(dir, pdfName), nil
	}

	if dir := filepath.Dir(inputFile); dir != "." {
		return filepath.Join(dir, pdfName), nil
	}
	return pdfName, nil
}
