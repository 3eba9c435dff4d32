// Package main provides the entry point for the resumepdf CLI.
package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jdelgado/resumepdf/internal/ingestion"
	"github.com/jdelgado/resumepdf/internal/layout"
	"github.com/jdelgado/resumepdf/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "resumepdf",
	Short: "Markdown resume to PDF converter",
	Long: `resumepdf converts a markdown resume into a styled, paginated PDF.

Sections are routed to dedicated renderers (summary, skills, experience),
date ranges gain computed durations, and related blocks stay together
across page breaks. Appearance is controlled by a JSON theme file.`,
	// Errors reach the user through reportError; cobra's own error and
	// usage output would print everything twice.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err with any type-specific guidance attached.
func reportError(err error) {
	msgr := ui.NewMessenger(os.Stderr)
	msgr.Blank()
	msgr.Errorf("Error: %v", err)

	var notFound *ingestion.NotFoundError
	var permission *layout.PermissionError
	switch {
	case errors.As(err, &notFound):
		for _, s := range notFound.Suggestions {
			msgr.Blank()
			msgr.Hintf("Found .md files in '%s':", s.Dir)
			msgr.List(s.Files)
		}
	case errors.As(err, &permission):
		msgr.Hintf("The file may be open in another program. Close it and try again.")
	}
}
