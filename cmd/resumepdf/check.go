package main

import (
	"github.com/spf13/cobra"

	"github.com/jdelgado/resumepdf/internal/ingestion"
	"github.com/jdelgado/resumepdf/internal/observability"
	"github.com/jdelgado/resumepdf/internal/pipeline"
	"github.com/jdelgado/resumepdf/internal/ui"
)

var checkCommand = &cobra.Command{
	Use:   "check <input.md>",
	Short: "Parse and validate a resume without generating a PDF",
	Long: `Parses the markdown resume, reports what was extracted, and verifies
the fields rendering requires: a name, a title, and at least one section.
No PDF is produced and no browser is launched.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckCmd,
}

var checkThemePath string

func init() {
	checkCommand.Flags().StringVarP(&checkThemePath, "theme", "t", "", "Path to theme JSON file")

	rootCmd.AddCommand(checkCommand)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadTheme(checkThemePath, cmd, false)
	if err != nil {
		return err
	}

	inputPath, _, err := ingestion.ResolveInput(args[0], cfg.Folders.Inputs)
	if err != nil {
		return err
	}

	doc, err := pipeline.Check(inputPath)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintResumeSummary(doc)
	ui.NewMessenger(cmd.OutOrStdout()).Successf(
		"Resume is valid: %d sections, %d content lines", len(doc.Sections), doc.CountLines())
	return nil
}
