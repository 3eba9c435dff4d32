package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jdelgado/resumepdf/internal/config"
	"github.com/jdelgado/resumepdf/internal/ingestion"
	"github.com/jdelgado/resumepdf/internal/pipeline"
	"github.com/jdelgado/resumepdf/internal/ui"
)

var convertCommand = &cobra.Command{
	Use:   "convert <input.md> [output.pdf]",
	Short: "Convert a markdown resume to a formatted PDF",
	Long: `Converts a markdown resume into a styled, paginated PDF.

The input is tried as given and then under the configured inputs folder.
The output defaults to the input name with a .pdf extension, placed in the
configured outputs folder. Theme values come from --theme, with built-in
defaults for anything the file leaves out.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvertCmd,
}

var (
	convertThemePath string
	convertOutput    string
	convertForce     bool
	convertVerbose   bool
)

func init() {
	convertCommand.Flags().StringVarP(&convertThemePath, "theme", "t", "", "Path to theme JSON file")
	convertCommand.Flags().StringVarP(&convertOutput, "output", "o", "", "Output PDF path (overrides the positional output argument)")
	convertCommand.Flags().BoolVarP(&convertForce, "force", "f", false, "Skip the extension and overwrite confirmations")
	convertCommand.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print parse and render details")

	rootCmd.AddCommand(convertCommand)
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	msgr := ui.NewMessenger(cmd.OutOrStdout())

	cfg, err := loadTheme(convertThemePath, cmd, convertVerbose)
	if err != nil {
		return err
	}

	inputPath, fromInputs, err := ingestion.ResolveInput(args[0], cfg.Folders.Inputs)
	if err != nil {
		return err
	}
	if fromInputs && cfg.Verbose {
		msgr.Infof("Using input file from '%s'", inputPath)
	}

	if !strings.EqualFold(filepath.Ext(inputPath), ".md") && !convertForce {
		msgr.Warnf("'%s' does not have a .md extension", args[0])
		if !confirm(cmd, "Continue anyway?") {
			msgr.Infof("Conversion cancelled.")
			return nil
		}
	}

	outputPath, err := resolveOutputPath(inputPath, args, cfg)
	if err != nil {
		// Advisory: the outputs folder could not be created and the
		// path fell back to the current directory.
		msgr.Warnf("%v", err)
	}

	if !convertForce {
		if _, statErr := os.Stat(outputPath); statErr == nil {
			msgr.Warnf("Output file '%s' already exists", outputPath)
			if !confirm(cmd, "Overwrite?") {
				msgr.Infof("Conversion cancelled.")
				return nil
			}
		}
	}

	msgr.Blank()
	msgr.Infof("🔄 Converting '%s' to PDF...", filepath.Base(inputPath))

	err = pipeline.Convert(ctx, pipeline.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Theme:      cfg,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			msgr.Blank()
			msgr.Warnf("Cancelled by user")
			return nil
		}
		return err
	}

	msgr.Blank()
	msgr.Successf("Resume PDF created successfully!")
	msgr.Pathf("Output", outputPath)
	return nil
}

// loadTheme builds the effective theme: file values over built-in defaults,
// flags over the file, and RESUMEPDF_* env vars filling unset folder paths.
func loadTheme(path string, cmd *cobra.Command, verbose bool) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	if cfg.Folders.Inputs == "" {
		cfg.Folders.Inputs = os.Getenv("RESUMEPDF_INPUTS_DIR")
	}
	if cfg.Folders.Outputs == "" {
		cfg.Folders.Outputs = os.Getenv("RESUMEPDF_OUTPUTS_DIR")
	}

	return cfg.MergeWithDefaults(config.DefaultConfig()), nil
}

// resolveOutputPath picks the output file: the --output flag wins, then the
// positional argument, then a name derived from the input inside the
// configured outputs folder. A non-nil error is advisory; the returned path
// is always usable.
func resolveOutputPath(inputPath string, args []string, cfg config.Config) (string, error) {
	explicit := convertOutput
	if explicit == "" && len(args) == 2 {
		explicit = args[1]
	}
	if explicit != "" {
		return ingestion.NormalizeOutputPath(explicit), nil
	}
	return ingestion.DeriveOutputPath(inputPath, cfg.Folders.Outputs)
}

// confirm asks a y/n question on the command's input stream. Only an
// explicit yes continues.
func confirm(cmd *cobra.Command, question string) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	cmd.Printf("%s (y/n): ", question)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
