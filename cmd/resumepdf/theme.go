package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jdelgado/resumepdf/internal/config"
)

var themeCommand = &cobra.Command{
	Use:   "theme",
	Short: "Print the default theme as JSON",
	Long: `Prints the built-in theme as JSON. Redirect it to a file, change the
values you care about, and pass the file back with --theme. Keys left out
of the file keep their built-in defaults.`,
	RunE: runThemeCmd,
}

func init() {
	rootCmd.AddCommand(themeCommand)
}

func runThemeCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()

	// The behavior flags default to true through pointer semantics; spell
	// them out so the emitted file shows they exist.
	enabled := true
	cfg.CalculateDurations = &enabled
	cfg.KeepSectionsTogether = &enabled

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(data))
	return nil
}
