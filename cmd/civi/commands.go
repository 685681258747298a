package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/civi/internal/config"
	"github.com/muurk/civi/internal/cv"
	"github.com/muurk/civi/internal/logging"
	"github.com/muurk/civi/internal/ui"
	"github.com/muurk/civi/internal/urls"
)

// Command flags
var (
	sampleFormat string
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	sampleCmd.Flags().StringVar(&sampleFormat, "format", formatTerminal, "Output format (terminal, markdown, yaml)")
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

// sampleCmd prints the built-in sample résumé
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the sample résumé",
	Long: `Render the built-in sample résumé the same way the editor preview does.

Useful for checking the markdown_style preference without opening the editor.`,
	Example: `  # Rendered for the terminal
  civi sample

  # Markdown source, e.g. to pipe into a file
  civi sample --format markdown > resume.md

  # The underlying data
  civi sample --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Debug("Printing sample", zap.String("format", sampleFormat))
		return printSnapshot(cmd.OutOrStdout(), cv.SampleSnapshot(), cfg.Preferences.MarkdownStyle, sampleFormat)
	},
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the civi config file",
	Long: `Manage the preferences file.

The file only holds display preferences. Résumé content is never saved.
Accepted accent_color formats: ` + urls.LipglossColors,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default preferences",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Path())
	},
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfg.Path()
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	fresh := config.New()
	if err := fresh.SaveTo(path); err != nil {
		return err
	}
	logging.Info("Config written")

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintSuccess("Config written", map[string]string{
		"Path":           path,
		"Markdown style": fresh.Preferences.MarkdownStyle,
		"Accent color":   fresh.Preferences.AccentColor,
	})
	return nil
}
