// Civi is a terminal résumé editor.
//
// It opens a full-screen editor with three sections: general information,
// academic background and professional experience. Entries are edited in
// place on display/edit cards and can be previewed as rendered Markdown.
// Nothing typed into the editor is written to disk.
//
// Usage:
//
//	civi [command] [flags]
//
// Running without arguments launches the editor.
// See 'civi --help' for available commands.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/civi/internal/config"
	"github.com/muurk/civi/internal/cv"
	"github.com/muurk/civi/internal/logging"
	"github.com/muurk/civi/internal/render"
	"github.com/muurk/civi/internal/tui"
	"github.com/muurk/civi/internal/ui"
	"github.com/muurk/civi/internal/urls"
	"github.com/muurk/civi/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel    string
	logFile     string
	printOnExit bool
	withSample  bool
)

// cfg is loaded once per invocation by setup.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "civi",
	Short: "Terminal résumé editor",
	Long: `New Flash CiVi: a terminal résumé editor.

Edit your general information, academic background and professional
experience on display/edit cards, then preview the result as Markdown.

If no command is specified, the editor will launch automatically.

Report issues at ` + urls.Issues,
	Version:           version.Version,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logging.Sync() },
	RunE:              runEditor,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: civi.log in the config directory)")
	rootCmd.Flags().BoolVar(&printOnExit, "print", false, "Print the résumé as Markdown after quitting")
	rootCmd.Flags().BoolVar(&withSample, "sample", false, "Start with the sample résumé instead of a blank one")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "civi %s\n", version.Full())
	},
}

// setup loads .env and the config file, then initializes logging.
// Flags win over the config file, which wins over the environment.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(""); err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	level := firstNonEmpty(logLevel, cfg.Preferences.LogLevel, os.Getenv(logging.LogLevelEnvVar))
	path := firstNonEmpty(logFile, cfg.Preferences.LogFile, os.Getenv(logging.LogFileEnvVar))
	if level != "" && path == "" {
		// stdout belongs to the editor
		if path, err = config.DefaultLogFile(); err != nil {
			return fmt.Errorf("failed to resolve log file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if err := logging.Initialize(level, path); err != nil {
		return err
	}
	logging.Debug("Configuration loaded",
		zap.String("path", cfg.Path()),
		zap.String("markdown_style", cfg.Preferences.MarkdownStyle),
	)
	return nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	prefs := cfg.Preferences
	tui.SetAccentColor(prefs.AccentColor)

	resume := cv.NewResume(nil)
	if withSample {
		resume.Seed(cv.SampleSnapshot())
	}

	model := tui.NewAppModel(resume, tui.Options{
		MarkdownStyle: prefs.MarkdownStyle,
		ShowFullHelp:  prefs.ShowFullHelp,
	})

	logging.Info("Starting editor", zap.Bool("sample", withSample))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	logging.Info("Editor closed")

	if printOnExit || prefs.PrintOnExit {
		return printSnapshot(cmd.OutOrStdout(), resume.Snapshot(), prefs.MarkdownStyle, formatTerminal)
	}
	return nil
}

// Output formats for printSnapshot
const (
	formatTerminal = "terminal"
	formatMarkdown = "markdown"
	formatYAML     = "yaml"
)

// printSnapshot writes s to w in the given format.
func printSnapshot(w io.Writer, s cv.Snapshot, style, format string) error {
	switch format {
	case formatTerminal:
		p := ui.NewPrinter(w)
		p.Println(render.Terminal(render.Markdown(s), style, p.Width()))
	case formatMarkdown:
		fmt.Fprintln(w, render.Markdown(s))
	case formatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal résumé: %w", err)
		}
		_, _ = w.Write(data)
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", format, formatTerminal, formatMarkdown, formatYAML)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
