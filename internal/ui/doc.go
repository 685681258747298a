// Package ui prints styled, non-interactive output for civi's commands.
//
// The interactive editor lives in internal/tui. This package covers what is
// printed before or after it runs: the config command results, the sample
// résumé and the résumé printed on exit. Everything goes through a Printer so
// commands can be tested against a buffer.
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Configuration", "civi config init", map[string]string{"Path": path})
//	p.PrintSuccess("Configuration written", nil)
//
// Terminal width comes from golang.org/x/term and is clamped to
// [MinTerminalWidth, MaxContentWidth].
package ui
