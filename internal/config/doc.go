// Package config manages civi's user preferences.
//
// Preferences live in a YAML file in the platform's configuration directory:
//   - Linux: $XDG_CONFIG_HOME/civi/config.yaml or $HOME/.config/civi/config.yaml
//   - macOS: $HOME/.config/civi/config.yaml
//   - Windows: %LOCALAPPDATA%\civi\config.yaml
//
// CIVI_CONFIG overrides the path. A .env file in the working directory is
// read first, so CIVI_* variables can be kept next to a project.
//
// The file only ever holds preferences. Résumé content is never written to
// disk.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cfg.Preferences.MarkdownStyle = "light"
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
package config
