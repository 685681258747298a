package config

// CurrentVersion is the config file format version written by Save.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`

	path string // where the file was loaded from or will be saved to
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	MarkdownStyle string `yaml:"markdown_style"`      // glamour style: dark, light, notty, ascii
	PrintOnExit   bool   `yaml:"print_on_exit"`       // print the résumé as Markdown after quitting
	ShowFullHelp  bool   `yaml:"show_full_help"`      // start with the expanded help footer
	AccentColor   string `yaml:"accent_color"`        // lipgloss color for borders and titles
	LogLevel      string `yaml:"log_level,omitempty"` // debug, info, warn, error; empty disables
	LogFile       string `yaml:"log_file,omitempty"`  // defaults to civi.log in the config dir
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		MarkdownStyle: "dark",
		PrintOnExit:   false,
		ShowFullHelp:  false,
		AccentColor:   "#7D56F4",
	}
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// Path returns the file the config is bound to.
func (c *Config) Path() string {
	return c.path
}

// fillDefaults replaces missing or empty values with defaults.
func (c *Config) fillDefaults() {
	def := DefaultPreferences()
	if c.Preferences == nil {
		c.Preferences = def
		return
	}
	if c.Preferences.MarkdownStyle == "" {
		c.Preferences.MarkdownStyle = def.MarkdownStyle
	}
	if c.Preferences.AccentColor == "" {
		c.Preferences.AccentColor = def.AccentColor
	}
}

// MarkdownStyles lists the glamour standard styles accepted in markdown_style.
var MarkdownStyles = []string{"dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}
