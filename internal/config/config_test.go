package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on Linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "civi"); dir != want {
		t.Errorf("GetConfigDir() = %v, want %v", dir, want)
	}
}

func TestGetConfigPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(PathEnvVar, want)

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("GetConfigPath() = %v, want %v", got, want)
	}
}

func TestNew(t *testing.T) {
	cfg := New()
	if cfg.Version != CurrentVersion {
		t.Errorf("New().Version = %v, want %v", cfg.Version, CurrentVersion)
	}
	if cfg.Preferences == nil {
		t.Fatal("New().Preferences should not be nil")
	}
	if cfg.Preferences.MarkdownStyle != "dark" {
		t.Errorf("MarkdownStyle = %q, want dark", cfg.Preferences.MarkdownStyle)
	}
	if cfg.Preferences.PrintOnExit {
		t.Error("PrintOnExit should default to false")
	}
}

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %v, want %v", cfg.Path(), path)
	}
	if cfg.Preferences.AccentColor != "#7D56F4" {
		t.Errorf("AccentColor = %q", cfg.Preferences.AccentColor)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	cfg.Preferences.MarkdownStyle = "light"
	cfg.Preferences.PrintOnExit = true
	cfg.Preferences.LogLevel = "debug"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# civi configuration file") {
		t.Errorf("saved file should start with header, got:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() after save error = %v", err)
	}
	if loaded.Preferences.MarkdownStyle != "light" || !loaded.Preferences.PrintOnExit || loaded.Preferences.LogLevel != "debug" {
		t.Errorf("round trip lost values: %+v", loaded.Preferences)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "version: [", "failed to parse"},
		{"wrong version", "version: 2\n", "unsupported config version"},
		{"bad style", "version: 1\npreferences:\n  markdown_style: neon\n", "invalid markdown_style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\npreferences:\n  print_on_exit: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Preferences.MarkdownStyle != "dark" || cfg.Preferences.AccentColor == "" {
		t.Errorf("defaults not filled: %+v", cfg.Preferences)
	}
	if !cfg.Preferences.PrintOnExit {
		t.Error("explicit value should be kept")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadEnv() on missing file error = %v", err)
	}

	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("CIVI_TEST_ONLY=from-dotenv\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CIVI_TEST_ONLY", "")
	os.Unsetenv("CIVI_TEST_ONLY")

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("CIVI_TEST_ONLY"); got != "from-dotenv" {
		t.Errorf("CIVI_TEST_ONLY = %q, want from-dotenv", got)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.yaml")
	cfg := New()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %v, want %v", cfg.Path(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}
