package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/moasq/painless/prompt"
)

// ThemeEnv names a theme file used when no path is given explicitly.
const ThemeEnv = "PAINLESS_THEME"

// Config holds the CLI configuration.
type Config struct {
	// ThemePath is the theme file that was read, empty when defaults are used.
	ThemePath string

	// Theme is the default theme with the file's overrides applied.
	Theme prompt.Theme
}

// Load resolves the theme file and returns a Config.
// The file is taken from path, then $PAINLESS_THEME, then
// <user config dir>/painless/theme.yaml. Only the last one may be absent.
// A non-empty NO_COLOR disables styling regardless of the file.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(ThemeEnv)
	}
	if path == "" {
		explicit = false
		path = DefaultThemePath()
	}

	cfg := &Config{Theme: prompt.DefaultTheme()}
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := decodeTheme(f, &cfg.Theme); err != nil {
				return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
			}
			cfg.ThemePath = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to open theme: %w", err)
		}
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.Theme.Plain = true
	}
	if err := cfg.Theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return cfg, nil
}

// DefaultThemePath returns <user config dir>/painless/theme.yaml, or "" if
// the config dir cannot be determined.
func DefaultThemePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "painless", "theme.yaml")
}

// decodeTheme overlays the YAML document in r onto theme. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func decodeTheme(r io.Reader, theme *prompt.Theme) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(theme); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
