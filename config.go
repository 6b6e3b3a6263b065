package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config file location and limits
const (
	CONFIG_DIR_NAME  = "intuition-term"
	CONFIG_FILE_NAME = "config.toml"

	MIN_WINDOW_WIDTH  = 160
	MIN_WINDOW_HEIGHT = 120
	MAX_WINDOW_SCALE  = 4
	MAX_FRAME_MS      = 1000
)

// ConfigError reports a configuration file that could not be used.
type ConfigError struct {
	Path    string
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	if e.Field != "" {
		b.WriteString(": " + e.Field)
	}
	b.WriteString(": " + e.Message)
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }

type WindowSection struct {
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	Title           string `toml:"title"`
	Backend         string `toml:"backend"`
	FrameIntervalMS int    `toml:"frame_interval_ms"`
	Scale           int    `toml:"scale"`
}

type ShellSection struct {
	Username string `toml:"username"`
	Hostname string `toml:"hostname"`
	Root     string `toml:"root"`
	StartDir string `toml:"start_dir"`
}

// ColorSection holds optional "#RRGGBB" or "#AARRGGBB" overrides.
type ColorSection struct {
	Background     string `toml:"background"`
	Text           string `toml:"text"`
	Cursor         string `toml:"cursor"`
	TitleBar       string `toml:"title_bar"`
	TitleBarActive string `toml:"title_bar_active"`
	TitleText      string `toml:"title_text"`
	Border         string `toml:"border"`
}

type LogSection struct {
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

type AudioSection struct {
	Enabled bool `toml:"enabled"`
}

// Config is the terminal configuration file.
type Config struct {
	Window WindowSection `toml:"window"`
	Shell  ShellSection  `toml:"shell"`
	Colors ColorSection  `toml:"colors"`
	Log    LogSection    `toml:"log"`
	Audio  AudioSection  `toml:"audio"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowSection{
			Width:           DEFAULT_WINDOW_WIDTH,
			Height:          DEFAULT_WINDOW_HEIGHT,
			Title:           DEFAULT_TITLE,
			Backend:         SURFACE_BACKEND_EBITEN,
			FrameIntervalMS: int(FRAME_INTERVAL / time.Millisecond),
			Scale:           1,
		},
		Shell: ShellSection{
			Username: DEFAULT_USER,
			Hostname: DEFAULT_HOST,
			Root:     ".",
			StartDir: "/",
		},
		Audio: AudioSection{Enabled: true},
	}
}

// DefaultConfigPath returns the per-user config file path, or "" when the
// platform has no config directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, CONFIG_DIR_NAME, CONFIG_FILE_NAME)
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, &ConfigError{Path: path, Message: "cannot read file", Err: err}
	}
	return ParseConfig(path, data)
}

// ParseConfig decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func ParseConfig(source string, data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, &ConfigError{Path: source, Message: "unknown keys: " + strings.TrimSpace(strict.String()), Err: err}
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, &ConfigError{Path: source, Message: fmt.Sprintf("line %d column %d: %s", row, col, derr.Error()), Err: err}
		}
		return Config{}, &ConfigError{Path: source, Message: err.Error(), Err: err}
	}
	cfg.Window.Backend = strings.ToLower(strings.TrimSpace(cfg.Window.Backend))
	if err := cfg.Validate(); err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = source
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and names that the decoder cannot.
func (c Config) Validate() error {
	w := c.Window
	switch {
	case w.Width < MIN_WINDOW_WIDTH || w.Height < MIN_WINDOW_HEIGHT:
		return &ConfigError{Field: "window", Message: fmt.Sprintf("size %dx%d below minimum %dx%d", w.Width, w.Height, MIN_WINDOW_WIDTH, MIN_WINDOW_HEIGHT)}
	case w.Scale < 1 || w.Scale > MAX_WINDOW_SCALE:
		return &ConfigError{Field: "window.scale", Message: fmt.Sprintf("must be 1-%d, got %d", MAX_WINDOW_SCALE, w.Scale)}
	case w.FrameIntervalMS < 1 || w.FrameIntervalMS > MAX_FRAME_MS:
		return &ConfigError{Field: "window.frame_interval_ms", Message: fmt.Sprintf("must be 1-%d, got %d", MAX_FRAME_MS, w.FrameIntervalMS)}
	}
	if !isKnownBackend(w.Backend) {
		return &ConfigError{Field: "window.backend", Message: fmt.Sprintf("unknown backend %q", w.Backend)}
	}
	if strings.TrimSpace(c.Shell.Username) == "" || strings.TrimSpace(c.Shell.Hostname) == "" {
		return &ConfigError{Field: "shell", Message: "username and hostname must not be empty"}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

func isKnownBackend(name string) bool {
	switch strings.ToLower(name) {
	case SURFACE_BACKEND_EBITEN, SURFACE_BACKEND_TCELL, SURFACE_BACKEND_HEADLESS:
		return true
	}
	return false
}

// Palette returns the default palette with the configured overrides.
func (c Config) Palette() (Palette, error) {
	p := DefaultPalette()
	overrides := []struct {
		field string
		value string
		dst   *uint32
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.text", c.Colors.Text, &p.Text},
		{"colors.cursor", c.Colors.Cursor, &p.Cursor},
		{"colors.title_bar", c.Colors.TitleBar, &p.TitleBar},
		{"colors.title_bar_active", c.Colors.TitleBarActive, &p.TitleBarActive},
		{"colors.title_text", c.Colors.TitleText, &p.TitleText},
		{"colors.border", c.Colors.Border, &p.Border},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		v, err := ParseHexColor(o.value)
		if err != nil {
			return Palette{}, &ConfigError{Field: o.field, Message: err.Error(), Err: err}
		}
		*o.dst = v
	}
	return p, nil
}

func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.Window.FrameIntervalMS) * time.Millisecond
}
