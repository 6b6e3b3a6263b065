package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), CONFIG_FILE_NAME)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.FrameInterval() != FRAME_INTERVAL {
		t.Fatalf("expected %v frame interval, got %v", FRAME_INTERVAL, cfg.FrameInterval())
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil || cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v %v", cfg, err)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[window]
width = 800
height = 600
backend = "tcell"
frame_interval_ms = 33

[shell]
username = "amiga"
start_dir = "/apps"

[colors]
background = "#101010"

[log]
verbose = true

[audio]
enabled = false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Backend != SURFACE_BACKEND_TCELL {
		t.Fatalf("unexpected window section %+v", cfg.Window)
	}
	if cfg.Window.Title != DEFAULT_TITLE {
		t.Fatalf("expected default title kept, got %q", cfg.Window.Title)
	}
	if cfg.Shell.Username != "amiga" || cfg.Shell.Hostname != DEFAULT_HOST || cfg.Shell.StartDir != "/apps" {
		t.Fatalf("unexpected shell section %+v", cfg.Shell)
	}
	if !cfg.Log.Verbose || cfg.Audio.Enabled {
		t.Fatalf("unexpected log/audio sections %+v %+v", cfg.Log, cfg.Audio)
	}
	if cfg.FrameInterval() != 33*time.Millisecond {
		t.Fatalf("expected 33ms, got %v", cfg.FrameInterval())
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if p.Background != 0xFF101010 {
		t.Fatalf("expected background override, got %#08x", p.Background)
	}
	if p.Text != DefaultPalette().Text {
		t.Fatalf("expected default text color, got %#08x", p.Text)
	}
}

func TestParseConfig_UnknownKey(t *testing.T) {
	_, err := ParseConfig("test.toml", []byte("[window]\nwidht = 800\n"))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if ce.Path != "test.toml" || !strings.Contains(ce.Message, "unknown keys") {
		t.Fatalf("unexpected error %+v", ce)
	}
}

func TestParseConfig_SyntaxError(t *testing.T) {
	_, err := ParseConfig("bad.toml", []byte("[window\nwidth = 1\n"))
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Err == nil {
		t.Fatalf("expected wrapped ConfigError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "config bad.toml: ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestParseConfig_Validation(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"small window", "[window]\nwidth = 100\n", "window"},
		{"scale", "[window]\nscale = 9\n", "window.scale"},
		{"interval", "[window]\nframe_interval_ms = 0\n", "window.frame_interval_ms"},
		{"backend", "[window]\nbackend = \"vulkan\"\n", "window.backend"},
		{"user", "[shell]\nusername = \" \"\n", "shell"},
		{"color", "[colors]\ncursor = \"#12\"\n", "colors.cursor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig("c.toml", []byte(tc.body))
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if ce.Field != tc.field || ce.Path != "c.toml" {
				t.Fatalf("expected field %q in c.toml, got %+v", tc.field, ce)
			}
		})
	}
}

func TestLoadConfig_ReadError(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Message != "cannot read file" {
		t.Fatalf("expected read error for a directory, got %v", err)
	}
}
