package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateResolutionOverride_BothSet(t *testing.T) {
	w, h, ok := validateResolutionOverride(800, 600)
	if !ok {
		t.Fatal("expected override to be accepted")
	}
	if w != 800 || h != 600 {
		t.Fatalf("expected (800,600), got (%d,%d)", w, h)
	}
}

func TestValidateResolutionOverride_NeitherSet(t *testing.T) {
	w, h, ok := validateResolutionOverride(0, 0)
	if ok {
		t.Fatal("expected override to be disabled")
	}
	if w != 0 || h != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", w, h)
	}
}

func TestValidateResolutionOverride_OnlyWidth(t *testing.T) {
	w, h, ok := validateResolutionOverride(800, 0)
	if ok {
		t.Fatal("expected partial override to be rejected")
	}
	if w != 0 || h != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", w, h)
	}
}

func TestValidateResolutionOverride_OnlyHeight(t *testing.T) {
	w, h, ok := validateResolutionOverride(0, 600)
	if ok {
		t.Fatal("expected partial override to be rejected")
	}
	if w != 0 || h != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", w, h)
	}
}

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.backend != "" || opts.verbose || opts.configPath != DefaultConfigPath() {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

func TestParseOptions_HelpAndErrors(t *testing.T) {
	var usage strings.Builder
	if _, err := parseOptions([]string{"-h"}, &usage); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(usage.String(), "Usage: ./intuition_term") {
		t.Fatalf("expected usage text, got %q", usage.String())
	}
	if _, err := parseOptions([]string{"-bogus"}, io.Discard); err == nil {
		t.Fatal("expected unknown flag error")
	}
	if _, err := parseOptions([]string{"extra"}, io.Discard); err == nil {
		t.Fatal("expected stray argument error")
	}
}

func TestOptionsApply(t *testing.T) {
	opts, err := parseOptions([]string{"-backend", "HEADLESS", "-root", "/srv", "-width", "800", "-height", "600", "-v"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := DefaultConfig()
	if err := opts.apply(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Window.Backend != SURFACE_BACKEND_HEADLESS || cfg.Shell.Root != "/srv" || !cfg.Log.Verbose {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	cfg = DefaultConfig()
	if err := (options{width: 800}).apply(&cfg); err == nil {
		t.Fatal("expected partial size override to fail")
	}
	cfg = DefaultConfig()
	if err := (options{backend: "opengl"}).apply(&cfg); err == nil {
		t.Fatal("expected unknown backend to fail validation")
	}
}

func TestNewShell_StartDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shell.Username = "amiga"
	cfg.Shell.StartDir = "/apps/"
	shell, err := newShell(cfg, NewHostFS(newTestFS()), silentBeeper{}, nil)
	if err != nil {
		t.Fatalf("newShell: %v", err)
	}
	if shell.Cwd != "/apps" || shell.Prompt() != "amiga@"+DEFAULT_HOST+":/apps$ " {
		t.Fatalf("unexpected shell %q prompt %q", shell.Cwd, shell.Prompt())
	}
	if cwd, _ := shell.FS.Getcwd(); cwd != "/apps" {
		t.Fatalf("expected filesystem cwd /apps, got %q", cwd)
	}

	cfg.Shell.StartDir = "/b.txt"
	_, err = newShell(cfg, NewHostFS(newTestFS()), silentBeeper{}, nil)
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "shell.start_dir" {
		t.Fatalf("expected start_dir error, got %v", err)
	}
}

func TestRunScript(t *testing.T) {
	shell, err := newShell(DefaultConfig(), NewHostFS(newTestFS()), silentBeeper{}, nil)
	if err != nil {
		t.Fatalf("newShell: %v", err)
	}
	w := NewTerminalWindow(WindowConfig{}, shell, nil)
	w.ShowWelcome()

	var out strings.Builder
	in := strings.NewReader("cd apps\npwd\nexit\necho never\n")
	if err := runScript(w, in, &out); err != nil {
		t.Fatalf("runScript: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, shell.Username+"@"+shell.Hostname+":/apps$ pwd\n/apps\n") {
		t.Fatalf("expected pwd output in transcript, got %q", got)
	}
	if strings.Contains(got, "never") {
		t.Fatalf("expected input after exit ignored, got %q", got)
	}
	if !strings.HasPrefix(got, ProductName) {
		t.Fatalf("expected banner first, got %q", got)
	}
}

func TestPrintFeatures(t *testing.T) {
	var out strings.Builder
	printFeatures(&out)
	if !strings.Contains(out.String(), "Compiled features:") || !strings.Contains(out.String(), "script:lua5.1") {
		t.Fatalf("unexpected feature listing %q", out.String())
	}
}

func TestOpenLogger_FileAndPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "term.log")
	logger, closeLog, err := openLogger(cfg, io.Discard)
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Printf("hello")
	closeLog()

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.HasPrefix(line, "[terminal ") || !strings.HasSuffix(line, "hello\n") {
		t.Fatalf("unexpected log line %q", line)
	}
	if id := strings.TrimPrefix(line, "[terminal "); len(id) < 9 || id[8] != ']' {
		t.Fatalf("expected 8-char session id, got %q", line)
	}
}
