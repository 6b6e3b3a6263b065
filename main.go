// main.go - Main entry point for the Intuition Terminal

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"
)

func boilerPlate(out io.Writer) {
	fmt.Fprintf(out, "\n\033[38;2;255;20;147m%s\033[0m \033[38;2;255;140;147mv%s\033[0m\n", ProductName, Version)
	fmt.Fprintln(out, "A windowed shell for exploring a read-only file tree.")
	fmt.Fprintln(out, "(c) 2024 - 2026 Zayn Otley")
	fmt.Fprintln(out, "https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Fprintln(out, "License: GPLv3 or later")
}

type options struct {
	configPath string
	backend    string
	root       string
	logFile    string
	width      int
	height     int
	verbose    bool
	features   bool
	version    bool
}

func parseOptions(args []string, usageOut io.Writer) (options, error) {
	var opts options

	flagSet := flag.NewFlagSet("intuition_term", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", DefaultConfigPath(), "Config file (TOML)")
	flagSet.StringVar(&opts.backend, "backend", "", "Surface backend: ebiten, tcell or headless")
	flagSet.StringVar(&opts.root, "root", "", "Host directory shown as /")
	flagSet.StringVar(&opts.logFile, "log", "", "Append diagnostics to this file")
	flagSet.IntVar(&opts.width, "width", 0, "Window width in pixels (with -height)")
	flagSet.IntVar(&opts.height, "height", 0, "Window height in pixels (with -width)")
	flagSet.BoolVar(&opts.verbose, "v", false, "Verbose diagnostics")
	flagSet.BoolVar(&opts.features, "features", false, "List compiled features and exit")
	flagSet.BoolVar(&opts.version, "version", false, "Print version and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(usageOut)
		fmt.Fprintln(usageOut, "Usage: ./intuition_term [-config file] [-backend ebiten|tcell|headless] [-root dir] [-width w -height h] [-log file] [-v]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if flagSet.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}
	return opts, nil
}

// validateResolutionOverride accepts a size only when both sides are set.
func validateResolutionOverride(width, height int) (int, int, bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

// apply layers command line overrides on top of the config file.
func (o options) apply(cfg *Config) error {
	if o.backend != "" {
		cfg.Window.Backend = strings.ToLower(o.backend)
	}
	if o.root != "" {
		cfg.Shell.Root = o.root
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.verbose {
		cfg.Log.Verbose = true
	}
	if w, h, ok := validateResolutionOverride(o.width, o.height); ok {
		cfg.Window.Width, cfg.Window.Height = w, h
	} else if o.width != 0 || o.height != 0 {
		return errors.New("-width and -height must be set together")
	}
	return cfg.Validate()
}

// openLogger returns the diagnostics logger. Every line carries a short
// session id so appended log files can be told apart.
func openLogger(cfg Config, stderr io.Writer) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case cfg.Log.Verbose && cfg.Window.Backend == SURFACE_BACKEND_EBITEN:
		// Cell backends own the host terminal, so stderr stays quiet there.
		out = stderr
	}

	session := uuid.NewString()[:8]
	return log.New(out, "[terminal "+session+"] ", log.LstdFlags|log.Lmicroseconds), closeFn, nil
}

// newShell builds the shell state over fsys and moves to the configured
// start directory.
func newShell(cfg Config, fsys FileSystem, beeper Beeper, logger *log.Logger) (*ShellContext, error) {
	shell := NewShellContext(fsys)
	shell.Username = cfg.Shell.Username
	shell.Hostname = cfg.Shell.Hostname
	shell.Beeper = beeper
	if logger != nil {
		shell.Logger = logger
	}
	shell.Verbose = cfg.Log.Verbose

	start := NormalizePath(cfg.Shell.StartDir)
	if start == "/" {
		return shell, nil
	}
	if !shell.FS.IsDir(start) {
		return nil, &ConfigError{Field: "shell.start_dir", Message: start + " is not a directory"}
	}
	if err := shell.FS.Chdir(start); err != nil {
		return nil, err
	}
	shell.SetCwd(start)
	return shell, nil
}

// runScript feeds each input line to the window as typed text, then writes
// the transcript once input ends or the shell exits.
func runScript(window *TerminalWindow, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for !window.ShouldClose() && sc.Scan() {
		window.HandleEvent(InputEvent{Kind: EventText, Text: sc.Text() + "\n"})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	for _, line := range window.Transcript() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// runLoop drives window on surface until it closes. Surfaces that must own
// the main goroutine get it; the frame loop moves to a second goroutine.
func runLoop(ctx context.Context, fc *FrameController, surface Surface) error {
	runner, ok := surface.(MainThreadRunner)
	if !ok {
		return fc.Run(ctx)
	}

	done := make(chan error, 1)
	go func() { done <- fc.Run(ctx) }()

	if err := runner.RunMainThread(); err != nil {
		return err
	}
	return <-done
}

func runTerminal(ctx context.Context, cfg Config, logger *log.Logger) error {
	hostFS, closeRoot, err := OpenHostRoot(cfg.Shell.Root)
	if err != nil {
		return &ConfigError{Field: "shell.root", Message: fmt.Sprintf("%q is not a directory", cfg.Shell.Root), Err: err}
	}
	defer closeRoot()

	var beeper Beeper = silentBeeper{}
	if cfg.Audio.Enabled {
		if b, err := NewOtoBeeper(); err != nil {
			logger.Printf("audio unavailable, beep is silent: %v", err)
		} else {
			beeper = b
		}
	}
	if c, ok := beeper.(interface{ Close() }); ok {
		defer c.Close()
	}

	shell, err := newShell(cfg, hostFS, beeper, logger)
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	winCfg := WindowConfig{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		Palette: palette,
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if cfg.Window.Backend == SURFACE_BACKEND_HEADLESS && !interactive {
		window := NewTerminalWindow(winCfg, shell, nil)
		window.ShowWelcome()
		return runScript(window, os.Stdin, os.Stdout)
	}

	var surface Surface
	if cfg.Window.Backend == SURFACE_BACKEND_HEADLESS {
		out := NewTerminalOutput(os.Stdout, cfg.Window.Width, cfg.Window.Height)
		keyboard := NewHostKeyboard(func(ev InputEvent) { out.Inject(ev) })
		if err := keyboard.Start(); err != nil {
			return err
		}
		defer keyboard.Stop()
		surface = out
	} else {
		surface, err = NewSurface(cfg.Window.Backend, SurfaceConfig{
			Width:   cfg.Window.Width,
			Height:  cfg.Window.Height,
			Scale:   cfg.Window.Scale,
			Title:   cfg.Window.Title,
			Palette: palette,
		})
		if err != nil {
			return err
		}
	}

	winCfg.Width, winCfg.Height = surface.Size()
	window := NewTerminalWindow(winCfg, shell, nil)
	window.ShowWelcome()

	logger.Printf("%s v%s on %s backend, root %s, grid %dx%d",
		ProductName, Version, cfg.Window.Backend, cfg.Shell.Root, window.Buffer().Cols(), window.Buffer().Rows())

	fc := NewFrameController(window, surface, logger)
	fc.SetInterval(cfg.FrameInterval())
	return runLoop(ctx, fc, surface)
}

func run(args []string) int {
	opts, err := parseOptions(args, os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.version {
		fmt.Printf("%s %s\n", ProductName, Version)
		return 0
	}
	if opts.features {
		printFeatures(os.Stdout)
		return 0
	}

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := opts.apply(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if cfg.Window.Backend == SURFACE_BACKEND_EBITEN {
		boilerPlate(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runTerminal(ctx, cfg, logger); err != nil {
		logger.Printf("terminated: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
