// video_interface.go - Drawing surface interface for the terminal

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
	"fmt"
	"image"
	"strings"
)

// SurfaceError provides detailed error context for surface operations
type SurfaceError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *SurfaceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("surface %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("surface %s failed: %s", e.Operation, e.Details)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseDown
	EventText  // Text carries already-composed characters (paste, cell terminals)
	EventClose // Window close requested by the host
)

// InputEvent is one host input event. Code is a raw KeyCode byte for key
// events; X and Y are pixel coordinates for mouse events.
type InputEvent struct {
	Kind EventKind
	Code uint8
	X, Y int
	Text string
}

// Surface is the pixel target and event source a terminal window runs on.
type Surface interface {
	Size() (width, height int)
	PutPixel(x, y int, color uint32)
	FillRect(r image.Rectangle, color uint32)
	PollEvents() []InputEvent
	Present() error
	Destroy() error
}

// Optional interfaces for enhanced functionality

// TextPresenter is implemented by cell-based surfaces that show text
// directly instead of rasterized glyphs.
type TextPresenter interface {
	PresentText(frame TextFrame) error
}

// MainThreadRunner is implemented by surfaces whose event loop must own the
// main goroutine. The frame loop then runs on another goroutine.
type MainThreadRunner interface {
	RunMainThread() error
}

// TextFrame is the text content of one frame.
type TextFrame struct {
	Title         string
	Lines         []string
	CursorX       int
	CursorY       int
	CursorVisible bool // false while blinked off or scrolled away
}

// Surface backend names
const (
	SURFACE_BACKEND_EBITEN   = "ebiten"
	SURFACE_BACKEND_TCELL    = "tcell"
	SURFACE_BACKEND_HEADLESS = "headless"
)

// SurfaceConfig contains backend-independent configuration
type SurfaceConfig struct {
	Width   int
	Height  int
	Scale   int // Integer scaling factor for windowed output
	Title   string
	Palette Palette
}

// NewSurface creates a surface using the named backend
func NewSurface(backend string, cfg SurfaceConfig) (Surface, error) {
	if cfg.Width <= 0 {
		cfg.Width = DEFAULT_WINDOW_WIDTH
	}
	if cfg.Height <= 0 {
		cfg.Height = DEFAULT_WINDOW_HEIGHT
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = DefaultPalette()
	}

	switch strings.ToLower(backend) {
	case SURFACE_BACKEND_EBITEN, "":
		return NewEbitenSurface(cfg)
	case SURFACE_BACKEND_TCELL:
		return NewTcellSurface(cfg)
	case SURFACE_BACKEND_HEADLESS:
		return NewMemorySurface(cfg.Width, cfg.Height), nil
	}
	return nil, &SurfaceError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %q", backend),
	}
}
