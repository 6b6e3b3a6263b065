package main

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// ANSI control sequences used by the host terminal output
const (
	ansiHome        = "\x1b[H"
	ansiClearScreen = "\x1b[2J"
	ansiClearLine   = "\x1b[2K"
	ansiReverse     = "\x1b[7m"
	ansiReset       = "\x1b[0m"
	ansiShowCursor  = "\x1b[?25h"
	ansiHideCursor  = "\x1b[?25l"
)

// TerminalOutput is the headless surface for an interactive host terminal.
// Frames are repainted as text with ANSI cursor addressing; only rows that
// changed since the previous frame are rewritten. Input arrives through
// Inject, normally from a HostKeyboard.
type TerminalOutput struct {
	*MemorySurface

	mu      sync.Mutex
	out     io.Writer
	title   string
	last    []string
	started bool
}

func NewTerminalOutput(out io.Writer, width, height int) *TerminalOutput {
	return &TerminalOutput{
		MemorySurface: NewMemorySurface(width, height),
		out:           out,
	}
}

func (t *TerminalOutput) PresentText(frame TextFrame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Destroyed() {
		return &SurfaceError{Operation: "present", Details: "surface destroyed"}
	}

	var b bytes.Buffer
	b.WriteString(ansiHideCursor)
	if !t.started || len(t.last) != len(frame.Lines) {
		b.WriteString(ansiHome + ansiClearScreen)
		t.last = make([]string, len(frame.Lines))
		t.title = ""
		t.started = true
		for i := range t.last {
			t.last[i] = "\x00" // forces the first paint of every row
		}
	}
	if frame.Title != t.title {
		fmt.Fprintf(&b, "\x1b[1;1H%s%s %s %s", ansiClearLine, ansiReverse, frame.Title, ansiReset)
		t.title = frame.Title
	}
	for i, line := range frame.Lines {
		if line == t.last[i] {
			continue
		}
		fmt.Fprintf(&b, "\x1b[%d;1H%s%s", i+2, ansiClearLine, line)
		t.last[i] = line
	}
	if frame.CursorVisible {
		fmt.Fprintf(&b, "\x1b[%d;%dH%s", frame.CursorY+2, frame.CursorX+1, ansiShowCursor)
	}

	if _, err := t.out.Write(b.Bytes()); err != nil {
		return &SurfaceError{Operation: "present", Details: "write to host terminal", Err: err}
	}
	return nil
}

// Destroy leaves the host cursor visible below the last frame.
func (t *TerminalOutput) Destroy() error {
	t.mu.Lock()
	if t.started {
		fmt.Fprintf(t.out, "\x1b[%d;1H%s\r\n", len(t.last)+2, ansiShowCursor)
	}
	t.mu.Unlock()
	return t.MemorySurface.Destroy()
}
