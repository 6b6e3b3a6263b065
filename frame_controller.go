package main

import (
	"context"
	"io"
	"log"
	"time"
)

// FrameController drives a TerminalWindow on a Surface: poll input, advance
// the blink, redraw when dirty. It runs on a single goroutine; surfaces
// only exchange events and frames with it.
type FrameController struct {
	window   *TerminalWindow
	surface  Surface
	interval time.Duration
	logger   *log.Logger

	terminated bool
	frames     uint64
	presents   uint64
}

func NewFrameController(window *TerminalWindow, surface Surface, logger *log.Logger) *FrameController {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FrameController{
		window:   window,
		surface:  surface,
		interval: FRAME_INTERVAL,
		logger:   logger,
	}
}

// SetInterval changes the pause between frames. Non-positive values keep
// the current interval.
func (fc *FrameController) SetInterval(d time.Duration) {
	if d > 0 {
		fc.interval = d
	}
}

// Step runs one frame. It reports false once the window has asked to close.
func (fc *FrameController) Step() (bool, error) {
	if fc.terminated {
		return false, nil
	}

	for _, ev := range fc.surface.PollEvents() {
		fc.window.HandleEvent(ev)
	}
	if fc.window.ShouldClose() {
		fc.terminated = true
		return false, nil
	}

	fc.window.Tick()
	if fc.window.Dirty() {
		if err := fc.render(); err != nil {
			fc.terminated = true
			return false, err
		}
		fc.window.ClearDirty()
		fc.presents++
	}
	fc.frames++
	return true, nil
}

func (fc *FrameController) render() error {
	if tp, ok := fc.surface.(TextPresenter); ok {
		return tp.PresentText(fc.window.TextFrame())
	}
	fc.window.Draw(fc.surface)
	return fc.surface.Present()
}

// Run steps until the window closes, ctx is cancelled or presenting fails,
// then destroys the surface.
func (fc *FrameController) Run(ctx context.Context) (err error) {
	defer func() {
		if derr := fc.surface.Destroy(); derr != nil && err == nil {
			err = derr
		}
		fc.logger.Printf("frame loop stopped after %d frames (%d presented)", fc.frames, fc.presents)
	}()

	ticker := time.NewTicker(fc.interval)
	defer ticker.Stop()

	for {
		running, err := fc.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		select {
		case <-ctx.Done():
			fc.terminated = true
			return nil
		case <-ticker.C:
		}
	}
}

// Frames returns the number of completed frames.
func (fc *FrameController) Frames() uint64 { return fc.frames }

// Terminated reports whether the loop has stopped.
func (fc *FrameController) Terminated() bool { return fc.terminated }
