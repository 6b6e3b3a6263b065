//go:build windows

package main

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// HostKeyboard reads raw stdin and feeds decoded events to a sink.
// Used by the headless backend when stdin is a console.
type HostKeyboard struct {
	sink         func(InputEvent)
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

// NewHostKeyboard creates a host adapter that delivers stdin to sink.
func NewHostKeyboard(sink func(InputEvent)) *HostKeyboard {
	return &HostKeyboard{
		sink:   sink,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts the console in raw mode and begins reading in a goroutine.
// The blocking read cannot be interrupted, so Stop only waits for the
// reader when it has already finished.
func (h *HostKeyboard) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return fmt.Errorf("host keyboard: set raw mode: %w", err)
	}
	h.oldTermState = oldState

	go func() {
		defer close(h.done)
		var dec hostKeyDecoder
		buf := make([]byte, 64)

		for {
			n, err := os.Stdin.Read(buf)
			select {
			case <-h.stopCh:
				return
			default:
			}
			for i := 0; i < n; i++ {
				if ev, ok := dec.Feed(buf[i]); ok {
					h.sink(ev)
				}
			}
			if err != nil {
				h.sink(InputEvent{Kind: EventClose})
				return
			}
		}
	}()
	return nil
}

// Stop restores the console.
func (h *HostKeyboard) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
