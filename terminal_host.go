//go:build !windows

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// HostKeyboard reads raw stdin and feeds decoded events to a sink.
// Used by the headless backend when stdin is a terminal.
type HostKeyboard struct {
	sink         func(InputEvent)
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
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

// Start puts stdin in raw non-blocking mode and begins reading in a
// goroutine. Call Stop() to restore stdin.
func (h *HostKeyboard) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return fmt.Errorf("host keyboard: set raw mode: %w", err)
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return fmt.Errorf("host keyboard: set nonblocking stdin: %w", err)
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		var dec hostKeyDecoder
		buf := make([]byte, 64)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			for i := 0; i < n; i++ {
				if ev, ok := dec.Feed(buf[i]); ok {
					h.sink(ev)
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				h.sink(InputEvent{Kind: EventClose})
				return
			}
		}
	}()
	return nil
}

// Stop terminates the reader and restores stdin.
func (h *HostKeyboard) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
