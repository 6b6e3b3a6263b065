package main

import "sync"

// MemorySurface is an in-process surface with no host window. It backs the
// headless build and the tests; events are fed in with Inject.
type MemorySurface struct {
	*pixelCanvas

	mu        sync.Mutex
	events    []InputEvent
	presents  int
	destroyed bool
	frame     []byte
}

func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{pixelCanvas: newPixelCanvas(width, height)}
}

// Inject queues events for the next PollEvents. Safe from any goroutine.
func (m *MemorySurface) Inject(events ...InputEvent) {
	m.mu.Lock()
	m.events = append(m.events, events...)
	m.mu.Unlock()
}

func (m *MemorySurface) PollEvents() []InputEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.events) == 0 {
		return nil
	}
	out := m.events
	m.events = nil
	return out
}

func (m *MemorySurface) Present() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return &SurfaceError{Operation: "present", Details: "surface destroyed"}
	}
	m.frame = m.copyPixels(m.frame)
	m.presents++
	return nil
}

func (m *MemorySurface) Destroy() error {
	m.mu.Lock()
	m.destroyed = true
	m.mu.Unlock()
	return nil
}

// PresentCount returns how many frames have been presented.
func (m *MemorySurface) PresentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presents
}

func (m *MemorySurface) Destroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

// PresentedFrame returns a copy of the RGBA bytes of the last presented
// frame.
func (m *MemorySurface) PresentedFrame() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.frame...)
}
