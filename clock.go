package main

import (
	"fmt"
	"time"
)

// Clock is a monotonic millisecond counter.
type Clock interface {
	Millis() (uint64, error)
}

// SystemClock counts from its creation using the monotonic clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Millis() (uint64, error) {
	return uint64(time.Since(c.start).Milliseconds()), nil
}

// formatUptime renders ms as "Xh Ym Zs".
func formatUptime(ms uint64) string {
	total := ms / 1000
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}
