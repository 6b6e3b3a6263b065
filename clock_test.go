package main

import "testing"

func TestFormatUptime(t *testing.T) {
	cases := map[uint64]string{
		0:          "0h 0m 0s",
		999:        "0h 0m 0s",
		61_000:     "0h 1m 1s",
		3_723_000:  "1h 2m 3s",
		90_000_000: "25h 0m 0s",
	}
	for ms, want := range cases {
		if got := formatUptime(ms); got != want {
			t.Fatalf("formatUptime(%d): expected %q, got %q", ms, want, got)
		}
	}
}

func TestSystemClock_Monotonic(t *testing.T) {
	c := NewSystemClock()
	a, err := c.Millis()
	if err != nil {
		t.Fatalf("millis: %v", err)
	}
	b, _ := c.Millis()
	if b < a {
		t.Fatalf("clock went backwards: %d then %d", a, b)
	}
}
