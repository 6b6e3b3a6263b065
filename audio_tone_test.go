package main

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"
)

func TestToneReader_Length(t *testing.T) {
	tr := newToneReader(440, 100*time.Millisecond, 1000)
	data, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != 100*4 {
		t.Fatalf("expected 400 bytes, got %d", len(data))
	}
}

func TestToneReader_OddChunks(t *testing.T) {
	tr := newToneReader(440, 10*time.Millisecond, 1000)
	var all []byte
	buf := make([]byte, 3)
	for {
		n, err := tr.Read(buf)
		all = append(all, buf[:n]...)
		if err == io.EOF {
			break
		}
	}
	if len(all) != 40 {
		t.Fatalf("expected 40 bytes across odd reads, got %d", len(all))
	}
}

func TestToneReader_AmplitudeBounded(t *testing.T) {
	tr := newToneReader(880, 50*time.Millisecond, BEEP_SAMPLE_RATE)
	data, _ := io.ReadAll(tr)
	var peak float64
	for i := 0; i+4 <= len(data); i += 4 {
		v := float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i:])))
		peak = max(peak, math.Abs(v))
	}
	if peak == 0 || peak > BEEP_AMPLITUDE+1e-6 {
		t.Fatalf("unexpected peak amplitude %f", peak)
	}
	first := math.Float32frombits(binary.LittleEndian.Uint32(data[0:]))
	if first != 0 {
		t.Fatalf("expected fade-in to start silent, got %f", first)
	}
}

func TestValidateBeep(t *testing.T) {
	if err := validateBeep(BEEP_DEFAULT_HZ, BEEP_DEFAULT_MS*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if validateBeep(5, time.Second) == nil {
		t.Fatal("expected low frequency rejected")
	}
	if validateBeep(math.NaN(), time.Second) == nil {
		t.Fatal("expected NaN frequency rejected")
	}
	if validateBeep(440, 0) == nil || validateBeep(440, 3*time.Second) == nil {
		t.Fatal("expected out of range duration rejected")
	}
}
