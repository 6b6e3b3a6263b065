package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// Bell parameters
const (
	BEEP_SAMPLE_RATE  = 44100
	BEEP_DEFAULT_HZ   = 880
	BEEP_DEFAULT_MS   = 150
	BEEP_MIN_HZ       = 20
	BEEP_MAX_HZ       = 20000
	BEEP_MAX_DURATION = 2 * time.Second
	BEEP_AMPLITUDE    = 0.25
)

// Beeper sounds the terminal bell.
type Beeper interface {
	Beep(hz float64, d time.Duration) error
}

// silentBeeper is used when audio is disabled or unavailable.
type silentBeeper struct{}

func (silentBeeper) Beep(float64, time.Duration) error { return nil }

func validateBeep(hz float64, d time.Duration) error {
	if math.IsNaN(hz) || hz < BEEP_MIN_HZ || hz > BEEP_MAX_HZ {
		return fmt.Errorf("frequencia fora do intervalo %d-%d Hz", BEEP_MIN_HZ, BEEP_MAX_HZ)
	}
	if d <= 0 || d > BEEP_MAX_DURATION {
		return fmt.Errorf("duracao fora do intervalo 1-%d ms", BEEP_MAX_DURATION.Milliseconds())
	}
	return nil
}

// toneReader streams a mono float32 little-endian square wave with a short
// linear fade at both ends, then io.EOF.
type toneReader struct {
	hz        float64
	total     int
	pos       int
	fade      int
	remainder []byte
}

func newToneReader(hz float64, d time.Duration, sampleRate int) *toneReader {
	total := int(d.Seconds() * float64(sampleRate))
	return &toneReader{
		hz:    hz / float64(sampleRate),
		total: total,
		fade:  min(total/4, sampleRate/200),
	}
}

func (tr *toneReader) sample(i int) float32 {
	phase := math.Mod(float64(i)*tr.hz, 1)
	v := BEEP_AMPLITUDE
	if phase >= 0.5 {
		v = -v
	}
	if tr.fade > 0 {
		switch {
		case i < tr.fade:
			v *= float64(i) / float64(tr.fade)
		case i >= tr.total-tr.fade:
			v *= float64(tr.total-i) / float64(tr.fade)
		}
	}
	return float32(v)
}

func (tr *toneReader) Read(p []byte) (int, error) {
	n := copy(p, tr.remainder)
	tr.remainder = tr.remainder[n:]
	var word [4]byte
	for n < len(p) {
		if tr.pos >= tr.total {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(tr.sample(tr.pos)))
		tr.pos++
		c := copy(p[n:], word[:])
		if c < len(word) {
			tr.remainder = append(tr.remainder[:0], word[c:]...)
		}
		n += c
	}
	return n, nil
}
