package main

import "unicode/utf8"

// hostKeyDecoder turns a raw-mode TTY byte stream into input events.
type hostKeyDecoder struct {
	escState int
	csiParam []byte
	pending  []byte
}

const (
	hostEscNone = iota
	hostEscStart
	hostEscCSI
)

// Feed consumes one byte and returns the event it completes, if any.
func (d *hostKeyDecoder) Feed(b byte) (InputEvent, bool) {
	switch d.escState {
	case hostEscStart:
		if b == '[' {
			d.escState = hostEscCSI
			d.csiParam = d.csiParam[:0]
			return InputEvent{}, false
		}
		d.escState = hostEscNone
		return keyEvent(KeyEscape), true
	case hostEscCSI:
		if b >= 0x40 && b <= 0x7E {
			d.escState = hostEscNone
			return d.finishCSI(b)
		}
		d.csiParam = append(d.csiParam, b)
		return InputEvent{}, false
	}

	if len(d.pending) > 0 || b >= utf8.RuneSelf {
		return d.feedUTF8(b)
	}

	switch b {
	case '\r', '\n':
		// Raw mode sends CR for Enter.
		return keyEvent(KeyEnter), true
	case 0x7F, 0x08:
		// Modern terminals send DEL for Backspace.
		return keyEvent(KeyBackspace), true
	case '\t':
		return keyEvent(KeyTab), true
	case 0x1B:
		d.escState = hostEscStart
		return InputEvent{}, false
	case 0x03, 0x04, 0x11:
		// Ctrl+C, Ctrl+D, Ctrl+Q
		return InputEvent{Kind: EventClose}, true
	}
	if b < 0x20 {
		return InputEvent{}, false
	}
	return InputEvent{Kind: EventText, Text: string(rune(b))}, true
}

func (d *hostKeyDecoder) feedUTF8(b byte) (InputEvent, bool) {
	d.pending = append(d.pending, b)
	if !utf8.FullRune(d.pending) {
		return InputEvent{}, false
	}
	r, _ := utf8.DecodeRune(d.pending)
	d.pending = d.pending[:0]
	if r == utf8.RuneError {
		return InputEvent{}, false
	}
	return InputEvent{Kind: EventText, Text: string(r)}, true
}

func (d *hostKeyDecoder) finishCSI(final byte) (InputEvent, bool) {
	switch final {
	case 'A':
		return keyEvent(KeyUp), true
	case 'B':
		return keyEvent(KeyDown), true
	case 'C':
		return keyEvent(KeyRight), true
	case 'D':
		return keyEvent(KeyLeft), true
	case 'H':
		return keyEvent(KeyHome), true
	case 'F':
		return keyEvent(KeyEnd), true
	case '~':
		switch string(d.csiParam) {
		case "3":
			return keyEvent(KeyDelete), true
		case "5":
			return keyEvent(KeyPageUp), true
		case "6":
			return keyEvent(KeyPageDown), true
		}
	}
	return InputEvent{}, false
}

func keyEvent(k KeyCode) InputEvent {
	return InputEvent{Kind: EventKeyDown, Code: uint8(k)}
}
