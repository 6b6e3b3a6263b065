package main

import "unicode/utf8"

// normalizePasteText folds CRLF and lone CR into LF.
func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

// capPasteText truncates raw to at most max bytes without splitting a rune.
func capPasteText(raw []byte, max int) []byte {
	if len(raw) <= max {
		return raw
	}
	end := max
	for end > 0 && !utf8.RuneStart(raw[end]) {
		end--
	}
	return raw[:end]
}

// pasteEvent turns clipboard bytes into a text event.
func pasteEvent(raw []byte) (InputEvent, bool) {
	data := capPasteText(normalizePasteText(raw), PASTE_MAX_BYTES)
	if len(data) == 0 {
		return InputEvent{}, false
	}
	return InputEvent{Kind: EventText, Text: string(data)}, true
}
