package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Colors are packed 0xAARRGGBB.
const (
	COLOR_BACKGROUND            = 0xFF0D1117
	COLOR_TEXT                  = 0xFFE6EDF3
	COLOR_TEXT_DIM              = 0xFF7D8590
	COLOR_CURSOR                = 0xFF58A6FF
	COLOR_GREEN                 = 0xFF3FB950
	COLOR_YELLOW                = 0xFFD29922
	COLOR_RED                   = 0xFFF85149
	COLOR_BLUE                  = 0xFF58A6FF
	COLOR_TITLE_BAR_BG          = 0xFF21262D
	COLOR_TITLE_BAR_BG_ACTIVE   = 0xFF30363D
	COLOR_TITLE_TEXT            = 0xFFE6EDF3
	COLOR_CLOSE_BUTTON_HOVER    = 0xFFDA3633
	COLOR_MINIMIZE_BUTTON_HOVER = 0xFF484F58
	COLOR_WINDOW_BORDER         = 0xFF30363D
)

// Palette is the set of colors a TerminalWindow paints with.
type Palette struct {
	Background     uint32
	Text           uint32
	TextDim        uint32
	Cursor         uint32
	TitleBar       uint32
	TitleBarActive uint32
	TitleText      uint32
	CloseHover     uint32
	MinimizeHover  uint32
	Border         uint32
}

func DefaultPalette() Palette {
	return Palette{
		Background:     COLOR_BACKGROUND,
		Text:           COLOR_TEXT,
		TextDim:        COLOR_TEXT_DIM,
		Cursor:         COLOR_CURSOR,
		TitleBar:       COLOR_TITLE_BAR_BG,
		TitleBarActive: COLOR_TITLE_BAR_BG_ACTIVE,
		TitleText:      COLOR_TITLE_TEXT,
		CloseHover:     COLOR_CLOSE_BUTTON_HOVER,
		MinimizeHover:  COLOR_MINIMIZE_BUTTON_HOVER,
		Border:         COLOR_WINDOW_BORDER,
	}
}

// ParseHexColor accepts "#RRGGBB", "#AARRGGBB" and the same forms with a
// "0x" prefix. Six-digit values are made opaque.
func ParseHexColor(s string) (uint32, error) {
	digits := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
	}
	if len(digits) != 6 && len(digits) != 8 {
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(digits) == 6 {
		v |= 0xFF000000
	}
	return uint32(v), nil
}

// argbComponents splits a packed color into 8-bit channels.
func argbComponents(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}
