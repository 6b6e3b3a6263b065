// term_constants.go - Terminal geometry, timing and scrollback limits

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "time"

// Text buffer limits
const (
	MAX_SCROLL_LINES = 1000 // Lines retained including the visible viewport
	BLINK_PERIOD     = 30   // Frames between cursor visibility toggles (~500ms at 60fps)
)

// Glyph cell geometry (pixels)
const (
	GLYPH_WIDTH  = 8
	GLYPH_HEIGHT = 16
)

// Default window geometry (pixels)
const (
	DEFAULT_WINDOW_WIDTH  = 640
	DEFAULT_WINDOW_HEIGHT = 480
	DEFAULT_WINDOW_X      = 100
	DEFAULT_WINDOW_Y      = 50
)

// Window chrome (pixels)
const (
	TITLE_BAR_HEIGHT = 28
	BUTTON_WIDTH     = 46
	BORDER_WIDTH     = 1
	CONTENT_PADDING  = 4
)

// Frame pacing
const (
	FRAME_INTERVAL = 16 * time.Millisecond
)

// Shell output layout
const (
	LS_WRAP_COLUMN     = 70 // ls short format wraps before this column
	TREE_DEFAULT_DEPTH = 3
	CAT_CHUNK_SIZE     = 512
	PASTE_MAX_BYTES    = 4096
	LUA_SCRIPT_TIMEOUT = 2 * time.Second
)

// Product identification
const (
	Version          = "0.2.0"
	ProductName      = "Intuition Terminal"
	DEFAULT_TITLE    = "Terminal"
	DEFAULT_USER     = "intuition"
	DEFAULT_HOST     = "localhost"
	ReadOnlyFSNotice = "O filesystem ainda e somente leitura"
)
