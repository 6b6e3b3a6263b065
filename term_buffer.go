// term_buffer.go - Scrollback text buffer and cursor state machine

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

// TextBuffer holds the terminal's scrollback lines and the cursor.
//
// The cursor is tracked relative to the live viewport: the absolute line it
// writes to is liveOffset+cursorY. scrollOffset is the first line shown and
// only differs from liveOffset while the user browses scrollback; every write
// snaps it back first.
type TextBuffer struct {
	cols, rows int
	lines      [][]rune

	cursorX int
	cursorY int

	liveOffset   int
	scrollOffset int

	cursorVisible bool
	blinkCounter  int
}

// NewTextBuffer creates a buffer of rows blank lines.
func NewTextBuffer(cols, rows int) *TextBuffer {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	tb := &TextBuffer{
		cols:          cols,
		rows:          rows,
		cursorVisible: true,
	}
	tb.resetLines()
	return tb
}

func (tb *TextBuffer) resetLines() {
	tb.lines = make([][]rune, tb.rows, tb.rows*2)
}

// WriteChar applies a single rune to the buffer.
func (tb *TextBuffer) WriteChar(ch rune) {
	tb.snapToLive()

	switch ch {
	case '\n':
		tb.newLine()
	case '\r':
		tb.cursorX = 0
	case '\b':
		tb.backspace()
	default:
		if ch < 0x20 || ch == 0x7F {
			return
		}
		tb.putRune(ch)
	}
}

// WriteString writes every rune of s through WriteChar.
func (tb *TextBuffer) WriteString(s string) {
	for _, ch := range s {
		tb.WriteChar(ch)
	}
}

// WriteLine writes s followed by a newline.
func (tb *TextBuffer) WriteLine(s string) {
	tb.WriteString(s)
	tb.WriteChar('\n')
}

// Backspace moves the cursor left one column and deletes the rune there.
// At column 0 it does nothing; it never joins lines.
func (tb *TextBuffer) Backspace() {
	tb.snapToLive()
	tb.backspace()
}

func (tb *TextBuffer) putRune(ch rune) {
	idx := tb.liveOffset + tb.cursorY
	for len(tb.lines) <= idx {
		tb.lines = append(tb.lines, nil)
	}

	line := tb.lines[idx]
	for len(line) < tb.cursorX {
		line = append(line, ' ')
	}
	if tb.cursorX >= len(line) {
		line = append(line, ch)
	} else {
		line[tb.cursorX] = ch
	}
	tb.lines[idx] = line

	tb.cursorX++
	if tb.cursorX >= tb.cols {
		tb.newLine()
	}
}

func (tb *TextBuffer) newLine() {
	tb.cursorX = 0
	tb.cursorY++
	if tb.cursorY < tb.rows {
		return
	}

	tb.liveOffset++
	tb.scrollOffset = tb.liveOffset
	tb.cursorY = tb.rows - 1
	tb.lines = append(tb.lines, nil)

	if len(tb.lines) > MAX_SCROLL_LINES {
		tb.evictOldest()
	}
}

func (tb *TextBuffer) evictOldest() {
	tb.lines[0] = nil
	tb.lines = tb.lines[1:]
	if tb.liveOffset > 0 {
		tb.liveOffset--
	}
	if tb.scrollOffset > 0 {
		tb.scrollOffset--
	}
}

func (tb *TextBuffer) backspace() {
	if tb.cursorX == 0 {
		return
	}
	tb.cursorX--
	idx := tb.liveOffset + tb.cursorY
	if idx >= len(tb.lines) {
		return
	}
	line := tb.lines[idx]
	if tb.cursorX < len(line) {
		tb.lines[idx] = append(line[:tb.cursorX], line[tb.cursorX+1:]...)
	}
}

// Clear resets the buffer to rows blank lines with the cursor at the origin.
func (tb *TextBuffer) Clear() {
	tb.resetLines()
	tb.cursorX = 0
	tb.cursorY = 0
	tb.liveOffset = 0
	tb.scrollOffset = 0
}

// Tick advances the blink counter by one frame.
func (tb *TextBuffer) Tick() {
	tb.blinkCounter++
	if tb.blinkCounter >= BLINK_PERIOD {
		tb.cursorVisible = !tb.cursorVisible
		tb.blinkCounter = 0
	}
}

// CursorVisible reports the blink phase of the cursor.
func (tb *TextBuffer) CursorVisible() bool {
	return tb.cursorVisible
}

// VisibleLine returns the line shown at viewport row row.
func (tb *TextBuffer) VisibleLine(row int) (string, bool) {
	if row < 0 {
		return "", false
	}
	idx := tb.scrollOffset + row
	if idx >= len(tb.lines) {
		return "", false
	}
	return string(tb.lines[idx]), true
}

// ScrollUp moves the view n lines towards older output.
func (tb *TextBuffer) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	tb.scrollOffset -= n
	tb.clampScroll()
}

// ScrollDown moves the view n lines towards newer output.
func (tb *TextBuffer) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	tb.scrollOffset += n
	tb.clampScroll()
}

// ScrollToBottom returns the view to the live output.
func (tb *TextBuffer) ScrollToBottom() {
	tb.snapToLive()
}

// IsScrolledBack reports whether the view differs from the live output.
func (tb *TextBuffer) IsScrolledBack() bool {
	return tb.scrollOffset != tb.liveOffset
}

func (tb *TextBuffer) clampScroll() {
	maxOffset := max(0, len(tb.lines)-tb.rows)
	tb.scrollOffset = min(max(tb.scrollOffset, 0), maxOffset)
}

func (tb *TextBuffer) snapToLive() {
	tb.scrollOffset = tb.liveOffset
}

// Cursor returns the cursor column and its row in the live viewport.
func (tb *TextBuffer) Cursor() (x, y int) {
	return tb.cursorX, tb.cursorY
}

// CursorViewRow returns the viewport row the cursor occupies in the current
// view, or false when the view is scrolled so the cursor is off-screen.
func (tb *TextBuffer) CursorViewRow() (int, bool) {
	row := tb.liveOffset + tb.cursorY - tb.scrollOffset
	if row < 0 || row >= tb.rows {
		return 0, false
	}
	return row, true
}

// ScrollOffset returns the index of the first visible line.
func (tb *TextBuffer) ScrollOffset() int {
	return tb.scrollOffset
}

// Cols returns the viewport width in cells.
func (tb *TextBuffer) Cols() int {
	return tb.cols
}

// Rows returns the viewport height in cells.
func (tb *TextBuffer) Rows() int {
	return tb.rows
}

// LineCount returns the number of retained lines.
func (tb *TextBuffer) LineCount() int {
	return len(tb.lines)
}

// Line returns retained line i, or "" when out of range.
func (tb *TextBuffer) Line(i int) string {
	if i < 0 || i >= len(tb.lines) {
		return ""
	}
	return string(tb.lines[i])
}

// Lines returns a copy of every retained line.
func (tb *TextBuffer) Lines() []string {
	out := make([]string, len(tb.lines))
	for i, line := range tb.lines {
		out[i] = string(line)
	}
	return out
}

// CurrentLine returns the line under the cursor.
func (tb *TextBuffer) CurrentLine() string {
	return tb.Line(tb.liveOffset + tb.cursorY)
}
