package main

import (
	"fmt"
	"strings"
	"testing"
)

func writeRunes(tb *TextBuffer, s string) {
	for _, ch := range s {
		tb.WriteChar(ch)
	}
}

func TestTextBuffer_New(t *testing.T) {
	tb := NewTextBuffer(80, 30)
	if got := tb.LineCount(); got != 30 {
		t.Fatalf("expected 30 initial lines, got %d", got)
	}
	x, y := tb.Cursor()
	if x != 0 || y != 0 {
		t.Fatalf("expected cursor (0,0), got (%d,%d)", x, y)
	}
	if !tb.CursorVisible() {
		t.Fatal("expected cursor visible at construction")
	}
	for row := range 30 {
		line, ok := tb.VisibleLine(row)
		if !ok || line != "" {
			t.Fatalf("expected blank visible row %d, got %q ok=%v", row, line, ok)
		}
	}
}

func TestTextBuffer_New_ClampsDimensions(t *testing.T) {
	tb := NewTextBuffer(0, -3)
	if tb.Cols() != 1 || tb.Rows() != 1 {
		t.Fatalf("expected 1x1, got %dx%d", tb.Cols(), tb.Rows())
	}
}

func TestTextBuffer_WriteChar_Printable(t *testing.T) {
	tb := NewTextBuffer(80, 30)
	writeRunes(tb, "Hello")
	if got := tb.Line(0); got != "Hello" {
		t.Fatalf("expected %q, got %q", "Hello", got)
	}
	x, y := tb.Cursor()
	if x != 5 || y != 0 {
		t.Fatalf("expected cursor (5,0), got (%d,%d)", x, y)
	}
}

func TestTextBuffer_WriteChar_CR_Overwrites(t *testing.T) {
	tb := NewTextBuffer(80, 30)
	writeRunes(tb, "abcdef\rXY")
	if got := tb.Line(0); got != "XYcdef" {
		t.Fatalf("expected overwrite in place, got %q", got)
	}
	x, _ := tb.Cursor()
	if x != 2 {
		t.Fatalf("expected cursor x=2, got %d", x)
	}
}

func TestTextBuffer_WriteChar_PadsWithSpaces(t *testing.T) {
	tb := NewTextBuffer(80, 30)
	tb.cursorX = 4
	tb.WriteChar('Z')
	if got := tb.Line(0); got != "    Z" {
		t.Fatalf("expected padded line, got %q", got)
	}
}

func TestTextBuffer_WriteChar_IgnoresOtherControls(t *testing.T) {
	tb := NewTextBuffer(80, 30)
	writeRunes(tb, "a\x1b[31mb\x07\x7f")
	if got := tb.Line(0); got != "a[31mb" {
		t.Fatalf("expected control runes dropped, got %q", got)
	}
}

func TestTextBuffer_WrapInvariant(t *testing.T) {
	const cols = 10
	tb := NewTextBuffer(cols, 4)
	for i := range cols {
		tb.WriteChar('x')
		x, y := tb.Cursor()
		if i < cols-1 {
			if x > cols-1 || y != 0 {
				t.Fatalf("after %d chars expected row 0 and x<=%d, got (%d,%d)", i+1, cols-1, x, y)
			}
		}
	}
	x, y := tb.Cursor()
	if x != 0 || y != 1 {
		t.Fatalf("expected wrap to (0,1), got (%d,%d)", x, y)
	}
	if got := tb.Line(0); got != strings.Repeat("x", cols) {
		t.Fatalf("expected full first row, got %q", got)
	}
}

func TestTextBuffer_NewlineScrollsAtBottom(t *testing.T) {
	tb := NewTextBuffer(20, 3)
	tb.WriteLine("one")
	tb.WriteLine("two")
	tb.WriteLine("three")
	tb.WriteString("four")

	if got := tb.LineCount(); got != 4 {
		t.Fatalf("expected 4 lines, got %d", got)
	}
	if got := tb.ScrollOffset(); got != 1 {
		t.Fatalf("expected scroll offset 1, got %d", got)
	}
	want := []string{"two", "three", "four"}
	for row, w := range want {
		line, ok := tb.VisibleLine(row)
		if !ok || line != w {
			t.Fatalf("row %d: expected %q, got %q (ok=%v)", row, w, line, ok)
		}
	}
	_, y := tb.Cursor()
	if y != 2 {
		t.Fatalf("expected cursor pinned to last row, got %d", y)
	}
}

func TestTextBuffer_ScrollbackCap(t *testing.T) {
	const rows = 5
	const extra = 37
	tb := NewTextBuffer(40, rows)
	total := MAX_SCROLL_LINES + extra
	for i := range total {
		tb.WriteLine(fmt.Sprintf("line %d", i))
	}

	if got := tb.LineCount(); got != MAX_SCROLL_LINES {
		t.Fatalf("expected %d retained lines, got %d", MAX_SCROLL_LINES, got)
	}

	// The cursor sits on a fresh blank line; the rows above it are the
	// most recent output.
	last, ok := tb.VisibleLine(rows - 1)
	if !ok || last != "" {
		t.Fatalf("expected blank cursor row, got %q", last)
	}
	for row := 0; row < rows-1; row++ {
		want := fmt.Sprintf("line %d", total-(rows-1)+row)
		got, ok := tb.VisibleLine(row)
		if !ok || got != want {
			t.Fatalf("row %d: expected %q, got %q", row, want, got)
		}
	}
	if got := tb.Line(tb.LineCount() - 1); got != "" {
		t.Fatalf("expected last retained line blank, got %q", got)
	}
	if got := tb.Line(tb.LineCount() - 2); got != fmt.Sprintf("line %d", total-1) {
		t.Fatalf("expected newest output retained, got %q", got)
	}
}

func TestTextBuffer_BlinkPeriod(t *testing.T) {
	tb := NewTextBuffer(10, 2)
	initial := tb.CursorVisible()
	for range BLINK_PERIOD - 1 {
		tb.Tick()
	}
	if tb.CursorVisible() != initial {
		t.Fatal("expected visibility unchanged after 29 ticks")
	}
	tb.Tick()
	if tb.CursorVisible() == initial {
		t.Fatal("expected visibility flipped on 30th tick")
	}
	for range BLINK_PERIOD {
		tb.Tick()
	}
	if tb.CursorVisible() != initial {
		t.Fatal("expected visibility restored on 60th tick")
	}
}

func TestTextBuffer_Backspace_AtColumnZero(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	tb.WriteLine("abc")
	tb.Backspace()
	x, y := tb.Cursor()
	if x != 0 || y != 1 {
		t.Fatalf("expected no-op backspace at (0,1), got (%d,%d)", x, y)
	}
	if got := tb.Line(0); got != "abc" {
		t.Fatalf("expected previous line untouched, got %q", got)
	}
}

func TestTextBuffer_Backspace_DeletesRune(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	writeRunes(tb, "abc")
	tb.Backspace()
	if got := tb.Line(0); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
	writeRunes(tb, "\rxyz\r\b")
	if got := tb.Line(0); got != "xyz" {
		t.Fatalf("expected backspace at col 0 to be no-op, got %q", got)
	}
	tb.cursorX = 2
	tb.WriteChar('\b')
	if got := tb.Line(0); got != "xz" {
		t.Fatalf("expected mid-line delete, got %q", got)
	}
	x, _ := tb.Cursor()
	if x != 1 {
		t.Fatalf("expected cursor x=1, got %d", x)
	}
}

func TestTextBuffer_Backspace_PastLineEnd(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	tb.cursorX = 5
	tb.Backspace()
	x, _ := tb.Cursor()
	if x != 4 {
		t.Fatalf("expected cursor x=4, got %d", x)
	}
	if got := tb.Line(0); got != "" {
		t.Fatalf("expected empty line, got %q", got)
	}
}

func TestTextBuffer_Clear(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	for i := range 20 {
		tb.WriteLine(fmt.Sprint(i))
	}
	tb.Clear()
	if got := tb.LineCount(); got != 3 {
		t.Fatalf("expected 3 lines after clear, got %d", got)
	}
	x, y := tb.Cursor()
	if x != 0 || y != 0 || tb.ScrollOffset() != 0 {
		t.Fatalf("expected full reset, got cursor (%d,%d) offset %d", x, y, tb.ScrollOffset())
	}
}

func TestTextBuffer_VisibleLine_OutOfRange(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	if _, ok := tb.VisibleLine(-1); ok {
		t.Fatal("expected negative row lookup to fail")
	}
	if _, ok := tb.VisibleLine(3); ok {
		t.Fatal("expected lookup past the last line to fail")
	}
}

func TestTextBuffer_ManualScroll_Clamps(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	for i := range 10 {
		tb.WriteLine(fmt.Sprint(i))
	}
	live := tb.ScrollOffset()
	tb.ScrollUp(4)
	if got := tb.ScrollOffset(); got != live-4 {
		t.Fatalf("expected offset %d, got %d", live-4, got)
	}
	tb.ScrollUp(1000)
	if got := tb.ScrollOffset(); got != 0 {
		t.Fatalf("expected clamp at 0, got %d", got)
	}
	tb.ScrollDown(1000)
	if got := tb.ScrollOffset(); got != tb.LineCount()-tb.Rows() {
		t.Fatalf("expected clamp at %d, got %d", tb.LineCount()-tb.Rows(), got)
	}
	x, y := tb.Cursor()
	if x != 0 || y != 2 {
		t.Fatalf("expected manual scroll to leave cursor alone, got (%d,%d)", x, y)
	}
}

func TestTextBuffer_WriteSnapsScrolledView(t *testing.T) {
	tb := NewTextBuffer(10, 3)
	for i := range 10 {
		tb.WriteLine(fmt.Sprint(i))
	}
	live := tb.ScrollOffset()
	tb.ScrollUp(5)
	if !tb.IsScrolledBack() {
		t.Fatal("expected scrolled-back view")
	}
	if _, ok := tb.CursorViewRow(); ok {
		t.Fatal("expected cursor off-screen while scrolled back")
	}

	tb.WriteChar('z')
	if tb.IsScrolledBack() || tb.ScrollOffset() != live {
		t.Fatalf("expected write to snap view back to %d, got %d", live, tb.ScrollOffset())
	}
	if got := tb.CurrentLine(); got != "z" {
		t.Fatalf("expected write on the live cursor line, got %q", got)
	}
	row, ok := tb.CursorViewRow()
	if !ok || row != 2 {
		t.Fatalf("expected cursor on view row 2, got %d ok=%v", row, ok)
	}
}

func TestTextBuffer_EvictionWhileScrolledBackSnapsToLive(t *testing.T) {
	tb := NewTextBuffer(20, 4)
	for i := range MAX_SCROLL_LINES {
		tb.WriteLine(fmt.Sprintf("l%d", i))
	}
	if tb.LineCount() != MAX_SCROLL_LINES {
		t.Fatalf("expected full buffer, got %d lines", tb.LineCount())
	}
	tb.ScrollUp(10)
	if !tb.IsScrolledBack() {
		t.Fatal("expected view scrolled back")
	}

	// The buffer is at the cap, so this newline evicts the oldest line.
	tb.WriteChar('\n')

	if tb.LineCount() != MAX_SCROLL_LINES {
		t.Fatalf("expected cap preserved, got %d", tb.LineCount())
	}
	if tb.IsScrolledBack() || tb.ScrollOffset() != tb.LineCount()-tb.Rows() {
		t.Fatalf("expected view on the last page (%d), got %d", tb.LineCount()-tb.Rows(), tb.ScrollOffset())
	}
	row, ok := tb.CursorViewRow()
	if !ok || row != tb.Rows()-1 {
		t.Fatalf("expected cursor on the last view row, got %d ok=%v", row, ok)
	}
	if got, _ := tb.VisibleLine(1); got != fmt.Sprintf("l%d", MAX_SCROLL_LINES-1) {
		t.Fatalf("expected newest text above the blank lines, got %q", got)
	}
}
