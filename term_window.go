// term_window.go - Terminal session: input line, prompt, command results and drawing

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

import (
	"image"
	"io"
	"log"
	"strings"
)

// WindowConfig describes the window a TerminalWindow draws into.
type WindowConfig struct {
	Width   int
	Height  int
	Title   string
	Palette Palette
	Font    *BitFont // nil selects DefaultBitFont
}

// TerminalWindow is one terminal session. It owns the text buffer, the
// shell state and the line being typed, and turns input events into
// buffer writes and command executions. It is not safe for concurrent
// use; the frame loop is its only caller.
type TerminalWindow struct {
	buffer      *TextBuffer
	shell       *ShellContext
	dispatcher  *Dispatcher
	decorations *WindowDecorations
	renderer    *TextRenderer
	palette     Palette

	width  int
	height int

	input       []rune
	shift       bool
	shouldClose bool
	dirty       bool

	logger *log.Logger
}

// NewTerminalWindow sizes the text grid from the window's content area.
// A nil dispatcher selects the default command set.
func NewTerminalWindow(cfg WindowConfig, shell *ShellContext, dispatcher *Dispatcher) *TerminalWindow {
	if cfg.Width <= 0 {
		cfg.Width = DEFAULT_WINDOW_WIDTH
	}
	if cfg.Height <= 0 {
		cfg.Height = DEFAULT_WINDOW_HEIGHT
	}
	if cfg.Title == "" {
		cfg.Title = DEFAULT_TITLE
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = DefaultPalette()
	}
	if dispatcher == nil {
		dispatcher = NewDefaultDispatcher()
	}

	cols, rows := contentGrid(cfg.Width, cfg.Height)
	logger := shell.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &TerminalWindow{
		buffer:      NewTextBuffer(cols, rows),
		shell:       shell,
		dispatcher:  dispatcher,
		decorations: NewWindowDecorations(cfg.Title, cfg.Width, cfg.Height, cfg.Palette),
		renderer:    NewTextRenderer(cfg.Font, cfg.Palette.Text, cfg.Palette.Background),
		palette:     cfg.Palette,
		width:       cfg.Width,
		height:      cfg.Height,
		dirty:       true,
		logger:      logger,
	}
}

// ShowWelcome writes the banner and the first prompt.
func (w *TerminalWindow) ShowWelcome() {
	title := ProductName + " v" + Version
	w.buffer.WriteLine(title)
	w.buffer.WriteLine(strings.Repeat("=", len(title)))
	w.buffer.WriteLine("")
	w.buffer.WriteLine("Bem-vindo ao " + ProductName + "!")
	w.buffer.WriteLine("Digite 'help' para ver os comandos disponiveis.")
	w.buffer.WriteLine("")
	w.showPrompt()
}

func (w *TerminalWindow) showPrompt() {
	w.buffer.WriteString(w.shell.Prompt())
	w.input = w.input[:0]
	w.dirty = true
}

// HandleEvent applies one input event.
func (w *TerminalWindow) HandleEvent(ev InputEvent) {
	switch ev.Kind {
	case EventKeyDown:
		w.handleKeyDown(DecodeKeyCode(ev.Code))
	case EventKeyUp:
		if DecodeKeyCode(ev.Code) == KeyShift {
			w.shift = false
		}
	case EventText:
		w.handleText(ev.Text)
	case EventMouseDown:
		if image.Pt(ev.X, ev.Y).In(w.decorations.CloseButton()) {
			w.logger.Printf("close button pressed")
			w.shouldClose = true
		}
	case EventClose:
		w.shouldClose = true
	}
}

func (w *TerminalWindow) handleKeyDown(code KeyCode) {
	switch code {
	case KeyShift:
		w.shift = true
	case KeyBackspace:
		w.handleBackspace()
	case KeyEnter:
		w.handleEnter()
	case KeyPageUp:
		w.buffer.ScrollUp(max(1, w.buffer.Rows()/2))
		w.dirty = true
	case KeyPageDown:
		w.buffer.ScrollDown(max(1, w.buffer.Rows()/2))
		w.dirty = true
	case KeyEnd:
		w.buffer.ScrollToBottom()
		w.dirty = true
	default:
		if ch, ok := code.Char(w.shift); ok {
			w.handleChar(ch)
		}
	}
}

// handleText feeds composed text as if typed. A newline submits the line;
// other control characters are dropped.
func (w *TerminalWindow) handleText(text string) {
	for _, ch := range text {
		switch {
		case ch == '\n':
			w.handleEnter()
		case ch == '\b' || ch == 0x7F:
			w.handleBackspace()
		case ch == '\t':
			w.handleChar(' ')
		case ch >= 0x20:
			w.handleChar(ch)
		}
	}
}

func (w *TerminalWindow) handleChar(ch rune) {
	w.input = append(w.input, ch)
	w.buffer.WriteChar(ch)
	w.dirty = true
}

func (w *TerminalWindow) handleBackspace() {
	if len(w.input) == 0 {
		return
	}
	w.input = w.input[:len(w.input)-1]
	w.buffer.Backspace()
	w.dirty = true
}

func (w *TerminalWindow) handleEnter() {
	w.buffer.WriteChar('\n')
	line := string(w.input)
	w.input = w.input[:0]
	w.dirty = true

	res := w.dispatcher.Execute(line, w.buffer, w.shell)
	w.applyResult(res)
}

func (w *TerminalWindow) applyResult(res CommandResult) {
	switch res.Kind {
	case CommandExit:
		w.logger.Printf("exit requested")
		w.shouldClose = true
		return
	case CommandClear:
		w.buffer.Clear()
	case CommandError:
		w.buffer.WriteString("Erro: ")
		w.buffer.WriteLine(res.Message)
	case CommandUnsupported:
		w.buffer.WriteLine(res.Command + ": Nao implementado")
		if res.Message != "" {
			w.buffer.WriteLine("(" + res.Message + ")")
		}
	}
	w.showPrompt()
}

// Tick advances the cursor blink and marks the window dirty when the
// cursor visibility flipped.
func (w *TerminalWindow) Tick() bool {
	before := w.buffer.CursorVisible()
	w.buffer.Tick()
	changed := before != w.buffer.CursorVisible()
	if changed {
		w.dirty = true
	}
	return changed
}

// Draw paints decorations, visible lines and the cursor onto dst.
func (w *TerminalWindow) Draw(dst Surface) {
	w.decorations.Draw(dst, w.renderer)

	content := w.decorations.ContentArea()
	dst.FillRect(content, w.palette.Background)

	for row := range w.buffer.Rows() {
		y := content.Min.Y + row*GLYPH_HEIGHT
		if y+GLYPH_HEIGHT > content.Max.Y {
			break
		}
		if line, ok := w.buffer.VisibleLine(row); ok && line != "" {
			w.renderer.DrawString(dst, content.Min.X, y, line)
		}
	}

	if x, row, ok := w.cursorCell(); ok {
		w.renderer.DrawBlock(dst, content.Min.X+x*GLYPH_WIDTH, content.Min.Y+row*GLYPH_HEIGHT, w.palette.Cursor)
	}
}

// cursorCell returns the cursor's cell in the current view when it should
// be drawn.
func (w *TerminalWindow) cursorCell() (x, row int, ok bool) {
	if !w.buffer.CursorVisible() {
		return 0, 0, false
	}
	row, ok = w.buffer.CursorViewRow()
	if !ok {
		return 0, 0, false
	}
	x, _ = w.buffer.Cursor()
	if x >= w.buffer.Cols() {
		return 0, 0, false
	}
	return x, row, true
}

// TextFrame returns the visible text for cell-based surfaces.
func (w *TerminalWindow) TextFrame() TextFrame {
	frame := TextFrame{
		Title: w.decorations.Title,
		Lines: make([]string, w.buffer.Rows()),
	}
	for row := range frame.Lines {
		frame.Lines[row], _ = w.buffer.VisibleLine(row)
	}
	frame.CursorX, frame.CursorY, frame.CursorVisible = w.cursorCell()
	return frame
}

// Transcript returns every retained line with trailing blank lines removed.
func (w *TerminalWindow) Transcript() []string {
	lines := w.buffer.Lines()
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (w *TerminalWindow) ShouldClose() bool { return w.shouldClose }
func (w *TerminalWindow) Dirty() bool       { return w.dirty }
func (w *TerminalWindow) ClearDirty()       { w.dirty = false }

// RequestClose asks the frame loop to stop after the current frame.
func (w *TerminalWindow) RequestClose() { w.shouldClose = true }

func (w *TerminalWindow) Buffer() *TextBuffer  { return w.buffer }
func (w *TerminalWindow) Shell() *ShellContext { return w.shell }

// InputLine returns the text typed since the last prompt.
func (w *TerminalWindow) InputLine() string { return string(w.input) }

func (w *TerminalWindow) Size() (width, height int) { return w.width, w.height }
