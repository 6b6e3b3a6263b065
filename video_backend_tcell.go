// video_backend_tcell.go - Cell terminal surface built on tcell

package main

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:tcell")
}

// TcellSurface runs the terminal inside another terminal. It has no pixels:
// the frame loop hands it text through PresentText, and the pixel methods
// are no-ops. Row 0 is the title bar; text starts on row 1.
type TcellSurface struct {
	screen tcell.Screen
	width  int
	height int

	textStyle  tcell.Style
	titleStyle tcell.Style
	closeStyle tcell.Style

	mu     sync.Mutex
	events []InputEvent
	done   chan struct{}
	once   sync.Once
}

func NewTcellSurface(cfg SurfaceConfig) (Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &SurfaceError{Operation: "backend creation", Details: "tcell screen", Err: err}
	}
	if err := screen.Init(); err != nil {
		return nil, &SurfaceError{Operation: "init", Details: "tcell screen", Err: err}
	}
	return newTcellSurfaceOn(screen, cfg), nil
}

// newTcellSurfaceOn wraps an initialized screen; its size fixes the grid.
func newTcellSurfaceOn(screen tcell.Screen, cfg SurfaceConfig) *TcellSurface {
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	width, height := windowSizeForGrid(max(1, cols), max(1, rows-1))

	p := cfg.Palette
	if p == (Palette{}) {
		p = DefaultPalette()
	}
	ts := &TcellSurface{
		screen:     screen,
		width:      width,
		height:     height,
		textStyle:  tcell.StyleDefault.Foreground(tcellColor(p.Text)).Background(tcellColor(p.Background)),
		titleStyle: tcell.StyleDefault.Foreground(tcellColor(p.TitleText)).Background(tcellColor(p.TitleBarActive)),
		closeStyle: tcell.StyleDefault.Foreground(tcellColor(p.TitleText)).Background(tcellColor(p.CloseHover)),
		done:       make(chan struct{}),
	}
	go ts.pollLoop()
	return ts
}

func tcellColor(argb uint32) tcell.Color {
	r, g, b, _ := argbComponents(argb)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Size reports the pixel size of a window whose text grid matches the
// host terminal, so the session lays out exactly one cell per column.
func (ts *TcellSurface) Size() (int, int) {
	return ts.width, ts.height
}

func (ts *TcellSurface) PutPixel(int, int, uint32)         {}
func (ts *TcellSurface) FillRect(image.Rectangle, uint32) {}

func (ts *TcellSurface) pollLoop() {
	for {
		ev := ts.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			ts.screen.Sync()
			continue
		}
		if iev, ok := translateTcellEvent(ev); ok {
			ts.mu.Lock()
			ts.events = append(ts.events, iev)
			ts.mu.Unlock()
		}
	}
}

func (ts *TcellSurface) PollEvents() []InputEvent {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.events) == 0 {
		return nil
	}
	out := ts.events
	ts.events = nil
	return out
}

// PresentText draws the frame and shows it.
func (ts *TcellSurface) PresentText(frame TextFrame) error {
	cols, rows := ts.screen.Size()
	ts.screen.Clear()

	ts.fillRow(0, cols, ts.titleStyle)
	title := []rune(frame.Title)
	ts.drawText(max(0, (cols-len(title))/2), 0, cols, frame.Title, ts.titleStyle)
	if cols >= 3 {
		ts.drawText(cols-3, 0, cols, " X ", ts.closeStyle)
	}

	for i := 0; i < rows-1; i++ {
		ts.fillRow(i+1, cols, ts.textStyle)
		if i < len(frame.Lines) {
			ts.drawText(0, i+1, cols, frame.Lines[i], ts.textStyle)
		}
	}

	if frame.CursorVisible && frame.CursorY+1 < rows {
		ts.screen.ShowCursor(ts.cursorColumn(frame), frame.CursorY+1)
	} else {
		ts.screen.HideCursor()
	}
	ts.screen.Show()
	return nil
}

func (ts *TcellSurface) fillRow(y, cols int, style tcell.Style) {
	for x := range cols {
		ts.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (ts *TcellSurface) drawText(x, y, limit int, s string, style tcell.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		ts.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

// cursorColumn converts the cursor's rune index to a cell column.
func (ts *TcellSurface) cursorColumn(frame TextFrame) int {
	if frame.CursorY < 0 || frame.CursorY >= len(frame.Lines) {
		return frame.CursorX
	}
	line := []rune(frame.Lines[frame.CursorY])
	col := 0
	for i := 0; i < frame.CursorX; i++ {
		if i < len(line) {
			col += max(1, runewidth.RuneWidth(line[i]))
		} else {
			col++
		}
	}
	return col
}

func (ts *TcellSurface) Present() error {
	return nil
}

func (ts *TcellSurface) Destroy() error {
	ts.once.Do(func() {
		ts.screen.Fini()
		close(ts.done)
	})
	return nil
}

// translateTcellEvent maps tcell input to terminal events. Typed runes
// arrive as text since the host terminal already applied the keyboard
// layout; editing keys keep their key codes.
func translateTcellEvent(ev tcell.Event) (InputEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return InputEvent{Kind: EventText, Text: string(ev.Rune())}, true
		case tcell.KeyCtrlQ:
			return InputEvent{Kind: EventClose}, true
		}
		if code, ok := tcellKeyCodes[ev.Key()]; ok {
			return InputEvent{Kind: EventKeyDown, Code: uint8(code)}, true
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			return InputEvent{Kind: EventKeyDown, Code: uint8(KeyPageUp)}, true
		case buttons&tcell.WheelDown != 0:
			return InputEvent{Kind: EventKeyDown, Code: uint8(KeyPageDown)}, true
		case buttons&tcell.Button1 != 0:
			x, y := ev.Position()
			px, py := cellToPixel(x, y)
			return InputEvent{Kind: EventMouseDown, X: px, Y: py}, true
		}
	}
	return InputEvent{}, false
}

var tcellKeyCodes = map[tcell.Key]KeyCode{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyDelete:     KeyDelete,
}

// cellToPixel maps a host cell to the centre of the matching window pixel
// cell. Row 0 is the title bar.
func cellToPixel(x, y int) (int, int) {
	px := BORDER_WIDTH + CONTENT_PADDING + x*GLYPH_WIDTH + GLYPH_WIDTH/2
	if y == 0 {
		return px, TITLE_BAR_HEIGHT / 2
	}
	return px, TITLE_BAR_HEIGHT + CONTENT_PADDING + (y-1)*GLYPH_HEIGHT + GLYPH_HEIGHT/2
}
