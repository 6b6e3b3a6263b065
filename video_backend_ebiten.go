//go:build !headless

// video_backend_ebiten.go - Ebiten window surface for the terminal

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
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten")
}

// EbitenSurface draws into a software canvas and uploads it to an Ebiten
// window. Ebiten's game loop owns the main goroutine (RunMainThread); the
// frame loop reaches it only through the event queue and Present.
type EbitenSurface struct {
	*pixelCanvas

	width  int
	height int
	scale  int
	title  string

	bufferMutex sync.Mutex
	frameBuffer []byte
	window      *ebiten.Image
	events      []InputEvent

	closed atomic.Bool
	keys   []ebiten.Key

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenSurface(cfg SurfaceConfig) (Surface, error) {
	es := &EbitenSurface{
		pixelCanvas: newPixelCanvas(cfg.Width, cfg.Height),
		width:       cfg.Width,
		height:      cfg.Height,
		scale:       max(1, cfg.Scale),
		title:       cfg.Title,
	}
	es.frameBuffer = make([]byte, cfg.Width*cfg.Height*4)
	return es, nil
}

// RunMainThread opens the window and blocks until it closes.
func (es *EbitenSurface) RunMainThread() error {
	ebiten.SetWindowSize(es.width*es.scale, es.height*es.scale)
	ebiten.SetWindowTitle(es.title)
	ebiten.SetWindowResizable(false)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(es)
	// The game loop is gone; make sure the frame loop hears about it.
	es.pushEvent(InputEvent{Kind: EventClose})
	if err != nil {
		return &SurfaceError{Operation: "run", Details: "ebiten game loop", Err: err}
	}
	return nil
}

func (es *EbitenSurface) PollEvents() []InputEvent {
	es.bufferMutex.Lock()
	defer es.bufferMutex.Unlock()
	if len(es.events) == 0 {
		return nil
	}
	out := es.events
	es.events = nil
	return out
}

func (es *EbitenSurface) pushEvent(ev InputEvent) {
	es.bufferMutex.Lock()
	es.events = append(es.events, ev)
	es.bufferMutex.Unlock()
}

func (es *EbitenSurface) Present() error {
	es.bufferMutex.Lock()
	es.frameBuffer = es.copyPixels(es.frameBuffer)
	es.bufferMutex.Unlock()
	return nil
}

func (es *EbitenSurface) Destroy() error {
	es.closed.Store(true)
	return nil
}

// Update implements ebiten.Game.
func (es *EbitenSurface) Update() error {
	if es.closed.Load() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		es.pushEvent(InputEvent{Kind: EventClose})
	}
	es.handleKeyboardInput()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		es.pushEvent(InputEvent{Kind: EventMouseDown, X: x, Y: y})
	}
	return nil
}

func (es *EbitenSurface) handleKeyboardInput() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	// Clipboard paste: Ctrl+Shift+V
	paste := ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV)
	if paste {
		es.handleClipboardPaste()
	}

	es.keys = inpututil.AppendJustPressedKeys(es.keys[:0])
	for _, key := range es.keys {
		if paste && key == ebiten.KeyV {
			continue
		}
		if code, ok := translateEbitenKey(key); ok {
			es.pushEvent(InputEvent{Kind: EventKeyDown, Code: uint8(code)})
		}
	}
	es.keys = inpututil.AppendJustReleasedKeys(es.keys[:0])
	for _, key := range es.keys {
		if code, ok := translateEbitenKey(key); ok {
			es.pushEvent(InputEvent{Kind: EventKeyUp, Code: uint8(code)})
		}
	}
}

func (es *EbitenSurface) handleClipboardPaste() {
	es.clipboardOnce.Do(func() {
		es.clipboardOK = clipboard.Init() == nil
	})
	if !es.clipboardOK {
		return
	}
	if ev, ok := pasteEvent(clipboard.Read(clipboard.FmtText)); ok {
		es.pushEvent(ev)
	}
}

// Draw implements ebiten.Game.
func (es *EbitenSurface) Draw(screen *ebiten.Image) {
	if es.window == nil {
		es.window = ebiten.NewImage(es.width, es.height)
	}
	es.bufferMutex.Lock()
	es.window.WritePixels(es.frameBuffer)
	es.bufferMutex.Unlock()
	screen.DrawImage(es.window, nil)
}

// Layout implements ebiten.Game.
func (es *EbitenSurface) Layout(_, _ int) (int, int) {
	return es.width, es.height
}

var ebitenKeyCodes = map[ebiten.Key]KeyCode{
	ebiten.KeyDigit0:       Key0,
	ebiten.KeyDigit1:       Key1,
	ebiten.KeyDigit2:       Key2,
	ebiten.KeyDigit3:       Key3,
	ebiten.KeyDigit4:       Key4,
	ebiten.KeyDigit5:       Key5,
	ebiten.KeyDigit6:       Key6,
	ebiten.KeyDigit7:       Key7,
	ebiten.KeyDigit8:       Key8,
	ebiten.KeyDigit9:       Key9,
	ebiten.KeySpace:        KeySpace,
	ebiten.KeyMinus:        KeyMinus,
	ebiten.KeyEqual:        KeyEqual,
	ebiten.KeyBracketLeft:  KeyLeftBracket,
	ebiten.KeyBracketRight: KeyRightBracket,
	ebiten.KeyBackslash:    KeyBackslash,
	ebiten.KeySemicolon:    KeySemicolon,
	ebiten.KeyQuote:        KeyQuote,
	ebiten.KeyBackquote:    KeyBacktick,
	ebiten.KeyComma:        KeyComma,
	ebiten.KeyPeriod:       KeyPeriod,
	ebiten.KeySlash:        KeySlash,
	ebiten.KeyEnter:        KeyEnter,
	ebiten.KeyNumpadEnter:  KeyEnter,
	ebiten.KeyBackspace:    KeyBackspace,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeyShiftLeft:    KeyShift,
	ebiten.KeyShiftRight:   KeyShift,
	ebiten.KeyControlLeft:  KeyControl,
	ebiten.KeyControlRight: KeyControl,
	ebiten.KeyAltLeft:      KeyAlt,
	ebiten.KeyAltRight:     KeyAlt,
	ebiten.KeyArrowUp:      KeyUp,
	ebiten.KeyArrowDown:    KeyDown,
	ebiten.KeyArrowLeft:    KeyLeft,
	ebiten.KeyArrowRight:   KeyRight,
	ebiten.KeyHome:         KeyHome,
	ebiten.KeyEnd:          KeyEnd,
	ebiten.KeyPageUp:       KeyPageUp,
	ebiten.KeyPageDown:     KeyPageDown,
	ebiten.KeyDelete:       KeyDelete,
}

func translateEbitenKey(key ebiten.Key) (KeyCode, bool) {
	if key >= ebiten.KeyA && key <= ebiten.KeyZ {
		return KeyA + KeyCode(key-ebiten.KeyA), true
	}
	code, ok := ebitenKeyCodes[key]
	return code, ok
}
