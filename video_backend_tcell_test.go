package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTcellSurface(t *testing.T, cols, rows int) (*TcellSurface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	// Init resets the simulation size, so resize afterwards.
	sim.SetSize(cols, rows)
	ts := newTcellSurfaceOn(sim, SurfaceConfig{Title: "Terminal"})
	t.Cleanup(func() { _ = ts.Destroy() })
	return ts, sim
}

func readSimLine(screen tcell.Screen, y, width int) string {
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

func TestTcellSurface_SizeMatchesGrid(t *testing.T) {
	ts, _ := newSimTcellSurface(t, 80, 25)
	w, h := ts.Size()
	cols, rows := contentGrid(w, h)
	if cols != 80 || rows != 24 {
		t.Fatalf("expected 80x24 text grid, got %dx%d", cols, rows)
	}
}

func TestTcellSurface_SizeFollowsSmallScreen(t *testing.T) {
	ts, _ := newSimTcellSurface(t, 40, 6)
	cols, rows := contentGrid(ts.Size())
	if cols != 40 || rows != 5 {
		t.Fatalf("expected 40x5 text grid, got %dx%d", cols, rows)
	}
}

func TestTcellSurface_PresentText(t *testing.T) {
	ts, sim := newSimTcellSurface(t, 40, 6)
	err := ts.PresentText(TextFrame{
		Title:         "Terminal",
		Lines:         []string{"hello", "user@host:/$ ls"},
		CursorX:       3,
		CursorY:       1,
		CursorVisible: true,
	})
	if err != nil {
		t.Fatalf("present text: %v", err)
	}
	if got := readSimLine(sim, 1, 40); got != "hello" {
		t.Fatalf("expected first text row, got %q", got)
	}
	if got := readSimLine(sim, 2, 40); got != "user@host:/$ ls" {
		t.Fatalf("expected second text row, got %q", got)
	}
	title := readSimLine(sim, 0, 40)
	if title == "" || title[len(title)-1] != 'X' {
		t.Fatalf("expected title row with close button, got %q", title)
	}
}

func TestTranslateTcellEvent(t *testing.T) {
	ev, ok := translateTcellEvent(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone))
	if !ok || ev.Kind != EventText || ev.Text != "é" {
		t.Fatalf("expected text event, got %+v", ev)
	}
	ev, ok = translateTcellEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !ok || ev.Kind != EventKeyDown || DecodeKeyCode(ev.Code) != KeyEnter {
		t.Fatalf("expected enter key, got %+v", ev)
	}
	ev, ok = translateTcellEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if !ok || DecodeKeyCode(ev.Code) != KeyBackspace {
		t.Fatalf("expected backspace key, got %+v", ev)
	}
	ev, ok = translateTcellEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
	if !ok || ev.Kind != EventClose {
		t.Fatalf("expected close on ctrl+q, got %+v", ev)
	}
	if _, ok := translateTcellEvent(tcell.NewEventKey(tcell.KeyF7, 0, tcell.ModNone)); ok {
		t.Fatal("expected F7 ignored")
	}
}

func TestTranslateTcellEvent_Mouse(t *testing.T) {
	ev, ok := translateTcellEvent(tcell.NewEventMouse(2, 0, tcell.WheelUp, tcell.ModNone))
	if !ok || DecodeKeyCode(ev.Code) != KeyPageUp {
		t.Fatalf("expected wheel up to page up, got %+v", ev)
	}
	ev, ok = translateTcellEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if !ok || ev.Kind != EventMouseDown || ev.Y >= TITLE_BAR_HEIGHT {
		t.Fatalf("expected click in title bar, got %+v", ev)
	}
}
