package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	_ = b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	if got := b.Cell(10, 5); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.Cell(-1, 0); !got.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestDrawAppliesDiff(t *testing.T) {
	b := NewNullBackend(6, 2)
	_ = b.Init()

	frame := buffer.New(core.NewRect(0, 0, 6, 2))
	frame.SetString(0, 1, "ab世", core.DefaultStyle())
	Draw(b, frame.Diff(nil))
	b.Show()

	if got := b.Line(1); got != "ab世  " {
		t.Errorf("expected %q, got %q", "ab世  ", got)
	}
	if b.Shows() != 1 {
		t.Errorf("expected 1 show, got %d", b.Shows())
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 10)
	_ = b.Init()

	b.PostEvent("reload")
	ev := b.PollEvent()
	if ev.Type != EventUser || ev.Data != "reload" {
		t.Errorf("expected user event, got %+v", ev)
	}

	b.Resize(20, 5)
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 5 {
		t.Errorf("expected resize event, got %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 5 {
		t.Errorf("expected size (20, 5), got (%d, %d)", w, h)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name    string
		key     tcell.Key
		r       rune
		want    Key
		wantR   rune
		wantMod ModMask
	}{
		{"rune", tcell.KeyRune, 'x', KeyRune, 'x', ModNone},
		{"enter", tcell.KeyEnter, 0, KeyEnter, 0, ModNone},
		{"tab", tcell.KeyTab, 0, KeyTab, 0, ModNone},
		{"backspace", tcell.KeyBackspace2, 0, KeyBackspace, 0, ModNone},
		{"f5", tcell.KeyF5, 0, KeyF5, 0, ModNone},
		{"ctrl-q", tcell.KeyCtrlQ, 0, KeyRune, 'q', ModCtrl},
		{"pgdn", tcell.KeyPgDn, 0, KeyPageDown, 0, ModNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, r, mod := convertKey(tt.key, tt.r, ModNone)
			if k != tt.want || r != tt.wantR || mod != tt.wantMod {
				t.Errorf("expected (%d, %q, %d), got (%d, %q, %d)", tt.want, tt.wantR, tt.wantMod, k, r, mod)
			}
		})
	}
}

func TestConvertMouseButton(t *testing.T) {
	tests := []struct {
		mask tcell.ButtonMask
		want MouseButton
	}{
		{tcell.Button1, MouseLeft},
		{tcell.Button2, MouseRight},
		{tcell.Button3, MouseMiddle},
		{tcell.WheelDown, MouseWheelDown},
		{tcell.ButtonNone, MouseNone},
	}
	for _, tt := range tests {
		if got := convertMouseButton(tt.mask); got != tt.want {
			t.Errorf("mask %d: expected %d, got %d", tt.mask, tt.want, got)
		}
	}
}

func TestStyleRoundTrip(t *testing.T) {
	s := core.NewStyle(core.ColorFromRGB(10, 20, 30), core.ColorFromIndex(4)).Bold().Italic()
	got := convertTcellStyle(convertStyle(s))
	if !got.Equals(s) {
		t.Errorf("expected %+v, got %+v", s, got)
	}
}

func TestTerminalWithSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Shutdown()
	screen.SetSize(10, 3)

	term.SetCell(2, 1, core.NewStyledCell('Q', core.DefaultStyle()))
	term.Show()

	if got := term.Cell(2, 1); got.Rune != 'Q' {
		t.Errorf("expected 'Q', got %q", got.Rune)
	}
}
