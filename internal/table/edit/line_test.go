package edit

import (
	"testing"

	"github.com/dshills/tablegrid/internal/input/key"
)

func TestLineEditing(t *testing.T) {
	l := NewLine("ac")

	l.MoveLeft()
	l.HandleKey(key.NewRuneEvent('b', key.ModNone))
	if l.Text() != "abc" {
		t.Errorf("expected %q, got %q", "abc", l.Text())
	}
	if l.CursorPos() != 2 {
		t.Errorf("expected cursor 2, got %d", l.CursorPos())
	}

	l.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	if l.Text() != "ac" {
		t.Errorf("expected %q after backspace, got %q", "ac", l.Text())
	}

	l.HandleKey(key.NewSpecialEvent(key.KeyHome, key.ModNone))
	l.HandleKey(key.NewSpecialEvent(key.KeyDelete, key.ModNone))
	if l.Text() != "c" || l.CursorPos() != 0 {
		t.Errorf("expected %q at 0, got %q at %d", "c", l.Text(), l.CursorPos())
	}

	if _, changed := l.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)); changed {
		t.Error("expected backspace at the start to change nothing")
	}

	l.HandleKey(key.NewRuneEvent('u', key.ModCtrl))
	if l.Text() != "" {
		t.Errorf("expected Ctrl+U to clear, got %q", l.Text())
	}
}

func TestLineIgnoresForeignKeys(t *testing.T) {
	l := NewLine("x")
	tests := []key.Event{
		key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		key.NewSpecialEvent(key.KeyUp, key.ModNone),
		key.NewRuneEvent('s', key.ModCtrl),
	}
	for _, k := range tests {
		if used, _ := l.HandleKey(k); used {
			t.Errorf("expected %s not to be used", k)
		}
	}
	if l.Text() != "x" {
		t.Errorf("expected text unchanged, got %q", l.Text())
	}
}

func TestLineSetCursorPosClamps(t *testing.T) {
	l := NewLine("abc")
	l.SetCursorPos(10)
	if l.CursorPos() != 3 {
		t.Errorf("expected 3, got %d", l.CursorPos())
	}
	l.SetCursorPos(-1)
	if l.CursorPos() != 0 {
		t.Errorf("expected 0, got %d", l.CursorPos())
	}
}
