package edit

import (
	"unicode"

	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// Line is a single line text input.
type Line struct {
	// buffer holds the text being typed.
	buffer []rune

	// cursorPos is the cursor position within the buffer.
	cursorPos int
}

// NewLine creates an input holding s with the cursor at the end.
func NewLine(s string) *Line {
	l := &Line{}
	l.SetText(s)
	return l
}

// Text returns the current content.
func (l *Line) Text() string {
	return string(l.buffer)
}

// SetText replaces the content and moves the cursor to the end.
func (l *Line) SetText(s string) {
	l.buffer = []rune(s)
	l.cursorPos = len(l.buffer)
}

// CursorPos returns the cursor position in runes.
func (l *Line) CursorPos() int {
	return l.cursorPos
}

// SetCursorPos sets the cursor position, clamped to the content.
func (l *Line) SetCursorPos(pos int) {
	l.cursorPos = min(max(pos, 0), len(l.buffer))
}

// Clear empties the input.
func (l *Line) Clear() {
	l.buffer = l.buffer[:0]
	l.cursorPos = 0
}

// insertRune inserts a character at the cursor position.
func (l *Line) insertRune(r rune) {
	if l.cursorPos >= len(l.buffer) {
		l.buffer = append(l.buffer, r)
	} else {
		l.buffer = append(l.buffer[:l.cursorPos+1], l.buffer[l.cursorPos:]...)
		l.buffer[l.cursorPos] = r
	}
	l.cursorPos++
}

// Backspace deletes the character before the cursor.
func (l *Line) Backspace() bool {
	if l.cursorPos == 0 {
		return false
	}
	l.buffer = append(l.buffer[:l.cursorPos-1], l.buffer[l.cursorPos:]...)
	l.cursorPos--
	return true
}

// Delete deletes the character at the cursor.
func (l *Line) Delete() bool {
	if l.cursorPos >= len(l.buffer) {
		return false
	}
	l.buffer = append(l.buffer[:l.cursorPos], l.buffer[l.cursorPos+1:]...)
	return true
}

func (l *Line) MoveLeft() bool {
	if l.cursorPos == 0 {
		return false
	}
	l.cursorPos--
	return true
}

func (l *Line) MoveRight() bool {
	if l.cursorPos >= len(l.buffer) {
		return false
	}
	l.cursorPos++
	return true
}

func (l *Line) MoveToStart() bool {
	old := l.cursorPos
	l.cursorPos = 0
	return old != 0
}

func (l *Line) MoveToEnd() bool {
	old := l.cursorPos
	l.cursorPos = len(l.buffer)
	return old != l.cursorPos
}

// HandleKey applies an editing key. used reports whether the key
// belongs to the input, changed whether the content or cursor moved.
func (l *Line) HandleKey(k key.Event) (used, changed bool) {
	if k.IsChar() && unicode.IsPrint(k.Rune) {
		l.insertRune(k.Rune)
		return true, true
	}
	switch {
	case k.IsPlain(key.KeyBackspace):
		return true, l.Backspace()
	case k.IsPlain(key.KeyDelete):
		return true, l.Delete()
	case k.IsPlain(key.KeyLeft):
		return true, l.MoveLeft()
	case k.IsPlain(key.KeyRight):
		return true, l.MoveRight()
	case k.IsPlain(key.KeyHome):
		return true, l.MoveToStart()
	case k.IsPlain(key.KeyEnd):
		return true, l.MoveToEnd()
	case k.IsCtrlRune('u'):
		changed := len(l.buffer) > 0
		l.Clear()
		return true, changed
	}
	return false, false
}

// Render fills area with style and draws the text scrolled so the
// cursor stays inside. The cursor cell gets cursorStyle.
func (l *Line) Render(area core.Rect, buf *buffer.Buffer, style, cursorStyle core.Style) {
	if area.IsEmpty() {
		return
	}
	buf.Fill(area, core.NewStyledCell(' ', style))
	start := max(l.cursorPos-area.Width+1, 0)
	buf.SetStringN(area.X, area.Y, string(l.buffer[start:]), area.Width, style)

	x := area.X + l.cursorPos - start
	if x < area.Right() {
		buf.SetStyle(core.NewRect(x, area.Y, 1, 1), cursorStyle)
	}
}
