package input

import (
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
)

// EventKind identifies which payload of an Event is set.
type EventKind uint8

const (
	// EventNone is an event the widgets ignore.
	EventNone EventKind = iota
	// EventKey carries a key press.
	EventKey
	// EventMouse carries a decoded mouse event.
	EventMouse
	// EventResize carries the new screen size.
	EventResize
	// EventFocus carries a terminal focus change.
	EventFocus
)

// String returns a string representation of the kind.
func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventFocus:
		return "focus"
	default:
		return "none"
	}
}

// Event is the input the table widgets handle.
type Event struct {
	Kind EventKind

	Key   key.Event
	Mouse mouse.Event

	// Width and Height are set for EventResize.
	Width  int
	Height int

	// Focused is set for EventFocus.
	Focused bool
}

// KeyEvent wraps a key press.
func KeyEvent(k key.Event) Event {
	return Event{Kind: EventKey, Key: k}
}

// MouseEvent wraps a mouse event.
func MouseEvent(m mouse.Event) Event {
	return Event{Kind: EventMouse, Mouse: m}
}

// ResizeEvent reports a new screen size.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// IsKey reports whether e is a key press of k with exactly mods held.
func (e Event) IsKey(k key.Key, mods key.Modifier) bool {
	return e.Kind == EventKey && e.Key.Is(k, mods)
}

// IsPlainKey reports whether e is a key press of k without modifiers.
func (e Event) IsPlainKey(k key.Key) bool {
	return e.IsKey(k, key.ModNone)
}

// IsRune reports whether e is the character r typed without Ctrl or Alt.
func (e Event) IsRune(r rune) bool {
	return e.Kind == EventKey && e.Key.IsChar() && e.Key.Rune == r
}

// MousePos returns the mouse position as coordinates.
func (e Event) MousePos() (int, int) {
	return e.Mouse.Position.X, e.Mouse.Position.Y
}
