package key

import (
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{
		Key:       k,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true for a printable character typed without Ctrl, Alt
// or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// Is reports whether e is the special key k with exactly mods held.
func (e Event) Is(k Key, mods Modifier) bool {
	return e.Key == k && e.Modifiers == mods
}

// IsPlain reports whether e is k without modifiers.
func (e Event) IsPlain(k Key) bool {
	return e.Is(k, ModNone)
}

// IsCtrlRune reports whether e is Ctrl+r.
func (e Event) IsCtrlRune(r rune) bool {
	return e.Key == KeyRune && e.Modifiers == ModCtrl && unicode.ToLower(e.Rune) == r
}

// String returns a canonical representation like "C-s", "S-Down" or "Enter".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	mods := e.Modifiers
	if e.IsRune() {
		// Shift is part of the character.
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "-" + name
}
