package mouse

import (
	"time"

	"github.com/dshills/tablegrid/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b >= ButtonScrollUp && b <= ButtonScrollRight
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Manhattan distance between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event represents a decoded mouse event.
type Event struct {
	// Position is the screen coordinates.
	Position Position

	// Button is the mouse button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// IsLeftPress reports a left button press.
func (e Event) IsLeftPress() bool {
	return e.Action == ActionPress && e.Button == ButtonLeft
}

// IsLeftDrag reports movement with the left button held.
func (e Event) IsLeftDrag() bool {
	return e.Action == ActionDrag && e.Button == ButtonLeft
}

// Config configures mouse behavior.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int

	// ScrollLines is the number of lines to scroll per wheel tick.
	ScrollLines int

	// ScrollLinesShift is the number of lines when Shift is held.
	ScrollLinesShift int
}

// DefaultConfig returns the default mouse configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 0,
		ScrollLines:         3,
		ScrollLinesShift:    1,
	}
}

// Decoder derives press, drag and release actions from button state
// samples. It is not safe for concurrent use.
type Decoder struct {
	drag *dragTracker
}

// NewDecoder creates a decoder with no button held.
func NewDecoder() *Decoder {
	return &Decoder{drag: newDragTracker()}
}

// Decode converts one sample into an Event.
//
// Wheel buttons are always presses. A non-wheel button starts a drag on
// its first sample and keeps dragging until a sample without a button
// arrives, which releases it.
func (d *Decoder) Decode(x, y int, b Button, mods key.Modifier, when time.Time) Event {
	if when.IsZero() {
		when = time.Now()
	}
	ev := Event{
		Position:  Position{X: x, Y: y},
		Button:    b,
		Modifiers: mods,
		Timestamp: when,
	}

	switch {
	case b.IsScroll():
		ev.Action = ActionPress
	case b != ButtonNone:
		if d.drag.isActive() && d.drag.getButton() == b {
			d.drag.update(ev.Position)
			ev.Action = ActionDrag
		} else {
			d.drag.start(ev.Position, b)
			ev.Action = ActionPress
		}
	case d.drag.isActive():
		ev.Button = d.drag.getButton()
		ev.Action = ActionRelease
		d.drag.end()
	default:
		ev.Action = ActionMove
	}
	return ev
}

// State returns the current drag state.
func (d *Decoder) State() DragState {
	return d.drag.GetState()
}

// Reset forgets any held button, e.g. after focus loss.
func (d *Decoder) Reset() {
	d.drag.end()
}
