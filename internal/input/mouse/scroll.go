package mouse

import "github.com/dshills/tablegrid/internal/input/key"

// ScrollDirection represents the direction of a wheel event.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
	// ScrollLeft indicates scrolling left.
	ScrollLeft
	// ScrollRight indicates scrolling right.
	ScrollRight
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// ButtonToScrollDirection converts a scroll button to a direction.
func ButtonToScrollDirection(b Button) ScrollDirection {
	switch b {
	case ButtonScrollUp:
		return ScrollUp
	case ButtonScrollDown:
		return ScrollDown
	case ButtonScrollLeft:
		return ScrollLeft
	case ButtonScrollRight:
		return ScrollRight
	default:
		return ScrollNone
	}
}

// ScrollEvent is a wheel event with the configured step applied.
type ScrollEvent struct {
	Direction ScrollDirection
	Lines     int
	Position  Position
	Modifiers key.Modifier
}

// ParseScrollEvent parses a mouse event into a scroll event.
// Returns nil if the event is not a wheel press.
func ParseScrollEvent(event Event, config Config) *ScrollEvent {
	if event.Action != ActionPress || !event.Button.IsScroll() {
		return nil
	}

	lines := config.ScrollLines
	if event.Modifiers.HasShift() {
		lines = config.ScrollLinesShift
	}
	if lines < 1 {
		lines = 1
	}

	return &ScrollEvent{
		Direction: ButtonToScrollDirection(event.Button),
		Lines:     lines,
		Position:  event.Position,
		Modifiers: event.Modifiers,
	}
}

// IsHorizontal returns true if the scroll is horizontal.
func (e *ScrollEvent) IsHorizontal() bool {
	return e.Direction == ScrollLeft || e.Direction == ScrollRight
}

// IsVertical returns true if the scroll is vertical.
func (e *ScrollEvent) IsVertical() bool {
	return e.Direction == ScrollUp || e.Direction == ScrollDown
}
