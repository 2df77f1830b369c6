// Package backend connects the cell buffers to a display.
package backend

import (
	"time"

	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
	EventUser
)

// Event represents a terminal event.
type Event struct {
	Type EventType
	When time.Time

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Focus event fields
	Focused bool

	// Payload of an EventUser posted with PostEvent.
	Data any
}

// Key represents a keyboard key. Control chords arrive as KeyRune with
// ModCtrl set and a lower case rune.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// Backend is a display surface plus its event source.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current display dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the display are ignored.
	SetCell(x, y int, cell core.Cell)

	// Cell returns the cell at the given position.
	Cell(x, y int) core.Cell

	// Show flushes pending cells to the display.
	Show()

	// Sync forces a full repaint on the next Show.
	Sync()

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event. It returns an
	// EventNone after Shutdown.
	PollEvent() Event

	// PostEvent queues an EventUser carrying data.
	PostEvent(data any)
}

// Draw pushes the cells of a frame diff to b.
func Draw(b Backend, changes []buffer.Change) {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		b.SetCell(ch.X, ch.Y, ch.Cell)
	}
}

// NullBackend is an in-memory backend for tests and dump mode.
type NullBackend struct {
	width, height int
	cells         []core.Cell
	shows         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.cells = make([]core.Cell, b.width*b.height)
	for i := range b.cells {
		b.cells[i] = core.EmptyCell()
	}
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y*b.width+x] = cell
	}
}

func (b *NullBackend) Cell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y*b.width+x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Show()       { b.shows++ }
func (b *NullBackend) Sync()       {}
func (b *NullBackend) HideCursor() {}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(data any) {
	b.Inject(Event{Type: EventUser, Data: data})
}

// Inject queues a raw event. Events are dropped if the queue is full.
func (b *NullBackend) Inject(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// Shows returns how many frames were flushed.
func (b *NullBackend) Shows() int {
	return b.shows
}

// Line returns the text of row y.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// Resize simulates a terminal resize and queues the matching event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	_ = b.Init()
	b.Inject(Event{Type: EventResize, Width: width, Height: height})
}
