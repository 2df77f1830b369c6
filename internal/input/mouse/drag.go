package mouse

// dragTracker tracks mouse drag state.
type dragTracker struct {
	active     bool
	button     Button
	startPos   Position
	currentPos Position
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

// start begins a new drag operation.
func (t *dragTracker) start(pos Position, button Button) {
	t.active = true
	t.button = button
	t.startPos = pos
	t.currentPos = pos
}

// update updates the current drag position.
func (t *dragTracker) update(pos Position) {
	if t.active {
		t.currentPos = pos
	}
}

// end ends the current drag operation.
func (t *dragTracker) end() {
	*t = dragTracker{}
}

func (t *dragTracker) isActive() bool    { return t.active }
func (t *dragTracker) getButton() Button { return t.button }

// DragState represents the current state of a drag operation.
type DragState struct {
	// Active indicates a button is held.
	Active bool

	// Button is the mouse button being held.
	Button Button

	// StartPos is where the drag started.
	StartPos Position

	// CurrentPos is the current drag position.
	CurrentPos Position
}

// Delta returns the distance dragged from start.
func (s DragState) Delta() Position {
	return Position{
		X: s.CurrentPos.X - s.StartPos.X,
		Y: s.CurrentPos.Y - s.StartPos.Y,
	}
}

// GetState returns the current drag state.
func (t *dragTracker) GetState() DragState {
	return DragState{
		Active:     t.active,
		Button:     t.button,
		StartPos:   t.startPos,
		CurrentPos: t.currentPos,
	}
}
