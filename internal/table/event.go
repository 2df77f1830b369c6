package table

import (
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table/selection"
)

// Outcome is the result of handling an event.
type Outcome uint8

const (
	// Continue means the event was not used.
	Continue Outcome = iota
	// Unchanged means the event was used but nothing changed.
	Unchanged
	// Changed means the event changed the state and a redraw is due.
	Changed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	default:
		return "continue"
	}
}

func changed(b bool) Outcome {
	if b {
		return Changed
	}
	return Unchanged
}

// EditOutcome extends Outcome with the requests a plain table makes to
// whoever owns the rows.
type EditOutcome uint8

const (
	EditContinue EditOutcome = iota
	EditUnchanged
	EditChanged
	// EditInsert asks for a new row at the selection.
	EditInsert
	// EditRemove asks to remove the selected row.
	EditRemove
	// EditEdit asks to edit the selected row.
	EditEdit
	// EditAppend asks for a new row after the last one.
	EditAppend
)

func (o EditOutcome) String() string {
	switch o {
	case EditUnchanged:
		return "unchanged"
	case EditChanged:
		return "changed"
	case EditInsert:
		return "insert"
	case EditRemove:
		return "remove"
	case EditEdit:
		return "edit"
	case EditAppend:
		return "append"
	default:
		return "continue"
	}
}

func editOutcome(o Outcome) EditOutcome {
	switch o {
	case Unchanged:
		return EditUnchanged
	case Changed:
		return EditChanged
	default:
		return EditContinue
	}
}

// Handler is a table state that handles regular events.
type Handler interface {
	HandleEvent(ev input.Event) Outcome
	TableState() *State
}

// TableState returns s. Typed states inherit it.
func (s *State) TableState() *State { return s }

// HandleEvent handles scrolling for a table without selection. Keys are
// used only while focused, mouse events whenever they hit the table.
func (s *State) HandleEvent(ev input.Event) Outcome {
	switch ev.Kind {
	case input.EventKey:
		if !s.Focus {
			return Continue
		}
		return s.handleScrollKey(ev.Key)
	case input.EventMouse:
		return s.handleScrollMouse(ev.Mouse, nil)
	}
	return Continue
}

func (s *State) handleScrollKey(k key.Event) Outcome {
	switch {
	case k.IsPlain(key.KeyUp):
		return changed(s.ScrollUp(1))
	case k.IsPlain(key.KeyDown):
		return changed(s.ScrollDown(1))
	case k.IsPlain(key.KeyPageUp):
		return changed(s.ScrollUp(max(s.PageLen(), 1)))
	case k.IsPlain(key.KeyPageDown):
		return changed(s.ScrollDown(max(s.PageLen(), 1)))
	case k.Is(key.KeyHome, key.ModCtrl):
		return changed(s.vscroll.ScrollTo(0))
	case k.Is(key.KeyEnd, key.ModCtrl):
		return changed(s.vscroll.ScrollTo(s.vscroll.MaxOffset()))
	}
	return s.handleHorizontalKey(k)
}

// handleHorizontalKey scrolls the view sideways. All selection kinds
// except cells use it.
func (s *State) handleHorizontalKey(k key.Event) Outcome {
	switch {
	case k.IsPlain(key.KeyLeft):
		return changed(s.ScrollLeft(s.XScrollBy()))
	case k.IsPlain(key.KeyRight):
		return changed(s.ScrollRight(s.XScrollBy()))
	case k.IsPlain(key.KeyHome):
		return changed(s.hscroll.ScrollTo(0))
	case k.IsPlain(key.KeyEnd):
		return changed(s.hscroll.ScrollTo(s.hscroll.MaxOffset()))
	}
	return Continue
}

// handleScrollMouse handles the wheel over the table area. A non-nil
// moveBy moves the selection instead of scrolling vertically.
func (s *State) handleScrollMouse(m mouse.Event, moveBy func(n int) bool) Outcome {
	se := mouse.ParseScrollEvent(m, s.mouseConfig)
	if se == nil || !mouseInside(s.area, m) {
		return Continue
	}
	switch se.Direction {
	case mouse.ScrollUp:
		if moveBy != nil {
			return changed(moveBy(-se.Lines))
		}
		return changed(s.ScrollUp(se.Lines))
	case mouse.ScrollDown:
		if moveBy != nil {
			return changed(moveBy(se.Lines))
		}
		return changed(s.ScrollDown(se.Lines))
	case mouse.ScrollLeft:
		return changed(s.ScrollLeft(se.Lines))
	case mouse.ScrollRight:
		return changed(s.ScrollRight(se.Lines))
	}
	return Continue
}

// trackDrag keeps the drag flag in sync and reports whether m is a drag
// that started inside the table.
func (s *State) trackDrag(m mouse.Event) bool {
	switch m.Action {
	case mouse.ActionPress:
		s.dragging = m.Button == mouse.ButtonLeft && mouseInside(s.tableArea, m)
	case mouse.ActionRelease:
		s.dragging = false
	case mouse.ActionDrag:
		return s.dragging && m.Button == mouse.ButtonLeft
	}
	return false
}

// DoubleClick reports a double click on a table cell. Call it before the
// regular handler; the first click of the pair is left to the regular
// handler.
func (s *State) DoubleClick(ev input.Event) (col, row int, ok bool) {
	if ev.Kind != input.EventMouse || !ev.Mouse.IsLeftPress() {
		return 0, 0, false
	}
	x, y := ev.MousePos()
	if !s.tableArea.Contains(core.Pos{X: x, Y: y}) {
		return 0, 0, false
	}
	col, row, ok = s.CellAtClicked(x, y)
	if !ok {
		s.doubleClick.Reset()
		return 0, 0, false
	}
	if s.doubleClick.Press(col, row, ev.Mouse.Position, ev.Mouse.Timestamp) {
		return col, row, true
	}
	return 0, 0, false
}

// HandleEditKeys maps the editing keys of a focused table to requests
// for the row owner. Everything else goes to the regular handler.
func HandleEditKeys(h Handler, ev input.Event) EditOutcome {
	st := h.TableState()
	if st.Focus && ev.Kind == input.EventKey {
		k := ev.Key
		switch {
		case k.IsPlain(key.KeyInsert):
			return EditInsert
		case k.IsPlain(key.KeyDelete):
			return EditRemove
		case k.IsPlain(key.KeyEnter), k.IsPlain(key.KeyF2):
			return EditEdit
		case k.IsPlain(key.KeyDown):
			if _, row, ok := st.selection.LeadSelection(); ok && row == selection.MaxIndex(st.rows) {
				return EditAppend
			}
		}
	}
	return editOutcome(h.HandleEvent(ev))
}

func mouseInside(area core.Rect, m mouse.Event) bool {
	return area.Contains(core.Pos{X: m.Position.X, Y: m.Position.Y})
}
