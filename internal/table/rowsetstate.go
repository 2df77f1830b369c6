package table

import (
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/table/selection"
)

// RowSetState is a table state with multi row selection.
type RowSetState struct {
	*State
	Selection *selection.RowSet
}

// NewRowSetState creates a state with an empty row set selection.
func NewRowSetState() *RowSetState {
	sel := selection.NewRowSet()
	return &RowSetState{State: newState(sel), Selection: sel}
}

func (s *RowSetState) Lead() (int, bool)      { return s.Selection.Lead() }
func (s *RowSetState) Anchor() (int, bool)    { return s.Selection.Anchor() }
func (s *RowSetState) Selected() []int        { return s.Selection.Selected() }
func (s *RowSetState) RetireSelection()       { s.Selection.Retire() }
func (s *RowSetState) AddSelected(row int)    { s.Selection.Add(row) }
func (s *RowSetState) RemoveSelected(row int) { s.Selection.Remove(row) }

// SetLead moves the lead without clamping or scrolling.
func (s *RowSetState) SetLead(row int, extend bool) bool {
	return s.Selection.SetLead(row, extend)
}

// MoveTo moves the lead to row, clamped to the row count, and scrolls
// to it. With extend the anchor stays.
func (s *RowSetState) MoveTo(row int, extend bool) bool {
	c := s.Selection.SetLead(min(row, selection.MaxIndex(s.rows)), extend)
	return s.scrollToLead() || c
}

// MoveUp moves the lead n rows up.
func (s *RowSetState) MoveUp(n int, extend bool) bool {
	c := s.Selection.MoveUp(n, selection.MaxIndex(s.rows), extend)
	return s.scrollToLead() || c
}

// MoveDown moves the lead n rows down.
func (s *RowSetState) MoveDown(n int, extend bool) bool {
	c := s.Selection.MoveDown(n, selection.MaxIndex(s.rows), extend)
	return s.scrollToLead() || c
}

func (s *RowSetState) scrollToLead() bool {
	if row, ok := s.Selection.Lead(); ok {
		return s.ScrollToRow(row)
	}
	return false
}

// HandleEvent moves the lead with keys and the mouse. Shift extends the
// active range, Ctrl+click toggles single rows.
func (s *RowSetState) HandleEvent(ev input.Event) Outcome {
	switch ev.Kind {
	case input.EventKey:
		if !s.Focus {
			return Continue
		}
		return s.handleKey(ev.Key)
	case input.EventMouse:
		return s.handleMouse(ev.Mouse)
	}
	return Continue
}

func (s *RowSetState) handleKey(k key.Event) Outcome {
	extend := k.Modifiers.HasShift()
	mods := k.Modifiers &^ key.ModShift
	page := max(s.PageLen()-1, 1)

	switch {
	case k.Key == key.KeyUp && mods == key.ModNone:
		return changed(s.MoveUp(1, extend))
	case k.Key == key.KeyDown && mods == key.ModNone:
		return changed(s.MoveDown(1, extend))
	case k.Key == key.KeyPageUp && mods == key.ModNone:
		return changed(s.MoveUp(page, extend))
	case k.Key == key.KeyPageDown && mods == key.ModNone:
		return changed(s.MoveDown(page, extend))
	case k.Key == key.KeyHome && mods == key.ModCtrl:
		return changed(s.MoveTo(0, extend))
	case k.Key == key.KeyEnd && mods == key.ModCtrl:
		return changed(s.MoveTo(selection.MaxIndex(s.rows), extend))
	}
	return s.handleHorizontalKey(k)
}

func (s *RowSetState) handleMouse(m mouse.Event) Outcome {
	drag := s.trackDrag(m)
	switch {
	case m.IsLeftPress() && mouseInside(s.tableArea, m):
		row, ok := s.RowAtClicked(m.Position.X, m.Position.Y)
		if !ok {
			return Unchanged
		}
		switch {
		case m.Modifiers.HasCtrl():
			s.Selection.Retire()
			s.Selection.Toggle(row)
			return Changed
		case m.Modifiers.HasShift():
			return changed(s.MoveTo(row, true))
		default:
			s.Selection.Clear()
			s.MoveTo(row, false)
			return Changed
		}
	case drag:
		return changed(s.MoveTo(s.RowAtDrag(m.Position.X, m.Position.Y), true))
	}
	return s.handleScrollMouse(m, nil)
}
