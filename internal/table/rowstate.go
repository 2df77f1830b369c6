package table

import (
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/table/selection"
)

// RowState is a table state with single row selection.
type RowState struct {
	*State
	Selection *selection.Row
}

// NewRowState creates a state with an empty row selection.
func NewRowState() *RowState {
	sel := selection.NewRow()
	return &RowState{State: newState(sel), Selection: sel}
}

// Selected returns the selected row.
func (s *RowState) Selected() (int, bool) { return s.Selection.Selected() }

// Select selects row without clamping or scrolling.
func (s *RowState) Select(row int) bool { return s.Selection.Select(row) }

// SetScrollSelection makes wheel events move the selection instead of
// the view.
func (s *RowState) SetScrollSelection(v bool) { s.Selection.ScrollSelected = v }

// MoveTo selects row, clamped to the row count, and scrolls to it.
func (s *RowState) MoveTo(row int) bool {
	c := s.Selection.MoveTo(row, selection.MaxIndex(s.rows))
	return s.scrollToLead() || c
}

// MoveUp moves the selection n rows up.
func (s *RowState) MoveUp(n int) bool {
	c := s.Selection.MoveUp(n, selection.MaxIndex(s.rows))
	return s.scrollToLead() || c
}

// MoveDown moves the selection n rows down.
func (s *RowState) MoveDown(n int) bool {
	c := s.Selection.MoveDown(n, selection.MaxIndex(s.rows))
	return s.scrollToLead() || c
}

func (s *RowState) moveBy(n int) bool {
	if n < 0 {
		return s.MoveUp(-n)
	}
	return s.MoveDown(n)
}

func (s *RowState) scrollToLead() bool {
	if row, ok := s.Selection.Selected(); ok {
		return s.ScrollToRow(row)
	}
	return false
}

// HandleEvent moves the row selection with keys, clicks, drags and,
// in scroll selection mode, the wheel.
func (s *RowState) HandleEvent(ev input.Event) Outcome {
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

func (s *RowState) handleKey(k key.Event) Outcome {
	page := max(s.PageLen()-1, 1)
	switch {
	case k.IsPlain(key.KeyUp):
		return changed(s.MoveUp(1))
	case k.IsPlain(key.KeyDown):
		return changed(s.MoveDown(1))
	case k.IsPlain(key.KeyPageUp):
		return changed(s.MoveUp(page))
	case k.IsPlain(key.KeyPageDown):
		return changed(s.MoveDown(page))
	case k.Is(key.KeyHome, key.ModCtrl):
		return changed(s.MoveTo(0))
	case k.Is(key.KeyEnd, key.ModCtrl):
		return changed(s.MoveTo(selection.MaxIndex(s.rows)))
	}
	return s.handleHorizontalKey(k)
}

func (s *RowState) handleMouse(m mouse.Event) Outcome {
	drag := s.trackDrag(m)
	switch {
	case m.IsLeftPress() && mouseInside(s.tableArea, m):
		if row, ok := s.RowAtClicked(m.Position.X, m.Position.Y); ok {
			return changed(s.MoveTo(row))
		}
		return Unchanged
	case drag:
		return changed(s.MoveTo(s.RowAtDrag(m.Position.X, m.Position.Y)))
	}
	if s.Selection.ScrollSelected {
		return s.handleScrollMouse(m, s.moveBy)
	}
	return s.handleScrollMouse(m, nil)
}
