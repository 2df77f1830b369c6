package table

import (
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/table/selection"
)

// CellState is a table state with single cell selection.
type CellState struct {
	*State
	Selection *selection.Cell
}

// NewCellState creates a state with an empty cell selection.
func NewCellState() *CellState {
	sel := selection.NewCell()
	return &CellState{State: newState(sel), Selection: sel}
}

// Selected returns the selected cell.
func (s *CellState) Selected() (col, row int, ok bool) {
	return s.Selection.Selected()
}

// SelectCell selects (col, row) without clamping or scrolling.
func (s *CellState) SelectCell(col, row int) bool {
	return s.Selection.SelectCell(col, row)
}

// SelectRow keeps the column and selects row.
func (s *CellState) SelectRow(row int) bool {
	return s.Selection.SelectRow(row, s.maxRow())
}

// SelectColumn keeps the row and selects col.
func (s *CellState) SelectColumn(col int) bool {
	return s.Selection.SelectColumn(col, s.maxCol())
}

func (s *CellState) maxCol() int { return selection.MaxIndex(s.columns) }
func (s *CellState) maxRow() int { return selection.MaxIndex(s.rows) }

// MoveTo selects (col, row), clamped, and scrolls it into view.
func (s *CellState) MoveTo(col, row int) bool {
	c := s.Selection.MoveTo(col, row, s.maxCol(), s.maxRow())
	return s.ScrollToSelected() || c
}

// MoveToRow keeps the column and moves to row.
func (s *CellState) MoveToRow(row int) bool {
	col, _, _ := s.Selection.Selected()
	return s.MoveTo(col, row)
}

// MoveToCol keeps the row and moves to col.
func (s *CellState) MoveToCol(col int) bool {
	_, row, _ := s.Selection.Selected()
	return s.MoveTo(col, row)
}

func (s *CellState) MoveUp(n int) bool {
	c := s.Selection.MoveUp(n, s.maxCol(), s.maxRow())
	return s.ScrollToSelected() || c
}

func (s *CellState) MoveDown(n int) bool {
	c := s.Selection.MoveDown(n, s.maxCol(), s.maxRow())
	return s.ScrollToSelected() || c
}

func (s *CellState) MoveLeft(n int) bool {
	c := s.Selection.MoveLeft(n, s.maxCol(), s.maxRow())
	return s.ScrollToSelected() || c
}

func (s *CellState) MoveRight(n int) bool {
	c := s.Selection.MoveRight(n, s.maxCol(), s.maxRow())
	return s.ScrollToSelected() || c
}

// HandleEvent moves the cell selection with keys, clicks and drags.
func (s *CellState) HandleEvent(ev input.Event) Outcome {
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

func (s *CellState) handleKey(k key.Event) Outcome {
	page := max(s.PageLen()-1, 1)
	switch {
	case k.IsPlain(key.KeyUp):
		return changed(s.MoveUp(1))
	case k.IsPlain(key.KeyDown):
		return changed(s.MoveDown(1))
	case k.IsPlain(key.KeyLeft):
		return changed(s.MoveLeft(1))
	case k.IsPlain(key.KeyRight):
		return changed(s.MoveRight(1))
	case k.IsPlain(key.KeyPageUp):
		return changed(s.MoveUp(page))
	case k.IsPlain(key.KeyPageDown):
		return changed(s.MoveDown(page))
	case k.IsPlain(key.KeyHome):
		return changed(s.MoveToCol(0))
	case k.IsPlain(key.KeyEnd):
		return changed(s.MoveToCol(s.maxCol()))
	case k.Is(key.KeyHome, key.ModCtrl):
		return changed(s.MoveToRow(0))
	case k.Is(key.KeyEnd, key.ModCtrl):
		return changed(s.MoveToRow(s.maxRow()))
	}
	return Continue
}

func (s *CellState) handleMouse(m mouse.Event) Outcome {
	drag := s.trackDrag(m)
	switch {
	case m.IsLeftPress() && mouseInside(s.tableArea, m):
		if col, row, ok := s.CellAtClicked(m.Position.X, m.Position.Y); ok {
			return changed(s.MoveTo(col, row))
		}
		return Unchanged
	case drag:
		col, row := s.CellAtDrag(m.Position.X, m.Position.Y)
		return changed(s.MoveTo(col, row))
	}
	return s.handleScrollMouse(m, nil)
}
