package selection

// Cell selects a single (column, row) cell.
type Cell struct {
	col, row int
	has      bool
}

// NewCell creates an empty cell selection.
func NewCell() *Cell {
	return &Cell{}
}

// Selected returns the selected cell.
func (s *Cell) Selected() (col, row int, ok bool) {
	return s.col, s.row, s.has
}

// SelectCell sets the cell unchecked and reports whether it changed.
func (s *Cell) SelectCell(col, row int) bool {
	col, row = max(col, 0), max(row, 0)
	changed := !s.has || s.col != col || s.row != row
	s.col, s.row, s.has = col, row, true
	return changed
}

// SelectRow keeps the column and selects row, clamped to maxRow.
func (s *Cell) SelectRow(row, maxRow int) bool {
	return s.SelectCell(s.col, min(row, maxRow))
}

// SelectColumn keeps the row and selects col, clamped to maxCol.
func (s *Cell) SelectColumn(col, maxCol int) bool {
	return s.SelectCell(min(col, maxCol), s.row)
}

// MoveTo selects (col, row) clamped to the maxima.
func (s *Cell) MoveTo(col, row, maxCol, maxRow int) bool {
	return s.SelectCell(min(col, maxCol), min(row, maxRow))
}

// MoveDown moves n rows down.
func (s *Cell) MoveDown(n, maxCol, maxRow int) bool {
	if !s.has {
		return s.MoveTo(0, 0, maxCol, maxRow)
	}
	return s.MoveTo(s.col, s.row+n, maxCol, maxRow)
}

// MoveUp moves n rows up.
func (s *Cell) MoveUp(n, maxCol, maxRow int) bool {
	if !s.has {
		return s.MoveTo(0, 0, maxCol, maxRow)
	}
	return s.MoveTo(s.col, max(s.row-n, 0), maxCol, maxRow)
}

// MoveRight moves n columns right.
func (s *Cell) MoveRight(n, maxCol, maxRow int) bool {
	if !s.has {
		return s.MoveTo(0, 0, maxCol, maxRow)
	}
	return s.MoveTo(s.col+n, s.row, maxCol, maxRow)
}

// MoveLeft moves n columns left.
func (s *Cell) MoveLeft(n, maxCol, maxRow int) bool {
	if !s.has {
		return s.MoveTo(0, 0, maxCol, maxRow)
	}
	return s.MoveTo(max(s.col-n, 0), s.row, maxCol, maxRow)
}

func (s *Cell) IsSelectedCell(col, row int) bool {
	return s.has && s.col == col && s.row == row
}

func (s *Cell) IsSelectedRow(int) bool    { return false }
func (s *Cell) IsSelectedColumn(int) bool { return false }

func (s *Cell) LeadSelection() (int, int, bool) {
	return s.col, s.row, s.has
}

func (s *Cell) HasSelection() bool { return s.has }

func (s *Cell) Clear() {
	s.col, s.row, s.has = 0, 0, false
}

func (s *Cell) ItemsAdded(pos, n int) {
	if s.has && s.row >= pos {
		s.row += n
	}
}

func (s *Cell) ItemsRemoved(pos, n, rows int) {
	if !s.has {
		return
	}
	if rows <= 0 {
		s.Clear()
		return
	}
	s.row = min(shiftRemoved(s.row, pos, n), rows-1)
}
