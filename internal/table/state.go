package table

import (
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/scroll"
	"github.com/dshills/tablegrid/internal/table/selection"
)

// State is everything that survives between renders: offsets, the
// selection and the geometry of the last frame.
type State struct {
	// Focus reports whether the table holds input focus. Key events are
	// only handled while it is set.
	Focus bool

	area         core.Rect
	headerArea   core.Rect
	tableArea    core.Rect
	footerArea   core.Rect
	rowAreas     []core.Rect
	columnAreas  []core.Rect
	columnLayout []core.Rect

	rows         int
	countedRows  int
	reportedRows int
	columns      int
	regime       regime
	diagnostics  []string

	vscroll *scroll.State
	hscroll *scroll.State

	selection selection.Selection

	mouseConfig mouse.Config
	doubleClick *mouse.DoubleClick
	// dragging is set by a left press inside the table area and cleared
	// on release.
	dragging bool
}

// NewState creates a state without selection.
func NewState() *State {
	return newState(selection.None{})
}

func newState(sel selection.Selection) *State {
	cfg := mouse.DefaultConfig()
	return &State{
		vscroll:     scroll.New(),
		hscroll:     scroll.New(),
		selection:   sel,
		mouseConfig: cfg,
		doubleClick: mouse.NewDoubleClick(cfg),
	}
}

// SetMouseConfig sets the double click and wheel behavior.
func (s *State) SetMouseConfig(cfg mouse.Config) {
	s.mouseConfig = cfg
	s.doubleClick = mouse.NewDoubleClick(cfg)
}

// Selection returns the live selection model.
func (s *State) Selection() selection.Selection {
	return s.selection
}

// Rows returns the canonical row count from the last render, adjusted
// by ItemsAdded and ItemsRemoved since.
func (s *State) Rows() int { return s.rows }

// SetRows sets the row count for owners that know it before the next
// render recounts.
func (s *State) SetRows(n int) {
	s.rows = max(n, 0)
	s.countedRows = s.rows
}

// CountedRows returns the rows actually iterated during the last render.
func (s *State) CountedRows() int { return s.countedRows }

// ReportedRows returns the count the source reported, if it did.
func (s *State) ReportedRows() int { return s.reportedRows }

// Columns returns the column count.
func (s *State) Columns() int { return s.columns }

// Diagnostics returns the anomalies found by the last render.
func (s *State) Diagnostics() []string { return s.diagnostics }

func (s *State) Area() core.Rect       { return s.area }
func (s *State) HeaderArea() core.Rect { return s.headerArea }
func (s *State) TableArea() core.Rect  { return s.tableArea }
func (s *State) FooterArea() core.Rect { return s.footerArea }

// RowAreas returns the screen areas of the visible rows, first visible
// row first.
func (s *State) RowAreas() []core.Rect { return s.rowAreas }

// ColumnAreas returns the visible screen area of every column after the
// horizontal shift. Columns scrolled out are empty.
func (s *State) ColumnAreas() []core.Rect { return s.columnAreas }

// ColumnLayout returns the unscrolled column extents including the
// following spacer, relative to x=0.
func (s *State) ColumnLayout() []core.Rect { return s.columnLayout }

// RowCells returns the area of row and of each of its cells, if row is
// visible.
func (s *State) RowCells(row int) (core.Rect, []core.Rect, bool) {
	off := s.vscroll.Offset()
	if row < off || row-off >= len(s.rowAreas) {
		return core.Rect{}, nil, false
	}
	r := s.rowAreas[row-off]
	cells := make([]core.Rect, len(s.columnAreas))
	for i, c := range s.columnAreas {
		cells[i] = core.NewRect(c.X, r.Y, c.Width, r.Height)
	}
	return r, cells, true
}

// CellAtClicked returns the cell at screen position (x, y).
func (s *State) CellAtClicked(x, y int) (col, row int, ok bool) {
	col, okc := s.ColumnAtClicked(x, y)
	row, okr := s.RowAtClicked(x, y)
	return col, row, okc && okr
}

// ColumnAtClicked returns the column at screen column x.
func (s *State) ColumnAtClicked(x, _ int) (int, bool) {
	for i, a := range s.columnAreas {
		if a.Width > 0 && x >= a.X && x < a.Right() {
			return i, true
		}
	}
	return 0, false
}

// RowAtClicked returns the row at screen line y.
func (s *State) RowAtClicked(_, y int) (int, bool) {
	for i, a := range s.rowAreas {
		if y >= a.Y && y < a.Bottom() {
			return s.vscroll.Offset() + i, true
		}
	}
	return 0, false
}

// CellAtDrag is CellAtClicked for positions that may be outside the
// table.
func (s *State) CellAtDrag(x, y int) (col, row int) {
	return s.ColumnAtDrag(x, y), s.RowAtDrag(x, y)
}

// RowAtDrag returns the row under y. Above the table it counts back
// from the offset, below it counts on from the last visible row.
func (s *State) RowAtDrag(x, y int) int {
	if row, ok := s.RowAtClicked(x, y); ok {
		return row
	}
	off := s.vscroll.Offset()
	if y < s.tableArea.Y || len(s.rowAreas) == 0 {
		return max(off-(s.tableArea.Y-y), 0)
	}
	last := s.rowAreas[len(s.rowAreas)-1]
	return off + len(s.rowAreas) + max(y-last.Bottom(), 0)
}

// ColumnAtDrag returns the column under x. Left or right of the visible
// columns it returns the neighbor of the outermost visible column.
func (s *State) ColumnAtDrag(x, y int) int {
	if col, ok := s.ColumnAtClicked(x, y); ok {
		return col
	}
	first, last := -1, -1
	for i, a := range s.columnAreas {
		if a.Width == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return 0
	}
	if x < s.columnAreas[first].X {
		return max(first-1, 0)
	}
	return min(last+1, selection.MaxIndex(s.columns))
}

func (s *State) ClearOffset() {
	s.vscroll.SetOffset(0)
	s.hscroll.SetOffset(0)
}

func (s *State) RowOffset() int               { return s.vscroll.Offset() }
func (s *State) SetRowOffset(offset int) bool { return s.vscroll.SetOffset(offset) }
func (s *State) RowMaxOffset() int            { return s.vscroll.MaxOffset() }
func (s *State) PageLen() int                 { return s.vscroll.PageLen() }
func (s *State) RowScrollBy() int             { return s.vscroll.ScrollBy() }
func (s *State) SetRowScrollBy(n int)         { s.vscroll.SetScrollBy(n) }
func (s *State) XOffset() int                 { return s.hscroll.Offset() }
func (s *State) SetXOffset(offset int) bool   { return s.hscroll.SetOffset(offset) }
func (s *State) XMaxOffset() int              { return s.hscroll.MaxOffset() }
func (s *State) PageWidth() int               { return s.hscroll.PageLen() }
func (s *State) XScrollBy() int               { return s.hscroll.ScrollBy() }
func (s *State) ScrollUp(n int) bool          { return s.vscroll.ScrollUp(n) }
func (s *State) ScrollDown(n int) bool        { return s.vscroll.ScrollDown(n) }
func (s *State) ScrollLeft(n int) bool        { return s.hscroll.ScrollUp(n) }
func (s *State) ScrollRight(n int) bool       { return s.hscroll.ScrollDown(n) }

// ScrollToSelected scrolls the lead selection into view. The column is
// only scrolled for cell selections.
func (s *State) ScrollToSelected() bool {
	col, row, ok := s.selection.LeadSelection()
	if !ok {
		return false
	}
	c := false
	if s.selection.IsSelectedCell(col, row) {
		c = s.ScrollToCol(col)
	}
	r := s.ScrollToRow(row)
	return r || c
}

// ScrollToRow makes row visible. Below the page it becomes the last
// visible row, above it becomes the first.
func (s *State) ScrollToRow(row int) bool {
	page := max(s.vscroll.PageLen(), 1)
	off := s.vscroll.Offset()
	switch {
	case row >= off+page:
		return s.vscroll.SetOffset(row - page + 1)
	case row < off:
		return s.vscroll.SetOffset(row)
	}
	return false
}

// ScrollToCol makes column col visible using the unscrolled layout.
func (s *State) ScrollToCol(col int) bool {
	if col < 0 || col >= len(s.columnLayout) {
		return false
	}
	c := s.columnLayout[col]
	xoff, pw := s.hscroll.Offset(), s.hscroll.PageLen()
	switch {
	case c.X < xoff:
		return s.hscroll.SetOffset(c.X)
	case c.Right() > xoff+pw:
		return s.hscroll.SetOffset(c.Right() - pw)
	}
	return false
}

// ScrollToX makes the screen column x of the full table width visible.
func (s *State) ScrollToX(x int) bool {
	page := max(s.hscroll.PageLen(), 1)
	off := s.hscroll.Offset()
	switch {
	case x >= off+page:
		return s.hscroll.SetOffset(x - page + 1)
	case x < off:
		return s.hscroll.SetOffset(x)
	}
	return false
}

// ItemsAdded shifts rows, offsets and selection for n rows inserted at
// pos.
func (s *State) ItemsAdded(pos, n int) {
	if n <= 0 {
		return
	}
	s.rows += n
	s.countedRows = s.rows
	s.vscroll.ItemsAdded(pos, n)
	s.selection.ItemsAdded(pos, n)
}

// ItemsRemoved shifts rows, offsets and selection for n rows removed at
// pos.
func (s *State) ItemsRemoved(pos, n int) {
	if n <= 0 {
		return
	}
	s.rows = max(s.rows-n, 0)
	s.countedRows = s.rows
	s.vscroll.ItemsRemoved(pos, n)
	s.selection.ItemsRemoved(pos, n, s.rows)
}

// ClearSelection drops the selection.
func (s *State) ClearSelection() { s.selection.Clear() }

// HasSelection reports whether anything is selected.
func (s *State) HasSelection() bool { return s.selection.HasSelection() }

// RemapOffsetSelection maps a scroll offset onto a row index in
// proportion to the max offset.
func (s *State) RemapOffsetSelection(offset int) int {
	maxOff := s.vscroll.MaxOffset()
	if maxOff <= 0 {
		return 0
	}
	r := int(float64(s.rows) * float64(offset) / float64(maxOff))
	return min(max(r, 0), selection.MaxIndex(s.rows))
}

// Stats is a snapshot of the scroll bookkeeping.
type Stats struct {
	Rows         int
	CountedRows  int
	ReportedRows int
	Columns      int
	Regime       string

	RowOffset    int
	RowMaxOffset int
	PageLen      int
	RowScrollBy  int

	XOffset    int
	XMaxOffset int
	PageWidth  int
	XScrollBy  int
}

// Stats returns a snapshot of the scroll bookkeeping.
func (s *State) Stats() Stats {
	return Stats{
		Rows:         s.rows,
		CountedRows:  s.countedRows,
		ReportedRows: s.reportedRows,
		Columns:      s.columns,
		Regime:       s.regime.String(),
		RowOffset:    s.vscroll.Offset(),
		RowMaxOffset: s.vscroll.MaxOffset(),
		PageLen:      s.vscroll.PageLen(),
		RowScrollBy:  s.vscroll.ScrollBy(),
		XOffset:      s.hscroll.Offset(),
		XMaxOffset:   s.hscroll.MaxOffset(),
		PageWidth:    s.hscroll.PageLen(),
		XScrollBy:    s.hscroll.ScrollBy(),
	}
}
