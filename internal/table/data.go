package table

import (
	"io"

	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// Context is handed to every cell renderer.
type Context struct {
	// Focus reports whether the table has input focus.
	Focus bool

	// SelectedCell, SelectedRow and SelectedColumn tell which selection
	// kind matched this cell. At most one is set.
	SelectedCell   bool
	SelectedRow    bool
	SelectedColumn bool

	// Style is the base table style.
	Style core.Style
	// RowStyle is the style of the current row, if the source sets one.
	RowStyle *core.Style
	// SelectStyle is the resolved selection style, already applied to
	// the cell area.
	SelectStyle *core.Style

	// SpaceArea is the column spacer to the right of the cell, in row
	// buffer coordinates.
	SpaceArea core.Rect
}

// Data is a random-access row source with a known row count.
type Data interface {
	Rows() int
	RowHeight(row int) int
	RowStyle(row int) *core.Style
	RenderCell(ctx *Context, col, row int, area core.Rect, buf *buffer.Buffer)
}

// Iter is a forward-only row source.
//
// The cursor starts before the first row. AdvanceBy skips n rows and
// moves onto the next one, so the first AdvanceBy(0) lands on row 0 and
// the first AdvanceBy(k) lands on row k. It reports whether the cursor
// is on a valid row.
type Iter interface {
	// RowCount returns the total row count if it is cheaply known.
	RowCount() (int, bool)
	AdvanceBy(n int) bool
	RowHeight() int
	RowStyle() *core.Style
	RenderCell(ctx *Context, col int, area core.Rect, buf *buffer.Buffer)
	// Clone returns an independent cursor at the start of the data.
	// Sources that cannot be cloned return false. A clone with a
	// Close method is closed when the render that opened it is done.
	Clone() (Iter, bool)
}

// HeaderProvider is implemented by sources that bring their own header.
type HeaderProvider interface {
	Header() *Row
}

// FooterProvider is implemented by sources that bring their own footer.
type FooterProvider interface {
	Footer() *Row
}

// WidthsProvider is implemented by sources that bring column widths.
type WidthsProvider interface {
	Widths() []layout.Constraint
}

type sourceKind uint8

const (
	sourceNone sourceKind = iota
	sourceRows
	sourceData
	sourceIter
)

// source is the closed set of row sources a table can render.
type source struct {
	kind sourceKind
	rows []Row
	data Data
	iter Iter
}

// open returns a fresh cursor. An Iter is always cloned so the table's
// own copy stays at its start for the next render.
func (s source) open() *cursor {
	switch s.kind {
	case sourceRows:
		return &cursor{kind: cursorRows, rows: s.rows}
	case sourceData:
		return &cursor{kind: cursorData, data: s.data}
	case sourceIter:
		if it, ok := s.iter.Clone(); ok && it != nil {
			return &cursor{kind: cursorIter, iter: it}
		}
		return &cursor{kind: cursorInvalid}
	default:
		return &cursor{kind: cursorNone}
	}
}

type cursorKind uint8

const (
	cursorNone cursorKind = iota
	cursorInvalid
	cursorRows
	cursorData
	cursorIter
)

// invalidMessage is rendered in place of data from an Iter that cannot
// be cloned.
const invalidMessage = "table iterator must implement a valid Clone to be rendered"

var invalidStyle = core.NewStyle(core.ColorWhite, core.ColorRed)

// cursor walks any source with Iter semantics.
type cursor struct {
	kind cursorKind
	rows []Row
	data Data
	iter Iter

	row     int
	started bool
}

// rowCount returns the row count if known. Invalid sources pretend to
// hold the single diagnostic row.
func (c *cursor) rowCount() (int, bool) {
	switch c.kind {
	case cursorInvalid:
		return 1, true
	case cursorRows:
		return len(c.rows), true
	case cursorData:
		return c.data.Rows(), true
	case cursorIter:
		return c.iter.RowCount()
	default:
		return 0, true
	}
}

func (c *cursor) nth(n int) bool {
	switch c.kind {
	case cursorInvalid:
		return c.step(n, 1)
	case cursorRows:
		return c.step(n, len(c.rows))
	case cursorData:
		return c.step(n, c.data.Rows())
	case cursorIter:
		return c.iter.AdvanceBy(n)
	default:
		return false
	}
}

// step advances the index of a counted source.
func (c *cursor) step(n, rows int) bool {
	n = max(n, 0)
	if !c.started {
		c.started = true
		c.row = n
	} else {
		c.row += n + 1
	}
	return c.row < rows
}

func (c *cursor) rowHeight() int {
	switch c.kind {
	case cursorRows:
		return c.rows[c.row].Height
	case cursorData:
		return c.data.RowHeight(c.row)
	case cursorIter:
		return c.iter.RowHeight()
	default:
		return 1
	}
}

func (c *cursor) rowStyle() *core.Style {
	switch c.kind {
	case cursorInvalid:
		s := invalidStyle
		return &s
	case cursorRows:
		return c.rows[c.row].Style
	case cursorData:
		return c.data.RowStyle(c.row)
	case cursorIter:
		return c.iter.RowStyle()
	default:
		return nil
	}
}

func (c *cursor) renderCell(ctx *Context, col int, area core.Rect, buf *buffer.Buffer) {
	switch c.kind {
	case cursorInvalid:
		if col == 0 {
			buf.SetStringN(area.X, area.Y, invalidMessage, buf.Area().Right()-area.X, core.DefaultStyle())
		}
	case cursorRows:
		c.rows[c.row].renderCell(col, area, buf)
	case cursorData:
		c.data.RenderCell(ctx, col, c.row, area, buf)
	case cursorIter:
		c.iter.RenderCell(ctx, col, area, buf)
	}
}

// close releases a cloned Iter.
func (c *cursor) close() {
	if c.kind != cursorIter {
		return
	}
	switch it := c.iter.(type) {
	case io.Closer:
		_ = it.Close()
	case interface{ Close() }:
		it.Close()
	}
	c.iter = nil
	c.kind = cursorNone
}
