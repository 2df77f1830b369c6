package table

import (
	"strings"

	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// Cell is a pre-rendered text cell. Text may span several lines.
type Cell struct {
	Text  string
	Style *core.Style
}

// NewCell creates an unstyled text cell.
func NewCell(text string) Cell {
	return Cell{Text: text}
}

// WithStyle returns the cell with a style patch.
func (c Cell) WithStyle(s core.Style) Cell {
	c.Style = &s
	return c
}

func (c Cell) lines() int {
	return strings.Count(c.Text, "\n") + 1
}

// Render draws the cell into area.
func (c Cell) Render(area core.Rect, buf *buffer.Buffer) {
	if c.Style != nil {
		buf.SetStyle(area, *c.Style)
	}
	renderText(c.Text, area, buf)
}

// renderText writes text line by line into area, clipped to it.
func renderText(text string, area core.Rect, buf *buffer.Buffer) {
	for i, line := range strings.Split(text, "\n") {
		if i >= area.Height {
			break
		}
		buf.SetStringN(area.X, area.Y+i, line, area.Width, core.DefaultStyle())
	}
}

// Row is a materialized table row.
type Row struct {
	Cells  []Cell
	Height int
	Style  *core.Style
}

// NewRow creates a row as high as its tallest cell.
func NewRow(cells ...Cell) Row {
	h := 1
	for _, c := range cells {
		h = max(h, c.lines())
	}
	return Row{Cells: cells, Height: h}
}

// TextRow creates a row of unstyled cells.
func TextRow(texts ...string) Row {
	cells := make([]Cell, len(texts))
	for i, t := range texts {
		cells[i] = NewCell(t)
	}
	return NewRow(cells...)
}

// WithHeight returns the row with a fixed height.
func (r Row) WithHeight(h int) Row {
	r.Height = max(h, 0)
	return r
}

// WithStyle returns the row with a row style.
func (r Row) WithStyle(s core.Style) Row {
	r.Style = &s
	return r
}

func (r Row) renderCell(col int, area core.Rect, buf *buffer.Buffer) {
	if col < len(r.Cells) {
		r.Cells[col].Render(area, buf)
	}
}
