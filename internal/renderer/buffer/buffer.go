// Package buffer provides the off-screen cell grid every widget renders into.
//
// A Buffer covers a rectangular area which need not start at the origin.
// Writes outside the area are dropped. Row buffers used for horizontal
// scrolling start at (0,0) and are copied into a screen buffer with
// Transfer.
package buffer

import (
	"strings"

	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/rivo/uniseg"
)

// Buffer is a grid of cells covering Area.
type Buffer struct {
	area  core.Rect
	cells []core.Cell
}

// New creates a buffer covering area, filled with empty cells.
func New(area core.Rect) *Buffer {
	b := &Buffer{}
	b.Resize(area)
	return b
}

// Area returns the covered region.
func (b *Buffer) Area() core.Rect {
	return b.area
}

// Resize changes the covered region and resets every cell.
func (b *Buffer) Resize(area core.Rect) {
	area = core.NewRect(area.X, area.Y, area.Width, area.Height)
	n := area.Area()
	if cap(b.cells) >= n {
		b.cells = b.cells[:n]
	} else {
		b.cells = make([]core.Cell, n)
	}
	b.area = area
	b.Reset()
}

// Reset fills the whole buffer with empty cells.
func (b *Buffer) Reset() {
	empty := core.EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(core.Pos{X: x, Y: y}) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

// Cell returns the cell at (x, y), or an empty cell outside the area.
func (b *Buffer) Cell(x, y int) core.Cell {
	if i, ok := b.index(x, y); ok {
		return b.cells[i]
	}
	return core.EmptyCell()
}

// SetCell replaces the cell at (x, y).
func (b *Buffer) SetCell(x, y int, cell core.Cell) {
	if i, ok := b.index(x, y); ok {
		b.cells[i] = cell
	}
}

// Fill replaces every cell of rect with cell.
func (b *Buffer) Fill(rect core.Rect, cell core.Cell) {
	rect = rect.Intersection(b.area)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i] = cell
		}
	}
}

// SetStyle patches the style of every cell in rect, keeping the content.
func (b *Buffer) SetStyle(rect core.Rect, style core.Style) {
	rect = rect.Intersection(b.area)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i].Style = b.cells[i].Style.Merge(style)
		}
	}
}

// SetString writes s at (x, y) and returns the number of columns used.
// Output stops at the right edge of the area.
func (b *Buffer) SetString(x, y int, s string, style core.Style) int {
	return b.SetStringN(x, y, s, b.area.Right()-x, style)
}

// SetStringN writes at most maxWidth columns of s at (x, y), one grapheme
// cluster per cell, and returns the number of columns used.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style core.Style) int {
	if y < b.area.Y || y >= b.area.Bottom() {
		return 0
	}
	maxWidth = min(maxWidth, b.area.Right()-x)
	col := 0
	state := -1
	for len(s) > 0 && col < maxWidth {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if col+width > maxWidth {
			break
		}
		r := []rune(cluster)[0]
		cur := x + col
		if i, ok := b.index(cur, y); ok {
			b.cells[i] = core.Cell{
				Rune:  r,
				Width: width,
				Style: b.cells[i].Style.Merge(style),
			}
		}
		for k := 1; k < width; k++ {
			if i, ok := b.index(cur+k, y); ok {
				b.cells[i] = core.ContinuationCell(b.cells[i].Style.Merge(style))
			}
		}
		col += width
	}
	return col
}

// Transfer copies the region of b starting at column shift into target
// on dst. Rows are matched top to bottom. A wide character cut in half
// by the left edge is replaced by a blank.
func (b *Buffer) Transfer(dst *Buffer, shift int, target core.Rect) {
	for dy := 0; dy < target.Height; dy++ {
		sy := b.area.Y + dy
		for dx := 0; dx < target.Width; dx++ {
			sx := b.area.X + shift + dx
			si, ok := b.index(sx, sy)
			if !ok {
				continue
			}
			cell := b.cells[si]
			if dx == 0 && cell.IsContinuation() {
				cell = core.Cell{Rune: ' ', Width: 1, Style: cell.Style}
			}
			dst.SetCell(target.X+dx, target.Y+dy, cell)
		}
	}
}

// Line returns the text of row y inside the area, continuation cells
// omitted.
func (b *Buffer) Line(y int) string {
	if y < b.area.Y || y >= b.area.Bottom() {
		return ""
	}
	var sb strings.Builder
	for x := b.area.X; x < b.area.Right(); x++ {
		c := b.Cell(x, y)
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Change is a cell that differs between two frames.
type Change struct {
	X, Y int
	Cell core.Cell
}

// Diff returns the cells of b that differ from prev. A nil prev or a
// different area reports every cell.
func (b *Buffer) Diff(prev *Buffer) []Change {
	full := prev == nil || prev.area != b.area
	var changes []Change
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		for x := b.area.X; x < b.area.Right(); x++ {
			i, _ := b.index(x, y)
			if full || !b.cells[i].Equals(prev.cells[i]) {
				changes = append(changes, Change{X: x, Y: y, Cell: b.cells[i]})
			}
		}
	}
	return changes
}

// CopyFrom makes b an exact copy of src.
func (b *Buffer) CopyFrom(src *Buffer) {
	b.area = src.area
	b.cells = append(b.cells[:0], src.cells...)
}
