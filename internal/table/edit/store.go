package edit

import (
	"slices"

	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// Store is the row collection a State edits.
type Store[D any] struct {
	rows []D
}

// NewStore creates a store holding rows. The slice is not copied.
func NewStore[D any](rows []D) *Store[D] {
	return &Store[D]{rows: rows}
}

func (s *Store[D]) Len() int { return len(s.rows) }

// Get returns the row at i.
func (s *Store[D]) Get(i int) (D, bool) {
	if i < 0 || i >= len(s.rows) {
		var zero D
		return zero, false
	}
	return s.rows[i], true
}

// Set replaces the row at i.
func (s *Store[D]) Set(i int, v D) bool {
	if i < 0 || i >= len(s.rows) {
		return false
	}
	s.rows[i] = v
	return true
}

// Insert inserts v before i. i == Len appends.
func (s *Store[D]) Insert(i int, v D) bool {
	if i < 0 || i > len(s.rows) {
		return false
	}
	s.rows = slices.Insert(s.rows, i, v)
	return true
}

// Remove deletes the row at i.
func (s *Store[D]) Remove(i int) bool {
	if i < 0 || i >= len(s.rows) {
		return false
	}
	s.rows = slices.Delete(s.rows, i, i+1)
	return true
}

// Rows returns the backing slice.
func (s *Store[D]) Rows() []D { return s.rows }

// CellFunc renders column col of value.
type CellFunc[D any] func(ctx *table.Context, col int, value D, area core.Rect, buf *buffer.Buffer)

// storeData exposes a store as random-access table data.
type storeData[D any] struct {
	store *Store[D]
	cells CellFunc[D]
}

func (d storeData[D]) Rows() int                { return d.store.Len() }
func (d storeData[D]) RowHeight(int) int        { return 1 }
func (d storeData[D]) RowStyle(int) *core.Style { return nil }

func (d storeData[D]) RenderCell(ctx *table.Context, col, row int, area core.Rect, buf *buffer.Buffer) {
	if v, ok := d.store.Get(row); ok {
		d.cells(ctx, col, v, area, buf)
	}
}
