// Package selection holds the selection models a table can carry.
//
// Exactly one model is live per table. All models clamp movement to a
// maximum index (count-1, never below 0) and shift their indices when rows
// are inserted or removed.
package selection

// Selection is what the renderer and the mutation hooks need to know about
// a selection model.
type Selection interface {
	// IsSelectedCell reports whether the single cell (col, row) is selected.
	IsSelectedCell(col, row int) bool
	// IsSelectedRow reports whether the whole row is selected.
	IsSelectedRow(row int) bool
	// IsSelectedColumn reports whether the whole column is selected.
	IsSelectedColumn(col int) bool
	// LeadSelection returns the position that should be kept visible.
	// col is 0 for row based models.
	LeadSelection() (col, row int, ok bool)
	// HasSelection reports whether anything is selected.
	HasSelection() bool
	// Clear drops the selection.
	Clear()
	// ItemsAdded shifts indices for n rows inserted at pos.
	ItemsAdded(pos, n int)
	// ItemsRemoved shifts indices for n rows removed at pos, rows being the
	// row count after removal.
	ItemsRemoved(pos, n, rows int)
}

// MaxIndex converts a count into the largest valid index.
func MaxIndex(count int) int {
	return max(count-1, 0)
}

// shiftRemoved maps an index across the removal of [pos, pos+n).
// Indices inside the removed range collapse onto pos.
func shiftRemoved(idx, pos, n int) int {
	switch {
	case idx >= pos+n:
		return idx - n
	case idx >= pos:
		return pos
	}
	return idx
}

// None never selects anything.
type None struct{}

func (None) IsSelectedCell(int, int) bool    { return false }
func (None) IsSelectedRow(int) bool          { return false }
func (None) IsSelectedColumn(int) bool       { return false }
func (None) LeadSelection() (int, int, bool) { return 0, 0, false }
func (None) HasSelection() bool              { return false }
func (None) Clear()                          {}
func (None) ItemsAdded(int, int)             {}
func (None) ItemsRemoved(int, int, int)      {}
