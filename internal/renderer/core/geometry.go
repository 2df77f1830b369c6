package core

import "fmt"

// Pos is a position on the character grid (0-indexed).
type Pos struct {
	X int
	Y int
}

// Rect is a rectangular region given by origin and size.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle. Negative sizes are clamped to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Left returns the first column.
func (r Rect) Left() int { return r.X }

// Top returns the first row.
func (r Rect) Top() int { return r.Y }

// Right returns the column after the last one.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the row after the last one.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.Width * r.Height }

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if pos is within the rectangle.
func (r Rect) Contains(pos Pos) bool {
	return pos.X >= r.X && pos.X < r.Right() &&
		pos.Y >= r.Y && pos.Y < r.Bottom()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersection returns the overlapping region of two rectangles.
// Disjoint rectangles yield an empty rectangle anchored at the clamped
// origin, so its position is still meaningful.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: max(x2-x1, 0), Height: max(y2-y1, 0)}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// String returns a compact representation for diagnostics.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
