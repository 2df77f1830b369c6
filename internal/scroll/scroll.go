// Package scroll tracks one scroll axis: offset, maximum offset, page
// length and scroll increment.
//
// The offset may exceed the maximum offset for a while, e.g. after the
// data shrank. Renderers detect and correct that; nothing here panics.
package scroll

// State is the bookkeeping for one axis.
type State struct {
	offset       int
	maxOffset    int
	pageLen      int
	scrollBy     int
	overscrollBy int
}

// New creates an empty axis.
func New() *State {
	return &State{}
}

// Clear resets the offset to 0.
func (s *State) Clear() {
	s.offset = 0
}

// Offset returns the index of the first visible item.
func (s *State) Offset() int {
	return s.offset
}

// SetOffset sets the offset unchecked and reports whether it changed.
func (s *State) SetOffset(offset int) bool {
	offset = max(offset, 0)
	old := s.offset
	s.offset = offset
	return old != offset
}

// MaxOffset returns the largest offset that still shows a full last page.
func (s *State) MaxOffset() int {
	return s.maxOffset
}

// SetMaxOffset sets the max offset.
func (s *State) SetMaxOffset(maxOffset int) {
	s.maxOffset = max(maxOffset, 0)
}

// PageLen returns the number of visible items.
func (s *State) PageLen() int {
	return s.pageLen
}

// SetPageLen sets the number of visible items.
func (s *State) SetPageLen(pageLen int) {
	s.pageLen = max(pageLen, 0)
}

// ScrollBy returns the scroll increment. Unset, it is a tenth of the page,
// at least 1.
func (s *State) ScrollBy() int {
	if s.scrollBy > 0 {
		return s.scrollBy
	}
	return max(s.pageLen/10, 1)
}

// SetScrollBy sets a fixed scroll increment; 0 restores the default.
func (s *State) SetScrollBy(n int) {
	s.scrollBy = max(n, 0)
}

// OverscrollBy returns how far past the max offset scrolling may go.
func (s *State) OverscrollBy() int {
	return s.overscrollBy
}

// SetOverscrollBy allows scrolling n items past the max offset.
func (s *State) SetOverscrollBy(n int) {
	s.overscrollBy = max(n, 0)
}

// Limit clamps an offset to [0, maxOffset+overscroll].
func (s *State) Limit(offset int) int {
	limit := s.maxOffset
	// maxOffset can be a near-MaxInt sentinel.
	if s.overscrollBy > 0 && limit <= maxInt-s.overscrollBy {
		limit += s.overscrollBy
	}
	return min(max(offset, 0), limit)
}

// ScrollTo sets a limited offset and reports whether it changed.
func (s *State) ScrollTo(offset int) bool {
	return s.SetOffset(s.Limit(offset))
}

// ScrollUp scrolls n items towards the start.
func (s *State) ScrollUp(n int) bool {
	return s.ScrollTo(s.offset - n)
}

// ScrollDown scrolls n items towards the end.
func (s *State) ScrollDown(n int) bool {
	if s.offset > maxInt-n {
		return s.ScrollTo(maxInt)
	}
	return s.ScrollTo(s.offset + n)
}

// ItemsAdded shifts the axis for n items inserted at pos.
func (s *State) ItemsAdded(pos, n int) {
	if n <= 0 {
		return
	}
	if s.offset >= pos {
		s.offset += n
	}
	if s.maxOffset <= maxInt-n {
		s.maxOffset += n
	}
}

// ItemsRemoved shifts the axis for n items removed at pos.
func (s *State) ItemsRemoved(pos, n int) {
	if n <= 0 {
		return
	}
	switch {
	case s.offset >= pos+n:
		s.offset -= n
	case s.offset > pos:
		s.offset = pos
	}
	s.maxOffset = max(s.maxOffset-n, 0)
}

const maxInt = int(^uint(0) >> 1)
