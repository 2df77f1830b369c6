package scroll

import "testing"

func TestScrollByDefault(t *testing.T) {
	s := New()
	if got := s.ScrollBy(); got != 1 {
		t.Errorf("expected 1 for empty page, got %d", got)
	}
	s.SetPageLen(35)
	if got := s.ScrollBy(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	s.SetScrollBy(7)
	if got := s.ScrollBy(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestScrollLimits(t *testing.T) {
	s := New()
	s.SetMaxOffset(10)

	if !s.ScrollDown(4) || s.Offset() != 4 {
		t.Errorf("expected offset 4, got %d", s.Offset())
	}
	s.ScrollDown(100)
	if s.Offset() != 10 {
		t.Errorf("expected offset clamped to 10, got %d", s.Offset())
	}
	if s.ScrollDown(1) {
		t.Error("expected no change at the end")
	}
	s.ScrollUp(100)
	if s.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", s.Offset())
	}

	s.SetOverscrollBy(2)
	s.ScrollDown(100)
	if s.Offset() != 12 {
		t.Errorf("expected overscroll to 12, got %d", s.Offset())
	}
}

func TestSetOffsetUnchecked(t *testing.T) {
	s := New()
	s.SetMaxOffset(5)
	if !s.SetOffset(1_000_000) {
		t.Error("expected change")
	}
	if s.Offset() != 1_000_000 {
		t.Errorf("expected unchecked offset, got %d", s.Offset())
	}
	if s.SetOffset(1_000_000) {
		t.Error("expected no change for same offset")
	}
}

func TestSentinelMaxOffset(t *testing.T) {
	s := New()
	s.SetMaxOffset(maxInt - 1)
	s.SetOverscrollBy(5)
	s.SetOffset(maxInt - 2)
	s.ScrollDown(10)
	if s.Offset() != maxInt-1 {
		t.Errorf("expected offset at sentinel, got %d", s.Offset())
	}
}

func TestItemsAddedRemoved(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		pos, n     int
		wantAdded  int
		wantRemove int
	}{
		{"before offset", 10, 2, 3, 13, 7},
		{"at offset", 10, 10, 3, 13, 10},
		{"after offset", 10, 12, 3, 10, 10},
		{"removal spans offset", 10, 8, 5, 15, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetMaxOffset(50)
			s.SetOffset(tt.offset)
			s.ItemsAdded(tt.pos, tt.n)
			if s.Offset() != tt.wantAdded {
				t.Errorf("added: expected %d, got %d", tt.wantAdded, s.Offset())
			}
			if s.MaxOffset() != 50+tt.n {
				t.Errorf("added: expected max %d, got %d", 50+tt.n, s.MaxOffset())
			}

			s = New()
			s.SetMaxOffset(50)
			s.SetOffset(tt.offset)
			s.ItemsRemoved(tt.pos, tt.n)
			if s.Offset() != tt.wantRemove {
				t.Errorf("removed: expected %d, got %d", tt.wantRemove, s.Offset())
			}
		})
	}
}

func TestAddThenRemoveRestores(t *testing.T) {
	for _, pos := range []int{0, 3, 5, 9} {
		s := New()
		s.SetMaxOffset(20)
		s.SetOffset(5)
		s.ItemsAdded(pos, 4)
		s.ItemsRemoved(pos, 4)
		if s.Offset() != 5 || s.MaxOffset() != 20 {
			t.Errorf("pos %d: expected (5, 20), got (%d, %d)", pos, s.Offset(), s.MaxOffset())
		}
	}
}
