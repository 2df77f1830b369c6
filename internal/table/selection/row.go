package selection

// Row selects a single row, the lead.
type Row struct {
	lead    int
	hasLead bool

	// ScrollSelected makes scroll events move the selection instead of the
	// view.
	ScrollSelected bool
}

// NewRow creates an empty row selection.
func NewRow() *Row {
	return &Row{}
}

// Selected returns the selected row.
func (s *Row) Selected() (int, bool) {
	return s.lead, s.hasLead
}

// Select sets the lead unchecked and reports whether it changed.
func (s *Row) Select(row int) bool {
	old, had := s.lead, s.hasLead
	s.lead, s.hasLead = max(row, 0), true
	return !had || old != s.lead
}

// MoveTo selects row clamped to maximum.
func (s *Row) MoveTo(row, maximum int) bool {
	return s.Select(min(row, maximum))
}

// MoveDown moves the lead n rows down. Without a lead it selects row 0.
func (s *Row) MoveDown(n, maximum int) bool {
	if !s.hasLead {
		return s.MoveTo(0, maximum)
	}
	return s.MoveTo(s.lead+n, maximum)
}

// MoveUp moves the lead n rows up. Without a lead it selects row 0.
func (s *Row) MoveUp(n, maximum int) bool {
	if !s.hasLead {
		return s.MoveTo(0, maximum)
	}
	return s.MoveTo(max(s.lead-n, 0), maximum)
}

func (s *Row) IsSelectedCell(int, int) bool { return false }

func (s *Row) IsSelectedRow(row int) bool {
	return s.hasLead && s.lead == row
}

func (s *Row) IsSelectedColumn(int) bool { return false }

func (s *Row) LeadSelection() (int, int, bool) {
	return 0, s.lead, s.hasLead
}

func (s *Row) HasSelection() bool { return s.hasLead }

func (s *Row) Clear() {
	s.lead, s.hasLead = 0, false
}

func (s *Row) ItemsAdded(pos, n int) {
	if s.hasLead && s.lead >= pos {
		s.lead += n
	}
}

func (s *Row) ItemsRemoved(pos, n, rows int) {
	if !s.hasLead {
		return
	}
	if rows <= 0 {
		s.Clear()
		return
	}
	s.lead = min(shiftRemoved(s.lead, pos, n), rows-1)
}
