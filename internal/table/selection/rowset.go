package selection

import "sort"

// RowSet selects any number of rows. The inclusive range between anchor
// and lead is the active selection; Retire folds it into the retired set
// so a new range can be started.
type RowSet struct {
	anchor  int
	lead    int
	hasLead bool
	retired map[int]struct{}
}

// NewRowSet creates an empty row-set selection.
func NewRowSet() *RowSet {
	return &RowSet{retired: make(map[int]struct{})}
}

// Anchor returns the fixed end of the active range.
func (s *RowSet) Anchor() (int, bool) {
	return s.anchor, s.hasLead
}

// Lead returns the moving end of the active range.
func (s *RowSet) Lead() (int, bool) {
	return s.lead, s.hasLead
}

// SetLead moves the lead. With extend the anchor stays, otherwise a new
// range anchor=lead=row starts. The retired set is not touched.
func (s *RowSet) SetLead(row int, extend bool) bool {
	row = max(row, 0)
	oldAnchor, oldLead, had := s.anchor, s.lead, s.hasLead
	if extend && s.hasLead {
		s.lead = row
	} else {
		s.anchor, s.lead = row, row
	}
	s.hasLead = true
	return !had || oldAnchor != s.anchor || oldLead != s.lead
}

// Retire folds the active range into the retired set and clears
// anchor and lead.
func (s *RowSet) Retire() {
	if !s.hasLead {
		return
	}
	lo, hi := s.activeRange()
	for r := lo; r <= hi; r++ {
		s.retired[r] = struct{}{}
	}
	s.anchor, s.lead, s.hasLead = 0, 0, false
}

// Add marks row as selected in the retired set.
func (s *RowSet) Add(row int) {
	s.retired[row] = struct{}{}
}

// Remove unmarks row in the retired set.
func (s *RowSet) Remove(row int) {
	delete(s.retired, row)
}

// Toggle flips row in the retired set.
func (s *RowSet) Toggle(row int) {
	if _, ok := s.retired[row]; ok {
		delete(s.retired, row)
	} else {
		s.retired[row] = struct{}{}
	}
}

// Retired returns the retired rows, sorted.
func (s *RowSet) Retired() []int {
	rows := make([]int, 0, len(s.retired))
	for r := range s.retired {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// Selected returns every selected row, sorted.
func (s *RowSet) Selected() []int {
	set := make(map[int]struct{}, len(s.retired))
	for r := range s.retired {
		set[r] = struct{}{}
	}
	if s.hasLead {
		lo, hi := s.activeRange()
		for r := lo; r <= hi; r++ {
			set[r] = struct{}{}
		}
	}
	rows := make([]int, 0, len(set))
	for r := range set {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

func (s *RowSet) activeRange() (int, int) {
	return min(s.anchor, s.lead), max(s.anchor, s.lead)
}

// MoveTo starts a new range at row clamped to maximum.
func (s *RowSet) MoveTo(row, maximum int) bool {
	return s.SetLead(min(row, maximum), false)
}

// MoveDown moves the lead n rows down, extending the range if asked.
func (s *RowSet) MoveDown(n, maximum int, extend bool) bool {
	if !s.hasLead {
		return s.SetLead(0, false)
	}
	return s.SetLead(min(s.lead+n, maximum), extend)
}

// MoveUp moves the lead n rows up, extending the range if asked.
func (s *RowSet) MoveUp(n, maximum int, extend bool) bool {
	if !s.hasLead {
		return s.SetLead(0, false)
	}
	return s.SetLead(min(max(s.lead-n, 0), maximum), extend)
}

func (s *RowSet) IsSelectedCell(int, int) bool { return false }

func (s *RowSet) IsSelectedRow(row int) bool {
	if _, ok := s.retired[row]; ok {
		return true
	}
	if !s.hasLead {
		return false
	}
	lo, hi := s.activeRange()
	return row >= lo && row <= hi
}

func (s *RowSet) IsSelectedColumn(int) bool { return false }

func (s *RowSet) LeadSelection() (int, int, bool) {
	return 0, s.lead, s.hasLead
}

func (s *RowSet) HasSelection() bool {
	return s.hasLead || len(s.retired) > 0
}

func (s *RowSet) Clear() {
	s.anchor, s.lead, s.hasLead = 0, 0, false
	clear(s.retired)
}

func (s *RowSet) ItemsAdded(pos, n int) {
	if s.hasLead {
		if s.anchor >= pos {
			s.anchor += n
		}
		if s.lead >= pos {
			s.lead += n
		}
	}
	shifted := make(map[int]struct{}, len(s.retired))
	for r := range s.retired {
		if r >= pos {
			r += n
		}
		shifted[r] = struct{}{}
	}
	s.retired = shifted
}

func (s *RowSet) ItemsRemoved(pos, n, rows int) {
	if rows <= 0 {
		s.Clear()
		return
	}
	if s.hasLead {
		s.anchor = min(shiftRemoved(s.anchor, pos, n), rows-1)
		s.lead = min(shiftRemoved(s.lead, pos, n), rows-1)
	}
	shifted := make(map[int]struct{}, len(s.retired))
	for r := range s.retired {
		if r >= pos && r < pos+n {
			continue
		}
		shifted[shiftRemoved(r, pos, n)] = struct{}{}
	}
	s.retired = shifted
}
