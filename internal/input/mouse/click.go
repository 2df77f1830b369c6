package mouse

import "time"

// clickTracker counts clicks in a sequence.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

func newClickTracker(maxTime time.Duration, maxDistance int) *clickTracker {
	return &clickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// recordClick records a click and returns the click count in the
// current sequence. The count wraps back to 1 after 2.
func (t *clickTracker) recordClick(pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 2 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastCount
}

func (t *clickTracker) isPartOfSequence(pos Position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	// negative elapsed time (clock skew) starts a new sequence
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}

// DoubleClick detects two presses on the same table cell within the
// configured time.
type DoubleClick struct {
	clicks *clickTracker
	col    int
	row    int
	hasHit bool
}

// NewDoubleClick creates a detector from the mouse configuration.
func NewDoubleClick(cfg Config) *DoubleClick {
	return &DoubleClick{clicks: newClickTracker(cfg.DoubleClickTime, cfg.DoubleClickDistance)}
}

// Press records a press on cell (col, row) at screen position pos. It
// returns true when the press completes a double click on that cell.
func (d *DoubleClick) Press(col, row int, pos Position, when time.Time) bool {
	sameCell := d.hasHit && d.col == col && d.row == row
	count := d.clicks.recordClick(pos, when)
	d.col, d.row, d.hasHit = col, row, true

	if count == 2 && sameCell {
		d.Reset()
		return true
	}
	if count == 2 {
		// different cell: this press starts a new sequence
		d.clicks.reset()
		d.clicks.recordClick(pos, when)
	}
	return false
}

// Reset clears any pending first click.
func (d *DoubleClick) Reset() {
	d.clicks.reset()
	d.hasHit = false
}
