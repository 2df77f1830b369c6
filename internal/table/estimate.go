package table

import "math"

// regime names the way the row count and max offset were derived.
type regime uint8

const (
	// regimeCounted: the source reports its row count.
	regimeCounted regime = iota
	// regimeProbe: no count, and the table must not iterate to the end.
	// One row past the page is probed to learn whether more data exists.
	regimeProbe
	// regimeScan: no count, the rest of the data is iterated.
	regimeScan
)

func (r regime) String() string {
	switch r {
	case regimeCounted:
		return "counted"
	case regimeProbe:
		return "probe"
	case regimeScan:
		return "scan"
	default:
		return "unknown"
	}
}

// pass carries what a single render learns about the row source.
type pass struct {
	cur   *cursor
	state *State

	// reopen returns a fresh cursor at the start of the source.
	reopen func() *cursor

	counted  bool
	reported int

	// row is the last row the cursor stood on. hasRow is false until the
	// first successful advance.
	row    int
	hasRow bool

	// heights of the most recent rows, oldest first.
	heights     []int
	tableHeight int

	insaneOffset bool
}

func newPass(cur *cursor, state *State) *pass {
	p := &pass{
		cur:         cur,
		state:       state,
		tableHeight: state.tableArea.Height,
	}
	p.reported, p.counted = cur.rowCount()
	return p
}

func (p *pass) setRow(row int) {
	p.row = row
	p.hasRow = true
}

// next returns the row after the current one, 0 if there is none yet.
func (p *pass) next() int {
	if p.hasRow {
		return p.row + 1
	}
	return 0
}

// pushHeight records a row height, keeping no more than a page worth.
func (p *pass) pushHeight(h int) {
	p.heights = append(p.heights, h)
	if len(p.heights) > p.tableHeight {
		p.heights = p.heights[1:]
	}
}

// countedEnd skips to the last page of a counted source to measure it
// and counts whatever follows.
func (p *pass) countedEnd() {
	st := p.state
	st.regime = regimeCounted

	skip := max(p.reported-p.next()-p.tableHeight, 0)
	ok := p.cur.nth(skip)
	recounted := false
	switch {
	case ok:
		if skip > 0 {
			p.heights = p.heights[:0]
		}
		if p.hasRow {
			p.row += skip + 1
		} else {
			p.setRow(skip)
		}
		p.pushHeight(p.cur.rowHeight())
		for p.cur.nth(0) {
			p.row++
			p.pushHeight(p.cur.rowHeight())
		}
	case !p.hasRow || skip > 0:
		// the skip overshot a source that reports more rows than it has
		recounted = p.recount(p.next())
	}

	st.countedRows = p.next()
	st.reportedRows = p.reported
	// a failed skip swallowed an unknown number of rows
	if recounted || (p.hasRow && (ok || skip == 0)) {
		st.rows = st.countedRows
	} else {
		st.rows = p.reported
	}

	if n, ok := calcLastPage(p.heights, p.tableHeight); ok {
		st.vscroll.SetMaxOffset(st.rows - n)
	} else {
		st.vscroll.SetMaxOffset(st.rows - p.tableHeight)
	}
}

// recount walks a fresh iterator from row from to its end. Only
// iterators can hold fewer rows than they report, the other sources are
// bounded by their count.
func (p *pass) recount(from int) bool {
	if p.reopen == nil || p.cur.kind != cursorIter {
		return false
	}
	cur := p.reopen()
	defer cur.close()
	if cur.kind != cursorIter {
		return false
	}
	if !cur.nth(from) {
		return true
	}
	p.setRow(from)
	p.pushHeight(cur.rowHeight())
	for cur.nth(0) {
		p.row++
		p.pushHeight(cur.rowHeight())
	}
	return true
}

// probeEnd looks at most two rows past the page.
func (p *pass) probeEnd() {
	st := p.state
	st.regime = regimeProbe

	moreData := false
	if p.hasRow && p.cur.nth(0) {
		p.row++
		p.pushHeight(p.cur.rowHeight())
		moreData = p.cur.nth(0)
	}

	st.countedRows = p.next()
	st.reportedRows = 0
	st.rows = st.countedRows

	switch n, ok := calcLastPage(p.heights, p.tableHeight); {
	case moreData:
		st.vscroll.SetMaxOffset(math.MaxInt - 1)
	case ok:
		st.vscroll.SetMaxOffset(st.rows - n)
	default:
		st.vscroll.SetMaxOffset(st.rows - p.tableHeight)
	}
	if st.vscroll.PageLen() == 0 {
		st.vscroll.SetPageLen(p.tableHeight)
	}
}

// scanEnd iterates to the end of an uncounted source.
func (p *pass) scanEnd() {
	st := p.state
	st.regime = regimeScan

	for p.cur.nth(0) {
		p.pushHeight(p.cur.rowHeight())
		p.setRow(p.next())
	}

	st.countedRows = p.next()
	st.reportedRows = 0
	st.rows = st.countedRows

	if n, ok := calcLastPage(p.heights, p.tableHeight); ok {
		st.vscroll.SetMaxOffset(st.rows - n)
	} else {
		st.vscroll.SetMaxOffset(0)
	}
}

// calcLastPage returns how many rows from the end fill a page of the
// given height. It fails when the known heights do not fill a page.
func calcLastPage(heights []int, height int) (int, bool) {
	sum, n := 0, 0
	for i := len(heights) - 1; i >= 0; i-- {
		sum += heights[i]
		n++
		if sum >= height {
			break
		}
	}
	if sum < height {
		return 0, false
	}
	return n, true
}
