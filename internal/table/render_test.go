package table

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// genData generates rows on demand; cells read "r<row>c<col>".
type genData struct {
	rows int
}

func (d genData) Rows() int              { return d.rows }
func (genData) RowHeight(int) int        { return 1 }
func (genData) RowStyle(int) *core.Style { return nil }
func (genData) RenderCell(_ *Context, col, row int, area core.Rect, buf *buffer.Buffer) {
	buf.SetStringN(area.X, area.Y, fmt.Sprintf("r%dc%d", row, col), area.Width, core.DefaultStyle())
}

// genIter is a forward cursor over total generated rows. It reports
// reported as its count when counted is set.
type genIter struct {
	total    int
	reported int
	counted  bool
	noClone  bool
	pos      int
	closes   *int
}

func newGenIter(total int) *genIter {
	return &genIter{total: total, pos: -1}
}

func (it *genIter) RowCount() (int, bool) { return it.reported, it.counted }
func (it *genIter) RowHeight() int        { return 1 }
func (it *genIter) RowStyle() *core.Style { return nil }

func (it *genIter) AdvanceBy(n int) bool {
	it.pos += n + 1
	return it.pos < it.total
}

func (it *genIter) RenderCell(_ *Context, col int, area core.Rect, buf *buffer.Buffer) {
	buf.SetStringN(area.X, area.Y, fmt.Sprintf("r%dc%d", it.pos, col), area.Width, core.DefaultStyle())
}

func (it *genIter) Close() {
	if it.closes != nil {
		*it.closes++
	}
}

func (it *genIter) Clone() (Iter, bool) {
	if it.noClone {
		return nil, false
	}
	c := *it
	c.pos = -1
	return &c, true
}

func renderTable(t *testing.T, tbl *Table, st *State, w, h int) *buffer.Buffer {
	t.Helper()
	area := core.NewRect(0, 0, w, h)
	buf := buffer.New(area)
	tbl.Render(area, buf, st)
	return buf
}

func TestRenderCountedLargeData(t *testing.T) {
	tbl := New().Data(genData{rows: 100010}).Widths(layout.Length{Value: 10})
	st := NewState()

	buf := renderTable(t, tbl, st, 10, 20)

	if st.Rows() != 100010 {
		t.Errorf("expected 100010 rows, got %d", st.Rows())
	}
	if st.RowMaxOffset() != 99990 {
		t.Errorf("expected max offset 99990, got %d", st.RowMaxOffset())
	}
	if st.PageLen() != 20 {
		t.Errorf("expected page length 20, got %d", st.PageLen())
	}
	if got := buf.Line(0); got != "r0c0      " {
		t.Errorf("expected first line %q, got %q", "r0c0      ", got)
	}
	if len(st.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics, got %v", st.Diagnostics())
	}

	st.SetRowOffset(99990)
	buf = renderTable(t, tbl, st, 10, 20)
	if got := buf.Line(19); got != "r100009c0 " {
		t.Errorf("expected last line %q, got %q", "r100009c0 ", got)
	}
	if st.RowOffset() != 99990 {
		t.Errorf("expected offset to stay 99990, got %d", st.RowOffset())
	}
}

func TestRenderInsaneOffset(t *testing.T) {
	var out bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &out})

	tbl := New().Data(genData{rows: 100010}).
		Widths(layout.Length{Value: 40}).
		Debug(true).
		Logger(logger)
	st := NewState()
	st.SetRowOffset(1_000_000)

	buf := renderTable(t, tbl, st, 40, 20)

	if len(st.Diagnostics()) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", st.Diagnostics())
	}
	if !strings.Contains(st.Diagnostics()[0], "offset 1000000 past the end") {
		t.Errorf("unexpected diagnostic %q", st.Diagnostics()[0])
	}
	if st.RowOffset() != 99990 {
		t.Errorf("expected offset clamped to 99990, got %d", st.RowOffset())
	}
	if len(st.RowAreas()) != 0 {
		t.Errorf("expected no visible rows, got %d", len(st.RowAreas()))
	}
	if !strings.HasPrefix(buf.Line(0), "table: offset 1000000") {
		t.Errorf("expected diagnostic overlay, got %q", buf.Line(0))
	}
	if !buf.Cell(0, 0).Style.Background.Equals(core.ColorRed) {
		t.Error("expected overlay background to be red")
	}
	if !strings.Contains(out.String(), "past the end") {
		t.Errorf("expected warning in log, got %q", out.String())
	}

	// the clamp makes the next frame sane again
	renderTable(t, tbl, st, 40, 20)
	if len(st.Diagnostics()) != 0 {
		t.Errorf("expected no diagnostics after clamp, got %v", st.Diagnostics())
	}
}

func TestRenderCountMismatch(t *testing.T) {
	it := newGenIter(30)
	it.reported, it.counted = 25, true
	tbl := New().Iter(it).Widths(layout.Length{Value: 10})
	st := NewState()

	renderTable(t, tbl, st, 10, 10)

	if st.Rows() != 30 {
		t.Errorf("expected iterated count 30 to win, got %d", st.Rows())
	}
	if st.ReportedRows() != 25 {
		t.Errorf("expected reported rows 25, got %d", st.ReportedRows())
	}
	if st.RowMaxOffset() != 20 {
		t.Errorf("expected max offset 20, got %d", st.RowMaxOffset())
	}
	if len(st.Diagnostics()) != 1 || !strings.Contains(st.Diagnostics()[0], "reported rows 25, iterated rows 30") {
		t.Errorf("expected count mismatch diagnostic, got %v", st.Diagnostics())
	}
}

func TestRenderCountOverReported(t *testing.T) {
	closes := 0
	it := newGenIter(30)
	it.reported, it.counted = 50, true
	it.closes = &closes
	tbl := New().Iter(it).Widths(layout.Length{Value: 10})
	st := NewState()

	renderTable(t, tbl, st, 10, 10)

	if st.Rows() != 30 || st.CountedRows() != 30 {
		t.Errorf("expected iterated count 30 to win, got rows %d counted %d", st.Rows(), st.CountedRows())
	}
	if st.RowMaxOffset() != 20 {
		t.Errorf("expected max offset 20, got %d", st.RowMaxOffset())
	}
	if closes != 2 {
		t.Errorf("expected both clones closed, got %d", closes)
	}

	st.SetRowOffset(1000)
	renderTable(t, tbl, st, 10, 10)
	if st.RowOffset() != 20 {
		t.Errorf("expected offset clamped to 20, got %d", st.RowOffset())
	}
	if st.Rows() != 30 {
		t.Errorf("expected 30 rows after an insane offset, got %d", st.Rows())
	}

	buf := renderTable(t, tbl, st, 10, 10)
	if got := buf.Line(9); !strings.HasPrefix(got, "r29c0") {
		t.Errorf("expected the last row on the last line, got %q", got)
	}
	for _, d := range st.Diagnostics() {
		if strings.Contains(d, "past the end") {
			t.Errorf("expected no offset diagnostic after the clamp, got %q", d)
		}
	}
}

func TestRenderProbe(t *testing.T) {
	tbl := New().Iter(newGenIter(1000)).NoRowCount(true).Widths(layout.Length{Value: 10})
	st := NewState()

	renderTable(t, tbl, st, 10, 10)

	if st.Rows() != 11 {
		t.Errorf("expected 11 rows, got %d", st.Rows())
	}
	if st.RowMaxOffset() != math.MaxInt-1 {
		t.Errorf("expected open ended max offset, got %d", st.RowMaxOffset())
	}
	if got := st.Stats().Regime; got != "probe" {
		t.Errorf("expected regime probe, got %q", got)
	}

	st.ScrollDown(5)
	renderTable(t, tbl, st, 10, 10)
	if st.Rows() != 16 {
		t.Errorf("expected 16 rows after scrolling, got %d", st.Rows())
	}
}

func TestRenderProbeReachesEnd(t *testing.T) {
	tbl := New().Iter(newGenIter(11)).NoRowCount(true).Widths(layout.Length{Value: 10})
	st := NewState()

	renderTable(t, tbl, st, 10, 10)

	if st.Rows() != 11 {
		t.Errorf("expected 11 rows, got %d", st.Rows())
	}
	if st.RowMaxOffset() != 1 {
		t.Errorf("expected max offset 1, got %d", st.RowMaxOffset())
	}
}

func TestRenderScan(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		rows    int
		maxOff  int
		pageLen int
	}{
		{"longer than page", 35, 35, 25, 10},
		{"shorter than page", 4, 4, 0, 4},
		{"empty", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New().Iter(newGenIter(tt.total)).Widths(layout.Length{Value: 10})
			st := NewState()
			renderTable(t, tbl, st, 10, 10)

			if st.Rows() != tt.rows {
				t.Errorf("expected %d rows, got %d", tt.rows, st.Rows())
			}
			if st.RowMaxOffset() != tt.maxOff {
				t.Errorf("expected max offset %d, got %d", tt.maxOff, st.RowMaxOffset())
			}
			if st.PageLen() != tt.pageLen {
				t.Errorf("expected page length %d, got %d", tt.pageLen, st.PageLen())
			}
			if got := st.Stats().Regime; got != "scan" {
				t.Errorf("expected regime scan, got %q", got)
			}
		})
	}
}

func TestRenderInvalidIter(t *testing.T) {
	it := newGenIter(10)
	it.noClone = true
	tbl := New().Iter(it).Widths(layout.Fill{Weight: 1})
	st := NewState()

	buf := renderTable(t, tbl, st, 80, 5)

	if !strings.HasPrefix(buf.Line(0), invalidMessage) {
		t.Errorf("expected invalid message, got %q", buf.Line(0))
	}
	if st.Rows() != 1 {
		t.Errorf("expected 1 row, got %d", st.Rows())
	}
	if !buf.Cell(0, 0).Style.Background.Equals(core.ColorRed) {
		t.Error("expected red background on the diagnostic row")
	}
}

func TestRenderHorizontalScroll(t *testing.T) {
	tbl := New().
		Rows(TextRow("a", "b", "c")).
		Widths(layout.Length{Value: 10}, layout.Length{Value: 10}, layout.Length{Value: 10}).
		LayoutWidth(30)
	st := NewState()

	renderTable(t, tbl, st, 10, 1)
	if st.XMaxOffset() != 20 {
		t.Errorf("expected horizontal max offset 20, got %d", st.XMaxOffset())
	}
	if st.PageWidth() != 10 {
		t.Errorf("expected page width 10, got %d", st.PageWidth())
	}

	st.SetXOffset(10)
	buf := renderTable(t, tbl, st, 10, 1)
	if got := buf.Line(0); got != "b         " {
		t.Errorf("expected %q, got %q", "b         ", got)
	}
	if col, ok := st.ColumnAtClicked(3, 0); !ok || col != 1 {
		t.Errorf("expected column 1 at x=3, got %d (%v)", col, ok)
	}
	if a := st.ColumnAreas()[0]; a.Width != 0 {
		t.Errorf("expected column 0 scrolled out, got %v", a)
	}
}

func TestRenderHeaderFooter(t *testing.T) {
	tbl := New().
		Data(genData{rows: 10}).
		Header(TextRow("H1", "H2")).
		Footer(TextRow("F1", "F2")).
		Widths(layout.Length{Value: 5}, layout.Length{Value: 5})
	st := NewState()

	buf := renderTable(t, tbl, st, 10, 5)

	tests := []struct {
		y    int
		want string
	}{
		{0, "H1   H2   "},
		{1, "r0c0 r0c1 "},
		{3, "r2c0 r2c1 "},
		{4, "F1   F2   "},
	}
	for _, tt := range tests {
		if got := buf.Line(tt.y); got != tt.want {
			t.Errorf("line %d: expected %q, got %q", tt.y, tt.want, got)
		}
	}
	if st.TableArea().Height != 3 {
		t.Errorf("expected table height 3, got %d", st.TableArea().Height)
	}
	if st.RowMaxOffset() != 7 {
		t.Errorf("expected max offset 7, got %d", st.RowMaxOffset())
	}
}

func TestRenderMultiLineRows(t *testing.T) {
	tbl := New().
		Rows(
			NewRow(NewCell("a\nb")),
			TextRow("c"),
			TextRow("d"),
		).
		Widths(layout.Length{Value: 4})
	st := NewState()

	buf := renderTable(t, tbl, st, 4, 3)

	want := []string{"a   ", "b   ", "c   "}
	for y, w := range want {
		if got := buf.Line(y); got != w {
			t.Errorf("line %d: expected %q, got %q", y, w, got)
		}
	}
	if st.PageLen() != 2 {
		t.Errorf("expected 2 visible rows, got %d", st.PageLen())
	}
	// rows 1 and 2 do not fill the page on their own
	if st.RowMaxOffset() != 0 {
		t.Errorf("expected max offset 0, got %d", st.RowMaxOffset())
	}
}

func TestRenderRowSelectionStyle(t *testing.T) {
	red := core.DefaultStyle().WithBackground(core.ColorRed)
	focus := core.DefaultStyle().Underline()

	tbl := New().
		Data(genData{rows: 10}).
		Widths(layout.Length{Value: 5}, layout.Length{Value: 5}).
		SelectRowStyle(&red).
		FocusStyle(&focus).
		ShowRowFocus(true)
	st := NewRowState()
	st.Select(1)

	buf := renderTable(t, tbl, st.State, 10, 5)
	if !buf.Cell(7, 1).Style.Background.Equals(core.ColorRed) {
		t.Error("expected selected row to be red")
	}
	if buf.Cell(7, 1).Style.Attributes.Has(core.AttrUnderline) {
		t.Error("expected no focus patch without focus")
	}
	if !buf.Cell(7, 0).Style.Background.IsDefault() {
		t.Error("expected unselected row to keep the default background")
	}

	st.Focus = true
	buf = renderTable(t, tbl, st.State, 10, 5)
	if !buf.Cell(7, 1).Style.Attributes.Has(core.AttrUnderline) {
		t.Error("expected focus patch on the selected row")
	}
}

func TestRenderRowSelectionFallback(t *testing.T) {
	tbl := New().Data(genData{rows: 10}).Widths(layout.Length{Value: 5})
	st := NewRowState()
	st.Select(0)

	buf := renderTable(t, tbl, st.State, 5, 5)
	if !buf.Cell(0, 0).Style.Background.Equals(core.ColorWhite) {
		t.Errorf("expected reversed fallback, got %+v", buf.Cell(0, 0).Style)
	}
}

func TestRenderCellSelectionStyle(t *testing.T) {
	blue := core.DefaultStyle().WithBackground(core.ColorBlue)
	tbl := New().
		Data(genData{rows: 10}).
		Widths(layout.Length{Value: 5}, layout.Length{Value: 5}).
		SelectCellStyle(&blue)
	st := NewCellState()
	st.SelectCell(1, 2)

	buf := renderTable(t, tbl, st.State, 10, 5)
	if !buf.Cell(6, 2).Style.Background.Equals(core.ColorBlue) {
		t.Error("expected selected cell to be blue")
	}
	if !buf.Cell(1, 2).Style.Background.IsDefault() {
		t.Error("expected neighbor cell to keep the default background")
	}
}

func TestCalcLastPage(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		height  int
		want    int
		ok      bool
	}{
		{"exact", []int{1, 1, 1}, 3, 3, true},
		{"more than a page", []int{1, 1, 1, 1, 1}, 3, 3, true},
		{"tall rows", []int{1, 2, 2}, 3, 2, true},
		{"not enough", []int{1, 1}, 3, 0, false},
		{"empty", nil, 3, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calcLastPage(tt.heights, tt.height)
			if got != tt.want || ok != tt.ok {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}
