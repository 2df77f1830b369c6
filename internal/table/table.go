package table

import (
	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// Styles bundles every style a table uses.
type Styles struct {
	Style  core.Style
	Header *core.Style
	Footer *core.Style

	SelectRow    *core.Style
	SelectColumn *core.Style
	SelectCell   *core.Style
	SelectHeader *core.Style
	SelectFooter *core.Style

	ShowRowFocus    bool
	ShowColumnFocus bool
	ShowCellFocus   bool
	ShowHeaderFocus bool
	ShowFooterFocus bool

	// Focus is patched over a selection style while the table has focus
	// and the matching Show*Focus flag is set.
	Focus *core.Style
}

// DefaultStyles returns styles with the terminal default and no
// selection styles. Row selection falls back to reversed colors.
func DefaultStyles() Styles {
	return Styles{Style: core.DefaultStyle()}
}

// Table describes how to render rows. It is rebuilt or reused freely;
// everything that survives between frames lives in State.
type Table struct {
	src        source
	noRowCount bool

	header *Row
	footer *Row

	widths          []layout.Constraint
	flex            layout.Flex
	columnSpacing   int
	layoutWidth     int
	autoLayoutWidth bool

	styles Styles
	debug  bool
	logger *logging.Logger
}

// New creates an empty table.
func New() *Table {
	return &Table{
		styles: DefaultStyles(),
		logger: logging.Default(),
	}
}

// Rows sets materialized rows as the source.
func (t *Table) Rows(rows ...Row) *Table {
	t.src = source{kind: sourceRows, rows: rows}
	return t
}

// Data sets a random-access source. Header, footer and widths are taken
// from the source when it provides them.
func (t *Table) Data(d Data) *Table {
	t.src = source{kind: sourceData, data: d}
	t.takeProviders(d)
	return t
}

// Iter sets a forward-only source. Header, footer and widths are taken
// from the source when it provides them.
func (t *Table) Iter(it Iter) *Table {
	if _, ok := it.RowCount(); !ok {
		t.logger.Debug("table iterator has no row count, rendering needs more iteration")
	}
	t.src = source{kind: sourceIter, iter: it}
	t.takeProviders(it)
	return t
}

func (t *Table) takeProviders(v any) {
	if p, ok := v.(HeaderProvider); ok {
		t.header = p.Header()
	}
	if p, ok := v.(FooterProvider); ok {
		t.footer = p.Footer()
	}
	if p, ok := v.(WidthsProvider); ok {
		t.widths = p.Widths()
	}
}

// NoRowCount selects how the end of an uncounted Iter is found. With
// true the renderer only probes past the page; otherwise it iterates to
// the end on every render.
func (t *Table) NoRowCount(v bool) *Table {
	t.noRowCount = v
	return t
}

// Header sets the header row.
func (t *Table) Header(r Row) *Table {
	t.header = &r
	return t
}

// Footer sets the footer row.
func (t *Table) Footer(r Row) *Table {
	t.footer = &r
	return t
}

// Widths sets the column constraints. Their number is the column count.
func (t *Table) Widths(widths ...layout.Constraint) *Table {
	t.widths = widths
	return t
}

// Flex sets how columns are packed when they underflow the width.
func (t *Table) Flex(f layout.Flex) *Table {
	t.flex = f
	return t
}

// ColumnSpacing sets the gap between columns.
func (t *Table) ColumnSpacing(n int) *Table {
	t.columnSpacing = max(n, 0)
	return t
}

// LayoutWidth forces the full table width. 0 uses the area width.
func (t *Table) LayoutWidth(w int) *Table {
	t.layoutWidth = max(w, 0)
	return t
}

// AutoLayoutWidth sums the nominal column widths for the full table
// width. LayoutWidth takes precedence.
func (t *Table) AutoLayoutWidth(v bool) *Table {
	t.autoLayoutWidth = v
	return t
}

// Styles sets all styles at once.
func (t *Table) Styles(s Styles) *Table {
	t.styles = s
	return t
}

// Style sets the base style.
func (t *Table) Style(s core.Style) *Table {
	t.styles.Style = s
	return t
}

func (t *Table) HeaderStyle(s *core.Style) *Table       { t.styles.Header = s; return t }
func (t *Table) FooterStyle(s *core.Style) *Table       { t.styles.Footer = s; return t }
func (t *Table) SelectRowStyle(s *core.Style) *Table    { t.styles.SelectRow = s; return t }
func (t *Table) SelectColumnStyle(s *core.Style) *Table { t.styles.SelectColumn = s; return t }
func (t *Table) SelectCellStyle(s *core.Style) *Table   { t.styles.SelectCell = s; return t }
func (t *Table) SelectHeaderStyle(s *core.Style) *Table { t.styles.SelectHeader = s; return t }
func (t *Table) SelectFooterStyle(s *core.Style) *Table { t.styles.SelectFooter = s; return t }
func (t *Table) FocusStyle(s *core.Style) *Table        { t.styles.Focus = s; return t }

func (t *Table) ShowRowFocus(v bool) *Table    { t.styles.ShowRowFocus = v; return t }
func (t *Table) ShowColumnFocus(v bool) *Table { t.styles.ShowColumnFocus = v; return t }
func (t *Table) ShowCellFocus(v bool) *Table   { t.styles.ShowCellFocus = v; return t }
func (t *Table) ShowHeaderFocus(v bool) *Table { t.styles.ShowHeaderFocus = v; return t }
func (t *Table) ShowFooterFocus(v bool) *Table { t.styles.ShowFooterFocus = v; return t }

// Debug enables the diagnostic overlay and warnings for count and
// offset anomalies.
func (t *Table) Debug(v bool) *Table {
	t.debug = v
	return t
}

// Logger sets the logger for diagnostics. nil restores the default.
func (t *Table) Logger(l *logging.Logger) *Table {
	if l == nil {
		l = logging.Default()
	}
	t.logger = l.WithComponent("table")
	return t
}

// Columns returns the column count.
func (t *Table) Columns() int {
	return len(t.widths)
}

// totalWidth returns the full, unscrolled table width.
func (t *Table) totalWidth(areaWidth int) int {
	switch {
	case t.layoutWidth > 0:
		return t.layoutWidth
	case t.autoLayoutWidth:
		w := 0
		for _, c := range t.widths {
			w += layout.Nominal(c) + t.columnSpacing
		}
		return w
	default:
		return areaWidth
	}
}

// layoutColumns solves the columns over the full width. Both results
// are relative to x=0.
func (t *Table) layoutColumns(width int) ([]core.Rect, []core.Rect) {
	return layout.NewHorizontal(t.widths...).
		WithFlex(t.flex).
		WithSpacing(t.columnSpacing).
		SplitWithSpacers(core.NewRect(0, 0, width, 0))
}

// layoutAreas splits area into header, body and footer.
func (t *Table) layoutAreas(area core.Rect) (header, body, footer core.Rect) {
	hh, fh := 0, 0
	if t.header != nil {
		hh = t.header.Height
	}
	if t.footer != nil {
		fh = t.footer.Height
	}
	rects := layout.NewVertical(layout.Length{Value: hh}, layout.Fill{Weight: 1}, layout.Length{Value: fh}).Split(area)
	return rects[0], rects[1], rects[2]
}

// patchSelect applies the focus style to a selection style when asked.
func (t *Table) patchSelect(style *core.Style, focus, show bool) *core.Style {
	if style == nil {
		return nil
	}
	s := *style
	if t.styles.Focus != nil && focus && show {
		s = s.Merge(*t.styles.Focus)
	}
	return &s
}
