package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/tablegrid/internal/config"
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// view is one tab of the application: a table, its state and whatever
// owns the rows.
type view interface {
	Name() string
	// Configure rebuilds the table builder from s. It runs at startup and
	// after every settings change.
	Configure(s config.Settings, logger *logging.Logger)
	Render(area core.Rect, buf *buffer.Buffer)
	HandleEvent(ev input.Event) (table.Outcome, error)
	State() *table.State
	// Editing reports whether an editor owns the keyboard.
	Editing() bool
	Close()
}

// hugeRows is large enough to make a full iteration per frame visible.
const hugeRows = 100_010

var stripeStyle = core.DefaultStyle().WithBackground(core.ColorFromIndex(235))

// hugeData generates its rows on demand.
type hugeData struct {
	rows   int
	header table.Row
	footer table.Row
}

func newHugeData(rows int) hugeData {
	return hugeData{
		rows:   rows,
		header: table.TextRow("#", "hex", "square", "bar"),
		footer: table.TextRow("", "", "", fmt.Sprintf("%d rows", rows)),
	}
}

func (d hugeData) Rows() int          { return d.rows }
func (d hugeData) RowHeight(int) int  { return 1 }
func (d hugeData) Header() *table.Row { return &d.header }
func (d hugeData) Footer() *table.Row { return &d.footer }

func (d hugeData) RowStyle(row int) *core.Style {
	if row%2 == 1 {
		return &stripeStyle
	}
	return nil
}

func (d hugeData) Widths() []layout.Constraint {
	return []layout.Constraint{
		layout.Length{Value: 7},
		layout.Length{Value: 8},
		layout.Length{Value: 12},
		layout.Fill{Weight: 1},
	}
}

func (d hugeData) RenderCell(_ *table.Context, col, row int, area core.Rect, buf *buffer.Buffer) {
	var text string
	switch col {
	case 0:
		text = strconv.Itoa(row)
	case 1:
		text = fmt.Sprintf("%#06x", row)
	case 2:
		text = strconv.FormatInt(int64(row)*int64(row), 10)
	case 3:
		text = strings.Repeat("█", (row*7)%21)
	}
	table.NewCell(text).Render(area, buf)
}

// hugeView scrolls generated data without a selection.
type hugeView struct {
	data  hugeData
	table *table.Table
	state *table.State
}

func newHugeView(rows int) *hugeView {
	return &hugeView{data: newHugeData(rows), state: table.NewState()}
}

func (v *hugeView) Name() string        { return "huge" }
func (v *hugeView) State() *table.State { return v.state }
func (v *hugeView) Editing() bool       { return false }
func (v *hugeView) Close()              {}

func (v *hugeView) Configure(s config.Settings, logger *logging.Logger) {
	v.table = s.Apply(table.New().Logger(logger).Data(v.data))
	s.ApplyState(v.state)
}

func (v *hugeView) Render(area core.Rect, buf *buffer.Buffer) {
	v.table.Render(area, buf, v.state)
}

func (v *hugeView) HandleEvent(ev input.Event) (table.Outcome, error) {
	return v.state.HandleEvent(ev), nil
}

// keysView lists the key bindings as materialized rows.
type keysView struct {
	rows  []table.Row
	table *table.Table
	state *table.RowState
}

func newKeysView() *keysView {
	return &keysView{
		rows: []table.Row{
			table.TextRow("Tab", "next view"),
			table.TextRow("Shift+Tab", "previous view"),
			table.TextRow("1-9", "show a view"),
			table.TextRow("q, Ctrl+Q", "quit"),
			table.TextRow("F12", "toggle table diagnostics"),
			table.TextRow("Up/Down, PgUp/PgDn", "move the selection or scroll"),
			table.TextRow("Ctrl+Home/End", "first or last row"),
			table.TextRow("Left/Right, Home/End", "scroll sideways or move between cells"),
			table.TextRow("Shift+arrows", "extend a row set selection"),
			table.TextRow("Enter, F2,\ndouble click", "edit the selected row or cell"),
			table.TextRow("Ins / Del", "insert or remove a record"),
			table.TextRow("Esc", "cancel editing"),
			table.TextRow("Ctrl+E", "export the records\ninto the json view"),
		},
		state: table.NewRowState(),
	}
}

func (v *keysView) Name() string        { return "keys" }
func (v *keysView) State() *table.State { return v.state.State }
func (v *keysView) Editing() bool       { return false }
func (v *keysView) Close()              {}

func (v *keysView) Configure(s config.Settings, logger *logging.Logger) {
	v.table = s.Apply(table.New().
		Logger(logger).
		Rows(v.rows...).
		Header(table.TextRow("key", "action")).
		Widths(layout.Length{Value: 22}, layout.Fill{Weight: 1}))
	s.ApplyState(v.state.State)
}

func (v *keysView) Render(area core.Rect, buf *buffer.Buffer) {
	v.table.Render(area, buf, v.state.State)
}

func (v *keysView) HandleEvent(ev input.Event) (table.Outcome, error) {
	return v.state.HandleEvent(ev), nil
}
