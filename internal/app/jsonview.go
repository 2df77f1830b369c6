package app

import (
	"github.com/dshills/tablegrid/internal/config"
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
	"github.com/dshills/tablegrid/internal/table/edit"
	"github.com/dshills/tablegrid/internal/table/jsonsrc"
)

// builtinJSON feeds the json view when no document is given.
const builtinJSON = `[
  {"sku": "A-100", "item": "anchor", "price": 129.5, "stock": 4, "active": true, "dims": {"w": 40, "h": 55}},
  {"sku": "B-210", "item": "buoy", "price": 35, "stock": 40, "active": true, "dims": {"w": 30, "h": 30}},
  {"sku": "C-330", "item": "cleat", "price": 12.25, "stock": 120, "active": false, "dims": null},
  {"sku": "D-404", "item": "davit", "price": 810, "stock": 1, "active": true, "dims": {"w": 90, "h": 210}},
  {"sku": "F-515", "item": "fender", "price": 22, "stock": 64, "active": true, "dims": {"w": 20, "h": 60}},
  {"sku": "H-620", "item": "hawser, 30m", "price": 240, "stock": 9, "active": true, "dims": null},
  {"sku": "K-707", "item": "keel bolt", "price": 18.9, "stock": 300, "active": false, "dims": {"w": 2, "h": 25}},
  {"sku": "W-999", "item": "winch", "price": 1450, "stock": 2, "active": true, "dims": {"w": 25, "h": 25}}
]`

// jsonView shows a JSON array with a cell selection. Enter edits the
// selected cell in place.
type jsonView struct {
	src    *jsonsrc.Source
	table  *table.Table
	state  *table.CellState
	logger *logging.Logger

	settings config.Settings

	// line is the open cell editor, nil when not editing.
	line             *edit.Line
	editCol, editRow int
}

// openJSON reads the document at path, or the builtin one when path is
// empty.
func openJSON(path string) (*jsonView, error) {
	var (
		src *jsonsrc.Source
		err error
	)
	if path == "" {
		src, err = jsonsrc.New([]byte(builtinJSON))
	} else {
		src, err = jsonsrc.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return &jsonView{src: src, state: table.NewCellState(), logger: logging.Null()}, nil
}

func (v *jsonView) Name() string        { return "json" }
func (v *jsonView) State() *table.State { return v.state.State }
func (v *jsonView) Editing() bool       { return v.line != nil }
func (v *jsonView) Close()              {}

func (v *jsonView) Configure(s config.Settings, logger *logging.Logger) {
	v.settings = s
	v.logger = logger
	v.table = s.Apply(table.New().Logger(logger).Data(v.src))
	s.ApplyState(v.state.State)
}

// Replace swaps the document and resets the view.
func (v *jsonView) Replace(doc []byte) error {
	src, err := jsonsrc.New(doc)
	if err != nil {
		return err
	}
	v.src = src
	v.line = nil
	v.state.Selection.Clear()
	v.state.ClearOffset()
	v.Configure(v.settings, v.logger)
	return nil
}

// Document returns the current JSON text.
func (v *jsonView) Document() []byte {
	return v.src.Bytes()
}

func (v *jsonView) Render(area core.Rect, buf *buffer.Buffer) {
	v.table.Render(area, buf, v.state.State)
	if v.line == nil {
		return
	}
	if _, cells, ok := v.state.RowCells(v.editRow); ok && v.editCol < len(cells) {
		style := core.DefaultStyle().Underline()
		v.line.Render(cells[v.editCol], buf, style, style.Reverse())
	}
}

func (v *jsonView) HandleEvent(ev input.Event) (table.Outcome, error) {
	if v.line != nil {
		return v.handleEditing(ev)
	}
	switch table.HandleEditKeys(v.state, ev) {
	case table.EditEdit:
		col, row, ok := v.state.Selected()
		if !ok {
			return table.Unchanged, nil
		}
		v.line = edit.NewLine(v.src.Value(col, row))
		v.editCol, v.editRow = col, row
		v.state.ScrollToSelected()
		return table.Changed, nil
	case table.EditChanged:
		return table.Changed, nil
	case table.EditContinue:
		return table.Continue, nil
	default:
		// the row count of a document is fixed
		return table.Unchanged, nil
	}
}

func (v *jsonView) handleEditing(ev input.Event) (table.Outcome, error) {
	if ev.Kind != input.EventKey {
		return table.Unchanged, nil
	}
	k := ev.Key
	switch {
	case k.IsPlain(key.KeyEscape):
		v.line = nil
		return table.Changed, nil
	case k.IsPlain(key.KeyEnter):
		if err := v.src.SetCell(v.editCol, v.editRow, v.line.Text()); err != nil {
			return table.Changed, err
		}
		v.line = nil
		return table.Changed, nil
	}
	used, changed := v.line.HandleKey(k)
	switch {
	case changed:
		return table.Changed, nil
	case used:
		return table.Unchanged, nil
	}
	return table.Continue, nil
}
