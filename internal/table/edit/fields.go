package edit

import (
	"fmt"

	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// Field maps one column of D to editable text.
type Field[D any] struct {
	Get func(D) string
	// Set parses text into the column. nil makes the column read-only.
	Set func(v *D, text string) error
}

// FieldEditor edits a row as one Line per column. Tab and Backtab move
// between columns.
type FieldEditor[D any] struct {
	fields []Field[D]
	lines  []*Line
	col    int
	focus  bool

	// New creates the value for an inserted row. nil uses the zero value.
	New func() (D, error)

	Style       core.Style
	FocusStyle  core.Style
	CursorStyle core.Style
}

// NewFieldEditor creates an editor over fields.
func NewFieldEditor[D any](fields ...Field[D]) *FieldEditor[D] {
	lines := make([]*Line, len(fields))
	for i := range lines {
		lines[i] = NewLine("")
	}
	return &FieldEditor[D]{
		fields:      fields,
		lines:       lines,
		Style:       core.DefaultStyle().Underline(),
		FocusStyle:  core.DefaultStyle().Underline().Bold(),
		CursorStyle: core.DefaultStyle().Reverse(),
	}
}

// Text returns the current text of column col.
func (e *FieldEditor[D]) Text(col int) string {
	if col < 0 || col >= len(e.lines) {
		return ""
	}
	return e.lines[col].Text()
}

func (e *FieldEditor[D]) NewEditData() (D, error) {
	if e.New != nil {
		return e.New()
	}
	var zero D
	return zero, nil
}

func (e *FieldEditor[D]) SetEditData(v D) error {
	for i, f := range e.fields {
		e.lines[i].SetText(f.Get(v))
	}
	e.col = e.firstEditable()
	return nil
}

// GetEditData writes every editable column into v. The first failing
// column stops the update and keeps the focus on it.
func (e *FieldEditor[D]) GetEditData(v *D) error {
	out := *v
	for i, f := range e.fields {
		if f.Set == nil {
			continue
		}
		if err := f.Set(&out, e.lines[i].Text()); err != nil {
			e.col = i
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	*v = out
	return nil
}

func (e *FieldEditor[D]) SetFocus(v bool) {
	e.focus = v
	if v {
		e.col = e.firstEditable()
	}
}

func (e *FieldEditor[D]) FocusedColumn() (int, bool) {
	if !e.focus || len(e.fields) == 0 {
		return 0, false
	}
	return e.col, true
}

func (e *FieldEditor[D]) firstEditable() int {
	for i, f := range e.fields {
		if f.Set != nil {
			return i
		}
	}
	return 0
}

// moveColumn steps to the next editable column in direction dir,
// wrapping around.
func (e *FieldEditor[D]) moveColumn(dir int) bool {
	n := len(e.fields)
	for step := 1; step <= n; step++ {
		c := ((e.col+dir*step)%n + n) % n
		if e.fields[c].Set != nil {
			changed := c != e.col
			e.col = c
			return changed
		}
	}
	return false
}

func (e *FieldEditor[D]) HandleEvent(ev input.Event) table.Outcome {
	if !e.focus || ev.Kind != input.EventKey || len(e.fields) == 0 {
		return table.Continue
	}
	k := ev.Key
	switch {
	case k.IsPlain(key.KeyTab):
		return outcome(e.moveColumn(1))
	case k.Is(key.KeyBacktab, key.ModShift), k.IsPlain(key.KeyBacktab):
		return outcome(e.moveColumn(-1))
	}
	if e.fields[e.col].Set == nil {
		return table.Continue
	}
	used, changed := e.lines[e.col].HandleKey(k)
	if !used {
		return table.Continue
	}
	return outcome(changed)
}

func outcome(changed bool) table.Outcome {
	if changed {
		return table.Changed
	}
	return table.Unchanged
}

// Render draws each column input into its cell area.
func (e *FieldEditor[D]) Render(_ core.Rect, cells []core.Rect, buf *buffer.Buffer) {
	for i, area := range cells {
		if i >= len(e.lines) || area.IsEmpty() {
			continue
		}
		style := e.Style
		if e.focus && i == e.col {
			style = e.FocusStyle
		}
		cursor := e.CursorStyle
		if !e.focus || i != e.col {
			cursor = style
		}
		e.lines[i].Render(area, buf, style, cursor)
	}
}
