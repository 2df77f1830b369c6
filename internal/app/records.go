package app

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/tablegrid/internal/config"
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
	"github.com/dshills/tablegrid/internal/table/edit"
)

// record is one row of the editable view.
type record struct {
	ID    uuid.UUID
	Name  string
	Qty   int
	Color core.Color
}

var (
	errEmptyName   = errors.New("name must not be empty")
	errNegativeQty = errors.New("quantity must not be negative")
)

// sampleRecords returns the initial rows. IDs are derived from the names
// so they are stable between runs.
func sampleRecords() []record {
	samples := []struct {
		name  string
		qty   int
		color string
	}{
		{"apple", 12, "#d70000"},
		{"banana", 30, "#ffd75f"},
		{"cherry", 250, "#af005f"},
		{"damson", 7, "#5f5faf"},
		{"elderberry", 0, "#303030"},
		{"fig", 18, "#875f5f"},
		{"grape", 96, "#5f875f"},
		{"honeydew", 3, "#d7ffaf"},
	}
	rows := make([]record, len(samples))
	for i, s := range samples {
		c, _ := core.ColorFromHex(s.color)
		rows[i] = record{
			ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("tablegrid:"+s.name)),
			Name:  s.name,
			Qty:   s.qty,
			Color: c,
		}
	}
	return rows
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func recordFields() []edit.Field[record] {
	return []edit.Field[record]{
		{Get: func(r record) string { return shortID(r.ID) }},
		{
			Get: func(r record) string { return r.Name },
			Set: func(r *record, s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return errEmptyName
				}
				r.Name = s
				return nil
			},
		},
		{
			Get: func(r record) string { return strconv.Itoa(r.Qty) },
			Set: func(r *record, s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return err
				}
				if n < 0 {
					return errNegativeQty
				}
				r.Qty = n
				return nil
			},
		},
		{
			Get: func(r record) string { return r.Color.String() },
			Set: func(r *record, s string) error {
				c, err := core.ColorFromHex(s)
				if err != nil {
					return err
				}
				r.Color = c
				return nil
			},
		},
	}
}

func renderRecord(_ *table.Context, col int, r record, area core.Rect, buf *buffer.Buffer) {
	switch col {
	case 0:
		table.NewCell(shortID(r.ID)).Render(area, buf)
	case 1:
		table.NewCell(r.Name).Render(area, buf)
	case 2:
		table.NewCell(strconv.Itoa(r.Qty)).Render(area, buf)
	case 3:
		style := core.DefaultStyle()
		if !r.Color.IsDefault() {
			style = style.WithForeground(r.Color)
		}
		table.NewCell("■ " + r.Color.String()).WithStyle(style).Render(area, buf)
	}
}

// recordsView edits records in place.
type recordsView struct {
	vec    *edit.Vec[record]
	state  *edit.State[record]
	editor *edit.FieldEditor[record]
}

func newRecordsView(rows []record) *recordsView {
	ed := edit.NewFieldEditor(recordFields()...)
	ed.New = func() (record, error) {
		return record{ID: uuid.New(), Color: core.ColorDefault}, nil
	}
	return &recordsView{
		state:  edit.NewState[record](ed, edit.NewStore(rows)),
		editor: ed,
	}
}

func (v *recordsView) Name() string        { return "records" }
func (v *recordsView) State() *table.State { return v.state.Table.State }
func (v *recordsView) Editing() bool       { return v.state.IsEditing() }
func (v *recordsView) Close()              {}

func (v *recordsView) Configure(s config.Settings, logger *logging.Logger) {
	t := table.New().
		Logger(logger).
		Header(table.TextRow("id", "name", "qty", "color")).
		Widths(
			layout.Length{Value: 8},
			layout.Fill{Weight: 2},
			layout.Length{Value: 5},
			layout.Length{Value: 10},
		)
	v.vec = edit.NewVec[record](s.Apply(t), renderRecord)
	s.ApplyState(v.state.Table.State)
	v.state.SetLogger(logger)
}

func (v *recordsView) Render(area core.Rect, buf *buffer.Buffer) {
	v.vec.Render(area, buf, v.state)
}

func (v *recordsView) HandleEvent(ev input.Event) (table.Outcome, error) {
	return v.state.HandleEvent(ev)
}

// Records returns the current rows.
func (v *recordsView) Records() []record {
	return v.state.Store.Rows()
}

// exportRecords encodes rows as a JSON array of objects.
func exportRecords(rows []record) ([]byte, error) {
	doc := "[]"
	var err error
	for i, r := range rows {
		if doc, err = sjson.SetRaw(doc, "-1", "{}"); err != nil {
			return nil, err
		}
		prefix := strconv.Itoa(i) + "."
		fields := []struct {
			key   string
			value any
		}{
			{"id", r.ID.String()},
			{"name", r.Name},
			{"qty", r.Qty},
			{"color", r.Color.String()},
		}
		for _, f := range fields {
			if doc, err = sjson.Set(doc, prefix+f.key, f.value); err != nil {
				return nil, err
			}
		}
	}
	return []byte(doc), nil
}
