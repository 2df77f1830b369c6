package edit

import (
	"errors"
	"testing"

	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/table"
)

type record struct {
	ID   string
	Name string
	Note string
}

func recordEditor() *FieldEditor[record] {
	return NewFieldEditor(
		Field[record]{Get: func(r record) string { return r.ID }},
		Field[record]{
			Get: func(r record) string { return r.Name },
			Set: func(r *record, s string) error {
				if s == "" {
					return errors.New("name required")
				}
				r.Name = s
				return nil
			},
		},
		Field[record]{
			Get: func(r record) string { return r.Note },
			Set: func(r *record, s string) error { r.Note = s; return nil },
		},
	)
}

func TestFieldEditorColumns(t *testing.T) {
	e := recordEditor()
	if err := e.SetEditData(record{ID: "1", Name: "a", Note: "n"}); err != nil {
		t.Fatalf("SetEditData failed: %v", err)
	}
	if _, ok := e.FocusedColumn(); ok {
		t.Error("expected no focused column without focus")
	}
	e.SetFocus(true)

	tab := input.KeyEvent(key.NewSpecialEvent(key.KeyTab, key.ModNone))
	backtab := input.KeyEvent(key.NewSpecialEvent(key.KeyBacktab, key.ModShift))

	tests := []struct {
		name string
		ev   input.Event
		want int
	}{
		{"starts on first editable", input.Event{}, 1},
		{"tab", tab, 2},
		{"tab skips read-only", tab, 1},
		{"backtab wraps", backtab, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.HandleEvent(tt.ev)
			if col, _ := e.FocusedColumn(); col != tt.want {
				t.Errorf("expected column %d, got %d", tt.want, col)
			}
		})
	}
}

func TestFieldEditorGetEditData(t *testing.T) {
	e := recordEditor()
	_ = e.SetEditData(record{ID: "7", Name: "a", Note: "n"})
	e.SetFocus(true)

	e.HandleEvent(input.KeyEvent(key.NewRuneEvent('b', key.ModNone)))
	if o := e.HandleEvent(input.KeyEvent(key.NewSpecialEvent(key.KeyEnter, key.ModNone))); o != table.Continue {
		t.Errorf("expected enter to be left to the caller, got %s", o)
	}

	v := record{ID: "7"}
	if err := e.GetEditData(&v); err != nil {
		t.Fatalf("GetEditData failed: %v", err)
	}
	if v.Name != "ab" || v.Note != "n" || v.ID != "7" {
		t.Errorf("unexpected record %+v", v)
	}

	e.HandleEvent(input.KeyEvent(key.NewRuneEvent('u', key.ModCtrl)))
	e.HandleEvent(input.KeyEvent(key.NewSpecialEvent(key.KeyTab, key.ModNone)))
	if err := e.GetEditData(&v); err == nil {
		t.Fatal("expected an error for an empty name")
	}
	if col, _ := e.FocusedColumn(); col != 1 {
		t.Errorf("expected focus back on the failing column, got %d", col)
	}
	if v.Name != "ab" {
		t.Errorf("expected record unchanged on error, got %+v", v)
	}
}
