package jsonsrc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

const fruit = `[
	{"id": 1, "name": "apple", "qty": 3, "fresh": true},
	{"id": 2, "name": "pear", "qty": 10, "fresh": false},
	{"id": 3, "name": "fig", "tags": ["a", "b"]}
]`

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		rows    int
	}{
		{"array", fruit, nil, 3},
		{"empty array", `[]`, nil, 0},
		{"object", `{"a": 1}`, ErrNotArray, 0},
		{"scalar", `42`, ErrNotArray, 0},
		{"broken", `[{"a": 1}`, ErrInvalidJSON, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New([]byte(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if err == nil && s.Rows() != tt.rows {
				t.Errorf("expected %d rows, got %d", tt.rows, s.Rows())
			}
		})
	}
}

func TestInferredColumns(t *testing.T) {
	s, err := New([]byte(fruit))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var titles []string
	for _, c := range s.Columns() {
		titles = append(titles, c.Title)
	}
	if got := strings.Join(titles, ","); got != "id,name,qty,fresh" {
		t.Errorf("expected columns in document order, got %s", got)
	}

	scalars, _ := New([]byte(`["x", "y"]`))
	if scalars.Value(0, 1) != "y" {
		t.Errorf("expected scalar element value, got %q", scalars.Value(0, 1))
	}
}

func TestValue(t *testing.T) {
	s, _ := New([]byte(fruit),
		Column{Title: "name", Path: "name"},
		Column{Title: "qty", Path: "qty"},
		Column{Title: "tags", Path: "tags"},
		Column{Title: "first tag", Path: "tags.0"},
	)
	tests := []struct {
		col, row int
		want     string
	}{
		{0, 0, "apple"},
		{1, 1, "10"},
		{1, 2, ""},
		{2, 2, `["a", "b"]`},
		{3, 2, "a"},
		{0, 9, ""},
		{9, 0, ""},
	}
	for _, tt := range tests {
		if got := s.Value(tt.col, tt.row); got != tt.want {
			t.Errorf("Value(%d, %d): expected %q, got %q", tt.col, tt.row, tt.want, got)
		}
	}
}

func TestSetCell(t *testing.T) {
	s, _ := New([]byte(fruit))

	if err := s.SetCell(1, 1, "quince"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if err := s.SetCell(2, 0, "7"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if err := s.SetCell(2, 1, "many"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if err := s.SetCell(3, 1, "yes"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if err := s.SetCell(2, 2, "1"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}

	doc := string(s.Bytes())
	checks := []struct {
		path string
		typ  gjson.Type
		want string
	}{
		{"1.name", gjson.String, "quince"},
		{"0.qty", gjson.Number, "7"},
		{"1.qty", gjson.String, "many"},
		{"1.fresh", gjson.String, "yes"},
		{"2.qty", gjson.String, "1"},
	}
	for _, c := range checks {
		v := gjson.Get(doc, c.path)
		if v.Type != c.typ || v.String() != c.want {
			t.Errorf("%s: expected %v %q, got %v %q", c.path, c.typ, c.want, v.Type, v.String())
		}
	}
	if s.Value(1, 1) != "quince" {
		t.Errorf("expected rows to be reparsed, got %q", s.Value(1, 1))
	}

	if err := s.SetCell(0, 5, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestSetCellKeepsStructure(t *testing.T) {
	s, _ := New([]byte(fruit), Column{Title: "tags", Path: "tags"})

	if err := s.SetCell(0, 2, `["c"]`); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if v := gjson.GetBytes(s.Bytes(), "2.tags.0"); v.String() != "c" {
		t.Errorf("expected array element c, got %q", v.Raw)
	}

	if err := s.SetCell(0, 2, "not json"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if v := gjson.GetBytes(s.Bytes(), "2.tags"); v.Type != gjson.String {
		t.Errorf("expected a string, got %v", v.Type)
	}
}

func TestWidths(t *testing.T) {
	s, _ := New([]byte(fruit),
		Column{Title: "name", Path: "name"},
		Column{Title: "q", Path: "qty", Width: layout.Fill{Weight: 1}},
	)
	w := s.Widths()
	if l, ok := w[0].(layout.Length); !ok || l.Value != 5 {
		t.Errorf("expected Length 5, got %#v", w[0])
	}
	if _, ok := w[1].(layout.Fill); !ok {
		t.Errorf("expected explicit Fill, got %#v", w[1])
	}
}

func TestRenderThroughTable(t *testing.T) {
	s, _ := New([]byte(fruit),
		Column{Title: "id", Path: "id"},
		Column{Title: "name", Path: "name"},
	)
	tbl := table.New().Data(s).ColumnSpacing(1)
	st := table.NewState()
	area := core.NewRect(0, 0, 12, 5)
	buf := buffer.New(area)
	tbl.Render(area, buf, st)

	if st.Rows() != 3 {
		t.Errorf("expected 3 rows, got %d", st.Rows())
	}
	want := []string{"id name", "1  apple", "2  pear", "3  fig", ""}
	for y, w := range want {
		if got := strings.TrimRight(buf.Line(y), " "); got != w {
			t.Errorf("line %d: expected %q, got %q", y, w, got)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.json")
	if err := os.WriteFile(path, []byte(fruit), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Rows() != 3 {
		t.Errorf("expected 3 rows, got %d", s.Rows())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
