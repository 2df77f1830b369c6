// Package jsonsrc serves the elements of a JSON array as table rows.
//
// Rows are random access. Column values are looked up by gjson path
// relative to each element, and edits are written back into the
// document with sjson.
package jsonsrc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

var (
	// ErrNotArray is returned when the document root is not an array.
	ErrNotArray = errors.New("jsonsrc: document root is not an array")
	// ErrInvalidJSON is returned for documents gjson cannot parse.
	ErrInvalidJSON = errors.New("jsonsrc: invalid JSON")
	// ErrOutOfRange is returned for a row or column outside the source.
	ErrOutOfRange = errors.New("jsonsrc: cell out of range")
)

// Column maps a gjson path to a table column.
type Column struct {
	Title string
	Path  string
	// Width is the column constraint. nil sizes the column to its title
	// and the widest value.
	Width layout.Constraint
}

// Source is a table.Data over a JSON array.
type Source struct {
	doc     string
	rows    []gjson.Result
	columns []Column
}

// New parses doc. Without columns, the keys of the first element
// become the columns, in document order.
func New(doc []byte, columns ...Column) (*Source, error) {
	s := &Source{columns: columns}
	if err := s.parse(string(doc)); err != nil {
		return nil, err
	}
	if len(s.columns) == 0 {
		s.columns = inferColumns(s.rows)
	}
	return s, nil
}

// Load reads and parses the file at path.
func Load(path string, columns ...Column) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonsrc: read %s: %w", path, err)
	}
	s, err := New(data, columns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Source) parse(doc string) error {
	if !gjson.Valid(doc) {
		return ErrInvalidJSON
	}
	root := gjson.Parse(doc)
	if !root.IsArray() {
		return ErrNotArray
	}
	s.doc = doc
	s.rows = root.Array()
	return nil
}

func inferColumns(rows []gjson.Result) []Column {
	if len(rows) == 0 || !rows[0].IsObject() {
		return []Column{{Title: "value", Path: "@this"}}
	}
	var cols []Column
	rows[0].ForEach(func(k, _ gjson.Result) bool {
		cols = append(cols, Column{Title: k.String(), Path: gjson.Escape(k.String())})
		return true
	})
	return cols
}

// Columns returns the column definitions.
func (s *Source) Columns() []Column {
	return s.columns
}

// Bytes returns the current document, including edits.
func (s *Source) Bytes() []byte {
	return []byte(s.doc)
}

// Value returns the text of the cell at (col, row).
func (s *Source) Value(col, row int) string {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.columns) {
		return ""
	}
	v := s.rows[row].Get(s.columns[col].Path)
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	if v.IsObject() || v.IsArray() {
		return v.Raw
	}
	return v.String()
}

// SetCell writes text into the cell at (col, row). Numbers, booleans,
// objects and arrays stay typed when text parses as the same kind;
// everything else is stored as a string.
func (s *Source) SetCell(col, row int, text string) error {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.columns) {
		return fmt.Errorf("%w: column %d row %d", ErrOutOfRange, col, row)
	}
	c := s.columns[col]
	if c.Path == "@this" {
		return fmt.Errorf("jsonsrc: column %q is not writable", c.Title)
	}
	path := strconv.Itoa(row) + "." + c.Path

	var (
		doc string
		err error
	)
	if raw, ok := typedRaw(s.rows[row].Get(c.Path), text); ok {
		doc, err = sjson.SetRaw(s.doc, path, raw)
	} else {
		doc, err = sjson.Set(s.doc, path, text)
	}
	if err != nil {
		return fmt.Errorf("jsonsrc: set %s: %w", path, err)
	}
	return s.parse(doc)
}

// typedRaw returns the raw JSON for text when text parses as the kind
// of the current value.
func typedRaw(cur gjson.Result, text string) (string, bool) {
	switch cur.Type {
	case gjson.Number:
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return text, true
		}
	case gjson.True, gjson.False:
		if b, err := strconv.ParseBool(text); err == nil {
			return strconv.FormatBool(b), true
		}
	case gjson.JSON:
		if gjson.Valid(text) && strings.HasPrefix(strings.TrimSpace(text), cur.Raw[:1]) {
			return text, true
		}
	}
	return "", false
}

func (s *Source) Rows() int                { return len(s.rows) }
func (s *Source) RowHeight(int) int        { return 1 }
func (s *Source) RowStyle(int) *core.Style { return nil }

func (s *Source) RenderCell(_ *table.Context, col, row int, area core.Rect, buf *buffer.Buffer) {
	table.NewCell(s.Value(col, row)).Render(area, buf)
}

// Header returns the column titles.
func (s *Source) Header() *table.Row {
	titles := make([]string, len(s.columns))
	for i, c := range s.columns {
		titles[i] = c.Title
	}
	r := table.TextRow(titles...)
	return &r
}

// Widths returns the column constraints. Unset widths fit the title and
// the widest value, capped at maxAutoWidth.
func (s *Source) Widths() []layout.Constraint {
	widths := make([]layout.Constraint, len(s.columns))
	for i, c := range s.columns {
		if c.Width != nil {
			widths[i] = c.Width
			continue
		}
		w := core.StringWidth(c.Title)
		for row := range s.rows {
			w = max(w, core.StringWidth(s.Value(i, row)))
			if w >= maxAutoWidth {
				w = maxAutoWidth
				break
			}
		}
		widths[i] = layout.Length{Value: max(w, 1)}
	}
	return widths
}

const maxAutoWidth = 40
