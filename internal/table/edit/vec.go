package edit

import (
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// Editor is the widget drawn over the row being edited.
type Editor[D any] interface {
	// NewEditData creates the value for an inserted row.
	NewEditData() (D, error)
	// SetEditData loads v into the editor.
	SetEditData(v D) error
	// GetEditData writes the edited values into v.
	GetEditData(v *D) error

	// HandleEvent gets every event first while editing.
	HandleEvent(ev input.Event) table.Outcome
	// FocusedColumn returns the column holding the input focus.
	FocusedColumn() (int, bool)
	SetFocus(v bool)

	// Render draws the editor. cells are the screen areas of the row's
	// columns.
	Render(area core.Rect, cells []core.Rect, buf *buffer.Buffer)
}

// Vec renders a Store through a table and the editor on top.
type Vec[D any] struct {
	table *table.Table
	cells CellFunc[D]
}

// NewVec creates the widget. The table is configured by the caller;
// its row source is replaced by the store on every render.
func NewVec[D any](t *table.Table, cells CellFunc[D]) *Vec[D] {
	return &Vec[D]{table: t, cells: cells}
}

// Table returns the underlying table builder.
func (v *Vec[D]) Table() *table.Table { return v.table }

// Render draws the rows and, while editing, the editor over the selected
// row if it is visible.
func (v *Vec[D]) Render(area core.Rect, buf *buffer.Buffer, state *State[D]) {
	v.table.Data(storeData[D]{store: state.Store, cells: v.cells})
	v.table.Render(area, buf, state.Table.State)

	if !state.IsEditing() {
		return
	}
	row, ok := state.Table.Selected()
	if !ok {
		state.logger.Warn("no row selection, not rendering editor")
		return
	}
	if rowArea, cells, ok := state.Table.RowCells(row); ok {
		state.Editor.Render(rowArea, cells, buf)
	}
}

// State is the editing state machine over a store.
type State[D any] struct {
	Mode   Mode
	Table  *table.RowState
	Editor Editor[D]
	Store  *Store[D]

	// editorFocus is set while the focus is locked on the editor.
	editorFocus bool
	logger      *logging.Logger
}

// NewState creates a state in ModeView.
func NewState[D any](editor Editor[D], store *Store[D]) *State[D] {
	return &State[D]{
		Table:  table.NewRowState(),
		Editor: editor,
		Store:  store,
		logger: logging.Default().WithComponent("edit"),
	}
}

// SetLogger sets the logger for editor warnings.
func (s *State[D]) SetLogger(l *logging.Logger) {
	s.logger = l.WithComponent("edit")
}

// IsEditing reports whether a row is being edited or inserted.
func (s *State[D]) IsEditing() bool {
	return s.Mode == ModeEdit || s.Mode == ModeInsert
}

// IsInsert reports whether the edited row is a new one.
func (s *State[D]) IsInsert() bool {
	return s.Mode == ModeInsert
}

// Remove deletes row from the store. It only works in ModeView.
func (s *State[D]) Remove(row int) {
	if s.Mode != ModeView {
		return
	}
	s.Table.SetRows(s.Store.Len())
	if !s.Store.Remove(row) {
		return
	}
	s.Table.ItemsRemoved(row, 1)
	if !s.Table.ScrollToRow(row) {
		s.Table.ScrollToRow(max(row-1, 0))
	}
}

// EditNew inserts a new row at row and starts editing it.
func (s *State[D]) EditNew(row int) error {
	if s.Mode != ModeView {
		return nil
	}
	if row < 0 || row > s.Store.Len() {
		return &Error{Op: "edit new", Row: row, Err: ErrRowOutOfRange}
	}
	v, err := s.Editor.NewEditData()
	if err != nil {
		return &Error{Op: "edit new", Row: row, Err: err}
	}
	if err := s.Editor.SetEditData(v); err != nil {
		return &Error{Op: "edit new", Row: row, Err: err}
	}
	s.Table.SetRows(s.Store.Len())
	s.Store.Insert(row, v)
	s.start(row, ModeInsert)
	return nil
}

// Edit starts editing row.
func (s *State[D]) Edit(row int) error {
	if s.Mode != ModeView {
		return nil
	}
	v, ok := s.Store.Get(row)
	if !ok {
		return &Error{Op: "edit", Row: row, Err: ErrRowOutOfRange}
	}
	if err := s.Editor.SetEditData(v); err != nil {
		return &Error{Op: "edit", Row: row, Err: err}
	}
	s.Table.SetRows(s.Store.Len())
	s.start(row, ModeEdit)
	return nil
}

func (s *State[D]) start(row int, mode Mode) {
	if s.Table.Focus {
		s.Table.Focus = false
		s.Editor.SetFocus(true)
		s.editorFocus = true
	}

	s.Mode = mode
	if mode == ModeInsert {
		s.Table.ItemsAdded(row, 1)
	}
	s.Table.MoveTo(row)
	s.Table.ScrollToCol(0)
}

// Cancel stops editing. An inserted row is removed again.
func (s *State[D]) Cancel() {
	if s.Mode == ModeView {
		return
	}
	row, ok := s.Table.Selected()
	if !ok {
		return
	}
	if s.Mode == ModeInsert {
		s.Store.Remove(row)
		s.Table.ItemsRemoved(row, 1)
	}
	s.stop()
}

// Commit writes the editor values into the selected row and stops
// editing. On error the editor stays open.
func (s *State[D]) Commit() error {
	if s.Mode == ModeView {
		return nil
	}
	row, ok := s.Table.Selected()
	if !ok {
		return nil
	}
	v, ok := s.Store.Get(row)
	if !ok {
		return &Error{Op: "commit", Row: row, Err: ErrRowOutOfRange}
	}
	if err := s.Editor.GetEditData(&v); err != nil {
		return &Error{Op: "commit", Row: row, Err: err}
	}
	s.Store.Set(row, v)
	s.stop()
	return nil
}

// CommitAndAppend commits and starts a new row below.
func (s *State[D]) CommitAndAppend() error {
	if err := s.Commit(); err != nil {
		return err
	}
	if row, ok := s.Table.Selected(); ok {
		return s.EditNew(row + 1)
	}
	return nil
}

// CommitAndEdit commits and starts editing the next row.
func (s *State[D]) CommitAndEdit() error {
	row, ok := s.Table.Selected()
	if !ok {
		return nil
	}
	if err := s.Commit(); err != nil {
		return err
	}
	s.Table.Select(row + 1)
	return s.Edit(row + 1)
}

func (s *State[D]) stop() {
	s.Mode = ModeView
	if s.editorFocus {
		s.Editor.SetFocus(false)
		s.Table.Focus = true
		s.editorFocus = false
	}
	s.Table.ScrollToCol(0)
}

// HandleEvent routes ev to the editor while editing and to the table
// otherwise.
func (s *State[D]) HandleEvent(ev input.Event) (table.Outcome, error) {
	if s.IsEditing() {
		return s.handleEditing(ev)
	}
	return s.handleView(ev)
}

func (s *State[D]) handleEditing(ev input.Event) (table.Outcome, error) {
	switch r := s.Editor.HandleEvent(ev); r {
	case table.Unchanged:
		return r, nil
	case table.Changed:
		if col, ok := s.Editor.FocusedColumn(); ok {
			s.Table.ScrollToCol(col)
		}
		return r, nil
	}

	if ev.Kind != input.EventKey {
		return table.Continue, nil
	}
	k := ev.Key
	switch {
	case k.IsPlain(key.KeyEscape):
		s.Cancel()
		return table.Changed, nil
	case k.IsPlain(key.KeyEnter):
		row, _ := s.Table.Selected()
		if row < s.Table.Rows()-1 {
			return table.Changed, s.CommitAndEdit()
		}
		return table.Changed, s.CommitAndAppend()
	case k.IsPlain(key.KeyUp), k.IsPlain(key.KeyDown):
		return table.Changed, s.Commit()
	}
	return table.Continue, nil
}

func (s *State[D]) handleView(ev input.Event) (table.Outcome, error) {
	if _, row, ok := s.Table.DoubleClick(ev); ok {
		return table.Changed, s.Edit(row)
	}

	if s.Table.Focus && ev.Kind == input.EventKey {
		k := ev.Key
		row, selected := s.Table.Selected()
		switch {
		case k.IsPlain(key.KeyInsert):
			if selected {
				return table.Changed, s.EditNew(row)
			}
			return table.Changed, s.EditNew(0)
		case k.IsPlain(key.KeyDelete):
			if selected {
				s.Remove(row)
			}
			return table.Changed, nil
		case k.IsPlain(key.KeyEnter), k.IsPlain(key.KeyF2):
			if selected {
				return table.Changed, s.Edit(row)
			}
			return table.Changed, nil
		case k.IsPlain(key.KeyDown):
			if selected && row == s.Table.Rows()-1 {
				return table.Changed, s.EditNew(row + 1)
			}
		}
	}

	return s.Table.HandleEvent(ev), nil
}
