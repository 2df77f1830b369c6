package table

import (
	"reflect"
	"testing"
	"time"

	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/layout"
)

func keyPress(k key.Key, mods key.Modifier) input.Event {
	return input.KeyEvent(key.NewSpecialEvent(k, mods))
}

func mouseAt(x, y int, b mouse.Button, a mouse.Action, mods key.Modifier, when time.Time) input.Event {
	return input.MouseEvent(mouse.Event{
		Position:  mouse.Position{X: x, Y: y},
		Button:    b,
		Action:    a,
		Modifiers: mods,
		Timestamp: when,
	})
}

func click(x, y int, mods key.Modifier) input.Event {
	return mouseAt(x, y, mouse.ButtonLeft, mouse.ActionPress, mods, time.Now())
}

func TestStateScrollEvents(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 10})
	st := NewState()
	st.Focus = true
	renderTable(t, tbl, st, 10, 10)

	tests := []struct {
		name   string
		ev     input.Event
		want   Outcome
		offset int
	}{
		{"down", keyPress(key.KeyDown, key.ModNone), Changed, 1},
		{"ctrl end", keyPress(key.KeyEnd, key.ModCtrl), Changed, 90},
		{"ctrl end again", keyPress(key.KeyEnd, key.ModCtrl), Unchanged, 90},
		{"up", keyPress(key.KeyUp, key.ModNone), Changed, 89},
		{"wheel up", mouseAt(1, 1, mouse.ButtonScrollUp, mouse.ActionPress, key.ModNone, time.Now()), Changed, 86},
		{"wheel outside", mouseAt(30, 1, mouse.ButtonScrollUp, mouse.ActionPress, key.ModNone, time.Now()), Continue, 86},
		{"right without overflow", keyPress(key.KeyRight, key.ModNone), Unchanged, 86},
		{"unrelated key", input.KeyEvent(key.NewRuneEvent('x', key.ModNone)), Continue, 86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if st.RowOffset() != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, st.RowOffset())
			}
		})
	}

	st.Focus = false
	if got := st.HandleEvent(keyPress(key.KeyDown, key.ModNone)); got != Continue {
		t.Errorf("expected keys to be ignored without focus, got %s", got)
	}
}

func TestRowStateEvents(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 10})
	st := NewRowState()
	st.Focus = true
	renderTable(t, tbl, st.State, 10, 10)

	tests := []struct {
		name   string
		ev     input.Event
		row    int
		offset int
	}{
		{"first down selects row 0", keyPress(key.KeyDown, key.ModNone), 0, 0},
		{"down", keyPress(key.KeyDown, key.ModNone), 1, 0},
		{"ctrl end", keyPress(key.KeyEnd, key.ModCtrl), 99, 90},
		{"up", keyPress(key.KeyUp, key.ModNone), 98, 90},
		{"ctrl home", keyPress(key.KeyHome, key.ModCtrl), 0, 0},
		{"page down", keyPress(key.KeyPageDown, key.ModNone), 9, 0},
		{"click", click(1, 4, key.ModNone), 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.HandleEvent(tt.ev); got != Changed {
				t.Errorf("expected changed, got %s", got)
			}
			if row, _ := st.Selected(); row != tt.row {
				t.Errorf("expected row %d, got %d", tt.row, row)
			}
			if st.RowOffset() != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, st.RowOffset())
			}
		})
	}

	// dragging below the table extends past the last visible row
	st.HandleEvent(mouseAt(1, 12, mouse.ButtonLeft, mouse.ActionDrag, key.ModNone, time.Now()))
	if row, _ := st.Selected(); row != 12 {
		t.Errorf("expected drag to select row 12, got %d", row)
	}
	if st.RowOffset() != 3 {
		t.Errorf("expected offset 3 after drag, got %d", st.RowOffset())
	}
	st.HandleEvent(mouseAt(1, 12, mouse.ButtonLeft, mouse.ActionRelease, key.ModNone, time.Now()))
	st.HandleEvent(mouseAt(1, 14, mouse.ButtonLeft, mouse.ActionDrag, key.ModNone, time.Now()))
	if row, _ := st.Selected(); row != 12 {
		t.Errorf("expected drag after release to be ignored, got row %d", row)
	}

	st.Focus = false
	if got := st.HandleEvent(keyPress(key.KeyDown, key.ModNone)); got != Continue {
		t.Errorf("expected continue without focus, got %s", got)
	}
}

func TestRowStateScrollSelection(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 10})
	st := NewRowState()
	renderTable(t, tbl, st.State, 10, 10)
	wheel := mouseAt(1, 1, mouse.ButtonScrollDown, mouse.ActionPress, key.ModNone, time.Now())

	st.HandleEvent(wheel)
	if st.RowOffset() != 3 {
		t.Errorf("expected wheel to scroll by 3, got offset %d", st.RowOffset())
	}
	if _, ok := st.Selected(); ok {
		t.Error("expected wheel not to select")
	}

	st.SetScrollSelection(true)
	st.Select(5)
	st.HandleEvent(wheel)
	if row, _ := st.Selected(); row != 8 {
		t.Errorf("expected wheel to move the selection to 8, got %d", row)
	}
}

func TestRowSetStateEvents(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 10})
	st := NewRowSetState()
	st.Focus = true
	renderTable(t, tbl, st.State, 10, 10)

	tests := []struct {
		name string
		ev   input.Event
		want []int
	}{
		{"down", keyPress(key.KeyDown, key.ModNone), []int{0}},
		{"shift down", keyPress(key.KeyDown, key.ModShift), []int{0, 1}},
		{"shift down again", keyPress(key.KeyDown, key.ModShift), []int{0, 1, 2}},
		{"ctrl click toggles", click(1, 5, key.ModCtrl), []int{0, 1, 2, 5}},
		{"ctrl click toggles off", click(1, 1, key.ModCtrl), []int{0, 2, 5}},
		{"click starts over", click(1, 7, key.ModNone), []int{7}},
		{"shift click extends", click(1, 9, key.ModShift), []int{7, 8, 9}},
		{"plain down starts over", keyPress(key.KeyDown, key.ModNone), []int{10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st.HandleEvent(tt.ev)
			if got := st.Selected(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCellStateEvents(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 5}, layout.Length{Value: 5})
	st := NewCellState()
	st.Focus = true
	renderTable(t, tbl, st.State, 10, 10)

	tests := []struct {
		name     string
		ev       input.Event
		want     Outcome
		col, row int
	}{
		{"first right selects origin", keyPress(key.KeyRight, key.ModNone), Changed, 0, 0},
		{"right", keyPress(key.KeyRight, key.ModNone), Changed, 1, 0},
		{"right at the edge", keyPress(key.KeyRight, key.ModNone), Unchanged, 1, 0},
		{"ctrl end", keyPress(key.KeyEnd, key.ModCtrl), Changed, 1, 99},
		{"home", keyPress(key.KeyHome, key.ModNone), Changed, 0, 99},
		{"ctrl home", keyPress(key.KeyHome, key.ModCtrl), Changed, 0, 0},
		{"click", click(6, 2, key.ModNone), Changed, 1, 2},
		{"left", keyPress(key.KeyLeft, key.ModNone), Changed, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			col, row, _ := st.Selected()
			if col != tt.col || row != tt.row {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.col, tt.row, col, row)
			}
		})
	}
}

func TestDoubleClick(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 5}, layout.Length{Value: 5})
	st := NewState()
	renderTable(t, tbl, st, 10, 10)

	t0 := time.Now()
	first := mouseAt(6, 2, mouse.ButtonLeft, mouse.ActionPress, key.ModNone, t0)
	second := mouseAt(6, 2, mouse.ButtonLeft, mouse.ActionPress, key.ModNone, t0.Add(100*time.Millisecond))
	late := mouseAt(6, 2, mouse.ButtonLeft, mouse.ActionPress, key.ModNone, t0.Add(2*time.Second))

	if _, _, ok := st.DoubleClick(first); ok {
		t.Error("expected the first press not to be a double click")
	}
	col, row, ok := st.DoubleClick(second)
	if !ok || col != 1 || row != 2 {
		t.Errorf("expected double click on (1, 2), got (%d, %d) %v", col, row, ok)
	}
	if _, _, ok := st.DoubleClick(late); ok {
		t.Error("expected a press after a completed double click to start over")
	}

	other := mouseAt(1, 3, mouse.ButtonLeft, mouse.ActionPress, key.ModNone, t0.Add(2100*time.Millisecond))
	if _, _, ok := st.DoubleClick(other); ok {
		t.Error("expected presses on different cells not to double click")
	}
}

func TestHandleEditKeys(t *testing.T) {
	tbl := New().Data(genData{rows: 100}).Widths(layout.Length{Value: 10})
	st := NewRowState()
	st.Focus = true
	renderTable(t, tbl, st.State, 10, 10)
	st.Select(0)

	tests := []struct {
		name string
		ev   input.Event
		want EditOutcome
	}{
		{"insert", keyPress(key.KeyInsert, key.ModNone), EditInsert},
		{"delete", keyPress(key.KeyDelete, key.ModNone), EditRemove},
		{"enter", keyPress(key.KeyEnter, key.ModNone), EditEdit},
		{"f2", keyPress(key.KeyF2, key.ModNone), EditEdit},
		{"down", keyPress(key.KeyDown, key.ModNone), EditChanged},
		{"other", input.KeyEvent(key.NewRuneEvent('x', key.ModNone)), EditContinue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandleEditKeys(st, tt.ev); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	st.Select(99)
	if got := HandleEditKeys(st, keyPress(key.KeyDown, key.ModNone)); got != EditAppend {
		t.Errorf("expected append on the last row, got %s", got)
	}

	st.Focus = false
	if got := HandleEditKeys(st, keyPress(key.KeyInsert, key.ModNone)); got != EditContinue {
		t.Errorf("expected continue without focus, got %s", got)
	}
}
