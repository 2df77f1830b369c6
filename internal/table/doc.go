// Package table renders virtualized, scrollable tables into a cell
// buffer.
//
// A Table describes what to draw: the row source, column widths, styles
// and header or footer rows. A State carries everything that survives
// between frames: scroll offsets, the selection and the geometry of the
// last render. Only the visible rows are rendered, so a table over a
// random-access source with millions of rows costs as much as one
// screen.
//
// Row sources come in three shapes:
//
//   - materialized rows (Table.Rows), for small tables
//   - a Data implementation with random access and a known count
//   - an Iter implementation, a forward cursor with an optional count
//
// How the row count and the maximum scroll offset are derived depends on
// the source. With a count the renderer skips straight to the last page
// to measure it. Without a count it either iterates to the end or, when
// NoRowCount is set, probes a single row past the page and treats the
// data as open ended.
//
// Basic usage:
//
//	t := table.New().
//	    Rows(table.TextRow("a", "1"), table.TextRow("b", "2")).
//	    Widths(layout.Length{Value: 10}, layout.Fill{Weight: 1}).
//	    ColumnSpacing(1)
//	st := table.NewRowState()
//	t.Render(area, buf, st.State)
//	if st.HandleEvent(ev) == table.Changed {
//	    // redraw
//	}
//
// Render never fails. Offsets past the end and sources whose reported
// count disagrees with the iterated rows are recorded in
// State.Diagnostics, and with Debug set they are logged and drawn over
// the table.
package table
