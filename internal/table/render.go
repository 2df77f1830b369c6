package table

import (
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

// Render draws the table into area and updates state with the geometry
// of this frame and the row count knowledge gained while iterating.
func (t *Table) Render(area core.Rect, buf *buffer.Buffer, state *State) {
	cur := t.src.open()
	defer cur.close()
	if cur.kind == cursorInvalid && t.debug {
		t.logger.Warn("render: iterator cannot be cloned, showing a diagnostic row")
	}

	state.columns = len(t.widths)
	state.area = area
	state.diagnostics = state.diagnostics[:0]
	state.headerArea, state.tableArea, state.footerArea = t.layoutAreas(area)

	width := t.totalWidth(state.tableArea.Width)
	columns, spacers := t.layoutColumns(width)
	t.calculateColumnAreas(columns, spacers, state)

	// everything gets the base style, later passes only patch
	buf.SetStyle(area, t.styles.Style)

	t.renderHeaderFooter(t.header, t.styles.Header, t.styles.SelectHeader, t.styles.ShowHeaderFocus,
		width, columns, spacers, state.headerArea, buf, state)
	t.renderHeaderFooter(t.footer, t.styles.Footer, t.styles.SelectFooter, t.styles.ShowFooterFocus,
		width, columns, spacers, state.footerArea, buf, state)

	p := newPass(cur, state)
	p.reopen = t.src.open
	t.renderBody(p, area, width, columns, spacers, buf)

	switch {
	case p.counted:
		p.countedEnd()
	case t.noRowCount:
		p.probeEnd()
	default:
		p.scanEnd()
	}

	state.hscroll.SetMaxOffset(max(width-state.tableArea.Width, 0))

	t.diagnose(p, buf)

	// an offset past the end is reported once and corrected for the
	// next frame
	if state.vscroll.Offset() > state.vscroll.MaxOffset() {
		state.vscroll.SetOffset(state.vscroll.MaxOffset())
	}
}

// calculateColumnAreas stores the unscrolled column layout and the
// visible, shifted column areas.
func (t *Table) calculateColumnAreas(columns, spacers []core.Rect, state *State) {
	state.columnAreas = state.columnAreas[:0]
	state.columnLayout = state.columnLayout[:0]

	shift := state.hscroll.Offset()
	for col := range state.columns {
		x1 := columns[col].X
		x2 := columns[col].Right() + spacers[col+1].Width
		state.columnLayout = append(state.columnLayout, core.NewRect(x1, 0, x2-x1, 0))

		ax1 := max(x1-shift, 0)
		ax2 := max(x2-shift, 0)
		visible := core.NewRect(state.tableArea.X+ax1, state.tableArea.Y, ax2-ax1, state.tableArea.Height)
		state.columnAreas = append(state.columnAreas, visible.Intersection(state.tableArea))
	}
}

// columnVisible reports whether [x, right) intersects the horizontal
// viewport.
func columnVisible(cell core.Rect, hoff, viewWidth int) bool {
	return cell.Right() > hoff && cell.X < hoff+viewWidth
}

func (t *Table) renderHeaderFooter(row *Row, rowStyle, selectStyle *core.Style, showFocus bool,
	width int, columns, spacers []core.Rect, area core.Rect, buf *buffer.Buffer, state *State) {
	if row == nil {
		return
	}

	rowArea := core.NewRect(0, 0, width, row.Height)
	rowBuf := buffer.New(rowArea)
	rowBuf.SetStyle(rowArea, t.styles.Style)
	switch {
	case row.Style != nil:
		rowBuf.SetStyle(rowArea, *row.Style)
	case rowStyle != nil:
		rowBuf.SetStyle(rowArea, *rowStyle)
	}

	hoff := state.hscroll.Offset()
	for col := range state.columns {
		cellArea := core.NewRect(columns[col].X, 0, columns[col].Width, area.Height)
		spaceArea := core.NewRect(spacers[col+1].X, 0, spacers[col+1].Width, area.Height)

		if state.selection.IsSelectedColumn(col) {
			if s := t.patchSelect(selectStyle, state.Focus, showFocus); s != nil {
				rowBuf.SetStyle(cellArea, *s)
				rowBuf.SetStyle(spaceArea, *s)
			}
		}
		if columnVisible(cellArea, hoff, area.Width) {
			row.renderCell(col, cellArea, rowBuf)
		}
	}

	rowBuf.Transfer(buf, hoff, area)
}

func (t *Table) renderBody(p *pass, area core.Rect, width int, columns, spacers []core.Rect, buf *buffer.Buffer) {
	state := p.state
	table := state.tableArea

	state.rowAreas = state.rowAreas[:0]
	state.vscroll.SetPageLen(0)
	state.hscroll.SetPageLen(area.Width)

	ctx := Context{
		Focus: state.Focus,
		Style: t.styles.Style,
	}
	hoff := state.hscroll.Offset()
	rowBuf := buffer.New(core.NewRect(0, 0, width, 1))
	rowY := table.Y

	if !p.cur.nth(state.vscroll.Offset()) {
		// the skip may have failed anywhere, so the row stays unknown
		if p.counted && p.reported > 0 {
			p.insaneOffset = true
		}
		return
	}

	p.setRow(state.vscroll.Offset())
	for {
		h := p.cur.rowHeight()
		ctx.RowStyle = p.cur.rowStyle()

		// each row is rendered at (0,0) of its own buffer
		rowArea := core.NewRect(0, 0, width, h)
		rowBuf.Resize(rowArea)
		if ctx.RowStyle != nil {
			rowBuf.SetStyle(rowArea, *ctx.RowStyle)
		} else {
			rowBuf.SetStyle(rowArea, t.styles.Style)
		}
		p.pushHeight(h)

		visible := core.NewRect(table.X, rowY, table.Width, max(h, 1)).Intersection(table)
		state.rowAreas = append(state.rowAreas, visible)
		state.vscroll.SetPageLen(state.vscroll.PageLen() + 1)

		for col := range state.columns {
			cellArea := core.NewRect(columns[col].X, 0, columns[col].Width, h)
			ctx.SpaceArea = core.NewRect(spacers[col+1].X, 0, spacers[col+1].Width, h)
			t.resolveSelect(&ctx, col, p.row, state)

			if columnVisible(cellArea, hoff, area.Width) {
				if ctx.SelectStyle != nil {
					rowBuf.SetStyle(cellArea, *ctx.SelectStyle)
					rowBuf.SetStyle(ctx.SpaceArea, *ctx.SelectStyle)
				}
				p.cur.renderCell(&ctx, col, cellArea, rowBuf)
			}
		}

		rowBuf.Transfer(buf, hoff, visible)

		if visible.Bottom() >= table.Bottom() {
			break
		}
		if !p.cur.nth(0) {
			break
		}
		p.row++
		rowY += h
	}
}

// resolveSelect sets the selection flags and style of ctx for one cell.
// Cell selection wins over row selection, row over column.
func (t *Table) resolveSelect(ctx *Context, col, row int, state *State) {
	sel := state.selection
	ctx.SelectedCell, ctx.SelectedRow, ctx.SelectedColumn = false, false, false
	ctx.SelectStyle = nil

	switch {
	case sel.IsSelectedCell(col, row):
		ctx.SelectedCell = true
		ctx.SelectStyle = t.patchSelect(t.styles.SelectCell, state.Focus, t.styles.ShowCellFocus)
	case sel.IsSelectedRow(row):
		ctx.SelectedRow = true
		style := t.styles.SelectRow
		if style == nil {
			fallback := t.styles.Style.Reversed()
			style = &fallback
		}
		ctx.SelectStyle = t.patchSelect(style, state.Focus, t.styles.ShowRowFocus)
	case sel.IsSelectedColumn(col):
		ctx.SelectedColumn = true
		ctx.SelectStyle = t.patchSelect(t.styles.SelectColumn, state.Focus, t.styles.ShowColumnFocus)
	}
}
