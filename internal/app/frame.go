package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/tablegrid/internal/renderer/backend"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
)

var (
	statusStyle    = core.DefaultStyle().Reverse()
	activeTabStyle = core.DefaultStyle().Bold()
)

// resize adapts the frame to the new screen size and forces a full
// repaint.
func (app *Application) resize(width, height int) {
	app.frame.Resize(core.NewRect(0, 0, max(width, 0), max(height, 0)))
	if app.backend != nil {
		app.backend.Sync()
	}
}

// draw renders a frame and pushes the cells that changed since the last
// one. A frame of a new size is pushed whole.
func (app *Application) draw() {
	app.Render(app.frame)
	backend.Draw(app.backend, app.frame.Diff(app.prev))
	app.backend.Show()
	app.prev.CopyFrom(app.frame)
}

// Render draws the active view above a one line status bar into buf.
func (app *Application) Render(buf *buffer.Buffer) {
	buf.Reset()
	area := buf.Area()
	if area.IsEmpty() {
		return
	}
	body := core.NewRect(area.X, area.Y, area.Width, area.Height-1)
	app.views[app.active].Render(body, buf)
	app.renderStatus(core.NewRect(area.X, area.Bottom()-1, area.Width, 1), buf)
}

func (app *Application) renderStatus(area core.Rect, buf *buffer.Buffer) {
	x := area.X
	for i, v := range app.views {
		style := statusStyle
		if i == app.active {
			style = activeTabStyle
		}
		label := fmt.Sprintf(" %d:%s ", i+1, v.Name())
		x += buf.SetStringN(x, area.Y, label, area.Right()-x, style)
	}
	if x >= area.Right() {
		return
	}
	rest := core.NewRect(x, area.Y, area.Right()-x, 1)
	buf.Fill(rest, core.NewStyledCell(' ', statusStyle))

	st := app.views[app.active].State().Stats()
	info := fmt.Sprintf(" %s %d/%d of %d ", st.Regime, st.RowOffset, st.RowMaxOffset, st.Rows)
	if app.status != "" {
		info = " " + app.status + " |" + info
	}
	start := max(x+1, area.Right()-core.StringWidth(info))
	buf.SetStringN(start, area.Y, info, area.Right()-start, statusStyle)
}

// Dump renders one frame of the active view at the given size and
// writes it as text, trailing blanks trimmed.
func (app *Application) Dump(w io.Writer, width, height int) error {
	buf := buffer.New(core.NewRect(0, 0, width, height))
	app.Render(buf)
	for y := range height {
		if _, err := fmt.Fprintln(w, strings.TrimRight(buf.Line(y), " ")); err != nil {
			return err
		}
	}
	return nil
}
