package app

import (
	"fmt"

	"github.com/dshills/tablegrid/internal/config"
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
	"github.com/dshills/tablegrid/internal/table/luasrc"
)

// builtinScript feeds the script view when no script file is given.
// Every tenth row is two lines high.
const builtinScript = `
columns = {"n", "square", "collatz", "note"}
widths = {7, 10, 8, 24}
count = 5000

local function steps(n)
  local s = 0
  while n > 1 do
    if n % 2 == 0 then
      n = n / 2
    else
      n = 3 * n + 1
    end
    s = s + 1
  end
  return s
end

function row(i)
  if i >= count then
    return nil
  end
  local note = ""
  if i % 10 == 0 then
    note = "every tenth row\nspans two lines"
  end
  return {i, i * i, steps(i + 1), note}
end
`

// scriptView renders rows produced by a Lua script with a row set
// selection.
type scriptView struct {
	src   *luasrc.Source
	table *table.Table
	state *table.RowSetState
}

// openScript compiles the script at path, or the builtin one when path
// is empty.
func openScript(path string, logger *logging.Logger) (*scriptView, error) {
	opts := []luasrc.Option{luasrc.WithLogger(logger)}
	var (
		src *luasrc.Source
		err error
	)
	if path == "" {
		src, err = luasrc.Compile("builtin", builtinScript, opts...)
	} else {
		src, err = luasrc.Load(path, opts...)
	}
	if err != nil {
		return nil, err
	}
	return &scriptView{src: src, state: table.NewRowSetState()}, nil
}

func (v *scriptView) Name() string        { return "script" }
func (v *scriptView) State() *table.State { return v.state.State }
func (v *scriptView) Editing() bool       { return false }
func (v *scriptView) Close()              { v.src.Close() }

func (v *scriptView) Configure(s config.Settings, logger *logging.Logger) {
	v.table = s.Apply(table.New().Logger(logger).Iter(v.src))
	s.ApplyState(v.state.State)
}

func (v *scriptView) Render(area core.Rect, buf *buffer.Buffer) {
	selected := len(v.state.Selected())
	v.table.Footer(table.TextRow(fmt.Sprintf("%d selected", selected)))
	v.table.Render(area, buf, v.state.State)
}

func (v *scriptView) HandleEvent(ev input.Event) (table.Outcome, error) {
	return v.state.HandleEvent(ev), nil
}
