// Package luasrc is a forward-only table source whose rows come from a
// Lua script.
//
// The script defines a global function row(i) returning a list of cell
// values for the zero-based row i, or nil past the last row. These
// optional globals are read after the script ran:
//
//	columns = {"id", "name"}   -- header titles
//	widths  = {6, 20}          -- column widths, default fills the area
//	count   = 1000             -- row count, or a function returning it
//
// Scripts run in a state with only the base, table, string and math
// libraries; loaders that read files are removed.
package luasrc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// DefaultCallTimeout bounds a single call into the script.
const DefaultCallTimeout = time.Second

// Option configures a Source.
type Option func(*Source)

// WithCallTimeout sets the time limit for one script call.
func WithCallTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithLogger sets the logger for script failures.
func WithLogger(l *logging.Logger) Option {
	return func(s *Source) {
		s.logger = l
	}
}

// WithoutCount hides the script's count, forcing the table to find the
// end by iterating.
func WithoutCount() Option {
	return func(s *Source) {
		s.hideCount = true
	}
}

// Source implements table.Iter. Each Clone runs the compiled chunk in a
// fresh Lua state, so clones never share generator state.
type Source struct {
	name      string
	proto     *lua.FunctionProto
	timeout   time.Duration
	hideCount bool
	logger    *logging.Logger

	L      *lua.LState
	rowFn  *lua.LFunction
	header *table.Row
	widths []layout.Constraint

	row     int
	started bool
	done    bool
	cells   []table.Cell
	height  int
	err     error
}

// Compile compiles code and runs it once to read its globals.
func Compile(name, code string, opts ...Option) (*Source, error) {
	chunk, err := parse.Parse(strings.NewReader(code), name)
	if err != nil {
		return nil, &ScriptError{Row: -1, Err: err}
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, &ScriptError{Row: -1, Err: err}
	}

	s := &Source{
		name:    name,
		proto:   proto,
		timeout: DefaultCallTimeout,
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load compiles the script file at path.
func Load(path string, opts ...Option) (*Source, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("luasrc: read %s: %w", path, err)
	}
	return Compile(path, string(code), opts...)
}

// start runs the chunk in a new state and picks up its globals.
func (s *Source) start() error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := s.call(L, -1, func() error {
		L.Push(L.NewFunctionFromProto(s.proto))
		return L.PCall(0, lua.MultRet, nil)
	}); err != nil {
		L.Close()
		return err
	}

	fn, ok := L.GetGlobal("row").(*lua.LFunction)
	if !ok {
		L.Close()
		return ErrNoRowFunc
	}
	s.L = L
	s.rowFn = fn
	s.header = readHeader(L)
	s.widths = readWidths(L, s.header)
	return nil
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// call runs fn under the call timeout and recovers VM panics.
func (s *Source) call(L *lua.LState, row int, fn func() error) (err error) {
	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		L.SetContext(ctx)
		defer func() {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && err != nil {
				err = &ScriptError{Row: row, Err: ErrTimeout}
			}
		}()
		defer L.RemoveContext()
	}
	defer func() {
		if r := recover(); r != nil {
			err = &ScriptError{Row: row, Err: fmt.Errorf("lua panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &ScriptError{Row: row, Err: err}
	}
	return nil
}

func readHeader(L *lua.LState) *table.Row {
	tbl, ok := L.GetGlobal("columns").(*lua.LTable)
	if !ok {
		return nil
	}
	titles := make([]string, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		titles = append(titles, lua.LVAsString(tbl.RawGetInt(i)))
	}
	r := table.TextRow(titles...)
	return &r
}

func readWidths(L *lua.LState, header *table.Row) []layout.Constraint {
	if tbl, ok := L.GetGlobal("widths").(*lua.LTable); ok {
		widths := make([]layout.Constraint, 0, tbl.Len())
		for i := 1; i <= tbl.Len(); i++ {
			n, _ := tbl.RawGetInt(i).(lua.LNumber)
			widths = append(widths, layout.Length{Value: max(int(n), 0)})
		}
		return widths
	}
	if header == nil {
		return nil
	}
	widths := make([]layout.Constraint, len(header.Cells))
	for i := range widths {
		widths[i] = layout.Fill{Weight: 1}
	}
	return widths
}

// Err returns the last script failure, if any.
func (s *Source) Err() error {
	return s.err
}

// Close releases the Lua state.
func (s *Source) Close() {
	if s.L != nil {
		s.L.Close()
		s.L = nil
	}
}

func (s *Source) Header() *table.Row          { return s.header }
func (s *Source) Widths() []layout.Constraint { return s.widths }
func (s *Source) RowHeight() int              { return s.height }
func (s *Source) RowStyle() *core.Style       { return nil }

// RowCount reports the script's count global, if it set one.
func (s *Source) RowCount() (int, bool) {
	if s.hideCount || s.L == nil {
		return 0, false
	}
	switch v := s.L.GetGlobal("count").(type) {
	case lua.LNumber:
		return max(int(v), 0), true
	case *lua.LFunction:
		var n lua.LValue
		err := s.call(s.L, -1, func() error {
			if err := s.L.CallByParam(lua.P{Fn: v, NRet: 1, Protect: true}); err != nil {
				return err
			}
			n = s.L.Get(-1)
			s.L.Pop(1)
			return nil
		})
		if err != nil {
			s.fail(err)
			break
		}
		if num, ok := n.(lua.LNumber); ok {
			return max(int(num), 0), true
		}
	}
	return 0, false
}

// AdvanceBy generates the row n rows past the current one. A script
// error ends the iteration.
func (s *Source) AdvanceBy(n int) bool {
	if s.done || s.L == nil {
		return false
	}
	next := max(n, 0)
	if s.started {
		next += s.row + 1
	}
	s.started = true
	s.row = next

	var v lua.LValue
	err := s.call(s.L, next, func() error {
		if err := s.L.CallByParam(lua.P{Fn: s.rowFn, NRet: 1, Protect: true}, lua.LNumber(next)); err != nil {
			return err
		}
		v = s.L.Get(-1)
		s.L.Pop(1)
		return nil
	})
	if err != nil {
		s.fail(err)
		return false
	}

	tbl, ok := v.(*lua.LTable)
	if !ok {
		s.done = true
		return false
	}
	s.cells = s.cells[:0]
	for i := 1; i <= tbl.Len(); i++ {
		s.cells = append(s.cells, table.NewCell(lua.LVAsString(tbl.RawGetInt(i))))
	}
	s.height = table.NewRow(s.cells...).Height
	return true
}

func (s *Source) fail(err error) {
	s.done = true
	s.err = err
	s.logger.Warn("lua source %s: %v", s.name, err)
}

func (s *Source) RenderCell(_ *table.Context, col int, area core.Rect, buf *buffer.Buffer) {
	if col < len(s.cells) {
		s.cells[col].Render(area, buf)
	}
}

// Clone runs the script again in a new state, positioned before the
// first row. The clone's state is released when it is garbage
// collected or closed.
func (s *Source) Clone() (table.Iter, bool) {
	c := &Source{
		name:      s.name,
		proto:     s.proto,
		timeout:   s.timeout,
		hideCount: s.hideCount,
		logger:    s.logger,
	}
	if err := c.start(); err != nil {
		s.logger.Warn("lua source %s: clone: %v", s.name, err)
		return nil, false
	}
	return c, true
}
