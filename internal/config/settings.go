package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/layout"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/table"
)

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"table": map[string]any{
			"columnSpacing":   int64(1),
			"flex":            "start",
			"noRowCount":      false,
			"debug":           false,
			"autoLayoutWidth": false,
			"layoutWidth":     int64(0),
			"scrollBy":        int64(0),
			"showRowFocus":    false,
			"showColumnFocus": false,
			"showCellFocus":   false,
			"showHeaderFocus": false,
			"showFooterFocus": false,
		},
		"theme": map[string]any{
			"header":       map[string]any{"bold": true, "underline": true},
			"footer":       map[string]any{"italic": true},
			"selectColumn": map[string]any{"bg": "#303030"},
			"selectCell":   map[string]any{"fg": "#000000", "bg": "#ffd75f"},
			"selectHeader": map[string]any{"bg": "#303030"},
			"selectFooter": map[string]any{"bg": "#303030"},
		},
		"mouse": map[string]any{
			"doubleClickMs":       int64(400),
			"doubleClickDistance": int64(0),
			"scrollLines":         int64(3),
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// TableSettings configure the table builder and state.
type TableSettings struct {
	ColumnSpacing   int
	Flex            layout.Flex
	NoRowCount      bool
	Debug           bool
	AutoLayoutWidth bool
	LayoutWidth     int
	ScrollBy        int

	ShowRowFocus    bool
	ShowColumnFocus bool
	ShowCellFocus   bool
	ShowHeaderFocus bool
	ShowFooterFocus bool
}

// MouseSettings configure double click and wheel handling.
type MouseSettings struct {
	DoubleClick         time.Duration
	DoubleClickDistance int
	ScrollLines         int
}

// LoggingSettings configure the logger.
type LoggingSettings struct {
	Level logging.Level
	// File receives the log. Empty discards it.
	File string
}

// Settings is the typed view of a Config.
type Settings struct {
	Table   TableSettings
	Theme   Theme
	Mouse   MouseSettings
	Logging LoggingSettings
}

// Settings resolves the merged configuration. Every failing setting is
// reported; the returned value holds defaults in their place.
func (c *Config) Settings() (Settings, error) {
	r := resolver{c: c}
	var s Settings

	s.Table.ColumnSpacing = max(r.getInt("table.columnSpacing", 1), 0)
	flexName := r.getString("table.flex", "start")
	if f, ok := layout.ParseFlex(flexName); ok {
		s.Table.Flex = f
	} else {
		r.fail(fmt.Errorf("table.flex: unknown flex %q", flexName))
	}
	s.Table.NoRowCount = r.getBool("table.noRowCount")
	s.Table.Debug = r.getBool("table.debug")
	s.Table.AutoLayoutWidth = r.getBool("table.autoLayoutWidth")
	s.Table.LayoutWidth = max(r.getInt("table.layoutWidth", 0), 0)
	s.Table.ScrollBy = max(r.getInt("table.scrollBy", 0), 0)
	s.Table.ShowRowFocus = r.getBool("table.showRowFocus")
	s.Table.ShowColumnFocus = r.getBool("table.showColumnFocus")
	s.Table.ShowCellFocus = r.getBool("table.showCellFocus")
	s.Table.ShowHeaderFocus = r.getBool("table.showHeaderFocus")
	s.Table.ShowFooterFocus = r.getBool("table.showFooterFocus")

	theme, err := parseTheme(c)
	if err != nil {
		r.fail(err)
	}
	s.Theme = theme

	if d, err := c.GetDuration("mouse.doubleClickMs"); err == nil {
		s.Mouse.DoubleClick = d
	} else {
		if !errors.Is(err, ErrSettingNotFound) {
			r.fail(err)
		}
		s.Mouse.DoubleClick = 400 * time.Millisecond
	}
	s.Mouse.DoubleClickDistance = max(r.getInt("mouse.doubleClickDistance", 0), 0)
	s.Mouse.ScrollLines = max(r.getInt("mouse.scrollLines", 3), 1)

	s.Logging.Level = logging.ParseLevel(r.getString("logging.level", "info"))
	s.Logging.File = r.getString("logging.file", "")

	return s, errors.Join(r.errs...)
}

// resolver collects setting errors, substituting defaults.
type resolver struct {
	c    *Config
	errs []error
}

func (r *resolver) fail(err error) {
	r.errs = append(r.errs, err)
}

func (r *resolver) getInt(path string, def int) int {
	v, err := r.c.GetInt(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			r.fail(err)
		}
		return def
	}
	return v
}

func (r *resolver) getBool(path string) bool {
	v, err := r.c.GetBool(path)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		r.fail(err)
	}
	return v
}

func (r *resolver) getString(path, def string) string {
	v, err := r.c.GetString(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			r.fail(err)
		}
		return def
	}
	return v
}

// MouseConfig converts the mouse settings for the table state.
func (s Settings) MouseConfig() mouse.Config {
	cfg := mouse.DefaultConfig()
	cfg.DoubleClickTime = s.Mouse.DoubleClick
	cfg.DoubleClickDistance = s.Mouse.DoubleClickDistance
	cfg.ScrollLines = s.Mouse.ScrollLines
	return cfg
}

// TableStyles converts the theme and focus flags into table styles.
func (s Settings) TableStyles() table.Styles {
	st := s.Theme.Styles()
	st.ShowRowFocus = s.Table.ShowRowFocus
	st.ShowColumnFocus = s.Table.ShowColumnFocus
	st.ShowCellFocus = s.Table.ShowCellFocus
	st.ShowHeaderFocus = s.Table.ShowHeaderFocus
	st.ShowFooterFocus = s.Table.ShowFooterFocus
	return st
}

// Apply configures a table builder.
func (s Settings) Apply(t *table.Table) *table.Table {
	return t.ColumnSpacing(s.Table.ColumnSpacing).
		Flex(s.Table.Flex).
		NoRowCount(s.Table.NoRowCount).
		Debug(s.Table.Debug).
		AutoLayoutWidth(s.Table.AutoLayoutWidth).
		LayoutWidth(s.Table.LayoutWidth).
		Styles(s.TableStyles())
}

// ApplyState configures a table state.
func (s Settings) ApplyState(st *table.State) {
	st.SetRowScrollBy(s.Table.ScrollBy)
	st.SetMouseConfig(s.MouseConfig())
}
