package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// Theme holds the parsed theme section. A nil entry is unset.
type Theme struct {
	Style        core.Style
	Header       *core.Style
	Footer       *core.Style
	SelectRow    *core.Style
	SelectColumn *core.Style
	SelectCell   *core.Style
	SelectHeader *core.Style
	SelectFooter *core.Style
	Focus        *core.Style
}

// focusBlend is how far an unset focus style moves the row selection
// background towards white.
const focusBlend = 0.25

// Styles converts the theme into table styles. Without a focus entry,
// a row selection with a background gets a lighter focus variant.
func (t Theme) Styles() table.Styles {
	st := table.Styles{
		Style:        t.Style,
		Header:       t.Header,
		Footer:       t.Footer,
		SelectRow:    t.SelectRow,
		SelectColumn: t.SelectColumn,
		SelectCell:   t.SelectCell,
		SelectHeader: t.SelectHeader,
		SelectFooter: t.SelectFooter,
		Focus:        t.Focus,
	}
	if st.Focus == nil && t.SelectRow != nil && !t.SelectRow.Background.IsDefault() {
		f := core.DefaultStyle().WithBackground(t.SelectRow.Background.Blend(core.ColorWhite, focusBlend))
		st.Focus = &f
	}
	return st
}

func parseTheme(c *Config) (Theme, error) {
	th := Theme{Style: core.DefaultStyle()}
	v, ok := c.Get("theme")
	if !ok {
		return th, nil
	}
	section, ok := v.(map[string]any)
	if !ok {
		return th, &TypeError{Path: "theme", Expected: "map", Actual: typeName(v)}
	}

	targets := map[string]**core.Style{
		"header":       &th.Header,
		"footer":       &th.Footer,
		"selectRow":    &th.SelectRow,
		"selectColumn": &th.SelectColumn,
		"selectCell":   &th.SelectCell,
		"selectHeader": &th.SelectHeader,
		"selectFooter": &th.SelectFooter,
		"focus":        &th.Focus,
	}

	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		s, err := ParseStyle(section[k])
		if err != nil {
			errs = append(errs, &StyleError{Path: "theme." + k, Err: err})
			continue
		}
		if k == "style" {
			th.Style = s
			continue
		}
		dst, ok := targets[k]
		if !ok {
			errs = append(errs, &StyleError{Path: "theme." + k, Err: errors.New("unknown theme entry")})
			continue
		}
		*dst = &s
	}
	return th, errors.Join(errs...)
}

// ParseStyle converts a theme entry {fg, bg, bold, italic, underline,
// reverse, dim} into a style. Colors are #rgb, #rrggbb or "default".
func ParseStyle(v any) (core.Style, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return core.Style{}, fmt.Errorf("expected a table, got %s", typeName(v))
	}
	s := core.DefaultStyle()
	for k, val := range m {
		switch k {
		case "fg", "bg":
			str, ok := val.(string)
			if !ok {
				return core.Style{}, fmt.Errorf("%s: expected a color string, got %s", k, typeName(val))
			}
			col, err := core.ColorFromHex(str)
			if err != nil {
				return core.Style{}, fmt.Errorf("%s: %w", k, err)
			}
			if k == "fg" {
				s.Foreground = col
			} else {
				s.Background = col
			}
		case "bold", "italic", "underline", "reverse", "dim":
			on, ok := val.(bool)
			if !ok {
				return core.Style{}, fmt.Errorf("%s: expected a bool, got %s", k, typeName(val))
			}
			if on {
				s.Attributes |= attributes[k]
			}
		default:
			return core.Style{}, fmt.Errorf("unknown style key %q", k)
		}
	}
	return s, nil
}

var attributes = map[string]core.Attribute{
	"bold":      core.AttrBold,
	"italic":    core.AttrItalic,
	"underline": core.AttrUnderline,
	"reverse":   core.AttrReverse,
	"dim":       core.AttrDim,
}
