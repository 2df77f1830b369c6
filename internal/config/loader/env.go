package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is the prefix of every environment setting.
const EnvPrefix = "TABLEGRID_"

// EnvLoader reads settings from environment variables.
//
// Mapped variables go to their configured path. Any other prefixed
// variable maps by name: TABLEGRID_MOUSE_SCROLL_LINES becomes
// mouse.scrollLines.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix,
// trailing underscore included.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		environ: os.Environ,
	}
}

func defaultEnvMapping() map[string]string {
	return map[string]string{
		"TABLEGRID_DEBUG":          "table.debug",
		"TABLEGRID_NO_ROW_COUNT":   "table.noRowCount",
		"TABLEGRID_COLUMN_SPACING": "table.columnSpacing",
		"TABLEGRID_LOG_LEVEL":      "logging.level",
		"TABLEGRID_LOG_FILE":       "logging.file",
	}
}

// AddMapping maps envVar to a setting path.
func (l *EnvLoader) AddMapping(envVar, path string) {
	l.mapping[envVar] = path
}

func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}
	return config, nil
}

// envToPath converts TABLEGRID_TABLE_SCROLL_BY to table.scrollBy.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}
	name := strings.ToLower(parts[1])
	for _, p := range parts[2:] {
		if p != "" {
			name += strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		}
	}
	return strings.ToLower(parts[0]) + "." + name
}

// parseValue types an environment value: bool words, integers,
// durations, then plain strings.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return s
}

func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	cur := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}
