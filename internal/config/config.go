package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dshills/tablegrid/internal/config/loader"
)

// Layer names, lowest priority first.
const (
	LayerDefaults = "defaults"
	LayerFile     = "file"
	LayerEnv      = "env"
	LayerFlags    = "flags"
)

type layer struct {
	name string
	data map[string]any
}

// Config holds layered settings. Higher layers override lower ones key
// by key: defaults, the settings file, the environment, then values set
// from command line flags.
type Config struct {
	mu sync.RWMutex

	fs   loader.FileSystem
	path string
	env  loader.Loader

	layers []layer
	flags  map[string]any
	merged map[string]any
}

// Option configures a Config.
type Option func(*Config)

// WithPath sets the settings file. The format follows the extension.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFS sets the file system the settings file is read from.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnv sets the environment loader. nil disables the env layer.
func WithEnv(l loader.Loader) Option {
	return func(c *Config) {
		c.env = l
	}
}

// New creates a Config holding only the defaults. Call Load to read the
// file and the environment.
func New(opts ...Option) *Config {
	c := &Config{
		fs:    loader.DefaultFS(),
		env:   loader.NewEnvLoader(loader.EnvPrefix),
		flags: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.layers = []layer{{name: LayerDefaults, data: Defaults()}}
	c.merge()
	return c
}

// Path returns the settings file path, empty when there is none.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Load reads every layer again. On error the previous settings stay.
func (c *Config) Load() error {
	layers := []layer{{name: LayerDefaults, data: Defaults()}}

	c.mu.RLock()
	path, fsys, env := c.path, c.fs, c.env
	c.mu.RUnlock()

	if path != "" {
		data, err := loader.ForPath(fsys, path).Load()
		if err != nil {
			return err
		}
		if data != nil {
			layers = append(layers, layer{name: LayerFile, data: data})
		}
	}
	if env != nil {
		data, err := env.Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		layers = append(layers, layer{name: LayerEnv, data: data})
	}

	c.mu.Lock()
	c.layers = layers
	c.merge()
	c.mu.Unlock()
	return nil
}

// merge rebuilds the merged view. Callers hold the write lock.
func (c *Config) merge() {
	merged := make(map[string]any)
	for _, l := range c.layers {
		merged = loader.DeepMerge(merged, l.data)
	}
	c.merged = loader.DeepMerge(merged, c.flags)
}

// Layers returns the names of the loaded layers, lowest first.
func (c *Config) Layers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.layers)+1)
	for _, l := range c.layers {
		names = append(names, l.name)
	}
	if len(c.flags) > 0 {
		names = append(names, LayerFlags)
	}
	return names
}

// Set overrides a setting above every other layer. The override
// survives Load.
func (c *Config) Set(path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.flags
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
	c.merge()
	return nil
}

// Merged returns a copy of the merged settings.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Clone(c.merged)
}

// Get returns the merged value at a dotted path.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.merged, path)
}

func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			break
		}
		return int(val), nil
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetDuration accepts durations, duration strings, and integers as
// milliseconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case int64:
		return time.Duration(val) * time.Millisecond, nil
	case int:
		return time.Duration(val) * time.Millisecond, nil
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d, nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
}

func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}
	var cur any = m
	for _, part := range parts {
		cm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
