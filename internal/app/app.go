// Package app provides the main application structure and coordination
// for the tablegrid viewer. It wires the configuration, the terminal
// backend and the table views together and runs the event loop.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/tablegrid/internal/config"
	"github.com/dshills/tablegrid/internal/config/watcher"
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/logging"
	"github.com/dshills/tablegrid/internal/renderer/backend"
	"github.com/dshills/tablegrid/internal/renderer/buffer"
	"github.com/dshills/tablegrid/internal/renderer/core"
	"github.com/dshills/tablegrid/internal/table"
)

// Application is the central coordinator. It owns the views and runs
// the main event loop.
type Application struct {
	mu sync.Mutex

	// Configuration
	config   *config.Config
	settings config.Settings
	watcher  *watcher.Watcher

	// Logging
	logger  *logging.Logger
	logFile io.Closer

	// Terminal
	backend    backend.Backend
	translator *input.Translator
	metrics    *input.Metrics
	frame      *buffer.Buffer
	prev       *buffer.Buffer

	// Views
	views   []view
	active  int
	records *recordsView
	json    *jsonView
	status  string

	// State
	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the settings file.
	ConfigPath string
	// Watch reloads the settings file when it changes.
	Watch bool
	// Debug enables table diagnostics.
	Debug bool
	// LogLevel overrides logging.level.
	LogLevel string
	// JSONPath is the document of the json view.
	JSONPath string
	// LuaPath is the script of the script view.
	LuaPath string
	// View names the view shown first.
	View string
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: input.NewMetrics(),
		frame:   buffer.New(core.Rect{}),
		prev:    buffer.New(core.Rect{}),
		logger:  logging.Null(),
	}
	app.translator = input.NewTranslator(app.metrics)

	if err := app.bootstrap(); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config. A broken file or setting is not fatal, defaults stand in.
	app.config = config.New(config.WithPath(app.opts.ConfigPath))
	loadErr := app.config.Load()
	if app.opts.Debug {
		_ = app.config.Set("table.debug", true)
	}
	if app.opts.LogLevel != "" {
		_ = app.config.Set("logging.level", app.opts.LogLevel)
	}
	settings, settingsErr := app.config.Settings()
	app.settings = settings

	// 2. Logging
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	if loadErr != nil {
		app.logger.Warn("config: %v", loadErr)
		app.status = "config: " + loadErr.Error()
	}
	if settingsErr != nil {
		app.logger.Warn("settings: %v", settingsErr)
		app.status = "settings: " + settingsErr.Error()
	}

	// 3. Views
	if err := app.initViews(); err != nil {
		return err
	}
	if app.opts.View != "" {
		if err := app.SetActiveView(app.opts.View); err != nil {
			return &InitError{Component: "views", Err: err}
		}
	}
	app.focusActive()

	// 4. Watcher. Failing to watch only loses live reload.
	if app.opts.Watch && app.config.Path() != "" {
		if err := app.initWatcher(); err != nil {
			app.logger.Warn("config watcher: %v", err)
		}
	}
	return nil
}

func (app *Application) initLogger() error {
	file := app.settings.Logging.File
	if file == "" {
		return nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	app.logFile = f
	app.logger = logging.New(logging.Config{
		Level:  app.settings.Logging.Level,
		Output: f,
		Prefix: "tablegrid",
	})
	logging.SetDefault(app.logger)
	return nil
}

func (app *Application) initViews() error {
	script, err := openScript(app.opts.LuaPath, app.logger.WithComponent("luasrc"))
	if err != nil {
		return &InitError{Component: "script view", Err: err}
	}
	js, err := openJSON(app.opts.JSONPath)
	if err != nil {
		script.Close()
		return &InitError{Component: "json view", Err: err}
	}
	app.records = newRecordsView(sampleRecords())
	app.json = js
	app.views = []view{newHugeView(hugeRows), app.records, script, js, newKeysView()}
	app.configureViews()
	return nil
}

func (app *Application) initWatcher() error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	if err := w.Watch(app.config.Path()); err != nil {
		_ = w.Close()
		return err
	}
	app.watcher = w
	return nil
}

// configureViews pushes the current settings into every view.
func (app *Application) configureViews() {
	for _, v := range app.views {
		v.Configure(app.settings, app.logger.WithComponent(v.Name()))
	}
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until quit or Shutdown.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	app.backend.HideCursor()

	app.resize(app.backend.Size())
	app.draw()

	return app.eventLoop()
}

// IsRunning returns true if the main loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown stops the main loop and releases every resource. It is safe
// to call more than once.
func (app *Application) Shutdown() {
	app.close()
}

func (app *Application) close() {
	app.closeOnce.Do(func() {
		close(app.done)
		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		for _, v := range app.views {
			v.Close()
		}
		if app.logFile != nil {
			logging.SetDefault(logging.Null())
			_ = app.logFile.Close()
		}
	})
}

// Settings returns the settings in effect.
func (app *Application) Settings() config.Settings {
	return app.settings
}

// Metrics returns the input metrics.
func (app *Application) Metrics() *input.Metrics {
	return app.metrics
}

// Status returns the message shown in the status line.
func (app *Application) Status() string {
	return app.status
}

// ViewNames returns the view names in tab order.
func (app *Application) ViewNames() []string {
	names := make([]string, len(app.views))
	for i, v := range app.views {
		names[i] = v.Name()
	}
	return names
}

// ActiveView returns the name of the view shown.
func (app *Application) ActiveView() string {
	return app.views[app.active].Name()
}

// SetActiveView shows the view called name.
func (app *Application) SetActiveView(name string) error {
	for i, v := range app.views {
		if v.Name() == name {
			app.active = i
			app.focusActive()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownView, name)
}

func (app *Application) cycleView(step int) {
	n := len(app.views)
	app.active = ((app.active+step)%n + n) % n
	app.focusActive()
}

// focusActive gives input focus to the active view only. A view that
// is editing keeps the focus on its editor.
func (app *Application) focusActive() {
	for i, v := range app.views {
		if !v.Editing() {
			v.State().Focus = i == app.active
		}
	}
}

// ViewStats is the scroll bookkeeping of one view after its last render.
type ViewStats struct {
	Name string
	table.Stats
}

// Stats returns the scroll bookkeeping of every view.
func (app *Application) Stats() []ViewStats {
	out := make([]ViewStats, len(app.views))
	for i, v := range app.views {
		out[i] = ViewStats{Name: v.Name(), Stats: v.State().Stats()}
	}
	return out
}
