package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/tablegrid/internal/config/watcher"
	"github.com/dshills/tablegrid/internal/input"
	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/renderer/backend"
	"github.com/dshills/tablegrid/internal/table"
)

// eventLoop is the main application loop. Every handled event and
// every settings reload ends with a frame.
func (app *Application) eventLoop() error {
	events := app.startInputPolling()

	var (
		reloads   <-chan watcher.Event
		watchErrs <-chan error
	)
	if app.watcher != nil {
		reloads = app.watcher.Events()
		watchErrs = app.watcher.Errors()
	}

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			start := time.Now()
			tev, ok := app.translator.Translate(ev)
			if !ok {
				continue
			}
			if err := app.HandleEvent(tev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			app.draw()
			app.metrics.RecordHandled(time.Since(start))

		case ev, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			app.reload(ev)
			app.draw()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.logger.Warn("config watcher: %v", err)
		}
	}
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking, so this goroutine may not exit immediately
// on shutdown. Run shuts the backend down, which unblocks PollEvent.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for app.running.Load() {
			ev := app.backend.PollEvent()

			// may have been signaled during the blocking poll
			if !app.running.Load() {
				return
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			default:
				app.logger.Debug("input queue full, dropping %v event", ev.Type)
			}
		}
	}()

	return events
}

// HandleEvent routes ev to the application keys and then to the active
// view. It returns ErrQuit when the application should exit. View
// errors are reported in the status line.
func (app *Application) HandleEvent(ev input.Event) error {
	switch ev.Kind {
	case input.EventResize:
		app.resize(ev.Width, ev.Height)
		return nil
	case input.EventFocus:
		if v := app.views[app.active]; !v.Editing() {
			v.State().Focus = ev.Focused
		}
		return nil
	}

	v := app.views[app.active]
	if ev.Kind == input.EventKey {
		if handled, err := app.handleKey(ev.Key, v.Editing()); handled {
			return app.report(err)
		}
	}

	o, err := v.HandleEvent(ev)
	if err != nil {
		return app.report(&OperationError{Op: "edit", Target: v.Name(), Err: err})
	}
	if o == table.Changed && !v.Editing() {
		app.status = ""
	}
	return nil
}

// handleKey handles the application keys. While a view edits only
// Ctrl+Q is taken.
func (app *Application) handleKey(k key.Event, editing bool) (bool, error) {
	if k.IsCtrlRune('q') {
		return true, ErrQuit
	}
	if editing {
		return false, nil
	}

	switch {
	case k.IsChar() && k.Rune == 'q':
		return true, ErrQuit
	case k.IsPlain(key.KeyTab):
		app.cycleView(1)
		return true, nil
	case k.IsPlain(key.KeyBacktab), k.Is(key.KeyBacktab, key.ModShift):
		app.cycleView(-1)
		return true, nil
	case k.IsPlain(key.KeyF12):
		return true, app.toggleDebug()
	case k.IsCtrlRune('e'):
		return true, app.exportToJSON()
	case k.IsChar() && k.Rune >= '1' && k.Rune <= '9':
		i := int(k.Rune - '1')
		if i >= len(app.views) {
			return false, nil
		}
		app.active = i
		app.focusActive()
		return true, nil
	}
	return false, nil
}

// report shows err in the status line. Only ErrQuit is passed on.
func (app *Application) report(err error) error {
	if err == nil || errors.Is(err, ErrQuit) {
		return err
	}
	app.logger.Warn("%v", err)
	app.status = err.Error()
	return nil
}

func (app *Application) toggleDebug() error {
	on := !app.settings.Table.Debug
	if err := app.config.Set("table.debug", on); err != nil {
		return err
	}
	if err := app.applySettings(); err != nil {
		return &OperationError{Op: "apply", Target: "settings", Err: err}
	}
	if on {
		app.status = "diagnostics on"
	} else {
		app.status = "diagnostics off"
	}
	return nil
}

// exportToJSON replaces the json view document with the records and
// shows it.
func (app *Application) exportToJSON() error {
	rows := app.records.Records()
	doc, err := exportRecords(rows)
	if err != nil {
		return &OperationError{Op: "export", Target: app.records.Name(), Err: err}
	}
	if err := app.json.Replace(doc); err != nil {
		return &OperationError{Op: "export", Target: app.json.Name(), Err: err}
	}
	if err := app.SetActiveView(app.json.Name()); err != nil {
		return err
	}
	app.status = fmt.Sprintf("exported %d records", len(rows))
	return nil
}

// applySettings resolves the settings again and pushes them into every
// view. Failing settings keep their defaults and are returned.
func (app *Application) applySettings() error {
	s, err := app.config.Settings()
	app.settings = s
	app.logger.SetLevel(s.Logging.Level)
	app.configureViews()
	app.focusActive()
	return err
}

// reload reads the settings file after a change. A file that fails to
// parse keeps the previous settings.
func (app *Application) reload(ev watcher.Event) {
	app.logger.Info("config %s: %s", ev.Op, ev.Path)
	if err := app.config.Load(); err != nil {
		_ = app.report(&OperationError{Op: "reload", Target: ev.Path, Err: err})
		return
	}
	if err := app.applySettings(); err != nil {
		_ = app.report(&OperationError{Op: "reload", Target: ev.Path, Err: err})
		return
	}
	app.status = "settings reloaded"
}
