package input

import (
	"testing"
	"time"

	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/renderer/backend"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name    string
		in      backend.Event
		wantKey key.Key
		wantMod key.Modifier
		wantR   rune
	}{
		{"rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'}, key.KeyRune, key.ModNone, 'x'},
		{"shift down", backend.Event{Type: backend.EventKey, Key: backend.KeyDown, Mod: backend.ModShift}, key.KeyDown, key.ModShift, 0},
		{"ctrl q", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q', Mod: backend.ModCtrl}, key.KeyRune, key.ModCtrl, 'q'},
		{"f2", backend.Event{Type: backend.EventKey, Key: backend.KeyF2}, key.KeyF2, key.ModNone, 0},
		{"backtab", backend.Event{Type: backend.EventKey, Key: backend.KeyBacktab, Mod: backend.ModShift}, key.KeyBacktab, key.ModShift, 0},
	}

	tr := NewTranslator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := tr.Translate(tt.in)
			if !ok || ev.Kind != EventKey {
				t.Fatalf("expected key event, got %v %v", ev.Kind, ok)
			}
			if ev.Key.Key != tt.wantKey || ev.Key.Modifiers != tt.wantMod || ev.Key.Rune != tt.wantR {
				t.Errorf("expected %s, got %s", key.Event{Key: tt.wantKey, Rune: tt.wantR, Modifiers: tt.wantMod}, ev.Key)
			}
			if ev.Key.Timestamp.IsZero() {
				t.Error("expected timestamp to be filled in")
			}
		})
	}
}

func TestTranslateMouseDrag(t *testing.T) {
	tr := NewTranslator(nil)
	now := time.Now()

	press, _ := tr.Translate(backend.Event{Type: backend.EventMouse, When: now, MouseX: 3, MouseY: 4, MouseButton: backend.MouseLeft})
	drag, _ := tr.Translate(backend.Event{Type: backend.EventMouse, When: now, MouseX: 3, MouseY: 9, MouseButton: backend.MouseLeft})
	release, _ := tr.Translate(backend.Event{Type: backend.EventMouse, When: now, MouseX: 3, MouseY: 9})

	if !press.Mouse.IsLeftPress() {
		t.Errorf("expected left press, got %s", press.Mouse.Action)
	}
	if !drag.Mouse.IsLeftDrag() {
		t.Errorf("expected left drag, got %s", drag.Mouse.Action)
	}
	if release.Mouse.Action != mouse.ActionRelease {
		t.Errorf("expected release, got %s", release.Mouse.Action)
	}
	if x, y := drag.MousePos(); x != 3 || y != 9 {
		t.Errorf("expected (3,9), got (%d,%d)", x, y)
	}
}

func TestTranslateFocusLossEndsDrag(t *testing.T) {
	tr := NewTranslator(nil)
	tr.Translate(backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft})
	tr.Translate(backend.Event{Type: backend.EventFocus, Focused: false})

	ev, _ := tr.Translate(backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseLeft})
	if !ev.Mouse.IsLeftPress() {
		t.Errorf("expected a fresh press after focus loss, got %s", ev.Mouse.Action)
	}
}

func TestTranslateIgnored(t *testing.T) {
	m := NewMetrics()
	tr := NewTranslator(m)

	if _, ok := tr.Translate(backend.Event{Type: backend.EventUser, Data: "x"}); ok {
		t.Error("expected user event to be ignored")
	}
	if _, ok := tr.Translate(backend.Event{Type: backend.EventKey, Key: backend.KeyNone}); ok {
		t.Error("expected unknown key to be ignored")
	}
	tr.Translate(backend.Event{Type: backend.EventResize, Width: 80, Height: 24})
	tr.Translate(backend.Event{Type: backend.EventKey, Key: backend.KeyEnter})

	snap := m.Snapshot()
	if snap.Ignored != 2 || snap.KeyEvents != 1 || snap.OtherEvents != 1 {
		t.Errorf("unexpected counters %+v", snap)
	}
}

func TestEventPredicates(t *testing.T) {
	ev := KeyEvent(key.NewSpecialEvent(key.KeyDown, key.ModShift))
	if !ev.IsKey(key.KeyDown, key.ModShift) || ev.IsPlainKey(key.KeyDown) {
		t.Error("unexpected key predicate result")
	}
	if !KeyEvent(key.NewRuneEvent('q', key.ModNone)).IsRune('q') {
		t.Error("expected IsRune('q')")
	}
	if KeyEvent(key.NewRuneEvent('q', key.ModCtrl)).IsRune('q') {
		t.Error("Ctrl+q is not the plain rune")
	}
	if ResizeEvent(1, 2).IsPlainKey(key.KeyNone) {
		t.Error("resize is not a key")
	}
}

func TestMetricsLatency(t *testing.T) {
	m := NewMetrics()
	for i := 1; i <= 100; i++ {
		m.RecordHandled(time.Duration(i) * time.Millisecond)
	}
	snap := m.Snapshot()
	if snap.PeakLatency != 100*time.Millisecond {
		t.Errorf("expected peak 100ms, got %v", snap.PeakLatency)
	}
	if snap.P99Latency != 100*time.Millisecond {
		t.Errorf("expected p99 100ms, got %v", snap.P99Latency)
	}
	if snap.AvgLatency != 50500*time.Microsecond {
		t.Errorf("expected avg 50.5ms, got %v", snap.AvgLatency)
	}

	m.Reset()
	if m.Snapshot().PeakLatency != 0 {
		t.Error("expected reset to clear peak")
	}

	var nilMetrics *Metrics
	nilMetrics.RecordHandled(time.Second)
	if nilMetrics.Snapshot().PeakLatency != 0 {
		t.Error("nil metrics must record nothing")
	}
}
