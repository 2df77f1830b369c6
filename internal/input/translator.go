package input

import (
	"time"

	"github.com/dshills/tablegrid/internal/input/key"
	"github.com/dshills/tablegrid/internal/input/mouse"
	"github.com/dshills/tablegrid/internal/renderer/backend"
)

// Translator converts backend events into widget events. It owns the
// mouse decoder, so one Translator must see every backend event in order.
type Translator struct {
	decoder *mouse.Decoder
	metrics *Metrics
}

// NewTranslator creates a translator. metrics may be nil.
func NewTranslator(metrics *Metrics) *Translator {
	return &Translator{decoder: mouse.NewDecoder(), metrics: metrics}
}

// Translate converts ev. The second result is false for events the
// widgets have no use for, such as user events.
func (t *Translator) Translate(ev backend.Event) (Event, bool) {
	var out Event
	switch ev.Type {
	case backend.EventKey:
		k := mapBackendKey(ev.Key)
		if k == key.KeyNone {
			t.metrics.recordIgnored()
			return Event{}, false
		}
		out = KeyEvent(key.Event{
			Key:       k,
			Rune:      ev.Rune,
			Modifiers: mapBackendMods(ev.Mod),
			Timestamp: stamp(ev.When),
		})

	case backend.EventMouse:
		m := t.decoder.Decode(ev.MouseX, ev.MouseY,
			mapMouseButton(ev.MouseButton), mapBackendMods(ev.Mod), stamp(ev.When))
		out = MouseEvent(m)

	case backend.EventResize:
		out = ResizeEvent(ev.Width, ev.Height)

	case backend.EventFocus:
		if !ev.Focused {
			t.decoder.Reset()
		}
		out = Event{Kind: EventFocus, Focused: ev.Focused}

	default:
		t.metrics.recordIgnored()
		return Event{}, false
	}
	t.metrics.recordEvent(out.Kind)
	return out, true
}

func stamp(when time.Time) time.Time {
	if when.IsZero() {
		return time.Now()
	}
	return when
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyRune:
		return key.KeyRune
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBacktab:
		return key.KeyBacktab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyInsert:
		return key.KeyInsert
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	}
	if bk >= backend.KeyF1 && bk <= backend.KeyF12 {
		return key.KeyF1 + key.Key(bk-backend.KeyF1)
	}
	return key.KeyNone
}

func mapBackendMods(m backend.ModMask) key.Modifier {
	mods := key.ModNone
	if m.Has(backend.ModCtrl) {
		mods |= key.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mods |= key.ModAlt
	}
	if m.Has(backend.ModShift) {
		mods |= key.ModShift
	}
	if m.Has(backend.ModMeta) {
		mods |= key.ModMeta
	}
	return mods
}

func mapMouseButton(b backend.MouseButton) mouse.Button {
	switch b {
	case backend.MouseLeft:
		return mouse.ButtonLeft
	case backend.MouseMiddle:
		return mouse.ButtonMiddle
	case backend.MouseRight:
		return mouse.ButtonRight
	case backend.MouseWheelUp:
		return mouse.ButtonScrollUp
	case backend.MouseWheelDown:
		return mouse.ButtonScrollDown
	case backend.MouseWheelLeft:
		return mouse.ButtonScrollLeft
	case backend.MouseWheelRight:
		return mouse.ButtonScrollRight
	default:
		return mouse.ButtonNone
	}
}
