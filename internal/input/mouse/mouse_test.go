package mouse

import (
	"testing"
	"time"

	"github.com/dshills/tablegrid/internal/input/key"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonScrollUp, "scroll-up"},
		{ButtonScrollRight, "scroll-right"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestButtonIsScroll(t *testing.T) {
	for _, b := range []Button{ButtonScrollUp, ButtonScrollDown, ButtonScrollLeft, ButtonScrollRight} {
		if !b.IsScroll() {
			t.Errorf("%s.IsScroll() = false, want true", b)
		}
	}
	for _, b := range []Button{ButtonNone, ButtonLeft, ButtonMiddle, ButtonRight} {
		if b.IsScroll() {
			t.Errorf("%s.IsScroll() = true, want false", b)
		}
	}
}

func TestPositionDistance(t *testing.T) {
	a := Position{X: 1, Y: 1}
	if d := a.Distance(Position{X: 4, Y: -1}); d != 5 {
		t.Errorf("expected distance 5, got %d", d)
	}
	if !a.Equal(Position{X: 1, Y: 1}) {
		t.Error("expected equal positions")
	}
}

func TestDecoderSequence(t *testing.T) {
	dec := NewDecoder()
	now := time.Now()

	steps := []struct {
		name       string
		x, y       int
		button     Button
		wantAction Action
		wantButton Button
	}{
		{"move", 1, 1, ButtonNone, ActionMove, ButtonNone},
		{"press", 2, 3, ButtonLeft, ActionPress, ButtonLeft},
		{"drag", 2, 5, ButtonLeft, ActionDrag, ButtonLeft},
		{"drag again", 4, 6, ButtonLeft, ActionDrag, ButtonLeft},
		{"release", 4, 6, ButtonNone, ActionRelease, ButtonLeft},
		{"move after", 5, 6, ButtonNone, ActionMove, ButtonNone},
		{"wheel", 5, 6, ButtonScrollDown, ActionPress, ButtonScrollDown},
	}

	for _, s := range steps {
		ev := dec.Decode(s.x, s.y, s.button, key.ModNone, now)
		if ev.Action != s.wantAction {
			t.Errorf("%s: expected action %s, got %s", s.name, s.wantAction, ev.Action)
		}
		if ev.Button != s.wantButton {
			t.Errorf("%s: expected button %s, got %s", s.name, s.wantButton, ev.Button)
		}
	}
}

func TestDecoderDragState(t *testing.T) {
	dec := NewDecoder()
	now := time.Now()

	dec.Decode(2, 2, ButtonLeft, key.ModNone, now)
	dec.Decode(5, 7, ButtonLeft, key.ModNone, now)

	st := dec.State()
	if !st.Active || st.Button != ButtonLeft {
		t.Fatalf("expected active left drag, got %+v", st)
	}
	if d := st.Delta(); d.X != 3 || d.Y != 5 {
		t.Errorf("expected delta (3,5), got (%d,%d)", d.X, d.Y)
	}

	dec.Reset()
	if dec.State().Active {
		t.Error("expected reset to end the drag")
	}
}

func TestDecoderButtonChangeIsPress(t *testing.T) {
	dec := NewDecoder()
	now := time.Now()

	dec.Decode(0, 0, ButtonLeft, key.ModNone, now)
	ev := dec.Decode(0, 0, ButtonRight, key.ModNone, now)
	if ev.Action != ActionPress || ev.Button != ButtonRight {
		t.Errorf("expected right press, got %s %s", ev.Button, ev.Action)
	}
}

func TestDoubleClick(t *testing.T) {
	cfg := DefaultConfig()
	base := time.Now()
	pos := Position{X: 10, Y: 4}

	tests := []struct {
		name   string
		second func(dc *DoubleClick) bool
		want   bool
	}{
		{"same cell in time", func(dc *DoubleClick) bool {
			return dc.Press(1, 2, pos, base.Add(100*time.Millisecond))
		}, true},
		{"too slow", func(dc *DoubleClick) bool {
			return dc.Press(1, 2, pos, base.Add(time.Second))
		}, false},
		{"other cell", func(dc *DoubleClick) bool {
			return dc.Press(1, 3, pos, base.Add(100*time.Millisecond))
		}, false},
		{"moved", func(dc *DoubleClick) bool {
			return dc.Press(1, 2, Position{X: 11, Y: 4}, base.Add(100*time.Millisecond))
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := NewDoubleClick(cfg)
			if dc.Press(1, 2, pos, base) {
				t.Fatal("first press must not be a double click")
			}
			if got := tt.second(dc); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDoubleClickThirdPressStartsOver(t *testing.T) {
	dc := NewDoubleClick(DefaultConfig())
	base := time.Now()
	pos := Position{}

	dc.Press(0, 0, pos, base)
	if !dc.Press(0, 0, pos, base.Add(50*time.Millisecond)) {
		t.Fatal("expected double click")
	}
	if dc.Press(0, 0, pos, base.Add(100*time.Millisecond)) {
		t.Error("third press must start a new sequence")
	}
	if !dc.Press(0, 0, pos, base.Add(150*time.Millisecond)) {
		t.Error("fourth press should complete the next double click")
	}
}

func TestDoubleClickAfterOtherCell(t *testing.T) {
	dc := NewDoubleClick(DefaultConfig())
	base := time.Now()
	pos := Position{}

	dc.Press(0, 0, pos, base)
	dc.Press(0, 1, pos, base.Add(10*time.Millisecond))
	if !dc.Press(0, 1, pos, base.Add(20*time.Millisecond)) {
		t.Error("expected double click on the second cell")
	}
}

func TestParseScrollEvent(t *testing.T) {
	cfg := DefaultConfig()

	ev := Event{Button: ButtonScrollDown, Action: ActionPress}
	se := ParseScrollEvent(ev, cfg)
	if se == nil || se.Direction != ScrollDown || se.Lines != 3 || !se.IsVertical() {
		t.Fatalf("unexpected scroll event %+v", se)
	}

	ev.Modifiers = key.ModShift
	if se := ParseScrollEvent(ev, cfg); se.Lines != 1 {
		t.Errorf("expected shift to scroll 1 line, got %d", se.Lines)
	}

	ev = Event{Button: ButtonScrollLeft, Action: ActionPress}
	if se := ParseScrollEvent(ev, cfg); !se.IsHorizontal() {
		t.Error("expected horizontal scroll")
	}

	if se := ParseScrollEvent(Event{Button: ButtonLeft, Action: ActionPress}, cfg); se != nil {
		t.Error("expected nil for non-wheel button")
	}
}
