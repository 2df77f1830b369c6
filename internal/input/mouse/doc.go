// Package mouse turns raw terminal mouse samples into press, drag and
// release events and tracks double clicks on table cells.
//
// Terminals report the current button state rather than transitions.
// The Decoder remembers the held button and derives the action:
//
//	dec := mouse.NewDecoder()
//	ev := dec.Decode(x, y, mouse.ButtonLeft, key.ModNone, when)
//	// ev.Action == mouse.ActionPress on the first sample,
//	// mouse.ActionDrag while the button stays down.
//
// DoubleClick reports a second press on the same cell within the
// configured time:
//
//	dc := mouse.NewDoubleClick(mouse.DefaultConfig())
//	if dc.Press(col, row, ev.Position, ev.Timestamp) {
//	    // open the editor
//	}
package mouse
