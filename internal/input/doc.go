// Package input converts backend events into the events the table
// widgets handle.
//
// Key presses become key.Event values with a normalized modifier set.
// Mouse samples go through a mouse.Decoder so widgets see press, drag
// and release actions instead of raw button state.
//
//	tr := input.NewTranslator(input.NewMetrics())
//	for {
//	    ev, ok := tr.Translate(be.PollEvent())
//	    if !ok {
//	        continue
//	    }
//	    state.HandleEvent(ev)
//	}
package input
