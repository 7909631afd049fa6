// Package elastic implements the gesture and height-state engine
// behind pull-to-update and pull-to-load list interactions.
//
// The engine owns two decorations: an [UpdateHeader] revealed by
// pulling down from the top of a scrollable list, and a [LoadFooter]
// revealed by pulling up from the bottom. Raw vertical drag deltas are
// interpreted by an [Arbiter], which applies elastic damping, enforces
// mutual exclusion between the two decorations, and fires the
// update/load actions. A completed action springs the decoration back
// to rest via [animation.Springback].
//
// # Wiring
//
// The engine draws no pixels and owns no views. A host adapter binds it
// to a concrete list implementation through the narrow [Host]
// capability interface, feeds touch events into the controller, and
// repaints using the decoration heights:
//
//	loop := runloop.New()
//	ctrl, err := elastic.NewController(host, loop, nil)
//	if err != nil { ... }
//	ctrl.UpdateHeader().SetContent(elastic.FixedContent(56))
//	ctrl.SetOnUpdate(func() {
//	    go func() {
//	        refresh()
//	        ctrl.NotifyUpdated() // safe from any goroutine
//	    }()
//	})
//	cancel := ctrl.StartFrames(loop, 16*time.Millisecond)
//
// All controller methods except NotifyUpdated and NotifyLoaded must be
// called on the engine's run-loop context. The notify methods enqueue
// onto it and are safe from any goroutine.
//
// # Caller obligations
//
// The engine waits indefinitely for NotifyUpdated/NotifyLoaded: a
// listener that never notifies leaves its decoration permanently
// active. There is no retry or failure tracking inside the engine;
// update/load failures are entirely the listener's responsibility.
package elastic
