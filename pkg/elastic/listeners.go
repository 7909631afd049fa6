package elastic

import "github.com/go-elastic/elasticlist/pkg/errors"

// OnUpdateListener handles the update action. It is invoked
// synchronously on the engine context; the listener should hand off to
// a worker and eventually call [Controller.NotifyUpdated].
type OnUpdateListener func()

// OnLoadListener handles the load action. It is invoked synchronously
// on the engine context; the listener should hand off to a worker and
// eventually call [Controller.NotifyLoaded].
type OnLoadListener func()

// UpdateStateListener observes the update header's state transitions.
// The callbacks are purely observational hints for visual feedback and
// have no effect on the engine.
type UpdateStateListener interface {
	// OnPullingDown fires when the header becomes visible, or shrinks
	// back below its content height before release.
	OnPullingDown()
	// OnWillRelease fires when the header grows past its content
	// height, meaning a release would start an update.
	OnWillRelease()
	// OnUpdating fires when the update action starts.
	OnUpdating()
	// OnDidUpdate fires when the update action completes.
	OnDidUpdate()
}

// LoadStateListener observes the load footer's state transitions.
type LoadStateListener interface {
	// OnPullingUp fires when the footer becomes visible, or shrinks
	// back below its content height before release.
	OnPullingUp()
	// OnWillRelease fires when the footer grows past its content
	// height, meaning a release would start a load.
	OnWillRelease()
	// OnLoading fires when the load action starts.
	OnLoading()
	// OnDidLoad fires when the load action completes.
	OnDidLoad()
}

// UpdateStateFuncs adapts optional callbacks to UpdateStateListener.
// Nil fields are skipped.
type UpdateStateFuncs struct {
	PullingDown func()
	WillRelease func()
	Updating    func()
	DidUpdate   func()
}

func (f UpdateStateFuncs) OnPullingDown() { call(f.PullingDown) }
func (f UpdateStateFuncs) OnWillRelease() { call(f.WillRelease) }
func (f UpdateStateFuncs) OnUpdating()    { call(f.Updating) }
func (f UpdateStateFuncs) OnDidUpdate()   { call(f.DidUpdate) }

// LoadStateFuncs adapts optional callbacks to LoadStateListener.
// Nil fields are skipped.
type LoadStateFuncs struct {
	PullingUp   func()
	WillRelease func()
	Loading     func()
	DidLoad     func()
}

func (f LoadStateFuncs) OnPullingUp()   { call(f.PullingUp) }
func (f LoadStateFuncs) OnWillRelease() { call(f.WillRelease) }
func (f LoadStateFuncs) OnLoading()     { call(f.Loading) }
func (f LoadStateFuncs) OnDidLoad()     { call(f.DidLoad) }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// guardListener invokes a host-supplied callback with panic recovery
// so a faulty listener cannot corrupt engine state.
func guardListener(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}
