package elastic

import "github.com/go-elastic/elasticlist/pkg/errors"

// LoadFooter is the pull-up decoration at the bottom of the list.
//
// It mirrors [UpdateHeader] vertically, with the trigger policy chosen
// by its [LoadAction]: auto-load fires as soon as the footer becomes
// visible, release-to-load on release past the content height, and
// click-to-load only on an explicit tap.
type LoadFooter struct {
	Decoration
	action        LoadAction
	policy        loadPolicy
	stateListener LoadStateListener
}

func newLoadFooter() *LoadFooter {
	f := &LoadFooter{
		action: AutoLoad,
		policy: policyFor(AutoLoad),
	}
	f.alignment = AlignTop
	return f
}

// SetContent attaches the footer's content view and measures its
// minimum height. Attaching a second view is a configuration error.
func (f *LoadFooter) SetContent(view ContentView) error {
	return f.setContent("elastic.LoadFooter.SetContent", view)
}

// SetStateListener registers an observer for state transitions.
func (f *LoadFooter) SetStateListener(l LoadStateListener) {
	f.stateListener = l
}

// LoadAction returns the configured trigger policy.
func (f *LoadFooter) LoadAction() LoadAction {
	return f.action
}

// SetLoadAction selects the trigger policy. The policy is a
// configuration-time choice: changing it while the footer is revealed
// or loading is a configuration error.
func (f *LoadFooter) SetLoadAction(action LoadAction) error {
	if !f.IsFinished() {
		return errors.ConfigError("elastic.LoadFooter.SetLoadAction",
			"load action cannot change while the footer is revealed or loading")
	}
	f.action = action
	f.policy = policyFor(action)
	return nil
}

// IsClickable reports whether the footer accepts taps. Only the
// click-to-load policy makes it clickable.
func (f *LoadFooter) IsClickable() bool {
	return f.policy.clickable()
}

// GrowBy applies a gesture-driven height change, clamped at zero and
// adjusted by the load policy (auto-load snaps any visible height up
// to the content height).
//
// While no load is running and the policy reports pulling states,
// crossing the content height upward fires OnWillRelease; becoming
// visible, or dropping back to or below the content height, fires
// OnPullingUp.
func (f *LoadFooter) GrowBy(delta float64) {
	old := f.height
	height := old + delta
	if height < 0 {
		height = 0
	}
	height = f.policy.clamp(f, height)
	f.height = height

	if f.active || f.stateListener == nil || !f.policy.notifiesPulling() {
		return
	}
	switch {
	case height > f.minHeight && old <= f.minHeight:
		guardListener("elastic.LoadStateListener.OnWillRelease", f.stateListener.OnWillRelease)
	case (old <= 0 && height > 0) || (old > f.minHeight && height <= f.minHeight):
		guardListener("elastic.LoadStateListener.OnPullingUp", f.stateListener.OnPullingUp)
	}
}

// CanFire reports whether a release right now could start a load: no
// load running and the footer pulled past its content height.
func (f *LoadFooter) CanFire() bool {
	return !f.active && f.height > f.minHeight
}

// SetActive marks the load as running or completed, firing OnLoading
// or OnDidLoad on the transition. No-op when unchanged.
func (f *LoadFooter) SetActive(active bool) {
	if f.active == active {
		return
	}
	f.active = active
	if f.stateListener == nil {
		return
	}
	if active {
		guardListener("elastic.LoadStateListener.OnLoading", f.stateListener.OnLoading)
	} else {
		guardListener("elastic.LoadStateListener.OnDidLoad", f.stateListener.OnDidLoad)
	}
}

// BounceTarget returns the signed springback distance from the current
// height: settle at the content height when pulled past it, hold in
// place while loading at or below it, otherwise hide completely.
func (f *LoadFooter) BounceTarget() float64 {
	if f.height > f.minHeight {
		return f.minHeight - f.height
	}
	if f.active {
		return 0
	}
	return -f.height
}
