package elastic

// DefaultDamping is the fraction of vertical finger travel applied to
// a decoration's height while dragging.
const DefaultDamping = 0.5

// Arbiter decides, per touch event, whether the elastic decorations
// consume the gesture or the list scrolls normally.
//
// At most one decoration is engaged at a time: the header is eligible
// only while the footer is fully retracted and idle, and vice versa.
type Arbiter struct {
	// Damping scales drag deltas before they grow a decoration.
	// Zero means DefaultDamping.
	Damping float64

	header *UpdateHeader
	footer *LoadFooter
	host   Host

	headerEnabled  func() bool
	footerEnabled  func() bool
	animationsIdle func() bool
	stopAnimations func()
	bounceHeader   func()
	bounceFooter   func()
	fireUpdate     func()
	fireLoad       func()

	lastY    float64
	tracking bool
}

func (a *Arbiter) damping() float64 {
	if a.Damping > 0 {
		return a.Damping
	}
	return DefaultDamping
}

// HandleDown records the touch origin and freezes any running
// springback so the finger takes over the decoration height.
func (a *Arbiter) HandleDown(y float64) {
	a.lastY = y
	a.tracking = true
	a.stopAnimations()
}

// HandleMove consumes a drag when a decoration is eligible, growing it
// by the damped delta. Returns true when the event was consumed and
// the list should not scroll.
func (a *Arbiter) HandleMove(y float64) bool {
	if !a.tracking {
		a.lastY = y
		return false
	}
	delta := y - a.lastY

	if a.headerEnabled() && a.footer.IsFinished() &&
		(a.header.IsVisible() || (a.host.IsAtTop() && delta > 0)) {
		a.header.GrowBy(delta * a.damping())
		a.lastY = y
		return true
	}

	if a.footerEnabled() && a.header.IsFinished() &&
		(a.footer.IsVisible() || a.canRevealFooter(delta)) {
		a.footer.GrowBy(-delta * a.damping())
		if a.footer.policy.firesOnReveal() && a.footer.IsVisible() &&
			a.footer.Height() >= a.footer.MinHeight() && !a.footer.IsActive() {
			a.fireLoad()
		}
		if a.footer.Height() > 0 {
			a.host.RevealFooter()
		}
		a.lastY = y
		return true
	}

	a.lastY = y
	return false
}

// canRevealFooter reports whether an upward drag at the bottom of a
// scrollable list may pull the footer into view. Lists whose items all
// fit on screen never reveal it by drag.
func (a *Arbiter) canRevealFooter(delta float64) bool {
	return delta < 0 &&
		a.host.ItemCount() > 0 &&
		a.host.VisibleItemCount() < a.host.ItemCount() &&
		a.host.IsAtBottom()
}

// HandleUp ends the gesture. A visible decoration fires its action
// when armed, then springs back. Returns true when a decoration
// absorbed the release.
func (a *Arbiter) HandleUp() bool {
	a.tracking = false

	if a.header.IsVisible() {
		if a.header.CanFire() {
			a.fireUpdate()
		}
		a.bounceHeader()
		return true
	}
	if a.footer.IsVisible() {
		if a.footer.CanFire() && a.footer.policy.firesOnRelease() {
			a.fireLoad()
		}
		a.bounceFooter()
		return true
	}
	return false
}

// HandleCancel retracts any visible decoration without firing.
func (a *Arbiter) HandleCancel() {
	a.tracking = false
	if a.header.IsVisible() {
		a.bounceHeader()
	}
	if a.footer.IsVisible() {
		a.bounceFooter()
	}
}

// HandleOverscroll reacts to a fling hitting an edge: the decoration
// pops out by the undamped delta, fires when armed, and springs back
// in one step. Ignored while a springback is still running.
func (a *Arbiter) HandleOverscroll(delta float64) {
	if !a.animationsIdle() {
		return
	}
	if delta > 0 {
		if !a.headerEnabled() || !a.footer.IsFinished() || a.header.IsVisible() {
			return
		}
		a.header.GrowBy(delta)
		if a.header.CanFire() {
			a.fireUpdate()
		}
		a.bounceHeader()
		return
	}
	if delta < 0 {
		if !a.footerEnabled() || !a.header.IsFinished() || a.footer.IsVisible() {
			return
		}
		if a.host.VisibleItemCount() >= a.host.ItemCount() {
			return
		}
		a.footer.GrowBy(-delta)
		if a.footer.Height() > 0 {
			a.host.RevealFooter()
		}
		if !a.footer.IsActive() &&
			(a.footer.policy.firesOnReveal() ||
				(a.footer.CanFire() && !a.footer.policy.clickable())) {
			a.fireLoad()
		}
		a.bounceFooter()
	}
}

// HandleFooterTap starts a load for a click-to-load footer that is
// visible and idle. Returns true when the tap was consumed.
func (a *Arbiter) HandleFooterTap() bool {
	if !a.footerEnabled() || !a.footer.IsClickable() {
		return false
	}
	if !a.footer.IsVisible() || a.footer.IsActive() {
		return false
	}
	a.fireLoad()
	return true
}
