package elastic

// UpdateHeader is the pull-down decoration at the top of the list.
//
// Its state machine moves from idle (hidden, inactive) through
// pulling-down (visible, at or below content height) and will-release
// (height > content height) into updating (active), then springs back
// to idle once the update completes.
type UpdateHeader struct {
	Decoration
	stateListener UpdateStateListener
}

func newUpdateHeader() *UpdateHeader {
	h := &UpdateHeader{}
	h.alignment = AlignBottom
	return h
}

// SetContent attaches the header's content view and measures its
// minimum height. Attaching a second view is a configuration error.
func (h *UpdateHeader) SetContent(view ContentView) error {
	return h.setContent("elastic.UpdateHeader.SetContent", view)
}

// SetStateListener registers an observer for state transitions.
func (h *UpdateHeader) SetStateListener(l UpdateStateListener) {
	h.stateListener = l
}

// GrowBy applies a gesture-driven height change, clamped at zero.
//
// While no update is running, crossing the content height upward fires
// OnWillRelease; becoming visible, or dropping back to or below the
// content height, fires OnPullingDown.
func (h *UpdateHeader) GrowBy(delta float64) {
	old := h.height
	height := old + delta
	if height < 0 {
		height = 0
	}
	h.height = height

	if h.active || h.stateListener == nil {
		return
	}
	switch {
	case height > h.minHeight && old <= h.minHeight:
		guardListener("elastic.UpdateStateListener.OnWillRelease", h.stateListener.OnWillRelease)
	case (old <= 0 && height > 0) || (old > h.minHeight && height <= h.minHeight):
		guardListener("elastic.UpdateStateListener.OnPullingDown", h.stateListener.OnPullingDown)
	}
}

// CanFire reports whether a release right now would start an update:
// no update running and the header pulled past its content height.
func (h *UpdateHeader) CanFire() bool {
	return !h.active && h.height > h.minHeight
}

// SetActive marks the update as running or completed, firing
// OnUpdating or OnDidUpdate on the transition. No-op when unchanged.
func (h *UpdateHeader) SetActive(active bool) {
	if h.active == active {
		return
	}
	h.active = active
	if h.stateListener == nil {
		return
	}
	if active {
		guardListener("elastic.UpdateStateListener.OnUpdating", h.stateListener.OnUpdating)
	} else {
		guardListener("elastic.UpdateStateListener.OnDidUpdate", h.stateListener.OnDidUpdate)
	}
}

// BounceTarget returns the signed springback distance from the current
// height: settle at the content height while updating, otherwise hide
// completely.
func (h *UpdateHeader) BounceTarget() float64 {
	if h.active && h.height >= h.minHeight {
		return h.minHeight - h.height
	}
	return -h.height
}
