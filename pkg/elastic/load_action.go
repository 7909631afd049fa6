package elastic

import "fmt"

// LoadAction selects how the load footer's action is triggered.
//
// The action is a configuration-time choice: each value maps to a
// policy object implementing the same grow/fire contract, selected
// once by [LoadFooter.SetLoadAction]. No behavior depends on mutable
// flags at gesture time.
type LoadAction int

const (
	// AutoLoad fires the load action as soon as the footer becomes
	// visible, without waiting for a release. Any visible
	// gesture-driven height snaps up to the content height, so the
	// loading indicator is always fully shown when the action fires.
	AutoLoad LoadAction = iota
	// ReleaseToLoad fires on touch release when the footer has been
	// pulled past its content height.
	ReleaseToLoad
	// ClickToLoad fires only on an explicit tap on the revealed
	// footer. Releasing a drag never fires in this mode, and only this
	// mode makes the footer clickable.
	ClickToLoad
)

func (a LoadAction) String() string {
	switch a {
	case AutoLoad:
		return "auto-load"
	case ReleaseToLoad:
		return "release-to-load"
	case ClickToLoad:
		return "click-to-load"
	default:
		return fmt.Sprintf("LoadAction(%d)", int(a))
	}
}

// loadPolicy is the per-action strategy behind LoadFooter. Every
// LoadAction value maps to one implementation.
type loadPolicy interface {
	// clamp adjusts a gesture-driven height after the zero floor has
	// been applied.
	clamp(f *LoadFooter, height float64) float64
	// notifiesPulling reports whether pulling/will-release state
	// callbacks fire in this mode.
	notifiesPulling() bool
	// firesOnReveal reports whether the action fires as soon as the
	// footer becomes visible during a move.
	firesOnReveal() bool
	// firesOnRelease reports whether a touch release may fire the
	// action.
	firesOnRelease() bool
	// clickable reports whether the footer accepts taps.
	clickable() bool
}

func policyFor(action LoadAction) loadPolicy {
	switch action {
	case ReleaseToLoad:
		return releaseToLoadPolicy{}
	case ClickToLoad:
		return clickToLoadPolicy{}
	default:
		return autoLoadPolicy{}
	}
}

type autoLoadPolicy struct{}

func (autoLoadPolicy) clamp(f *LoadFooter, height float64) float64 {
	// A visible footer shows at least its full content height; the
	// action only ever fires with the indicator fully revealed.
	if height > 0 && height < f.minHeight {
		return f.minHeight
	}
	return height
}
func (autoLoadPolicy) notifiesPulling() bool { return false }
func (autoLoadPolicy) firesOnReveal() bool   { return true }
func (autoLoadPolicy) firesOnRelease() bool  { return true }
func (autoLoadPolicy) clickable() bool       { return false }

type releaseToLoadPolicy struct{}

func (releaseToLoadPolicy) clamp(_ *LoadFooter, height float64) float64 { return height }
func (releaseToLoadPolicy) notifiesPulling() bool                      { return true }
func (releaseToLoadPolicy) firesOnReveal() bool                        { return false }
func (releaseToLoadPolicy) firesOnRelease() bool                       { return true }
func (releaseToLoadPolicy) clickable() bool                            { return false }

type clickToLoadPolicy struct{}

func (clickToLoadPolicy) clamp(_ *LoadFooter, height float64) float64 { return height }
func (clickToLoadPolicy) notifiesPulling() bool                      { return true }
func (clickToLoadPolicy) firesOnReveal() bool                        { return false }
func (clickToLoadPolicy) firesOnRelease() bool                       { return false }
func (clickToLoadPolicy) clickable() bool                            { return true }
