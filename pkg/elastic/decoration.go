package elastic

import "github.com/go-elastic/elasticlist/pkg/errors"

// Decoration holds the height state shared by the update header and
// the load footer: current height, minimum (content) height, and the
// active flag while an action is running. It is independent of
// rendering; repainting from the height values is the host's job.
//
// Height and the active flag are mutated only by the gesture arbiter,
// the controller's completion handling, and the springback animation.
// Host code must never assign them directly.
type Decoration struct {
	height    float64
	minHeight float64
	active    bool
	alignment VerticalAlignment
	content   ContentView
}

// Height returns the currently revealed height. Never negative.
func (d *Decoration) Height() float64 { return d.height }

// MinHeight returns the measured content height. Pulling past it arms
// the action; the decoration settles at it while the action runs.
func (d *Decoration) MinHeight() float64 { return d.minHeight }

// IsActive reports whether the decoration's action is running and
// awaiting a completion notification.
func (d *Decoration) IsActive() bool { return d.active }

// Alignment returns the content placement inside the revealed height.
func (d *Decoration) Alignment() VerticalAlignment { return d.alignment }

// SetAlignment positions the content inside the revealed height.
// Placement only; the height state machine is unaffected.
func (d *Decoration) SetAlignment(alignment VerticalAlignment) {
	d.alignment = alignment
}

// Content returns the attached content view, or nil.
func (d *Decoration) Content() ContentView { return d.content }

// HasContent reports whether a content view is attached.
func (d *Decoration) HasContent() bool { return d.content != nil }

// IsVisible reports whether any of the decoration is revealed.
func (d *Decoration) IsVisible() bool { return d.height > 0 }

// IsFinished reports whether the decoration is fully idle: no action
// running and nothing revealed. The arbiter only routes movement to
// one decoration while the other is finished.
func (d *Decoration) IsFinished() bool { return !d.active && d.height <= 0 }

// setContent attaches the content view and measures the minimum
// height. Attaching a second view is a configuration error.
func (d *Decoration) setContent(op string, view ContentView) error {
	if view == nil {
		return errors.ConfigError(op, "content view must not be nil")
	}
	if d.content != nil {
		return errors.ConfigError(op, "a content view is already attached")
	}
	d.content = view
	d.minHeight = view.Height()
	if d.minHeight < 0 {
		d.minHeight = 0
	}
	return nil
}

// setHeight assigns an absolute height, clamped at zero. Used by the
// springback animation and the controller; gestures go through GrowBy.
func (d *Decoration) setHeight(height float64) {
	if height < 0 {
		height = 0
	}
	d.height = height
}
