package animation

import "time"

// DefaultSpringbackDuration is how long a decoration takes to settle
// after a release or a completed action.
const DefaultSpringbackDuration = time.Second

// Springback animates a decoration's height from a starting value by a
// signed delta, writing each interpolated height back to the owner.
//
// The animation is driven cooperatively: each [StepTickers] call from
// the frame pump advances it by the elapsed wall (or fake) clock time.
// At most one springback per decoration is active at a time; calling
// Start while running restarts from the new values.
//
// Two conditions abort a springback early:
//   - the interpolated height reaches zero, in which case the height is
//     forced to exactly 0 (a hidden decoration must not reappear), or
//   - the Visible hook reports false, meaning the decoration no longer
//     occupies its slot; the height snaps to 0 immediately.
type Springback struct {
	// Duration is the length of a full springback.
	// Zero means DefaultSpringbackDuration.
	Duration time.Duration

	// Curve transforms linear progress. Nil means DecelerateCurve.
	Curve Curve

	// WriteHeight stores an interpolated height on the owning
	// decoration. Required.
	WriteHeight func(height float64)

	// Visible reports whether the owning decoration still occupies its
	// visible slot. Optional; nil means always visible.
	Visible func() bool

	from   float64
	delta  float64
	ticker *Ticker
}

// Start begins animating from the given height by delta. A delta of
// zero leaves the height where it is and starts nothing.
func (s *Springback) Start(from, delta float64) {
	s.Stop()
	if delta == 0 {
		return
	}
	s.from = from
	s.delta = delta
	s.ticker = NewTicker(s.tick)
	s.ticker.Start()
}

// Stop halts the animation at the current height.
func (s *Springback) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// IsRunning reports whether a springback is in flight.
func (s *Springback) IsRunning() bool {
	return s.ticker != nil
}

func (s *Springback) tick(elapsed time.Duration) {
	if s.Visible != nil && !s.Visible() {
		s.WriteHeight(0)
		s.Stop()
		return
	}

	duration := s.Duration
	if duration <= 0 {
		duration = DefaultSpringbackDuration
	}
	progress := float64(elapsed) / float64(duration)
	if progress >= 1 {
		progress = 1
	}

	curve := s.Curve
	if curve == nil {
		curve = DecelerateCurve
	}
	height := s.from + s.delta*curve(progress)

	if height <= 0 {
		s.WriteHeight(0)
		s.Stop()
		return
	}
	s.WriteHeight(height)

	if progress >= 1 {
		s.Stop()
	}
}
