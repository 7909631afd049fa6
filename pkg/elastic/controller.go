package elastic

import (
	"time"

	"github.com/go-elastic/elasticlist/pkg/animation"
	"github.com/go-elastic/elasticlist/pkg/errors"
	"github.com/go-elastic/elasticlist/pkg/runloop"
)

// Options tunes a Controller. The zero value selects the defaults.
type Options struct {
	// Damping scales drag deltas before they grow a decoration.
	// Zero means DefaultDamping.
	Damping float64

	// SpringbackDuration is the retract animation length. Zero means
	// animation.DefaultSpringbackDuration.
	SpringbackDuration time.Duration

	// SpringbackCurve shapes the retract animation. Nil means
	// animation.DecelerateCurve.
	SpringbackCurve animation.Curve
}

// Controller owns the elastic pull-to-update and pull-to-load state of
// one list view.
//
// All methods except NotifyUpdated and NotifyLoaded must run on the
// engine goroutine. The two Notify methods may run anywhere: they hand
// their work to the Executor given at construction.
type Controller struct {
	host Host
	exec Executor

	header *UpdateHeader
	footer *LoadFooter

	headerEnabled bool
	footerEnabled bool

	headerAnim *animation.Springback
	footerAnim *animation.Springback

	arbiter Arbiter

	onUpdate OnUpdateListener
	onLoad   OnLoadListener

	updateRequested bool
}

// NewController wires a Controller to its host list. A nil host is a
// configuration error; a nil exec runs Notify work inline.
//
// The update header starts enabled and the load footer disabled,
// matching a plain list that supports pull-to-update out of the box.
func NewController(host Host, exec Executor, opts *Options) (*Controller, error) {
	if host == nil {
		return nil, errors.ConfigError("elastic.NewController", "host must not be nil")
	}
	if exec == nil {
		exec = directExecutor{}
	}
	if opts == nil {
		opts = &Options{}
	}

	c := &Controller{
		host:   host,
		exec:   exec,
		header: newUpdateHeader(),
		footer: newLoadFooter(),
	}

	c.headerAnim = &animation.Springback{
		Duration:    opts.SpringbackDuration,
		Curve:       opts.SpringbackCurve,
		WriteHeight: c.header.setHeight,
		Visible:     host.IsHeaderShowing,
	}
	c.footerAnim = &animation.Springback{
		Duration:    opts.SpringbackDuration,
		Curve:       opts.SpringbackCurve,
		WriteHeight: c.footer.setHeight,
		Visible:     host.IsFooterShowing,
	}

	c.arbiter = Arbiter{
		Damping:        opts.Damping,
		header:         c.header,
		footer:         c.footer,
		host:           host,
		headerEnabled:  func() bool { return c.headerEnabled },
		footerEnabled:  func() bool { return c.footerEnabled },
		animationsIdle: c.animationsIdle,
		stopAnimations: c.stopAnimations,
		bounceHeader:   c.bounceHeader,
		bounceFooter:   c.bounceFooter,
		fireUpdate:     c.fireUpdate,
		fireLoad:       c.fireLoad,
	}

	if err := c.EnableUpdateHeader(true); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateHeader returns the pull-down decoration for content and
// listener configuration.
func (c *Controller) UpdateHeader() *UpdateHeader { return c.header }

// LoadFooter returns the pull-up decoration for content and listener
// configuration.
func (c *Controller) LoadFooter() *LoadFooter { return c.footer }

// SetOnUpdate registers the action run when a pull-down update fires.
func (c *Controller) SetOnUpdate(fn OnUpdateListener) { c.onUpdate = fn }

// SetOnLoad registers the action run when a pull-up load fires.
func (c *Controller) SetOnLoad(fn OnLoadListener) { c.onLoad = fn }

// EnableUpdateHeader attaches or detaches the header decoration.
// Enabling fails when the host already carries foreign header views,
// since the update header must be the only one.
func (c *Controller) EnableUpdateHeader(enabled bool) error {
	if enabled == c.headerEnabled {
		return nil
	}
	if enabled {
		if c.host.HeaderSlots() > 0 {
			return errors.ConfigError("elastic.EnableUpdateHeader",
				"host already has %d header view(s); the update header must be the only one",
				c.host.HeaderSlots())
		}
		c.host.AttachHeader()
		c.headerEnabled = true
		return nil
	}
	c.headerAnim.Stop()
	c.header.setHeight(0)
	c.host.DetachHeader()
	c.headerEnabled = false
	return nil
}

// EnableLoadFooter attaches or detaches the footer decoration.
func (c *Controller) EnableLoadFooter(enabled bool) {
	if enabled == c.footerEnabled {
		return
	}
	if enabled {
		c.host.AttachFooter()
		c.footerEnabled = true
		return
	}
	c.footerAnim.Stop()
	c.footer.setHeight(0)
	c.host.DetachFooter()
	c.footerEnabled = false
}

// IsUpdateHeaderEnabled reports whether the header is attached.
func (c *Controller) IsUpdateHeaderEnabled() bool { return c.headerEnabled }

// IsLoadFooterEnabled reports whether the footer is attached.
func (c *Controller) IsLoadFooterEnabled() bool { return c.footerEnabled }

// IsUpdating reports whether an update is in progress with the header
// on screen.
func (c *Controller) IsUpdating() bool {
	return c.host.IsHeaderShowing() && c.header.Height() > 0
}

// IsLoading reports whether a load is in progress with the footer on
// screen.
func (c *Controller) IsLoading() bool {
	return c.host.IsFooterShowing() && c.footer.Height() > 0
}

// RequestUpdate asks for a programmatic update. The header pops out
// and the update action fires on the next frame, once content and a
// listener are in place. Ignored while the header is disabled.
func (c *Controller) RequestUpdate() {
	if !c.headerEnabled {
		return
	}
	c.updateRequested = true
}

// NotifyUpdated marks the running update as complete and retracts the
// header. Safe to call from any goroutine; a no-op when no update is
// running.
func (c *Controller) NotifyUpdated() {
	c.exec.Post(c.didUpdate)
}

// NotifyLoaded marks the running load as complete and retracts the
// footer. Safe to call from any goroutine; a no-op when no load is
// running.
func (c *Controller) NotifyLoaded() {
	c.exec.Post(c.didLoad)
}

func (c *Controller) didUpdate() {
	if !c.header.IsActive() {
		return
	}
	c.header.SetActive(false)
	if h := c.header.Height(); h > 0 && c.host.IsHeaderShowing() {
		c.headerAnim.Start(h, -h)
	} else {
		c.header.setHeight(0)
	}
}

func (c *Controller) didLoad() {
	if !c.footer.IsActive() {
		return
	}
	c.footer.SetActive(false)
	if h := c.footer.Height(); h > 0 && c.host.IsFooterShowing() {
		c.footerAnim.Start(h, -h)
	} else {
		c.footer.setHeight(0)
	}
}

// HandleTouchDown feeds a touch start into the gesture arbiter.
func (c *Controller) HandleTouchDown(y float64) { c.arbiter.HandleDown(y) }

// HandleTouchMove feeds a drag into the gesture arbiter. Returns true
// when a decoration consumed it and the list must not scroll.
func (c *Controller) HandleTouchMove(y float64) bool { return c.arbiter.HandleMove(y) }

// HandleTouchUp feeds a release into the gesture arbiter. Returns true
// when a decoration absorbed it.
func (c *Controller) HandleTouchUp() bool { return c.arbiter.HandleUp() }

// HandleTouchCancel retracts any engaged decoration without firing.
func (c *Controller) HandleTouchCancel() { c.arbiter.HandleCancel() }

// HandleOverscroll feeds an edge fling into the gesture arbiter.
func (c *Controller) HandleOverscroll(delta float64) { c.arbiter.HandleOverscroll(delta) }

// HandleFooterTap feeds a footer tap into the gesture arbiter.
// Returns true when a click-to-load footer consumed it.
func (c *Controller) HandleFooterTap() bool { return c.arbiter.HandleFooterTap() }

// HandleFrame runs per-frame work: a pending RequestUpdate pops the
// header out and fires once content and a listener exist. The request
// stays pending while the footer is revealed or loading; only one
// decoration may be engaged at a time.
func (c *Controller) HandleFrame() {
	if !c.updateRequested || !c.headerEnabled {
		return
	}
	if c.header.IsActive() {
		c.updateRequested = false
		return
	}
	if !c.footer.IsFinished() {
		return
	}
	if !c.header.HasContent() || c.onUpdate == nil {
		return
	}
	c.updateRequested = false
	c.header.setHeight(c.header.MinHeight())
	c.fireUpdate()
}

// StartFrames drives animations and deferred work off the given loop
// at the given interval. The returned cancel stops the frame pump.
func (c *Controller) StartFrames(loop *runloop.Loop, interval time.Duration) func() {
	return loop.Every(interval, func() {
		animation.StepTickers()
		c.HandleFrame()
	})
}

func (c *Controller) animationsIdle() bool {
	return !c.headerAnim.IsRunning() && !c.footerAnim.IsRunning()
}

func (c *Controller) stopAnimations() {
	c.headerAnim.Stop()
	c.footerAnim.Stop()
}

func (c *Controller) bounceHeader() {
	if delta := c.header.BounceTarget(); delta != 0 {
		c.headerAnim.Start(c.header.Height(), delta)
	}
}

func (c *Controller) bounceFooter() {
	if delta := c.footer.BounceTarget(); delta != 0 {
		c.footerAnim.Start(c.footer.Height(), delta)
	}
}

func (c *Controller) fireUpdate() {
	if c.onUpdate == nil || c.header.IsActive() {
		return
	}
	c.header.SetActive(true)
	guardListener("elastic.onUpdate", func() { c.onUpdate() })
}

func (c *Controller) fireLoad() {
	if c.onLoad == nil || c.footer.IsActive() {
		return
	}
	c.footer.SetActive(true)
	guardListener("elastic.onLoad", func() { c.onLoad() })
}
