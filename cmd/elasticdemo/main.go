// Command elasticdemo drives the elastic list engine against a
// simulated list view, printing every state transition. It loads
// elastic.yaml from the working directory when present.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/go-elastic/elasticlist/pkg/config"
	"github.com/go-elastic/elasticlist/pkg/elastic"
	"github.com/go-elastic/elasticlist/pkg/runloop"
)

// item is one row of the simulated list.
type item struct {
	ID    string
	Title string
}

func newItem(title string) item {
	return item{ID: uuid.NewString(), Title: title}
}

// simHost is an in-memory stand-in for a scrollable list view. The
// visible window is fixed at ten rows pinned to the top unless the
// footer asks to be revealed.
type simHost struct {
	items         []item
	atTop         bool
	atBottom      bool
	headerSlots   int
	headerShowing bool
	footerShowing bool
}

func (h *simHost) IsAtTop() bool    { return h.atTop }
func (h *simHost) IsAtBottom() bool { return h.atBottom }
func (h *simHost) ItemCount() int   { return len(h.items) }

func (h *simHost) VisibleItemCount() int {
	if len(h.items) < 10 {
		return len(h.items)
	}
	return 10
}

func (h *simHost) HeaderSlots() int { return h.headerSlots }

func (h *simHost) AttachHeader() { h.headerShowing = true }
func (h *simHost) DetachHeader() { h.headerShowing = false }
func (h *simHost) AttachFooter() { h.footerShowing = true }
func (h *simHost) DetachFooter() { h.footerShowing = false }

func (h *simHost) IsHeaderShowing() bool { return h.headerShowing }
func (h *simHost) IsFooterShowing() bool { return h.footerShowing }

func (h *simHost) RevealFooter() {
	h.atBottom = true
	h.atTop = false
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "elasticdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	host := &simHost{atTop: true}
	for i := 1; i <= 30; i++ {
		host.items = append(host.items, newItem(fmt.Sprintf("row %d", i)))
	}

	loop := runloop.New()
	defer loop.Close()

	done := make(chan struct{})

	loop.Post(func() {
		ctrl, err := elastic.NewController(host, loop, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, "elasticdemo:", err)
			close(done)
			return
		}
		ctrl.EnableLoadFooter(true)

		if err := ctrl.UpdateHeader().SetContent(elastic.FixedContent(56)); err != nil {
			fmt.Fprintln(os.Stderr, "elasticdemo:", err)
			close(done)
			return
		}
		if err := ctrl.LoadFooter().SetContent(elastic.FixedContent(40)); err != nil {
			fmt.Fprintln(os.Stderr, "elasticdemo:", err)
			close(done)
			return
		}
		if err := cfg.Apply(ctrl); err != nil {
			fmt.Fprintln(os.Stderr, "elasticdemo:", err)
			close(done)
			return
		}

		ctrl.UpdateHeader().SetStateListener(elastic.UpdateStateFuncs{
			PullingDown: func() { fmt.Println("header: pulling down") },
			WillRelease: func() { fmt.Println("header: release to update") },
			Updating:    func() { fmt.Println("header: updating") },
			DidUpdate:   func() { fmt.Println("header: done") },
		})
		ctrl.LoadFooter().SetStateListener(elastic.LoadStateFuncs{
			PullingUp:   func() { fmt.Println("footer: pulling up") },
			WillRelease: func() { fmt.Println("footer: release to load") },
			Loading:     func() { fmt.Println("footer: loading") },
			DidLoad:     func() { fmt.Println("footer: done") },
		})

		ctrl.SetOnUpdate(func() {
			fmt.Println("update: fetching fresh rows")
			go func() {
				time.Sleep(300 * time.Millisecond)
				loop.Post(func() {
					host.items = append([]item{newItem("fresh row")}, host.items...)
					fmt.Printf("update: %d rows\n", len(host.items))
				})
				ctrl.NotifyUpdated()
			}()
		})
		ctrl.SetOnLoad(func() {
			fmt.Println("load: fetching older rows")
			go func() {
				time.Sleep(300 * time.Millisecond)
				loop.Post(func() {
					for i := 0; i < 5; i++ {
						host.items = append(host.items, newItem(fmt.Sprintf("older row %d", len(host.items)+1)))
					}
					fmt.Printf("load: %d rows\n", len(host.items))
				})
				ctrl.NotifyLoaded()
			}()
		})

		stop := ctrl.StartFrames(loop, 16*time.Millisecond)

		go script(loop, ctrl, host, func() {
			loop.Post(stop)
			close(done)
		})
	})

	<-done
	return nil
}

// script replays a canned gesture session on the loop, waiting in real
// time between phases so springbacks and fake fetches can finish.
func script(loop *runloop.Loop, ctrl *elastic.Controller, host *simHost, finish func()) {
	post := func(fn func()) {
		loop.Post(fn)
		time.Sleep(30 * time.Millisecond)
	}

	fmt.Println("-- pull down past the header height and release --")
	post(func() { ctrl.HandleTouchDown(100) })
	for y := 120.0; y <= 260; y += 20 {
		yy := y
		post(func() { ctrl.HandleTouchMove(yy) })
	}
	post(func() { ctrl.HandleTouchUp() })
	time.Sleep(1500 * time.Millisecond)

	fmt.Println("-- scroll to the bottom and pull up --")
	post(func() { host.atTop = false; host.atBottom = true })
	post(func() { ctrl.HandleTouchDown(400) })
	for y := 380.0; y >= 280; y -= 20 {
		yy := y
		post(func() { ctrl.HandleTouchMove(yy) })
	}
	post(func() { ctrl.HandleTouchUp() })
	time.Sleep(1500 * time.Millisecond)

	fmt.Println("-- programmatic update --")
	post(func() { ctrl.RequestUpdate() })
	time.Sleep(1500 * time.Millisecond)

	finish()
}
