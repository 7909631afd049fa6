// Package runloop provides the single-threaded task queue that
// serializes all engine work.
//
// Gesture handling, springback ticks, and completion notifications are
// posted as tasks and processed strictly in arrival order on one
// goroutine, so nothing in the engine needs a lock. The only
// cross-goroutine entry points into the engine are the completion
// notifications, which enqueue a task here rather than mutating state
// directly.
package runloop

import (
	"sync"
	"time"

	"github.com/go-elastic/elasticlist/pkg/errors"
)

// Loop is a FIFO task queue backed by a single goroutine.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// New creates and starts a loop.
func New() *Loop {
	l := &Loop{
		tasks: make(chan func(), 256),
		done:  make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

// Post schedules fn to run on the loop goroutine. Safe to call from
// any goroutine. Returns false if the loop is closed or fn is nil.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Every posts fn on the loop at the given interval until the returned
// cancel function is called or the loop closes. It drives the frame
// pump: the engine schedules animation ticker steps this way.
func (l *Loop) Every(interval time.Duration, fn func()) (cancel func()) {
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !l.Post(fn) {
					return
				}
			case <-stop:
				return
			case <-l.done:
				return
			}
		}
	}()
	return func() { once.Do(func() { close(stop) }) }
}

// Close stops the loop after running any already-queued tasks.
// Post calls after Close are rejected.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
	l.wg.Wait()
}

func (l *Loop) run() {
	defer l.wg.Done()
	for {
		select {
		case task := <-l.tasks:
			l.invoke(task)
		case <-l.done:
			// Drain tasks that were accepted before Close.
			for {
				select {
				case task := <-l.tasks:
					l.invoke(task)
				default:
					return
				}
			}
		}
	}
}

func (l *Loop) invoke(task func()) {
	defer errors.Recover("runloop.task")
	task()
}
