package viewer

import (
	"sync"
	"time"
)

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// SystemScheduler schedules with time.AfterFunc.
var SystemScheduler Scheduler = timeScheduler{}

// Debouncer collapses a burst of triggers into the last one. It holds at
// most one pending call. When the delay elapses the call is handed to
// post, which is expected to run it on the goroutine that owns the
// state; a call superseded after it was posted is dropped there.
type Debouncer struct {
	delay time.Duration
	sched Scheduler
	post  func(func())

	mu      sync.Mutex
	pending Timer
	gen     uint64
}

// NewDebouncer creates a debouncer. A nil sched uses SystemScheduler and
// a nil post runs the call on the timer goroutine.
func NewDebouncer(delay time.Duration, sched Scheduler, post func(func())) *Debouncer {
	if sched == nil {
		sched = SystemScheduler
	}
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Debouncer{delay: delay, sched: sched, post: post}
}

// Trigger cancels any pending call and schedules fn.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = d.sched.AfterFunc(d.delay, func() {
		d.post(func() { d.run(gen, fn) })
	})
}

func (d *Debouncer) run(gen uint64, fn func()) {
	d.mu.Lock()
	current := gen == d.gen
	if current {
		d.pending = nil
		d.gen++
	}
	d.mu.Unlock()
	if current {
		fn()
	}
}

// Pending reports whether a call is scheduled and not yet run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
}
