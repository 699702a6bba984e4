// Package animation drives time-based values for the ripple effect.
//
// A [Scheduler] owns a clock and the set of running tickers; the host calls
// [Scheduler.Step] once per frame. [Controller] animates a value between
// bounds over a duration with an easing curve and is what the reference
// ripple uses for its press wave, hover overlay and focus overlay.
//
// Nothing here is thread-safe. Step must be called from the UI thread.
package animation

import "time"

// Scheduler steps active tickers against a clock.
type Scheduler struct {
	clock   Clock
	active  map[*Ticker]struct{}
	ordered []*Ticker
}

// NewScheduler returns a scheduler reading time from clock.
// A nil clock uses SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock, active: make(map[*Ticker]struct{})}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates a stopped ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{sched: s, callback: callback}
}

// Step invokes every active ticker with its elapsed time, in start order.
func (s *Scheduler) Step() {
	if len(s.ordered) == 0 {
		return
	}
	tickers := make([]*Ticker, len(s.ordered))
	copy(tickers, s.ordered)
	now := s.clock.Now()
	for _, t := range tickers {
		if t.active && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func (s *Scheduler) HasActiveTickers() bool {
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.active[t] = struct{}{}
	s.ordered = append(s.ordered, t)
}

func (s *Scheduler) remove(t *Ticker) {
	delete(s.active, t)
	for i, o := range s.ordered {
		if o == t {
			s.ordered = append(s.ordered[:i:i], s.ordered[i+1:]...)
			return
		}
	}
}

// Ticker calls a callback on each Step while active.
type Ticker struct {
	sched    *Scheduler
	callback func(elapsed time.Duration)
	active   bool
	start    time.Time
}

// Start activates the ticker. Elapsed time is measured from this call.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.start = t.sched.Now()
	t.sched.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.sched.remove(t)
}

// IsActive returns whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.active
}

// Elapsed returns the time since Start, or zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return t.sched.Now().Sub(t.start)
}
