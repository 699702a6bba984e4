package animation

import (
	"fmt"
	"time"
)

// Status is the direction or resting point of a Controller.
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
type Status int

const (
	// Dismissed means stopped at the lower bound.
	Dismissed Status = iota
	// Forward means moving toward the upper bound.
	Forward
	// Reverse means moving toward the lower bound.
	Reverse
	// Completed means stopped at the upper bound.
	Completed
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller animates Value between 0 and 1 over Duration.
//
// Call Dispose when done so the ticker leaves the scheduler.
type Controller struct {
	// Value is the current value in [0, 1].
	Value float64
	// Duration is the time a full 0 to 1 run takes. Partial runs are scaled
	// by the distance travelled.
	Duration time.Duration
	// Curve eases progress. Nil means Linear.
	Curve Curve

	sched      *Scheduler
	status     Status
	ticker     *Ticker
	startValue float64
	target     float64
	runFor     time.Duration
	onStatus   []func(Status)
}

// NewController creates a controller stepped by sched.
func NewController(sched *Scheduler, duration time.Duration) *Controller {
	return &Controller{Duration: duration, sched: sched}
}

// Forward animates to 1.
func (c *Controller) Forward() {
	c.animateTo(1, Forward)
}

// Reverse animates to 0.
func (c *Controller) Reverse() {
	c.animateTo(0, Reverse)
}

// AnimateTo animates to target, clamped to [0, 1].
func (c *Controller) AnimateTo(target float64) {
	target = clampUnit(target)
	if target >= c.Value {
		c.animateTo(target, Forward)
	} else {
		c.animateTo(target, Reverse)
	}
}

func (c *Controller) animateTo(target float64, direction Status) {
	c.Stop()
	c.startValue = c.Value
	c.target = target
	distance := target - c.Value
	if distance < 0 {
		distance = -distance
	}
	c.runFor = time.Duration(float64(c.Duration) * distance)
	c.setStatus(direction)
	if c.runFor <= 0 {
		c.Value = target
		c.settle()
		return
	}
	c.ticker = c.sched.NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(c.runFor)
	if progress >= 1 {
		progress = 1
	}
	curve := c.Curve
	if curve == nil {
		curve = Linear
	}
	c.Value = c.startValue + (c.target-c.startValue)*curve(progress)
	if progress >= 1 {
		c.settle()
	}
}

func (c *Controller) settle() {
	c.Stop()
	switch {
	case c.Value <= 0:
		c.setStatus(Dismissed)
	case c.Value >= 1:
		c.setStatus(Completed)
	}
}

// Reset stops and jumps to 0.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(Dismissed)
}

// Stop freezes the animation at its current value.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating reports whether a run is in progress.
func (c *Controller) IsAnimating() bool {
	return c.ticker != nil
}

// OnStatus registers fn to be called on every status change.
func (c *Controller) OnStatus(fn func(Status)) {
	c.onStatus = append(c.onStatus, fn)
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.onStatus {
		fn(status)
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.onStatus = nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
