package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time            { return c.now }
func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScheduler() (*Scheduler, *stepClock) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewScheduler(clock), clock
}

func TestControllerForwardCompletes(t *testing.T) {
	sched, clock := newTestScheduler()
	c := NewController(sched, 100*time.Millisecond)
	var statuses []Status
	c.OnStatus(func(s Status) { statuses = append(statuses, s) })

	c.Forward()
	require.True(t, c.IsAnimating())
	clock.Advance(50 * time.Millisecond)
	sched.Step()
	assert.InDelta(t, 0.5, c.Value, 1e-9)

	clock.Advance(60 * time.Millisecond)
	sched.Step()
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, Completed, c.Status())
	assert.False(t, sched.HasActiveTickers())
	assert.Equal(t, []Status{Forward, Completed}, statuses)
}

func TestControllerPartialReverseScalesDuration(t *testing.T) {
	sched, clock := newTestScheduler()
	c := NewController(sched, 100*time.Millisecond)
	c.Value = 0.5

	c.Reverse()
	clock.Advance(50 * time.Millisecond)
	sched.Step()

	assert.Equal(t, 0.0, c.Value)
	assert.Equal(t, Dismissed, c.Status())
}

func TestControllerZeroDurationJumps(t *testing.T) {
	sched, _ := newTestScheduler()
	c := NewController(sched, 0)
	c.Forward()
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, Completed, c.Status())
	assert.False(t, c.IsAnimating())
}

func TestControllerDisposeLeavesScheduler(t *testing.T) {
	sched, _ := newTestScheduler()
	c := NewController(sched, time.Second)
	c.Forward()
	require.True(t, sched.HasActiveTickers())
	c.Dispose()
	assert.False(t, sched.HasActiveTickers())
}

func TestCubicBezierEndpointsAndMonotonic(t *testing.T) {
	for _, curve := range []Curve{Standard, Decelerate, Accelerate} {
		assert.Equal(t, 0.0, curve(0))
		assert.Equal(t, 1.0, curve(1))
		prev := 0.0
		for i := 1; i < 20; i++ {
			v := curve(float64(i) / 20)
			assert.GreaterOrEqual(t, v, prev)
			prev = v
		}
	}
	assert.InDelta(t, 0.5, CubicBezier(0, 0, 1, 1)(0.5), 1e-4)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "reverse", Reverse.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
