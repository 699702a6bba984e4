package ripple_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ripplebutton/pkg/animation"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/ripple"
	rbtest "github.com/go-drift/ripplebutton/pkg/testing"
)

func newRipple() (*ripple.Ripple, *animation.Scheduler, *rbtest.FakeClock) {
	clock := rbtest.NewFakeClock()
	sched := animation.NewScheduler(clock)
	return ripple.New(sched, dom.RectXYWH(100, 100, 120, 36), nil), sched, clock
}

func frame(sched *animation.Scheduler, r *ripple.Ripple, clock *rbtest.FakeClock, d time.Duration) {
	clock.Advance(d)
	sched.Step()
	r.Tick()
}

func TestPressOriginFollowsEvent(t *testing.T) {
	r, _, _ := newRipple()
	r.StartPress(&dom.Event{Type: dom.PointerDown, X: 110, Y: 120})

	st := r.State()
	assert.True(t, st.Pressed)
	assert.Equal(t, 10.0, st.OriginX)
	assert.Equal(t, 20.0, st.OriginY)
	assert.InDelta(t, ripple.PressOpacity, st.WaveOpacity, 1e-9)
}

func TestKeyboardPressStartsFromCenter(t *testing.T) {
	r, _, _ := newRipple()
	r.StartPress(nil)

	st := r.State()
	assert.True(t, st.Pressed)
	assert.Equal(t, 60.0, st.OriginX)
	assert.Equal(t, 18.0, st.OriginY)
}

func TestPressWaveGrowsThenFades(t *testing.T) {
	r, sched, clock := newRipple()
	r.StartPress(nil)
	start := r.State().Radius

	frame(sched, r, clock, ripple.PressGrowDuration)
	grown := r.State().Radius
	assert.Greater(t, grown, start)

	r.EndPress()
	assert.Equal(t, ripple.PressGrowDuration, r.State().LastPressDuration)
	frame(sched, r, clock, ripple.PressFadeDuration)
	assert.Zero(t, r.State().WaveOpacity)
	assert.False(t, r.IsAnimating())
}

func TestShortPressStaysVisible(t *testing.T) {
	r, sched, clock := newRipple()
	r.StartPress(nil)
	frame(sched, r, clock, 10*time.Millisecond)
	r.EndPress()

	frame(sched, r, clock, 50*time.Millisecond)
	assert.InDelta(t, ripple.PressOpacity, r.State().WaveOpacity, 1e-9, "wave should hold until the minimum press time")

	frame(sched, r, clock, ripple.MinPressVisible)
	frame(sched, r, clock, ripple.PressFadeDuration)
	assert.Zero(t, r.State().WaveOpacity)
}

func TestUnmatchedEndsAreNoops(t *testing.T) {
	r, _, _ := newRipple()
	require.NotPanics(t, func() {
		r.EndHover()
		r.EndFocus()
		r.EndPress()
	})
	st := r.State()
	assert.False(t, st.Hovered)
	assert.Zero(t, st.HoverOpacity)
}

func TestHoverAndFocusOverlays(t *testing.T) {
	r, sched, clock := newRipple()
	r.StartHover()
	r.StartFocus()
	frame(sched, r, clock, ripple.OverlayDuration)

	st := r.State()
	assert.InDelta(t, ripple.HoverOpacity, st.HoverOpacity, 1e-9)
	assert.InDelta(t, ripple.FocusOpacity, st.FocusOpacity, 1e-9)

	r.EndHover()
	frame(sched, r, clock, ripple.OverlayDuration)
	assert.Zero(t, r.State().HoverOpacity)
	assert.True(t, r.State().Focused)
}

func TestDisabledIgnoresStartsButHonorsEnds(t *testing.T) {
	r, _, _ := newRipple()
	r.StartPress(nil)
	r.SetProps(ripple.Props{Disabled: true})

	r.StartHover()
	assert.False(t, r.State().Hovered)

	r.EndPress()
	assert.False(t, r.State().Pressed)
}

func TestRippleSatisfiesEffect(t *testing.T) {
	var _ ripple.Effect = (*ripple.Ripple)(nil)
}
