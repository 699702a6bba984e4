package testing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/ripple"
	rbtest "github.com/go-drift/ripplebutton/pkg/testing"
)

func TestFakeClock(t *testing.T) {
	c := rbtest.NewFakeClock()
	start := c.Now()

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, c.Now().Sub(start))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestRecordingEffect(t *testing.T) {
	r := rbtest.NewRecordingEffect()
	evt := &dom.Event{Type: dom.PointerDown}

	r.StartPress(evt)
	r.StartPress(nil)
	r.EndPress()
	r.SetProps(ripple.Props{Filled: true})

	assert.Equal(t, []string{"startPress", "startPress", "endPress"}, r.Calls())
	assert.Equal(t, 2, r.Count("startPress"))
	assert.Equal(t, []*dom.Event{evt, nil}, r.PressEvents())
	props, ok := r.LastProps()
	require.True(t, ok)
	assert.True(t, props.Filled)

	r.Reset()
	assert.Empty(t, r.Calls())
	_, ok = r.LastProps()
	assert.False(t, ok)
}

func TestTesterOptions(t *testing.T) {
	bounds := dom.RectXYWH(10, 10, 100, 40)
	tr := rbtest.NewTester(t, button.Config{Label: "OK"},
		rbtest.WithVariant(button.Outlined),
		rbtest.WithBounds(bounds),
	)

	assert.True(t, tr.Surface.Config().Outlined)
	assert.Equal(t, bounds, tr.Surface.Element().Bounds)
	x, y := tr.Center()
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 30.0, y)
	ox, oy := tr.Outside()
	assert.False(t, bounds.Contains(ox, oy))
}

func TestTesterGestures(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Label: "OK"})
	assert.Nil(t, tr.Calls())

	tr.TouchTap()
	tr.Pump()
	assert.Equal(t, []string{"startPress", "endPress"}, tr.Calls())

	tr.Effect().Reset()
	tr.Hover()
	tr.Unhover()
	tr.TouchStart(2)
	tr.TouchCancel(2)
	assert.Equal(t, []string{"startHover", "endHover", "startPress", "endPress"}, tr.Calls())
	assert.Equal(t, 0, tr.GlobalListeners())
}

func TestTesterReferenceRipple(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Label: "OK"}, rbtest.WithReferenceRipple())

	tr.Hover()
	tr.Pump()
	require.NotNil(t, tr.Ripple())
	assert.Nil(t, tr.Effect())

	tr.Advance(ripple.OverlayDuration)
	assert.InDelta(t, ripple.HoverOpacity, tr.Ripple().State().HoverOpacity, 1e-9)
}
