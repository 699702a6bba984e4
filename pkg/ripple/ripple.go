package ripple

import (
	"math"
	"time"

	"github.com/go-drift/ripplebutton/pkg/animation"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/log"
)

// Timings and opacities of the material ripple.
const (
	PressGrowDuration  = 225 * time.Millisecond
	PressFadeDuration  = 150 * time.Millisecond
	OverlayDuration    = 75 * time.Millisecond
	MinPressVisible    = 150 * time.Millisecond
	PressOpacity       = 0.12
	HoverOpacity       = 0.04
	FocusOpacity       = 0.12
	wavePadding        = 10.0
	initialRadiusRatio = 0.6
)

// State is a snapshot of what the ripple is drawing.
type State struct {
	Pressed, Hovered, Focused bool
	Props                     Props
	// OriginX and OriginY locate the wave center relative to the surface.
	OriginX, OriginY float64
	// Radius is the current wave radius.
	Radius float64
	// WaveOpacity, HoverOpacity and FocusOpacity are overlay alphas in [0, 1].
	WaveOpacity, HoverOpacity, FocusOpacity float64
	// LastPressDuration is how long the most recent completed press lasted.
	LastPressDuration time.Duration
}

// Ripple is the reference Effect: a press wave growing from the pointer plus
// hover and focus overlays, each driven by an animation controller.
//
// Ripple keeps the begin/end flags itself, so unmatched End calls are no-ops.
// While disabled it ignores Start calls but still honors End calls.
type Ripple struct {
	logger *log.Logger
	sched  *animation.Scheduler
	bounds dom.Rect
	props  Props

	grow, fade, hover, focus *animation.Controller

	pressed, hovered, focused bool
	originX, originY          float64
	pressStart                time.Time
	lastPress                 time.Duration
	pendingRelease            bool
}

// New creates a ripple covering bounds, animated by sched.
func New(sched *animation.Scheduler, bounds dom.Rect, logger *log.Logger) *Ripple {
	r := &Ripple{
		logger: logger,
		sched:  sched,
		bounds: bounds,
		grow:   animation.NewController(sched, PressGrowDuration),
		fade:   animation.NewController(sched, PressFadeDuration),
		hover:  animation.NewController(sched, OverlayDuration),
		focus:  animation.NewController(sched, OverlayDuration),
	}
	r.grow.Curve = animation.Standard
	r.fade.Curve = animation.Linear
	r.hover.Curve = animation.Linear
	r.focus.Curve = animation.Linear
	return r
}

// SetProps applies render-time inputs.
func (r *Ripple) SetProps(p Props) {
	r.props = p
}

// Props returns the last applied render-time inputs.
func (r *Ripple) Props() Props {
	return r.props
}

// SetBounds moves the ripple to follow its surface.
func (r *Ripple) SetBounds(bounds dom.Rect) {
	r.bounds = bounds
}

// StartPress begins a wave at the event position, or at the center when evt
// is nil or carries no position inside the surface.
func (r *Ripple) StartPress(evt *dom.Event) {
	if r.props.Disabled || r.pressed {
		return
	}
	r.pressed = true
	r.pendingRelease = false
	r.pressStart = r.sched.Now()
	r.originX, r.originY = r.bounds.Width()/2, r.bounds.Height()/2
	if evt != nil && r.bounds.Contains(evt.X, evt.Y) {
		r.originX, r.originY = evt.X-r.bounds.Left, evt.Y-r.bounds.Top
	}
	r.grow.Reset()
	r.grow.Value = math.Min(1, r.initialRadius()/r.maxRadius())
	r.grow.Forward()
	r.fade.Stop()
	r.fade.Value = 1
	r.logger.With("origin", [2]float64{r.originX, r.originY}).Debug("ripple press start")
}

// EndPress releases the wave. A very short press keeps the wave visible for
// MinPressVisible before fading.
func (r *Ripple) EndPress() {
	if !r.pressed {
		return
	}
	r.pressed = false
	r.lastPress = r.sched.Now().Sub(r.pressStart)
	if r.lastPress < MinPressVisible {
		r.pendingRelease = true
		return
	}
	r.release()
}

func (r *Ripple) release() {
	r.pendingRelease = false
	r.fade.Reverse()
}

// StartHover shows the hover overlay.
func (r *Ripple) StartHover() {
	if r.props.Disabled || r.hovered {
		return
	}
	r.hovered = true
	r.hover.Forward()
}

// EndHover hides the hover overlay.
func (r *Ripple) EndHover() {
	if !r.hovered {
		return
	}
	r.hovered = false
	r.hover.Reverse()
}

// StartFocus shows the focus overlay.
func (r *Ripple) StartFocus() {
	if r.props.Disabled || r.focused {
		return
	}
	r.focused = true
	r.focus.Forward()
}

// EndFocus hides the focus overlay.
func (r *Ripple) EndFocus() {
	if !r.focused {
		return
	}
	r.focused = false
	r.focus.Reverse()
}

// Tick runs deferred work that depends on time. The host calls it once per
// frame after stepping the scheduler.
func (r *Ripple) Tick() {
	if r.pendingRelease && r.sched.Now().Sub(r.pressStart) >= MinPressVisible {
		r.release()
	}
}

// IsAnimating reports whether any part of the ripple is still moving.
func (r *Ripple) IsAnimating() bool {
	return r.pendingRelease || r.grow.IsAnimating() || r.fade.IsAnimating() ||
		r.hover.IsAnimating() || r.focus.IsAnimating()
}

// State returns a snapshot for rendering.
func (r *Ripple) State() State {
	return State{
		Pressed:           r.pressed,
		Hovered:           r.hovered,
		Focused:           r.focused,
		Props:             r.props,
		OriginX:           r.originX,
		OriginY:           r.originY,
		Radius:            r.grow.Value * r.maxRadius(),
		WaveOpacity:       r.fade.Value * PressOpacity,
		HoverOpacity:      r.hover.Value * HoverOpacity,
		FocusOpacity:      r.focus.Value * FocusOpacity,
		LastPressDuration: r.lastPress,
	}
}

// Dispose stops all animations.
func (r *Ripple) Dispose() {
	r.grow.Dispose()
	r.fade.Dispose()
	r.hover.Dispose()
	r.focus.Dispose()
}

func (r *Ripple) maxRadius() float64 {
	return math.Hypot(r.bounds.Width(), r.bounds.Height())/2 + wavePadding
}

// initialRadius is where the wave starts: 60% of the larger side, as a diameter.
func (r *Ripple) initialRadius() float64 {
	return math.Max(r.bounds.Width(), r.bounds.Height()) * initialRadiusRatio / 2
}
