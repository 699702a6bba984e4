package testing

import (
	"testing"
	"time"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/ripple"
)

// Tester mounts a single surface on its own runtime for tests.
type Tester struct {
	t       testing.TB
	Clock   *FakeClock
	Runtime *button.Runtime
	Surface *button.Surface

	real   bool
	effect *RecordingEffect
	ripple *ripple.Ripple
}

// Option configures a Tester.
type Option func(*testerOptions)

type testerOptions struct {
	variant  button.Variant
	bounds   dom.Rect
	real     bool
	unpumped bool
}

// WithVariant creates the surface through the given variant constructor.
func WithVariant(v button.Variant) Option {
	return func(o *testerOptions) { o.variant = v }
}

// WithBounds places the surface.
func WithBounds(bounds dom.Rect) Option {
	return func(o *testerOptions) { o.bounds = bounds }
}

// WithReferenceRipple mounts the animated ripple instead of a recorder.
func WithReferenceRipple() Option {
	return func(o *testerOptions) { o.real = true }
}

// Unpumped skips the initial frame, leaving the native element unmounted.
func Unpumped() Option {
	return func(o *testerOptions) { o.unpumped = true }
}

// NewTester creates a surface from cfg and runs the first frame. The
// runtime is disposed when the test ends.
func NewTester(t testing.TB, cfg button.Config, opts ...Option) *Tester {
	t.Helper()
	var o testerOptions
	for _, opt := range opts {
		opt(&o)
	}

	clock := NewFakeClock()
	tr := &Tester{t: t, Clock: clock, Runtime: button.NewRuntime(clock), real: o.real}
	tr.Runtime.NewRipple = func(s *button.Surface) ripple.Effect {
		if tr.real {
			tr.ripple = ripple.New(tr.Runtime.Scheduler, s.Bounds(), nil)
			return tr.ripple
		}
		tr.effect = NewRecordingEffect()
		return tr.effect
	}
	tr.Surface = tr.Runtime.NewSurface(o.variant, cfg, o.bounds)
	t.Cleanup(tr.Runtime.Dispose)

	if !o.unpumped {
		tr.Pump()
	}
	return tr
}

// Pump runs one frame.
func (tr *Tester) Pump() {
	tr.t.Helper()
	tr.Runtime.Frame()
}

// Advance moves the clock forward by d and runs a frame.
func (tr *Tester) Advance(d time.Duration) {
	tr.t.Helper()
	tr.Clock.Advance(d)
	tr.Pump()
}

// Effect returns the recording effect, nil until the ripple is created or
// when the reference ripple is in use.
func (tr *Tester) Effect() *RecordingEffect {
	return tr.effect
}

// Ripple returns the reference ripple, nil until created or when recording.
func (tr *Tester) Ripple() *ripple.Ripple {
	return tr.ripple
}

// Calls returns the recorded ripple calls, empty before the ripple exists.
func (tr *Tester) Calls() []string {
	if tr.effect == nil {
		return nil
	}
	return tr.effect.Calls()
}

// GlobalListeners returns the number of document-global listeners.
func (tr *Tester) GlobalListeners() int {
	return tr.Runtime.Document.ListenerCount()
}

// Center returns the middle of the surface.
func (tr *Tester) Center() (x, y float64) {
	return tr.Surface.Bounds().Center()
}

// Outside returns a point well clear of the surface.
func (tr *Tester) Outside() (x, y float64) {
	b := tr.Surface.Bounds()
	return b.Right + 100, b.Bottom + 100
}

// PointerDown dispatches a mouse pointerdown at (x, y).
func (tr *Tester) PointerDown(x, y float64) {
	tr.Runtime.Document.DispatchPointer(dom.PointerDown, x, y)
}

// PointerUp dispatches a mouse pointerup at (x, y).
func (tr *Tester) PointerUp(x, y float64) {
	tr.Runtime.Document.DispatchPointer(dom.PointerUp, x, y)
}

// PointerMove dispatches a mouse pointermove at (x, y).
func (tr *Tester) PointerMove(x, y float64) {
	tr.Runtime.Document.DispatchPointer(dom.PointerMove, x, y)
}

// Tap presses and releases at the center.
func (tr *Tester) Tap() {
	x, y := tr.Center()
	tr.PointerDown(x, y)
	tr.PointerUp(x, y)
}

// PressAndReleaseOutside presses at the center, drags off the surface and
// releases there.
func (tr *Tester) PressAndReleaseOutside() {
	x, y := tr.Center()
	tr.PointerDown(x, y)
	ox, oy := tr.Outside()
	tr.PointerMove(ox, oy)
	tr.PointerUp(ox, oy)
}

// TouchStart starts touch point id at the center.
func (tr *Tester) TouchStart(id int64) {
	x, y := tr.Center()
	tr.Runtime.Document.DispatchTouch(dom.TouchStart, id, x, y)
}

// TouchEnd ends touch point id.
func (tr *Tester) TouchEnd(id int64) {
	x, y := tr.Center()
	tr.Runtime.Document.DispatchTouch(dom.TouchEnd, id, x, y)
}

// TouchCancel cancels touch point id.
func (tr *Tester) TouchCancel(id int64) {
	x, y := tr.Center()
	tr.Runtime.Document.DispatchTouch(dom.TouchCancel, id, x, y)
}

// TouchTap starts and ends a single touch at the center.
func (tr *Tester) TouchTap() {
	tr.TouchStart(1)
	tr.TouchEnd(1)
}

// Hover moves the mouse onto the surface.
func (tr *Tester) Hover() {
	tr.PointerMove(tr.Center())
}

// Unhover moves the mouse off the surface.
func (tr *Tester) Unhover() {
	tr.PointerMove(tr.Outside())
}
