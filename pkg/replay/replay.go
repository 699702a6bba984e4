// Package replay runs a scripted interaction against a button and reports
// what the ripple saw.
package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/config"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/errors"
	"github.com/go-drift/ripplebutton/pkg/log"
	"github.com/go-drift/ripplebutton/pkg/render"
	"github.com/go-drift/ripplebutton/pkg/ripple"
)

// Epoch is the clock's starting time, so traces are reproducible.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Call is one method call the ripple received.
type Call struct {
	// Step is the index of the script step that was running.
	Step int `json:"step"`
	// At is the script clock offset from Epoch.
	At time.Duration `json:"at"`
	// Name is the effect method, such as "startPress".
	Name string `json:"name"`
}

func (c Call) String() string {
	return fmt.Sprintf("step %d @%s %s", c.Step, c.At, c.Name)
}

// Result is the outcome of a replay.
type Result struct {
	Calls           []Call            `json:"calls"`
	Mount           ripple.MountState `json:"-"`
	MountName       string            `json:"mount"`
	Pressed         bool              `json:"pressed"`
	GlobalListeners int               `json:"globalListeners"`
	Frames          int               `json:"frames"`
	// State is the reference ripple's final state, zero when never mounted.
	State  ripple.State `json:"state"`
	Tree   *render.Node `json:"tree"`
	Bounds dom.Rect     `json:"bounds"`
}

// Options configures a replay.
type Options struct {
	Logger *log.Logger
	// OnCall, if set, sees each call as the ripple receives it.
	OnCall func(Call)
}

// Run replays script on a fresh runtime. Between steps it checks ctx and
// stops with its error. A step that panics stops the replay with a
// KindPanic error.
func Run(ctx context.Context, script *config.Script, opts Options) (*Result, error) {
	clock := &manualClock{now: Epoch}
	rt := button.NewRuntime(clock)
	rt.SetLogger(opts.Logger)

	res := &Result{}
	step := -1
	var effect *ripple.Ripple
	rt.NewRipple = func(s *button.Surface) ripple.Effect {
		effect = ripple.New(rt.Scheduler, s.Bounds(), opts.Logger)
		return &tracer{Ripple: effect, record: func(name string) {
			c := Call{Step: step, At: clock.Now().Sub(Epoch), Name: name}
			res.Calls = append(res.Calls, c)
			if opts.OnCall != nil {
				opts.OnCall(c)
			}
		}}
	}

	kind, cfg := script.Button.Button()
	bounds := script.Button.Bounds()
	surface := rt.NewSurface(kind, cfg, bounds)
	defer rt.Dispose()
	rt.Frame()

	for i, st := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, &errors.Error{Op: "replay.Run", Kind: errors.KindEvent, Err: err, Surface: surface.ID()}
		}
		step = i
		var err error
		if perr := errors.Guard("replay.Run", surface.ID(), func() {
			err = apply(rt, surface, clock, st)
		}); perr != nil {
			perr.Err = fmt.Errorf("steps[%d]: %w", i, perr.Err)
			return nil, perr
		}
		if err != nil {
			return nil, &errors.Error{
				Op:      "replay.Run",
				Kind:    errors.KindEvent,
				Err:     fmt.Errorf("steps[%d]: %w", i, err),
				Surface: surface.ID(),
			}
		}
	}
	step = len(script.Steps)
	rt.Frame()

	res.Mount = surface.MountState()
	res.MountName = res.Mount.String()
	res.Pressed = surface.Pressed()
	res.GlobalListeners = rt.Document.ListenerCount()
	res.Frames = rt.Frames()
	res.Tree = surface.Tree()
	res.Bounds = bounds
	if effect != nil {
		res.State = effect.State()
	}
	return res, nil
}

func apply(rt *button.Runtime, s *button.Surface, clock *manualClock, st config.Step) error {
	bounds := s.Bounds()
	x, y := st.Position(bounds)
	doc := rt.Document

	switch st.Op {
	case config.OpFlush:
		rt.Frame()
		return nil
	case config.OpAdvance:
		clock.advance(time.Duration(st.MS) * time.Millisecond)
		rt.Frame()
		return nil
	case config.OpDispose:
		s.Dispose()
		return nil
	case config.OpElementFocus, config.OpElementBlur:
		// The native element alone, without the surface's own focus call.
		el := s.Element()
		if el == nil {
			return nil
		}
		if st.Op == config.OpElementFocus {
			el.Focus()
		} else {
			el.Blur()
		}
		return nil
	}

	typ, ok := dom.ParseEventType(st.Op)
	if !ok {
		return fmt.Errorf("unknown op %q", st.Op)
	}
	switch typ {
	case dom.PointerDown, dom.PointerUp, dom.PointerMove:
		doc.DispatchPointer(typ, x, y)
	case dom.PointerEnter:
		doc.DispatchPointer(dom.PointerMove, x, y)
	case dom.PointerLeave:
		if st.X == nil && st.Y == nil {
			x, y = bounds.Right+1, bounds.Bottom+1
		}
		doc.DispatchPointer(dom.PointerMove, x, y)
	case dom.TouchStart, dom.TouchEnd, dom.TouchCancel:
		doc.DispatchTouch(typ, st.Touch, x, y)
	case dom.Focus:
		s.Focus()
	case dom.Blur:
		s.Blur()
	}
	return nil
}

// manualClock only moves when the script advances it.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// tracer records calls before forwarding them to the reference ripple. The
// embedded ripple keeps SetProps, SetBounds, Tick and Dispose reachable.
type tracer struct {
	*ripple.Ripple
	record func(name string)
}

func (t *tracer) StartPress(evt *dom.Event) {
	t.record("startPress")
	t.Ripple.StartPress(evt)
}

func (t *tracer) EndPress() {
	t.record("endPress")
	t.Ripple.EndPress()
}

func (t *tracer) StartHover() {
	t.record("startHover")
	t.Ripple.StartHover()
}

func (t *tracer) EndHover() {
	t.record("endHover")
	t.Ripple.EndHover()
}

func (t *tracer) StartFocus() {
	t.record("startFocus")
	t.Ripple.StartFocus()
}

func (t *tracer) EndFocus() {
	t.record("endFocus")
	t.Ripple.EndFocus()
}
