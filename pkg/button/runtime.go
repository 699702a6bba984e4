package button

import (
	"time"

	"github.com/go-drift/ripplebutton/pkg/animation"
	"github.com/go-drift/ripplebutton/pkg/core"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/log"
)

// Runtime is the host environment for a set of surfaces: one document, one
// build owner and one animation scheduler sharing a clock.
type Runtime struct {
	Document  *dom.Document
	Owner     *core.BuildOwner
	Scheduler *animation.Scheduler
	Logger    *log.Logger

	// NewRipple, when set, is passed to every surface the runtime creates.
	NewRipple RippleFactory

	surfaces []*Surface
	frames   int
}

// NewRuntime creates a runtime reading time from clock. A nil clock uses
// the system clock.
func NewRuntime(clock animation.Clock) *Runtime {
	if clock == nil {
		clock = animation.SystemClock{}
	}
	doc := dom.NewDocument()
	doc.Now = clock.Now
	return &Runtime{
		Document:  doc,
		Owner:     core.NewBuildOwner(),
		Scheduler: animation.NewScheduler(clock),
	}
}

// SetLogger routes runtime, document and surface output to logger.
func (r *Runtime) SetLogger(logger *log.Logger) {
	r.Logger = logger
	r.Document.Logger = logger.With("document", r.Document.ID)
}

// NewSurface creates a surface of variant v on this runtime. An empty bounds
// uses DefaultBounds.
func (r *Runtime) NewSurface(v Variant, cfg Config, bounds dom.Rect) *Surface {
	s := New(v, cfg, Options{
		Owner:     r.Owner,
		Document:  r.Document,
		Bounds:    bounds,
		Scheduler: r.Scheduler,
		NewRipple: r.NewRipple,
		Logger:    r.Logger,
	})
	r.surfaces = append(r.surfaces, s)
	return s
}

// Surfaces returns the live surfaces in creation order.
func (r *Runtime) Surfaces() []*Surface {
	r.prune()
	return append([]*Surface(nil), r.surfaces...)
}

// Frame runs one frame: pending builds and post-frame callbacks, one
// animation step, ripple ticks, then any builds those caused.
func (r *Runtime) Frame() {
	start := time.Now()
	r.Owner.FlushBuild()
	r.Scheduler.Step()
	r.prune()
	for _, s := range r.surfaces {
		s.Tick()
	}
	r.Owner.FlushBuild()
	r.frames++
	r.Logger.WithFields(map[string]any{
		"frame":    r.frames,
		"duration": time.Since(start).String(),
	}).Debug("frame")
}

// Frames counts frames run so far.
func (r *Runtime) Frames() int {
	return r.frames
}

// Idle reports whether nothing is pending: no builds, callbacks or running
// animations.
func (r *Runtime) Idle() bool {
	return !r.Owner.NeedsWork() && !r.Scheduler.HasActiveTickers()
}

// Dispose disposes every surface.
func (r *Runtime) Dispose() {
	for _, s := range r.surfaces {
		s.Dispose()
	}
	r.surfaces = nil
}

func (r *Runtime) prune() {
	live := r.surfaces[:0]
	for _, s := range r.surfaces {
		if !s.IsDisposed() {
			live = append(live, s)
		}
	}
	clear(r.surfaces[len(live):])
	r.surfaces = live
}
