// Package button implements a themeable push button with a lazily mounted
// ripple.
//
// A [Surface] renders the button markup from its [Config], wires the native
// element's input events to [ripple.Handlers], and owns the ripple's mount
// state. The ripple is not created until the first press, hover or focus;
// the mount request marks the surface dirty, the next build includes the
// ripple, and a post-frame callback resolves the handle so queued calls
// reach the effect in the order they were made.
//
// Surfaces run on a [core.BuildOwner] and a [dom.Document]. [Runtime]
// bundles both with an animation scheduler.
package button

import (
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/go-drift/ripplebutton/pkg/animation"
	"github.com/go-drift/ripplebutton/pkg/core"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/errors"
	"github.com/go-drift/ripplebutton/pkg/future"
	"github.com/go-drift/ripplebutton/pkg/log"
	"github.com/go-drift/ripplebutton/pkg/render"
	"github.com/go-drift/ripplebutton/pkg/ripple"
)

var errNoRipple = stderrors.New("ripple factory returned no effect")

// DefaultBounds is the size a surface takes when Options.Bounds is empty.
var DefaultBounds = dom.RectXYWH(0, 0, 88, 36)

// RippleFactory creates the effect when a surface first mounts its ripple.
type RippleFactory func(s *Surface) ripple.Effect

// Options configures a surface's environment.
type Options struct {
	// Owner schedules rebuilds. A surface without an owner gets its own.
	Owner *core.BuildOwner
	// Document hosts the native button element. Without one the element
	// never mounts, and Focus and Blur are no-ops.
	Document *dom.Document
	// Bounds places the element in the document.
	Bounds dom.Rect
	// Scheduler animates the default ripple.
	Scheduler *animation.Scheduler
	// NewRipple overrides the effect the surface mounts.
	NewRipple RippleFactory
	// Logger receives debug output. Nil is silent.
	Logger *log.Logger
}

// propsSetter is implemented by effects that take render-time inputs.
type propsSetter interface {
	SetProps(ripple.Props)
}

// boundsSetter is implemented by effects that track the surface geometry.
type boundsSetter interface {
	SetBounds(dom.Rect)
}

// Surface is a button instance. It is not safe for concurrent use.
type Surface struct {
	core.StateBase

	id     string
	logger *log.Logger
	doc    *dom.Document
	bounds dom.Rect

	config *core.Managed[Config]
	mount  *core.Managed[ripple.MountState]

	handle    *future.Future[ripple.Effect]
	effect    ripple.Effect
	newRipple RippleFactory
	handlers  *ripple.Handlers
	press     pressTracker

	element *dom.Element
	tree    *render.Node
	print   uint64
	printed bool
	commits int

	// OnCommit is called after a build that changed the rendered markup.
	OnCommit func(tree *render.Node)
}

// NewSurface creates a surface and schedules its first build.
func NewSurface(cfg Config, opts Options) *Surface {
	owner := opts.Owner
	if owner == nil {
		owner = core.NewBuildOwner()
	}
	bounds := opts.Bounds
	if !bounds.IsValid() {
		bounds = DefaultBounds
	}
	s := &Surface{
		id:     uuid.NewString(),
		doc:    opts.Document,
		bounds: bounds,
	}
	s.logger = opts.Logger.With("surface", s.id)
	s.Attach(owner, s)
	s.config = core.NewManaged(s, cfg)
	s.mount = core.NewManaged(s, ripple.MountNotRequested)
	s.handlers = ripple.NewHandlers(s, s.logger)
	s.newRipple = opts.NewRipple
	if s.newRipple == nil {
		sched := opts.Scheduler
		if sched == nil {
			sched = animation.NewScheduler(nil)
		}
		s.newRipple = func(s *Surface) ripple.Effect {
			return ripple.New(sched, s.bounds, s.logger)
		}
	}
	s.OnDispose(s.teardown)
	s.SetState(nil)
	return s
}

// ID returns the surface's unique id.
func (s *Surface) ID() string {
	return s.id
}

// Config returns the current configuration.
func (s *Surface) Config() Config {
	return s.config.Value()
}

// SetConfig replaces the configuration.
func (s *Surface) SetConfig(cfg Config) {
	s.config.Set(cfg)
}

// Update edits the configuration in place.
func (s *Surface) Update(edit func(cfg *Config)) {
	s.config.Update(func(cfg Config) Config {
		edit(&cfg)
		return cfg
	})
}

// Bounds returns the element's box.
func (s *Surface) Bounds() dom.Rect {
	return s.bounds
}

// SetBounds moves the surface.
func (s *Surface) SetBounds(bounds dom.Rect) {
	s.bounds = bounds
	if s.element != nil {
		s.element.Bounds = bounds
	}
	if b, ok := s.effect.(boundsSetter); ok {
		b.SetBounds(bounds)
	}
}

// Element returns the native button element, nil until the first build.
func (s *Surface) Element() *dom.Element {
	return s.element
}

// Handlers returns the ripple coordinator.
func (s *Surface) Handlers() *ripple.Handlers {
	return s.handlers
}

// MountState reports how far the ripple has mounted.
func (s *Surface) MountState() ripple.MountState {
	return s.mount.Value()
}

// Effect returns the mounted ripple, nil before mounting.
func (s *Surface) Effect() ripple.Effect {
	if s.mount.Value() != ripple.Mounted {
		return nil
	}
	return s.effect
}

// RippleProps are the inputs the ripple receives at render time.
func (s *Surface) RippleProps() ripple.Props {
	cfg := s.config.Value()
	return ripple.Props{Filled: cfg.Filled(), Disabled: cfg.Disabled}
}

// Pressed reports whether the event mapper is in the pressed state.
func (s *Surface) Pressed() bool {
	return s.press.pressed
}

// Tree returns the last committed markup, nil before the first build.
func (s *Surface) Tree() *render.Node {
	return s.tree
}

// Commits counts builds that changed the markup.
func (s *Surface) Commits() int {
	return s.commits
}

// RequestRipple implements ripple.Host. The first call moves the mount state
// to requested and schedules a build; later calls return the same handle.
// A disposed surface hands out an empty handle so late calls are dropped.
func (s *Surface) RequestRipple() *future.Future[ripple.Effect] {
	if s.IsDisposed() {
		return future.Empty[ripple.Effect]()
	}
	if s.handle == nil {
		s.handle = future.New[ripple.Effect]()
		s.mount.Set(ripple.MountRequested)
		s.logger.Debug("ripple mount requested")
	}
	return s.handle
}

// Ripple implements ripple.Host.
func (s *Surface) Ripple() *future.Future[ripple.Effect] {
	if s.IsDisposed() && s.handle != nil {
		return future.Empty[ripple.Effect]()
	}
	return s.handle
}

// Rebuild renders the surface and commits the result if it changed. It also
// mounts the native element and, once requested, the ripple.
func (s *Surface) Rebuild() {
	if s.IsDisposed() {
		return
	}
	cfg := s.config.Value()
	if s.element == nil && s.doc != nil {
		s.mountElement()
	}
	if s.element != nil {
		s.element.SetDisabled(cfg.Disabled)
	}

	if s.mount.Value() != ripple.MountNotRequested && s.effect == nil && !s.handle.Done() {
		s.effect = s.newRipple(s)
		if s.effect == nil {
			// Queued calls are dropped; the mount state stays requested.
			s.handle.Discard()
			errors.Report(&errors.Error{
				Op:      "button.Surface.Rebuild",
				Kind:    errors.KindMount,
				Err:     errNoRipple,
				Surface: s.id,
			})
		} else {
			s.Owner().AddPostFrameCallback(s.resolveRipple)
		}
	}
	if p, ok := s.effect.(propsSetter); ok {
		p.SetProps(s.RippleProps())
	}

	tree := s.Render()
	fp, err := tree.Fingerprint()
	if err != nil {
		errors.Report(&errors.Error{
			Op:      "button.Surface.Rebuild",
			Kind:    errors.KindRender,
			Err:     err,
			Surface: s.id,
		})
	}
	// An unserializable tree always commits and leaves no print to match.
	if err != nil || !s.printed || fp != s.print {
		s.tree = tree
		s.print, s.printed = fp, err == nil
		s.commits++
		if s.OnCommit != nil {
			s.OnCommit(tree)
		}
	}
}

// resolveRipple runs after the build that rendered the ripple, when the
// effect becomes queryable.
func (s *Surface) resolveRipple() {
	if s.IsDisposed() || s.handle == nil {
		return
	}
	if s.handle.Resolve(s.effect) {
		s.mount.Set(ripple.Mounted)
		s.logger.Debug("ripple mounted")
	}
}

// Focus focuses the native element and starts the focus ripple. Before the
// element exists it does nothing.
func (s *Surface) Focus() {
	if s.element == nil || s.IsDisposed() {
		return
	}
	s.handlers.StartFocus()
	s.element.Focus()
}

// Blur blurs the native element and ends the focus ripple. Before the
// element exists it does nothing.
func (s *Surface) Blur() {
	if s.element == nil || s.IsDisposed() {
		return
	}
	s.handlers.EndFocus()
	s.element.Blur()
}

// Dispose releases the global press listener, element listeners and the
// ripple. Calls queued for a ripple that never mounted are dropped.
func (s *Surface) Dispose() {
	s.StateBase.Dispose()
}

// Tick advances time-dependent ripple work; Runtime.Frame calls it.
func (s *Surface) Tick() {
	if t, ok := s.Effect().(interface{ Tick() }); ok {
		t.Tick()
	}
}

func (s *Surface) teardown() {
	s.press.release()
	if s.handle != nil && s.handle.Discard() {
		s.logger.Debug("ripple mount abandoned")
	}
	if d, ok := s.effect.(interface{ Dispose() }); ok {
		d.Dispose()
	}
	if s.element != nil && s.doc != nil {
		s.doc.Detach(s.element)
	}
}

var _ Button = (*Surface)(nil)
var _ ripple.Host = (*Surface)(nil)
