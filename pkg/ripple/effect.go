// Package ripple coordinates the lazily mounted ripple effect of a button.
//
// The effect is expensive, so a surface only renders it after the first
// interaction. [Handlers] sits between input events and the effect: every
// Start call asks the [Host] to mount the ripple and chains the forwarded call
// onto the host's [future.Future]; End calls chain onto the same future when
// one exists. Calls issued before the effect mounts are delivered in order
// once it does, and silently dropped if it never does.
package ripple

import (
	"fmt"

	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/future"
)

// Effect is the visual ripple a surface mounts on demand. It must tolerate
// End calls without a matching Start.
type Effect interface {
	StartPress(evt *dom.Event)
	EndPress()
	StartHover()
	EndHover()
	StartFocus()
	EndFocus()
}

// Props are the render-time inputs a surface passes to its ripple.
type Props struct {
	// Filled selects the ripple color for raised and unelevated buttons.
	Filled bool
	// Disabled mirrors the button's disabled flag.
	Disabled bool
}

// Primary reports whether the ripple uses the primary color, which is the
// case for flat (text and outlined) buttons.
func (p Props) Primary() bool {
	return !p.Filled
}

// MountState tracks how far the ripple has progressed toward being usable.
// It only moves forward.
type MountState int

const (
	// MountNotRequested means no interaction has asked for the ripple yet.
	MountNotRequested MountState = iota
	// MountRequested means the next render pass will include the ripple.
	MountRequested
	// Mounted means the ripple handle has resolved.
	Mounted
)

func (s MountState) String() string {
	switch s {
	case MountNotRequested:
		return "not-requested"
	case MountRequested:
		return "requested"
	case Mounted:
		return "mounted"
	default:
		return fmt.Sprintf("MountState(%d)", int(s))
	}
}

// Host owns the ripple's mount state. Handlers only read it through these
// callbacks.
type Host interface {
	// RequestRipple asks for the ripple to be rendered and returns the handle
	// that resolves once it mounts. Calling it again returns the same handle
	// and does nothing else.
	RequestRipple() *future.Future[Effect]
	// Ripple returns the handle if the ripple was ever requested, else nil.
	Ripple() *future.Future[Effect]
}
