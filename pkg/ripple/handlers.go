package ripple

import (
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/future"
	"github.com/go-drift/ripplebutton/pkg/log"
)

// Handlers relays press, hover and focus signals to a lazily mounted Effect.
//
// Handlers keeps no interaction state of its own. Pairing is the caller's
// job; ordering is the future's.
type Handlers struct {
	host   Host
	logger *log.Logger
}

// NewHandlers returns Handlers bound to host. logger may be nil.
func NewHandlers(host Host, logger *log.Logger) *Handlers {
	return &Handlers{host: host, logger: logger}
}

// StartPress begins the press visual. evt may be nil for keyboard activation,
// in which case the effect presses from its center.
func (h *Handlers) StartPress(evt *dom.Event) {
	h.start("startPress", func(e Effect) { e.StartPress(evt) })
}

// EndPress ends the press visual.
func (h *Handlers) EndPress() {
	h.end("endPress", Effect.EndPress)
}

// StartHover begins the hover visual.
func (h *Handlers) StartHover() {
	h.start("startHover", Effect.StartHover)
}

// EndHover ends the hover visual. Without a prior StartHover it does nothing.
func (h *Handlers) EndHover() {
	h.end("endHover", Effect.EndHover)
}

// StartFocus begins the focus visual.
func (h *Handlers) StartFocus() {
	h.start("startFocus", Effect.StartFocus)
}

// EndFocus ends the focus visual.
func (h *Handlers) EndFocus() {
	h.end("endFocus", Effect.EndFocus)
}

func (h *Handlers) start(call string, fn func(Effect)) {
	h.forward(h.host.RequestRipple(), call, fn)
}

func (h *Handlers) end(call string, fn func(Effect)) {
	handle := h.host.Ripple()
	if handle == nil {
		h.logger.With("call", call).Debug("ripple never requested, ignoring")
		return
	}
	h.forward(handle, call, fn)
}

func (h *Handlers) forward(handle *future.Future[Effect], call string, fn func(Effect)) {
	if handle == nil {
		return
	}
	if !handle.Done() {
		h.logger.With("call", call).Debug("ripple not mounted yet, queueing")
	}
	handle.Then(func(e Effect) {
		if e == nil {
			h.logger.With("call", call).Debug("ripple unavailable, dropping")
			return
		}
		fn(e)
	})
}
