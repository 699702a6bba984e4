package button

import (
	"github.com/go-drift/ripplebutton/pkg/dom"
)

// pressTracker is the idle/pressed state of the event mapper. While pressed
// it holds document-global release listeners: pointerup always, plus
// touchend and touchcancel for the touch point that started a touch press.
// release is the only way those listeners are removed.
type pressTracker struct {
	pressed bool
	remove  []func()
}

// begin moves to pressed and arms the global release listeners. It reports
// false when already pressed.
func (p *pressTracker) begin(doc *dom.Document, evt *dom.Event, onRelease func()) bool {
	if p.pressed {
		return false
	}
	p.pressed = true
	if doc == nil {
		return true
	}
	p.remove = append(p.remove, doc.AddEventListener(dom.PointerUp, func(*dom.Event) { onRelease() }))
	if evt != nil && evt.Type == dom.TouchStart {
		// The document delivers these even when the captured element has
		// since become disabled.
		id := evt.PointerID
		onTouch := func(e *dom.Event) {
			if e.PointerID == id {
				onRelease()
			}
		}
		p.remove = append(p.remove,
			doc.AddEventListener(dom.TouchEnd, onTouch),
			doc.AddEventListener(dom.TouchCancel, onTouch),
		)
	}
	return true
}

// release returns to idle and drops the global listeners. It reports false
// when not pressed.
func (p *pressTracker) release() bool {
	if !p.pressed {
		return false
	}
	p.pressed = false
	for _, remove := range p.remove {
		remove()
	}
	p.remove = nil
	return true
}

// mountElement creates the native button element and wires its events.
func (s *Surface) mountElement() {
	el := dom.NewElement("button", s.bounds)
	s.element = el
	s.doc.Attach(el)

	listen := func(typ dom.EventType, fn dom.Listener) {
		s.OnDispose(el.AddEventListener(typ, fn))
	}
	listen(dom.PointerDown, s.handleActivate)
	listen(dom.TouchStart, s.handleActivate)
	listen(dom.TouchEnd, func(*dom.Event) { s.handleDeactivate() })
	listen(dom.TouchCancel, func(*dom.Event) { s.handleDeactivate() })
	listen(dom.PointerEnter, func(*dom.Event) { s.handlers.StartHover() })
	listen(dom.PointerLeave, func(*dom.Event) { s.handlers.EndHover() })
	listen(dom.Focus, func(*dom.Event) { s.handlers.StartFocus() })
	listen(dom.Blur, func(*dom.Event) { s.handlers.EndFocus() })
	s.logger.Debug("button element mounted")
}

// handleActivate starts a press from pointerdown or touchstart. A second
// activation while pressed is ignored.
func (s *Surface) handleActivate(evt *dom.Event) {
	if !s.press.begin(s.doc, evt, s.handleDeactivate) {
		return
	}
	s.logger.Debug("press armed")
	s.handlers.StartPress(evt)
}

// handleDeactivate ends a press from the global pointerup or from touchend
// or touchcancel, on the element or on the document.
func (s *Surface) handleDeactivate() {
	if !s.press.release() {
		return
	}
	s.logger.Debug("press released")
	s.handlers.EndPress()
}
