package dom

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/ripplebutton/pkg/log"
)

// Document owns elements, document-global listeners, hover tracking,
// touch capture and focus.
type Document struct {
	// ID identifies the document in logs.
	ID string
	// Logger receives debug output. Nil is silent.
	Logger *log.Logger
	// Now supplies event timestamps. Defaults to time.Now.
	Now func() time.Time

	elements     []*Element
	listeners    listenerSet
	focus        FocusManager
	hovered      *Element
	touchTargets map[int64]*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	d := &Document{
		ID:           uuid.NewString(),
		touchTargets: make(map[int64]*Element),
	}
	d.focus.doc = d
	return d
}

// Attach adds el on top of the existing elements. Attaching an element that
// belongs to another document moves it.
func (d *Document) Attach(el *Element) {
	if el == nil || el.doc == d {
		return
	}
	if el.doc != nil {
		el.doc.Detach(el)
	}
	el.doc = d
	d.elements = append(d.elements, el)
}

// Detach removes el. No blur or leave events are delivered to a detached
// element; its listeners stay registered on the element itself.
func (d *Document) Detach(el *Element) {
	if el == nil || el.doc != d {
		return
	}
	if d.focus.primary == el {
		d.focus.primary = nil
	}
	if d.hovered == el {
		d.hovered = nil
	}
	for id, target := range d.touchTargets {
		if target == el {
			delete(d.touchTargets, id)
		}
	}
	for i, e := range d.elements {
		if e == el {
			d.elements = append(d.elements[:i:i], d.elements[i+1:]...)
			break
		}
	}
	el.doc = nil
}

// AddEventListener registers a document-global listener. Global listeners
// see every pointer and touch event after the target element does,
// wherever the pointer is.
func (d *Document) AddEventListener(typ EventType, fn Listener) func() {
	return d.listeners.add(typ, fn)
}

// ListenerCount returns the number of registered document-global listeners.
func (d *Document) ListenerCount() int {
	return d.listeners.count()
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	return d.focus.Primary()
}

// Hovered returns the element currently under the mouse pointer, or nil.
func (d *Document) Hovered() *Element {
	return d.hovered
}

// HitTest returns the topmost element containing (x, y), or nil.
func (d *Document) HitTest(x, y float64) *Element {
	for i := len(d.elements) - 1; i >= 0; i-- {
		el := d.elements[i]
		if el.Bounds.Contains(x, y) {
			return el
		}
	}
	return nil
}

// DispatchPointer delivers a mouse pointer event at (x, y). Down, up and
// move events update hover first, synthesizing leave and enter events, then
// reach the element under the pointer and finally the document-global
// listeners. Disabled elements receive nothing.
func (d *Document) DispatchPointer(typ EventType, x, y float64) {
	target := d.HitTest(x, y)
	switch typ {
	case PointerDown, PointerUp, PointerMove:
		d.updateHover(target, x, y)
	default:
		d.Logger.With("type", string(typ)).Debug("ignoring non-positional pointer event")
		return
	}

	evt := d.newEvent(typ, x, y, 0)
	if target != nil && !target.disabled {
		target.deliver(evt)
	}
	evt.Target = target
	d.listeners.dispatch(evt)
}

// DispatchTouch delivers a touch event for touch point id. A touch start
// captures the element under the point; end and cancel go to that element
// wherever the point has moved.
func (d *Document) DispatchTouch(typ EventType, id int64, x, y float64) {
	var target *Element
	switch typ {
	case TouchStart:
		target = d.HitTest(x, y)
		if target != nil {
			d.touchTargets[id] = target
		}
	case TouchEnd, TouchCancel:
		target = d.touchTargets[id]
		delete(d.touchTargets, id)
	default:
		d.Logger.With("type", string(typ)).Debug("ignoring non-touch event")
		return
	}

	evt := d.newEvent(typ, x, y, id)
	if target != nil && !target.disabled {
		target.deliver(evt)
	}
	evt.Target = target
	d.listeners.dispatch(evt)
}

// Focus moves focus to el, or clears it when el is nil.
func (d *Document) Focus(el *Element) {
	if el == nil {
		d.focus.setPrimary(nil)
		return
	}
	if el.doc != d {
		return
	}
	el.Focus()
}

func (d *Document) updateHover(target *Element, x, y float64) {
	if target == d.hovered {
		return
	}
	old := d.hovered
	d.hovered = target
	if old != nil && !old.disabled {
		old.deliver(d.newEvent(PointerLeave, x, y, 0))
	}
	if target != nil && !target.disabled {
		target.deliver(d.newEvent(PointerEnter, x, y, 0))
	}
}

func (d *Document) newEvent(typ EventType, x, y float64, id int64) *Event {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return &Event{Type: typ, X: x, Y: y, PointerID: id, Timestamp: now()}
}
