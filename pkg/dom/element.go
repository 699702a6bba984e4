package dom

// Element is a hit-testable, focusable node in a Document.
type Element struct {
	// ID is the element id attribute.
	ID string
	// Bounds is the element's box in document coordinates.
	Bounds Rect

	disabled  bool
	doc       *Document
	listeners listenerSet
}

// NewElement creates a detached element.
func NewElement(id string, bounds Rect) *Element {
	return &Element{ID: id, Bounds: bounds}
}

// AddEventListener registers fn for events of type typ delivered to this
// element. The returned function removes the listener and may be called
// more than once.
func (e *Element) AddEventListener(typ EventType, fn Listener) func() {
	return e.listeners.add(typ, fn)
}

// ListenerCount returns the number of listeners registered on the element.
func (e *Element) ListenerCount() int {
	return e.listeners.count()
}

// Disabled reports whether the element is disabled.
func (e *Element) Disabled() bool {
	return e.disabled
}

// SetDisabled updates the disabled state. A focused element that becomes
// disabled loses focus, as a native button does.
func (e *Element) SetDisabled(disabled bool) {
	if e.disabled == disabled {
		return
	}
	e.disabled = disabled
	if disabled && e.HasFocus() {
		e.doc.focus.clear(e)
	}
}

// Document returns the document the element is attached to, or nil.
func (e *Element) Document() *Document {
	return e.doc
}

// Attached reports whether the element is part of a document.
func (e *Element) Attached() bool {
	return e.doc != nil
}

// HasFocus reports whether the element is the document's active element.
func (e *Element) HasFocus() bool {
	return e.doc != nil && e.doc.focus.Primary() == e
}

// Focus makes the element the active element. Detached and disabled elements
// cannot take focus.
func (e *Element) Focus() {
	if e.doc == nil || e.disabled {
		return
	}
	e.doc.focus.setPrimary(e)
}

// Blur removes focus from the element if it has it.
func (e *Element) Blur() {
	if e.doc == nil {
		return
	}
	e.doc.focus.clear(e)
}

func (e *Element) deliver(evt *Event) {
	evt.Target = e
	e.listeners.dispatch(evt)
}
