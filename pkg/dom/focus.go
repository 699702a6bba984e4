package dom

// FocusManager tracks the single active element of a document and delivers
// blur and focus events when it changes.
type FocusManager struct {
	primary *Element
	doc     *Document
}

// Primary returns the focused element, or nil.
func (m *FocusManager) Primary() *Element {
	return m.primary
}

func (m *FocusManager) setPrimary(el *Element) {
	if m.primary == el {
		return
	}
	old := m.primary
	m.primary = el
	if old != nil {
		old.deliver(m.doc.newEvent(Blur, 0, 0, 0))
	}
	if el != nil {
		el.deliver(m.doc.newEvent(Focus, 0, 0, 0))
	}
}

func (m *FocusManager) clear(el *Element) {
	if m.primary != el || el == nil {
		return
	}
	m.setPrimary(nil)
}
