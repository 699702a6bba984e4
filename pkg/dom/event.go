// Package dom is the event platform the button runs on.
//
// It models just enough of a document to drive an interactive widget:
// elements with bounds, hit testing, pointer enter/leave synthesis,
// touch target capture, document-global listeners and a focus manager.
// Everything runs on the UI thread; nothing here is safe for concurrent use.
package dom

import "time"

// EventType names an input event.
type EventType string

const (
	PointerDown  EventType = "pointerdown"
	PointerUp    EventType = "pointerup"
	PointerMove  EventType = "pointermove"
	PointerEnter EventType = "pointerenter"
	PointerLeave EventType = "pointerleave"
	TouchStart   EventType = "touchstart"
	TouchEnd     EventType = "touchend"
	TouchCancel  EventType = "touchcancel"
	Focus        EventType = "focus"
	Blur         EventType = "blur"
)

var eventTypes = map[string]EventType{
	string(PointerDown):  PointerDown,
	string(PointerUp):    PointerUp,
	string(PointerMove):  PointerMove,
	string(PointerEnter): PointerEnter,
	string(PointerLeave): PointerLeave,
	string(TouchStart):   TouchStart,
	string(TouchEnd):     TouchEnd,
	string(TouchCancel):  TouchCancel,
	string(Focus):        Focus,
	string(Blur):         Blur,
}

// ParseEventType maps a name such as "pointerdown" to its EventType.
func ParseEventType(name string) (EventType, bool) {
	t, ok := eventTypes[name]
	return t, ok
}

// IsPointer reports whether t is a mouse-style pointer event.
func (t EventType) IsPointer() bool {
	switch t {
	case PointerDown, PointerUp, PointerMove, PointerEnter, PointerLeave:
		return true
	}
	return false
}

// IsTouch reports whether t is a touch event.
func (t EventType) IsTouch() bool {
	return t == TouchStart || t == TouchEnd || t == TouchCancel
}

// Event is a single input event.
type Event struct {
	Type EventType
	// X and Y are document coordinates. Zero for focus events.
	X, Y float64
	// PointerID identifies the touch point; zero for the mouse pointer.
	PointerID int64
	// Target is the element the event was delivered to, nil when the pointer
	// was over no element.
	Target *Element
	// Timestamp is when the platform produced the event.
	Timestamp time.Time
}

// Listener receives events.
type Listener func(evt *Event)

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from an origin and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the rect width.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rect height.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Contains reports whether (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// IsValid returns true if the rect has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}
