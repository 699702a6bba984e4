package testing

import (
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/ripple"
)

// RecordingEffect is a ripple.Effect that records every call it receives.
type RecordingEffect struct {
	calls       []string
	pressEvents []*dom.Event
	props       []ripple.Props
}

// NewRecordingEffect returns an empty recorder.
func NewRecordingEffect() *RecordingEffect {
	return &RecordingEffect{}
}

func (r *RecordingEffect) StartPress(evt *dom.Event) {
	r.calls = append(r.calls, "startPress")
	r.pressEvents = append(r.pressEvents, evt)
}

func (r *RecordingEffect) EndPress()   { r.calls = append(r.calls, "endPress") }
func (r *RecordingEffect) StartHover() { r.calls = append(r.calls, "startHover") }
func (r *RecordingEffect) EndHover()   { r.calls = append(r.calls, "endHover") }
func (r *RecordingEffect) StartFocus() { r.calls = append(r.calls, "startFocus") }
func (r *RecordingEffect) EndFocus()   { r.calls = append(r.calls, "endFocus") }

// SetProps records render-time inputs so tests can check what the surface passed.
func (r *RecordingEffect) SetProps(p ripple.Props) {
	r.props = append(r.props, p)
}

// Calls returns the recorded call names in order.
func (r *RecordingEffect) Calls() []string {
	return append([]string(nil), r.calls...)
}

// Count returns how many times call was recorded.
func (r *RecordingEffect) Count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// PressEvents returns the events passed to StartPress, nil entries included.
func (r *RecordingEffect) PressEvents() []*dom.Event {
	return append([]*dom.Event(nil), r.pressEvents...)
}

// LastProps returns the most recent props and whether any were applied.
func (r *RecordingEffect) LastProps() (ripple.Props, bool) {
	if len(r.props) == 0 {
		return ripple.Props{}, false
	}
	return r.props[len(r.props)-1], true
}

// Reset forgets all recorded calls.
func (r *RecordingEffect) Reset() {
	r.calls = nil
	r.pressEvents = nil
	r.props = nil
}
