package dom

import (
	"github.com/go-drift/ripplebutton/pkg/errors"
)

type listenerEntry struct {
	typ     EventType
	fn      Listener
	removed bool
}

// listenerSet keeps registration order. Removal is idempotent and safe
// during dispatch.
type listenerSet struct {
	entries []*listenerEntry
}

func (s *listenerSet) add(typ EventType, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	entry := &listenerEntry{typ: typ, fn: fn}
	s.entries = append(s.entries, entry)
	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		for i, e := range s.entries {
			if e == entry {
				s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
				return
			}
		}
	}
}

func (s *listenerSet) dispatch(evt *Event) {
	if len(s.entries) == 0 {
		return
	}
	snapshot := make([]*listenerEntry, len(s.entries))
	copy(snapshot, s.entries)
	for _, entry := range snapshot {
		if entry.removed || entry.typ != evt.Type {
			continue
		}
		invoke(entry.fn, evt)
	}
}

func (s *listenerSet) count() int {
	return len(s.entries)
}

func (s *listenerSet) clear() {
	for _, e := range s.entries {
		e.removed = true
	}
	s.entries = nil
}

func invoke(fn Listener, evt *Event) {
	defer errors.Recover("dom.Dispatch." + string(evt.Type))
	fn(evt)
}
