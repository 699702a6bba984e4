package core

// Managed holds a value and schedules a rebuild of its state when it changes.
//
// Managed is NOT thread-safe. It must only be accessed from the UI thread.
type Managed[T comparable] struct {
	base  *StateBase
	value T
}

// NewManaged creates a managed value tied to s.
func NewManaged[T comparable](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{base: s.state(), value: initial}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value. Setting an equal value does not schedule a rebuild.
func (m *Managed[T]) Set(value T) {
	if m.value == value {
		return
	}
	m.value = value
	m.base.SetState(nil)
}

// Update applies transform to the current value and stores the result.
func (m *Managed[T]) Update(transform func(T) T) {
	m.Set(transform(m.value))
}
