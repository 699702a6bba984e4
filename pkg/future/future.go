// Package future provides a one-shot value cell read through continuations.
//
// A Future is written once by a producer (the render pass that mounts a
// ripple) and read by consumers that register continuations with Then.
// Continuations registered before resolution run in registration order at
// resolution time; continuations registered afterwards run immediately, still
// after any that are queued. A future that resolves empty drops its
// continuations.
//
// Futures are NOT thread-safe. Like the rest of the runtime they are owned by
// the UI thread.
package future

// Future is a single-assignment value with ordered continuations.
type Future[T any] struct {
	value    T
	ok       bool
	resolved bool
	draining bool
	pending  []func(T)
}

// New returns an unresolved future.
func New[T any]() *Future[T] {
	return &Future[T]{}
}

// Resolved returns a future already holding v.
func Resolved[T any](v T) *Future[T] {
	return &Future[T]{value: v, ok: true, resolved: true}
}

// Empty returns a future that resolved without a value.
func Empty[T any]() *Future[T] {
	return &Future[T]{resolved: true}
}

// Resolve stores v and runs queued continuations in order.
// It reports false if the future was already resolved.
func (f *Future[T]) Resolve(v T) bool {
	if f.resolved {
		return false
	}
	f.value = v
	f.ok = true
	f.resolved = true
	f.drain()
	return true
}

// Discard resolves the future without a value, dropping queued continuations.
// It reports false if the future was already resolved.
func (f *Future[T]) Discard() bool {
	if f.resolved {
		return false
	}
	f.resolved = true
	f.pending = nil
	return true
}

// Then registers fn to receive the value. If the future already holds a
// value fn runs before Then returns, unless a drain is in progress, in which
// case it runs after the continuations already queued.
func (f *Future[T]) Then(fn func(T)) {
	if fn == nil {
		return
	}
	if f.resolved && !f.ok {
		return
	}
	if !f.resolved || f.draining {
		f.pending = append(f.pending, fn)
		return
	}
	fn(f.value)
}

// Done reports whether the future has been resolved or discarded.
func (f *Future[T]) Done() bool {
	return f.resolved
}

// Value returns the resolved value. ok is false until a value is stored.
func (f *Future[T]) Value() (v T, ok bool) {
	return f.value, f.ok
}

// Pending returns the number of continuations waiting for resolution.
func (f *Future[T]) Pending() int {
	return len(f.pending)
}

func (f *Future[T]) drain() {
	f.draining = true
	defer func() { f.draining = false }()
	for len(f.pending) > 0 {
		fn := f.pending[0]
		f.pending[0] = nil
		f.pending = f.pending[1:]
		fn(f.value)
	}
	f.pending = nil
}
