package core

// stateBase is satisfied by any struct that embeds StateBase.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides dirty marking and disposal for a buildable.
//
// Embed it and call Attach once with the owner and the embedding value:
//
//	type surface struct {
//	    core.StateBase
//	}
//
//	s := &surface{}
//	s.Attach(owner, s)
type StateBase struct {
	owner     *BuildOwner
	self      Buildable
	disposers []func()
	disposed  bool
}

// Attach binds the state to owner. self is what gets rebuilt.
func (s *StateBase) Attach(owner *BuildOwner, self Buildable) {
	s.owner = owner
	s.self = self
}

// Owner returns the build owner, or nil before Attach.
func (s *StateBase) Owner() *BuildOwner {
	return s.owner
}

// SetState executes fn and schedules a rebuild. After disposal it does
// nothing, fn included.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.owner != nil && s.self != nil {
		s.owner.ScheduleBuild(s.self)
	}
}

// OnDispose registers cleanup to run when the state is disposed and returns
// a function that unregisters it. Registering after disposal runs cleanup
// immediately.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if s.disposed {
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	return func() {
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Dispose runs registered disposers in reverse order, once.
func (s *StateBase) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}
