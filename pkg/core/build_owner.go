package core

// Buildable is rebuilt by a BuildOwner when dirty.
type Buildable interface {
	Rebuild()
}

// maxFlushPasses bounds how often post-frame callbacks may re-dirty the tree
// within one flush.
const maxFlushPasses = 8

// BuildOwner tracks dirty buildables that need rebuilding.
type BuildOwner struct {
	dirty     []Buildable
	dirtySet  map[Buildable]bool
	postFrame []func()

	// OnNeedsFrame is called when the first buildable becomes dirty after a
	// flush, signalling that a frame should be scheduled.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{dirtySet: make(map[Buildable]bool)}
}

// ScheduleBuild marks b as needing a rebuild. Scheduling an already dirty
// buildable is a no-op.
func (o *BuildOwner) ScheduleBuild(b Buildable) {
	if b == nil || o.dirtySet[b] {
		return
	}
	o.dirtySet[b] = true
	o.dirty = append(o.dirty, b)
	if len(o.dirty) == 1 && o.OnNeedsFrame != nil {
		o.OnNeedsFrame()
	}
}

// AddPostFrameCallback runs fn once, after the rebuilds of the next flush.
func (o *BuildOwner) AddPostFrameCallback(fn func()) {
	if fn != nil {
		o.postFrame = append(o.postFrame, fn)
	}
}

// NeedsWork reports whether a flush would do anything.
func (o *BuildOwner) NeedsWork() bool {
	return len(o.dirty) > 0 || len(o.postFrame) > 0
}

// IsDirty reports whether b is scheduled.
func (o *BuildOwner) IsDirty(b Buildable) bool {
	return o.dirtySet[b]
}

// FlushBuild rebuilds dirty buildables in scheduling order, then runs
// post-frame callbacks. Callbacks that dirty buildables trigger another pass.
func (o *BuildOwner) FlushBuild() {
	for pass := 0; pass < maxFlushPasses && o.NeedsWork(); pass++ {
		for len(o.dirty) > 0 {
			dirty := o.dirty
			o.dirty = nil
			clear(o.dirtySet)
			for _, b := range dirty {
				b.Rebuild()
			}
		}

		callbacks := o.postFrame
		o.postFrame = nil
		for _, fn := range callbacks {
			fn()
		}
	}
}
