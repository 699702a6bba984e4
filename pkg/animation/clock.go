package animation

import "time"

// Clock provides time for animations. Tests inject a fake clock so ripple
// timing is deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
