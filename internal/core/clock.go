package core

import "time"

// Clock supplies wall-clock timestamps used only as a seed source for level
// regeneration. Injecting it keeps the simulation replayable in tests.
type Clock interface {
	// Now returns the current time in nanoseconds since the Unix epoch.
	Now() int64
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() int64 {
	return time.Now().UnixNano()
}

// FixedClock always returns the same timestamp. Useful in tests.
type FixedClock int64

// Now implements Clock.
func (c FixedClock) Now() int64 {
	return int64(c)
}
