package main

import (
	"math"
	"time"
)

// Clock is where animations read the time from. Every progress computation
// asks the clock again, so animation lengths are in wall-clock seconds and
// do not depend on how often frames are drawn.
// Tests replace it with a clock they advance by hand.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now(), which carries Go's monotonic reading, so
// durations computed from it are immune to wall clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Seconds converts a float number of seconds, the unit used in the config
// file, to a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
