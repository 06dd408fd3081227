package main

import "time"

// AnimationTimer tracks how far an animation has progressed, as a ratio
// between 0 and 1 of elapsed time over total duration.
//
// A timer is created once for each animation slot and then reused: Start
// resets it, Stop deactivates it. The timer never stops on its own. Whoever
// owns it checks IsFinished() and calls Stop() when it wants to, which gives
// the owner a chance to render the final frame of the animation first.
type AnimationTimer struct {
	Active    bool
	StartTime time.Time
	Duration  time.Duration
	clock     Clock
}

func NewAnimationTimer(clock Clock) AnimationTimer {
	return AnimationTimer{clock: clock}
}

// Start (re)starts the timer from now. There is no guard against starting an
// active timer, callers decide if that is allowed.
func (a *AnimationTimer) Start(duration time.Duration) {
	a.Active = true
	a.StartTime = a.clock.Now()
	a.Duration = max(duration, 0)
}

func (a *AnimationTimer) Stop() {
	a.Active = false
}

// Progress is 0 for an inactive timer. A zero duration completes instantly.
func (a *AnimationTimer) Progress() float64 {
	if !a.Active {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	elapsed := a.clock.Now().Sub(a.StartTime)
	return Clamp(float64(elapsed)/float64(a.Duration), 0, 1)
}

func (a *AnimationTimer) IsFinished() bool {
	return a.Active && a.Progress() >= 1
}
