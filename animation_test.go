package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationTimer_InactiveHasNoProgress(t *testing.T) {
	a := NewAnimationTimer(NewFakeClock())
	assert.Equal(t, 0.0, a.Progress())
	assert.False(t, a.IsFinished())
}

func TestAnimationTimer_Progress(t *testing.T) {
	clock := NewFakeClock()
	a := NewAnimationTimer(clock)
	a.Start(Seconds(2))
	assert.Equal(t, 0.0, a.Progress())

	clock.Advance(0.5)
	assert.Equal(t, 0.25, a.Progress())
	assert.False(t, a.IsFinished())

	clock.Advance(0.5)
	assert.Equal(t, 0.5, a.Progress())

	clock.Advance(1)
	assert.Equal(t, 1.0, a.Progress())
	assert.True(t, a.IsFinished())

	// Stays at 1 until stopped.
	clock.Advance(10)
	assert.Equal(t, 1.0, a.Progress())
	assert.True(t, a.Active)

	a.Stop()
	assert.Equal(t, 0.0, a.Progress())
	assert.False(t, a.IsFinished())
}

func TestAnimationTimer_ZeroDurationFinishesImmediately(t *testing.T) {
	a := NewAnimationTimer(NewFakeClock())
	a.Start(0)
	assert.Equal(t, 1.0, a.Progress())
	assert.True(t, a.IsFinished())

	a.Start(-Seconds(1))
	assert.Equal(t, 1.0, a.Progress())
}

func TestAnimationTimer_RestartResetsProgress(t *testing.T) {
	clock := NewFakeClock()
	a := NewAnimationTimer(clock)
	a.Start(Seconds(1))
	clock.Advance(0.75)
	a.Start(Seconds(1))
	assert.Equal(t, 0.0, a.Progress())
}
