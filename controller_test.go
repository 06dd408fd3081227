package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestController() (*EyesController, *FakeClock) {
	cfg := testDisplayConfig()
	clock := NewFakeClock()
	return NewEyesController(&cfg, clock, NewRand(42)), clock
}

func TestEyesController_Layout(t *testing.T) {
	c, _ := newTestController()
	assert.Equal(t, Pt{45, 70}, c.Left.NominalPos())
	assert.Equal(t, Pt{175, 70}, c.Right.NominalPos())
	assert.Equal(t, c.Left.NominalPos(), c.Left.Pos)
	assert.Equal(t, c.Right.NominalPos(), c.Right.Target)
}

func TestEyesController_LookCenterIsIdempotent(t *testing.T) {
	c, _ := newTestController()
	c.SetLookDirection("right")
	c.SetLookDirection("center")
	assert.Equal(t, c.Left.NominalPos(), c.Left.Target)
	c.SetLookDirection("center")
	assert.Equal(t, c.Left.NominalPos(), c.Left.Target)
	assert.Equal(t, c.Right.NominalPos(), c.Right.Target)
}

func TestEyesController_LookDirectionsCompose(t *testing.T) {
	c, _ := newTestController()
	c.SetLookDirection("up-left")
	assert.Equal(t, Pt{25, 55}, c.Left.Target)
	assert.Equal(t, Pt{155, 55}, c.Right.Target)

	// Directions don't accumulate.
	c.SetLookDirection("up-left")
	assert.Equal(t, Pt{25, 55}, c.Left.Target)

	c.SetLookDirection("down-right")
	assert.Equal(t, Pt{65, 85}, c.Left.Target)

	c.SetLookDirection("sideways")
	assert.Equal(t, c.Left.NominalPos(), c.Left.Target)
}

func TestEyesController_SpecialAnimationsExcludeEachOther(t *testing.T) {
	c, _ := newTestController()
	assert.False(t, c.IsSpecialAnimationActive())

	assert.True(t, c.TriggerSmile())
	assert.True(t, c.IsSpecialAnimationActive())
	assert.False(t, c.TriggerShake())
	assert.False(t, c.TriggerNod())
	assert.False(t, c.TriggerSmile())
	assert.False(t, c.TriggerBlink())

	// Love wins over happy.
	assert.True(t, c.TriggerHeartEyes())
	assert.Equal(t, EyeHeart, c.Left.State)
	assert.Equal(t, EyeHeart, c.Right.State)
	assert.False(t, c.TriggerSmile())
}

func TestEyesController_NoHeartWhileMoving(t *testing.T) {
	c, _ := newTestController()
	assert.True(t, c.TriggerShake())
	assert.Equal(t, MotionShaking, c.Motion)
	assert.False(t, c.TriggerHeartEyes())
	assert.False(t, c.TriggerNod())
	assert.False(t, c.TriggerSmile())
	assert.Equal(t, EyeIdle, c.Left.State)
	assert.Equal(t, EyeIdle, c.Right.State)
	// A blink is not special, it can happen during a shake.
	assert.True(t, c.TriggerBlink())
}

func TestEyesController_NoHeartOrSmileWhileNodding(t *testing.T) {
	c, _ := newTestController()
	assert.True(t, c.TriggerNod())
	assert.False(t, c.TriggerHeartEyes())
	assert.False(t, c.TriggerSmile())
	assert.False(t, c.TriggerShake())
	assert.Equal(t, MotionNodding, c.Motion)
	assert.Equal(t, EyeIdle, c.Left.State)
	assert.Equal(t, EyeIdle, c.Right.State)
}

func TestEyesController_Trigger(t *testing.T) {
	c, _ := newTestController()
	assert.False(t, c.Trigger(AnimationNone))
	assert.True(t, c.Trigger(AnimationNod))
	assert.Equal(t, MotionNodding, c.Motion)
}

func TestShakeAndNodOffsets(t *testing.T) {
	assert.Equal(t, 0.0, ShakeOffset(0, 2, 50))
	assert.InDelta(t, 0, ShakeOffset(1, 2, 50), 1e-9)
	assert.Equal(t, 0.0, NodOffset(0, 2, 35))
	assert.InDelta(t, 0, NodOffset(1, 2, 35), 1e-9)
	assert.NotEqual(t, 0.0, ShakeOffset(0.25, 2, 50))
	assert.NotEqual(t, 0.0, NodOffset(0.1, 2, 35))
}

func TestEyesController_ShakeEndsCentered(t *testing.T) {
	c, clock := newTestController()
	c.SetAutoAnimations(false)
	c.TriggerShake()

	clock.Advance(0.2)
	c.Update()
	assert.NotEqual(t, c.Left.NominalPos().X, c.Left.Target.X)
	assert.Equal(t, c.Left.NominalPos().Y, c.Left.Target.Y)
	assert.InDelta(t, c.Left.Target.X-c.Left.NominalPos().X,
		c.Right.Target.X-c.Right.NominalPos().X, 1e-9)

	clock.Advance(0.6)
	c.Update()
	assert.Equal(t, MotionIdle, c.Motion)
	assert.Equal(t, 0.0, c.MotionProgress())
	assert.Equal(t, c.Left.NominalPos(), c.Left.Target)
	assert.Equal(t, c.Right.NominalPos(), c.Right.Target)
}

func TestEyesController_NodMovesVertically(t *testing.T) {
	c, clock := newTestController()
	c.SetAutoAnimations(false)
	c.TriggerNod()

	clock.Advance(0.1)
	c.Update()
	assert.Equal(t, c.Left.NominalPos().X, c.Left.Target.X)
	assert.NotEqual(t, c.Left.NominalPos().Y, c.Left.Target.Y)

	clock.Advance(0.4)
	c.Update()
	assert.Equal(t, MotionIdle, c.Motion)
	assert.Equal(t, c.Left.NominalPos(), c.Left.Target)
}

func TestEyesController_IdleCycle(t *testing.T) {
	c, clock := newTestController()
	start := clock.Now()
	assert.False(t, c.NextAnimationTime.Before(start.Add(2*time.Second)))
	assert.True(t, c.NextAnimationTime.Before(start.Add(4*time.Second)))

	clock.Advance(1.9)
	c.Update()
	assert.Equal(t, 0, c.CycleIdx)
	assert.Equal(t, EyeIdle, c.Left.State)

	clock.Advance(2.2)
	c.Update()
	assert.Equal(t, 1, c.CycleIdx)
	assert.Equal(t, EyeBlinking, c.Left.State)
	assert.Equal(t, EyeBlinking, c.Right.State)
	assert.True(t, c.NextAnimationTime.After(clock.Now()))
}

func TestEyesController_IdleCycleWaitsForSpecialAnimations(t *testing.T) {
	c, clock := newTestController()
	c.NextAnimationTime = clock.Now().Add(-time.Second)
	c.TriggerSmile()
	c.Update()
	assert.Equal(t, 0, c.CycleIdx)

	clock.Advance(0.7)
	c.Update()
	assert.Equal(t, EyeIdle, c.Left.State)
	c.Update()
	assert.Equal(t, 1, c.CycleIdx)
}

func TestEyesController_AutoAnimationsOff(t *testing.T) {
	c, clock := newTestController()
	c.SetAutoAnimations(false)
	clock.Advance(10)
	c.Update()
	assert.Equal(t, 0, c.CycleIdx)
	assert.Equal(t, EyeIdle, c.Left.State)

	// Manual triggers still work.
	assert.True(t, c.TriggerSmile())
}

func TestEyesController_IdleCycleWrapsAround(t *testing.T) {
	c, clock := newTestController()
	for range len(c.Cycle) {
		clock.Advance(5)
		c.Update()
		// Let whatever started finish.
		clock.Advance(1)
		c.Update()
		c.Update()
	}
	assert.Equal(t, 0, c.CycleIdx)
}

func TestEyesController_BoundingRectsCoverShapes(t *testing.T) {
	c, clock := newTestController()
	c.cfg.ShadowLayers = 2
	c.SetLookDirection("down-left")
	c.TriggerHeartEyes()
	for range 10 {
		clock.Advance(0.05)
		c.Update()
		rects := c.BoundingRects()
		assert.Len(t, rects, 2)
		for _, s := range c.Left.Shapes() {
			b := s.Bounds().Bounds()
			assert.Equal(t, b, b.Intersect(rects[0]))
		}
		for _, s := range c.Right.Shapes() {
			b := s.Bounds().Bounds()
			assert.Equal(t, b, b.Intersect(rects[1]))
		}
	}
}

func BenchmarkEyesController_Update(b *testing.B) {
	cfg := testDisplayConfig()
	cfg.ShadowLayers = 3
	clock := NewFakeClock()
	c := NewEyesController(&cfg, clock, NewRand(1))
	for b.Loop() {
		clock.Advance(1.0 / 30)
		c.Update()
		c.BoundingRects()
	}
}
