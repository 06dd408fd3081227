package main

import (
	"image"
	"math"
	"strings"
	"time"
)

// MotionState is the head movement the eyes are doing. Shaking and nodding
// move both eyes together, so they live on the controller and not on the
// eyes.
type MotionState int64

const (
	MotionIdle MotionState = iota
	MotionShaking
	MotionNodding
)

// LookDirections are the directions the idle scheduler picks from when it
// is time to look around.
var LookDirections = []string{
	"center", "left", "right", "up", "down",
	"up-left", "down-right", "up-right",
}

// EyesController owns the two eyes and decides which animation is allowed to
// run.
//
// Precedence rules:
// - smile, shake and nod only start when no special animation runs (shake,
// nod, smile or heart)
// - heart only waits for shake and nod; it interrupts a smile
// - blink is up to each eye, which drops it if the eye is busy
//
// The heart/smile asymmetry is intentional: love wins over happy.
type EyesController struct {
	Left              Eye
	Right             Eye
	Motion            MotionState
	Cycle             []string
	CycleIdx          int
	NextAnimationTime time.Time
	AutoAnimations    bool
	motion            AnimationTimer
	cfg               *DisplayConfig
	clock             Clock
	rand              Rand
}

func NewEyesController(cfg *DisplayConfig, clock Clock, rnd Rand) *EyesController {
	c := &EyesController{cfg: cfg, clock: clock, rand: rnd}
	left, right := EyeAnchors(cfg)
	c.Left = NewEye(left, cfg, clock)
	c.Right = NewEye(right, cfg, clock)
	c.motion = NewAnimationTimer(clock)
	c.Cycle = append([]string(nil), cfg.AnimationCycle...)
	c.AutoAnimations = cfg.AutoAnimations
	c.scheduleNext(clock.Now())
	return c
}

func (c *EyesController) IsSpecialAnimationActive() bool {
	return c.Motion != MotionIdle ||
		c.Left.State == EyeSmiling || c.Left.State == EyeHeart ||
		c.Right.State == EyeSmiling || c.Right.State == EyeHeart
}

func (c *EyesController) TriggerSmile() bool {
	if c.IsSpecialAnimationActive() {
		return false
	}
	l := c.Left.StartAnimation(AnimationSmile)
	r := c.Right.StartAnimation(AnimationSmile)
	return l || r
}

func (c *EyesController) TriggerShake() bool {
	if c.IsSpecialAnimationActive() {
		return false
	}
	c.startMotion(MotionShaking, c.cfg.ShakeDuration)
	return true
}

func (c *EyesController) TriggerNod() bool {
	if c.IsSpecialAnimationActive() {
		return false
	}
	c.startMotion(MotionNodding, c.cfg.NodDuration)
	return true
}

func (c *EyesController) TriggerHeartEyes() bool {
	if c.Motion != MotionIdle {
		return false
	}
	c.Left.StartAnimation(AnimationHeart)
	c.Right.StartAnimation(AnimationHeart)
	return true
}

func (c *EyesController) TriggerBlink() bool {
	l := c.Left.StartAnimation(AnimationBlink)
	r := c.Right.StartAnimation(AnimationBlink)
	return l || r
}

// Trigger starts an animation by type. Returns false if the animation was
// refused or the type is not something that can be triggered.
func (c *EyesController) Trigger(kind AnimationType) bool {
	switch kind {
	case AnimationBlink:
		return c.TriggerBlink()
	case AnimationSmile:
		return c.TriggerSmile()
	case AnimationHeart:
		return c.TriggerHeartEyes()
	case AnimationShake:
		return c.TriggerShake()
	case AnimationNod:
		return c.TriggerNod()
	default:
		return false
	}
}

func (c *EyesController) startMotion(m MotionState, duration float64) {
	c.Motion = m
	c.motion.Start(Seconds(duration))
}

func (c *EyesController) stopMotion() {
	c.motion.Stop()
	c.Motion = MotionIdle
}

// MotionProgress is the progress of the current shake or nod, 0 when idle.
func (c *EyesController) MotionProgress() float64 {
	return c.motion.Progress()
}

// SetLookDirection points both eyes in a direction such as "left" or
// "up-right". The offsets are relative to where each eye sits when looking
// straight ahead, not to where it is now, so repeating a direction doesn't
// drift. Every word found in the direction applies on its own; anything
// unrecognized, like "center", leaves the eyes straight ahead.
func (c *EyesController) SetLookDirection(direction string) {
	var offset Pt
	if strings.Contains(direction, "left") {
		offset.X -= c.cfg.MaxOffsetX
	}
	if strings.Contains(direction, "right") {
		offset.X += c.cfg.MaxOffsetX
	}
	if strings.Contains(direction, "up") {
		offset.Y -= c.cfg.MaxOffsetY
	}
	if strings.Contains(direction, "down") {
		offset.Y += c.cfg.MaxOffsetY
	}

	left := c.Left.NominalPos().Plus(offset)
	right := c.Right.NominalPos().Plus(offset)
	c.Left.SetLookTarget(left.X, left.Y)
	c.Right.SetLookTarget(right.X, right.Y)
}

func (c *EyesController) SetAutoAnimations(enabled bool) {
	c.AutoAnimations = enabled
}

func (c *EyesController) Update() {
	switch c.Motion {
	case MotionShaking:
		c.updateShake()
	case MotionNodding:
		c.updateNod()
	default:
		if c.AutoAnimations && !c.IsSpecialAnimationActive() {
			c.updateAutomaticActions(c.clock.Now())
		}
	}

	c.Left.Update()
	c.Right.Update()
}

// ShakeOffset is the horizontal displacement of a head shake. The phase is
// eased twice so the shake starts and ends slowly, and the amplitude decays
// linearly down to 30% at the end.
func ShakeOffset(progress, cycles, amplitude float64) float64 {
	eased := EaseInOut(EaseInOut(progress))
	offset := math.Sin(eased*cycles*2*math.Pi) * amplitude
	return offset * (1.0 - progress*0.7)
}

// NodOffset is the vertical displacement of a nod. Compared to a shake it is
// eased once and loses less amplitude, down to 70%.
func NodOffset(progress, cycles, amplitude float64) float64 {
	eased := EaseInOut(progress)
	offset := math.Sin(eased*cycles*2*math.Pi) * amplitude
	return offset * (1.0 - progress*0.3)
}

func (c *EyesController) updateShake() {
	if c.motion.IsFinished() {
		c.stopMotion()
		c.SetLookDirection("center")
		return
	}
	offset := ShakeOffset(c.motion.Progress(), c.cfg.ShakeCycles, c.cfg.ShakeAmplitude)
	c.SetLookDirection("center")
	c.Left.Target.X += offset
	c.Right.Target.X += offset
}

func (c *EyesController) updateNod() {
	if c.motion.IsFinished() {
		c.stopMotion()
		c.SetLookDirection("center")
		return
	}
	offset := NodOffset(c.motion.Progress(), c.cfg.NodCycles, c.cfg.NodAmplitude)
	c.SetLookDirection("center")
	c.Left.Target.Y += offset
	c.Right.Target.Y += offset
}

func (c *EyesController) scheduleNext(now time.Time) {
	interval := c.rand.RFloat(c.cfg.AnimationInterval.Min, c.cfg.AnimationInterval.Max)
	c.NextAnimationTime = now.Add(Seconds(interval))
}

// updateAutomaticActions runs the next entry of the idle cycle once its time
// has come. The cycle is fixed and wraps around, only the waiting time
// between entries is random.
func (c *EyesController) updateAutomaticActions(now time.Time) {
	if !now.After(c.NextAnimationTime) {
		return
	}

	if len(c.Cycle) > 0 {
		switch c.Cycle[c.CycleIdx] {
		case CycleBlink:
			c.TriggerBlink()
		case CycleLook:
			idx := c.rand.RInt(0, int64(len(LookDirections))-1)
			c.SetLookDirection(LookDirections[idx])
		case CycleSmile:
			c.TriggerSmile()
		case CycleShake:
			c.TriggerShake()
		case CycleNod:
			c.TriggerNod()
		}
		c.CycleIdx = (c.CycleIdx + 1) % len(c.Cycle)
	}
	c.scheduleNext(now)
}

// Shapes of both eyes, left first.
func (c *EyesController) Shapes() []Shape {
	return append(c.Left.Shapes(), c.Right.Shapes()...)
}

// BoundingRects are the pixel areas painted by each eye this frame.
func (c *EyesController) BoundingRects() []image.Rectangle {
	return []image.Rectangle{
		c.Left.BoundingRect().Bounds(),
		c.Right.BoundingRect().Bounds(),
	}
}
