package main

import "math"

type AnimationType int64

const (
	AnimationNone AnimationType = iota
	AnimationBlink
	AnimationSmile
	AnimationHeart
	AnimationShake
	AnimationNod
)

var animationNames = map[AnimationType]string{
	AnimationNone:  "none",
	AnimationBlink: "blink",
	AnimationSmile: "smile",
	AnimationHeart: "heart",
	AnimationShake: "shake",
	AnimationNod:   "nod",
}

func (a AnimationType) String() string {
	return animationNames[a]
}

// ParseAnimationType maps a name like "smile" to its AnimationType. ok is
// false for unknown names.
func ParseAnimationType(name string) (a AnimationType, ok bool) {
	for k, v := range animationNames {
		if v == name && k != AnimationNone {
			return k, true
		}
	}
	return AnimationNone, false
}

// EyeState is the shape animation an eye is running. An eye runs at most one
// shape animation at a time.
type EyeState int64

const (
	EyeIdle EyeState = iota
	EyeBlinking
	EyeSmiling
	EyeHeart
)

const (
	SmileHeightFactor       = 0.6
	SmileTopRadiusFactor    = 0.8
	SmileBottomRadiusFactor = 0.5
	// HeartAnimationPhase is the fraction of the heart animation spent
	// growing the heart. The rest of the time it stays at full size.
	HeartAnimationPhase = 0.3
	HeartSizeFactor     = 0.9
	ShadowMaxAlpha      = 40
	// AntialiasMargin is added around the drawn shapes when reporting the
	// area an eye painted. Antialiased edges can touch one pixel outside
	// the exact geometry.
	AntialiasMargin = 1
)

// Eye is one of the two robot eyes.
//
// The eye has a fixed anchor (the center of its nominal box) and a nominal
// size. What is actually drawn is derived every frame from the nominal
// values and the progress of the running animation, nothing accumulates from
// frame to frame except the position, which eases towards the look target.
type Eye struct {
	Anchor     Pt // center of the nominal box, never changes
	Size       Pt // nominal width and height
	Pos        Pt // current top-left corner of the nominal box
	CurSize    Pt // current width and height
	Target     Pt // where Pos is heading
	Radii      Corners
	BaseRadius float64
	State      EyeState
	HeartScale float64
	anim       AnimationTimer
	cfg        *DisplayConfig
}

func NewEye(anchor Pt, cfg *DisplayConfig, clock Clock) (e Eye) {
	e.cfg = cfg
	e.Anchor = anchor
	e.Size = Pt{cfg.EyeWidth, cfg.EyeHeight}
	e.Pos = e.NominalPos()
	e.Target = e.Pos
	e.CurSize = e.Size
	e.BaseRadius = cfg.EyeBorderRadius
	e.Radii = UniformCorners(e.BaseRadius)
	e.anim = NewAnimationTimer(clock)
	return
}

// NominalPos is the top-left corner of the eye when it looks straight ahead.
func (e *Eye) NominalPos() Pt {
	return e.Anchor.Minus(e.Size.DivBy(2))
}

// Progress of the running shape animation, 0 when idle.
func (e *Eye) Progress() float64 {
	return e.anim.Progress()
}

// StartAnimation tries to start a shape animation and reports whether it
// started.
// Blink and smile only start on an idle eye: the first animation wins and
// later requests are dropped, not queued. Heart always starts and discards
// whatever was running.
func (e *Eye) StartAnimation(kind AnimationType) bool {
	switch kind {
	case AnimationBlink:
		if e.State != EyeIdle {
			return false
		}
		e.State = EyeBlinking
		e.anim.Start(Seconds(e.cfg.BlinkDuration))
	case AnimationSmile:
		if e.State != EyeIdle {
			return false
		}
		e.State = EyeSmiling
		e.anim.Start(Seconds(e.cfg.SmileDuration))
	case AnimationHeart:
		e.stop()
		e.State = EyeHeart
		e.HeartScale = 0
		e.anim.Start(Seconds(e.cfg.HeartDuration))
	default:
		return false
	}
	return true
}

// stop ends the shape animation and puts the eye back to its nominal shape.
func (e *Eye) stop() {
	e.anim.Stop()
	e.State = EyeIdle
	e.CurSize.Y = e.Size.Y
	e.Radii = UniformCorners(e.BaseRadius)
}

// SetLookTarget sets the top-left corner the eye moves towards. The eye does
// not jump there, Update eases it over the next frames.
func (e *Eye) SetLookTarget(x, y float64) {
	e.Target = Pt{x, y}
}

func (e *Eye) Update() {
	// Each frame covers a fixed fraction of the remaining distance, so the
	// eye starts fast and slows down as it gets close.
	e.Pos = e.Pos.LerpTo(e.Target, e.cfg.EyeMoveSpeed)

	if e.State == EyeHeart {
		e.updateHeart()
		return
	}

	e.CurSize.Y = e.Size.Y
	e.Radii = UniformCorners(e.BaseRadius)

	switch e.State {
	case EyeBlinking:
		e.CurSize.Y = BlinkHeight(e.Size.Y, e.anim.Progress())
		if e.anim.IsFinished() {
			e.stop()
		}
	case EyeSmiling:
		e.CurSize.Y, e.Radii = SmileShape(e.Size.Y, e.BaseRadius, e.anim.Progress())
		if e.anim.IsFinished() {
			e.stop()
		}
	default:
	}

	e.updatePerspective()
	Assert(e.CurSize.X >= 0 && e.CurSize.Y >= 0, "eye size went negative")
}

func (e *Eye) updateHeart() {
	progress := e.anim.Progress()
	if progress < HeartAnimationPhase {
		e.HeartScale = EaseInOut(progress / HeartAnimationPhase)
	} else {
		e.HeartScale = 1
	}

	if e.anim.IsFinished() {
		e.stop()
		e.HeartScale = 0
		e.updatePerspective()
	}
}

// BlinkHeight is the height of a blinking eye. The eye closes linearly during
// the first half of the blink and opens during the second half.
func BlinkHeight(nominal, progress float64) float64 {
	if progress < 0.5 {
		return nominal * (1 - progress*2)
	}
	return nominal * ((progress - 0.5) * 2)
}

// SmileShape computes the height and corner radii of a smiling eye. The
// smile has three equal phases: squash the eye, hold, and go back to normal.
// A squashed eye is shorter with very round top corners and sharper bottom
// corners, which reads as a smile.
func SmileShape(nominalHeight, baseRadius, progress float64) (height float64, radii Corners) {
	targetHeight := nominalHeight * SmileHeightFactor
	targetTop := targetHeight * SmileTopRadiusFactor
	targetBottom := baseRadius * SmileBottomRadiusFactor

	const phase = 1.0 / 3.0
	var t float64
	switch {
	case progress < phase:
		t = EaseInOut(progress / phase)
	case progress < 1.0-phase:
		t = 1
	default:
		t = 1 - EaseInOut((progress-(1.0-phase))/phase)
	}

	height = Lerp(nominalHeight, targetHeight, t)
	top := Lerp(baseRadius, targetTop, t)
	bottom := Lerp(baseRadius, targetBottom, t)
	radii = Corners{TopLeft: top, TopRight: top, BottomLeft: bottom, BottomRight: bottom}
	return
}

// updatePerspective makes the eye narrower the further it looks sideways.
// Cheap, but it sells the idea that the eyes are on a curved surface.
func (e *Eye) updatePerspective() {
	offset := (e.Pos.X + e.Size.X/2) - e.Anchor.X
	normalized := 0.0
	if e.cfg.MaxOffsetX != 0 {
		normalized = offset / e.cfg.MaxOffsetX
	}
	e.CurSize.X = Clamp(e.Size.X-math.Abs(normalized)*e.cfg.PerspectiveShift, 0, e.Size.X)
}

// DrawRect is the main rectangle of the eye: the current size, centered
// inside the nominal box at the current position.
func (e *Eye) DrawRect() Rect {
	return RectXYWH(
		e.Pos.X+(e.Size.X-e.CurSize.X)/2,
		e.Pos.Y+(e.Size.Y-e.CurSize.Y)/2,
		e.CurSize.X,
		e.CurSize.Y)
}

// Shapes describes what the eye looks like this frame, in drawing order.
func (e *Eye) Shapes() []Shape {
	if e.State == EyeHeart && e.HeartScale > 0 {
		size := e.Size.X * HeartSizeFactor * e.HeartScale
		return []Shape{{
			Kind:   ShapePolygon,
			Points: HeartPolygon(e.Anchor.X, e.Anchor.Y, size),
			Color:  e.cfg.HeartColor.NRGBA(255),
		}}
	}

	r := e.DrawRect()
	n := e.cfg.ShadowLayers
	shapes := make([]Shape, 0, n+1)
	// Shadows go from the widest layer to the tightest one, all under the
	// eye itself. Layers overlap, so the glow gets stronger near the eye.
	// With no layers configured there is nothing to divide by and nothing
	// to draw.
	for i := n; i > 0; i-- {
		f := float64(i) / float64(n)
		shapes = append(shapes, Shape{
			Kind:  ShapeRoundedRect,
			Rect:  r.Inflate(e.cfg.ShadowSpread * f),
			Radii: e.Radii,
			Color: e.cfg.EyeColor.NRGBA(uint8(ShadowMaxAlpha * f)),
		})
	}
	shapes = append(shapes, Shape{
		Kind:  ShapeRoundedRect,
		Rect:  r,
		Radii: e.Radii,
		Color: e.cfg.EyeColor.NRGBA(255),
	})
	return shapes
}

// BoundingRect is the pixel area the eye paints this frame. It is computed
// from the same shapes that get drawn, so it covers shadows and the heart as
// well as the eye itself.
func (e *Eye) BoundingRect() Rect {
	return ShapesBounds(e.Shapes()).Inflate(AntialiasMargin)
}
