package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEye(cfg *DisplayConfig) (*Eye, *FakeClock) {
	clock := NewFakeClock()
	left, _ := EyeAnchors(cfg)
	e := NewEye(left, cfg, clock)
	return &e, clock
}

func TestBlinkHeight(t *testing.T) {
	assert.Equal(t, 100.0, BlinkHeight(100, 0))
	assert.Equal(t, 50.0, BlinkHeight(100, 0.25))
	assert.Equal(t, 0.0, BlinkHeight(100, 0.5))
	assert.Equal(t, 50.0, BlinkHeight(100, 0.75))
	assert.Equal(t, 100.0, BlinkHeight(100, 1))
	for _, p := range []float64{0.1, 0.2, 0.3, 0.4} {
		assert.InDelta(t, BlinkHeight(100, p), BlinkHeight(100, 1-p), 1e-9)
	}
}

func TestSmileShape(t *testing.T) {
	h, radii := SmileShape(100, 20, 0)
	assert.Equal(t, 100.0, h)
	assert.Equal(t, UniformCorners(20), radii)

	// The middle third holds the full smile.
	for _, p := range []float64{0.34, 0.5, 0.66} {
		h, radii = SmileShape(100, 20, p)
		assert.InDelta(t, 60, h, 1e-9)
		assert.InDelta(t, 48, radii.TopLeft, 1e-9)
		assert.InDelta(t, 48, radii.TopRight, 1e-9)
		assert.InDelta(t, 10, radii.BottomLeft, 1e-9)
		assert.InDelta(t, 10, radii.BottomRight, 1e-9)
	}

	h, radii = SmileShape(100, 20, 1)
	assert.InDelta(t, 100, h, 1e-9)
	assert.InDelta(t, 20, radii.TopLeft, 1e-9)
	assert.InDelta(t, 20, radii.BottomRight, 1e-9)
}

func TestEye_Blink(t *testing.T) {
	cfg := testDisplayConfig()
	e, clock := newTestEye(&cfg)
	assert.True(t, e.StartAnimation(AnimationBlink))
	assert.Equal(t, EyeBlinking, e.State)

	clock.Advance(0.075)
	e.Update()
	assert.InDelta(t, 0, e.CurSize.Y, 1e-9)
	// Closed eyes stay centered on the nominal box.
	assert.InDelta(t, e.Anchor.Y, e.DrawRect().Center().Y, 1e-9)

	clock.Advance(0.075)
	e.Update()
	assert.Equal(t, 100.0, e.CurSize.Y)
	assert.Equal(t, EyeIdle, e.State)
}

func TestEye_ZeroDurationBlinkEndsOnFirstUpdate(t *testing.T) {
	cfg := testDisplayConfig()
	cfg.BlinkDuration = 0
	e, _ := newTestEye(&cfg)
	assert.True(t, e.StartAnimation(AnimationBlink))

	e.Update()
	assert.Equal(t, EyeIdle, e.State)
	assert.Equal(t, e.Size.Y, e.CurSize.Y)
}

func TestEye_SmileAndBlinkExcludeEachOther(t *testing.T) {
	cfg := testDisplayConfig()
	e, _ := newTestEye(&cfg)
	assert.True(t, e.StartAnimation(AnimationSmile))
	assert.False(t, e.StartAnimation(AnimationBlink))
	assert.False(t, e.StartAnimation(AnimationSmile))
	assert.Equal(t, EyeSmiling, e.State)

	e2, _ := newTestEye(&cfg)
	assert.True(t, e2.StartAnimation(AnimationBlink))
	assert.False(t, e2.StartAnimation(AnimationSmile))
	assert.Equal(t, EyeBlinking, e2.State)
}

func TestEye_HeartOverridesEverything(t *testing.T) {
	cfg := testDisplayConfig()
	e, clock := newTestEye(&cfg)
	e.StartAnimation(AnimationSmile)
	clock.Advance(0.3)
	e.Update()

	assert.True(t, e.StartAnimation(AnimationHeart))
	assert.Equal(t, EyeHeart, e.State)
	assert.Equal(t, 0.0, e.Progress())
	assert.False(t, e.StartAnimation(AnimationSmile))
	assert.False(t, e.StartAnimation(AnimationBlink))
	assert.False(t, e.StartAnimation(AnimationShake))
}

func TestEye_HeartAfterSmileRestoresShape(t *testing.T) {
	cfg := testDisplayConfig()
	e, clock := newTestEye(&cfg)
	e.StartAnimation(AnimationSmile)
	clock.Advance(0.3)
	e.Update()
	assert.Less(t, e.CurSize.Y, e.Size.Y)

	e.StartAnimation(AnimationHeart)
	clock.Advance(1.0)
	e.Update()
	assert.Equal(t, EyeIdle, e.State)
	assert.Equal(t, e.Size.Y, e.CurSize.Y)
	assert.Equal(t, UniformCorners(e.BaseRadius), e.Radii)
	assert.Equal(t, ShapeRoundedRect, e.Shapes()[0].Kind)
	assert.InDelta(t, e.Size.Y, e.Shapes()[0].Rect.Height(), 1e-9)
}

func TestEye_HeartGrowsThenDisappears(t *testing.T) {
	cfg := testDisplayConfig()
	e, clock := newTestEye(&cfg)
	e.StartAnimation(AnimationHeart)

	clock.Advance(0.15)
	e.Update()
	assert.InDelta(t, 0.5, e.HeartScale, 1e-9)
	assert.Equal(t, ShapePolygon, e.Shapes()[0].Kind)

	clock.Advance(0.5)
	e.Update()
	assert.Equal(t, 1.0, e.HeartScale)

	clock.Advance(0.35)
	e.Update()
	assert.Equal(t, EyeIdle, e.State)
	assert.Equal(t, 0.0, e.HeartScale)
	assert.Equal(t, ShapeRoundedRect, e.Shapes()[0].Kind)
}

func TestEye_MovesTowardsTarget(t *testing.T) {
	cfg := testDisplayConfig()
	e, _ := newTestEye(&cfg)
	start := e.Pos
	e.SetLookTarget(start.X+20, start.Y-15)

	e.Update()
	assert.InDelta(t, start.X+4, e.Pos.X, 1e-9)
	assert.InDelta(t, start.Y-3, e.Pos.Y, 1e-9)

	for range 200 {
		e.Update()
	}
	assert.InDelta(t, start.X+20, e.Pos.X, 1e-6)
	assert.InDelta(t, start.Y-15, e.Pos.Y, 1e-6)
	// Fully to the side, the eye is narrower by PerspectiveShift.
	assert.InDelta(t, 85, e.CurSize.X, 1e-6)
}

func TestEye_ShadowsAreDrawnUnderTheEye(t *testing.T) {
	cfg := testDisplayConfig()
	e, _ := newTestEye(&cfg)
	assert.Len(t, e.Shapes(), 1)

	cfg.ShadowLayers = 3
	shapes := e.Shapes()
	assert.Len(t, shapes, 4)
	body := shapes[3]
	assert.Equal(t, uint8(255), body.Color.A)
	assert.Equal(t, body.Rect.Inflate(8), shapes[0].Rect)
	assert.Equal(t, uint8(ShadowMaxAlpha), shapes[0].Color.A)
	assert.Greater(t, shapes[0].Color.A, shapes[1].Color.A)
	assert.Greater(t, shapes[1].Color.A, shapes[2].Color.A)
}

func TestEye_BoundingRectCoversEverythingDrawn(t *testing.T) {
	cfg := testDisplayConfig()
	cfg.ShadowLayers = 2
	e, clock := newTestEye(&cfg)

	check := func() {
		b := e.BoundingRect()
		for _, s := range e.Shapes() {
			assert.True(t, b.ContainsRect(s.Bounds().Inflate(AntialiasMargin)))
		}
	}
	check()

	e.StartAnimation(AnimationHeart)
	clock.Advance(0.5)
	e.Update()
	check()
	// The heart sticks out above the eye box.
	assert.Less(t, e.BoundingRect().Min.Y, e.NominalPos().Y)
}
