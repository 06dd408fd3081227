package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FakeClock only moves when told to.
type FakeClock struct {
	now time.Time
}

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) Advance(seconds float64) {
	c.now = c.now.Add(Seconds(seconds))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDisplayConfig is the default display config, spelled out so tests
// don't depend on the data folder.
func testDisplayConfig() DisplayConfig {
	return DisplayConfig{
		ScreenWidth:       320,
		ScreenHeight:      240,
		FPS:               30,
		BackgroundColor:   RGB{0, 0, 0},
		AssetRoot:         ".",
		InfoFontSize:      36,
		EyeWidth:          100,
		EyeHeight:         100,
		EyeGap:            30,
		EyeColor:          RGB{255, 255, 255},
		EyeBorderRadius:   20,
		MaxOffsetX:        20,
		MaxOffsetY:        15,
		EyeMoveSpeed:      0.2,
		ShadowLayers:      0,
		ShadowSpread:      8,
		PerspectiveShift:  15,
		HeartColor:        RGB{255, 105, 180},
		BlinkDuration:     0.15,
		SmileDuration:     0.7,
		HeartDuration:     1.0,
		ShakeDuration:     0.8,
		NodDuration:       0.5,
		ShakeCycles:       2,
		ShakeAmplitude:    50,
		NodCycles:         2,
		NodAmplitude:      35,
		AnimationCycle:    []string{"blink", "look", "smile", "shake", "nod"},
		AnimationInterval: Interval{Min: 2, Max: 4},
		AutoAnimations:    true,
	}
}

func pngBytes(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
