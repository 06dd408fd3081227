package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawSpriteXY draws img on screen with its top-left corner at (x, y).
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawSpriteXY(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x, float64(screen.Bounds().Min.Y)+y)
	screen.DrawImage(img, op)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the same coordinate system as
// DrawSpriteXY. Parts of r outside of screen are dropped.
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in a sub-image:
	// img2 = img1.SubImage(r) means img2.At(r.Min) is img1.At(r.Min), not
	// img2.At(0, 0). I prefer to think in coordinates relative to the image I
	// was given, so translate r first.
	minPt := screen.Bounds().Min
	r = r.Add(minPt).Intersect(screen.Bounds())
	return screen.SubImage(r).(*ebiten.Image)
}

// FillRects paints the rectangles with a solid color.
func FillRects(screen *ebiten.Image, rects []image.Rectangle, c color.Color) {
	for _, r := range rects {
		sub := SubImage(screen, r)
		if sub.Bounds().Empty() {
			continue
		}
		sub.Fill(c)
	}
}
