package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// whiteSubImage is the 1x1 white source texture used to fill paths with
// DrawTriangles. The vertex colors do the actual coloring.
var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func fillTexture() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawShapes rasterizes shapes on screen, in order.
func DrawShapes(screen *ebiten.Image, shapes []Shape) {
	for _, s := range shapes {
		var path vector.Path
		switch s.Kind {
		case ShapeRoundedRect:
			if s.Rect.Empty() {
				continue
			}
			RoundedRectPath(&path, s.Rect, s.Radii)
		case ShapePolygon:
			if len(s.Points) < 3 {
				continue
			}
			PolygonPath(&path, s.Points)
		}
		FillPath(screen, &path, s.Color)
	}
}

// FitRadii shrinks the corner radii so that the arcs on each side of the
// rectangle don't overlap. All radii are scaled by the same factor, so the
// shape keeps its character.
func FitRadii(r Rect, c Corners) Corners {
	w, h := r.Width(), r.Height()
	f := 1.0
	limit := func(length, sum float64) {
		if sum > 0 && length/sum < f {
			f = length / sum
		}
	}
	limit(w, c.TopLeft+c.TopRight)
	limit(w, c.BottomLeft+c.BottomRight)
	limit(h, c.TopLeft+c.BottomLeft)
	limit(h, c.TopRight+c.BottomRight)
	return Corners{
		TopLeft:     max(c.TopLeft*f, 0),
		TopRight:    max(c.TopRight*f, 0),
		BottomLeft:  max(c.BottomLeft*f, 0),
		BottomRight: max(c.BottomRight*f, 0),
	}
}

// RoundedRectPath appends a rectangle with a different radius in each corner
// to path, going clockwise from the top-left corner.
func RoundedRectPath(path *vector.Path, r Rect, c Corners) {
	c = FitRadii(r, c)
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	tl, tr := float32(c.TopLeft), float32(c.TopRight)
	bl, br := float32(c.BottomLeft), float32(c.BottomRight)

	path.MoveTo(x0+tl, y0)
	path.LineTo(x1-tr, y0)
	corner(path, x1, y0, x1, y0+tr, tr)
	path.LineTo(x1, y1-br)
	corner(path, x1, y1, x1-br, y1, br)
	path.LineTo(x0+bl, y1)
	corner(path, x0, y1, x0, y1-bl, bl)
	path.LineTo(x0, y0+tl)
	corner(path, x0, y0, x0+tl, y0, tl)
	path.Close()
}

// corner rounds the corner (cx, cy) with the given radius and ends at
// (nx, ny). A zero radius is a sharp corner.
func corner(path *vector.Path, cx, cy, nx, ny, radius float32) {
	if radius <= 0 {
		path.LineTo(cx, cy)
		return
	}
	path.ArcTo(cx, cy, nx, ny, radius)
}

func PolygonPath(path *vector.Path, pts []Pt) {
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
}

// FillPath fills a closed path with a solid, possibly translucent color.
func FillPath(screen *ebiten.Image, path *vector.Path, c color.NRGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(c.A) / 255
	r := float32(c.R) / 255 * a
	g := float32(c.G) / 255 * a
	b := float32(c.B) / 255 * a
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, fillTexture(), op)
}

// DrawOverlay paints an overlay on a screen that was just cleared.
func DrawOverlay(screen *ebiten.Image, o *Overlay, face font.Face, textColor color.Color) {
	if o.Image != nil {
		if o.cached == nil {
			o.cached = ebiten.NewImageFromImage(o.Image)
		}
		DrawSpriteXY(screen, o.cached, float64(o.Dest.Min.X), float64(o.Dest.Min.Y))
	}
	if o.Kind != OverlayInfo || face == nil {
		return
	}

	title := text.BoundString(face, o.Title)
	subtitle := text.BoundString(face, o.Subtitle)
	titlePos, subtitlePos := InfoTextPositions(screen.Bounds(),
		Pt{float64(title.Dx()), float64(title.Dy())},
		Pt{float64(subtitle.Dx()), float64(subtitle.Dy())})
	drawText(screen, o.Title, face, title, titlePos, textColor)
	drawText(screen, o.Subtitle, face, subtitle, subtitlePos, textColor)
}

// drawText draws s so that its bounds have their top-left corner at pos.
// text.Draw places the origin of the text, which is roughly the lower-left
// corner, and bounds are relative to that origin.
func drawText(screen *ebiten.Image, s string, face font.Face, bounds image.Rectangle,
	pos Pt, c color.Color) {
	if s == "" {
		return
	}
	x := int(math.Round(pos.X)) - bounds.Min.X
	y := int(math.Round(pos.Y)) - bounds.Min.Y
	text.Draw(screen, s, face, x, y, c)
}
