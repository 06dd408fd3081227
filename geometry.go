package main

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in screen coordinates. Min is the
// top-left corner and Max the bottom-right corner. A Rect with Max < Min on
// any axis is empty.
type Rect struct {
	Min Pt
	Max Pt
}

// RectXYWH builds a rectangle from its top-left corner and its size.
func RectXYWH(x, y, width, height float64) Rect {
	return Rect{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// ContainsRect is true if other lies completely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X &&
		other.Min.Y >= r.Min.Y && other.Max.Y <= r.Max.Y
}

// Inflate grows r by d on every side. A negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{Pt{r.Min.X - d, r.Min.Y - d}, Pt{r.Max.X + d, r.Max.Y + d}}
}

// Bounds converts r to pixel coordinates. The result always covers r: the
// minimum is floored and the maximum is ceiled, so a pixel that is only
// partially touched by r is included.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)),
		int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)),
		int(math.Ceil(r.Max.Y)))
}

// PolygonBounds returns the bounding box of a list of points.
func PolygonBounds(pts []Pt) (r Rect) {
	if len(pts) == 0 {
		return
	}
	r.Min = pts[0]
	r.Max = pts[0]
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return
}
