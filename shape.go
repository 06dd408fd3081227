package main

import "image/color"

type ShapeKind int64

const (
	ShapeRoundedRect ShapeKind = iota
	ShapePolygon
)

// Corners holds one radius per corner of a rounded rectangle.
type Corners struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

func UniformCorners(r float64) Corners {
	return Corners{r, r, r, r}
}

// Shape is a draw primitive. The eyes describe what they look like as a list
// of shapes and the renderer turns the shapes into pixels. Keeping the two
// apart means the animation logic can be tested without a graphics context.
type Shape struct {
	Kind   ShapeKind
	Rect   Rect    // ShapeRoundedRect
	Radii  Corners // ShapeRoundedRect
	Points []Pt    // ShapePolygon
	Color  color.NRGBA
}

// Bounds is the area the shape covers, before antialiasing.
func (s Shape) Bounds() Rect {
	if s.Kind == ShapePolygon {
		return PolygonBounds(s.Points)
	}
	return s.Rect
}

// ShapesBounds is the smallest rectangle containing the bounds of all
// shapes. Degenerate shapes (a fully closed eye has zero height) still count,
// so the result stays where the shapes are.
func ShapesBounds(shapes []Shape) (r Rect) {
	if len(shapes) == 0 {
		return
	}
	r = shapes[0].Bounds()
	for _, s := range shapes[1:] {
		b := s.Bounds()
		r.Min.X = min(r.Min.X, b.Min.X)
		r.Min.Y = min(r.Min.Y, b.Min.Y)
		r.Max.X = max(r.Max.X, b.Max.X)
		r.Max.Y = max(r.Max.Y, b.Max.Y)
	}
	return
}
