package main

// Pt is a point or a vector on the screen. Coordinates are floats because
// the eyes move by fractions of a pixel every frame and only get rounded when
// they are rasterized.
type Pt struct {
	X float64 `yaml:"X"`
	Y float64 `yaml:"Y"`
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) DivBy(divide float64) Pt {
	return Pt{p.X / divide, p.Y / divide}
}

// LerpTo moves p towards other by the fraction t on both axes.
func (p Pt) LerpTo(other Pt, t float64) Pt {
	return Pt{Lerp(p.X, other.X, t), Lerp(p.Y, other.Y, t)}
}
