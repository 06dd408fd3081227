package main

// Lerp interpolates linearly between start and end. t is not clamped.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// EaseInOut is the smoothstep curve. It maps 0 to 0 and 1 to 1, starts and
// ends with zero slope and is symmetric around 0.5.
func EaseInOut(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// Clamp keeps x inside [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// HeartPolygon returns the outline of the heart drawn over an eye. (x, y) is
// the anchor, size scales the whole shape. The tip points down and sits a
// quarter of size below the anchor, the top edge is 0.9 of size above it.
func HeartPolygon(x, y, size float64) []Pt {
	return []Pt{
		{x, y + size*0.25},
		{x - size*0.5, y - size*0.25},
		{x - size*0.5, y - size*0.6},
		{x, y - size*0.9},
		{x + size*0.5, y - size*0.6},
		{x + size*0.5, y - size*0.25},
	}
}
