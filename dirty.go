package main

import "image"

// DirtyTracker remembers which screen areas were painted in the previous
// frame.
//
// The screen is not cleared between frames. To move an eye, the area it
// covered last frame is painted over with the background and then the eye is
// drawn at its new place. This is only correct if the rectangles reported
// for a frame cover every pixel painted in that frame.
type DirtyTracker struct {
	previous []image.Rectangle
}

// Next starts a frame that will paint the current rectangles. It returns the
// rectangles to erase first, which are the ones painted by the previous
// frame.
func (t *DirtyTracker) Next(current []image.Rectangle) (erase []image.Rectangle) {
	erase = t.previous
	t.previous = append([]image.Rectangle(nil), current...)
	return erase
}

// Invalidate makes the next frame erase r, usually the whole screen. Used
// for the first frame and when something other than the eyes covered the
// screen.
func (t *DirtyTracker) Invalidate(r image.Rectangle) {
	t.previous = []image.Rectangle{r}
}
