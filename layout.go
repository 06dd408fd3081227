package main

import "image"

// Visual areas
// ------------
//
// - The screen: a fixed ScreenWidth x ScreenHeight bitmap, the resolution of
// the small display the robot has. Everything is laid out in these
// coordinates.
// - The eye boxes: two EyeWidth x EyeHeight boxes, centered vertically,
// separated horizontally by EyeGap and centered as a pair. These are the
// nominal positions of the eyes, the animations move and deform the eyes
// relative to them.
// - The window: only exists on a desktop. Its size is known only at run time
// and ebitengine scales the screen to fit it.

// EyeAnchors computes the centers of the left and right eye boxes.
func EyeAnchors(cfg *DisplayConfig) (left, right Pt) {
	w := float64(cfg.ScreenWidth)
	h := float64(cfg.ScreenHeight)
	centerY := h / 2
	leftX := w/2 - cfg.EyeWidth - cfg.EyeGap/2
	rightX := w/2 + cfg.EyeGap/2
	left = Pt{leftX + cfg.EyeWidth/2, centerY}
	right = Pt{rightX + cfg.EyeWidth/2, centerY}
	return
}

// ScreenRect is the whole screen in pixels.
func ScreenRect(cfg *DisplayConfig) image.Rectangle {
	return image.Rect(0, 0, cfg.ScreenWidth, cfg.ScreenHeight)
}

func (r *Robot) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// The robot's display has a fixed resolution and all the geometry is
	// computed for it, so the screen bitmap is always exactly that size.
	// On the device the window is fullscreen and has the same size anyway.
	// On a desktop ebitengine scales the bitmap to the window and keeps the
	// aspect ratio, adding black bars if needed.
	//
	// Important: the display only repaints the areas that changed. That only
	// works if the bitmap keeps its size, otherwise ebitengine hands Draw a
	// fresh bitmap. A fixed size here is what makes partial repaints safe.
	return r.cfg.Display.ScreenWidth, r.cfg.Display.ScreenHeight
}
