package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

type OverlayKind int64

const (
	OverlayImage OverlayKind = iota
	OverlayInfo
)

// InfoIconSize is the side of the square icon shown on an info card.
const InfoIconSize = 156

// InfoMargin is the space between the info card content and the screen
// edges, and between its two lines of text.
const InfoMargin = 10

// Overlay is something shown over the whole screen instead of the eyes for a
// while: a picture, or an info card.
type Overlay struct {
	Kind     OverlayKind
	Image    image.Image     // already scaled to Dest
	Dest     image.Rectangle // where Image goes on the screen
	Title    string
	Subtitle string
	Start    time.Time
	Duration time.Duration // 0 means until replaced
	cached   *ebiten.Image
}

// Expired is true once a timed overlay has been up for its whole duration.
func (o *Overlay) Expired(now time.Time) bool {
	return o.Duration > 0 && now.Sub(o.Start) >= o.Duration
}

// FitRect scales a size to the largest one that fits inside dst without
// changing its aspect ratio, and centers it in dst.
func FitRect(size image.Point, dst image.Rectangle) image.Rectangle {
	if size.X <= 0 || size.Y <= 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	scale := min(float64(dst.Dx())/float64(size.X), float64(dst.Dy())/float64(size.Y))
	w := int(float64(size.X) * scale)
	h := int(float64(size.Y) * scale)
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// ScaleImage resamples src to size. It is slow compared to letting the GPU
// stretch the image, but it happens once per overlay instead of once per
// frame and looks much better when shrinking large pictures.
func ScaleImage(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func NewImageOverlay(img image.Image, screen image.Rectangle, now time.Time,
	duration time.Duration) *Overlay {
	dest := FitRect(img.Bounds().Size(), screen)
	return &Overlay{
		Kind:     OverlayImage,
		Image:    ScaleImage(img, dest.Size()),
		Dest:     dest,
		Start:    now,
		Duration: duration,
	}
}

// NewInfoOverlay builds an info card. icon may be nil.
func NewInfoOverlay(info InfoData, icon image.Image, screen image.Rectangle,
	now time.Time) *Overlay {
	o := &Overlay{
		Kind:     OverlayInfo,
		Title:    info.Title,
		Subtitle: info.Subtitle,
		Start:    now,
		Duration: Seconds(info.Duration),
	}
	if icon != nil {
		x := screen.Min.X + (screen.Dx()-InfoIconSize)/2
		y := screen.Min.Y + InfoMargin
		o.Dest = image.Rect(x, y, x+InfoIconSize, y+InfoIconSize)
		o.Image = ScaleImage(icon, o.Dest.Size())
	}
	return o
}

// InfoTextPositions places the two lines of an info card: horizontally
// centered, stacked at the bottom of the screen with InfoMargin below and
// between them. Sizes are the measured text sizes, results are the top-left
// corners of the lines.
func InfoTextPositions(screen image.Rectangle, title, subtitle Pt) (titlePos, subtitlePos Pt) {
	total := title.Y + subtitle.Y + InfoMargin
	titlePos.X = float64(screen.Min.X) + (float64(screen.Dx())-title.X)/2
	titlePos.Y = float64(screen.Max.Y) - InfoMargin - total
	subtitlePos.X = float64(screen.Min.X) + (float64(screen.Dx())-subtitle.X)/2
	subtitlePos.Y = titlePos.Y + title.Y + InfoMargin
	return
}
