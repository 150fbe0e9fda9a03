package icon

import (
	"image"
	"image/color"
	"image/draw"
)

// Spec describes a single icon to render.
type Spec struct {
	Size        int
	IncludeText bool
	IncludeR    bool
}

// Bar is one of the sound wave bars, in 512 grid units relative to the
// icon centre.
type Bar struct {
	XOffset int
	Height  int
	Color   color.RGBA
	Opacity uint8
}

var (
	backgroundTop    = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	backgroundBottom = color.RGBA{0x16, 0x21, 0x3e, 0xff}
	green            = color.RGBA{0x1d, 0xb9, 0x54, 0xff}
	greenLight       = color.RGBA{0x1e, 0xd7, 0x60, 0xff}
	greenPale        = color.RGBA{0x4a, 0xde, 0x80, 0xff}
	white            = color.RGBA{0xff, 0xff, 0xff, 0xff}
	grey             = color.RGBA{179, 179, 179, 0xff}
)

// Bars are drawn left to right, leaving a gap in the middle for the disc.
var Bars = []Bar{
	{-130, 70, greenPale, 140},
	{-98, 116, greenLight, 178},
	{-66, 156, green, 216},
	{44, 156, green, 216},
	{76, 116, greenLight, 178},
	{108, 70, greenPale, 140},
}

// Grid is the reference size all coordinates are expressed in.
const Grid = 512

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Render draws an icon using the default font fallback list.
func Render(size int, includeText, includeR bool) *image.RGBA {
	return New(DefaultFonts, false).Render(Spec{
		Size:        size,
		IncludeText: includeText,
		IncludeR:    includeR,
	})
}

// Render draws the icon described by spec.
func (r *Renderer) Render(spec Spec) *image.RGBA {
	size := spec.Size
	s := float64(size) / Grid
	scale := func(v float64) int { return int(v * s) }
	atLeastOne := func(v float64) int { return max(1, scale(v)) }

	bounds := image.Rect(0, 0, size, size)
	img := image.NewRGBA(bounds)

	// Background clipped by the rounded corners.
	draw.DrawMask(img, bounds, Gradient(size), image.Point{}, Mask(size), image.Point{}, draw.Src)

	c := newCanvas(img)
	cx, cy := scale(256), scale(238)

	// Glow
	glow := scale(140)
	c.fillCircle(cx, cy, glow, withAlpha(green, 12))

	// Sound wave bars
	barW := scale(22)
	barR := scale(11)
	for _, b := range Bars {
		bx := cx + scale(float64(b.XOffset))
		bh := scale(float64(b.Height))
		rad := min(barR, barW/2, bh/2)
		c.fillRoundedRect(bx-barW/2, cy-bh/2, bx+barW/2, cy+bh/2, rad, withAlpha(b.Color, b.Opacity))
	}

	// Disc
	c.strokeCircle(cx, cy, scale(42), atLeastOne(3.5), withAlpha(green, 216))
	c.strokeCircle(cx, cy, scale(26), atLeastOne(2), withAlpha(green, 128))
	c.strokeCircle(cx, cy, scale(34), atLeastOne(1), withAlpha(green, 64))
	c.fillCircle(cx, cy, scale(10), green)

	// Play triangle
	tri := scale(10)
	c.fillPolygon([]image.Point{
		{cx - scale(5), cy - tri},
		{cx - scale(5), cy + tri},
		{cx + scale(9), cy},
	}, withAlpha(white, 242))

	if spec.IncludeR {
		r.drawText(img, "R", scale(48), cx, scale(388), withAlpha(white, 230))
	}
	if spec.IncludeText {
		r.drawText(img, "RAAGAM", scale(52), cx, scale(355), white)
		r.drawText(img, "MUSIC", scale(20), cx, scale(400), grey)
	}
	return img
}

// Gradient returns an opaque diagonal gradient from the top left to the
// bottom right corner.
func Gradient(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := float64(x+y) / float64(size*2)
			img.SetRGBA(x, y, lerp(backgroundTop, backgroundBottom, t))
		}
	}
	return img
}

func lerp(c1, c2 color.RGBA, t float64) color.RGBA {
	ch := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{R: ch(c1.R, c2.R), G: ch(c1.G, c2.G), B: ch(c1.B, c2.B), A: 0xff}
}

// Mask returns the rounded corner alpha mask of an icon.
func Mask(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	radius := int(108 * (float64(size) / Grid))
	z := newPath(size)
	z.roundedRect(0, 0, float32(size), float32(size), float32(radius))
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
