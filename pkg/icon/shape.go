package icon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points to approximate a quarter circle.
const kappa = 0.5522847498

type path struct {
	*vector.Rasterizer
}

func newPath(size int) *path {
	return &path{Rasterizer: vector.NewRasterizer(size, size)}
}

// circle adds a closed circle; clockwise and counter clockwise circles
// cancel each other out, which is how rings are cut.
func (p *path) circle(cx, cy, r float32, clockwise bool) {
	k := kappa * r
	p.MoveTo(cx+r, cy)
	if clockwise {
		p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		p.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		p.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		p.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		p.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	p.ClosePath()
}

// roundedRect adds a rectangle spanning [x0,x1]x[y0,y1] with rounded corners.
func (p *path) roundedRect(x0, y0, x1, y1, r float32) {
	r = min(r, (x1-x0)/2, (y1-y0)/2)
	if r <= 0 {
		p.MoveTo(x0, y0)
		p.LineTo(x1, y0)
		p.LineTo(x1, y1)
		p.LineTo(x0, y1)
		p.ClosePath()
		return
	}
	k := kappa * r
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	p.LineTo(x1, y1-r)
	p.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	p.LineTo(x0+r, y1)
	p.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	p.LineTo(x0, y0+r)
	p.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	p.ClosePath()
}

// canvas composites shapes over an image. Shape coordinates are pixel
// indexes with inclusive bounds, so a circle of radius r around pixel c
// covers pixels c-r to c+r.
type canvas struct {
	img  *image.RGBA
	size int
}

func newCanvas(img *image.RGBA) *canvas {
	return &canvas{img: img, size: img.Bounds().Dx()}
}

func (c *canvas) fill(p *path, col color.Color) {
	p.DrawOp = draw.Over
	p.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) fillCircle(cx, cy, r int, col color.Color) {
	p := newPath(c.size)
	p.circle(float32(cx)+0.5, float32(cy)+0.5, float32(r)+0.5, true)
	c.fill(p, col)
}

// strokeCircle draws a ring whose outer edge matches fillCircle and grows
// inwards by width pixels.
func (c *canvas) strokeCircle(cx, cy, r, width int, col color.Color) {
	p := newPath(c.size)
	fx, fy := float32(cx)+0.5, float32(cy)+0.5
	outer := float32(r) + 0.5
	p.circle(fx, fy, outer, true)
	if inner := outer - float32(width); inner > 0 {
		p.circle(fx, fy, inner, false)
	}
	c.fill(p, col)
}

func (c *canvas) fillRoundedRect(x0, y0, x1, y1, r int, col color.Color) {
	p := newPath(c.size)
	p.roundedRect(float32(x0), float32(y0), float32(x1+1), float32(y1+1), float32(r))
	c.fill(p, col)
}

func (c *canvas) fillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	p := newPath(c.size)
	p.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X)+0.5, float32(pt.Y)+0.5)
	}
	p.ClosePath()
	c.fill(p, col)
}
