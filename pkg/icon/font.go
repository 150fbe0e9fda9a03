package icon

import (
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFonts is the ordered list of fonts tried for the lettering.
var DefaultFonts = []string{
	"/System/Library/Fonts/SFCompact.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/SFNSDisplay.ttf",
	"/System/Library/Fonts/SFNS.ttf",
}

// Renderer draws icons with the first font that could be loaded.
type Renderer struct {
	font   *opentype.Font
	source string
}

// New creates a renderer using the first loadable font in paths. When none
// loads the bundled Go Bold font is used instead.
func New(paths []string, debug bool) *Renderer {
	for _, p := range paths {
		f, err := parseFont(p)
		if err != nil {
			if debug {
				log.Printf("icon: couldn't load font %s: %v\n", p, err)
			}
			continue
		}
		return &Renderer{font: f, source: p}
	}
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		if debug {
			log.Printf("icon: couldn't load built-in font: %v\n", err)
		}
		return &Renderer{source: "basicfont"}
	}
	return &Renderer{font: f, source: "gobold"}
}

// Font returns the name of the font in use.
func (r *Renderer) Font() string {
	return r.source
}

func parseFont(path string) (*opentype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(b)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	default:
		return opentype.Parse(b)
	}
}

// face returns a face of the given size, falling back to the fixed size
// bitmap face when no scalable font is available.
func (r *Renderer) face(size int) font.Face {
	if r.font == nil || size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// drawText draws label horizontally centred on x with the top of its ink
// at y.
func (r *Renderer) drawText(img *image.RGBA, label string, size, x, y int, col color.Color) {
	face := r.face(size)
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	bounds, advance := d.BoundString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(x) - advance/2,
		Y: fixed.I(y) - bounds.Min.Y,
	}
	d.DrawString(label)
}
