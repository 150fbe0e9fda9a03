package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

var encoder = &png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// Save writes img as a PNG file.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("icon: couldn't create file: %w", err)
	}
	defer f.Close()
	if err := Encode(f, img); err != nil {
		return fmt.Errorf("icon: couldn't encode %s: %w", path, err)
	}
	return nil
}
