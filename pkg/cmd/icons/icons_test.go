package icons

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	if err := Run(context.Background(), &Config{Output: dir, Fonts: []string{"missing.ttf"}}); err != nil {
		t.Fatalf("Run() err = %v; want nil", err)
	}
	tests := []struct {
		file string
		size int
	}{
		{"icon-48.png", 48},
		{"icon-72.png", 72},
		{"icon-96.png", 96},
		{"icon-128.png", 128},
		{"icon-144.png", 144},
		{"icon-192.png", 192},
		{"icon-384.png", 384},
		{"icon-512.png", 512},
		{"icon-splash.png", 512},
		{"apple-touch-icon.png", 180},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			f, err := os.Open(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cfg, err := png.DecodeConfig(f)
			if err != nil {
				t.Fatalf("png.DecodeConfig(%s) err = %v", tt.file, err)
			}
			if cfg.Width != tt.size || cfg.Height != tt.size {
				t.Errorf("%s = %dx%d; want %dx%d", tt.file, cfg.Width, cfg.Height, tt.size, tt.size)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, &Config{Output: t.TempDir()}); err == nil {
		t.Error("Run() err = nil; want context error")
	}
}
