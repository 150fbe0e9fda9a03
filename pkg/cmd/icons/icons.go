package icons

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/igolaizola/raagam/pkg/icon"
)

type Config struct {
	Debug  bool
	Output string
	Fonts  []string
}

// Sizes are the square icon sizes of the web app manifest.
var Sizes = []int{48, 72, 96, 128, 144, 192, 384, 512}

// Asset is an icon file and how to draw it.
type Asset struct {
	Name string
	Spec icon.Spec
}

// Assets returns every icon file produced by Run.
func Assets() []Asset {
	var assets []Asset
	for _, size := range Sizes {
		assets = append(assets, Asset{
			Name: fmt.Sprintf("icon-%d.png", size),
			Spec: icon.Spec{Size: size, IncludeR: true},
		})
	}
	return append(assets,
		Asset{Name: "icon-splash.png", Spec: icon.Spec{Size: 512, IncludeText: true}},
		Asset{Name: "apple-touch-icon.png", Spec: icon.Spec{Size: 180, IncludeR: true}},
	)
}

// Run renders the app icons into the output folder.
func Run(ctx context.Context, cfg *Config) error {
	var count int
	log.Println("icons: started")
	defer func() {
		log.Printf("icons: ended (%d)\n", count)
	}()

	debug := func(format string, args ...interface{}) {
		if !cfg.Debug {
			return
		}
		format += "\n"
		log.Printf(format, args...)
	}

	output := cfg.Output
	if output == "" {
		output = "docs"
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("icons: couldn't create output folder: %w", err)
	}

	fonts := cfg.Fonts
	if len(fonts) == 0 {
		fonts = icon.DefaultFonts
	}
	renderer := icon.New(fonts, cfg.Debug)
	debug("icons: using font %s", renderer.Font())

	for _, a := range Assets() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("icons: %w", err)
		}
		path := filepath.Join(output, a.Name)
		if err := icon.Save(path, renderer.Render(a.Spec)); err != nil {
			return fmt.Errorf("icons: couldn't save %s: %w", a.Name, err)
		}
		log.Printf("icons: created %s\n", path)
		count++
	}
	return nil
}
