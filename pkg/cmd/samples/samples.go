package samples

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/igolaizola/raagam/pkg/music"
	"github.com/igolaizola/raagam/pkg/sound"
	"github.com/igolaizola/raagam/pkg/synth"
)

type Config struct {
	Debug  bool
	Input  string
	Output string
	Genre  string
	Plot   bool
}

// Run synthesizes the sample tracks into album folders.
func Run(ctx context.Context, cfg *Config) error {
	var count int
	log.Println("samples: started")
	defer func() {
		log.Printf("samples: ended (%d)\n", count)
	}()

	debug := func(format string, args ...interface{}) {
		if !cfg.Debug {
			return
		}
		format += "\n"
		log.Printf(format, args...)
	}

	tracks := music.DefaultTracks()
	if cfg.Input != "" {
		var err error
		tracks, err = music.Load(cfg.Input)
		if err != nil {
			return fmt.Errorf("samples: %w", err)
		}
	}

	output := cfg.Output
	if output == "" {
		output = "music"
	}
	for _, album := range music.Albums(tracks) {
		if err := os.MkdirAll(filepath.Join(output, album), 0755); err != nil {
			return fmt.Errorf("samples: couldn't create album folder: %w", err)
		}
	}

	numbers := map[string]int{}
	for _, t := range tracks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("samples: %w", err)
		}
		numbers[t.Album]++

		path := t.Path(output)
		log.Printf("samples: generating %s\n", path)
		samples := synth.Synthesize(t.Frequency, t.Duration)
		if err := synth.WriteWAV(path, samples, &synth.Metadata{
			Title:  t.Title(),
			Artist: t.Artist,
			Album:  t.Album,
			Track:  numbers[t.Album],
			Genre:  cfg.Genre,
		}); err != nil {
			return fmt.Errorf("samples: couldn't write %s: %w", path, err)
		}
		debug("samples: %s %d samples at %.2f Hz", t.Name, len(samples), t.Frequency)

		if cfg.Plot {
			a := sound.FromSamples(samples, synth.SampleRate)
			b, err := a.PlotWave(t.Title())
			if err != nil {
				return fmt.Errorf("samples: %w", err)
			}
			plot := strings.TrimSuffix(path, filepath.Ext(path)) + "-wave.png"
			if err := os.WriteFile(plot, b, 0644); err != nil {
				return fmt.Errorf("samples: couldn't write plot: %w", err)
			}
		}
		count++
	}
	return nil
}
