package analyze

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/igolaizola/raagam/pkg/sound"
)

type Config struct {
	Debug  bool
	Input  string
	Output string
}

// Run prints a summary of a track and writes its plots.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Input == "" {
		return errors.New("analyze: input is required")
	}
	a, err := sound.NewAnalyzer(cfg.Input)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	fmt.Printf("Duration: %s, rate: %d Hz, peak: %.3f\n", a.Duration(), a.Rate(), a.Peak())
	fmt.Printf("Fade in: %v, fade out: %v\n", a.HasFadeIn(), a.HasFadeOut())

	if cfg.Output == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("analyze: couldn't create output folder: %w", err)
	}
	name := filepath.Base(cfg.Input)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	out := filepath.Join(cfg.Output, name)

	rms, err := a.PlotRMS()
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if err := os.WriteFile(out+"-rms.png", rms, 0644); err != nil {
		return fmt.Errorf("analyze: couldn't write plot: %w", err)
	}
	wave, err := a.PlotWave(name)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if err := os.WriteFile(out+"-wave.png", wave, 0644); err != nil {
		return fmt.Errorf("analyze: couldn't write plot: %w", err)
	}
	return nil
}
