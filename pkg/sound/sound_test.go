package sound

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/igolaizola/raagam/pkg/synth"
)

func tone(freq float64, d time.Duration) []int16 {
	samples := make([]int16, synth.Samples(d))
	for i := range samples {
		t := float64(i) / synth.SampleRate
		samples[i] = int16(0.5 * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
	}
	return samples
}

func TestFade(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
		want    bool
	}{
		{"melody", synth.Synthesize(261.63, 3*time.Second), true},
		{"high", synth.Synthesize(783.99, 11*time.Second), true},
		{"tone", tone(440, 3*time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSamples(tt.samples, synth.SampleRate)
			if got := a.HasFadeIn(); got != tt.want {
				t.Errorf("HasFadeIn() = %v; want %v", got, tt.want)
			}
			if got := a.HasFadeOut(); got != tt.want {
				t.Errorf("HasFadeOut() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzerWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Telangana_Beats.wav")
	samples := synth.Synthesize(493.88, 10*time.Second)
	if err := synth.WriteWAV(path, samples, nil); err != nil {
		t.Fatal(err)
	}
	a, err := NewAnalyzer(path)
	if err != nil {
		t.Fatalf("NewAnalyzer(%q) err = %v; want nil", path, err)
	}
	if a.Duration() != 10*time.Second {
		t.Errorf("Duration() = %s; want 10s", a.Duration())
	}
	if a.Rate() != 44100 {
		t.Errorf("Rate() = %d; want 44100", a.Rate())
	}
	if p := a.Peak(); p <= 0 || p > 1 {
		t.Errorf("Peak() = %v; want (0, 1]", p)
	}
	if got := len(a.RMS(50 * time.Millisecond)); got != 200 {
		t.Errorf("len(RMS()) = %d; want 200", got)
	}
	if got := len(a.Resample(50 * time.Millisecond)); got != 400 {
		t.Errorf("len(Resample()) = %d; want 400", got)
	}
}

func TestAnalyzerUnsupported(t *testing.T) {
	if _, err := NewAnalyzer("track.ogg"); err == nil {
		t.Error("NewAnalyzer(track.ogg) err = nil; want error")
	}
}

func TestPlot(t *testing.T) {
	a := FromSamples(synth.Synthesize(440, time.Second), synth.SampleRate)
	for name, fn := range map[string]func() ([]byte, error){
		"rms":  a.PlotRMS,
		"wave": func() ([]byte, error) { return a.PlotWave("wave") },
	} {
		b, err := fn()
		if err != nil {
			t.Fatalf("%s err = %v; want nil", name, err)
		}
		if _, err := png.Decode(bytes.NewReader(b)); err != nil {
			t.Errorf("%s isn't a png: %v", name, err)
		}
	}
}
