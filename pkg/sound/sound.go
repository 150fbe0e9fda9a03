package sound

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/igolaizola/raagam/pkg/synth"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type Analyzer struct {
	mono     []float64
	rate     int
	duration time.Duration
	source   string
}

// NewAnalyzer loads a wav or mp3 file.
func NewAnalyzer(path string) (*Analyzer, error) {
	var pcm *synth.PCM
	var err error
	switch filepath.Ext(path) {
	case ".wav":
		pcm, err = synth.ReadWAV(path)
	case ".mp3":
		pcm, err = readMP3(path)
	default:
		return nil, fmt.Errorf("sound: unsupported extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("sound: couldn't decode %s: %w", path, err)
	}
	a := fromPCM(pcm)
	a.source = path
	return a, nil
}

// FromSamples creates an analyzer over mono samples.
func FromSamples(samples []int16, rate int) *Analyzer {
	return fromPCM(&synth.PCM{Channels: 1, SampleRate: rate, Samples: samples})
}

func fromPCM(pcm *synth.PCM) *Analyzer {
	channels := max(1, pcm.Channels)
	mono := make([]float64, len(pcm.Samples)/channels)
	for i := range mono {
		var sum float64
		for c := 0; c < channels; c++ {
			// Normalize sample to float64 range -1.0 to 1.0
			sum += float64(pcm.Samples[i*channels+c]) / 32768.0
		}
		mono[i] = sum / float64(channels)
	}
	duration := time.Duration(float64(len(mono)) / float64(pcm.SampleRate) * float64(time.Second))
	return &Analyzer{
		mono:     mono,
		rate:     pcm.SampleRate,
		duration: duration,
	}
}

func readMP3(path string) (*synth.PCM, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoder, err := mp3.NewDecoder(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("couldn't decode mp3: %w", err)
	}
	// go-mp3 always outputs 16-bit little endian stereo
	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("couldn't read sample: %w", err)
	}
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(raw[2*i]) | int16(raw[2*i+1])<<8
	}
	return &synth.PCM{
		Channels:   2,
		SampleRate: decoder.SampleRate(),
		Samples:    samples,
	}, nil
}

func (a *Analyzer) Source() string {
	return a.source
}

func (a *Analyzer) Duration() time.Duration {
	return a.duration
}

func (a *Analyzer) Rate() int {
	return a.rate
}

// Peak returns the highest absolute normalized sample.
func (a *Analyzer) Peak() float64 {
	var peak float64
	for _, v := range a.mono {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

func (a *Analyzer) Resample(windowSize time.Duration) []float64 {
	samples := a.mono
	windowLength := a.windowLength(windowSize)

	var resampled []float64
	for i := 0; i < len(samples); i += windowLength {
		end := min(i+windowLength, len(samples))
		window := samples[i:end]
		var lo, hi float64
		for _, v := range window {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		resampled = append(resampled, lo, hi)
	}
	return resampled
}

func (a *Analyzer) RMS(windowSize time.Duration) []float64 {
	samples := a.mono
	windowLength := a.windowLength(windowSize)

	var rms []float64
	for i := 0; i < len(samples); i += windowLength {
		end := min(i+windowLength, len(samples))
		rms = append(rms, calculateRMS(samples[i:end]))
	}
	return rms
}

func (a *Analyzer) windowLength(windowSize time.Duration) int {
	return max(1, int(float64(a.rate)*windowSize.Seconds()))
}

func calculateRMS(samples []float64) float64 {
	var squareSum float64
	for _, sample := range samples {
		squareSum += sample * sample
	}
	meanSquare := squareSum / float64(len(samples))
	return math.Sqrt(meanSquare)
}

func (a *Analyzer) PlotRMS() ([]byte, error) {
	window := 50 * time.Millisecond
	rms := a.RMS(window)
	return createPlot("rms", rms, 0, 1, window.Seconds(), 0.01)
}

func (a *Analyzer) PlotWave(name string) ([]byte, error) {
	window := 50 * time.Millisecond
	resampled := a.Resample(window)
	return createPlot(name, resampled, -1, 1, window.Seconds()/2, 0.00)
}

func createPlot(name string, data []float64, min, max float64, step float64, line float64) ([]byte, error) {
	p := plot.New()

	p.Y.Min = min
	p.Y.Max = max

	d := time.Duration(float64(len(data)) * step * float64(time.Second)).Round(time.Millisecond)
	p.Title.Text = fmt.Sprintf("%s %s", name, d)
	p.X.Label.Text = "time"
	p.Y.Label.Text = "data"

	pts := make(plotter.XYs, len(data))
	for i, v := range data {
		pts[i].X = float64(i) * step
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("sound: couldn't create line plotter: %w", err)
	}
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)

	// Reference line at y = line
	if line > 0 {
		hLine := plotter.NewFunction(func(x float64) float64 { return line })
		hLine.Color = color.RGBA{R: 255, A: 255}
		p.Add(hLine)
	}

	c, err := p.WriterTo(4*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("sound: couldn't create plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("sound: couldn't write plot: %w", err)
	}
	return buf.Bytes(), nil
}
