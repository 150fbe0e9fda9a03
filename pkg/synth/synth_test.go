package synth

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnvelope(t *testing.T) {
	tests := []struct {
		t, duration float64
		want        float64
	}{
		{0, 15, 0},
		{0.25, 15, 0.5},
		{7.5, 15, 1},
		{15, 15, 0},
		{14.75, 15, 0.5},
		{1.5, 3, 1},
	}
	for _, tt := range tests {
		got := Envelope(tt.t, tt.duration)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Envelope(%v, %v) = %v; want %v", tt.t, tt.duration, got, tt.want)
		}
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1.0},
		{1.99, 1.0},
		{2, 1.125},
		{4.5, 1.25},
		{6.1, 1.0},
		{8, 1.0},
		{10, 1.125},
	}
	for _, tt := range tests {
		if got := Step(tt.t); got != tt.want {
			t.Errorf("Step(%v) = %v; want %v", tt.t, got, tt.want)
		}
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		freq     float64
		duration time.Duration
	}{
		{261.63, 15 * time.Second},
		{783.99, 11 * time.Second},
		{440, 750 * time.Millisecond},
	}
	for _, tt := range tests {
		samples := Synthesize(tt.freq, tt.duration)
		want := tt.duration.Seconds() * SampleRate
		if math.Abs(float64(len(samples))-want) > 1 {
			t.Errorf("len(Synthesize(%v, %s)) = %d; want %v", tt.freq, tt.duration, len(samples), want)
		}
		for i, s := range samples {
			if s < -math.MaxInt16 || s > math.MaxInt16 {
				t.Fatalf("sample %d = %d; out of range", i, s)
			}
		}
		if samples[0] != 0 {
			t.Errorf("first sample = %d; want 0", samples[0])
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a := Synthesize(329.63, 2*time.Second)
	b := Synthesize(329.63, 2*time.Second)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %d != %d", i, a[i], b[i])
		}
	}
}

func TestWriteWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Amma_Paata.wav")
	samples := Synthesize(261.63, 15*time.Second)
	meta := &Metadata{Title: "Amma Paata", Artist: "Demo Artist", Album: "Telugu Melodies", Track: 1}
	if err := WriteWAV(path, samples, meta); err != nil {
		t.Fatalf("WriteWAV() err = %v; want nil", err)
	}

	pcm, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV() err = %v; want nil", err)
	}
	if pcm.Channels != 1 {
		t.Errorf("Channels = %d; want 1", pcm.Channels)
	}
	if pcm.SampleRate != 44100 {
		t.Errorf("SampleRate = %d; want 44100", pcm.SampleRate)
	}
	if len(pcm.Samples) != 661500 {
		t.Fatalf("len(Samples) = %d; want 661500", len(pcm.Samples))
	}
	for i := range samples {
		if pcm.Samples[i] != samples[i] {
			t.Fatalf("sample %d = %d; want %d", i, pcm.Samples[i], samples[i])
		}
	}

	// Same input, same bytes.
	other := filepath.Join(dir, "again.wav")
	if err := WriteWAV(other, Synthesize(261.63, 15*time.Second), meta); err != nil {
		t.Fatal(err)
	}
	b1, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(other)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1, b2) {
		t.Error("regenerated file differs")
	}
}

func TestWriteWAVMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "track.wav")
	if err := WriteWAV(path, []int16{0, 1, 2}, nil); err == nil {
		t.Error("WriteWAV() err = nil; want error")
	}
}
