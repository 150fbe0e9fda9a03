package synth

import (
	"math"
	"time"
)

// SampleRate is the rate of every synthesized track.
const SampleRate = 44100

const (
	fadeTime     = 0.5
	vibratoRate  = 5.0
	vibratoDepth = 0.005
	stepLength   = 2.0
	gain         = 0.7
)

// steps is the pitch sequence, cycling every len(steps)*stepLength seconds.
var steps = [4]float64{1.0, 1.125, 1.25, 1.0}

// harmonics holds the weight of the fundamental and its overtones.
var harmonics = [3]float64{0.5, 0.25, 0.1}

// Envelope returns the amplitude at time t of a sound lasting duration
// seconds. It ramps in and out linearly over half a second.
func Envelope(t, duration float64) float64 {
	switch {
	case t < fadeTime:
		return t / fadeTime
	case t > duration-fadeTime:
		return (duration - t) / fadeTime
	}
	return 1.0
}

// Step returns the pitch multiplier applied at time t.
func Step(t float64) float64 {
	return steps[int(t/stepLength)%len(steps)]
}

// Vibrato returns the frequency multiplier applied at time t.
func Vibrato(t float64) float64 {
	return 1.0 + vibratoDepth*math.Sin(2*math.Pi*vibratoRate*t)
}

// Samples returns the number of samples of a track with the given duration.
func Samples(d time.Duration) int {
	return int(math.Round(d.Seconds() * SampleRate))
}

// Synthesize generates a mono melody around base frequency freq.
func Synthesize(freq float64, d time.Duration) []int16 {
	duration := d.Seconds()
	n := Samples(d)
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		f := freq * Vibrato(t) * Step(t)

		var v float64
		for h, w := range harmonics {
			v += w * math.Sin(2*math.Pi*f*float64(h+1)*t)
		}
		v *= Envelope(t, duration) * gain
		v = math.Max(-1.0, math.Min(1.0, v))
		samples[i] = int16(v * math.MaxInt16)
	}
	return samples
}
