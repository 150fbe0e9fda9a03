package sound

import (
	"time"
)

const (
	rmsWindow  = 50 * time.Millisecond
	fadeWindow = 500 * time.Millisecond
	// Minimum RMS change between windows to be counted as a step.
	fadeThreshold = 0.001
)

// HasFadeIn reports whether the loudness rises steadily at the start.
func (a *Analyzer) HasFadeIn() bool {
	rms := a.RMS(rmsWindow)
	n := int(fadeWindow / rmsWindow)
	if len(rms) < n {
		return false
	}
	return monotonic(rms[:n], 1)
}

// HasFadeOut reports whether the loudness decreases steadily at the end.
func (a *Analyzer) HasFadeOut() bool {
	rms := a.RMS(rmsWindow)
	n := int(fadeWindow / rmsWindow)
	if len(rms) < n {
		return false
	}
	return monotonic(rms[len(rms)-n:], -1)
}

// monotonic allows a single window to break the trend.
func monotonic(rms []float64, sign float64) bool {
	var count int
	for i := 1; i < len(rms); i++ {
		if (rms[i]-rms[i-1])*sign <= fadeThreshold {
			count++
		}
	}
	return count <= 1
}
