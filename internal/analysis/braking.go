// Package analysis derives summary quantities from sampled braking
// trajectories for post-run inspection.
package analysis

import (
	"github.com/san-kum/brakesim/internal/physics"
)

// BrakingOnset returns the index of the first sample where speed drops,
// i.e. where the braking phase begins after the constant-speed reaction
// phase. Returns -1 if the trajectory never decelerates.
func BrakingOnset(samples []physics.Sample) int {
	for i := 1; i < len(samples); i++ {
		if samples[i].SpeedKmh < samples[i-1].SpeedKmh-1e-9 {
			return i
		}
	}
	return -1
}

// PeakDeceleration returns the largest deceleration between consecutive
// samples, in m/s^2. dt is the sampling step the trajectory was recorded
// with.
func PeakDeceleration(samples []physics.Sample, dt float64) float64 {
	if dt <= 0 || len(samples) < 2 {
		return 0
	}
	peak := 0.0
	for i := 1; i < len(samples); i++ {
		decel := (physics.KmhToMs(samples[i-1].SpeedKmh) - physics.KmhToMs(samples[i].SpeedKmh)) / dt
		if decel > peak {
			peak = decel
		}
	}
	return peak
}

// MeanDeceleration averages deceleration over the braking phase only, in
// m/s^2. Zero when the trajectory never brakes.
func MeanDeceleration(samples []physics.Sample, dt float64) float64 {
	onset := BrakingOnset(samples)
	if onset < 0 || dt <= 0 {
		return 0
	}
	last := len(samples) - 1
	elapsed := float64(last-onset+1) * dt
	if elapsed <= 0 {
		return 0
	}
	dv := physics.KmhToMs(samples[onset-1].SpeedKmh) - physics.KmhToMs(samples[last].SpeedKmh)
	return dv / elapsed
}

// DistanceAtSpeed returns the cumulative distance at which the trajectory
// first slows to the target speed, interpolating between samples. The
// second return is false when the trajectory never reaches the target.
func DistanceAtSpeed(samples []physics.Sample, targetKmh float64) (float64, bool) {
	for i := 1; i < len(samples); i++ {
		if samples[i].SpeedKmh > targetKmh {
			continue
		}
		a, b := samples[i-1], samples[i]
		if a.SpeedKmh == b.SpeedKmh {
			return b.Distance, true
		}
		frac := (a.SpeedKmh - targetKmh) / (a.SpeedKmh - b.SpeedKmh)
		return a.Distance + frac*(b.Distance-a.Distance), true
	}
	if len(samples) > 0 && samples[0].SpeedKmh <= targetKmh {
		return samples[0].Distance, true
	}
	return 0, false
}
