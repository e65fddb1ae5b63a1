package physics

import "math"

// DefaultProfileDt is the sampling step for trajectory profiles, coarser
// than the integration step since the samples only feed charts.
const DefaultProfileDt = 0.05

// Sample is one point of a braking trajectory: cumulative distance in
// meters and the instantaneous speed in km/h.
type Sample struct {
	Distance float64
	SpeedKmh float64
}

// SpeedDistanceProfile runs the numeric model and records every step,
// producing the full trajectory for charting: a constant-speed reaction
// phase followed by the braking phase. The sequence is finite; it ends
// when velocity drops below the stop threshold or when the braking time
// cap is exceeded. The scalar results should come from NumericStop, not
// from the last sample.
func SpeedDistanceProfile(env Environment, speedKmh, mu float64, veh Vehicle, slopePercent, reactionTime, dt float64) []Sample {
	if dt <= 0 {
		dt = DefaultProfileDt
	}

	speedMs := KmhToMs(speedKmh)
	slope := Slope{Percent: slopePercent}

	samples := make([]Sample, 0, int(reactionTime/dt)+64)

	x := 0.0
	v := speedMs
	t := 0.0

	for t <= reactionTime {
		samples = append(samples, Sample{Distance: x, SpeedKmh: MsToKmh(v)})
		t += dt
		x += v * dt
	}

	for t <= reactionTime+maxBrakingTime {
		a := -mu*env.Gravity*math.Cos(slope.Angle()) + slope.Accel(env.Gravity) - veh.DragAccel(env, v)

		vNext := v + a*dt
		if vNext < 0 {
			vNext = 0
		}

		samples = append(samples, Sample{Distance: x, SpeedKmh: MsToKmh(vNext)})

		x += 0.5 * (v + vNext) * dt
		v = vNext
		t += dt

		if v <= stopThreshold {
			break
		}
	}

	return samples
}
