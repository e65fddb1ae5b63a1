package physics

import "math"

// StopResult holds the distances of a braking scenario, in meters.
// All distances except ReactionDistance are +Inf when the vehicle cannot
// stop under the given conditions.
type StopResult struct {
	ReactionDistance float64
	BrakingDistance  float64
	TotalDistance    float64
}

// Stoppable reports whether the scenario came to a stop at a finite
// distance.
func (r StopResult) Stoppable() bool {
	return !math.IsInf(r.TotalDistance, 1)
}

// ClosedFormStop computes the stopping distance from the constant
// deceleration v^2 = 2*a*d, ignoring aerodynamic drag:
//
//	aEff = -mu*g*cos(alpha) + slopeAccel
//
// If friction cannot overcome a downhill pull (aEff >= 0) the vehicle never
// stops and the braking and total distances are +Inf; the reaction distance
// stays finite since it accrues before braking begins.
func ClosedFormStop(env Environment, speedKmh, mu, slopePercent, reactionTime float64) StopResult {
	speedMs := KmhToMs(speedKmh)
	slope := Slope{Percent: slopePercent}

	reactionDist := speedMs * reactionTime

	aEff := -mu*env.Gravity*math.Cos(slope.Angle()) + slope.Accel(env.Gravity)
	if aEff >= 0 {
		return StopResult{
			ReactionDistance: reactionDist,
			BrakingDistance:  math.Inf(1),
			TotalDistance:    math.Inf(1),
		}
	}

	brakingDist := speedMs * speedMs / (2 * -aEff)
	return StopResult{
		ReactionDistance: reactionDist,
		BrakingDistance:  brakingDist,
		TotalDistance:    reactionDist + brakingDist,
	}
}
