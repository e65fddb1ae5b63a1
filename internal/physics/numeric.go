package physics

import "math"

const (
	// DefaultDt is the integration step for the numeric model.
	DefaultDt = 0.01

	// maxBrakingTime caps the simulated braking phase. Scenarios that have
	// not stopped by then are degenerate (net forward acceleration the drag
	// term cannot overcome) and are reported as non-converged.
	maxBrakingTime = 300.0

	// stopThreshold is the velocity below which the vehicle counts as
	// stopped. Drag alone decays asymptotically; without a threshold the
	// loop would drift along a long tail of near-zero speeds.
	stopThreshold = 0.01 // m/s
)

// Vehicle holds the aerodynamic parameters of the numeric model.
type Vehicle struct {
	MassKg          float64
	DragCoefficient float64
	FrontalAreaM2   float64
}

// DragAccel returns the deceleration from quadratic aerodynamic drag at
// the given forward speed. Always non-negative; the caller subtracts it.
func (v Vehicle) DragAccel(env Environment, speedMs float64) float64 {
	return 0.5 * env.AirDensity * v.DragCoefficient * v.FrontalAreaM2 * speedMs * speedMs / v.MassKg
}

// NumericResult extends StopResult with the quantities only the
// time-stepped model produces.
type NumericResult struct {
	StopResult
	TotalTime     float64 // seconds, reaction plus braking
	FinalVelocity float64 // m/s, ~0 when Converged
	Converged     bool    // false when the time cap ran out first
}

// brakeState is the integration state of the braking phase.
type brakeState struct {
	v       float64 // velocity, m/s
	x       float64 // distance since brake application, m
	t       float64 // elapsed braking time, s
	stopped bool
}

// advance performs one forward Euler step of the braking phase.
// Distance accumulates with the trapezoidal average of the step's
// endpoints. When velocity would cross zero inside the step, the partial
// distance is credited and the state is marked stopped without advancing
// time past the crossing.
func advance(env Environment, veh Vehicle, mu float64, slope Slope, st brakeState, dt float64) brakeState {
	a := -mu*env.Gravity*math.Cos(slope.Angle()) + slope.Accel(env.Gravity) - veh.DragAccel(env, st.v)

	vNext := st.v + a*dt
	if vNext < 0 {
		st.x += 0.5 * st.v * dt
		st.v = 0
		st.stopped = true
		return st
	}

	st.x += 0.5 * (st.v + vNext) * dt
	st.v = vNext
	st.t += dt

	if st.v <= stopThreshold {
		st.v = 0
		st.stopped = true
	}
	return st
}

// NumericStop integrates the braking phase with fixed step dt and returns
// the accumulated distances, the total elapsed time, and the final
// velocity. The reaction phase contributes distance at constant speed and
// no deceleration, exactly as in ClosedFormStop.
//
// There is no +Inf sentinel here: with drag in the model a vehicle can
// still stop on a net-forward-accelerating slope. Instead the braking
// phase is bounded at 300 s; if velocity has not reached the stop
// threshold by then, the result carries Converged=false and the nonzero
// final velocity.
func NumericStop(env Environment, speedKmh, mu float64, veh Vehicle, slopePercent, reactionTime, dt float64) NumericResult {
	if dt <= 0 {
		dt = DefaultDt
	}

	speedMs := KmhToMs(speedKmh)
	slope := Slope{Percent: slopePercent}
	reactionDist := speedMs * reactionTime

	st := brakeState{v: speedMs}
	maxSteps := int(maxBrakingTime / dt)
	for i := 0; i < maxSteps && !st.stopped; i++ {
		st = advance(env, veh, mu, slope, st, dt)
	}

	return NumericResult{
		StopResult: StopResult{
			ReactionDistance: reactionDist,
			BrakingDistance:  st.x,
			TotalDistance:    reactionDist + st.x,
		},
		TotalTime:     reactionTime + st.t,
		FinalVelocity: st.v,
		Converged:     st.stopped,
	}
}
