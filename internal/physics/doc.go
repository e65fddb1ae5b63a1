// Package physics is the stopping-distance kernel: friction combination,
// the closed-form braking formula, and the fixed-step numeric model with
// aerodynamic drag.
//
// Two models are provided:
//
//   - [ClosedFormStop]: analytic friction-plus-slope distance, used when
//     vehicle aerodynamic parameters are unknown. Signals an unstoppable
//     scenario (friction cannot overcome a downhill pull) with +Inf
//     distances.
//   - [NumericStop]: forward Euler integration of velocity under friction,
//     slope, and quadratic drag. Terminates when velocity falls below the
//     stop threshold or after 300 s of simulated braking; the latter case
//     is reported via [NumericResult].Converged.
//
// [SpeedDistanceProfile] runs the same physical model but materializes the
// full (distance, speed) trajectory for charting.
//
// The kernel performs no I/O, holds no shared state, and is safe to call
// from concurrent goroutines. Gravity and air density are injected through
// [Environment] rather than read from globals, so tests can run at
// non-Earth values.
package physics
