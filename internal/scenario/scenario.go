// Package scenario assembles braking scenarios from the lookup tables and
// dispatches them to the physics kernel.
package scenario

import (
	"fmt"

	"github.com/san-kum/brakesim/internal/physics"
)

const (
	// Reaction times for the alertness menu.
	ReactionAlert = 1.0
	ReactionTired = 2.0

	DefaultSpeedKmh = 60.0
)

// Scenario is one stopping-distance question: how fast, on what surface,
// with which car. Vehicle is optional; without aerodynamic data only the
// closed-form friction model applies.
type Scenario struct {
	SpeedKmh     float64
	ReactionTime float64
	Weather      Weather
	Tyres        TyreCondition
	ABS          bool
	SlopePercent float64
	Vehicle      *physics.Vehicle
	Dt           float64 // integration step for the numeric model
}

// Mu combines weather, tyre condition, and ABS into the effective friction
// coefficient.
func (s Scenario) Mu() float64 {
	return physics.FrictionInputs{
		WeatherMu:  s.Weather.BaseMu(),
		TyreFactor: s.Tyres.Factor(),
		ABS:        s.ABS,
	}.Combine()
}

// Validate checks the preconditions the kernel assumes.
func (s Scenario) Validate() error {
	if s.SpeedKmh < 0 {
		return fmt.Errorf("speed must be non-negative, got %f", s.SpeedKmh)
	}
	if s.ReactionTime < 0 {
		return fmt.Errorf("reaction time must be non-negative, got %f", s.ReactionTime)
	}
	if s.Vehicle != nil {
		if s.Vehicle.MassKg <= 0 {
			return fmt.Errorf("vehicle mass must be positive, got %f", s.Vehicle.MassKg)
		}
		if s.Vehicle.FrontalAreaM2 < 0 {
			return fmt.Errorf("frontal area must be non-negative, got %f", s.Vehicle.FrontalAreaM2)
		}
	}
	return nil
}

// Outcome is the result of evaluating a scenario with whichever model its
// inputs support.
type Outcome struct {
	Model            string // "closed-form" or "numeric"
	Mu               float64
	ReactionDistance float64
	BrakingDistance  float64
	TotalDistance    float64
	TotalTime        float64 // numeric model only
	FinalVelocity    float64 // numeric model only
	Stoppable        bool
	Converged        bool
}

// Evaluate runs the numeric drag model when vehicle aerodynamics are known
// and falls back to the closed-form friction model otherwise.
func (s Scenario) Evaluate(env physics.Environment) (Outcome, error) {
	if err := s.Validate(); err != nil {
		return Outcome{}, err
	}

	mu := s.Mu()

	if s.Vehicle == nil {
		r := physics.ClosedFormStop(env, s.SpeedKmh, mu, s.SlopePercent, s.ReactionTime)
		return Outcome{
			Model:            "closed-form",
			Mu:               mu,
			ReactionDistance: r.ReactionDistance,
			BrakingDistance:  r.BrakingDistance,
			TotalDistance:    r.TotalDistance,
			Stoppable:        r.Stoppable(),
			Converged:        r.Stoppable(),
		}, nil
	}

	r := physics.NumericStop(env, s.SpeedKmh, mu, *s.Vehicle, s.SlopePercent, s.ReactionTime, s.Dt)
	return Outcome{
		Model:            "numeric",
		Mu:               mu,
		ReactionDistance: r.ReactionDistance,
		BrakingDistance:  r.BrakingDistance,
		TotalDistance:    r.TotalDistance,
		TotalTime:        r.TotalTime,
		FinalVelocity:    r.FinalVelocity,
		Stoppable:        true,
		Converged:        r.Converged,
	}, nil
}

// Profile samples the full trajectory for charting. Scenarios without a
// vehicle use the manual-entry drag defaults of the original tables.
func (s Scenario) Profile(env physics.Environment, dt float64) []physics.Sample {
	veh := s.vehicleOrDefault()
	return physics.SpeedDistanceProfile(env, s.SpeedKmh, s.Mu(), veh, s.SlopePercent, s.ReactionTime, dt)
}

func (s Scenario) vehicleOrDefault() physics.Vehicle {
	if s.Vehicle != nil {
		return *s.Vehicle
	}
	return physics.Vehicle{MassKg: 1300, DragCoefficient: 0.3, FrontalAreaM2: 2.2}
}
