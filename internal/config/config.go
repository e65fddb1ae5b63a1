package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/brakesim/internal/physics"
	"github.com/san-kum/brakesim/internal/scenario"
)

const (
	DefaultSpeedKmh     = 60.0
	DefaultReactionTime = 1.0
	DefaultDt           = 0.01
	DefaultProfileDt    = 0.05
)

// Config is the YAML description of a braking scenario plus the physical
// constants of the environment.
type Config struct {
	SpeedKmh     float64 `yaml:"speed_kmh"`
	ReactionTime float64 `yaml:"reaction_time"`
	Weather      string  `yaml:"weather"`
	Tyres        string  `yaml:"tyres"`
	ABS          bool    `yaml:"abs"`
	SlopePercent float64 `yaml:"slope_percent"`

	// Car selects from the built-in database. Mass/drag fields below are
	// the manual-entry alternative; a positive mass with no car name means
	// "manual mass, closed-form model only" as in the interactive flow.
	Car           string  `yaml:"car"`
	MassKg        float64 `yaml:"mass_kg"`
	Cd            float64 `yaml:"drag_coefficient"`
	FrontalAreaM2 float64 `yaml:"frontal_area_m2"`

	Dt        float64 `yaml:"dt"`
	ProfileDt float64 `yaml:"profile_dt"`

	Gravity    float64 `yaml:"gravity"`
	AirDensity float64 `yaml:"air_density"`
}

func DefaultConfig() *Config {
	return &Config{
		SpeedKmh:     DefaultSpeedKmh,
		ReactionTime: DefaultReactionTime,
		Weather:      "dry",
		Tyres:        "decent",
		SlopePercent: 0,
		Dt:           DefaultDt,
		ProfileDt:    DefaultProfileDt,
		Gravity:      physics.DefaultGravity,
		AirDensity:   physics.DefaultAirDensity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Environment returns the physical constants, falling back to Earth
// sea-level defaults for unset fields.
func (c *Config) Environment() physics.Environment {
	env := physics.DefaultEnvironment()
	if c.Gravity > 0 {
		env.Gravity = c.Gravity
	}
	if c.AirDensity > 0 {
		env.AirDensity = c.AirDensity
	}
	return env
}

// Scenario converts the config into a validated scenario. An unknown car
// name is an error; weather and tyre strings must parse.
func (c *Config) Scenario() (scenario.Scenario, error) {
	w, err := scenario.ParseWeather(c.Weather)
	if err != nil {
		return scenario.Scenario{}, err
	}
	tyres, err := scenario.ParseTyres(c.Tyres)
	if err != nil {
		return scenario.Scenario{}, err
	}

	s := scenario.Scenario{
		SpeedKmh:     c.SpeedKmh,
		ReactionTime: c.ReactionTime,
		Weather:      w,
		Tyres:        tyres,
		ABS:          c.ABS,
		SlopePercent: c.SlopePercent,
		Dt:           c.Dt,
	}

	switch {
	case c.Car != "":
		car, ok := scenario.CarByName(c.Car)
		if !ok {
			return scenario.Scenario{}, fmt.Errorf("unknown car: %q", c.Car)
		}
		s.Vehicle = &physics.Vehicle{
			MassKg:          car.MassKg,
			DragCoefficient: car.DragCoefficient,
			FrontalAreaM2:   car.FrontalAreaM2,
		}
	case c.MassKg > 0 && c.Cd > 0 && c.FrontalAreaM2 > 0:
		s.Vehicle = &physics.Vehicle{
			MassKg:          c.MassKg,
			DragCoefficient: c.Cd,
			FrontalAreaM2:   c.FrontalAreaM2,
		}
	}
	// A bare positive mass keeps Vehicle nil: manual entry falls back to
	// the closed-form model, matching the interactive flow.

	if err := s.Validate(); err != nil {
		return scenario.Scenario{}, err
	}
	return s, nil
}
