package config

var Presets = map[string]*Config{
	"city_dry": {
		SpeedKmh: 50, ReactionTime: 1.0,
		Weather: "dry", Tyres: "good", ABS: true,
		Car: "Toyota Corolla",
	},
	"highway_wet": {
		SpeedKmh: 110, ReactionTime: 1.0,
		Weather: "wet", Tyres: "decent", ABS: true,
		Car: "Toyota Camry",
	},
	"snow_uphill": {
		SpeedKmh: 40, ReactionTime: 1.0,
		Weather: "snow", Tyres: "decent", ABS: true,
		SlopePercent: 5.0,
		Car:          "Subaru Forester",
	},
	"icy_descent": {
		SpeedKmh: 30, ReactionTime: 1.0,
		Weather: "ice", Tyres: "worn",
		SlopePercent: -8.0,
	},
	"tired_night": {
		SpeedKmh: 100, ReactionTime: 2.0,
		Weather: "dry", Tyres: "decent",
		Car: "Toyota HiLux",
	},
}

func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}

	// Presets only state what differs from the defaults.
	cfg := DefaultConfig()
	cfg.SpeedKmh = base.SpeedKmh
	cfg.ReactionTime = base.ReactionTime
	cfg.Weather = base.Weather
	cfg.Tyres = base.Tyres
	cfg.ABS = base.ABS
	cfg.SlopePercent = base.SlopePercent
	cfg.Car = base.Car
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
