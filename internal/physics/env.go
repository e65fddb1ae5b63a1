package physics

const (
	DefaultGravity    = 9.81  // m/s^2
	DefaultAirDensity = 1.225 // kg/m^3, approx. at sea level
)

// Environment carries the physical constants the models depend on.
type Environment struct {
	Gravity    float64
	AirDensity float64
}

func DefaultEnvironment() Environment {
	return Environment{
		Gravity:    DefaultGravity,
		AirDensity: DefaultAirDensity,
	}
}
