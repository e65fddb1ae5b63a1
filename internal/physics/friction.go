package physics

const (
	// absBonus is the flat friction bump granted for anti-lock brakes.
	absBonus = 0.05

	// minFriction floors the combined coefficient. Downstream models use
	// mu as a deceleration multiplier; a non-positive value would turn a
	// physically unstoppable scenario into a division artifact instead of
	// the intended sentinel.
	minFriction = 0.01
)

// FrictionInputs are the factors combined into an effective tyre-road
// friction coefficient.
type FrictionInputs struct {
	WeatherMu  float64 // road-surface friction under ideal tyres, 0-1
	TyreFactor float64 // tyre condition multiplier, 0-1
	ABS        bool
}

// Combine returns the effective friction coefficient:
// weather base times tyre factor, plus the ABS bonus, floored at 0.01.
func (f FrictionInputs) Combine() float64 {
	mu := f.WeatherMu * f.TyreFactor
	if f.ABS {
		mu += absBonus
	}
	if mu < minFriction {
		return minFriction
	}
	return mu
}
