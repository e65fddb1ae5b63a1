package physics

import "math"

// Slope is a road grade in percent: rise over run times 100.
// Positive means uphill, negative downhill.
type Slope struct {
	Percent float64
}

// Angle returns the grade angle alpha in radians.
func (s Slope) Angle() float64 {
	return math.Atan(math.Abs(s.Percent) / 100.0)
}

func (s Slope) IsUphill() bool {
	return s.Percent >= 0
}

// Accel returns the along-road acceleration contributed by gravity.
// Uphill the component opposes motion (negative), downhill it pushes the
// vehicle forward (positive), so downhill slopes resist stopping.
func (s Slope) Accel(gravity float64) float64 {
	if s.IsUphill() {
		return -gravity * math.Sin(s.Angle())
	}
	return gravity * math.Sin(s.Angle())
}
