package physics

import (
	"math"
	"testing"
)

func TestKmhToMs(t *testing.T) {
	if got := KmhToMs(60); math.Abs(got-16.6667) > 1e-3 {
		t.Errorf("expected ~16.667 m/s, got %f", got)
	}
	if got := KmhToMs(0); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestMsToKmhRoundTrip(t *testing.T) {
	if got := MsToKmh(KmhToMs(100)); math.Abs(got-100) > 1e-9 {
		t.Errorf("round trip lost precision: %f", got)
	}
}

func TestCombineFriction(t *testing.T) {
	tests := []struct {
		name string
		in   FrictionInputs
		want float64
	}{
		{"dry good tyres", FrictionInputs{WeatherMu: 0.85, TyreFactor: 1.0}, 0.85},
		{"dry good tyres abs", FrictionInputs{WeatherMu: 0.85, TyreFactor: 1.0, ABS: true}, 0.90},
		{"wet decent tyres", FrictionInputs{WeatherMu: 0.55, TyreFactor: 0.8}, 0.44},
		{"ice worn tyres", FrictionInputs{WeatherMu: 0.10, TyreFactor: 0.5}, 0.05},
		{"floor applies", FrictionInputs{WeatherMu: 0.0, TyreFactor: 0.5}, 0.01},
		{"floor with zero tyres", FrictionInputs{WeatherMu: 0.85, TyreFactor: 0.0}, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Combine()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected mu %f, got %f", tt.want, got)
			}
		})
	}
}

func TestCombineFrictionAlwaysPositive(t *testing.T) {
	in := FrictionInputs{WeatherMu: 0, TyreFactor: 0}
	if got := in.Combine(); got <= 0 {
		t.Errorf("combined friction must be positive, got %f", got)
	}
}

func TestSlopeAccelSign(t *testing.T) {
	g := DefaultGravity

	uphill := Slope{Percent: 5}
	if a := uphill.Accel(g); a >= 0 {
		t.Errorf("uphill slope should oppose motion, got %f", a)
	}

	downhill := Slope{Percent: -5}
	if a := downhill.Accel(g); a <= 0 {
		t.Errorf("downhill slope should push forward, got %f", a)
	}

	flat := Slope{Percent: 0}
	if a := flat.Accel(g); a != 0 {
		t.Errorf("flat road should contribute nothing, got %f", a)
	}
}

func TestSlopeAngle(t *testing.T) {
	s := Slope{Percent: 100}
	if math.Abs(s.Angle()-math.Pi/4) > 1e-9 {
		t.Errorf("100%% grade should be 45 degrees, got %f rad", s.Angle())
	}

	neg := Slope{Percent: -8}
	pos := Slope{Percent: 8}
	if neg.Angle() != pos.Angle() {
		t.Error("angle should depend on magnitude only")
	}
}
