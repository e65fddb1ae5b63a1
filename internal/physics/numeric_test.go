package physics

import (
	"math"
	"testing"
)

var corolla = Vehicle{MassKg: 1300, DragCoefficient: 0.29, FrontalAreaM2: 2.2}

func TestNumericStopConverges(t *testing.T) {
	env := DefaultEnvironment()

	r := NumericStop(env, 60, 0.7, corolla, 0, 1.0, 0.01)

	if !r.Converged {
		t.Fatal("expected a normal stop")
	}
	if r.FinalVelocity > stopThreshold {
		t.Errorf("final velocity should be ~0, got %f", r.FinalVelocity)
	}
	if r.TotalTime <= 1.0 {
		t.Errorf("total time should exceed the reaction time, got %f", r.TotalTime)
	}
}

func TestNumericDragShortensStop(t *testing.T) {
	env := DefaultEnvironment()

	closed := ClosedFormStop(env, 60, 0.7, 0, 1.0)
	numeric := NumericStop(env, 60, 0.7, corolla, 0, 1.0, 0.01)

	if numeric.TotalDistance >= closed.TotalDistance {
		t.Errorf("drag adds deceleration: numeric %f should undercut closed form %f",
			numeric.TotalDistance, closed.TotalDistance)
	}

	// But not by much at city speeds.
	if closed.TotalDistance-numeric.TotalDistance > 2.0 {
		t.Errorf("drag effect implausibly large: %f vs %f", numeric.TotalDistance, closed.TotalDistance)
	}
}

func TestNumericDragFreeMatchesClosedForm(t *testing.T) {
	env := DefaultEnvironment()
	noDrag := Vehicle{MassKg: 1300, DragCoefficient: 0, FrontalAreaM2: 0}

	closed := ClosedFormStop(env, 60, 0.7, 0, 1.0)
	numeric := NumericStop(env, 60, 0.7, noDrag, 0, 1.0, 0.001)

	// With constant deceleration the trapezoidal rule is exact; only the
	// threshold clamp at the end contributes error.
	if math.Abs(numeric.TotalDistance-closed.TotalDistance) > 0.05 {
		t.Errorf("drag-free numeric should match closed form: %f vs %f",
			numeric.TotalDistance, closed.TotalDistance)
	}
}

func TestNumericReactionDistance(t *testing.T) {
	env := DefaultEnvironment()

	r := NumericStop(env, 90, 0.44, corolla, -2, 1.5, 0.01)
	want := KmhToMs(90) * 1.5
	if math.Abs(r.ReactionDistance-want) > 1e-9 {
		t.Errorf("reaction distance %f, want %f", r.ReactionDistance, want)
	}
}

func TestNumericMonotonicInSpeed(t *testing.T) {
	env := DefaultEnvironment()

	prev := 0.0
	for _, speed := range []float64{20, 40, 60, 80, 100} {
		r := NumericStop(env, speed, 0.7, corolla, 0, 1.0, 0.01)
		if r.TotalDistance <= prev {
			t.Errorf("total distance should grow with speed, got %f after %f", r.TotalDistance, prev)
		}
		prev = r.TotalDistance
	}
}

func TestNumericCapNotConverged(t *testing.T) {
	env := DefaultEnvironment()

	// Steep downhill on ice with a heavy, slippery vehicle: the slope pull
	// exceeds friction and drag stays below it all the way up to a terminal
	// velocity above the initial speed, so the cap expires first.
	heavy := Vehicle{MassKg: 2000, DragCoefficient: 0.3, FrontalAreaM2: 2.0}
	r := NumericStop(env, 60, 0.01, heavy, -8, 1.0, 0.01)

	if r.Converged {
		t.Fatal("expected the time cap to expire before stopping")
	}
	if r.FinalVelocity <= stopThreshold {
		t.Errorf("final velocity should be well above the threshold, got %f", r.FinalVelocity)
	}
	if math.IsInf(r.TotalDistance, 1) {
		t.Error("numeric model reports accumulated distance, not the Inf sentinel")
	}
	if r.TotalTime < maxBrakingTime {
		t.Errorf("braking time should have hit the cap, got %f", r.TotalTime)
	}
}

func TestNumericZeroSpeed(t *testing.T) {
	env := DefaultEnvironment()

	r := NumericStop(env, 0, 0.7, corolla, 0, 1.0, 0.01)
	if !r.Converged {
		t.Fatal("a parked car is already stopped")
	}
	if r.TotalDistance != 0 {
		t.Errorf("expected zero distance, got %f", r.TotalDistance)
	}
}

func TestAdvancePartialStep(t *testing.T) {
	env := DefaultEnvironment()
	slope := Slope{Percent: 0}

	// One step from a crawl: velocity crosses zero inside the step, so the
	// trapezoidal credit uses the zero endpoint.
	st := brakeState{v: 0.02}
	st = advance(env, Vehicle{MassKg: 1300}, 0.7, slope, st, 0.01)

	if !st.stopped {
		t.Fatal("expected the step to terminate the phase")
	}
	if st.v != 0 {
		t.Errorf("velocity should clamp to zero, got %f", st.v)
	}
	want := 0.5 * 0.02 * 0.01
	if math.Abs(st.x-want) > 1e-12 {
		t.Errorf("partial-step distance %g, want %g", st.x, want)
	}
}

func TestDragAccelQuadratic(t *testing.T) {
	env := DefaultEnvironment()

	a10 := corolla.DragAccel(env, 10)
	a20 := corolla.DragAccel(env, 20)
	if math.Abs(a20/a10-4) > 1e-9 {
		t.Errorf("drag should scale with v^2: %f vs %f", a10, a20)
	}
	if corolla.DragAccel(env, 0) != 0 {
		t.Error("no drag at rest")
	}
}
