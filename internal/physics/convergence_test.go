package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/brakesim/internal/physics"
)

var _ = Describe("numeric braking model", func() {
	var env physics.Environment

	BeforeEach(func() {
		env = physics.DefaultEnvironment()
	})

	Describe("convergence to the closed form", func() {
		It("approaches the analytic distance as drag vanishes", func() {
			closed := physics.ClosedFormStop(env, 80, 0.68, 2, 1.2)

			prevErr := 1e9
			for _, scale := range []float64{1.0, 0.1, 0.01, 0.0} {
				veh := physics.Vehicle{
					MassKg:          1300,
					DragCoefficient: 0.29 * scale,
					FrontalAreaM2:   2.2 * scale,
				}
				numeric := physics.NumericStop(env, 80, 0.68, veh, 2, 1.2, 0.001)

				err := closed.TotalDistance - numeric.TotalDistance
				Expect(err).To(BeNumerically(">=", -0.05),
					"numeric distance must not exceed the drag-free analytic bound")
				Expect(err).To(BeNumerically("<=", prevErr+1e-9))
				prevErr = err
			}

			Expect(prevErr).To(BeNumerically("~", 0, 0.05))
		})

		It("shrinks integration error with the step size", func() {
			noDrag := physics.Vehicle{MassKg: 1500}
			closed := physics.ClosedFormStop(env, 100, 0.5, 0, 0)

			coarse := physics.NumericStop(env, 100, 0.5, noDrag, 0, 0, 0.1)
			fine := physics.NumericStop(env, 100, 0.5, noDrag, 0, 0, 0.001)

			coarseErr := absF(coarse.TotalDistance - closed.TotalDistance)
			fineErr := absF(fine.TotalDistance - closed.TotalDistance)
			Expect(fineErr).To(BeNumerically("<=", coarseErr+1e-9))
			Expect(fineErr).To(BeNumerically("<", 0.05))
		})
	})

	Describe("monotonicity", func() {
		It("strictly increases total distance with initial speed", func() {
			veh := physics.Vehicle{MassKg: 1300, DragCoefficient: 0.29, FrontalAreaM2: 2.2}

			prev := -1.0
			for speed := 10.0; speed <= 130; speed += 10 {
				r := physics.NumericStop(env, speed, 0.7, veh, 0, 1.0, 0.01)
				Expect(r.Converged).To(BeTrue())
				Expect(r.TotalDistance).To(BeNumerically(">", prev))
				prev = r.TotalDistance
			}
		})

		It("lengthens the stop as friction drops", func() {
			veh := physics.Vehicle{MassKg: 1300, DragCoefficient: 0.29, FrontalAreaM2: 2.2}

			prev := -1.0
			for _, mu := range []float64{0.85, 0.55, 0.20, 0.10} {
				r := physics.NumericStop(env, 60, mu, veh, 0, 1.0, 0.01)
				Expect(r.TotalDistance).To(BeNumerically(">", prev))
				prev = r.TotalDistance
			}
		})
	})

	Describe("profile sampler", func() {
		It("keeps the trajectory consistent with the scalar model", func() {
			veh := physics.Vehicle{MassKg: 1600, DragCoefficient: 0.33, FrontalAreaM2: 2.7}

			samples := physics.SpeedDistanceProfile(env, 90, 0.44, veh, -2, 1.0, 0.01)
			numeric := physics.NumericStop(env, 90, 0.44, veh, -2, 1.0, 0.01)

			Expect(samples).NotTo(BeEmpty())
			last := samples[len(samples)-1]
			Expect(last.Distance).To(BeNumerically("~", numeric.TotalDistance, 0.5))
			Expect(last.SpeedKmh).To(BeNumerically("<=", physics.MsToKmh(0.01)+1e-9))
		})
	})
})

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
