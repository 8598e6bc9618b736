package geodesic_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/photonsphere/internal/analysis"
	"github.com/san-kum/photonsphere/internal/geodesic"
	"github.com/san-kum/photonsphere/internal/physics"
)

var _ = Describe("trajectory classification", func() {
	var bh physics.BlackHole

	BeforeEach(func() {
		var err error
		bh, err = physics.NewBlackHole(1.0)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("far rays", func() {
		It("escape with a closest approach outside the horizon", func() {
			for _, b := range []float64{8.5, 9.0, 10.0, 25.0} {
				traj, err := geodesic.Trace(bh, b, geodesic.Options{})
				Expect(err).NotTo(HaveOccurred())
				Expect(traj.Outcome).To(Equal(geodesic.Escaped), "b=%v", b)
				Expect(traj.MinRadius).To(BeNumerically(">", bh.SchwarzschildRadius), "b=%v", b)
			}
		})
	})

	Describe("close rays", func() {
		It("are captured at the horizon cutoff", func() {
			for _, b := range []float64{0.5, 1.0, 2.0, 2.4} {
				traj, err := geodesic.Trace(bh, b, geodesic.Options{})
				Expect(err).NotTo(HaveOccurred())
				Expect(traj.Outcome).To(Equal(geodesic.Captured), "b=%v", b)
			}
		})
	})

	Describe("the conventional critical impact parameter b = 3M", func() {
		It("is tagged critical inside the dead-band regardless of noise", func() {
			bc := bh.CriticalImpactParameter()
			for _, b := range []float64{bc, bc + 1e-3, bc - 1e-3, bc + 1e-7} {
				traj, err := geodesic.Trace(bh, b, geodesic.Options{})
				Expect(err).NotTo(HaveOccurred())
				Expect(traj.Outcome).To(Equal(geodesic.CriticallyScattered), "b=%v", b)
			}
		})
	})

	Describe("the numerical capture boundary", func() {
		It("sits at b ≈ 3√3·M and loops rays until the budget runs out", func() {
			// A small step budget (≈ 3.2 turns) stands in for the
			// revolution threshold; rays pinned to the boundary must
			// exhaust it.
			opts := geodesic.DefaultOptions()
			opts.MaxSteps = 4000
			opts.MaxRevolutions = 50

			bc, err := analysis.CriticalImpactParameter(bh, 1e-12, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(bc).To(BeNumerically("~", 3.0*math.Sqrt(3.0)*bh.Mass(), 0.01))

			traj, err := geodesic.Trace(bh, bc-1e-11, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Outcome).To(Equal(geodesic.CriticallyScattered))
			Expect(traj.Revolutions).To(BeNumerically(">", 2.0))
			// It hugs the photon sphere before truncation.
			Expect(traj.MinRadius).To(BeNumerically("~", bh.PhotonSphereRadius(), 0.1))
		})
	})

	Describe("revolution budget", func() {
		It("truncates loopers as critically scattered", func() {
			opts := geodesic.DefaultOptions()
			opts.MaxRevolutions = 0.25 // cannot even complete the half-turn needed to escape

			traj, err := geodesic.Trace(bh, 10.0, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Outcome).To(Equal(geodesic.CriticallyScattered))
		})
	})
})
