package spacetime

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

func defaultWell(t *testing.T) Well {
	t.Helper()
	w, err := NewWell(2.0)
	if err != nil {
		t.Fatalf("NewWell failed: %v", err)
	}
	return w
}

func TestWellInvalidRadius(t *testing.T) {
	g := NewWithT(t)
	_, err := NewWell(0)
	g.Expect(err).To(HaveOccurred())
	_, err = NewWell(-1)
	g.Expect(err).To(HaveOccurred())
}

func TestDepthAtHorizonIsClampedDeep(t *testing.T) {
	g := NewWithT(t)
	w := defaultWell(t)

	// At and inside the horizon the displacement is the fixed deep
	// value, not the literal formula (which would give ≈ -5.75 here).
	g.Expect(w.Depth(w.Rs)).To(Equal(-15.0))
	g.Expect(w.Depth(0.5 * w.Rs)).To(Equal(-15.0))
}

func TestDepthVanishesAtBoundary(t *testing.T) {
	g := NewWithT(t)
	w := defaultWell(t)

	g.Expect(w.Depth(w.RMax)).To(BeZero())
	g.Expect(w.Depth(w.RMax + 5)).To(BeZero())
}

func TestDepthMatchesFormula(t *testing.T) {
	g := NewWithT(t)
	w := defaultWell(t)

	for _, r := range []float64{2.5, 4.0, 7.5, 12.0} {
		want := -6.0 * math.Sqrt(2.0/r) * math.Pow(1.0-r/15.0, 0.3)
		g.Expect(w.Depth(r)).To(BeNumerically("~", want, 1e-12), "r=%v", r)
	}
}

func TestDepthMonotoneOutsideHorizon(t *testing.T) {
	g := NewWithT(t)
	w := defaultWell(t)

	// Strictly increasing toward zero on (rs, rMax], sampled densely.
	prev := w.Depth(w.Rs * 1.0001)
	for i := 1; i <= 1000; i++ {
		r := w.Rs*1.0001 + (w.RMax-w.Rs*1.0001)*float64(i)/1000.0
		d := w.Depth(r)
		g.Expect(d).To(BeNumerically(">=", prev), "not monotone at r=%v", r)
		g.Expect(d).To(BeNumerically("<=", 0))
		prev = d
	}
}

func TestZoneBands(t *testing.T) {
	g := NewWithT(t)
	w := defaultWell(t)

	g.Expect(w.Zone(2.5)).To(Equal(NearHorizon))
	g.Expect(w.Zone(5.0)).To(Equal(StrongWarp))
	g.Expect(w.Zone(8.0)).To(Equal(MediumWarp))
	g.Expect(w.Zone(12.0)).To(Equal(Minimal))

	// Edges belong to the outer band.
	g.Expect(w.Zone(4.0)).To(Equal(StrongWarp))
	g.Expect(w.Zone(7.0)).To(Equal(MediumWarp))
	g.Expect(w.Zone(10.0)).To(Equal(Minimal))
}
