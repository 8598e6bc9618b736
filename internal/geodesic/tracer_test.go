package geodesic

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/photonsphere/internal/dynamo"
	"github.com/san-kum/photonsphere/internal/physics"
)

func mustBlackHole(t *testing.T, rs float64) physics.BlackHole {
	t.Helper()
	bh, err := physics.NewBlackHole(rs)
	if err != nil {
		t.Fatalf("NewBlackHole failed: %v", err)
	}
	return bh
}

func TestTraceInvalidParameters(t *testing.T) {
	bh := mustBlackHole(t, 1.0)

	tests := []struct {
		name string
		bh   physics.BlackHole
		b    float64
		opts Options
	}{
		{"zero b", bh, 0, Options{}},
		{"negative b", bh, -3, Options{}},
		{"zero rs", physics.BlackHole{}, 5, Options{}},
		{"b beyond start radius", bh, 200, Options{}},
		{"negative step", bh, 10, Options{StepSize: -0.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Trace(tt.bh, tt.b, tt.opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, dynamo.ErrInvalidParameter) && !errors.Is(err, dynamo.ErrNonPositiveStep) {
				t.Errorf("unexpected error class: %v", err)
			}
		})
	}
}

func TestTraceDeterminism(t *testing.T) {
	bh := mustBlackHole(t, 1.0)

	a, err := Trace(bh, 7.0, Options{})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	b, err := Trace(bh, 7.0, Options{})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	if a.Outcome != b.Outcome || len(a.Points) != len(b.Points) {
		t.Fatalf("runs disagree: %v/%d vs %v/%d", a.Outcome, len(a.Points), b.Outcome, len(b.Points))
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestEscapedRayStaysOutsideHorizon(t *testing.T) {
	bh := mustBlackHole(t, 1.0)

	traj, err := Trace(bh, 10.0, Options{})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	if traj.Outcome != Escaped {
		t.Fatalf("outcome = %v, want escaped", traj.Outcome)
	}
	if traj.MinRadius <= bh.SchwarzschildRadius {
		t.Errorf("min radius %.4f not outside horizon", traj.MinRadius)
	}
	if traj.MinRadius >= 10.0 {
		t.Errorf("min radius %.4f should be inside the impact parameter", traj.MinRadius)
	}

	last := traj.Points[len(traj.Points)-1]
	if last.R < DefaultStartRadius {
		t.Errorf("escaped ray truncated at r=%.2f, before the far threshold", last.R)
	}
}

func TestCapturedRayPlunges(t *testing.T) {
	bh := mustBlackHole(t, 1.0)

	// b = 2.0 sits below the numerical capture boundary (≈ 2.598) and
	// outside the 3M dead-band.
	traj, err := Trace(bh, 2.0, Options{})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	if traj.Outcome != Captured {
		t.Fatalf("outcome = %v, want captured", traj.Outcome)
	}

	last := traj.Points[len(traj.Points)-1]
	if last.R >= DefaultCaptureFactor*bh.SchwarzschildRadius {
		t.Errorf("captured ray truncated at r=%.4f, outside the capture radius", last.R)
	}

	// A plunging ray has no turning point: the radius never increases.
	for i := 1; i < len(traj.Points); i++ {
		if traj.Points[i].R > traj.Points[i-1].R+1e-9 {
			t.Fatalf("radius increased at step %d: %.6f -> %.6f", i, traj.Points[i-1].R, traj.Points[i].R)
		}
	}
}

func TestDivergenceClassifiedAsCaptured(t *testing.T) {
	bh := mustBlackHole(t, 1.0)

	// A tiny capture factor disables the horizon cutoff, so u runs away
	// toward infinity; that must map to Captured, not an error.
	traj, err := Trace(bh, 2.0, Options{CaptureFactor: 1e-9})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	if traj.Outcome != Captured {
		t.Errorf("outcome = %v, want captured on divergence", traj.Outcome)
	}
}

func TestCriticalDeadband(t *testing.T) {
	bh := mustBlackHole(t, 1.0) // M = 0.5, conventional critical b = 1.5

	tests := []struct {
		b    float64
		want Outcome
	}{
		{1.5, CriticallyScattered},
		{1.5 + 0.001, CriticallyScattered},
		{1.5 - 0.001, CriticallyScattered},
		{1.6, Captured},
		{1.4, Captured},
	}

	for _, tt := range tests {
		traj, err := Trace(bh, tt.b, Options{})
		if err != nil {
			t.Fatalf("Trace(b=%v) failed: %v", tt.b, err)
		}
		if traj.Outcome != tt.want {
			t.Errorf("Trace(b=%v) outcome = %v, want %v", tt.b, traj.Outcome, tt.want)
		}
	}
}

func TestWeakFieldDeflection(t *testing.T) {
	bh := mustBlackHole(t, 1.0)
	opts := Options{StartRadius: 500.0, StepSize: 0.001}

	traj, err := Trace(bh, 50.0, opts)
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	if traj.Outcome != Escaped {
		t.Fatalf("outcome = %v, want escaped", traj.Outcome)
	}

	// First-order bending angle 4M/b = 2rs/b.
	want := 2.0 / 50.0
	if math.Abs(traj.Deflection-want) > 0.1*want {
		t.Errorf("deflection = %.5f, want %.5f within 10%%", traj.Deflection, want)
	}

	// Bending weakens with distance.
	far, err := Trace(bh, 100.0, opts)
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	if far.Deflection >= traj.Deflection {
		t.Errorf("deflection did not decrease with b: %.5f vs %.5f", far.Deflection, traj.Deflection)
	}
}

func TestDeflectionNaNForCapturedRays(t *testing.T) {
	bh := mustBlackHole(t, 1.0)
	traj, err := Trace(bh, 2.0, Options{})
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}
	if !math.IsNaN(traj.Deflection) {
		t.Errorf("captured ray deflection = %v, want NaN", traj.Deflection)
	}
}

func TestTraceAllMatchesTrace(t *testing.T) {
	bh := mustBlackHole(t, 1.0)
	bs := []float64{10.0, 2.0, 5.5, 1.5}

	trajs, err := TraceAll(bh, bs, Options{})
	if err != nil {
		t.Fatalf("TraceAll failed: %v", err)
	}
	if len(trajs) != len(bs) {
		t.Fatalf("got %d trajectories, want %d", len(trajs), len(bs))
	}

	for i, b := range bs {
		single, err := Trace(bh, b, Options{})
		if err != nil {
			t.Fatalf("Trace(b=%v) failed: %v", b, err)
		}
		if trajs[i].Outcome != single.Outcome {
			t.Errorf("b=%v: parallel outcome %v != serial %v", b, trajs[i].Outcome, single.Outcome)
		}
		if len(trajs[i].Points) != len(single.Points) {
			t.Errorf("b=%v: point counts differ", b)
		}
	}
}

func TestTraceAllPropagatesError(t *testing.T) {
	bh := mustBlackHole(t, 1.0)
	_, err := TraceAll(bh, []float64{10.0, -1.0}, Options{})
	if !errors.Is(err, dynamo.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
