package av1

import "testing"

// TestFitWarpModelIdentity checks that a pure-translation sample set
// yields a valid model whose displacement at the block center is that
// constant translation.
func TestFitWarpModelIdentity(t *testing.T) {
	samples := []warpSample{
		{X: -8, Y: -8, MVX: 2, MVY: 3},
		{X: 8, Y: -8, MVX: 2, MVY: 3},
		{X: -8, Y: 8, MVX: 2, MVY: 3},
		{X: 8, Y: 8, MVX: 2, MVY: 3},
	}
	m := FitWarpModel(samples)
	if !m.Valid {
		t.Fatal("expected a valid model from four samples")
	}
	mvx, mvy := m.Apply(0, 0)
	const eps = 1e-6
	if absFloat(mvx-2) > eps || absFloat(mvy-3) > eps {
		t.Errorf("Apply(0,0) = (%v,%v), want (2,3)", mvx, mvy)
	}
}

func TestFitWarpModelEmpty(t *testing.T) {
	m := FitWarpModel(nil)
	if m.Valid {
		t.Fatal("expected an invalid model for zero samples")
	}
	mvx, mvy := m.Apply(5, 5)
	if mvx != 0 || mvy != 0 {
		t.Errorf("Apply on invalid model = (%v,%v), want (0,0)", mvx, mvy)
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
