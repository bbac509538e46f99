package av1

import "gonum.org/v1/gonum/mat"

// WarpModel is a 6-parameter affine motion model: a 2x2 linear part plus a
// translation, the representation the warped-motion tool predicts a
// block's samples with instead of a single translational MV.
type WarpModel struct {
	A [2][2]float64 // linear part
	T [2]float64    // translation
	Valid bool
}

// warpSample pairs a projected neighbor position with its observed motion
// vector, the input the least-squares fit consumes.
type warpSample struct {
	X, Y   float64 // neighbor position relative to the block center
	MVX, MVY float64
}

const minWarpSamples = 1

// FitWarpModel derives a 6-parameter affine warp model from a block's
// projectable neighbor samples by solving the motion-compensation
// normal equations with a least-squares fit, following the same
// overdetermined-system-via-QR approach gonum's mat.Dense.Solve uses for
// any non-square design matrix.
func FitWarpModel(samples []warpSample) WarpModel {
	if len(samples) < minWarpSamples {
		return WarpModel{}
	}
	n := len(samples)
	// Each sample contributes two rows: one predicting the horizontal
	// displacement, one the vertical, against the design
	// [x y 1 0 0 0; 0 0 0 x y 1].
	a := mat.NewDense(2*n, 6, nil)
	b := mat.NewDense(2*n, 1, nil)
	for i, s := range samples {
		a.SetRow(2*i, []float64{s.X, s.Y, 1, 0, 0, 0})
		a.SetRow(2*i+1, []float64{0, 0, 0, s.X, s.Y, 1})
		b.Set(2*i, 0, s.MVX)
		b.Set(2*i+1, 0, s.MVY)
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return WarpModel{}
	}

	return WarpModel{
		A:     [2][2]float64{{x.At(0, 0), x.At(1, 0)}, {x.At(3, 0), x.At(4, 0)}},
		T:     [2]float64{x.At(2, 0), x.At(5, 0)},
		Valid: true,
	}
}

// Apply projects the offset (dx,dy) from the block's reference center
// through the warp model, returning a sub-pel motion displacement.
func (w WarpModel) Apply(dx, dy float64) (mvx, mvy float64) {
	if !w.Valid {
		return 0, 0
	}
	mvx = w.A[0][0]*dx + w.A[0][1]*dy + w.T[0]
	mvy = w.A[1][0]*dx + w.A[1][1]*dy + w.T[1]
	return mvx, mvy
}
