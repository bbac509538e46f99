package av1

import "testing"

func newTestPicture(t *testing.T, w, h int) *Picture {
	t.Helper()
	pic, err := NewPicture(Settings{}, w, h, 8)
	if err != nil {
		t.Fatalf("NewPicture: %v", err)
	}
	return pic
}

func TestRefMVContextScanSpatialFindsNeighbor(t *testing.T) {
	pic := newTestPicture(t, 64, 64)
	// Mark the left neighbor of (4,4) as inter with a known MV on ref 0.
	pic.MVs[4*pic.MVStride+3] = MVCell{
		IsInter:  true,
		RefFrame: [2]int8{0, -1},
		MV:       [2]MotionVector{{Row: 8, Col: -4}},
	}
	ctx := NewRefMVContext(pic, nil, 0, 0)
	stack := ctx.Build(4, 4, 1, 1)
	if len(stack) == 0 {
		t.Fatal("expected at least one spatial candidate")
	}
	if stack[0].MV != (MotionVector{Row: 8, Col: -4}) {
		t.Errorf("top candidate = %+v, want {8,-4}", stack[0].MV)
	}
}

func TestRefMVContextGlobalFallback(t *testing.T) {
	pic := newTestPicture(t, 64, 64)
	ctx := NewRefMVContext(pic, nil, 0, 0)
	ctx.SetGlobalMV(MotionVector{Row: 1, Col: 2})
	stack := ctx.Build(4, 4, 1, 1)
	if len(stack) != 1 || stack[0].MV != (MotionVector{Row: 1, Col: 2}) {
		t.Fatalf("expected only the global-motion fallback candidate, got %+v", stack)
	}
}

func TestDrlContextOrdering(t *testing.T) {
	stack := []RefMVCandidate{{Weight: 2000}, {Weight: 500}, {Weight: 100}}
	if got := DrlContext(stack, 0); got != 0 {
		t.Errorf("DrlContext(0) = %d, want 0 for a wide weight gap", got)
	}
	if got := DrlContext(stack, len(stack)-1); got != 0 {
		t.Errorf("DrlContext at the last index = %d, want 0", got)
	}
}
