package av1

import "testing"

func TestNewPictureDimensions(t *testing.T) {
	pic, err := NewPicture(Settings{}, 66, 34, 8)
	if err != nil {
		t.Fatalf("NewPicture: %v", err)
	}
	if pic.Planes[0].Width != 66 || pic.Planes[0].Height != 34 {
		t.Errorf("luma plane = %dx%d, want 66x34", pic.Planes[0].Width, pic.Planes[0].Height)
	}
	if pic.Planes[1].Width != 33 || pic.Planes[1].Height != 17 {
		t.Errorf("chroma plane = %dx%d, want 33x17", pic.Planes[1].Width, pic.Planes[1].Height)
	}
	wantMVStride := (66 + 3) / 4
	if pic.MVStride != wantMVStride {
		t.Errorf("MVStride = %d, want %d", pic.MVStride, wantMVStride)
	}
}

func TestNewPictureRejectsBadDimensions(t *testing.T) {
	if _, err := NewPicture(Settings{}, 0, 10, 8); err == nil {
		t.Fatal("expected an error for a zero-width picture")
	}
}

func TestPictureRefRelease(t *testing.T) {
	pic, err := NewPicture(Settings{}, 16, 16, 8)
	if err != nil {
		t.Fatalf("NewPicture: %v", err)
	}
	var released bool
	cfg := Settings{ReleasePicture: func(*Picture) { released = true }}
	pic.Ref()
	pic.Release(cfg)
	if released {
		t.Fatal("picture released while a second reference was still outstanding")
	}
	pic.Release(cfg)
	if !released {
		t.Fatal("picture not released once every reference was dropped")
	}
}

func TestPlaneAtClampsEdges(t *testing.T) {
	p := &Plane{Data: []uint16{1, 2, 3, 4}, Width: 2, Height: 2, Stride: 2}
	if got := p.at(-1, -1); got != 1 {
		t.Errorf("at(-1,-1) = %d, want 1", got)
	}
	if got := p.at(5, 5); got != 4 {
		t.Errorf("at(5,5) = %d, want 4", got)
	}
}
