package av1

import (
	"testing"

	"github.com/ausocean/av1dec/av1/msac"
)

func newTestBlockParser(t *testing.T, fh *FrameHeader) (*Av1BlockParser, *Picture) {
	t.Helper()
	sh := &SequenceHeader{}
	cur, err := NewPicture(Settings{}, 32, 32, 8)
	if err != nil {
		t.Fatalf("NewPicture: %v", err)
	}
	ctx := NewBlockContext(8, 8, 64)
	cdfs := DefaultCDFContext()
	dec := msac.NewDecoder([]byte{0x4a, 0x9c, 0x11, 0x5e, 0x00, 0x00, 0x00, 0x00})
	var refPics [7]*Picture
	return NewAv1BlockParser(dec, ctx, cdfs, fh, sh, cur, refPics, NopReconOps{}, nil), cur
}

func TestParseBlockIntraKeyFrame(t *testing.T) {
	fh := &FrameHeader{FrameType: KeyFrame}
	p, _ := newTestBlockParser(t, fh)

	blk, err := p.ParseBlock(0, 0, 2, 2)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}
	if blk.IsInter {
		t.Error("key frame block decoded as inter")
	}
	// uv_mode is its own symbol; on this fixture it decodes to CFL while
	// the luma mode is directional.
	if blk.UVMode != ModeCFL {
		t.Errorf("UVMode = %d, want ModeCFL %d", blk.UVMode, ModeCFL)
	}
	if blk.YMode < ModeDC || blk.YMode > ModePaeth {
		t.Errorf("YMode = %d out of range", blk.YMode)
	}
	if blk.RefFrame != ([2]int8{-1, -1}) {
		t.Errorf("RefFrame = %v, want {-1,-1} for an intra block", blk.RefFrame)
	}
}

func TestSplatMVCoversBlockExtent(t *testing.T) {
	fh := &FrameHeader{FrameType: KeyFrame}
	p, cur := newTestBlockParser(t, fh)

	blk := &Block{Col: 1, Row: 1, W4: 2, H4: 2, IsInter: true, MV: [2]MotionVector{{Row: 5, Col: -3}}}
	p.splatMV(blk)

	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			cell := cur.MVs[y*cur.MVStride+x]
			if !cell.IsInter || cell.MV[0] != (MotionVector{Row: 5, Col: -3}) {
				t.Errorf("cell(%d,%d) = %+v, want splatted MV", x, y, cell)
			}
		}
	}
	// a cell just outside the block must be untouched.
	outside := cur.MVs[0*cur.MVStride+0]
	if outside.IsInter {
		t.Error("splatMV wrote outside the block's extent")
	}
}

func TestDecodeSegmentIDInRange(t *testing.T) {
	fh := &FrameHeader{FrameType: KeyFrame, SegmentationEnabled: true}
	p, _ := newTestBlockParser(t, fh)

	// With a freshly cleared context both neighbors agree on segment 0, so
	// this exercises the predicted-id path; either way the result must
	// fall inside the 8-segment alphabet.
	id := p.decodeSegmentID(0, 0)
	if id > 7 {
		t.Errorf("segment id = %d, out of the 8-segment range", id)
	}
}
