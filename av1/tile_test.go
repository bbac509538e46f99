package av1

import (
	"testing"
)

func TestSplitTilePayloadsTwoTiles(t *testing.T) {
	// Two tiles: the first is length-prefixed (leb128 value 2, meaning a
	// 3-byte payload) followed by its 3 payload bytes, then the second
	// tile's unprefixed payload runs to the end.
	data := []byte{0x02, 0xaa, 0xbb, 0xcc, 0xff, 0xff}
	payloads, err := splitTilePayloads(data, 2)
	if err != nil {
		t.Fatalf("splitTilePayloads: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("got %d payloads, want 2", len(payloads))
	}
	want0 := []byte{0xaa, 0xbb, 0xcc}
	if len(payloads[0]) != len(want0) {
		t.Fatalf("payload 0 = %v, want %v", payloads[0], want0)
	}
	for i := range want0 {
		if payloads[0][i] != want0[i] {
			t.Errorf("payload 0[%d] = %#x, want %#x", i, payloads[0][i], want0[i])
		}
	}
	want1 := []byte{0xff, 0xff}
	if len(payloads[1]) != len(want1) || payloads[1][0] != want1[0] || payloads[1][1] != want1[1] {
		t.Errorf("payload 1 = %v, want %v", payloads[1], want1)
	}
}

func TestTileDecodeCoversFrame(t *testing.T) {
	sh := &SequenceHeader{}
	fh := &FrameHeader{FrameType: KeyFrame}
	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i*37 + 11)
	}
	startCDF := DefaultCDFContext()

	// A 16x16 picture (4x4 in 4x4 units) inside a 64x64 superblock: the
	// superblock is far larger, so the descender is forced through two
	// SPLIT levels before it reaches in-frame ground.
	cur, err := NewPicture(Settings{}, 16, 16, 8)
	if err != nil {
		t.Fatalf("NewPicture: %v", err)
	}
	tile := NewTile(payload, 0, 1, 0, 1, startCDF, fh, sh, miColsOf(cur), miRowsOf(cur), 64)

	var refPics [7]*Picture
	if err := tile.Decode(cur, refPics, NopReconOps{}, nil, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tile.blocks) == 0 {
		t.Fatal("Decode produced no blocks")
	}
	var area int
	for _, b := range tile.blocks {
		area += b.W4 * b.H4
	}
	if want := miColsOf(cur) * miRowsOf(cur); area != want {
		t.Errorf("decoded block area = %d 4x4 units, want %d (full frame coverage)", area, want)
	}
	if tile.FinalCDF() == startCDF {
		t.Error("FinalCDF must be the tile's own clone, not the shared starting context")
	}
}
