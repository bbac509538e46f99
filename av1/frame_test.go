package av1

import "testing"

func singleTileFrameHeader(w, h int) *FrameHeader {
	return &FrameHeader{
		FrameType:       KeyFrame,
		ShowFrame:       true,
		FrameWidth:      w,
		FrameHeight:     h,
		PrimaryRefFrame: primaryRefNone,
		TileCols:        1,
		TileRows:        1,
		TileColStarts:   []int{0, 1},
		TileRowStarts:   []int{0, 1},
	}
}

func TestFramePipelineDecodeFrameSingleTile(t *testing.T) {
	sh := &SequenceHeader{BitDepth: 8}
	fh := singleTileFrameHeader(16, 16)
	tileData := make([]byte, 64)
	for i := range tileData {
		tileData[i] = byte(i*53 + 7)
	}

	fp := NewFramePipeline(Settings{}, NopReconOps{}, nil)
	var refPics [7]*Picture
	pic, err := fp.DecodeFrame(sh, fh, tileData, refPics)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if pic.Width != 16 || pic.Height != 16 {
		t.Errorf("picture size = %dx%d, want 16x16", pic.Width, pic.Height)
	}
	if !pic.ShowableFrame {
		t.Error("a shown key frame must be marked showable")
	}
}

func TestFramePipelineSaveAndInheritCDF(t *testing.T) {
	sh := &SequenceHeader{BitDepth: 8}
	fp := NewFramePipeline(Settings{}, NopReconOps{}, nil)

	keyFH := singleTileFrameHeader(16, 16)
	keyFH.RefFrameIdx = [7]int{0, 0, 0, 0, 0, 0, 0}
	keyFH.RefreshFrameFlags = 0xff
	tileData := make([]byte, 64)
	var refPics [7]*Picture
	if _, err := fp.DecodeFrame(sh, keyFH, tileData, refPics); err != nil {
		t.Fatalf("DecodeFrame (key): %v", err)
	}
	if _, ok := fp.cdfPool[0]; !ok {
		t.Fatal("key frame's CDF state was not saved to its refresh slot")
	}

	interFH := singleTileFrameHeader(16, 16)
	interFH.FrameType = InterFrame
	interFH.PrimaryRefFrame = 0
	interFH.RefFrameIdx = [7]int{0, 0, 0, 0, 0, 0, 0}
	if got := fp.startCDF(interFH); got != fp.cdfPool[0] {
		t.Error("inter frame naming a primary reference must inherit its saved CDF snapshot")
	}
}

func TestFramePipelineBuildTilesSplitsByFrameHeader(t *testing.T) {
	sh := &SequenceHeader{BitDepth: 8}
	fh := singleTileFrameHeader(16, 16)
	fh.TileCols, fh.TileRows = 2, 1
	fh.TileColStarts = []int{0, 1, 2}
	fh.TileRowStarts = []int{0, 1}
	fh.FrameWidth, fh.FrameHeight = 32, 16

	// One length-prefixed tile followed by the final, unprefixed tile.
	tileData := append([]byte{0x03, 0, 0, 0, 0}, make([]byte, 32)...)

	fp := NewFramePipeline(Settings{}, NopReconOps{}, nil)
	tiles, err := fp.buildTiles(sh, fh, tileData, DefaultCDFContext())
	if err != nil {
		t.Fatalf("buildTiles: %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("got %d tiles, want 2", len(tiles))
	}
	if tiles[0].Col0 != 0 || tiles[0].Col1 != 1 || tiles[1].Col0 != 1 || tiles[1].Col1 != 2 {
		t.Errorf("tile column ranges = [%d,%d) [%d,%d), want [0,1) [1,2)",
			tiles[0].Col0, tiles[0].Col1, tiles[1].Col0, tiles[1].Col1)
	}
}
