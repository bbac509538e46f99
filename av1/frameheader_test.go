package av1

import (
	"testing"

	"github.com/ausocean/av1dec/av1/bits"
)

// TestParseFrameHeaderReducedStill decodes a hand-built frame header under
// a reduced_still_picture_header sequence header, the simplest path
// through frame_header_obu.
func TestParseFrameHeaderReducedStill(t *testing.T) {
	shr := bits.NewReader([]byte{0x18, 0x0c, 0xe6, 0x40, 0x00})
	sh, err := ParseSequenceHeader(shr)
	if err != nil {
		t.Fatalf("ParseSequenceHeader: %v", err)
	}

	fhr := bits.NewReader([]byte{0x16, 0x40, 0x00})
	fh, err := ParseFrameHeader(fhr, sh, Settings{})
	if err != nil {
		t.Fatalf("ParseFrameHeader: %v", err)
	}
	if fh.FrameType != KeyFrame || !fh.ShowFrame {
		t.Errorf("FrameType/ShowFrame = %d/%v, want KeyFrame/true", fh.FrameType, fh.ShowFrame)
	}
	if fh.FrameWidth != 10 || fh.FrameHeight != 10 {
		t.Errorf("FrameWidth/Height = %d/%d, want 10/10", fh.FrameWidth, fh.FrameHeight)
	}
	if fh.BaseQIdx != 100 {
		t.Errorf("BaseQIdx = %d, want 100", fh.BaseQIdx)
	}
	if fh.RefreshFrameFlags != 0xff {
		t.Errorf("RefreshFrameFlags = %#x, want 0xff", fh.RefreshFrameFlags)
	}
	if fh.TileCols != 1 || fh.TileRows != 1 {
		t.Errorf("TileCols/Rows = %d/%d, want 1/1", fh.TileCols, fh.TileRows)
	}
	if fh.SegmentationEnabled {
		t.Error("expected segmentation disabled")
	}
}

func TestUniformStarts(t *testing.T) {
	starts := uniformStarts(10, 3)
	want := []int{0, 3, 6, 10}
	if len(starts) != len(want) {
		t.Fatalf("uniformStarts length = %d, want %d", len(starts), len(want))
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("starts[%d] = %d, want %d", i, starts[i], want[i])
		}
	}
}
