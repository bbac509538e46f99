package av1

import (
	"testing"

	"github.com/ausocean/av1dec/av1/bits"
)

// TestParseSequenceHeaderReducedStill decodes a hand-built
// reduced_still_picture_header, the simplest path through the sequence
// header syntax, and checks the fields that survive it.
func TestParseSequenceHeaderReducedStill(t *testing.T) {
	r := bits.NewReader([]byte{0x18, 0x0c, 0xe6, 0x40, 0x00})
	sh, err := ParseSequenceHeader(r)
	if err != nil {
		t.Fatalf("ParseSequenceHeader: %v", err)
	}
	if sh.Profile != 0 {
		t.Errorf("Profile = %d, want 0", sh.Profile)
	}
	if !sh.StillPicture || !sh.ReducedStillHdr {
		t.Errorf("StillPicture/ReducedStillHdr = %v/%v, want true/true", sh.StillPicture, sh.ReducedStillHdr)
	}
	if sh.MaxFrameWidth != 10 || sh.MaxFrameHeight != 10 {
		t.Errorf("MaxFrameWidth/Height = %d/%d, want 10/10", sh.MaxFrameWidth, sh.MaxFrameHeight)
	}
	if sh.BitDepth != 8 {
		t.Errorf("BitDepth = %d, want 8", sh.BitDepth)
	}
	if sh.SubsamplingX != 1 || sh.SubsamplingY != 1 {
		t.Errorf("subsampling = %d/%d, want 1/1 for profile 0", sh.SubsamplingX, sh.SubsamplingY)
	}
	if sh.FilmGrainParamsPresent {
		t.Error("expected film_grain_params_present to be false")
	}
}
