package av1

import (
	"testing"

	"github.com/ausocean/av1dec/av1/msac"
)

func TestDecodeColorMapDimensions(t *testing.T) {
	buf := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}
	dec := msac.NewDecoder(buf)
	m := DecodeColorMap(dec, 4, 3, 3)
	if len(m) != 9 {
		t.Fatalf("DecodeColorMap returned %d entries, want 9", len(m))
	}
	for _, v := range m {
		if v >= 4 {
			t.Fatalf("color index %d out of range for a 4-color palette", v)
		}
	}
}

func TestColorMapContextClasses(t *testing.T) {
	m := []uint8{1, 1, 2, 0}
	w := 2
	if got := colorMapContext(m, w, 0, 0); got != 4 {
		t.Errorf("top-left pixel context = %d, want 4", got)
	}
	if got := colorMapContext(m, w, 1, 0); got != 2 {
		t.Errorf("left-only context = %d, want 2", got)
	}
	if got := colorMapContext(m, w, 0, 1); got != 3 {
		t.Errorf("above-only context = %d, want 3", got)
	}
}
