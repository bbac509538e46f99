package av1

import (
	"testing"

	"github.com/ausocean/av1dec/av1/bits"
)

func TestParseOBUHeaderBasic(t *testing.T) {
	// forbidden=0, type=2 (temporal delimiter), ext=0, has_size=1, reserved=0,
	// then a one-byte leb128 size of 0.
	r := bits.NewReader([]byte{0b0_0010_0_1_0, 0x00})
	h, err := ParseOBUHeader(r)
	if err != nil {
		t.Fatalf("ParseOBUHeader: %v", err)
	}
	if h.Type != obuTemporalDelimiter {
		t.Errorf("Type = %d, want %d", h.Type, obuTemporalDelimiter)
	}
	if !h.HasSizeField || h.Size != 0 {
		t.Errorf("HasSizeField/Size = %v/%d, want true/0", h.HasSizeField, h.Size)
	}
}

func TestParseOBUHeaderForbiddenBit(t *testing.T) {
	r := bits.NewReader([]byte{0x80})
	if _, err := ParseOBUHeader(r); err == nil {
		t.Fatal("expected an error when obu_forbidden_bit is set")
	}
}

func TestParseOBUHeaderExtension(t *testing.T) {
	// forbidden=0, type=1, ext=1, has_size=0, reserved=0,
	// then ext header: temporal_id=3 (011), spatial_id=1 (01), reserved 3 bits.
	r := bits.NewReader([]byte{0b0_0001_1_0_0, 0b011_01_000})
	h, err := ParseOBUHeader(r)
	if err != nil {
		t.Fatalf("ParseOBUHeader: %v", err)
	}
	if h.TemporalID != 3 || h.SpatialID != 1 {
		t.Errorf("TemporalID/SpatialID = %d/%d, want 3/1", h.TemporalID, h.SpatialID)
	}
}

func TestReadLEB128MultiByte(t *testing.T) {
	// 0x96 0x01 = (0x16) | (0x01<<7) = 0x16 + 0x80 = 150.
	r := bits.NewReader([]byte{0x96, 0x01})
	if got := readLEB128(r); got != 150 {
		t.Errorf("readLEB128 = %d, want 150", got)
	}
}
