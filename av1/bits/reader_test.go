package bits

import "testing"

// TestGet checks fixed-width unsigned reads against known bit patterns, the
// same table shape h264dec's parse_test.go uses for its Exp-Golomb cases.
func TestGet(t *testing.T) {
	r := NewReader([]byte{0x8f, 0xe3})
	tests := []struct {
		n    int
		want uint32
	}{
		{4, 0x8},
		{2, 0x3},
		{4, 0xf},
		{6, 0x23},
	}
	for i, test := range tests {
		got := r.Get(test.n)
		if got != test.want {
			t.Errorf("test %d: Get(%d) = 0x%x, want 0x%x", i, test.n, got, test.want)
		}
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

// TestGetEOFSticky checks that reads past the end of the buffer are sticky:
// once EOF is hit, every subsequent Get returns 0 without panicking.
func TestGetEOFSticky(t *testing.T) {
	r := NewReader([]byte{0xff})
	r.Get(8)
	if r.Err() != nil {
		t.Fatalf("unexpected error after in-bounds read: %v", r.Err())
	}
	if got := r.Get(8); got != 0 {
		t.Errorf("Get past EOF = %d, want 0", got)
	}
	if r.Err() == nil {
		t.Fatal("expected sticky error after reading past end of buffer")
	}
	if got := r.Get(4); got != 0 {
		t.Errorf("second Get past EOF = %d, want 0", got)
	}
}

// TestGetSigned checks the su(n) descriptor: an (n+1)-bit two's-complement
// value.
func TestGetSigned(t *testing.T) {
	// su(3) reads 4 bits: 0b1011 in 4-bit two's complement is -5.
	r := NewReader([]byte{0b10110000})
	got := r.GetSigned(3)
	if got != -5 {
		t.Errorf("GetSigned = %d, want -5", got)
	}
}

// TestGetUniformUnity checks that a uniform draw over a singleton range
// consumes no bits, per spec.md's boundary-behavior property.
func TestGetUniformUnity(t *testing.T) {
	r := NewReader([]byte{0xff})
	if got := r.GetUniform(1); got != 0 {
		t.Errorf("GetUniform(1) = %d, want 0", got)
	}
	if r.BytePos() != 0 || !r.ByteAligned() {
		t.Errorf("GetUniform(1) consumed bits: bytePos=%d aligned=%v", r.BytePos(), r.ByteAligned())
	}
}

// TestGetUniformRange checks that draws land in [0,m).
func TestGetUniformRange(t *testing.T) {
	data := []byte{0x5a, 0x3c, 0xf0, 0x0f, 0xaa, 0x55}
	r := NewReader(data)
	for i := 0; i < 8; i++ {
		v := r.GetUniform(6)
		if v >= 6 {
			t.Fatalf("GetUniform(6) = %d, out of range", v)
		}
	}
}

// TestGetVLC checks the unary-prefix VLC decode against hand-picked
// bitstrings, and its saturation boundary at a 32-bit prefix.
func TestGetVLC(t *testing.T) {
	// Prefix 0 (immediate 1 bit): value 0.
	r := NewReader([]byte{0x80})
	if got := r.GetVLC(); got != 0 {
		t.Errorf("GetVLC() = %d, want 0", got)
	}

	// Prefix of one zero then 1, then 1 further bit: (1<<1)-1 + tail.
	// Bits: 0 1 1 -> k=1, tail=1 -> (2-1)+1 = 2.
	r = NewReader([]byte{0b01100000})
	if got := r.GetVLC(); got != 2 {
		t.Errorf("GetVLC() = %d, want 2", got)
	}
}

// TestGetVLCSaturates checks that a prefix of 32 or more zero bits saturates
// at 0xFFFFFFFF without consuming more input than the prefix itself.
func TestGetVLCSaturates(t *testing.T) {
	r := NewReader(make([]byte, 8)) // 64 zero bits: prefix runs out at 32.
	if got := r.GetVLC(); got != 0xFFFFFFFF {
		t.Errorf("GetVLC() = 0x%x, want 0xFFFFFFFF", got)
	}
}

// TestDecodeSubexpWithRefIdentity checks the inverse-recenter boundary case
// of a zero raw value around a zero reference, which decodes to the
// reference itself.
func TestDecodeSubexpWithRefIdentity(t *testing.T) {
	got := DecodeSubexpWithRef(0, 0, 8)
	if got != 0 {
		t.Errorf("DecodeSubexpWithRef(0,0,8) = %d, want 0", got)
	}
}

// TestGetSubexpInRange checks that decoded sub-exponential values always
// land within [0,n) for a range of reference points.
func TestGetSubexpInRange(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x23, 0x45, 0x67}
	for _, ref := range []uint32{0, 3, 7, 11} {
		r := NewReader(data)
		v := r.GetSubexp(ref, 12)
		if v >= 12 {
			t.Errorf("GetSubexp(ref=%d, n=12) = %d, out of range", ref, v)
		}
	}
}

// TestFlushByteAligns checks that Flush discards partial bits and reports
// the next byte-aligned offset.
func TestFlushByteAligns(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xff})
	r.Get(12)
	if r.ByteAligned() {
		t.Fatal("expected reader to be mid-byte after a 12-bit read")
	}
	off := r.Flush()
	if off != 2 {
		t.Errorf("Flush() = %d, want 2", off)
	}
	if !r.ByteAligned() {
		t.Error("expected reader to be byte-aligned after Flush")
	}
}
