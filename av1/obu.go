package av1

import "github.com/ausocean/av1dec/av1/bits"

// OBU type codes, as signalled in the open bitstream unit header.
const (
	obuSequenceHeader      = 1
	obuTemporalDelimiter   = 2
	obuFrameHeader         = 3
	obuTileGroup           = 4
	obuMetadata            = 5
	obuFrame               = 6
	obuRedundantFrameHeader = 7
	obuTileList            = 8
	obuPadding             = 15
)

// OBUHeader is the open bitstream unit framing that precedes every
// sequence header, frame header, tile group and metadata payload.
type OBUHeader struct {
	Type                 int
	ExtensionFlag        bool
	HasSizeField         bool
	TemporalID           int // only set when ExtensionFlag is true
	SpatialID            int // only set when ExtensionFlag is true
	Size                 int // payload size in bytes, from the leb128 size field
}

// ParseOBUHeader reads one OBU header (and its optional extension header
// and leb128 size field) from r, leaving r positioned at the start of the
// OBU's payload.
func ParseOBUHeader(r *bits.Reader) (OBUHeader, error) {
	var h OBUHeader
	forbidden := r.Get(1)
	if forbidden != 0 {
		return h, wrapf(ErrInvalidBitstream, "obu_forbidden_bit set")
	}
	h.Type = int(r.Get(4))
	h.ExtensionFlag = r.Get(1) != 0
	h.HasSizeField = r.Get(1) != 0
	_ = r.Get(1) // obu_reserved_1bit

	if h.ExtensionFlag {
		h.TemporalID = int(r.Get(3))
		h.SpatialID = int(r.Get(2))
		_ = r.Get(3) // extension_header_reserved_3bits
	}
	if h.HasSizeField {
		h.Size = int(readLEB128(r))
	}
	if err := r.Err(); err != nil {
		return h, wrapf(ErrIOFailure, "reading obu header: %v", err)
	}
	return h, nil
}

// readLEB128 reads an unsigned little-endian base-128 varint, the format
// AV1 uses for obu_size and other variable-length header fields.
func readLEB128(r *bits.Reader) uint64 {
	var value uint64
	for i := 0; i < 8; i++ {
		b := r.Get(8)
		value |= uint64(b&0x7f) << uint(i*7)
		if b&0x80 == 0 {
			break
		}
	}
	return value
}

// SkipMetadata consumes a metadata OBU's payload by length only, matching
// this core's charter of framing just enough data to find the next OBU
// without interpreting HDR10+/ITU-T T.35 contents.
func SkipMetadata(r *bits.Reader, h OBUHeader) {
	r.SkipBytes(h.Size)
}
