package av1

import (
	"github.com/ausocean/av1dec/av1/bits"
	"github.com/ausocean/av1dec/av1/msac"
)

// Tile is one independently-decodable region of a frame: its own MSAC
// decoder instance, its own CDFContext copy (so adaptation in one tile
// never affects another), and the above/left neighbor strips scoped to its
// own superblock rows and columns.
type Tile struct {
	Col0, Col1 int // superblock-column range [Col0,Col1)
	Row0, Row1 int // superblock-row range [Row0,Row1)

	dec  *msac.Decoder
	cdfs *CDFContext
	ctx  *BlockContext

	fh *FrameHeader
	sh *SequenceHeader

	blocks []*Block
}

// NewTile constructs a tile over payload, inheriting startCDF as its
// starting adaptation state (a copy of the frame's disable_cdf_update-aware
// base context) so the tile's own decoding never mutates a shared table.
func NewTile(payload []byte, sbCol0, sbCol1, sbRow0, sbRow1 int, startCDF *CDFContext, fh *FrameHeader, sh *SequenceHeader, miCols, miRows, sbSize int) *Tile {
	return &Tile{
		Col0: sbCol0, Col1: sbCol1,
		Row0: sbRow0, Row1: sbRow1,
		dec:  msac.NewDecoder(payload),
		cdfs: startCDF.Clone(),
		ctx:  NewBlockContext(miCols, miRows, sbSize),
		fh:   fh, sh: sh,
	}
}

// Decode parses every superblock in the tile's range in raster order,
// using an Av1BlockParser built over the tile's decoder, CDFs and neighbor
// context as the per-block syntax-element source. rowDone, if
// non-nil, is called with each global superblock row as the tile finishes
// it, so the frame pipeline can tell when every tile spanning that row has
// completed its symbol-parse pass.
func (t *Tile) Decode(cur *Picture, refPics [7]*Picture, recon ReconOps, log Logger, rowDone func(row int)) error {
	sbSize4 := 16
	if t.sh.Use128x128Superblock {
		sbSize4 = 32
	}

	parser := NewAv1BlockParser(t.dec, t.ctx, t.cdfs, t.fh, t.sh, cur, refPics, recon, log)
	descender := NewPartitionDescender(t.dec, t.ctx, t.cdfs, parser, t.sh, miColsOf(cur), miRowsOf(cur))

	t.ctx.ClearAbove()
	for sbRow := t.Row0; sbRow < t.Row1; sbRow++ {
		t.ctx.ClearLeft()
		for sbCol := t.Col0; sbCol < t.Col1; sbCol++ {
			parser.StartSuperblock()
			blocks, err := descender.DescendSuperblock(sbCol*sbSize4, sbRow*sbSize4, sbSize4)
			if err != nil {
				return wrapf(ErrInvalidBitstream, "tile row %d col %d: %v", sbRow, sbCol, err)
			}
			t.blocks = append(t.blocks, blocks...)
		}
		if rowDone != nil {
			rowDone(sbRow)
		}
	}
	if err := t.dec.Err(); err != nil {
		return wrapf(ErrIOFailure, "tile decoder underrun: %v", err)
	}
	return nil
}

func miColsOf(p *Picture) int { return p.MVStride }
func miRowsOf(p *Picture) int { return len(p.MVs) / p.MVStride }

// FinalCDF returns the tile's ending adaptation state, the value a frame
// using DisableCdfUpdate==false threads forward as a later frame's
// primary-reference snapshot.
func (t *Tile) FinalCDF() *CDFContext {
	return t.cdfs
}

// splitTilePayloads slices the concatenated tile-group payload into each
// tile's own coded bytes: every tile but the last is preceded by a leb128
// length field, and the last tile's payload runs to the end of tileData.
func splitTilePayloads(tileData []byte, numTiles int) ([][]byte, error) {
	r := bits.NewReader(tileData)
	payloads := make([][]byte, numTiles)
	for i := 0; i < numTiles-1; i++ {
		size := int(readLEB128(r)) + 1
		start := r.BytePos()
		r.SkipBytes(size)
		end := start + size
		if end > len(tileData) {
			end = len(tileData)
		}
		payloads[i] = tileData[start:end]
	}
	if err := r.Err(); err != nil {
		return nil, wrapf(ErrIOFailure, "reading tile sizes: %v", err)
	}
	payloads[numTiles-1] = tileData[r.BytePos():]
	return payloads, nil
}
