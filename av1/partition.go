package av1

import "github.com/ausocean/av1dec/av1/msac"

// Partition types, as decoded by the partition CDF at each level of the
// quad-partition recursion.
const (
	PartitionNone = iota
	PartitionHorz
	PartitionVert
	PartitionSplit
	PartitionHorzA
	PartitionHorzB
	PartitionVertA
	PartitionVertB
	PartitionHorz4
	PartitionVert4
)

// Block holds the parsed syntax elements for one coding block, the unit
// the partition descender hands to the block parser and that reconstruction
// later reads back.
type Block struct {
	Col, Row int // top-left corner, in 4x4 units
	W4, H4   int

	Skip     bool
	SkipMode bool
	IsInter  bool
	IsIntraBC bool
	SegmentID uint8

	YMode, UVMode int
	AngleDeltaY, AngleDeltaUV int
	UseFilterIntra bool
	FilterIntraMode int

	RefFrame    [2]int8
	MV          [2]MotionVector
	CompoundType int
	InterIntra   bool
	InterIntraMode int
	InterIntraWedge bool
	MotionMode   int
	InterpFilter [2]int
	Warp         WarpModel

	Palette *PaletteInfo

	TxW4, TxH4 int     // luma transform size in 4x4 units: the whole block's, or for a split inter tree the first (top-left) leaf's
	TxLeaves   []TxLeaf // the variable-tx tree's leaves; a single leaf covering the block unless an inter tree was split
	CdefIdx    int
	DeltaQ     int
	DeltaLF    [4]int
}

// TxLeaf is one leaf of a block's variable-transform-size tree.
type TxLeaf struct {
	Col, Row int
	W4, H4   int
}

// Motion-mode values, as decoded by the motion_mode symbol.
const (
	MotionModeSimple = iota
	MotionModeOBMC
	MotionModeWarp
)

// Compound-type values, as decoded by the compound_type symbol.
const (
	CompoundAverage = iota
	CompoundDistance
	CompoundWedge
	CompoundDiffwtd
)

// PartitionDescender walks a superblock's quad-partition tree, calling
// ParseBlock at each leaf and folding the block's decoded extent back into
// the neighbor context before moving to the next leaf in raster order.
type PartitionDescender struct {
	dec   *msac.Decoder
	ctx   *BlockContext
	cdfs  *CDFContext
	block BlockParser
	sh    *SequenceHeader

	miCols, miRows int
}

// BlockParser is the external-facing contract for parsing one coding
// block's syntax elements once the partition descender has fixed its
// position and size.
type BlockParser interface {
	ParseBlock(col, row, w4, h4 int) (*Block, error)
}

// NewPartitionDescender builds a descender over a tile's decode state. sh
// is consulted for the 4:2:2 vertical-split restriction.
func NewPartitionDescender(dec *msac.Decoder, ctx *BlockContext, cdfs *CDFContext, block BlockParser, sh *SequenceHeader, miCols, miRows int) *PartitionDescender {
	return &PartitionDescender{dec: dec, ctx: ctx, cdfs: cdfs, block: block, sh: sh, miCols: miCols, miRows: miRows}
}

// DescendSuperblock recursively partitions one superblock starting at
// (col,row) with side length sb4 (in 4x4 units), invoking ParseBlock at
// every leaf.
func (d *PartitionDescender) DescendSuperblock(col, row, sb4 int) ([]*Block, error) {
	return d.descend(col, row, sb4)
}

// is422 reports whether the sequence uses 4:2:2 chroma subsampling
// (horizontal-only), the layout under which a partition slicing the
// vertical axis below 8x8 luma is an InvalidBitstream condition: the
// resulting 2-wide chroma block would fall under the minimum chroma
// transform size.
func (d *PartitionDescender) is422() bool {
	return !d.sh.Monochrome && d.sh.SubsamplingX == 1 && d.sh.SubsamplingY == 0
}

func (d *PartitionDescender) descend(col, row, bsize4 int) ([]*Block, error) {
	if col >= d.miCols || row >= d.miRows {
		return nil, nil
	}

	hasRows := row+bsize4/2 < d.miRows
	hasCols := col+bsize4/2 < d.miCols

	partition, err := d.decodePartition(col, row, bsize4, hasRows, hasCols)
	if err != nil {
		return nil, err
	}

	if d.is422() && bsize4 <= 2 {
		switch partition {
		case PartitionVert, PartitionVertA, PartitionVertB, PartitionVert4:
			return nil, wrapf(ErrInvalidBitstream, "4:2:2 layout forbids a vertical-axis split below 8x8 at (%d,%d)", col, row)
		}
	}

	half := bsize4 / 2
	quarter := bsize4 / 4
	var blocks []*Block

	add := func(c, r, w4, h4 int) error {
		blk, err := d.block.ParseBlock(c, r, w4, h4)
		if err != nil {
			return err
		}
		if blk != nil {
			d.applyContext(blk)
			blocks = append(blocks, blk)
		}
		return nil
	}

	switch partition {
	case PartitionNone:
		err = add(col, row, bsize4, bsize4)
	case PartitionHorz:
		err = add(col, row, bsize4, half)
		if err == nil && hasRows {
			err = add(col, row+half, bsize4, half)
		}
	case PartitionVert:
		err = add(col, row, half, bsize4)
		if err == nil && hasCols {
			err = add(col+half, row, half, bsize4)
		}
	case PartitionSplit:
		if bsize4 <= 1 {
			err = add(col, row, bsize4, bsize4)
			break
		}
		for _, sub := range [][2]int{{0, 0}, {half, 0}, {0, half}, {half, half}} {
			var children []*Block
			children, err = d.descend(col+sub[0], row+sub[1], half)
			if err != nil {
				break
			}
			blocks = append(blocks, children...)
		}
	case PartitionHorz4:
		for i := 0; i < 4; i++ {
			err = add(col, row+i*quarter, bsize4, quarter)
			if err != nil {
				break
			}
		}
	case PartitionVert4:
		for i := 0; i < 4; i++ {
			err = add(col+i*quarter, row, quarter, bsize4)
			if err != nil {
				break
			}
		}
	case PartitionHorzA:
		// Top-left and top-right quarters, then the full-width bottom half.
		err = add(col, row, half, half)
		if err == nil {
			err = add(col+half, row, half, half)
		}
		if err == nil {
			err = add(col, row+half, bsize4, half)
		}
	case PartitionHorzB:
		// Full-width top half, then bottom-left and bottom-right quarters.
		err = add(col, row, bsize4, half)
		if err == nil {
			err = add(col, row+half, half, half)
		}
		if err == nil {
			err = add(col+half, row+half, half, half)
		}
	case PartitionVertA:
		// Top-left and bottom-left quarters, then the full-height right half.
		err = add(col, row, half, half)
		if err == nil {
			err = add(col, row+half, half, half)
		}
		if err == nil {
			err = add(col+half, row, half, bsize4)
		}
	case PartitionVertB:
		// Full-height left half, then top-right and bottom-right quarters.
		err = add(col, row, half, bsize4)
		if err == nil {
			err = add(col+half, row, half, half)
		}
		if err == nil {
			err = add(col+half, row+half, half, half)
		}
	default:
		err = add(col, row, bsize4, bsize4)
	}
	if err != nil {
		return nil, err
	}

	// After a SPLIT the children have already recorded their own sizes.
	if partition != PartitionSplit {
		bsl := boolLog2(uint(bsize4))
		d.ctx.UpdatePartition(col, row%d.sbRows(), bsize4, bsize4, int(bsl))
	}
	return blocks, nil
}

func (d *PartitionDescender) applyContext(blk *Block) {
	rowInSB := blk.Row % d.sbRows()
	d.ctx.UpdateSkip(blk.Col, rowInSB, blk.W4, blk.H4, blk.Skip)
	d.ctx.UpdateIsInter(blk.Col, rowInSB, blk.W4, blk.H4, blk.IsInter)
	d.ctx.UpdateSegment(blk.Col, rowInSB, blk.W4, blk.H4, blk.SegmentID)
	d.ctx.UpdateSkipMode(blk.Col, rowInSB, blk.W4, blk.H4, blk.SkipMode)
	d.ctx.UpdateMode(blk.Col, rowInSB, blk.W4, blk.H4, blk.YMode)
	d.ctx.UpdateUVMode(blk.Col, rowInSB, blk.W4, blk.H4, blk.UVMode)
	d.ctx.UpdateTx(blk.Col, rowInSB, blk.W4, blk.H4, blk.TxW4, blk.TxH4)
	d.ctx.UpdateTxLpf(blk.Col, rowInSB, blk.W4, blk.H4, blk.TxW4, blk.TxH4)
	palSize := 0
	if blk.Palette != nil {
		palSize = len(blk.Palette.YColors)
	}
	d.ctx.UpdatePalSize(blk.Col, rowInSB, blk.W4, blk.H4, palSize)
	compType := compTypeIntra
	switch {
	case blk.IsInter && blk.RefFrame[1] >= 0:
		compType = compTypeCompound
	case blk.IsInter:
		compType = compTypeSingle
	}
	d.ctx.UpdateCompType(blk.Col, rowInSB, blk.W4, blk.H4, compType)
	d.ctx.UpdateRef(blk.Col, rowInSB, blk.W4, blk.H4, blk.RefFrame)
	d.ctx.UpdateFilter(blk.Col, rowInSB, blk.W4, blk.H4, blk.InterpFilter)
	d.ctx.UpdateCoef(blk.Col, rowInSB, blk.W4, blk.H4, !blk.Skip, !blk.Skip)
}

func (d *PartitionDescender) sbRows() int {
	return d.ctx.sbSize / 4
}

// decodePartition reads the partition symbol for one quad-tree node,
// handling the edge cases where the block extends past the frame's bottom
// or right edge and only a restricted subset of partitions is signalled.
func (d *PartitionDescender) decodePartition(col, row, bsize4 int, hasRows, hasCols bool) (int, error) {
	if bsize4 <= 1 {
		return PartitionNone, nil
	}
	bsl := int(boolLog2(uint(bsize4)))
	ctxIdx := d.ctx.PartitionContext(col, row%d.sbRows(), bsl)

	switch {
	case hasRows && hasCols:
		// HORZ4/VERT4 and the extended AB partitions only apply once a
		// quarter split is still at least one 4x4 unit wide; smaller
		// blocks draw from the plain NONE/HORZ/VERT/SPLIT alphabet.
		if bsize4 < 4 {
			return d.dec.DecodeSymbol(d.cdfs.PartitionSmall(ctxIdx)), nil
		}
		return d.dec.DecodeSymbol(d.cdfs.Partition(bsl, ctxIdx)), nil
	case hasCols:
		// The block runs past the bottom edge, so only HORZ or SPLIT can
		// be signalled; a single bit with a fixed even probability, not
		// one derived from the partition CDF, chooses between them.
		if d.dec.DecodeBool(1 << (15 - 1)) != 0 {
			return PartitionSplit, nil
		}
		return PartitionHorz, nil
	case hasRows:
		if d.dec.DecodeBool(1 << (15 - 1)) != 0 {
			return PartitionSplit, nil
		}
		return PartitionVert, nil
	default:
		return PartitionSplit, nil
	}
}
