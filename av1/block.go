package av1

import "github.com/ausocean/av1dec/av1/msac"

// Intra prediction mode codes, the 13-way luma mode alphabet used by the
// default y_mode CDF. The same alphabet drives uv_mode, which adds a 14th
// code (ModeCFL) only luma can't use.
const (
	ModeDC = iota
	ModeV
	ModeH
	ModeD45
	ModeD135
	ModeD113
	ModeD157
	ModeD203
	ModeD67
	ModeSmooth
	ModeSmoothV
	ModeSmoothH
	ModePaeth
	ModeCFL
)

// Inter prediction mode codes, as decoded by the inter_mode symbol.
const (
	NewMV = iota
	NearestMV
	NearMV
	GlobalMV
)

// mvClass0Size is CLASS0_SIZE from the spec's motion vector component
// decode: the number of magnitude buckets class 0 covers before the
// per-class bit ladder takes over.
const mvClass0Size = 2

// Av1BlockParser implements BlockParser for one tile, reading syntax
// elements from its MSAC decoder and CDF context and folding the result
// back into the tile's neighbor context and MV grid.
type Av1BlockParser struct {
	dec  *msac.Decoder
	ctx  *BlockContext
	cdfs *CDFContext
	fh   *FrameHeader
	sh   *SequenceHeader
	recon ReconOps

	cur     *Picture
	refPics [7]*Picture
	sbRows4 int

	// cdefSeen marks which 64x64 regions (keyed by their top-left 4x4
	// coordinate) have already had their cdef_idx read this tile.
	cdefSeen map[[2]int]bool

	// deltaPending is true from the start of a superblock until the first
	// eligible block in it reads delta_q/delta_lf, per spec's
	// read_deltas rule.
	deltaPending bool
	curBaseQIdx  int
	curDeltaLF   [4]int

	log Logger
}

// NewAv1BlockParser builds a block parser bound to one tile's decode
// state.
func NewAv1BlockParser(dec *msac.Decoder, ctx *BlockContext, cdfs *CDFContext, fh *FrameHeader, sh *SequenceHeader, cur *Picture, refPics [7]*Picture, recon ReconOps, log Logger) *Av1BlockParser {
	sbSize := 64
	if sh.Use128x128Superblock {
		sbSize = 128
	}
	return &Av1BlockParser{
		dec: dec, ctx: ctx, cdfs: cdfs, fh: fh, sh: sh, recon: recon,
		cur: cur, refPics: refPics, sbRows4: sbSize / 4,
		cdefSeen: make(map[[2]int]bool),
		curBaseQIdx: fh.BaseQIdx,
		log: log,
	}
}

// StartSuperblock resets the per-superblock delta_q/delta_lf gate; the
// tile calls this immediately before descending each new superblock.
func (p *Av1BlockParser) StartSuperblock() {
	p.deltaPending = true
}

// ParseBlock decodes one coding block's syntax elements, implementing the
// BlockParser contract the partition descender calls at each leaf.
func (p *Av1BlockParser) ParseBlock(col, row, w4, h4 int) (*Block, error) {
	blk := &Block{Col: col, Row: row, W4: w4, H4: h4, RefFrame: [2]int8{-1, -1}}
	rowInSB := row % p.sbRows4

	if p.fh.SkipModePresent {
		ctx := p.ctx.SkipModeContext(col, rowInSB)
		blk.SkipMode = p.dec.DecodeBoolAdapt(p.cdfs.SkipMode(ctx)) != 0
	}

	if p.fh.SegmentationEnabled {
		blk.SegmentID = p.decodeSegmentID(col, rowInSB)
	}

	if blk.SkipMode {
		blk.Skip = true
	} else {
		skipCtx := p.ctx.SkipContext(col, rowInSB)
		blk.Skip = p.dec.DecodeBoolAdapt(p.cdfs.Skip(skipCtx)) != 0
	}

	p.readCdefIdx(blk, col, row, w4, h4)
	p.readDeltas(blk, w4, h4)

	isKeyOrIntraOnly := p.fh.FrameType == KeyFrame || p.fh.FrameType == IntraOnlyFrame
	if isKeyOrIntraOnly {
		blk.IsInter = false
		if p.fh.AllowIntrabc {
			blk.IsIntraBC = p.dec.DecodeBool(1<<14) != 0
		}
	} else if blk.SkipMode {
		blk.IsInter = true
	} else {
		interCtx := p.ctx.IsInterContext(col, rowInSB)
		blk.IsInter = p.dec.DecodeBoolAdapt(p.cdfs.IsInter(interCtx)) != 0
	}

	switch {
	case blk.IsIntraBC:
		p.parseIntraBCBlock(blk, col, row, w4, h4)
	case blk.IsInter:
		if err := p.parseInterBlock(blk, col, row, w4, h4); err != nil {
			return nil, err
		}
	default:
		p.parseIntraBlock(blk, col, row, w4, h4)
	}

	p.decodeTxTree(blk, col, row, w4, h4)

	if err := p.recon.ReadCoefBlocks(p.ctx, blk); err != nil {
		return nil, err
	}

	if p.log != nil {
		p.log.Debug("parsed block", "col", col, "row", row, "w4", w4, "h4", h4, "skip", blk.Skip, "inter", blk.IsInter)
	}

	p.splatMV(blk)
	return blk, nil
}

func (p *Av1BlockParser) decodeSegmentID(col, rowInSB int) uint8 {
	pred, agree := p.ctx.SegmentPredContext(col, rowInSB)
	if agree {
		// A single adaptive bit signals whether the predicted id holds;
		// on a miss the full id is read against the uniform CDF.
		if p.dec.DecodeBoolAdapt(p.cdfs.SegPred(0)) == 0 {
			return pred
		}
	}
	sym := p.dec.DecodeSymbol(p.cdfs.SegmentID(1))
	return uint8(sym)
}

// readDeltas reads delta_q and, if enabled, per-plane delta_lf values for
// the first eligible block of a superblock, per the read_deltas() gate:
// eligible once the block covers the whole superblock, or isn't skipped.
func (p *Av1BlockParser) readDeltas(blk *Block, w4, h4 int) {
	if !p.fh.DeltaQPresent || !p.deltaPending {
		return
	}
	if w4*h4 < p.sbRows4*p.sbRows4 && blk.Skip {
		return
	}
	p.deltaPending = false

	dq := p.readDeltaAbs() << uint(p.fh.DeltaQRes)
	p.curBaseQIdx = clip3(1, 255, p.curBaseQIdx+dq)
	blk.DeltaQ = p.curBaseQIdx - p.fh.BaseQIdx

	if !p.fh.DeltaLFPresent {
		return
	}
	n := 1
	if p.fh.DeltaLFMulti {
		n = 4
	}
	for i := 0; i < n; i++ {
		dlf := p.readDeltaAbs() << uint(p.fh.DeltaLFRes)
		p.curDeltaLF[i] = clip3(-63, 63, p.curDeltaLF[i]+dlf)
	}
	blk.DeltaLF = p.curDeltaLF
}

// readDeltaAbs decodes one delta_q/delta_lf magnitude: a small unary-coded
// absolute value (escaping to a fixed-width literal for large magnitudes)
// followed by a sign bit. readDeltas left-shifts the result by the frame's
// configured resolution.
func (p *Av1BlockParser) readDeltaAbs() int {
	const deltaQSmall = 3
	abs := 0
	for abs < deltaQSmall && p.dec.DecodeBool(1<<14) != 0 {
		abs++
	}
	if abs == deltaQSmall {
		bits := int(p.dec.DecodeUniform(1<<4)) + 1
		abs = int(p.dec.DecodeBools(uint(bits))) + (1 << uint(bits))
	}
	if abs == 0 {
		return 0
	}
	if p.dec.DecodeBool(1<<14) != 0 {
		abs = -abs
	}
	return abs
}

// readCdefIdx reads one cdef_idx per 64x64 region, from the first
// non-skip block encountered in that region.
func (p *Av1BlockParser) readCdefIdx(blk *Block, col, row, w4, h4 int) {
	if p.fh.CdefBits == 0 || blk.Skip {
		return
	}
	const region4 = 16 // 64/4
	for ry := row / region4 * region4; ry < row+h4; ry += region4 {
		for rx := col / region4 * region4; rx < col+w4; rx += region4 {
			key := [2]int{rx, ry}
			if p.cdefSeen[key] {
				continue
			}
			p.cdefSeen[key] = true
			blk.CdefIdx = int(p.dec.DecodeBools(uint(p.fh.CdefBits)))
		}
	}
}

func (p *Av1BlockParser) parseIntraBlock(blk *Block, col, row, w4, h4 int) {
	rowInSB := row % p.sbRows4
	modeCtx := p.ctx.YModeContext(col, rowInSB)
	blk.YMode = p.dec.DecodeSymbol(p.cdfs.YMode(modeCtx))
	blk.UVMode = blk.YMode
	bsl := int(boolLog2(uint(maxInt(w4, h4))))

	if isDirectionalMode(blk.YMode) {
		blk.AngleDeltaY = p.dec.DecodeSymbol(p.cdfs.AngleDelta(blk.YMode)) - 3
	}

	if p.sh.EnableFilterIntra && blk.YMode == ModeDC && maxInt(w4, h4) <= 8 {
		if p.dec.DecodeBoolAdapt(p.cdfs.UseFilterIntra(bsl)) != 0 {
			blk.UseFilterIntra = true
			blk.FilterIntraMode = p.dec.DecodeSymbol(p.cdfs.FilterIntraMode())
		}
	}

	if !p.sh.Monochrome {
		blk.UVMode = p.dec.DecodeSymbol(p.cdfs.UVMode(UVModeContext(blk.YMode)))
		if isDirectionalMode(blk.UVMode) {
			blk.AngleDeltaUV = p.dec.DecodeSymbol(p.cdfs.AngleDelta(blk.UVMode)) - 3
		}
	}

	p.parsePalette(blk, col, rowInSB, w4, h4, bsl)
}

// parsePalette reads the palette_y/palette_uv syntax: an enable flag keyed
// on how many neighbors already used palette mode, the palette size if
// enabled, and the block's color-index map via the wavefront-scanned
// color-map decoder.
func (p *Av1BlockParser) parsePalette(blk *Block, col, rowInSB, w4, h4, bsl int) {
	screenContentAllowed := p.sh.SeqForceScreenContentTools != 0
	bw, bh := w4*4, h4*4
	sizeEligible := bw >= 8 && bw <= 64 && bh >= 8 && bh <= 64
	if !screenContentAllowed || !sizeEligible {
		return
	}

	var pal PaletteInfo
	if blk.YMode == ModeDC {
		ctx := p.ctx.PalSizeContext(col, rowInSB)
		if p.dec.DecodeBoolAdapt(p.cdfs.PaletteYMode(ctx)) != 0 {
			size := p.dec.DecodeSymbol(p.cdfs.PaletteYSize(bsl)) + 2
			pal.YColors = make([]uint16, size)
			for i := range pal.YColors {
				pal.YColors[i] = uint16(p.dec.DecodeBools(uint(p.sh.BitDepth)))
			}
			pal.W, pal.H = bw, bh
			pal.ColorMap = DecodeColorMap(p.dec, size, bw, bh)
		}
	}

	if !p.sh.Monochrome && blk.UVMode == ModeDC {
		yHasPalette := 0
		if len(pal.YColors) > 0 {
			yHasPalette = 1
		}
		if p.dec.DecodeBoolAdapt(p.cdfs.PaletteUVMode(yHasPalette)) != 0 {
			size := p.dec.DecodeSymbol(p.cdfs.PaletteUVSize(bsl)) + 2
			pal.UVColors = make([][2]uint16, size)
			for i := range pal.UVColors {
				pal.UVColors[i][0] = uint16(p.dec.DecodeBools(uint(p.sh.BitDepth)))
				pal.UVColors[i][1] = uint16(p.dec.DecodeBools(uint(p.sh.BitDepth)))
			}
			cw, ch := chromaSize(bw, p.sh.SubsamplingX), chromaSize(bh, p.sh.SubsamplingY)
			if len(pal.YColors) == 0 {
				pal.ColorMap = DecodeColorMap(p.dec, size, cw, ch)
				pal.W, pal.H = cw, ch
			}
		}
	}

	if len(pal.YColors) > 0 || len(pal.UVColors) > 0 {
		blk.Palette = &pal
	}
}

func chromaSize(lumaSize, subsampling int) int {
	if subsampling == 0 {
		return lumaSize
	}
	return (lumaSize + 1) / 2
}

// parseIntraBCBlock reads a key-frame intra-block-copy block: a motion
// vector referencing already-reconstructed samples of the current frame,
// decoded with the same per-component cascade as an inter MV difference
// but with a zero predictor, since IntraBC has no reference-MV stack.
func (p *Av1BlockParser) parseIntraBCBlock(blk *Block, col, row, w4, h4 int) {
	blk.RefFrame = [2]int8{-1, -1}
	mv := p.readMvDiff()
	blk.MV[0] = mv
	blk.YMode = ModeDC
	blk.UVMode = ModeDC
}

func (p *Av1BlockParser) parseInterBlock(blk *Block, col, row, w4, h4 int) error {
	rowInSB := row % p.sbRows4
	bsl := int(boolLog2(uint(maxInt(w4, h4))))

	isCompound := false
	if p.sh.EnableJntComp || p.sh.EnableMaskedCompound {
		compCtx := p.ctx.CompModeContext(col, rowInSB)
		isCompound = p.dec.DecodeBoolAdapt(p.cdfs.CompMode(compCtx)) != 0
	}

	if isCompound {
		pairCtx := clip3(0, 2, p.ctx.RefContext(col, rowInSB, 1))
		pair := p.dec.DecodeSymbol(p.cdfs.CompRefPair(pairCtx))
		fwd, bwd := compoundRefPairs[pair][0], compoundRefPairs[pair][1]
		blk.RefFrame = [2]int8{fwd, bwd}
	} else {
		refCtx := clip3(0, 2, p.ctx.RefContext(col, rowInSB, 1))
		ref := p.dec.DecodeSymbol(p.cdfs.SingleRef(refCtx)) + 1 // 1..7
		blk.RefFrame = [2]int8{int8(ref), -1}
	}

	numRefs := 1
	if isCompound {
		numRefs = 2
	}

	var stacks [2][]RefMVCandidate
	var mvCtxs [2]*RefMVContext
	for i := 0; i < numRefs; i++ {
		refIdx := int(blk.RefFrame[i])
		var refPic *Picture
		refHint := 0
		if refIdx >= 0 && refIdx < len(p.refPics) && p.refPics[refIdx] != nil {
			refPic = p.refPics[refIdx]
			refHint = refPic.OrderHint
		}
		mvCtxs[i] = NewRefMVContext(p.cur, refPic, refIdx, refHint)
		stacks[i] = mvCtxs[i].Build(col, row, w4, h4)
	}

	interModeCtx := clip3(0, 7, mvCtxs[0].NewMVCount+len(stacks[0]))
	var mode int
	if blk.SkipMode {
		mode = NearestMV
	} else {
		mode = p.dec.DecodeSymbol(p.cdfs.InterMode(interModeCtx))
	}

	drlIdx := 0
	if mode == NearMV || mode == NewMV {
		stack := stacks[0]
		for drlIdx < len(stack)-1 && drlIdx < maxRefMVStackSize-1 {
			ctx := DrlContext(stack, drlIdx)
			if p.dec.DecodeBoolAdapt(p.cdfs.DrlMode(ctx)) == 0 {
				break
			}
			drlIdx++
		}
		if mode == NearMV && drlIdx == 0 {
			drlIdx = minInt(1, len(stack)-1)
			if drlIdx < 0 {
				drlIdx = 0
			}
		}
	}

	for i := 0; i < numRefs; i++ {
		stack := stacks[i]
		idx := drlIdx
		if idx >= len(stack) {
			idx = len(stack) - 1
		}
		var predictor MotionVector
		if idx >= 0 {
			predictor = stack[idx].MV
		}
		switch mode {
		case NewMV:
			diff := p.readMvDiff()
			blk.MV[i] = MotionVector{Row: predictor.Row + diff.Row, Col: predictor.Col + diff.Col}
		case NearestMV:
			if idx >= 0 {
				blk.MV[i] = stack[0].MV
			}
		case NearMV:
			blk.MV[i] = predictor
		case GlobalMV:
			blk.MV[i] = MotionVector{}
		}
	}

	if isCompound {
		p.parseCompoundType(blk, bsl)
	} else if p.sh.EnableInterIntraCompound && interIntraEligible(w4, h4) {
		p.parseInterIntra(blk, bsl)
	}

	if !isCompound && !blk.InterIntra && p.fh.IsMotionModeSwitchable {
		p.parseMotionMode(blk, col, row, w4, h4)
	}

	p.parseInterpFilter(blk, col, rowInSB)
	return nil
}

// compoundRefPairs enumerates the six forward/backward reference-frame
// pairs the comp_ref_pair symbol selects between.
var compoundRefPairs = [6][2]int8{
	{1, 5}, {1, 6}, {1, 7},
	{2, 5}, {3, 5}, {4, 5},
}

func interIntraEligible(w4, h4 int) bool {
	bw, bh := w4*4, h4*4
	return bw >= 8 && bw <= 32 && bh >= 8 && bh <= 32
}

func (p *Av1BlockParser) parseCompoundType(blk *Block, bsl int) {
	if p.dec.DecodeBool(1<<14) == 0 {
		// comp_group_idx == 0: a plain average or distance-weighted blend.
		if p.sh.EnableJntComp && p.dec.DecodeBool(1<<14) != 0 {
			blk.CompoundType = CompoundDistance
		} else {
			blk.CompoundType = CompoundAverage
		}
		return
	}
	sym := p.dec.DecodeSymbol(p.cdfs.CompoundType(clip3(0, 1, bsl)))
	if sym == 0 {
		blk.CompoundType = CompoundWedge
	} else {
		blk.CompoundType = CompoundDiffwtd
	}
}

func (p *Av1BlockParser) parseInterIntra(blk *Block, bsl int) {
	ctx := clip3(0, 2, bsl)
	if p.dec.DecodeBoolAdapt(p.cdfs.InterIntra(ctx)) == 0 {
		return
	}
	blk.InterIntra = true
	blk.InterIntraMode = p.dec.DecodeSymbol(p.cdfs.InterIntraMode(ctx))
	blk.InterIntraWedge = p.dec.DecodeBoolAdapt(p.cdfs.WedgeInterIntra()) != 0
}

func (p *Av1BlockParser) parseMotionMode(blk *Block, col, row, w4, h4 int) {
	samples := CollectWarpSamples(p.cur, col, row, w4, h4, int(blk.RefFrame[0]), blk.MV[0])
	ctx := clip3(0, 2, len(samples))
	if !p.sh.EnableWarpedMotion {
		ctx = minInt(ctx, 1) // LOCALWARP isn't offered without sequence support
	}
	mode := p.dec.DecodeSymbol(p.cdfs.MotionMode(ctx))
	if mode == MotionModeWarp && (!p.sh.EnableWarpedMotion || len(samples) < minWarpSamples) {
		mode = MotionModeSimple
	}
	blk.MotionMode = mode
	if mode == MotionModeWarp {
		blk.Warp = FitWarpModel(samples)
	}
}

func (p *Av1BlockParser) parseInterpFilter(blk *Block, col, rowInSB int) {
	if p.sh.EnableDualFilter {
		hCtx := p.ctx.FilterContext(col, rowInSB, 0)
		vCtx := p.ctx.FilterContext(col, rowInSB, 1)
		blk.InterpFilter[0] = p.dec.DecodeSymbol(p.cdfs.InterpFilter(hCtx))
		blk.InterpFilter[1] = p.dec.DecodeSymbol(p.cdfs.InterpFilter(vCtx))
		return
	}
	ctx := p.ctx.FilterContext(col, rowInSB, 0)
	f := p.dec.DecodeSymbol(p.cdfs.InterpFilter(ctx))
	blk.InterpFilter = [2]int{f, f}
}

// readMvDiff decodes one motion-vector difference: a joint symbol naming
// which of the two components are nonzero, then the signed magnitude of
// each nonzero component.
func (p *Av1BlockParser) readMvDiff() MotionVector {
	const (
		jointZero = iota
		jointHNZVZ
		jointHZVNZ
		jointHNZVNZ
	)
	joint := p.dec.DecodeSymbol(p.cdfs.MvJoint())
	var mv MotionVector
	if joint == jointHZVNZ || joint == jointHNZVNZ {
		mv.Row = p.readMvComponent(0)
	}
	if joint == jointHNZVZ || joint == jointHNZVNZ {
		mv.Col = p.readMvComponent(1)
	}
	return mv
}

// readMvComponent decodes one signed motion-vector component: a sign bit,
// a class symbol naming its magnitude's order, then either the class-0
// fine bits or a per-bit ladder plus shared fraction/high-precision bits,
// following the spec's mv_component syntax.
func (p *Av1BlockParser) readMvComponent(comp int) int32 {
	sign := p.dec.DecodeBool(1 << 14) != 0
	cls := p.dec.DecodeSymbol(p.cdfs.MvClass(comp))

	var mag int32
	if cls == 0 {
		bit := p.dec.DecodeBoolAdapt(p.cdfs.MvClass0Bit(comp))
		fr := p.dec.DecodeSymbol(p.cdfs.MvClass0Fr(comp))
		hp := p.dec.DecodeBoolAdapt(p.cdfs.MvClass0Hp(comp))
		mag = int32((bit<<3)|(fr<<1)|hp) + 1
	} else {
		d := 0
		for i := 0; i < cls; i++ {
			d |= p.dec.DecodeBoolAdapt(p.cdfs.MvBit(comp, i)) << uint(i)
		}
		fr := p.dec.DecodeSymbol(p.cdfs.MvFr(comp))
		hp := p.dec.DecodeBoolAdapt(p.cdfs.MvHp(comp))
		mag = int32(mvClass0Size<<uint(cls+2)) + int32((d<<3)|(fr<<1)|hp) + 1
	}
	if sign {
		mag = -mag
	}
	return mag
}

// decodeTxTree reads the variable-transform-size tree for blk: inter
// blocks recurse down to a bounded depth, splitting a node when tx_split
// decodes true, while intra and IntraBC blocks use one transform covering
// the whole coding block. Leaves are recorded on blk.TxLeaves and folded
// back into the neighbor strip by the caller.
func (p *Av1BlockParser) decodeTxTree(blk *Block, col, row, w4, h4 int) {
	blk.TxW4, blk.TxH4 = w4, h4
	if !blk.IsInter || blk.Skip {
		blk.TxLeaves = []TxLeaf{{Col: col, Row: row, W4: w4, H4: h4}}
		return
	}
	const maxDepth = 2
	blk.TxLeaves = p.splitTxNode(col, row, w4, h4, 0, maxDepth)
	if len(blk.TxLeaves) > 0 {
		blk.TxW4, blk.TxH4 = blk.TxLeaves[0].W4, blk.TxLeaves[0].H4
	}
}

func (p *Av1BlockParser) splitTxNode(col, row, w4, h4, depth, maxDepth int) []TxLeaf {
	if depth >= maxDepth || w4 <= 1 || h4 <= 1 {
		return []TxLeaf{{Col: col, Row: row, W4: w4, H4: h4}}
	}
	nodeSize4 := maxInt(w4, h4)
	ctx := p.ctx.TxSplitContext(col, row%p.sbRows4, nodeSize4)
	if p.dec.DecodeBoolAdapt(p.cdfs.TxSplit(ctx)) == 0 {
		return []TxLeaf{{Col: col, Row: row, W4: w4, H4: h4}}
	}
	hw, hh := maxInt(w4/2, 1), maxInt(h4/2, 1)
	var leaves []TxLeaf
	for _, sub := range [][2]int{{0, 0}, {hw, 0}, {0, hh}, {hw, hh}} {
		leaves = append(leaves, p.splitTxNode(col+sub[0], row+sub[1], hw, hh, depth+1, maxDepth)...)
	}
	return leaves
}

// splatMV writes a block's motion information into every 4x4 MV-grid cell
// it covers, so later blocks' spatial scans and a later frame's temporal
// scan see it.
func (p *Av1BlockParser) splatMV(blk *Block) {
	cell := MVCell{
		IsInter:   blk.IsInter,
		IsIntraBC: blk.IsIntraBC,
		RefFrame:  blk.RefFrame,
		MV:        blk.MV,
	}
	for i, rf := range blk.RefFrame {
		if rf >= 0 && int(rf) < len(p.refPics) && p.refPics[rf] != nil {
			cell.RefOrderHint[i] = p.refPics[rf].OrderHint
		}
	}
	for y := 0; y < blk.H4; y++ {
		r := blk.Row + y
		if r >= len(p.cur.MVs)/p.cur.MVStride {
			break
		}
		for x := 0; x < blk.W4; x++ {
			c := blk.Col + x
			if c >= p.cur.MVStride {
				break
			}
			p.cur.MVs[r*p.cur.MVStride+c] = cell
		}
	}
}
