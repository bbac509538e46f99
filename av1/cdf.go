package av1

// CDFContext holds every adaptive cumulative-distribution table a tile's
// MSAC decoder reads from and updates while parsing. A frame's starting
// CDFContext is either the sequence-wide default or a saved snapshot from
// a previously decoded frame (the primary reference frame's end-of-frame
// state), and each tile gets its own independent copy so tiles can be
// decoded concurrently without sharing mutable adaptation state.
type CDFContext struct {
	partition      [5][4][]uint16 // [bsl][ctx] -> cdf, up to 10 symbols + counter
	partitionSmall [4][]uint16    // NONE/HORZ/VERT/SPLIT only, for blocks too small for the 4-way split partitions
	skip           [3][]uint16
	skipMode       [3][]uint16
	isInter        [4][]uint16
	segmentID      [3][]uint16
	segPred        [3][]uint16
	yMode          [4][]uint16
	uvMode         [2][]uint16
	angleDelta     [8][]uint16
	filterIntraMode   [1][]uint16
	useFilterIntra    [5][]uint16
	paletteYMode      [3][]uint16
	paletteUVMode     [2][]uint16
	paletteYSize      [5][]uint16
	paletteUVSize     [5][]uint16

	compMode    [5][]uint16
	singleRef   [3][]uint16
	compRefPair [3][]uint16
	interMode   [8][]uint16
	drlMode     [3][]uint16
	compoundType [2][]uint16
	interIntra   [3][]uint16
	interIntraMode [3][]uint16
	wedgeInterIntra [1][]uint16
	motionMode   [3][]uint16
	interpFilter [4][]uint16
	txSplit      [3][]uint16

	mvJoint     [1][]uint16
	mvClass     [2][]uint16
	mvClass0Bit [2][]uint16
	mvClass0Fr  [2][]uint16
	mvClass0Hp  [2][]uint16
	mvBit       [2][10][]uint16
	mvFr        [2][]uint16
	mvHp        [2][]uint16
}

const numPartitionSymbols = 10

// DefaultCDFContext returns the sequence-wide initial CDF tables, the
// starting point for a keyframe or any frame with no usable primary
// reference.
func DefaultCDFContext() *CDFContext {
	c := &CDFContext{}
	for bsl := range c.partition {
		for ctx := range c.partition[bsl] {
			c.partition[bsl][ctx] = defaultCDF(numPartitionSymbols)
		}
	}
	initCDF(c.partitionSmall[:], 4)
	initCDF(c.skip[:], 2)
	initCDF(c.skipMode[:], 2)
	initCDF(c.isInter[:], 2)
	initCDF(c.segmentID[:], 8)
	initCDF(c.segPred[:], 2)
	initCDF(c.yMode[:], 13)
	initCDF(c.uvMode[:], 14) // 13 intra modes plus UV_CFL_PRED
	initCDF(c.angleDelta[:], 7)
	initCDF(c.filterIntraMode[:], 5)
	initCDF(c.useFilterIntra[:], 2)
	initCDF(c.paletteYMode[:], 2)
	initCDF(c.paletteUVMode[:], 2)
	initCDF(c.paletteYSize[:], 7) // palette sizes 2..8
	initCDF(c.paletteUVSize[:], 7)

	initCDF(c.compMode[:], 2)
	initCDF(c.singleRef[:], 7) // LAST, LAST2, LAST3, GOLDEN, BWDREF, ALTREF2, ALTREF
	initCDF(c.compRefPair[:], 6)
	initCDF(c.interMode[:], 4) // NEWMV, NEARESTMV, NEARMV, GLOBALMV
	initCDF(c.drlMode[:], 2)
	initCDF(c.compoundType[:], 2) // COMPOUND_WEDGE, COMPOUND_DIFFWTD (AVERAGE/DISTANCE handled outside the tree)
	initCDF(c.interIntra[:], 2)
	initCDF(c.interIntraMode[:], 4)
	initCDF(c.wedgeInterIntra[:], 2)
	initCDF(c.motionMode[:], 3) // SIMPLE, OBMC, LOCALWARP
	initCDF(c.interpFilter[:], 3)
	initCDF(c.txSplit[:], 2)

	initCDF(c.mvJoint[:], 4)
	initCDF(c.mvClass[:], 11)
	initCDF(c.mvClass0Bit[:], 2)
	initCDF(c.mvClass0Fr[:], 4)
	initCDF(c.mvClass0Hp[:], 2)
	for comp := range c.mvBit {
		initCDF(c.mvBit[comp][:], 2)
	}
	initCDF(c.mvFr[:], 4)
	initCDF(c.mvHp[:], 2)
	return c
}

// initCDF fills every entry of dst with a fresh uniform n-symbol CDF; dst
// is a slice view over one of CDFContext's fixed-size array fields.
func initCDF(dst [][]uint16, n int) {
	for i := range dst {
		dst[i] = defaultCDF(n)
	}
}

// cloneCDF returns a deep copy of src into dst, sized to match.
func cloneCDF(dst, src [][]uint16) {
	for i := range src {
		dst[i] = append([]uint16(nil), src[i]...)
	}
}

// defaultCDF returns a uniform N-symbol inverse-cumulative table: the
// decoder has no better prior than an even split until it starts adapting.
func defaultCDF(n int) []uint16 {
	cdf := make([]uint16, n+1)
	full := uint32(1 << 15)
	for i := 0; i < n-1; i++ {
		remaining := full * uint32(n-1-i) / uint32(n)
		cdf[i] = uint16(remaining)
	}
	return cdf
}

// Clone deep-copies the context, used both to give each tile its own
// mutable copy and to snapshot a frame's end-of-tile-parsing state for a
// later frame's primary-reference inheritance.
func (c *CDFContext) Clone() *CDFContext {
	out := &CDFContext{}
	for bsl := range c.partition {
		for ctx := range c.partition[bsl] {
			out.partition[bsl][ctx] = append([]uint16(nil), c.partition[bsl][ctx]...)
		}
	}
	cloneCDF(out.partitionSmall[:], c.partitionSmall[:])
	cloneCDF(out.skip[:], c.skip[:])
	cloneCDF(out.skipMode[:], c.skipMode[:])
	cloneCDF(out.isInter[:], c.isInter[:])
	cloneCDF(out.segmentID[:], c.segmentID[:])
	cloneCDF(out.segPred[:], c.segPred[:])
	cloneCDF(out.yMode[:], c.yMode[:])
	cloneCDF(out.uvMode[:], c.uvMode[:])
	cloneCDF(out.angleDelta[:], c.angleDelta[:])
	cloneCDF(out.filterIntraMode[:], c.filterIntraMode[:])
	cloneCDF(out.useFilterIntra[:], c.useFilterIntra[:])
	cloneCDF(out.paletteYMode[:], c.paletteYMode[:])
	cloneCDF(out.paletteUVMode[:], c.paletteUVMode[:])
	cloneCDF(out.paletteYSize[:], c.paletteYSize[:])
	cloneCDF(out.paletteUVSize[:], c.paletteUVSize[:])

	cloneCDF(out.compMode[:], c.compMode[:])
	cloneCDF(out.singleRef[:], c.singleRef[:])
	cloneCDF(out.compRefPair[:], c.compRefPair[:])
	cloneCDF(out.interMode[:], c.interMode[:])
	cloneCDF(out.drlMode[:], c.drlMode[:])
	cloneCDF(out.compoundType[:], c.compoundType[:])
	cloneCDF(out.interIntra[:], c.interIntra[:])
	cloneCDF(out.interIntraMode[:], c.interIntraMode[:])
	cloneCDF(out.wedgeInterIntra[:], c.wedgeInterIntra[:])
	cloneCDF(out.motionMode[:], c.motionMode[:])
	cloneCDF(out.interpFilter[:], c.interpFilter[:])
	cloneCDF(out.txSplit[:], c.txSplit[:])

	cloneCDF(out.mvJoint[:], c.mvJoint[:])
	cloneCDF(out.mvClass[:], c.mvClass[:])
	cloneCDF(out.mvClass0Bit[:], c.mvClass0Bit[:])
	cloneCDF(out.mvClass0Fr[:], c.mvClass0Fr[:])
	cloneCDF(out.mvClass0Hp[:], c.mvClass0Hp[:])
	for comp := range c.mvBit {
		cloneCDF(out.mvBit[comp][:], c.mvBit[comp][:])
	}
	cloneCDF(out.mvFr[:], c.mvFr[:])
	cloneCDF(out.mvHp[:], c.mvHp[:])
	return out
}

// Partition returns the partition CDF for a given block-size-log2 and
// neighbor context.
func (c *CDFContext) Partition(bsl, ctx int) []uint16 {
	bsl = clip3(0, len(c.partition)-1, bsl)
	ctx = clip3(0, len(c.partition[bsl])-1, ctx)
	return c.partition[bsl][ctx]
}

// PartitionSmall returns the restricted 4-way partition CDF (NONE, HORZ,
// VERT, SPLIT) used for blocks below the minimum size the HORZ4/VERT4/AB
// partitions apply to.
func (c *CDFContext) PartitionSmall(ctx int) []uint16 {
	return c.partitionSmall[clip3(0, len(c.partitionSmall)-1, ctx)]
}

// Skip returns the skip-flag CDF for a given neighbor context.
func (c *CDFContext) Skip(ctx int) []uint16 { return c.skip[clip3(0, len(c.skip)-1, ctx)] }

// SkipMode returns the skip_mode-flag CDF for a given neighbor context.
func (c *CDFContext) SkipMode(ctx int) []uint16 {
	return c.skipMode[clip3(0, len(c.skipMode)-1, ctx)]
}

// IsInter returns the is_inter-flag CDF for a given neighbor context.
func (c *CDFContext) IsInter(ctx int) []uint16 { return c.isInter[clip3(0, len(c.isInter)-1, ctx)] }

// SegmentID returns the segment-id CDF for a given prediction context.
func (c *CDFContext) SegmentID(ctx int) []uint16 {
	return c.segmentID[clip3(0, len(c.segmentID)-1, ctx)]
}

// SegPred returns the seg_id_predicted-flag CDF for a given neighbor
// context.
func (c *CDFContext) SegPred(ctx int) []uint16 { return c.segPred[clip3(0, len(c.segPred)-1, ctx)] }

// YMode returns the luma intra-mode CDF for the neighbor-mode context
// YModeContext derives from the above and left blocks.
func (c *CDFContext) YMode(ctx int) []uint16 { return c.yMode[clip3(0, len(c.yMode)-1, ctx)] }

// UVMode returns the chroma intra-mode CDF, keyed on whether the block's
// luma mode was directional.
func (c *CDFContext) UVMode(ctx int) []uint16 { return c.uvMode[clip3(0, len(c.uvMode)-1, ctx)] }

// AngleDelta returns the per-directional-mode angle-delta CDF.
func (c *CDFContext) AngleDelta(mode int) []uint16 {
	idx := mode - ModeV
	return c.angleDelta[clip3(0, len(c.angleDelta)-1, idx)]
}

// FilterIntraMode returns the filter-intra predictor-selection CDF.
func (c *CDFContext) FilterIntraMode() []uint16 { return c.filterIntraMode[0] }

// UseFilterIntra returns the filter-intra enable-flag CDF for a coarse
// block-size class.
func (c *CDFContext) UseFilterIntra(bsl int) []uint16 {
	return c.useFilterIntra[clip3(0, len(c.useFilterIntra)-1, bsl)]
}

// PaletteYMode returns the luma palette-mode flag CDF for a given
// neighbor-agreement context.
func (c *CDFContext) PaletteYMode(ctx int) []uint16 {
	return c.paletteYMode[clip3(0, len(c.paletteYMode)-1, ctx)]
}

// PaletteUVMode returns the chroma palette-mode flag CDF, keyed on whether
// luma used palette mode.
func (c *CDFContext) PaletteUVMode(ctx int) []uint16 {
	return c.paletteUVMode[clip3(0, len(c.paletteUVMode)-1, ctx)]
}

// PaletteYSize returns the luma palette-size CDF for a coarse block-size
// class.
func (c *CDFContext) PaletteYSize(bsl int) []uint16 {
	return c.paletteYSize[clip3(0, len(c.paletteYSize)-1, bsl)]
}

// PaletteUVSize mirrors PaletteYSize for the chroma palette.
func (c *CDFContext) PaletteUVSize(bsl int) []uint16 {
	return c.paletteUVSize[clip3(0, len(c.paletteUVSize)-1, bsl)]
}

// CompMode returns the single/compound reference-mode flag CDF.
func (c *CDFContext) CompMode(ctx int) []uint16 { return c.compMode[clip3(0, len(c.compMode)-1, ctx)] }

// SingleRef returns the single-reference-frame selection CDF, covering all
// seven non-intra reference frames as one flat symbol.
func (c *CDFContext) SingleRef(ctx int) []uint16 {
	return c.singleRef[clip3(0, len(c.singleRef)-1, ctx)]
}

// CompRefPair returns the compound reference-pair selection CDF, covering
// the six forward/backward pairs AV1 allows as one flat symbol.
func (c *CDFContext) CompRefPair(ctx int) []uint16 {
	return c.compRefPair[clip3(0, len(c.compRefPair)-1, ctx)]
}

// InterMode returns the NEWMV/NEARESTMV/NEARMV/GLOBALMV selection CDF.
func (c *CDFContext) InterMode(ctx int) []uint16 { return c.interMode[clip3(0, len(c.interMode)-1, ctx)] }

// DrlMode returns the dynamic-reference-list continuation-flag CDF.
func (c *CDFContext) DrlMode(ctx int) []uint16 { return c.drlMode[clip3(0, len(c.drlMode)-1, ctx)] }

// CompoundType returns the wedge-vs-diffwtd compound mask selection CDF.
func (c *CDFContext) CompoundType(ctx int) []uint16 {
	return c.compoundType[clip3(0, len(c.compoundType)-1, ctx)]
}

// InterIntra returns the interintra-enable flag CDF for a coarse
// block-size class.
func (c *CDFContext) InterIntra(ctx int) []uint16 {
	return c.interIntra[clip3(0, len(c.interIntra)-1, ctx)]
}

// InterIntraMode returns the interintra predictor-mode CDF.
func (c *CDFContext) InterIntraMode(ctx int) []uint16 {
	return c.interIntraMode[clip3(0, len(c.interIntraMode)-1, ctx)]
}

// WedgeInterIntra returns the wedge-mask-enable flag CDF for interintra
// blocks.
func (c *CDFContext) WedgeInterIntra() []uint16 { return c.wedgeInterIntra[0] }

// MotionMode returns the SIMPLE/OBMC/LOCALWARP selection CDF.
func (c *CDFContext) MotionMode(ctx int) []uint16 {
	return c.motionMode[clip3(0, len(c.motionMode)-1, ctx)]
}

// InterpFilter returns the sub-pel interpolation filter selection CDF for
// one direction.
func (c *CDFContext) InterpFilter(ctx int) []uint16 {
	return c.interpFilter[clip3(0, len(c.interpFilter)-1, ctx)]
}

// TxSplit returns the variable-tx split-flag CDF.
func (c *CDFContext) TxSplit(ctx int) []uint16 { return c.txSplit[clip3(0, len(c.txSplit)-1, ctx)] }

// MvJoint returns the joint zero/nonzero CDF for a motion vector
// difference's two components.
func (c *CDFContext) MvJoint() []uint16 { return c.mvJoint[0] }

// MvClass returns the motion-vector class CDF for one component (0 row, 1
// col).
func (c *CDFContext) MvClass(comp int) []uint16 { return c.mvClass[clip3(0, 1, comp)] }

// MvClass0Bit returns the class-0 magnitude-bit CDF for one component.
func (c *CDFContext) MvClass0Bit(comp int) []uint16 { return c.mvClass0Bit[clip3(0, 1, comp)] }

// MvClass0Fr returns the class-0 fractional-bits CDF for one component.
func (c *CDFContext) MvClass0Fr(comp int) []uint16 { return c.mvClass0Fr[clip3(0, 1, comp)] }

// MvClass0Hp returns the class-0 high-precision-bit CDF for one component.
func (c *CDFContext) MvClass0Hp(comp int) []uint16 { return c.mvClass0Hp[clip3(0, 1, comp)] }

// MvBit returns the class>0 magnitude-bit CDF for one component and bit
// position.
func (c *CDFContext) MvBit(comp, bit int) []uint16 {
	comp = clip3(0, 1, comp)
	bit = clip3(0, len(c.mvBit[comp])-1, bit)
	return c.mvBit[comp][bit]
}

// MvFr returns the class>0 fractional-bits CDF for one component.
func (c *CDFContext) MvFr(comp int) []uint16 { return c.mvFr[clip3(0, 1, comp)] }

// MvHp returns the class>0 high-precision-bit CDF for one component.
func (c *CDFContext) MvHp(comp int) []uint16 { return c.mvHp[clip3(0, 1, comp)] }
