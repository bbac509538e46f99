package av1

// BlockContext tracks the above-row and left-column neighbor state a tile
// needs while descending through its partition tree: every strip is kept
// at 4x4-unit granularity and is conservative across the quad-partition
// recursion, so a child partition always sees an accurate edge regardless
// of which sibling was decoded last.
type BlockContext struct {
	sbSize int // 64 or 128, from the sequence header
	miCols int // frame width in 4x4 units
	miRows int // frame height in 4x4 units

	aboveSkip      []bool
	aboveIsInter   []bool
	aboveTxWidth   []int // luma tx width in 4x4 units, for the variable-tx split context
	aboveMode      []int
	aboveUVMode    []int
	abovePartition []int
	aboveSkipMode  []bool
	abovePalSize   []int
	aboveCompType  []int // 0 intra, 1 single-ref, 2 compound
	aboveRef       [][2]int8
	aboveFilter    [][2]int
	aboveTxLpfY    []int // luma tx size the loop filter should use at this edge
	aboveTxLpfUV   []int
	aboveLCoef     []int // whether the last-decoded luma block had nonzero coefficients
	aboveCCoef     []int

	leftSkip      []bool
	leftIsInter   []bool
	leftTxHeight  []int // luma tx height in 4x4 units, paired with aboveTxWidth
	leftMode      []int
	leftUVMode    []int
	leftPartition []int
	leftSkipMode  []bool
	leftPalSize   []int
	leftCompType  []int
	leftRef       [][2]int8
	leftFilter    [][2]int
	leftTxLpfY    []int
	leftTxLpfUV   []int
	leftLCoef     []int
	leftCCoef     []int

	// aboveSeg and leftSeg track the most recent segment id seen in each
	// strip, used to predict a block's segment id from its neighbors
	// before any explicit signal is read.
	aboveSeg []uint8
	leftSeg  []uint8
}

// NewBlockContext allocates the above-row strip sized to a full frame
// width and the left-column strip sized to one superblock row, since the
// left strip is reset at the start of every superblock row.
func NewBlockContext(miCols, miRows, sbSize int) *BlockContext {
	unitsPerSB := sbSize / 4
	c := &BlockContext{
		sbSize:         sbSize,
		miCols:         miCols,
		miRows:         miRows,
		aboveSkip:      make([]bool, miCols),
		aboveIsInter:   make([]bool, miCols),
		aboveTxWidth:   make([]int, miCols),
		aboveMode:      make([]int, miCols),
		aboveUVMode:    make([]int, miCols),
		abovePartition: make([]int, miCols),
		aboveSkipMode:  make([]bool, miCols),
		abovePalSize:   make([]int, miCols),
		aboveCompType:  make([]int, miCols),
		aboveRef:       make([][2]int8, miCols),
		aboveFilter:    make([][2]int, miCols),
		aboveTxLpfY:    make([]int, miCols),
		aboveTxLpfUV:   make([]int, miCols),
		aboveLCoef:     make([]int, miCols),
		aboveCCoef:     make([]int, miCols),
		aboveSeg:       make([]uint8, miCols),
		leftSkip:       make([]bool, unitsPerSB),
		leftIsInter:    make([]bool, unitsPerSB),
		leftTxHeight:   make([]int, unitsPerSB),
		leftMode:       make([]int, unitsPerSB),
		leftUVMode:     make([]int, unitsPerSB),
		leftPartition:  make([]int, unitsPerSB),
		leftSkipMode:   make([]bool, unitsPerSB),
		leftPalSize:    make([]int, unitsPerSB),
		leftCompType:   make([]int, unitsPerSB),
		leftRef:        make([][2]int8, unitsPerSB),
		leftFilter:     make([][2]int, unitsPerSB),
		leftTxLpfY:     make([]int, unitsPerSB),
		leftTxLpfUV:    make([]int, unitsPerSB),
		leftLCoef:      make([]int, unitsPerSB),
		leftCCoef:      make([]int, unitsPerSB),
		leftSeg:        make([]uint8, unitsPerSB),
	}
	return c
}

// ClearLeft resets the left-column strip at the start of a new superblock
// row, per the tile decoding process's "clear_left_context".
func (c *BlockContext) ClearLeft() {
	for i := range c.leftSkip {
		c.leftSkip[i] = false
		c.leftIsInter[i] = false
		c.leftTxHeight[i] = 0
		c.leftMode[i] = 0
		c.leftUVMode[i] = 0
		c.leftPartition[i] = 0
		c.leftSkipMode[i] = false
		c.leftPalSize[i] = 0
		c.leftCompType[i] = 0
		c.leftRef[i] = [2]int8{-1, -1}
		c.leftFilter[i] = [2]int{0, 0}
		c.leftTxLpfY[i] = 0
		c.leftTxLpfUV[i] = 0
		c.leftLCoef[i] = 0
		c.leftCCoef[i] = 0
		c.leftSeg[i] = 0
	}
}

// ClearAbove resets the above-row strip across the whole tile width, per
// "clear_above_context" run once at the start of a tile.
func (c *BlockContext) ClearAbove() {
	for i := range c.aboveSkip {
		c.aboveSkip[i] = false
		c.aboveIsInter[i] = false
		c.aboveTxWidth[i] = 0
		c.aboveMode[i] = 0
		c.aboveUVMode[i] = 0
		c.abovePartition[i] = 0
		c.aboveSkipMode[i] = false
		c.abovePalSize[i] = 0
		c.aboveCompType[i] = 0
		c.aboveRef[i] = [2]int8{-1, -1}
		c.aboveFilter[i] = [2]int{0, 0}
		c.aboveTxLpfY[i] = 0
		c.aboveTxLpfUV[i] = 0
		c.aboveLCoef[i] = 0
		c.aboveCCoef[i] = 0
		c.aboveSeg[i] = 0
	}
}

// SkipContext returns the CDF context index used for the skip flag,
// derived from whether the above and left neighbors were themselves
// skipped.
func (c *BlockContext) SkipContext(col, rowInSB int) int {
	ctx := 0
	if c.aboveSkipAt(col) {
		ctx++
	}
	if c.leftSkipAt(rowInSB) {
		ctx++
	}
	return ctx
}

func (c *BlockContext) aboveSkipAt(col int) bool {
	if col < 0 || col >= len(c.aboveSkip) {
		return false
	}
	return c.aboveSkip[col]
}

func (c *BlockContext) leftSkipAt(row int) bool {
	if row < 0 || row >= len(c.leftSkip) {
		return false
	}
	return c.leftSkip[row]
}

// UpdateSkip records a decoded skip flag into both neighbor strips across
// the block's width and height in 4x4 units.
func (c *BlockContext) UpdateSkip(col, rowInSB, w4, h4 int, skip bool) {
	for i := 0; i < w4 && col+i < len(c.aboveSkip); i++ {
		c.aboveSkip[col+i] = skip
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftSkip); i++ {
		c.leftSkip[rowInSB+i] = skip
	}
}

// SkipModeContext mirrors SkipContext for the skip_mode flag, read before
// skip itself at the top of the block parse cascade.
func (c *BlockContext) SkipModeContext(col, rowInSB int) int {
	ctx := 0
	if col >= 0 && col < len(c.aboveSkipMode) && c.aboveSkipMode[col] {
		ctx++
	}
	if rowInSB >= 0 && rowInSB < len(c.leftSkipMode) && c.leftSkipMode[rowInSB] {
		ctx++
	}
	return ctx
}

// UpdateSkipMode records a decoded skip_mode flag across the block's
// extent.
func (c *BlockContext) UpdateSkipMode(col, rowInSB, w4, h4 int, skipMode bool) {
	for i := 0; i < w4 && col+i < len(c.aboveSkipMode); i++ {
		c.aboveSkipMode[col+i] = skipMode
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftSkipMode); i++ {
		c.leftSkipMode[rowInSB+i] = skipMode
	}
}

// IsInterContext returns the is_inter flag's CDF context: 0 when neither
// the above nor the left neighbor is inter, 1 when one is, 3 when both are.
func (c *BlockContext) IsInterContext(col, rowInSB int) int {
	above := col >= 0 && col < len(c.aboveIsInter) && c.aboveIsInter[col]
	left := rowInSB >= 0 && rowInSB < len(c.leftIsInter) && c.leftIsInter[rowInSB]
	switch {
	case above && left:
		return 3
	case above || left:
		return 1
	default:
		return 0
	}
}

// UpdateIsInter records a decoded is_inter flag across the block's extent.
func (c *BlockContext) UpdateIsInter(col, rowInSB, w4, h4 int, isInter bool) {
	for i := 0; i < w4 && col+i < len(c.aboveIsInter); i++ {
		c.aboveIsInter[col+i] = isInter
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftIsInter); i++ {
		c.leftIsInter[rowInSB+i] = isInter
	}
}

// PartitionContext returns the ctx index the partition descender uses to
// select its CDF, built from whether the above and left neighbors were
// split smaller than the block size being considered.
func (c *BlockContext) PartitionContext(col, rowInSB, bsl int) int {
	above := 0
	if col >= 0 && col < len(c.abovePartition) && c.abovePartition[col] < bsl {
		above = 1
	}
	left := 0
	if rowInSB >= 0 && rowInSB < len(c.leftPartition) && c.leftPartition[rowInSB] < bsl {
		left = 1
	}
	return left*2 + above
}

// UpdatePartition records the block-size-log2 that ended up being used
// across a block's extent, for later partition-context lookups.
func (c *BlockContext) UpdatePartition(col, rowInSB, w4, h4, bsl int) {
	for i := 0; i < w4 && col+i < len(c.abovePartition); i++ {
		c.abovePartition[col+i] = bsl
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftPartition); i++ {
		c.leftPartition[rowInSB+i] = bsl
	}
}

// SegmentPredContext predicts a block's segment id from its above and left
// neighbors, returning the predicted id and whether the two neighbors
// agree (the seg_id_predicted flag is only read when they do).
func (c *BlockContext) SegmentPredContext(col, rowInSB int) (pred uint8, agree bool) {
	var above, left uint8
	haveAbove := col >= 0 && col < len(c.aboveSeg)
	haveLeft := rowInSB >= 0 && rowInSB < len(c.leftSeg)
	if haveAbove {
		above = c.aboveSeg[col]
	}
	if haveLeft {
		left = c.leftSeg[rowInSB]
	}
	switch {
	case haveAbove && haveLeft:
		return minUint8(above, left), above == left
	case haveAbove:
		return above, true
	case haveLeft:
		return left, true
	default:
		return 0, true
	}
}

// UpdateSegment records a decoded segment id across a block's extent.
func (c *BlockContext) UpdateSegment(col, rowInSB, w4, h4 int, seg uint8) {
	for i := 0; i < w4 && col+i < len(c.aboveSeg); i++ {
		c.aboveSeg[col+i] = seg
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftSeg); i++ {
		c.leftSeg[rowInSB+i] = seg
	}
}

// YModeContext derives the luma intra-mode CDF bucket from whether the
// above and left neighbors used a directional mode, a coarse version of
// the size-and-neighbor-class context the mode tree conditions on.
func (c *BlockContext) YModeContext(col, rowInSB int) int {
	ctx := 0
	if col >= 0 && col < len(c.aboveMode) && isDirectionalMode(c.aboveMode[col]) {
		ctx++
	}
	if rowInSB >= 0 && rowInSB < len(c.leftMode) && isDirectionalMode(c.leftMode[rowInSB]) {
		ctx++
	}
	return ctx
}

func isDirectionalMode(mode int) bool {
	return mode >= ModeV && mode <= ModeD67
}

// UpdateMode records a decoded y_mode across the block's extent.
func (c *BlockContext) UpdateMode(col, rowInSB, w4, h4, mode int) {
	for i := 0; i < w4 && col+i < len(c.aboveMode); i++ {
		c.aboveMode[col+i] = mode
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftMode); i++ {
		c.leftMode[rowInSB+i] = mode
	}
}

// UVModeContext picks between the two uv_mode CDF buckets based on whether
// the block's own luma mode was directional, the same split CFL
// eligibility draws on.
func UVModeContext(yMode int) int {
	if isDirectionalMode(yMode) {
		return 1
	}
	return 0
}

// UpdateUVMode records a decoded uv_mode across the block's extent.
func (c *BlockContext) UpdateUVMode(col, rowInSB, w4, h4, mode int) {
	for i := 0; i < w4 && col+i < len(c.aboveUVMode); i++ {
		c.aboveUVMode[col+i] = mode
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftUVMode); i++ {
		c.leftUVMode[rowInSB+i] = mode
	}
}

// TxSplitContext derives the variable-tx split context from the neighbor
// transform sizes: a neighbor whose own tx width/height is smaller than
// the node being considered raises the likelihood of a further split,
// mirroring the skip/partition context shape.
func (c *BlockContext) TxSplitContext(col, rowInSB, nodeSize4 int) int {
	ctx := 0
	if col >= 0 && col < len(c.aboveTxWidth) && c.aboveTxWidth[col] != 0 && c.aboveTxWidth[col] < nodeSize4 {
		ctx++
	}
	if rowInSB >= 0 && rowInSB < len(c.leftTxHeight) && c.leftTxHeight[rowInSB] != 0 && c.leftTxHeight[rowInSB] < nodeSize4 {
		ctx++
	}
	return ctx
}

// UpdateTx records a block's final luma transform width/height (in 4x4
// units) across its extent, read back by later blocks' TxSplitContext.
func (c *BlockContext) UpdateTx(col, rowInSB, w4, h4, txW4, txH4 int) {
	for i := 0; i < w4 && col+i < len(c.aboveTxWidth); i++ {
		c.aboveTxWidth[col+i] = txW4
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftTxHeight); i++ {
		c.leftTxHeight[rowInSB+i] = txH4
	}
}

// UpdateTxLpf records the transform size the in-loop filter should use at
// a block's edges, which can differ from its coding tx size for skipped
// blocks; stored for the external ReconOps collaborator's filter pass.
func (c *BlockContext) UpdateTxLpf(col, rowInSB, w4, h4, lpfY, lpfUV int) {
	for i := 0; i < w4 && col+i < len(c.aboveTxLpfY); i++ {
		c.aboveTxLpfY[col+i] = lpfY
		c.aboveTxLpfUV[col+i] = lpfUV
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftTxLpfY); i++ {
		c.leftTxLpfY[rowInSB+i] = lpfY
		c.leftTxLpfUV[rowInSB+i] = lpfUV
	}
}

// TxLpfY and TxLpfUV expose the filter-sized transform dimensions recorded
// at a given above-strip column, for the external loop filter collaborator
// and for the neighbor-strip conservation tests.
func (c *BlockContext) TxLpfY(col int) int {
	if col < 0 || col >= len(c.aboveTxLpfY) {
		return 0
	}
	return c.aboveTxLpfY[col]
}

func (c *BlockContext) TxLpfUV(col int) int {
	if col < 0 || col >= len(c.aboveTxLpfUV) {
		return 0
	}
	return c.aboveTxLpfUV[col]
}

// PalSizeContext returns how many of the above and left neighbors (0, 1 or
// 2) were coded with a luma palette, used to select the luma palette-mode
// flag CDF.
func (c *BlockContext) PalSizeContext(col, rowInSB int) int {
	ctx := 0
	if col >= 0 && col < len(c.abovePalSize) && c.abovePalSize[col] > 0 {
		ctx++
	}
	if rowInSB >= 0 && rowInSB < len(c.leftPalSize) && c.leftPalSize[rowInSB] > 0 {
		ctx++
	}
	return ctx
}

// UpdatePalSize records a block's luma palette size (0 when palette mode
// wasn't used) across its extent.
func (c *BlockContext) UpdatePalSize(col, rowInSB, w4, h4, size int) {
	for i := 0; i < w4 && col+i < len(c.abovePalSize); i++ {
		c.abovePalSize[col+i] = size
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftPalSize); i++ {
		c.leftPalSize[rowInSB+i] = size
	}
}

// CompModeContext counts how many of the above/left neighbors used
// compound reference prediction, the context the comp_mode flag's CDF is
// keyed on.
func (c *BlockContext) CompModeContext(col, rowInSB int) int {
	ctx := 0
	if col >= 0 && col < len(c.aboveCompType) && c.aboveCompType[col] == compTypeCompound {
		ctx++
	}
	if rowInSB >= 0 && rowInSB < len(c.leftCompType) && c.leftCompType[rowInSB] == compTypeCompound {
		ctx++
	}
	return ctx
}

// UpdateCompType records whether a block was intra, single-ref or
// compound-ref across its extent.
func (c *BlockContext) UpdateCompType(col, rowInSB, w4, h4, compType int) {
	for i := 0; i < w4 && col+i < len(c.aboveCompType); i++ {
		c.aboveCompType[col+i] = compType
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftCompType); i++ {
		c.leftCompType[rowInSB+i] = compType
	}
}

// Reference classification stored in the comp_type neighbor strip.
const (
	compTypeIntra = iota
	compTypeSingle
	compTypeCompound
)

// RefContext counts how many of the above/left neighbors share ref as one
// of their reference frames, the context the single/compound reference
// selection trees use.
func (c *BlockContext) RefContext(col, rowInSB int, ref int8) int {
	ctx := 0
	if col >= 0 && col < len(c.aboveRef) && (c.aboveRef[col][0] == ref || c.aboveRef[col][1] == ref) {
		ctx++
	}
	if rowInSB >= 0 && rowInSB < len(c.leftRef) && (c.leftRef[rowInSB][0] == ref || c.leftRef[rowInSB][1] == ref) {
		ctx++
	}
	return ctx
}

// UpdateRef records a block's reference-frame pair across its extent.
func (c *BlockContext) UpdateRef(col, rowInSB, w4, h4 int, ref [2]int8) {
	for i := 0; i < w4 && col+i < len(c.aboveRef); i++ {
		c.aboveRef[col+i] = ref
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftRef); i++ {
		c.leftRef[rowInSB+i] = ref
	}
}

// FilterContext returns the neighbor-agreement bucket for the interp_filter
// symbol in the given direction (0 horizontal, 1 vertical).
func (c *BlockContext) FilterContext(col, rowInSB, dir int) int {
	ctx := 0
	if col >= 0 && col < len(c.aboveFilter) {
		ctx += c.aboveFilter[col][dir]
	}
	if rowInSB >= 0 && rowInSB < len(c.leftFilter) {
		ctx += c.leftFilter[rowInSB][dir]
	}
	return clip3(0, 3, ctx)
}

// UpdateFilter records a block's interpolation-filter pair across its
// extent.
func (c *BlockContext) UpdateFilter(col, rowInSB, w4, h4 int, filter [2]int) {
	for i := 0; i < w4 && col+i < len(c.aboveFilter); i++ {
		c.aboveFilter[col+i] = filter
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftFilter); i++ {
		c.leftFilter[rowInSB+i] = filter
	}
}

// UpdateCoef records whether a block's luma/chroma residual had any
// nonzero coefficients, read by read_coef_blocks as the "all zero"
// neighbor context for the next block's own residual decode. This core
// doesn't decode coefficients itself (that's the external ReconOps
// collaborator's job via ReadCoefBlocks), so it only has the coarse
// skip-derived signal available to record here.
func (c *BlockContext) UpdateCoef(col, rowInSB, w4, h4 int, hasLumaCoef, hasChromaCoef bool) {
	l, ch := 0, 0
	if hasLumaCoef {
		l = 1
	}
	if hasChromaCoef {
		ch = 1
	}
	for i := 0; i < w4 && col+i < len(c.aboveLCoef); i++ {
		c.aboveLCoef[col+i] = l
		c.aboveCCoef[col+i] = ch
	}
	for i := 0; i < h4 && rowInSB+i < len(c.leftLCoef); i++ {
		c.leftLCoef[rowInSB+i] = l
		c.leftCCoef[rowInSB+i] = ch
	}
}

// LCoef and CCoef expose the recorded luma/chroma "had coefficients" flag
// at a given above-strip column, for the external residual-decode
// collaborator and for neighbor-strip conservation tests.
func (c *BlockContext) LCoef(col int) int {
	if col < 0 || col >= len(c.aboveLCoef) {
		return 0
	}
	return c.aboveLCoef[col]
}

func (c *BlockContext) CCoef(col int) int {
	if col < 0 || col >= len(c.aboveCCoef) {
		return 0
	}
	return c.aboveCCoef[col]
}

func minUint8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
