package av1

// maxRefMVStackSize bounds the candidate list the reference-MV engine
// builds before the block parser reads an index into it.
const maxRefMVStackSize = 8

// RefMVCandidate is one entry of the reference-MV candidate stack: a
// motion vector together with the accumulated weight that ranks it.
type RefMVCandidate struct {
	MV     MotionVector
	Weight int
}

// spatialScanOffsets lists the 4x4-unit offsets, in priority order, the
// reference-MV engine probes around a block for spatial candidates before
// falling back to temporal and global-motion sources. The warp-model
// neighbor scan reuses the same offsets, since a projectable warp sample
// is drawn from the same spatial neighborhood.
var spatialScanOffsets = [][2]int{
	{-1, 0}, {0, -1}, {-1, 1}, {1, -1}, {-1, -1}, {-2, 0}, {0, -2}, {-2, -1}, {-1, -2},
}

// RefMVContext accumulates the candidate stack for one block's motion
// vector prediction, scanning spatial neighbors first, then the temporal
// MV field of a designated reference frame, then global motion, with later
// sources only contributing once the spatial scan hasn't already filled
// the stack.
type RefMVContext struct {
	cur      *Picture
	refPic   *Picture // the temporal MV source frame, or nil if unavailable
	refFrame int

	// refFrameHint is the current frame's target reference frame's display
	// order hint, the numerator side of the temporal MV projection ratio.
	refFrameHint int

	globalMV    MotionVector
	hasGlobalMV bool

	stack []RefMVCandidate

	// NewMVCount is the number of distinct MVs contributed purely by the
	// spatial scan, used by the block parser to pick the new_mv /
	// zero_mv / ref_mv CDF context.
	NewMVCount int
}

// NewRefMVContext prepares a reference-MV scan for a block at (col,row) in
// the current picture's MV grid, predicting from refFrame (a reference
// slot index) whose picture's display-order hint is refFrameHint, with
// refPic supplying the co-located temporal MV field.
func NewRefMVContext(cur, refPic *Picture, refFrame, refFrameHint int) *RefMVContext {
	return &RefMVContext{cur: cur, refPic: refPic, refFrame: refFrame, refFrameHint: refFrameHint}
}

// SetGlobalMV supplies the global-motion-derived MV that Build appends as
// the final candidate whenever the stack still has room.
func (c *RefMVContext) SetGlobalMV(mv MotionVector) {
	c.globalMV = mv
	c.hasGlobalMV = true
}

// Build runs the full spatial/temporal/global-motion scan for a block
// spanning w4 x h4 4x4 units with its top-left corner at (col,row), and
// returns the ranked candidate stack.
func (c *RefMVContext) Build(col, row, w4, h4 int) []RefMVCandidate {
	c.stack = c.stack[:0]
	c.scanSpatial(col, row, w4, h4)
	c.NewMVCount = len(c.stack)
	if len(c.stack) < 2 {
		c.scanTemporal(col, row, w4, h4)
	}
	c.sortByWeight()
	if len(c.stack) < maxRefMVStackSize && c.hasGlobalMV {
		c.addCandidate(c.globalMV, 1)
	}
	if len(c.stack) > maxRefMVStackSize {
		c.stack = c.stack[:maxRefMVStackSize]
	}
	return c.stack
}

func (c *RefMVContext) scanSpatial(col, row, w4, h4 int) {
	for _, off := range spatialScanOffsets {
		nc, nr := col+off[0]*maxInt(w4, 1), row+off[1]*maxInt(h4, 1)
		if nc < 0 || nr < 0 || nc >= c.cur.MVStride {
			continue
		}
		cell := c.cur.mvCellAt(nc, nr)
		if !cell.IsInter {
			continue
		}
		for slot := 0; slot < 2; slot++ {
			if int(cell.RefFrame[slot]) != c.refFrame {
				continue
			}
			weight := 2
			if off[0] == 0 || off[1] == 0 {
				weight = 4 // an orthogonal neighbor counts for more than a diagonal one
			}
			c.addCandidate(cell.MV[slot], weight)
		}
	}
}

func (c *RefMVContext) scanTemporal(col, row, w4, h4 int) {
	if c.refPic == nil {
		return
	}
	cx, cy := col+w4/2, row+h4/2
	if cx < 0 || cy < 0 || cx >= c.refPic.MVStride {
		return
	}
	cell := c.refPic.mvCellAt(cx, cy)
	if !cell.IsInter {
		return
	}
	for slot := 0; slot < 2; slot++ {
		if int(cell.RefFrame[slot]) != c.refFrame {
			continue
		}
		num := c.cur.OrderHint - c.refFrameHint
		den := c.refPic.OrderHint - cell.RefOrderHint[slot]
		c.addCandidate(scaleTemporalMV(cell.MV[slot], num, den), 2)
	}
}

// maxFrameDistance bounds the numerator/denominator of a temporal MV
// projection, matching the clamp the AV1 motion-field projection applies
// before looking up its reciprocal table.
const maxFrameDistance = 31

// mvProjDivMult is a fixed-point (1<<14 scale) reciprocal table indexed by
// denominator, used so the projection is a multiply-and-shift instead of a
// division: mvProjDivMult[d] == round(16384/d).
var mvProjDivMult = [maxFrameDistance + 1]int32{
	0, 16384, 8192, 5461, 4096, 3277, 2731, 2341, 2048, 1820, 1638,
	1489, 1365, 1260, 1170, 1092, 1024, 964, 910, 862, 819,
	780, 745, 712, 683, 655, 630, 607, 585, 565, 546, 529,
}

// scaleTemporalMV projects a co-located reference-frame MV that was coded
// with frame-distance den onto the current block's target frame-distance
// num, the get_mv_projection scaling the spec's temporal candidate source
// relies on. A den of zero (the co-located cell didn't actually record a
// distance) leaves the MV unscaled, since no ratio can be formed.
func scaleTemporalMV(mv MotionVector, num, den int) MotionVector {
	if den == 0 || num == den {
		return mv
	}
	clippedNum := clip3(-maxFrameDistance, maxFrameDistance, num)
	clippedDen := clip3(0, maxFrameDistance, absInt(den))
	if clippedDen == 0 {
		return mv
	}
	mult := mvProjDivMult[clippedDen]
	if den < 0 {
		clippedNum = -clippedNum
	}
	return MotionVector{
		Row: round2Signed(int64(mv.Row)*int64(clippedNum)*int64(mult), 14),
		Col: round2Signed(int64(mv.Col)*int64(clippedNum)*int64(mult), 14),
	}
}

func round2Signed(x int64, n uint) int32 {
	if x >= 0 {
		return int32((x + (1 << (n - 1))) >> n)
	}
	return -int32((-x + (1 << (n - 1))) >> n)
}

// addCandidate merges mv into the stack, adding its weight to an existing
// matching entry instead of duplicating it.
func (c *RefMVContext) addCandidate(mv MotionVector, weight int) {
	for i := range c.stack {
		if c.stack[i].MV == mv {
			c.stack[i].Weight += weight
			return
		}
	}
	c.stack = append(c.stack, RefMVCandidate{MV: mv, Weight: weight})
}

// sortByWeight orders the stack by descending weight, a small insertion
// sort since the stack is bounded to a handful of entries.
func (c *RefMVContext) sortByWeight() {
	for i := 1; i < len(c.stack); i++ {
		for j := i; j > 0 && c.stack[j].Weight > c.stack[j-1].Weight; j-- {
			c.stack[j], c.stack[j-1] = c.stack[j-1], c.stack[j]
		}
	}
}

// DrlContext returns the dynamic-reference-list context used to select the
// CDF for the drl_mode flag at stack index idx, derived from the weight
// gap between consecutive candidates.
func DrlContext(stack []RefMVCandidate, idx int) int {
	if idx+1 >= len(stack) {
		return 0
	}
	if stack[idx].Weight >= stack[idx+1].Weight+640 {
		return 0
	}
	if stack[idx].Weight < 640 {
		return 2
	}
	return 1
}

// warpDeviationLimit bounds how far a candidate warp sample's predicted
// displacement may drift from the block's own MV before it's rejected, the
// same 4*clip(max(bw,bh),4,28) threshold the spec's warp estimation uses.
func warpDeviationLimit(bw4, bh4 int) int32 {
	bw, bh := bw4*4, bh4*4
	return int32(4 * clip3(4, 28, maxInt(bw, bh)))
}

// CollectWarpSamples scans the same spatial neighborhood the reference-MV
// engine uses for up to 8 single-reference neighbors that predict
// consistently with blockMV, returning them as warp samples relative to
// the block's center. Candidates whose own MV deviates from blockMV by
// more than warpDeviationLimit are discarded, since a neighbor moving
// independently of the block doesn't constrain its affine model.
func CollectWarpSamples(cur *Picture, col, row, w4, h4 int, refFrame int, blockMV MotionVector) []warpSample {
	limit := warpDeviationLimit(w4, h4)
	centerX := float64(col*4 + w4*4/2)
	centerY := float64(row*4 + h4*4/2)

	var samples []warpSample
	for _, off := range spatialScanOffsets {
		if len(samples) >= 8 {
			break
		}
		nc, nr := col+off[0]*maxInt(w4, 1), row+off[1]*maxInt(h4, 1)
		if nc < 0 || nr < 0 || nc >= cur.MVStride {
			continue
		}
		cell := cur.mvCellAt(nc, nr)
		if !cell.IsInter || cell.RefFrame[1] >= 0 {
			continue // compound-ref neighbors aren't usable as warp samples
		}
		if int(cell.RefFrame[0]) != refFrame {
			continue
		}
		mv := cell.MV[0]
		if absInt(int(mv.Row-blockMV.Row)) > int(limit) || absInt(int(mv.Col-blockMV.Col)) > int(limit) {
			continue
		}
		samples = append(samples, warpSample{
			X:   float64(nc*4) - centerX,
			Y:   float64(nr*4) - centerY,
			MVX: float64(mv.Col),
			MVY: float64(mv.Row),
		})
	}
	return samples
}
