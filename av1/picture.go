package av1

import "sync/atomic"

// Plane holds one sample plane of a decoded picture: luma (Y) or one of the
// two chroma planes (U, V).
type Plane struct {
	Data   []uint16 // samples, row-major, one uint16 per sample regardless of bit depth
	Width  int
	Height int
	Stride int // samples per row, may exceed Width to allow for border padding
}

// at returns the sample at (x,y), clamping to the plane's edges so
// neighbor-context and motion-compensation code can read one step outside
// the frame without a separate bounds branch at every call site.
func (p *Plane) at(x, y int) uint16 {
	x = clip3(0, p.Width-1, x)
	y = clip3(0, p.Height-1, y)
	return p.Data[y*p.Stride+x]
}

// Picture is a single decoded frame: its sample planes plus the
// per-4x4-unit side information a later frame's reference-MV search and
// neighbor-context formation need. Pictures are reference counted because a
// frame may be held simultaneously by the output queue, by other frames'
// reference-frame slots, and by an in-flight reconstruction pass.
type Picture struct {
	Planes [3]Plane

	Width, Height int
	BitDepth      int

	// FrameID is a per-picture correlation ID set by the built-in
	// allocator; no log line in this package includes it.
	FrameID string

	// ShowableFrame marks whether this picture is queued for output or is
	// purely a reference (a "shown" vs. hidden frame).
	ShowableFrame bool

	// OrderHint is the frame's display-order hint, used by the
	// reference-MV engine's temporal-distance weighting.
	OrderHint int

	// MVs holds one motion vector, reference-frame pair and mode info
	// entry per 4x4 luma unit, the MV grid the reference-MV engine reads
	// from when building a later frame's candidate stack.
	MVs []MVCell

	// MVStride is the number of 4x4 columns per row of MVs.
	MVStride int

	// SegmentIDs has room for one segmentation id per 4x4 luma unit.
	// NewPicture leaves it nil and the block parser does not fill it.
	SegmentIDs []uint8

	// BlockProgress advances as pass-1 (coefficient decode) completes each
	// superblock row; PixelProgress advances once that row's pass-2
	// reconstruction, loop filter, CDEF and restoration have all run. A
	// later frame's inter prediction suspends on this picture's
	// PixelProgress before reading its samples. Both are nil until the
	// frame pipeline sizes them for this picture's superblock-row count.
	BlockProgress *RowProgress
	PixelProgress *RowProgress

	refCount int32
	release  func(*Picture)
}

// MVCell is one 4x4 unit's worth of motion information, the granularity
// the reference-MV engine and neighbor-context strips both index at.
type MVCell struct {
	MV        [2]MotionVector // up to two reference frames for compound prediction
	RefFrame  [2]int8         // -1 when a slot is unused
	// RefOrderHint is the display-order hint of the reference frame each MV
	// slot was coded against, needed to project a temporal candidate by the
	// ratio of frame distances when the co-located frame and the current
	// frame don't target the same reference.
	RefOrderHint [2]int
	IsInter   bool
	IsIntraBC bool
}

// MotionVector is a quarter-pel motion vector, row then column, matching
// the AV1 convention of storing vertical before horizontal.
type MotionVector struct {
	Row, Col int32
}

// NewPicture allocates a picture with its planes and MV grid sized for
// width x height at the given bit depth, honoring cfg's allocator override
// when one is supplied.
func NewPicture(cfg Settings, width, height, bitDepth int) (*Picture, error) {
	if cfg.AllocPicture != nil {
		return cfg.AllocPicture(width, height, bitDepth)
	}
	if width <= 0 || height <= 0 {
		return nil, wrapf(ErrInvalidBitstream, "invalid picture dimensions %dx%d", width, height)
	}
	p := &Picture{
		Width:    width,
		Height:   height,
		BitDepth: bitDepth,
		FrameID:  sessionID(),
		refCount: 1,
	}
	cw, ch := (width+1)/2, (height+1)/2
	p.Planes[0] = newPlane(width, height)
	p.Planes[1] = newPlane(cw, ch)
	p.Planes[2] = newPlane(cw, ch)

	p.MVStride = (width + 3) / 4
	mvRows := (height + 3) / 4
	p.MVs = make([]MVCell, p.MVStride*mvRows)
	return p, nil
}

func newPlane(w, h int) Plane {
	return Plane{
		Data:   make([]uint16, w*h),
		Width:  w,
		Height: h,
		Stride: w,
	}
}

// Ref increments the picture's reference count and returns it, so callers
// can write `ref := pic.Ref()` when handing a picture to a second owner.
func (p *Picture) Ref() *Picture {
	atomic.AddInt32(&p.refCount, 1)
	return p
}

// Release decrements the picture's reference count, freeing it through the
// configured release hook (or simply dropping it for GC) once no owner
// remains.
func (p *Picture) Release(cfg Settings) {
	if atomic.AddInt32(&p.refCount, -1) > 0 {
		return
	}
	if cfg.ReleasePicture != nil {
		cfg.ReleasePicture(p)
	}
}

// mvCellAt returns the MV grid entry covering 4x4 unit (col,row), clamping
// to the grid edges the same way Plane.at does for samples.
func (p *Picture) mvCellAt(col, row int) MVCell {
	col = clip3(0, p.MVStride-1, col)
	rows := len(p.MVs) / p.MVStride
	row = clip3(0, rows-1, row)
	return p.MVs[row*p.MVStride+col]
}
