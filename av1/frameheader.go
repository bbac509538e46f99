package av1

import "github.com/ausocean/av1dec/av1/bits"

// Frame types, as signalled by frame_type in the frame header.
const (
	KeyFrame = iota
	InterFrame
	IntraOnlyFrame
	SwitchFrame
)

const numRefFrames = 8

// FilmGrainParams is the film-grain parameter set parsed from the frame
// header. Grain synthesis itself is a pixel-domain operation left to an
// external ReconOps collaborator; this core only exposes the signalled
// parameters.
type FilmGrainParams struct {
	ApplyGrain     bool
	GrainSeed      uint16
	UpdateGrain    bool
	RefIdx         int
	NumYPoints     int
	PointYValue    [14]uint8
	PointYScaling  [14]uint8
	ChromaScaling  bool
	NumCbPoints    int
	NumCrPoints    int
	GrainScalingMinus8 int
	ARCoeffLag     int
	ARCoeffsYPlus128 [24]uint8
	ARCoeffShiftMinus6 int
	GrainScaleShift int
	ClipToRestrictedRange bool
}

// FrameHeader carries the per-frame coding parameters the block parser,
// partition descender and frame pipeline all read from.
type FrameHeader struct {
	FrameType      int
	ShowFrame      bool
	ShowableFrame  bool
	ErrorResilient bool

	FrameWidth, FrameHeight int

	// UseSuperres and SuperresDenom record the signalled super-resolution
	// downscale factor; the upscale reconstruction step is left to an
	// external collaborator.
	UseSuperres   bool
	SuperresDenom int

	OrderHint int
	RefFrameIdx [7]int
	PrimaryRefFrame int

	RefreshFrameFlags int

	AllowIntrabc bool
	AllowHighPrecisionMV bool
	IsMotionModeSwitchable bool
	UseRefFrameMVs bool

	DisableCdfUpdate bool

	BaseQIdx int
	DeltaQYDc int
	DeltaQUDc, DeltaQUAc int
	DeltaQVDc, DeltaQVAc int

	SegmentationEnabled bool

	// DeltaQPresent/DeltaLFPresent gate the per-superblock delta_q and
	// delta_lf syntax elements the block parser reads at 64-aligned
	// boundaries; Res is the left-shift applied to the coded delta.
	DeltaQPresent bool
	DeltaQRes     int
	DeltaLFPresent bool
	DeltaLFRes     int
	DeltaLFMulti   bool

	// SkipModePresent gates the skip_mode flag read ahead of skip itself.
	// This core doesn't retain cross-frame reference order-hint state, so
	// it approximates the spec's forward/backward reference search with
	// the coarser allowed-condition gate.
	SkipModePresent bool

	// CdefBits is the number of bits used for each 64x64 region's cdef_idx,
	// 0 when CDEF is disabled or has nothing to signal.
	CdefBits int

	TileCols, TileRows int
	TileColsLog2, TileRowsLog2 int
	TileColStarts []int // in superblock units, length TileCols+1
	TileRowStarts []int // in superblock units, length TileRows+1

	// ContextUpdateTileID names the tile whose end-of-parse CDF state
	// becomes the frame's saved snapshot for primary-reference inheritance.
	ContextUpdateTileID int

	ReducedTxSet bool

	FilmGrain FilmGrainParams
}

const primaryRefNone = 7

// ParseFrameHeader parses the uncompressed header of a frame_header_obu or
// the header portion of a combined frame_obu, given the sequence header it
// applies under.
func ParseFrameHeader(r *bits.Reader, sh *SequenceHeader, cfg Settings) (*FrameHeader, error) {
	fh := &FrameHeader{PrimaryRefFrame: primaryRefNone}

	if sh.ReducedStillHdr {
		fh.FrameType = KeyFrame
		fh.ShowFrame = true
	} else {
		showExistingFrame := r.Get(1) != 0
		if showExistingFrame {
			_ = r.Get(3) // frame_to_show_map_idx
			return fh, nil
		}
		fh.FrameType = int(r.Get(2))
		fh.ShowFrame = r.Get(1) != 0
		if !fh.ShowFrame {
			fh.ShowableFrame = r.Get(1) != 0
		} else {
			fh.ShowableFrame = fh.FrameType != SwitchFrame
		}
		if fh.FrameType == SwitchFrame || (fh.FrameType == KeyFrame && fh.ShowFrame) {
			fh.ErrorResilient = true
		} else {
			fh.ErrorResilient = r.Get(1) != 0
		}
	}

	fh.DisableCdfUpdate = r.Get(1) != 0

	if sh.SeqForceScreenContentTools == selectScreenContentTools {
		_ = r.Get(1) // allow_screen_content_tools
	}

	if sh.FrameIDNumbersPresent {
		_ = r.Get(sh.FrameIDLength)
	}

	frameSizeOverride := false
	if fh.FrameType == SwitchFrame {
		frameSizeOverride = true
	} else if !sh.ReducedStillHdr {
		frameSizeOverride = r.Get(1) != 0
	}

	fh.OrderHint = 0
	if sh.EnableOrderHint {
		fh.OrderHint = int(r.Get(sh.OrderHintBits))
	}

	if fh.FrameType == KeyFrame || fh.FrameType == IntraOnlyFrame {
		fh.PrimaryRefFrame = primaryRefNone
	} else {
		fh.PrimaryRefFrame = int(r.Get(3))
	}

	if fh.FrameType == KeyFrame && fh.ShowFrame {
		fh.RefreshFrameFlags = 0xff
	} else if fh.FrameType == SwitchFrame {
		fh.RefreshFrameFlags = 0xff
	} else {
		fh.RefreshFrameFlags = int(r.Get(8))
	}

	if fh.FrameType == KeyFrame || fh.FrameType == IntraOnlyFrame || fh.FrameType == InterFrame {
		if err := parseFrameSize(r, sh, fh, frameSizeOverride); err != nil {
			return nil, err
		}
	}
	if fh.FrameType == InterFrame || fh.FrameType == SwitchFrame {
		for i := 0; i < 7; i++ {
			fh.RefFrameIdx[i] = int(r.Get(3))
			if sh.FrameIDNumbersPresent {
				_ = r.Get(sh.DeltaFrameIDLength)
			}
		}
		if sh.EnableRefFrameMVs {
			fh.UseRefFrameMVs = r.Get(1) != 0
		}
	}

	if fh.FrameType != SwitchFrame && !(fh.FrameType == KeyFrame && fh.ShowFrame) {
		_ = r.Get(1) // disable_frame_end_update_cdf, read and discarded
	}

	if fh.FrameType == KeyFrame && fh.ShowFrame {
		fh.AllowIntrabc = r.Get(1) != 0
	} else if sh.Use128x128Superblock {
		// intrabc not considered for inter frames here.
	}

	if err := parseTileInfo(r, sh, fh); err != nil {
		return nil, err
	}
	if err := parseQuantizationParams(r, fh); err != nil {
		return nil, err
	}
	fh.SegmentationEnabled = r.Get(1) != 0
	if fh.SegmentationEnabled {
		// Only the enable flag is read: the segmentation update flags and
		// per-segment feature data are not parsed. The flag alone drives
		// whether the block parser reads per-block segment ids.
	}

	parseDeltaQParams(r, fh)
	parseDeltaLFParams(r, fh)

	codedLossless := fh.BaseQIdx == 0 && fh.DeltaQYDc == 0 && fh.DeltaQUDc == 0 &&
		fh.DeltaQUAc == 0 && fh.DeltaQVDc == 0 && fh.DeltaQVAc == 0
	parseCdefParams(r, sh, fh, codedLossless)

	skipModeAllowed := fh.FrameType != KeyFrame && fh.FrameType != IntraOnlyFrame && sh.EnableOrderHint
	if skipModeAllowed {
		fh.SkipModePresent = r.Get(1) != 0
	}

	fh.ReducedTxSet = r.Get(1) != 0

	if !cfg.DisableFilmGrain && sh.FilmGrainParamsPresent && (fh.ShowFrame || fh.ShowableFrame) {
		parseFilmGrainParams(r, &fh.FilmGrain)
	}

	if err := r.Err(); err != nil {
		return nil, wrapf(ErrIOFailure, "parsing frame header: %v", err)
	}
	return fh, nil
}

func parseFrameSize(r *bits.Reader, sh *SequenceHeader, fh *FrameHeader, override bool) error {
	if override {
		fh.FrameWidth = int(r.Get(sh.FrameWidthBits)) + 1
		fh.FrameHeight = int(r.Get(sh.FrameHeightBits)) + 1
	} else {
		fh.FrameWidth = sh.MaxFrameWidth
		fh.FrameHeight = sh.MaxFrameHeight
	}
	if sh.EnableSuperres {
		fh.UseSuperres = r.Get(1) != 0
	}
	if fh.UseSuperres {
		fh.SuperresDenom = int(r.Get(3)) + 9
	} else {
		fh.SuperresDenom = 8 // SUPERRES_NUM, i.e. no downscale
	}
	if fh.FrameWidth <= 0 || fh.FrameHeight <= 0 {
		return wrapf(ErrInvalidBitstream, "non-positive frame size %dx%d", fh.FrameWidth, fh.FrameHeight)
	}
	return nil
}

func parseTileInfo(r *bits.Reader, sh *SequenceHeader, fh *FrameHeader) error {
	sbSize := 64
	if sh.Use128x128Superblock {
		sbSize = 128
	}
	sbCols := (fh.FrameWidth + sbSize - 1) / sbSize
	sbRows := (fh.FrameHeight + sbSize - 1) / sbSize

	uniform := r.Get(1) != 0
	if uniform {
		tileColsLog2 := 0
		for (sbCols >> uint(tileColsLog2+1)) >= 1 && tileColsLog2 < 6 {
			if r.Get(1) == 0 {
				break
			}
			tileColsLog2++
		}
		tileRowsLog2 := 0
		for (sbRows >> uint(tileRowsLog2+1)) >= 1 && tileRowsLog2 < 6 {
			if r.Get(1) == 0 {
				break
			}
			tileRowsLog2++
		}
		fh.TileColsLog2 = tileColsLog2
		fh.TileRowsLog2 = tileRowsLog2
		fh.TileCols = 1 << uint(tileColsLog2)
		fh.TileRows = 1 << uint(tileRowsLog2)
		fh.TileColStarts = uniformStarts(sbCols, fh.TileCols)
		fh.TileRowStarts = uniformStarts(sbRows, fh.TileRows)
		return nil
	}

	widestTileSB := 0
	startSB := 0
	var colStarts []int
	for startSB < sbCols {
		colStarts = append(colStarts, startSB)
		maxWidth := minInt(sbCols-startSB, 64)
		widthInSBs := int(r.GetUniform(uint32(maxWidth))) + 1
		widestTileSB = maxInt(widestTileSB, widthInSBs)
		startSB += widthInSBs
	}
	colStarts = append(colStarts, sbCols)
	fh.TileColStarts = colStarts
	fh.TileCols = len(colStarts) - 1

	startSB = 0
	var rowStarts []int
	for startSB < sbRows {
		rowStarts = append(rowStarts, startSB)
		maxHeight := minInt(sbRows-startSB, 64)
		heightInSBs := int(r.GetUniform(uint32(maxHeight))) + 1
		startSB += heightInSBs
	}
	rowStarts = append(rowStarts, sbRows)
	fh.TileRowStarts = rowStarts
	fh.TileRows = len(rowStarts) - 1

	if fh.TileCols > 1 || fh.TileRows > 1 {
		width := ceilLog2(fh.TileCols * fh.TileRows)
		fh.ContextUpdateTileID = int(r.Get(width))
		_ = r.Get(2) // tile_size_bytes_minus_1
	}
	return nil
}

func uniformStarts(total, n int) []int {
	starts := make([]int, n+1)
	for i := 0; i <= n; i++ {
		starts[i] = (i * total) / n
	}
	return starts
}

func parseQuantizationParams(r *bits.Reader, fh *FrameHeader) error {
	fh.BaseQIdx = int(r.Get(8))
	fh.DeltaQYDc = readDeltaQ(r)
	fh.DeltaQUDc = readDeltaQ(r)
	fh.DeltaQUAc = readDeltaQ(r)
	fh.DeltaQVDc = fh.DeltaQUDc
	fh.DeltaQVAc = fh.DeltaQUAc
	_ = r.Get(1) // using_qmatrix
	return nil
}

// parseDeltaQParams reads delta_q_params(), gating the per-superblock
// delta_q syntax element the block parser reads.
func parseDeltaQParams(r *bits.Reader, fh *FrameHeader) {
	if fh.BaseQIdx <= 0 {
		return
	}
	fh.DeltaQPresent = r.Get(1) != 0
	if fh.DeltaQPresent {
		fh.DeltaQRes = int(r.Get(2))
	}
}

// parseDeltaLFParams reads delta_lf_params(), gating the per-superblock
// delta_lf syntax element(s).
func parseDeltaLFParams(r *bits.Reader, fh *FrameHeader) {
	if !fh.DeltaQPresent {
		return
	}
	if !fh.AllowIntrabc {
		fh.DeltaLFPresent = r.Get(1) != 0
	}
	if fh.DeltaLFPresent {
		fh.DeltaLFRes = int(r.Get(2))
		fh.DeltaLFMulti = r.Get(1) != 0
	}
}

// parseCdefParams reads enough of cdef_params() to know how many bits each
// 64x64 region's cdef_idx is coded with; the per-strength tables
// themselves are a pixel-domain filtering concern left to the external
// ReconOps collaborator.
func parseCdefParams(r *bits.Reader, sh *SequenceHeader, fh *FrameHeader, codedLossless bool) {
	if codedLossless || fh.AllowIntrabc || !sh.EnableCdef {
		fh.CdefBits = 0
		return
	}
	_ = r.Get(2) // cdef_damping_minus_3
	fh.CdefBits = int(r.Get(2))
	n := 1 << uint(fh.CdefBits)
	for i := 0; i < n; i++ {
		_ = r.Get(4) // cdef_y_pri_strength
		_ = r.Get(2) // cdef_y_sec_strength
		if !sh.Monochrome {
			_ = r.Get(4) // cdef_uv_pri_strength
			_ = r.Get(2) // cdef_uv_sec_strength
		}
	}
}

func readDeltaQ(r *bits.Reader) int {
	coded := r.Get(1) != 0
	if !coded {
		return 0
	}
	return int(r.GetSigned(6))
}

func parseFilmGrainParams(r *bits.Reader, fg *FilmGrainParams) {
	fg.ApplyGrain = r.Get(1) != 0
	if !fg.ApplyGrain {
		*fg = FilmGrainParams{}
		return
	}
	fg.GrainSeed = uint16(r.Get(16))
	fg.UpdateGrain = true
	fg.NumYPoints = int(r.Get(4))
	for i := 0; i < fg.NumYPoints; i++ {
		fg.PointYValue[i] = uint8(r.Get(8))
		fg.PointYScaling[i] = uint8(r.Get(8))
	}
	fg.ChromaScaling = r.Get(1) != 0
	if fg.ChromaScaling {
		fg.NumCbPoints = int(r.Get(4))
		fg.NumCrPoints = int(r.Get(4))
	}
	fg.GrainScalingMinus8 = int(r.Get(2))
	fg.ARCoeffLag = int(r.Get(2))
	numPosLuma := 2 * fg.ARCoeffLag * (fg.ARCoeffLag + 1)
	for i := 0; i < numPosLuma; i++ {
		fg.ARCoeffsYPlus128[i] = uint8(r.Get(8))
	}
	fg.ARCoeffShiftMinus6 = int(r.Get(2))
	fg.GrainScaleShift = int(r.Get(2))
	fg.ClipToRestrictedRange = r.Get(1) != 0
}
