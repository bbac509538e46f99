package av1

import "github.com/ausocean/av1dec/av1/bits"

// SequenceHeader carries the operating-point and coding-tool configuration
// that applies to every frame until the next sequence header OBU.
type SequenceHeader struct {
	Profile          int
	StillPicture     bool
	ReducedStillHdr  bool

	FrameWidthBits  int
	FrameHeightBits int
	MaxFrameWidth   int
	MaxFrameHeight  int

	FrameIDNumbersPresent bool
	DeltaFrameIDLength    int
	FrameIDLength         int

	Use128x128Superblock bool
	EnableFilterIntra    bool
	EnableIntraEdgeFilter bool

	EnableInterIntraCompound bool
	EnableMaskedCompound     bool
	EnableWarpedMotion       bool
	EnableDualFilter         bool
	EnableOrderHint          bool
	EnableJntComp            bool
	EnableRefFrameMVs        bool

	SeqForceScreenContentTools int
	SeqForceIntegerMV          int
	OrderHintBits              int

	EnableSuperres    bool
	EnableCdef        bool
	EnableRestoration bool

	BitDepth    int
	Monochrome  bool
	ColorRange  bool

	SubsamplingX, SubsamplingY int
	SeparateUVDeltaQ           bool

	FilmGrainParamsPresent bool
}

const (
	selectScreenContentTools = 2
	selectIntegerMV          = 2
)

// ParseSequenceHeader parses a sequence_header_obu payload.
func ParseSequenceHeader(r *bits.Reader) (*SequenceHeader, error) {
	sh := &SequenceHeader{}
	sh.Profile = int(r.Get(3))
	sh.StillPicture = r.Get(1) != 0
	sh.ReducedStillHdr = r.Get(1) != 0

	if sh.ReducedStillHdr {
		_ = r.Get(5) // seq_level_idx[0]
	} else {
		timingInfoPresent := r.Get(1) != 0
		if timingInfoPresent {
			return nil, wrapf(ErrUnsupportedProfile, "timing info parsing not supported")
		}
		decoderModelInfoPresent := r.Get(1) != 0
		if decoderModelInfoPresent {
			return nil, wrapf(ErrUnsupportedProfile, "decoder model info parsing not supported")
		}
		initialDisplayDelayPresent := r.Get(1) != 0
		operatingPointsCntMinus1 := int(r.Get(5))
		for i := 0; i <= operatingPointsCntMinus1; i++ {
			_ = r.Get(12) // operating_point_idc
			_ = r.Get(5)  // seq_level_idx
			if initialDisplayDelayPresent {
				present := r.Get(1) != 0
				if present {
					_ = r.Get(4)
				}
			}
		}
	}

	sh.FrameWidthBits = int(r.Get(4)) + 1
	sh.FrameHeightBits = int(r.Get(4)) + 1
	sh.MaxFrameWidth = int(r.Get(sh.FrameWidthBits)) + 1
	sh.MaxFrameHeight = int(r.Get(sh.FrameHeightBits)) + 1

	if !sh.ReducedStillHdr {
		sh.FrameIDNumbersPresent = r.Get(1) != 0
	}
	if sh.FrameIDNumbersPresent {
		sh.DeltaFrameIDLength = int(r.Get(4)) + 2
		sh.FrameIDLength = int(r.Get(3)) + sh.DeltaFrameIDLength + 1
	}

	sh.Use128x128Superblock = r.Get(1) != 0
	sh.EnableFilterIntra = r.Get(1) != 0
	sh.EnableIntraEdgeFilter = r.Get(1) != 0

	if sh.ReducedStillHdr {
		sh.SeqForceScreenContentTools = selectScreenContentTools
		sh.SeqForceIntegerMV = selectIntegerMV
		sh.OrderHintBits = 0
	} else {
		sh.EnableInterIntraCompound = r.Get(1) != 0
		sh.EnableMaskedCompound = r.Get(1) != 0
		sh.EnableWarpedMotion = r.Get(1) != 0
		sh.EnableDualFilter = r.Get(1) != 0
		sh.EnableOrderHint = r.Get(1) != 0
		if sh.EnableOrderHint {
			sh.EnableJntComp = r.Get(1) != 0
			sh.EnableRefFrameMVs = r.Get(1) != 0
		}
		seqChooseScreenContentTools := r.Get(1) != 0
		if seqChooseScreenContentTools {
			sh.SeqForceScreenContentTools = selectScreenContentTools
		} else {
			sh.SeqForceScreenContentTools = int(r.Get(1))
		}
		if sh.SeqForceScreenContentTools > 0 {
			seqChooseIntegerMV := r.Get(1) != 0
			if seqChooseIntegerMV {
				sh.SeqForceIntegerMV = selectIntegerMV
			} else {
				sh.SeqForceIntegerMV = int(r.Get(1))
			}
		} else {
			sh.SeqForceIntegerMV = selectIntegerMV
		}
		if sh.EnableOrderHint {
			sh.OrderHintBits = int(r.Get(3)) + 1
		}
	}

	sh.EnableSuperres = r.Get(1) != 0
	sh.EnableCdef = r.Get(1) != 0
	sh.EnableRestoration = r.Get(1) != 0

	if err := parseColorConfig(r, sh); err != nil {
		return nil, err
	}

	sh.FilmGrainParamsPresent = r.Get(1) != 0

	if err := r.Err(); err != nil {
		return nil, wrapf(ErrIOFailure, "parsing sequence header: %v", err)
	}
	return sh, nil
}

// parseColorConfig reads the color_config() syntax element embedded in the
// sequence header.
func parseColorConfig(r *bits.Reader, sh *SequenceHeader) error {
	highBitdepth := r.Get(1) != 0
	if sh.Profile == 2 && highBitdepth {
		twelveBit := r.Get(1) != 0
		if twelveBit {
			sh.BitDepth = 12
		} else {
			sh.BitDepth = 10
		}
	} else if highBitdepth {
		sh.BitDepth = 10
	} else {
		sh.BitDepth = 8
	}

	if sh.Profile == 1 {
		sh.Monochrome = false
	} else {
		sh.Monochrome = r.Get(1) != 0
	}

	colorDescriptionPresent := r.Get(1) != 0
	var colorPrimaries, transferCharacteristics, matrixCoefficients int
	if colorDescriptionPresent {
		colorPrimaries = int(r.Get(8))
		transferCharacteristics = int(r.Get(8))
		matrixCoefficients = int(r.Get(8))
	} else {
		colorPrimaries = 2 // CP_UNSPECIFIED
	}
	_ = colorPrimaries
	_ = transferCharacteristics

	if sh.Monochrome {
		sh.ColorRange = r.Get(1) != 0
		sh.SubsamplingX, sh.SubsamplingY = 1, 1
		return nil
	}

	srgb := colorPrimaries == 1 && transferCharacteristics == 13 && matrixCoefficients == 0
	if srgb {
		sh.ColorRange = true
		sh.SubsamplingX, sh.SubsamplingY = 0, 0
	} else {
		sh.ColorRange = r.Get(1) != 0
		switch sh.Profile {
		case 0:
			sh.SubsamplingX, sh.SubsamplingY = 1, 1
		case 1:
			sh.SubsamplingX, sh.SubsamplingY = 0, 0
		default:
			if sh.BitDepth == 12 {
				sh.SubsamplingX = int(r.Get(1))
				if sh.SubsamplingX != 0 {
					sh.SubsamplingY = int(r.Get(1))
				}
			} else {
				sh.SubsamplingX, sh.SubsamplingY = 1, 0
			}
		}
		if sh.SubsamplingX != 0 && sh.SubsamplingY != 0 {
			_ = r.Get(2) // chroma_sample_position
		}
	}
	sh.SeparateUVDeltaQ = r.Get(1) != 0
	return nil
}
