package av1

import "github.com/ausocean/av1dec/av1/msac"

const maxPaletteSize = 8

// PaletteInfo holds a block's palette color table and the per-pixel color
// index map decoded for screen-content blocks coded with the palette tool.
type PaletteInfo struct {
	YColors  []uint16
	UVColors [][2]uint16
	ColorMap []uint8 // row-major, one index per pixel within the block
	W, H     int
}

// paletteCDF holds the adaptive tables driving color-index symbols, one per
// context class; colorMapContext picks the class from which of the left and
// above neighbors exist and whether their colors match.
type paletteCDF struct {
	cdfs [5][]uint16 // indexed by color-context class
}

func newPaletteCDF(size int) *paletteCDF {
	p := &paletteCDF{}
	for i := range p.cdfs {
		p.cdfs[i] = defaultCDF(size)
	}
	return p
}

// DecodeColorMap decodes a w x h color-index map using the wavefront scan
// order AV1 requires: a pixel's color context depends only on its left and
// above neighbors, which a top-left-to-bottom-right anti-diagonal sweep
// guarantees are already decoded.
func DecodeColorMap(dec *msac.Decoder, paletteSize, w, h int) []uint8 {
	pc := newPaletteCDF(paletteSize)
	m := make([]uint8, w*h)

	for sum := 0; sum <= (w-1)+(h-1); sum++ {
		for y := 0; y <= sum && y < h; y++ {
			x := sum - y
			if x < 0 || x >= w {
				continue
			}
			ctx := colorMapContext(m, w, x, y)
			cdf := pc.cdfs[ctx]
			sym := dec.DecodeSymbol(cdf)
			m[y*w+x] = uint8(sym)
		}
	}
	return m
}

// colorMapContext classifies a pixel's neighborhood into one of five
// buckets based on whether its left and above neighbors' colors match,
// mirroring AV1's get_palette_color_context class split.
func colorMapContext(m []uint8, w, x, y int) int {
	haveLeft := x > 0
	haveAbove := y > 0
	switch {
	case haveLeft && haveAbove:
		left := m[y*w+x-1]
		above := m[(y-1)*w+x]
		if left == above {
			return 0
		}
		return 1
	case haveLeft:
		return 2
	case haveAbove:
		return 3
	default:
		return 4
	}
}
