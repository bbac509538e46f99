package av1

// ReconOps is the external collaborator that turns this package's parsed
// syntax (Block, FrameHeader, Picture side information) into reconstructed
// pixels. The method names and call shape follow the frame pipeline's
// two-pass discipline directly: ReadCoefBlocks runs during the symbol-parse
// pass and never touches a pixel, while ReconIntra/ReconInter run during the
// row-ordered reconstruct pass and may read reference samples. Keeping this
// behind an interface matches this core's charter of producing a complete
// symbol-level decode of the bitstream without owning the pixel pipeline.
type ReconOps interface {
	// ReadCoefBlocks decodes blk's residual coefficients into a pass-1
	// scratch buffer owned by the implementation; no pixels are touched.
	// Called once per block, in parse order, as the tile's MSAC decoder
	// visits it.
	ReadCoefBlocks(ctx *BlockContext, blk *Block) error

	// ReconIntra writes blk's reconstructed intra samples into pic,
	// combining prediction with the residual ReadCoefBlocks already
	// decoded for it.
	ReconIntra(pic *Picture, ctx *BlockContext, blk *Block) error

	// ReconInter writes blk's reconstructed inter samples into pic using
	// its motion vectors and reference pictures. May suspend on a
	// reference's row-progress counter before reading its samples.
	ReconInter(pic *Picture, ctx *BlockContext, blk *Block, refs [2]*Picture) error

	// FilterSBRow applies deblocking, CDEF and loop restoration to one
	// superblock row of pic once every block in that row has been
	// reconstructed, then the caller advances the row's pixel-progress
	// counter.
	FilterSBRow(pic *Picture, fh *FrameHeader, sbRow int) error

	// BackupIPredEdge snapshots the pre-filter edge samples of sbRow that
	// the next row's intra prediction needs, called immediately before
	// FilterSBRow for the same row.
	BackupIPredEdge(pic *Picture, sbRow int) error

	// ApplyFilmGrain synthesizes and applies film grain to pic per
	// params, if params.ApplyGrain is set.
	ApplyFilmGrain(pic *Picture, params FilmGrainParams) error

	// Upscale performs the super-resolution horizontal upscale signalled
	// by fh, if fh.UseSuperres is set.
	Upscale(pic *Picture, fh *FrameHeader) error
}

// NopReconOps is a ReconOps that does nothing, useful for tests and for
// callers that only want the parsed syntax tree (e.g. a bitstream
// analyzer) without paying for pixel reconstruction.
type NopReconOps struct{}

func (NopReconOps) ReadCoefBlocks(*BlockContext, *Block) error                 { return nil }
func (NopReconOps) ReconIntra(*Picture, *BlockContext, *Block) error          { return nil }
func (NopReconOps) ReconInter(*Picture, *BlockContext, *Block, [2]*Picture) error { return nil }
func (NopReconOps) FilterSBRow(*Picture, *FrameHeader, int) error             { return nil }
func (NopReconOps) BackupIPredEdge(*Picture, int) error                      { return nil }
func (NopReconOps) ApplyFilmGrain(*Picture, FilmGrainParams) error           { return nil }
func (NopReconOps) Upscale(*Picture, *FrameHeader) error                     { return nil }
