package av1

import (
	"sync"
)

// FramePipeline drives one frame's two-pass decode: a symbol-parse pass
// that runs every tile's MSAC decode concurrently across a bounded worker
// pool, followed by a reconstruct pass handed to a ReconOps collaborator.
// Splitting the two passes lets a later frame's symbol parse start as soon
// as the tiles it depends on for context are available, without waiting on
// pixel-domain reconstruction of the same frame.
type FramePipeline struct {
	cfg    Settings
	recon  ReconOps
	log    Logger
	cdfPool map[int]*CDFContext // per-reference-slot saved end-of-frame CDF state
	cdfMu  sync.Mutex
}

// NewFramePipeline builds a pipeline that reconstructs through recon.
func NewFramePipeline(cfg Settings, recon ReconOps, log Logger) *FramePipeline {
	return &FramePipeline{cfg: cfg, recon: recon, log: log, cdfPool: make(map[int]*CDFContext)}
}

// DecodeFrame runs both passes for one frame: parsing tileData (the
// concatenated tile-group payload) against sh/fh, then reconstructing the
// resulting Picture through the pipeline's ReconOps.
func (fp *FramePipeline) DecodeFrame(sh *SequenceHeader, fh *FrameHeader, tileData []byte, refPics [7]*Picture) (*Picture, error) {
	pic, err := NewPicture(fp.cfg, fh.FrameWidth, fh.FrameHeight, sh.BitDepth)
	if err != nil {
		return nil, err
	}
	pic.OrderHint = fh.OrderHint
	pic.ShowableFrame = fh.ShowFrame || fh.ShowableFrame

	sbRows := sbRowCount(fh, sh)
	pic.BlockProgress = NewRowProgress(sbRows)
	pic.PixelProgress = NewRowProgress(sbRows)

	startCDF := fp.startCDF(fh)

	tiles, err := fp.buildTiles(sh, fh, tileData, startCDF)
	if err != nil {
		return nil, err
	}

	if err := fp.parseTilesConcurrently(tiles, fh, pic, refPics); err != nil {
		return nil, err
	}

	fp.saveCDF(fh, tiles)

	if err := fp.reconstruct(pic, fh, tiles, refPics); err != nil {
		return nil, err
	}
	return pic, nil
}

// sbRowCount returns the number of superblock rows spanning the frame,
// the unit the two-pass pipeline's row-progress counters advance in.
func sbRowCount(fh *FrameHeader, sh *SequenceHeader) int {
	sbSize := 64
	if sh.Use128x128Superblock {
		sbSize = 128
	}
	return (fh.FrameHeight + sbSize - 1) / sbSize
}

// startCDF resolves the frame's starting adaptation state: the primary
// reference frame's saved snapshot, or the sequence default when the frame
// has no usable primary reference (a keyframe, or error-resilient frame).
func (fp *FramePipeline) startCDF(fh *FrameHeader) *CDFContext {
	if fh.PrimaryRefFrame == primaryRefNone {
		return DefaultCDFContext()
	}
	fp.cdfMu.Lock()
	defer fp.cdfMu.Unlock()
	slot := fh.RefFrameIdx[fh.PrimaryRefFrame]
	if saved, ok := fp.cdfPool[slot]; ok {
		return saved
	}
	return DefaultCDFContext()
}

// saveCDF stores the decoded frame's ending CDF state, taken from whichever
// tile context_update_tile_id names, into every reference slot this frame
// will occupy, so a later frame naming this frame as its primary reference
// can inherit it.
func (fp *FramePipeline) saveCDF(fh *FrameHeader, tiles []*Tile) {
	if fh.DisableCdfUpdate || len(tiles) == 0 {
		return
	}
	idx := clip3(0, len(tiles)-1, fh.ContextUpdateTileID)
	final := tiles[idx].FinalCDF()
	fp.cdfMu.Lock()
	defer fp.cdfMu.Unlock()
	for slot := 0; slot < numRefFrames; slot++ {
		if fh.RefreshFrameFlags&(1<<uint(slot)) != 0 {
			fp.cdfPool[slot] = final
		}
	}
}

func (fp *FramePipeline) buildTiles(sh *SequenceHeader, fh *FrameHeader, tileData []byte, startCDF *CDFContext) ([]*Tile, error) {
	sbSize := 64
	if sh.Use128x128Superblock {
		sbSize = 128
	}
	miCols := (fh.FrameWidth + 3) / 4
	miRows := (fh.FrameHeight + 3) / 4

	numTiles := fh.TileCols * fh.TileRows
	payloads, err := splitTilePayloads(tileData, numTiles)
	if err != nil {
		return nil, err
	}

	tiles := make([]*Tile, 0, numTiles)
	idx := 0
	for tr := 0; tr < fh.TileRows; tr++ {
		for tc := 0; tc < fh.TileCols; tc++ {
			t := NewTile(payloads[idx], fh.TileColStarts[tc], fh.TileColStarts[tc+1],
				fh.TileRowStarts[tr], fh.TileRowStarts[tr+1], startCDF, fh, sh, miCols, miRows, sbSize)
			tiles = append(tiles, t)
			idx++
		}
	}
	return tiles, nil
}

// parseTilesConcurrently runs every tile's symbol-parse pass across a
// worker pool bounded by the configured tile-thread count, the same
// fixed-size-goroutine-pool shape the teacher's row-parallel image filter
// uses, generalized from a fixed row count to an arbitrary tile count. A
// shared rowTracker advances pic.BlockProgress once every tile spanning a
// given superblock row has finished that row, since a tile row band is
// covered by TileCols independent tiles.
func (fp *FramePipeline) parseTilesConcurrently(tiles []*Tile, fh *FrameHeader, pic *Picture, refPics [7]*Picture) error {
	tracker := newRowTracker(tiles, fh.TileCols, pic.BlockProgress)

	workers := fp.cfg.tileThreads()
	if workers > len(tiles) {
		workers = len(tiles)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, len(tiles))
	for i := range tiles {
		jobs <- i
	}
	close(jobs)

	errs := make([]error, len(tiles))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := tiles[i].Decode(pic, refPics, fp.recon, fp.log, tracker.rowDone); err != nil {
					errs[i] = err
					if fp.log != nil {
						fp.log.Error("tile decode failed", "tile", i, "error", err.Error())
					}
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// rowTracker counts, per global superblock row, how many of the tiles
// spanning that row have finished their symbol-parse pass, advancing a
// picture's BlockProgress once the count reaches the tile-column count for
// that row.
type rowTracker struct {
	mu        sync.Mutex
	remaining map[int]int
	progress  *RowProgress
}

func newRowTracker(tiles []*Tile, tileCols int, progress *RowProgress) *rowTracker {
	rem := make(map[int]int)
	for _, t := range tiles {
		for row := t.Row0; row < t.Row1; row++ {
			rem[row] = tileCols
		}
	}
	return &rowTracker{remaining: rem, progress: progress}
}

func (rt *rowTracker) rowDone(row int) {
	rt.mu.Lock()
	rt.remaining[row]--
	done := rt.remaining[row] <= 0
	rt.mu.Unlock()
	if done {
		rt.progress.Advance(row)
	}
}

// blockOwner pairs a parsed block with the tile whose neighbor context and
// superblock geometry it belongs to, so the row-ordered reconstruction
// pass can look up the right tile state for a block from any tile.
type blockOwner struct {
	tile *Tile
	blk  *Block
}

// reconstruct replays every tile's parsed blocks in superblock-row order
// (not tile-by-tile), invoking ReconOps for each block, then backing up
// prediction edges and filtering that row before advancing the picture's
// PixelProgress. Row ordering, rather than tile ordering, is what lets a
// later frame's inter prediction start consuming this frame's top rows
// before its bottom rows are reconstructed.
func (fp *FramePipeline) reconstruct(pic *Picture, fh *FrameHeader, tiles []*Tile, refPics [7]*Picture) error {
	sbRows := 0
	if pic.PixelProgress != nil {
		sbRows = pic.PixelProgress.Total()
	}

	byRow := make(map[int][]blockOwner)
	maxRow := 0
	for _, t := range tiles {
		for _, blk := range t.blocks {
			sbSize4 := 16
			if t.sh.Use128x128Superblock {
				sbSize4 = 32
			}
			row := blk.Row / sbSize4
			byRow[row] = append(byRow[row], blockOwner{tile: t, blk: blk})
			if row > maxRow {
				maxRow = row
			}
		}
	}
	if maxRow+1 > sbRows {
		sbRows = maxRow + 1
	}

	for row := 0; row < sbRows; row++ {
		for _, ow := range byRow[row] {
			if err := fp.reconstructBlock(pic, ow.tile, ow.blk, refPics); err != nil {
				return err
			}
		}
		if err := fp.recon.BackupIPredEdge(pic, row); err != nil {
			return err
		}
		if err := fp.recon.FilterSBRow(pic, fh, row); err != nil {
			return wrapf(ErrInvalidBitstream, "loop filter row %d: %v", row, err)
		}
		if pic.PixelProgress != nil {
			pic.PixelProgress.Advance(row)
		}
	}

	if fh.FilmGrain.ApplyGrain {
		if err := fp.recon.ApplyFilmGrain(pic, fh.FilmGrain); err != nil {
			return err
		}
	}
	if fh.UseSuperres {
		if err := fp.recon.Upscale(pic, fh); err != nil {
			return err
		}
	}
	return nil
}

func (fp *FramePipeline) reconstructBlock(pic *Picture, t *Tile, blk *Block, refPics [7]*Picture) error {
	if blk.IsInter {
		var refs [2]*Picture
		for i, rf := range blk.RefFrame {
			if rf >= 0 && int(rf) < len(refPics) {
				refs[i] = refPics[rf]
				if refs[i].PixelProgress != nil {
					row := blk.Row / 16
					refs[i].PixelProgress.WaitFor(row)
				}
			}
		}
		return fp.recon.ReconInter(pic, t.ctx, blk, refs)
	}
	return fp.recon.ReconIntra(pic, t.ctx, blk)
}
