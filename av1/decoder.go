package av1

import (
	"sync"

	"github.com/ausocean/av1dec/av1/bits"
)

// Decoder is the top-level entry point: push coded temporal units in, pull
// decoded Pictures out. It owns the sequence header, the eight
// reference-frame slots, and the frame pipeline's concurrency pool.
type Decoder struct {
	cfg      Settings
	log      Logger
	pipeline *FramePipeline
	sessionID string

	mu      sync.Mutex
	sh      *SequenceHeader
	refPics [numRefFrames]*Picture

	sem     chan struct{}
	wg      sync.WaitGroup
	outputs chan *Picture
	errs    chan error
}

// NewDecoder builds a Decoder. recon receives every parsed block for pixel
// reconstruction; when nil, NopReconOps is used, which is sufficient for
// callers that only want the parsed syntax tree.
func NewDecoder(cfg Settings, recon ReconOps) *Decoder {
	if recon == nil {
		recon = NopReconOps{}
	}
	log := cfg.Logger
	if log == nil {
		log = defaultLogger()
	}
	d := &Decoder{
		cfg:       cfg,
		log:       log,
		sessionID: sessionID(),
		sem:       make(chan struct{}, cfg.frameThreads()),
		outputs:   make(chan *Picture, cfg.frameThreads()*2),
		errs:      make(chan error, 1),
	}
	d.pipeline = NewFramePipeline(cfg, recon, log)
	return d
}

// Outputs returns the channel decoded, showable Pictures are delivered on.
// Each Picture is sent when its own decode finishes; with more than one
// frame in flight, that order can differ from temporal-unit order.
func (d *Decoder) Outputs() <-chan *Picture {
	return d.outputs
}

// PushTemporalUnit parses and decodes every OBU in one temporal unit's
// worth of data, dispatching the frame's pipeline run on the decoder's
// bounded worker pool. It returns once the frame has been queued for
// decode, not once decoding has finished; call Wait or drain Outputs to
// observe completion.
func (d *Decoder) PushTemporalUnit(data []byte) error {
	r := bits.NewReader(data)
	var fh *FrameHeader
	var tileData []byte

	for !r.EOF() && r.BytePos() < len(data) {
		hdr, err := ParseOBUHeader(r)
		if err != nil {
			return err
		}
		switch hdr.Type {
		case obuSequenceHeader:
			start := r.BytePos()
			sh, err := ParseSequenceHeader(r)
			if err != nil {
				return err
			}
			d.mu.Lock()
			d.sh = sh
			d.mu.Unlock()
			seekToOBUEnd(r, start, hdr.Size)

		case obuTemporalDelimiter:
			// No payload.

		case obuFrameHeader, obuRedundantFrameHeader:
			d.mu.Lock()
			sh := d.sh
			d.mu.Unlock()
			if sh == nil {
				return wrapf(ErrInvalidBitstream, "frame header before sequence header")
			}
			start := r.BytePos()
			fh, err = ParseFrameHeader(r, sh, d.cfg)
			if err != nil {
				return err
			}
			seekToOBUEnd(r, start, hdr.Size)

		case obuTileGroup:
			start := r.BytePos()
			end := start + hdr.Size
			if end > len(data) {
				end = len(data)
			}
			tileData = data[start:end]
			r.SkipBytes(hdr.Size)

		case obuFrame:
			d.mu.Lock()
			sh := d.sh
			d.mu.Unlock()
			if sh == nil {
				return wrapf(ErrInvalidBitstream, "frame obu before sequence header")
			}
			hdrStart := r.BytePos()
			fh, err = ParseFrameHeader(r, sh, d.cfg)
			if err != nil {
				return err
			}
			r.Flush()
			headerBytes := r.BytePos() - hdrStart
			remaining := hdr.Size - headerBytes
			tgStart := r.BytePos()
			tgEnd := tgStart + remaining
			if tgEnd > len(data) {
				tgEnd = len(data)
			}
			tileData = data[tgStart:tgEnd]
			r.SkipBytes(remaining)

		case obuMetadata:
			SkipMetadata(r, hdr)

		default:
			r.SkipBytes(hdr.Size)
		}
	}

	if fh == nil || tileData == nil {
		return nil // temporal unit carried no frame to decode (e.g. a bare sequence header)
	}
	return d.dispatch(fh, tileData)
}

// seekToOBUEnd realigns r to the byte immediately past an OBU whose payload
// started at start and is size bytes long, covering any trailing_bits
// padding a syntax parser left unconsumed.
func seekToOBUEnd(r *bits.Reader, start, size int) {
	r.Flush()
	if consumed := r.BytePos() - start; consumed < size {
		r.SkipBytes(size - consumed)
	}
}

func (d *Decoder) dispatch(fh *FrameHeader, tileData []byte) error {
	d.mu.Lock()
	sh := d.sh
	refs := d.refPics
	d.mu.Unlock()

	var frameRefs [7]*Picture
	for i, slot := range fh.RefFrameIdx {
		if slot >= 0 && slot < len(refs) {
			frameRefs[i] = refs[slot]
		}
	}

	d.sem <- struct{}{}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.sem }()

		pic, err := d.pipeline.DecodeFrame(sh, fh, tileData, frameRefs)
		if err != nil {
			d.log.Error("frame decode failed", "session", d.sessionID, "error", err.Error())
			select {
			case d.errs <- err:
			default:
			}
			return
		}
		d.updateRefs(fh, pic)
		if pic.ShowableFrame {
			d.outputs <- pic
		}
	}()
	return nil
}

func (d *Decoder) updateRefs(fh *FrameHeader, pic *Picture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i < numRefFrames; i++ {
		if fh.RefreshFrameFlags&(1<<uint(i)) == 0 {
			continue
		}
		if d.refPics[i] != nil {
			d.refPics[i].Release(d.cfg)
		}
		d.refPics[i] = pic.Ref()
	}
}

// Wait blocks until every dispatched frame has finished decoding, then
// closes Outputs.
func (d *Decoder) Wait() error {
	d.wg.Wait()
	close(d.outputs)
	select {
	case err := <-d.errs:
		return err
	default:
		return nil
	}
}
