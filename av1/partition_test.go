package av1

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/av1dec/av1/msac"
)

// recordingParser is a stub BlockParser that records every leaf it was
// asked to parse, so the descender's recursion can be checked without
// needing a real bitstream.
type recordingParser struct {
	calls []Block
}

func (p *recordingParser) ParseBlock(col, row, w4, h4 int) (*Block, error) {
	blk := &Block{Col: col, Row: row, W4: w4, H4: h4}
	p.calls = append(p.calls, *blk)
	return blk, nil
}

// TestDescendSuperblockForcedSplit exercises the frame-edge restriction
// path: at every level the block straddles both the bottom and right
// mi-grid edge, so the descender is forced into PARTITION_SPLIT down to a
// single 4x4 leaf without ever touching the entropy decoder.
func TestDescendSuperblockForcedSplit(t *testing.T) {
	dec := msac.NewDecoder(nil)
	ctx := NewBlockContext(1, 1, 8)
	cdfs := DefaultCDFContext()
	parser := &recordingParser{}
	sh := &SequenceHeader{}
	d := NewPartitionDescender(dec, ctx, cdfs, parser, sh, 1, 1)

	blocks, err := d.DescendSuperblock(0, 0, 2)
	if err != nil {
		t.Fatalf("DescendSuperblock: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d leaves, want 1", len(blocks))
	}
	want := Block{Col: 0, Row: 0, W4: 1, H4: 1}
	if diff := cmp.Diff(want, *blocks[0]); diff != "" {
		t.Errorf("leaf mismatch (-want +got):\n%s", diff)
	}
	if len(parser.calls) != 1 {
		t.Fatalf("ParseBlock called %d times, want 1", len(parser.calls))
	}
}

func TestDescendSuperblockOutOfBoundsReturnsNothing(t *testing.T) {
	dec := msac.NewDecoder(nil)
	ctx := NewBlockContext(4, 4, 8)
	cdfs := DefaultCDFContext()
	parser := &recordingParser{}
	sh := &SequenceHeader{}
	d := NewPartitionDescender(dec, ctx, cdfs, parser, sh, 4, 4)

	blocks, err := d.DescendSuperblock(10, 10, 2)
	if err != nil {
		t.Fatalf("DescendSuperblock: %v", err)
	}
	if blocks != nil {
		t.Errorf("expected no blocks for an out-of-bounds superblock, got %d", len(blocks))
	}
	if len(parser.calls) != 0 {
		t.Errorf("ParseBlock should not have been called, got %d calls", len(parser.calls))
	}
}

func TestDecodePartitionBaseCaseIsNone(t *testing.T) {
	dec := msac.NewDecoder(nil)
	ctx := NewBlockContext(8, 8, 8)
	cdfs := DefaultCDFContext()
	sh := &SequenceHeader{}
	d := NewPartitionDescender(dec, ctx, cdfs, &recordingParser{}, sh, 8, 8)

	got, err := d.decodePartition(0, 0, 1, true, true)
	if err != nil {
		t.Fatalf("decodePartition: %v", err)
	}
	if got != PartitionNone {
		t.Errorf("decodePartition at bsize4<=1 = %d, want PartitionNone", got)
	}
}
