package av1

import "testing"

func TestBlockContextSkipContext(t *testing.T) {
	c := NewBlockContext(64, 64, 64)
	if got := c.SkipContext(4, 4); got != 0 {
		t.Fatalf("SkipContext on fresh context = %d, want 0", got)
	}
	c.UpdateSkip(4, 4, 2, 2, true)
	if got := c.SkipContext(4, 4); got != 2 {
		t.Fatalf("SkipContext after both neighbors skipped = %d, want 2", got)
	}
}

func TestBlockContextClearLeftResetsOnly(t *testing.T) {
	c := NewBlockContext(64, 64, 64)
	c.UpdateSkip(4, 4, 1, 1, true)
	c.UpdateSkip(4, 0, 1, 1, true) // sets above col 4 (and left row 0)
	c.ClearLeft()
	if c.leftSkipAt(4) {
		t.Error("ClearLeft did not reset left strip")
	}
	if !c.aboveSkipAt(4) {
		t.Error("ClearLeft incorrectly reset above strip")
	}
}

func TestBlockContextPartitionContext(t *testing.T) {
	c := NewBlockContext(64, 64, 64)
	c.UpdatePartition(0, 0, 4, 4, 2)
	if got := c.PartitionContext(0, 0, 3); got == 0 {
		t.Error("expected nonzero partition context after a smaller neighbor split")
	}
}

func TestSegmentPredContextNoNeighbors(t *testing.T) {
	c := NewBlockContext(64, 64, 64)
	pred, agree := c.SegmentPredContext(-1, -1)
	if pred != 0 || !agree {
		t.Errorf("SegmentPredContext with no neighbors = (%d,%v), want (0,true)", pred, agree)
	}
}

func TestSegmentPredContextDisagreement(t *testing.T) {
	c := NewBlockContext(64, 64, 64)
	c.aboveSeg[4] = 2
	c.leftSeg[4] = 5
	pred, agree := c.SegmentPredContext(4, 4)
	if agree {
		t.Error("expected disagreement between differing above/left segment ids")
	}
	if pred != 2 {
		t.Errorf("predicted segment id = %d, want min(2,5)=2", pred)
	}
}
