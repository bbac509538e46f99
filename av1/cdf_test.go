package av1

import "testing"

func TestDefaultCDFContextPartitionMonotonic(t *testing.T) {
	c := DefaultCDFContext()
	cdf := c.Partition(2, 0)
	for i := 1; i < len(cdf)-1; i++ {
		if cdf[i] > cdf[i-1] {
			t.Fatalf("default partition cdf not decreasing at %d: %v", i, cdf)
		}
	}
}

func TestCDFContextCloneIsIndependent(t *testing.T) {
	c := DefaultCDFContext()
	clone := c.Clone()
	clone.Skip(0)[0] = 12345
	if c.Skip(0)[0] == 12345 {
		t.Fatal("Clone shares backing storage with the original")
	}
}

func TestCDFContextBoundsClip(t *testing.T) {
	c := DefaultCDFContext()
	if c.Skip(-5) == nil || c.Skip(500) == nil {
		t.Fatal("out-of-range context indices should clip, not return nil")
	}
}
