package av1

import (
	"runtime"

	"golang.org/x/exp/constraints"
)

// defaultThreads returns the concurrency default used whenever a Settings
// thread count is left at zero.
func defaultThreads() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// clip3 clamps x to [lo,hi], generalizing the teacher's Clip3/Clip1y/Clipc
// trio into one function shared by the 8-bit and 10/12-bit pixel paths.
func clip3[T constraints.Ordered](lo, hi, x T) T {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// boolLog2 returns floor(log2(x)) for x>0, and 0 for x==0, the same
// bit-scan the msac package's adaptation-rate schedule uses.
func boolLog2(x uint) uint {
	var s uint
	for x > 1 {
		x >>= 1
		s++
	}
	return s
}

// ceilLog2 returns the number of bits needed to represent values in
// [0,n), i.e. ceil(log2(n)), used for the frame header's variable-width
// context_update_tile_id field.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	bits := 0
	for (1 << uint(bits)) < n {
		bits++
	}
	return bits
}
