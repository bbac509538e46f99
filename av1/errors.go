package av1

import "github.com/pkg/errors"

// Sentinel error kinds a caller can test for with errors.Is, matching the
// decoder's recovery policy: a frame-scoped failure is reported against one
// of these kinds and never poisons state belonging to other frames.
var (
	// ErrInvalidBitstream marks a syntax violation in the coded data
	// itself (a reserved value, an out-of-range code, a header/partition
	// mismatch).
	ErrInvalidBitstream = errors.New("av1: invalid bitstream")

	// ErrOutOfMemory marks an allocation failure in the picture, CDF or
	// neighbor-context pools.
	ErrOutOfMemory = errors.New("av1: out of memory")

	// ErrUnsupportedProfile marks a syntactically valid but unimplemented
	// configuration (a profile, bit depth or tool combination this core
	// does not decode).
	ErrUnsupportedProfile = errors.New("av1: unsupported profile or configuration")

	// ErrReferenceMissing marks a frame that refers to a reference-frame
	// slot that hasn't been populated yet.
	ErrReferenceMissing = errors.New("av1: reference frame missing")

	// ErrIOFailure marks a failure reading the underlying byte source.
	ErrIOFailure = errors.New("av1: i/o failure")
)

// wrapf wraps err with kind as its errors.Is-testable cause and attaches a
// formatted message, the convention used throughout the parser and frame
// pipeline.
func wrapf(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}
