package av1

// Settings configures a Decoder. The zero value is valid and selects
// GOMAXPROCS-scaled defaults for concurrency and the built-in allocator for
// picture buffers, mirroring the zero-value-means-default convention used
// by the teacher's own pipeline configuration.
type Settings struct {
	// NFrameThreads bounds how many frames may be in flight across the
	// symbol-parse and reconstruct passes at once. 0 selects a default
	// derived from runtime.GOMAXPROCS.
	NFrameThreads uint

	// NTileThreads bounds how many tiles of a single frame may run their
	// symbol-parse pass concurrently. 0 selects a default derived from
	// runtime.GOMAXPROCS.
	NTileThreads uint

	// AllocPicture, when non-nil, is called instead of the built-in
	// allocator whenever a new reference-counted Picture buffer is
	// needed, letting a caller pool or pin memory.
	AllocPicture func(width, height int, bitDepth int) (*Picture, error)

	// ReleasePicture, when non-nil, is called in place of the built-in
	// deallocation path when a Picture's reference count reaches zero.
	ReleasePicture func(p *Picture)

	// Logger receives structured log lines from every component. When
	// nil, NewDecoder constructs a default logger writing to a rotating
	// file sink.
	Logger Logger

	// DisableFilmGrain skips film-grain parameter parsing entirely, for
	// callers that know their stream never signals it and want to avoid
	// the extra header bytes check.
	DisableFilmGrain bool
}

// frameThreads returns the effective frame-thread count, applying the
// default when the caller left it unset.
func (s Settings) frameThreads() int {
	if s.NFrameThreads == 0 {
		return defaultThreads()
	}
	return int(s.NFrameThreads)
}

// tileThreads returns the effective tile-thread count, applying the
// default when the caller left it unset.
func (s Settings) tileThreads() int {
	if s.NTileThreads == 0 {
		return defaultThreads()
	}
	return int(s.NTileThreads)
}
