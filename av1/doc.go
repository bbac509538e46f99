// Package av1 implements the frame-level parsing and block-decoding core
// of an AV1 bitstream decoder: OBU framing, sequence and frame headers,
// the multisymbol arithmetic coder, neighbor-context tracking, the
// reference motion-vector engine, the recursive partition descender and
// block parser, and a two-pass, multi-threaded frame pipeline that hands
// parsed blocks to an external ReconOps collaborator for pixel
// reconstruction.
package av1
