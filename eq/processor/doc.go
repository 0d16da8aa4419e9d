// Package processor implements the multi-band equalizer cascade.
//
// A [Processor] owns an ordered set of peaking-EQ bands, all designed for
// the sample rate fixed at construction. Audio is pushed through the
// cascade in blocks of arbitrary size; each band keeps its own delay
// registers, so block boundaries introduce no discontinuities. The
// aggregate frequency response can be queried analytically for display
// without disturbing the filter state.
//
// A Processor is meant to be owned by a single audio context. It performs
// no locking: if band parameters are adjusted from a different goroutine
// than the one calling [Processor.ProcessBlockInPlace], the caller must
// serialize access externally.
package processor
