// Package biquad provides the biquad (second-order IIR) runtime used by the
// equalizer cascade.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]: each output sample is computed from the
// current input, the two most recent inputs and the two most recent outputs.
// The delay registers persist across blocks, so a stream can be filtered in
// arbitrary block sizes without discontinuities at the boundaries.
//
// This package provides the processing runtime and the analytic frequency
// response only. Coefficient design (peaking EQ) lives in eq/design.
package biquad
