// Package spectrum measures the magnitude spectrum of audio blocks for
// visualization next to the analytic equalizer response.
//
// An [Analyzer] owns an FFT plan, a Hann window and scratch buffers for a
// fixed transform size. Magnitudes are amplitude-calibrated: a full-scale
// sine at a bin center reports a magnitude of 1 (0 dB).
package spectrum
