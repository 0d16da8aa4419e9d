package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidParameter is returned for bad analyzer configuration or input.
var ErrInvalidParameter = errors.New("spectrum: invalid parameter")

// Analyzer computes amplitude spectra of fixed-size sample blocks.
// It reuses its scratch buffers between calls and is therefore not safe
// for concurrent use.
type Analyzer struct {
	fftSize    int
	plan       *algofft.Plan[complex128]
	window     []float64
	windowGain float64

	in      []complex128
	out     []complex128
	scratch []float64 // windowed input, then re/im halves for unpacking
}

// New creates an Analyzer for the given FFT size, which must be a power
// of two and at least 2.
func New(fftSize int) (*Analyzer, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: FFT size must be a power of two >= 2, got %d", ErrInvalidParameter, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	// Periodic Hann window; its coherent gain is exactly 0.5.
	win := make([]float64, fftSize)
	sum := 0.0

	for i := range win {
		win[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(fftSize)))
		sum += win[i]
	}

	bins := fftSize/2 + 1

	return &Analyzer{
		fftSize:    fftSize,
		plan:       plan,
		window:     win,
		windowGain: sum / float64(fftSize),
		in:         make([]complex128, fftSize),
		out:        make([]complex128, fftSize),
		scratch:    make([]float64, fftSize+2*bins),
	}, nil
}

// FFTSize returns the configured transform size.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// NumBins returns the number of spectrum bins (FFTSize/2 + 1).
func (a *Analyzer) NumBins() int { return a.fftSize/2 + 1 }

// BinFrequencies returns the center frequency of each bin for the given
// sample rate, from DC up to Nyquist.
func (a *Analyzer) BinFrequencies(sampleRate float64) []float64 {
	bins := a.NumBins()
	out := make([]float64, bins)

	for k := range out {
		out[k] = float64(k) * sampleRate / float64(a.fftSize)
	}

	return out
}

// Magnitude returns the amplitude spectrum of the block: NumBins values
// from DC to Nyquist. The block length must equal FFTSize. The input is
// not modified.
func (a *Analyzer) Magnitude(block []float64) ([]float64, error) {
	if len(block) != a.fftSize {
		return nil, fmt.Errorf("%w: block length %d, want FFT size %d", ErrInvalidParameter, len(block), a.fftSize)
	}

	windowed := a.scratch[:a.fftSize]
	vecmath.MulBlock(windowed, block, a.window)

	for i, v := range windowed {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := a.NumBins()
	re := a.scratch[a.fftSize : a.fftSize+bins]
	im := a.scratch[a.fftSize+bins:]

	for k := range bins {
		re[k] = real(a.out[k])
		im[k] = imag(a.out[k])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	// Undo FFT length and window gain; interior bins carry both the
	// positive- and negative-frequency halves.
	norm := float64(a.fftSize) * a.windowGain
	for k := range mags {
		mags[k] /= norm
		if k > 0 && k < bins-1 {
			mags[k] *= 2
		}
	}

	return mags, nil
}

// MagnitudeDB returns the amplitude spectrum in dBFS. Magnitudes below
// the silence floor are reported as [SilenceFloorDB].
func (a *Analyzer) MagnitudeDB(block []float64) ([]float64, error) {
	mags, err := a.Magnitude(block)
	if err != nil {
		return nil, err
	}

	for k, m := range mags {
		mags[k] = dbFromAmplitude(m)
	}

	return mags, nil
}
