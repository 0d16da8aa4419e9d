package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/eq/biquad"
)

// ErrInvalidParameter is returned when a design parameter is out of range
// or not finite.
var ErrInvalidParameter = errors.New("design: invalid parameter")

// Peak designs a peaking-EQ biquad at freq (Hz) with gain in dB and
// quality factor q, for the given sample rate.
//
// The design is the standard RBJ peaking formula: with w0 = 2*pi*freq/rate,
// A = 10^(gainDB/40) and alpha = sin(w0)/(2*q), the section is normalized
// so the leading denominator coefficient is 1. A gain of 0 dB yields the
// identity filter.
//
// Valid inputs: sampleRate > 0, 0 < freq < sampleRate/2, q > 0, and gainDB
// finite. gainDB is otherwise unbounded; clamping to a usable range is the
// caller's policy.
func Peak(freq, gainDB, q, sampleRate float64) (biquad.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return biquad.Coefficients{}, fmt.Errorf("%w: q factor must be > 0, got %g", ErrInvalidParameter, q)
	}

	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return biquad.Coefficients{}, fmt.Errorf("%w: gain must be finite, got %g", ErrInvalidParameter, gainDB)
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizedW0(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate must be > 0, got %g", ErrInvalidParameter, sampleRate)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) {
		return 0, fmt.Errorf("%w: frequency must be in (0, %g), got %g", ErrInvalidParameter, nyquist, freq)
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) (biquad.Coefficients, error) {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}, fmt.Errorf("%w: degenerate design (a0 = %g)", ErrInvalidParameter, a0)
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, nil
}
