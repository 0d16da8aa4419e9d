package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidParameter is returned for out-of-range arguments.
var ErrInvalidParameter = errors.New("signal: invalid parameter")

// Peak returns the maximum absolute sample value in the block.
func Peak(samples []float64) float64 {
	peak := 0.0

	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// RMS returns the root-mean-square level of the block, 0 for an empty block.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(samples)))
}

// Normalize scales the block so its peak absolute value equals targetPeak
// and returns the result as a new slice. A silent block is returned as an
// unchanged copy, avoiding a division by zero.
func Normalize(samples []float64, targetPeak float64) ([]float64, error) {
	if targetPeak <= 0 || math.IsNaN(targetPeak) || math.IsInf(targetPeak, 0) {
		return nil, fmt.Errorf("%w: target peak must be > 0, got %g", ErrInvalidParameter, targetPeak)
	}

	return scaleToward(samples, Peak(samples), targetPeak), nil
}

// NormalizeRMS scales the block so its RMS level equals targetRMS and
// returns the result as a new slice. A silent block is returned as an
// unchanged copy.
func NormalizeRMS(samples []float64, targetRMS float64) ([]float64, error) {
	if targetRMS <= 0 || math.IsNaN(targetRMS) || math.IsInf(targetRMS, 0) {
		return nil, fmt.Errorf("%w: target RMS must be > 0, got %g", ErrInvalidParameter, targetRMS)
	}

	return scaleToward(samples, RMS(samples), targetRMS), nil
}

func scaleToward(samples []float64, level, target float64) []float64 {
	out := make([]float64, len(samples))

	if level == 0 {
		copy(out, samples)
		return out
	}

	vecmath.ScaleBlock(out, samples, target/level)

	return out
}

// ApplyFade applies a linear ramp from 0 to 1 over the first fadeIn
// samples and from 1 to 0 over the last fadeOut samples, leaving the
// middle untouched, and returns the result as a new slice. The two ramps
// must fit in the block without overlapping.
func ApplyFade(samples []float64, fadeIn, fadeOut int) ([]float64, error) {
	if fadeIn < 0 || fadeOut < 0 {
		return nil, fmt.Errorf("%w: fade lengths must be >= 0, got %d/%d", ErrInvalidParameter, fadeIn, fadeOut)
	}

	if fadeIn+fadeOut > len(samples) {
		return nil, fmt.Errorf("%w: fades (%d+%d) exceed block length %d", ErrInvalidParameter, fadeIn, fadeOut, len(samples))
	}

	out := make([]float64, len(samples))
	copy(out, samples)

	if fadeIn > 0 {
		vecmath.MulBlockInPlace(out[:fadeIn], rampUp(fadeIn))
	}

	if fadeOut > 0 {
		vecmath.MulBlockInPlace(out[len(out)-fadeOut:], rampDown(fadeOut))
	}

	return out, nil
}

// rampUp returns n envelope values climbing linearly from exactly 0 to
// exactly 1, endpoints included. A single-sample ramp is {0}.
func rampUp(n int) []float64 {
	env := make([]float64, n)
	if n == 1 {
		return env
	}

	for i := range env {
		env[i] = float64(i) / float64(n-1)
	}

	return env
}

// rampDown returns n envelope values falling linearly from exactly 1 to
// exactly 0, endpoints included. A single-sample ramp is {1}.
func rampDown(n int) []float64 {
	env := make([]float64, n)
	if n == 1 {
		env[0] = 1
		return env
	}

	for i := range env {
		env[i] = float64(n-1-i) / float64(n-1)
	}

	return env
}
