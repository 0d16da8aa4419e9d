package processor

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FrequencyResponse evaluates the aggregate transfer function of the
// cascade, i.e. the product of every band's analytic biquad response, at
// numPoints frequencies between minFreq and maxFreq (Hz).
//
// The grid is logarithmically spaced; when minFreq is 0 a linear grid is
// used instead, since a log grid cannot include 0. Magnitudes are in dB
// (20*log10|H|), phases in degrees. An empty cascade reports 0 dB and 0
// degrees everywhere.
//
// This is a pure query evaluated at z = e^jw: no band's delay registers
// are touched. The response reflects the configured bands even while the
// Processor is bypassed via [Processor.SetEnabled].
func (p *Processor) FrequencyResponse(numPoints int, minFreq, maxFreq float64) (freqs, magDB, phaseDeg []float64, err error) {
	if numPoints < 2 {
		return nil, nil, nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidParameter, numPoints)
	}

	if minFreq < 0 || math.IsNaN(minFreq) {
		return nil, nil, nil, fmt.Errorf("%w: min frequency must be >= 0, got %g", ErrInvalidParameter, minFreq)
	}

	nyquist := p.sampleRate / 2
	if maxFreq > nyquist || math.IsNaN(maxFreq) {
		return nil, nil, nil, fmt.Errorf("%w: max frequency must be <= Nyquist (%g), got %g", ErrInvalidParameter, nyquist, maxFreq)
	}

	if minFreq >= maxFreq {
		return nil, nil, nil, fmt.Errorf("%w: min frequency %g must be below max frequency %g", ErrInvalidParameter, minFreq, maxFreq)
	}

	freqs = frequencyGrid(numPoints, minFreq, maxFreq)
	magDB = make([]float64, numPoints)
	phaseDeg = make([]float64, numPoints)

	for i, f := range freqs {
		h := complex(1, 0)
		for _, b := range p.bands {
			h *= b.section.Response(f, p.sampleRate)
		}

		magDB[i] = 20 * math.Log10(cmplx.Abs(h))
		phaseDeg[i] = cmplx.Phase(h) * 180 / math.Pi
	}

	return freqs, magDB, phaseDeg, nil
}

func frequencyGrid(numPoints int, minFreq, maxFreq float64) []float64 {
	freqs := make([]float64, numPoints)
	last := float64(numPoints - 1)

	if minFreq > 0 {
		ratio := maxFreq / minFreq
		for i := range freqs {
			freqs[i] = minFreq * math.Pow(ratio, float64(i)/last)
		}
	} else {
		step := (maxFreq - minFreq) / last
		for i := range freqs {
			freqs[i] = minFreq + step*float64(i)
		}
	}

	// Pin the endpoint to the exact bound.
	freqs[numPoints-1] = maxFreq

	return freqs
}
