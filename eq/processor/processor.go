package processor

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/eq/biquad"
	"github.com/cwbudde/algo-eq/eq/design"
)

// ErrInvalidParameter is returned for out-of-range numeric input. It is the
// same sentinel used by eq/design, so a single errors.Is check covers both
// layers.
var ErrInvalidParameter = design.ErrInvalidParameter

// ErrBandNotFound is returned when a band handle is stale or unknown.
var ErrBandNotFound = errors.New("processor: band not found")

// Handle identifies a band within a Processor. Handles are never reused;
// removing one band does not invalidate the handles of the others.
type Handle int

// Params is the parameter triple of one peaking-EQ band.
type Params struct {
	Frequency float64 // center frequency in Hz
	GainDB    float64 // boost/cut in dB
	QFactor   float64 // bandwidth control
}

type band struct {
	handle  Handle
	params  Params
	section biquad.Section
}

// Processor is an ordered cascade of peaking-EQ bands sharing one sample
// rate. The zero value is not usable; construct with [New].
type Processor struct {
	sampleRate float64
	enabled    bool
	nextHandle Handle
	bands      []*band
}

// New creates an empty, enabled Processor for the given sample rate (Hz).
// The sample rate is fixed for the lifetime of the Processor; every band
// added later is designed for it.
func New(sampleRate float64) (*Processor, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %g", ErrInvalidParameter, sampleRate)
	}

	return &Processor{
		sampleRate: sampleRate,
		enabled:    true,
		nextHandle: 1,
	}, nil
}

// SampleRate returns the sample rate the Processor was constructed with.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// NumBands returns the number of configured bands.
func (p *Processor) NumBands() int { return len(p.bands) }

// Enabled reports whether the cascade is active. A disabled Processor
// passes audio through unchanged while keeping its bands configured.
func (p *Processor) Enabled() bool { return p.enabled }

// SetEnabled toggles the whole-cascade bypass. Band delay registers are
// left untouched in both directions.
func (p *Processor) SetEnabled(enabled bool) { p.enabled = enabled }

// AddBand designs a new peaking band and appends it to the cascade.
// On failure the band sequence is unchanged.
func (p *Processor) AddBand(frequency, gainDB, qFactor float64) (Handle, error) {
	coeffs, err := design.Peak(frequency, gainDB, qFactor, p.sampleRate)
	if err != nil {
		return 0, err
	}

	b := &band{
		handle: p.nextHandle,
		params: Params{Frequency: frequency, GainDB: gainDB, QFactor: qFactor},
	}
	b.section.SetCoefficients(coeffs)

	p.nextHandle++
	p.bands = append(p.bands, b)

	return b.handle, nil
}

// RemoveBand removes the referenced band from the cascade. The delay
// registers of the remaining bands are unaffected.
func (p *Processor) RemoveBand(h Handle) error {
	i := p.find(h)
	if i < 0 {
		return fmt.Errorf("%w: handle %d", ErrBandNotFound, h)
	}

	p.bands = append(p.bands[:i], p.bands[i+1:]...)

	return nil
}

// UpdateBand re-designs the referenced band in place. The update is atomic:
// on failure the previous coefficients stay active. Delay registers are
// preserved so adjusting a band mid-stream does not click.
func (p *Processor) UpdateBand(h Handle, frequency, gainDB, qFactor float64) error {
	i := p.find(h)
	if i < 0 {
		return fmt.Errorf("%w: handle %d", ErrBandNotFound, h)
	}

	coeffs, err := design.Peak(frequency, gainDB, qFactor, p.sampleRate)
	if err != nil {
		return err
	}

	b := p.bands[i]
	b.params = Params{Frequency: frequency, GainDB: gainDB, QFactor: qFactor}
	b.section.SetCoefficients(coeffs)

	return nil
}

// BandParams returns the parameter triple of the referenced band.
func (p *Processor) BandParams(h Handle) (Params, error) {
	i := p.find(h)
	if i < 0 {
		return Params{}, fmt.Errorf("%w: handle %d", ErrBandNotFound, h)
	}

	return p.bands[i].params, nil
}

// Handles returns the band handles in cascade (insertion) order.
func (p *Processor) Handles() []Handle {
	out := make([]Handle, len(p.bands))
	for i, b := range p.bands {
		out[i] = b.handle
	}

	return out
}

// ClearBands removes all bands, leaving an empty (pass-through) cascade.
func (p *Processor) ClearBands() {
	p.bands = nil
}

// ResetAllState zeroes the delay registers of every band. Band parameters
// and coefficients are unaffected.
func (p *Processor) ResetAllState() {
	for _, b := range p.bands {
		b.section.Reset()
	}
}

// ProcessBlockInPlace filters buf through the cascade in place. Each
// sample passes through every band before the next sample is read, and
// every band's delay registers advance, so consecutive calls continue the
// stream seamlessly. Zero-alloc; safe for a real-time callback.
//
// A disabled Processor leaves buf untouched.
func (p *Processor) ProcessBlockInPlace(buf []float64) {
	if !p.enabled || len(p.bands) == 0 {
		return
	}

	for i, x := range buf {
		for _, b := range p.bands {
			x = b.section.ProcessSample(x)
		}

		buf[i] = x
	}
}

// ProcessBlock filters input through the cascade and returns a new slice
// of the same length. The caller's buffer is never modified. An empty
// input yields an empty output; a disabled Processor returns a copy of
// the input.
func (p *Processor) ProcessBlock(input []float64) []float64 {
	out := make([]float64, len(input))
	copy(out, input)
	p.ProcessBlockInPlace(out)

	return out
}

func (p *Processor) find(h Handle) int {
	for i, b := range p.bands {
		if b.handle == h {
			return i
		}
	}

	return -1
}
