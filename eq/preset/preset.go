// Package preset ships ready-made equalizer curves as static tables of
// band parameter triples. Presets live entirely outside the filtering
// core: applying one is nothing more than a sequence of AddBand calls on
// a processor.
package preset

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/eq/processor"
)

// ErrUnknownPreset is returned when a preset name is not in the table.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// BandParams is one band of a preset curve.
type BandParams struct {
	Frequency float64
	GainDB    float64
	Q         float64
}

// Preset is a named, ordered list of band parameter triples.
type Preset struct {
	Name        string
	Description string
	Bands       []BandParams
}

// isoFrequencies are the classic 10 octave-spaced graphic-EQ centers.
var isoFrequencies = [10]float64{31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

func tenBand(gains [10]float64) []BandParams {
	bands := make([]BandParams, len(isoFrequencies))
	for i, f := range isoFrequencies {
		bands[i] = BandParams{Frequency: f, GainDB: gains[i], Q: 1.0}
	}

	return bands
}

var presets = []Preset{
	{
		Name:        "flat",
		Description: "No adjustment",
		Bands:       tenBand([10]float64{}),
	},
	{
		Name:        "bass-boost",
		Description: "Enhanced low frequencies",
		Bands:       tenBand([10]float64{6, 5, 4, 2, 0, 0, 0, 0, 0, 0}),
	},
	{
		Name:        "treble-boost",
		Description: "Enhanced high frequencies",
		Bands:       tenBand([10]float64{0, 0, 0, 0, 0, 0, 2, 4, 5, 6}),
	},
	{
		Name:        "vocal",
		Description: "Emphasized mid-range presence",
		Bands:       tenBand([10]float64{-2, -1, 0, 2, 4, 4, 3, 1, 0, -1}),
	},
	{
		Name:        "rock",
		Description: "V-shaped curve with scooped mids",
		Bands:       tenBand([10]float64{5, 4, 2, 0, -2, -2, 0, 2, 4, 5}),
	},
}

// All returns every built-in preset in a stable order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)

	return out
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Apply adds every band of the preset to proc in order. The processor's
// existing bands are kept; call ClearBands first to replace a curve. On
// error (e.g. a preset band above the processor's Nyquist frequency) the
// already-added bands remain, mirroring the per-band atomicity of AddBand.
func Apply(p Preset, proc *processor.Processor) error {
	for _, b := range p.Bands {
		if _, err := proc.AddBand(b.Frequency, b.GainDB, b.Q); err != nil {
			return fmt.Errorf("preset %s: band %g Hz: %w", p.Name, b.Frequency, err)
		}
	}

	return nil
}
