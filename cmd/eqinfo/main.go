// Command eqinfo prints the band table and aggregate frequency response
// of a built-in equalizer preset.
//
// Usage:
//
//	eqinfo [flags] [preset-name]
//
// Without arguments it uses the "flat" preset.
//
// Examples:
//
//	eqinfo -list
//	eqinfo bass-boost
//	eqinfo -rate 48000 -points 16 -min 20 -max 20000 rock
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/eq/preset"
	"github.com/cwbudde/algo-eq/eq/processor"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	points := flag.Int("points", 24, "number of frequency response points")
	minFreq := flag.Float64("min", 20, "lowest response frequency in Hz")
	maxFreq := flag.Float64("max", 20000, "highest response frequency in Hz")
	list := flag.Bool("list", false, "list available presets")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags] [preset-name]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the band table and frequency response of an equalizer preset.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		listPresets()
		return
	}

	name := "flat"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	if err := run(name, *rate, *points, *minFreq, *maxFreq); err != nil {
		fmt.Fprintln(os.Stderr, "eqinfo:", err)
		os.Exit(1)
	}
}

func listPresets() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBANDS\tDESCRIPTION")

	for _, p := range preset.All() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, len(p.Bands), p.Description)
	}

	w.Flush()
}

func run(name string, rate float64, points int, minFreq, maxFreq float64) error {
	p, err := preset.Lookup(name)
	if err != nil {
		return err
	}

	proc, err := processor.New(rate)
	if err != nil {
		return err
	}

	if err := preset.Apply(p, proc); err != nil {
		return err
	}

	fmt.Printf("Preset %s (%s), %d bands at %g Hz\n\n", p.Name, p.Description, proc.NumBands(), rate)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "BAND\tFREQ (Hz)\tGAIN (dB)\tQ\t")

	for i, h := range proc.Handles() {
		params, err := proc.BandParams(h)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%.0f\t%+.1f\t%.2f\t\n", i+1, params.Frequency, params.GainDB, params.QFactor)
	}

	w.Flush()
	fmt.Println()

	freqs, magDB, phaseDeg, err := proc.FrequencyResponse(points, minFreq, maxFreq)
	if err != nil {
		return err
	}

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "FREQ (Hz)\tMAG (dB)\tPHASE (deg)\t")

	for i := range freqs {
		fmt.Fprintf(w, "%.1f\t%+.2f\t%+.1f\t\n", freqs[i], magDB[i], phaseDeg[i])
	}

	return w.Flush()
}
