package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestNew_InvalidSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 3, 100, 1000} {
		if _, err := New(size); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("New(%d): err = %v, want ErrInvalidParameter", size, err)
		}
	}
}

func TestNew_Sizes(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if a.FFTSize() != 1024 {
		t.Fatalf("FFTSize = %d, want 1024", a.FFTSize())
	}

	if a.NumBins() != 513 {
		t.Fatalf("NumBins = %d, want 513", a.NumBins())
	}
}

func TestBinFrequencies(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	got := a.BinFrequencies(48000)
	want := []float64{0, 6000, 12000, 18000, 24000}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestMagnitude_WrongBlockLength(t *testing.T) {
	a, err := New(256)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.Magnitude(make([]float64, 128)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestMagnitude_SineAtBinCenter(t *testing.T) {
	const (
		fftSize    = 1024
		sampleRate = 48000.0
		bin        = 64
		amplitude  = 0.5
	)

	a, err := New(fftSize)
	if err != nil {
		t.Fatal(err)
	}

	freq := float64(bin) * sampleRate / fftSize
	block := testutil.Sine(freq, sampleRate, amplitude, fftSize)

	mags, err := a.Magnitude(block)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	if len(mags) != a.NumBins() {
		t.Fatalf("len = %d, want %d", len(mags), a.NumBins())
	}

	testutil.RequireFinite(t, mags)

	peakBin := 0
	for k, m := range mags {
		if m > mags[peakBin] {
			peakBin = k
		}
	}

	if peakBin != bin {
		t.Fatalf("peak at bin %d, want %d", peakBin, bin)
	}

	// Amplitude calibration: the peak bin reads the sine's amplitude.
	if math.Abs(mags[bin]-amplitude) > 0.02 {
		t.Fatalf("peak magnitude = %v, want ~%v", mags[bin], amplitude)
	}
}

func TestMagnitude_DCBlock(t *testing.T) {
	const fftSize = 512

	a, err := New(fftSize)
	if err != nil {
		t.Fatal(err)
	}

	block := make([]float64, fftSize)
	for i := range block {
		block[i] = 0.25
	}

	mags, err := a.Magnitude(block)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(mags[0]-0.25) > 0.01 {
		t.Fatalf("DC magnitude = %v, want ~0.25", mags[0])
	}
}

func TestMagnitude_InputUntouched(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	block := testutil.Noise(13, 0.9, 64)
	orig := make([]float64, len(block))
	copy(orig, block)

	if _, err := a.Magnitude(block); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, block, orig, 0)
}

func TestMagnitudeDB_SilenceHitsFloor(t *testing.T) {
	a, err := New(128)
	if err != nil {
		t.Fatal(err)
	}

	db, err := a.MagnitudeDB(make([]float64, 128))
	if err != nil {
		t.Fatal(err)
	}

	for k, v := range db {
		if v != SilenceFloorDB {
			t.Fatalf("bin %d: got %v, want %v", k, v, SilenceFloorDB)
		}
	}
}

func TestMagnitudeDB_SineLevel(t *testing.T) {
	const (
		fftSize    = 1024
		sampleRate = 48000.0
		bin        = 32
	)

	a, err := New(fftSize)
	if err != nil {
		t.Fatal(err)
	}

	freq := float64(bin) * sampleRate / fftSize
	block := testutil.Sine(freq, sampleRate, 0.5, fftSize)

	db, err := a.MagnitudeDB(block)
	if err != nil {
		t.Fatal(err)
	}

	// A 0.5 amplitude sine sits at about -6 dBFS; the fast log conversion
	// is a display-grade approximation, so allow a generous margin.
	if math.Abs(db[bin]-(-6.02)) > 0.5 {
		t.Fatalf("level = %v dB, want ~-6 dB", db[bin])
	}
}
