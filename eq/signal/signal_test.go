package signal

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func TestPeak(t *testing.T) {
	if got := Peak([]float64{0.2, -0.9, 0.5}); got != 0.9 {
		t.Fatalf("Peak = %v, want 0.9", got)
	}

	if got := Peak(nil); got != 0 {
		t.Fatalf("Peak(nil) = %v, want 0", got)
	}
}

func TestRMS(t *testing.T) {
	// RMS of {3, -4} is sqrt((9+16)/2) = sqrt(12.5).
	want := math.Sqrt(12.5)
	if got := RMS([]float64{3, -4}); math.Abs(got-want) > eps {
		t.Fatalf("RMS = %v, want %v", got, want)
	}

	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
}

func TestNormalize_ScalesToTarget(t *testing.T) {
	in := []float64{0.1, -0.5, 0.25, 0}

	out, err := Normalize(in, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if got := Peak(out); math.Abs(got-1.0) > eps {
		t.Fatalf("peak after normalize = %v, want 1", got)
	}

	// Relative shape is preserved.
	if math.Abs(out[0]-0.2) > eps || math.Abs(out[2]-0.5) > eps {
		t.Fatalf("shape distorted: %v", out)
	}

	// Input is untouched.
	if in[1] != -0.5 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestNormalize_SilentBlockUnchanged(t *testing.T) {
	in := make([]float64, 16)

	out, err := Normalize(in, 0.5)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d: got %v, want 0", i, v)
		}
	}
}

func TestNormalize_EmptyBlock(t *testing.T) {
	out, err := Normalize(nil, 1.0)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestNormalize_InvalidTarget(t *testing.T) {
	for _, target := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Normalize([]float64{0.5}, target); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("target %g: err = %v, want ErrInvalidParameter", target, err)
		}
	}
}

func TestNormalizeRMS_ScalesToTarget(t *testing.T) {
	in := []float64{0.4, -0.4, 0.4, -0.4}

	out, err := NormalizeRMS(in, 0.1)
	if err != nil {
		t.Fatalf("NormalizeRMS: %v", err)
	}

	if got := RMS(out); math.Abs(got-0.1) > eps {
		t.Fatalf("RMS after normalize = %v, want 0.1", got)
	}
}

func TestNormalizeRMS_InvalidTarget(t *testing.T) {
	if _, err := NormalizeRMS([]float64{0.5}, -0.1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestApplyFade_Envelope(t *testing.T) {
	in := make([]float64, 20)
	for i := range in {
		in[i] = 1
	}

	out, err := ApplyFade(in, 5, 5)
	if err != nil {
		t.Fatalf("ApplyFade: %v", err)
	}

	// First sample scales by exactly 0, last ramp sample lands on exactly 0.
	if out[0] != 0 {
		t.Fatalf("out[0] = %v, want 0", out[0])
	}

	if out[len(out)-1] != 0 {
		t.Fatalf("out[last] = %v, want 0", out[len(out)-1])
	}

	// The middle is untouched.
	for i := 5; i < 15; i++ {
		if out[i] != 1 {
			t.Fatalf("sample %d: got %v, want 1", i, out[i])
		}
	}

	// The ramps are monotonic.
	for i := 1; i < 5; i++ {
		if out[i] <= out[i-1] {
			t.Fatalf("fade-in not increasing at %d: %v", i, out[:5])
		}
	}

	for i := 16; i < 20; i++ {
		if out[i] >= out[i-1] {
			t.Fatalf("fade-out not decreasing at %d: %v", i, out[15:])
		}
	}

	// Input is untouched.
	if in[0] != 1 || in[len(in)-1] != 1 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestApplyFade_ZeroLengthsCopyThrough(t *testing.T) {
	in := []float64{0.3, -0.6, 0.9}

	out, err := ApplyFade(in, 0, 0)
	if err != nil {
		t.Fatalf("ApplyFade: %v", err)
	}

	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("sample %d: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestApplyFade_Invalid(t *testing.T) {
	block := make([]float64, 10)

	cases := []struct {
		name            string
		fadeIn, fadeOut int
	}{
		{"negative fade-in", -1, 2},
		{"negative fade-out", 2, -1},
		{"fades exceed block", 6, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ApplyFade(block, tc.fadeIn, tc.fadeOut); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
