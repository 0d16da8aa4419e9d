package processor_test

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-eq/eq/processor"
)

func benchCascade(b *testing.B, numBands int) *processor.Processor {
	b.Helper()

	p, err := processor.New(48000)
	if err != nil {
		b.Fatal(err)
	}

	freqs := []float64{31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}
	for i := range numBands {
		if _, err := p.AddBand(freqs[i], 4, 1); err != nil {
			b.Fatal(err)
		}
	}

	return p
}

func BenchmarkProcessBlockInPlace(b *testing.B) {
	for _, bands := range []int{1, 5, 10} {
		b.Run(fmt.Sprintf("bands=%d", bands), func(b *testing.B) {
			p := benchCascade(b, bands)

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i%97) * 0.01
			}

			b.SetBytes(int64(len(buf) * 8))
			b.ResetTimer()

			for range b.N {
				p.ProcessBlockInPlace(buf)
			}
		})
	}
}

func BenchmarkFrequencyResponse(b *testing.B) {
	p := benchCascade(b, 10)

	b.ResetTimer()

	for range b.N {
		if _, _, _, err := p.FrequencyResponse(256, 20, 20000); err != nil {
			b.Fatal(err)
		}
	}
}
