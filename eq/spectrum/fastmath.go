package spectrum

import "github.com/meko-christian/algo-approx"

// SilenceFloorDB is the level reported for bins at or below the silence
// threshold, keeping display code free of -Inf handling.
const SilenceFloorDB = -130.0

// ln10 is the natural logarithm of 10, for log base conversion.
const ln10 = 2.302585092994045684017991454684

// silenceFloor is the amplitude corresponding to SilenceFloorDB.
const silenceFloor = 3.1622776601683794e-7 // 10^(-130/20)

// dbFromAmplitude converts a linear amplitude to dB using the fast
// logarithm approximation: 20*log10(m) = 20*ln(m)/ln(10). Display
// accuracy is sufficient and the conversion runs once per bin per frame.
func dbFromAmplitude(m float64) float64 {
	if m <= silenceFloor {
		return SilenceFloorDB
	}

	return 20 * approx.FastLog(m) / ln10
}
