package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of bins 0..n/2 of the series, where n
// is len(data) rounded up to a power of two. Empty input yields nil.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	buf := make([]complex128, n)
	for i, v := range data {
		window := 1.0
		if len(data) > 1 {
			window = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(data)-1)))
		}
		buf[i] = complex((v-mean)*window, 0)
	}
	spectrum := fft.FFT(buf)

	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest bin above
// DC and its magnitude. ok is false when the series is too short or flat.
func DominantPeriod(data []float64) (period, power float64, ok bool) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, 0, false
	}

	n := 2 * (len(ps) - 1)
	best := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			best = i
		}
	}
	if best == 0 || power < 1e-12 {
		return 0, 0, false
	}
	return float64(n) / float64(best), power, true
}
