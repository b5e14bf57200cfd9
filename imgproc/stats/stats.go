package stats

import (
	"image"
	"math"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// Stats summarizes the sample distribution of a real image.
type Stats struct {
	Pixels int
	Mean   float64
	// Variance is the population variance.
	Variance float64
	StdDev   float64
	// Skewness and Kurtosis (excess) are zero for a flat image.
	Skewness float64
	Kurtosis float64

	Min    float64
	MinPos image.Point
	Max    float64
	MaxPos image.Point

	// RMS is sqrt(Energy / Pixels).
	RMS    float64
	Energy float64
	// Contrast is the Michelson contrast (max−min)/(max+min), or 0 when
	// max+min is 0.
	Contrast float64
}

// Calculate computes every statistic of g in one pass. Higher moments use
// Welford's online update for numerical stability. Positions use X for the
// column and Y for the row; ties keep the first sample in row-major order.
func Calculate(g *grid.Real) (Stats, error) {
	if err := grid.Check(g); err != nil {
		return Stats{}, err
	}
	data := g.Data()
	w := g.Width()

	var (
		mean, m2, m3, m4 float64
		sumSq            float64
		minVal, maxVal   = data[0], data[0]
		minIdx, maxIdx   int
	)
	for i, x := range data {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// m4 before m3 before m2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x
		if x > maxVal {
			maxVal, maxIdx = x, i
		}
		if x < minVal {
			minVal, minIdx = x, i
		}
	}

	n := float64(len(data))
	s := Stats{
		Pixels:   len(data),
		Mean:     mean,
		Variance: m2 / n,
		Min:      minVal,
		MinPos:   image.Point{X: minIdx % w, Y: minIdx / w},
		Max:      maxVal,
		MaxPos:   image.Point{X: maxIdx % w, Y: maxIdx / w},
		Energy:   sumSq,
		RMS:      math.Sqrt(sumSq / n),
	}
	s.StdDev = math.Sqrt(s.Variance)
	if s.Variance > 0 {
		s.Skewness = (m3 / n) / (s.Variance * s.StdDev)
		s.Kurtosis = (m4/n)/(s.Variance*s.Variance) - 3
	}
	if sum := maxVal + minVal; sum != 0 {
		s.Contrast = (maxVal - minVal) / sum
	}
	return s, nil
}

// Histogram counts samples in bins equal-width bins spanning [lo, hi].
// Samples outside the range are clamped into the first or last bin and NaN
// samples are skipped.
func Histogram(g *grid.Real, bins int, lo, hi float64) ([]int, error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	if bins <= 0 {
		return nil, nil
	}
	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range g.Data() {
		if math.IsNaN(v) {
			continue
		}
		b := 0
		if width > 0 {
			b = int((v - lo) / width)
		}
		if b < 0 {
			b = 0
		}
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return counts, nil
}
