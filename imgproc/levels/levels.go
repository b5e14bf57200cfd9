package levels

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// Abs returns |v| for every sample.
func Abs(g *grid.Real) (*grid.Real, error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	return grid.Map(g, math.Abs), nil
}

// MinMax returns the smallest and largest sample of g.
func MinMax(g *grid.Real) (lo, hi float64, err error) {
	if err := grid.Check(g); err != nil {
		return 0, 0, err
	}
	return floats.Min(g.Data()), floats.Max(g.Data()), nil
}

// MaxAbs returns the largest |v| in g.
func MaxAbs(g *grid.Real) (float64, error) {
	if err := grid.Check(g); err != nil {
		return 0, err
	}
	return vecmath.MaxAbs(g.Data()), nil
}

// NormalizeMax scales g so its maximum maps to top: v' = top·v/max.
// When max is zero the result is all zeros.
func NormalizeMax(g *grid.Real, top float64) (*grid.Real, error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	out := g.Clone()
	hi := floats.Max(out.Data())
	if hi == 0 || math.IsNaN(hi) || math.IsInf(hi, 0) {
		out.Fill(0)
		return out, nil
	}
	floats.Scale(top/hi, out.Data())
	return out, nil
}

// NormalizeMinMax maps the sample range of g linearly onto [lo, hi]. A flat
// image, where min == max, maps to all zeros.
func NormalizeMinMax(g *grid.Real, lo, hi float64) (*grid.Real, error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	out := g.Clone()
	data := out.Data()
	smin, smax := floats.Min(data), floats.Max(data)
	span := smax - smin
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		out.Fill(0)
		return out, nil
	}
	scale := (hi - lo) / span
	for i, v := range data {
		data[i] = lo + (v-smin)*scale
	}
	return out, nil
}

// Threshold returns the mask of samples with v >= tau.
func Threshold(g *grid.Real, tau float64) (*grid.Mask, error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	return grid.Map(g, func(v float64) bool { return v >= tau }), nil
}

// Quantize rounds every sample to the nearest integer in [0, 255] for
// display. The result is row-major.
func Quantize(g *grid.Real) ([]uint8, error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	out := make([]uint8, g.Len())
	for i, v := range g.Data() {
		if math.IsNaN(v) {
			continue
		}
		out[i] = uint8(core.Clamp(math.Round(v), 0, 255))
	}
	return out, nil
}
