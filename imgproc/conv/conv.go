package conv

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/internal/parallel"
)

// Errors returned by convolution functions.
var (
	ErrInvalidKernel   = errors.New("conv: invalid kernel")
	ErrInvalidBoundary = errors.New("conv: invalid boundary policy")

	// ErrInvalidDimension is returned for empty or mismatched images.
	ErrInvalidDimension = grid.ErrInvalidDimension
)

// Convolve applies k to img under boundary policy b:
//
//	out[r,c] = Σ img[r+dr, c+dc] · k[ar+dr, ac+dc]
//
// where (ar, ac) is the kernel anchor. This is the correlation form used by
// image filtering libraries; use [Kernel.Flip] for textbook convolution.
// The output has the input's size and is neither clamped nor rescaled.
func Convolve(img *grid.Real, k *Kernel, b Boundary, opts ...core.ProcessorOption) (*grid.Real, error) {
	if err := grid.Check(img); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel", ErrInvalidKernel)
	}
	if err := validateShape(k.height, k.width); err != nil {
		return nil, err
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoundary, b)
	}

	cfg := core.ApplyProcessorOptions(opts...)
	h, w := img.Height(), img.Width()
	ar, _ := k.Anchor()

	padded := padColumns(img, k.width/2, b)
	out := grid.MustNew[float64](h, w)

	err := parallel.For(h, cfg.Workers, cfg.MinRowsPerWorker, func(start, end int) error {
		for r := start; r < end; r++ {
			dst := out.Row(r)
			for kr := 0; kr < k.height; kr++ {
				sr, ok := b.Index(r+kr-ar, h)
				if !ok {
					continue
				}
				src := padded[sr]
				weights := k.row(kr)
				for c := range dst {
					dst[c] += vecmath.DotProduct(src[c:c+k.width], weights)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConvolveSeparable applies the kernel col ⊗ row as a horizontal pass with row
// followed by a vertical pass with col. The result matches Convolve with
// Outer(col, row) up to rounding, at O(n) instead of O(n²) cost per sample.
func ConvolveSeparable(img *grid.Real, row, col []float64, b Boundary, opts ...core.ProcessorOption) (*grid.Real, error) {
	if err := grid.Check(img); err != nil {
		return nil, err
	}
	if err := validateShape(len(col), len(row)); err != nil {
		return nil, err
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoundary, b)
	}

	cfg := core.ApplyProcessorOptions(opts...)
	h, w := img.Height(), img.Width()

	padded := padColumns(img, len(row)/2, b)
	tmp := grid.MustNew[float64](h, w)
	err := parallel.For(h, cfg.Workers, cfg.MinRowsPerWorker, func(start, end int) error {
		for r := start; r < end; r++ {
			dst := tmp.Row(r)
			src := padded[r]
			for c := range dst {
				dst[c] = vecmath.DotProduct(src[c:c+len(row)], row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := grid.MustNew[float64](h, w)
	anchor := len(col) / 2
	err = parallel.For(h, cfg.Workers, cfg.MinRowsPerWorker, func(start, end int) error {
		scaled := make([]float64, w)
		for r := start; r < end; r++ {
			dst := out.Row(r)
			for i, weight := range col {
				sr, ok := b.Index(r+i-anchor, h)
				if !ok {
					continue
				}
				// dst += weight · tmp[sr]
				vecmath.ScaleBlock(scaled, tmp.Row(sr), weight)
				vecmath.AddBlockInPlace(dst, scaled)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// padColumns returns every image row extended by pad samples on both sides
// according to b.
func padColumns(img *grid.Real, pad int, b Boundary) [][]float64 {
	h, w := img.Height(), img.Width()
	rows := make([][]float64, h)
	backing := make([]float64, h*(w+2*pad))
	for r := range rows {
		row := backing[r*(w+2*pad) : (r+1)*(w+2*pad)]
		src := img.Row(r)
		copy(row[pad:], src)
		for i := 0; i < pad; i++ {
			if idx, ok := b.Index(i-pad, w); ok {
				row[i] = src[idx]
			}
			if idx, ok := b.Index(w+i, w); ok {
				row[pad+w+i] = src[idx]
			}
		}
		rows[r] = row
	}
	return rows
}

// GradientMagnitude combines two directional responses element-wise as
// sqrt(gx² + gy²).
func GradientMagnitude(gx, gy *grid.Real) (*grid.Real, error) {
	return combine(gx, gy, math.Hypot)
}

// GradientDirection returns the angle of the gradient vector (gx, gy) in
// [0, 2π), or in [0, 360) when degrees is true.
func GradientDirection(gx, gy *grid.Real, degrees bool) (*grid.Real, error) {
	full := 2 * math.Pi
	if degrees {
		full = 360
	}
	return combine(gx, gy, func(x, y float64) float64 {
		a := math.Atan2(y, x)
		if a < 0 {
			a += 2 * math.Pi
		}
		if degrees {
			a *= 180 / math.Pi
		}
		if a >= full {
			a = 0
		}
		return a
	})
}

func combine(a, b *grid.Real, fn func(x, y float64) float64) (*grid.Real, error) {
	if err := grid.CheckSameSize(a, b); err != nil {
		return nil, err
	}
	out := grid.MustNew[float64](a.Height(), a.Width())
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range od {
		od[i] = fn(ad[i], bd[i])
	}
	return out, nil
}
