package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/fourier"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// Output selects how Reconstruct turns the inverse transform into a real
// image.
type Output int

const (
	// OutputModulus keeps |x| per sample.
	OutputModulus Output = iota
	// OutputReal keeps the real part, preserving sign.
	OutputReal
)

// Analyzer runs the centered spectrum pipeline with a fixed transformer.
type Analyzer struct {
	t *fourier.Transformer
}

// NewAnalyzer returns an Analyzer whose transforms are configured by opts.
func NewAnalyzer(opts ...fourier.Option) *Analyzer {
	return &Analyzer{t: fourier.New(opts...)}
}

var defaultAnalyzer = NewAnalyzer()

// Analyze returns the centered spectrum of img using the default Analyzer.
func Analyze(img *grid.Real) (Spectrum, error) {
	return defaultAnalyzer.Analyze(img)
}

// Reconstruct inverts a centered spectrum using the default Analyzer.
func Reconstruct(s Spectrum, out Output) (*grid.Real, error) {
	return defaultAnalyzer.Reconstruct(s, out)
}

// Analyze transforms img, moves the DC term to the center and decomposes the
// result.
func (a *Analyzer) Analyze(img *grid.Real) (Spectrum, error) {
	z, err := a.t.ForwardReal(img)
	if err != nil {
		return Spectrum{}, err
	}
	z, err = fourier.Shift(z)
	if err != nil {
		return Spectrum{}, err
	}
	return Decompose(z)
}

// Reconstruct recomposes s, undoes the centering and inverts the transform.
// No contrast rescaling is applied.
func (a *Analyzer) Reconstruct(s Spectrum, out Output) (*grid.Real, error) {
	z, err := Recompose(s)
	if err != nil {
		return nil, err
	}
	z, err = fourier.Unshift(z)
	if err != nil {
		return nil, err
	}
	x, err := a.t.Inverse(z)
	if err != nil {
		return nil, err
	}
	switch out {
	case OutputReal:
		return grid.RealPart(x), nil
	case OutputModulus:
		return grid.Modulus(x), nil
	default:
		return nil, fmt.Errorf("spectrum: unknown output mode %d", out)
	}
}

// KernelResponse returns the centered magnitude response of k, sampled on a
// size×size frequency grid. The kernel is embedded at the center of a zero
// buffer, which is the impulse response of filtering with k.
func (a *Analyzer) KernelResponse(k *conv.Kernel, size int) (*grid.Real, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel", conv.ErrInvalidKernel)
	}
	if size < k.Height() || size < k.Width() {
		return nil, fmt.Errorf("spectrum: %w: %d is smaller than the %dx%d kernel",
			ErrInvalidDimension, size, k.Height(), k.Width())
	}
	buf := grid.MustNew[float64](size, size)
	ar, ac := k.Anchor()
	top, left := size/2-ar, size/2-ac
	for r := 0; r < k.Height(); r++ {
		for c := 0; c < k.Width(); c++ {
			buf.Set(top+r, left+c, k.At(r, c))
		}
	}
	s, err := a.Analyze(buf)
	if err != nil {
		return nil, err
	}
	return s.Magnitude, nil
}

// KernelResponse is Analyzer.KernelResponse with the default Analyzer.
func KernelResponse(k *conv.Kernel, size int) (*grid.Real, error) {
	return defaultAnalyzer.KernelResponse(k, size)
}
