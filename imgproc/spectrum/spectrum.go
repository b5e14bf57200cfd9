package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// ErrInvalidDimension is returned for empty buffers and for magnitude/phase
// pairs of different shapes.
var ErrInvalidDimension = grid.ErrInvalidDimension

// Spectrum is the polar form of a complex frequency buffer. Magnitude is
// non-negative and Phase lies in (−π, π]. Both grids share one shape.
type Spectrum struct {
	Magnitude *grid.Real
	Phase     *grid.Real
}

// Validate reports whether s holds two non-empty grids of the same shape.
func (s Spectrum) Validate() error {
	if err := grid.CheckSameSize(s.Magnitude, s.Phase); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return nil
}

// Height returns the number of frequency rows.
func (s Spectrum) Height() int { return s.Magnitude.Height() }

// Width returns the number of frequency columns.
func (s Spectrum) Width() int { return s.Magnitude.Width() }

// scratchBuf holds pooled scratch memory for splitting complex rows.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Decompose splits z into magnitude |z| and phase atan2(im, re).
//
// The modulus uses SIMD kernels when available. Scratch buffers are pooled, so
// in steady state Decompose allocates only its two output grids.
func Decompose(z *grid.Complex) (Spectrum, error) {
	if err := grid.Check(z); err != nil {
		return Spectrum{}, err
	}
	h, w := z.Height(), z.Width()
	s := Spectrum{
		Magnitude: grid.MustNew[float64](h, w),
		Phase:     grid.MustNew[float64](h, w),
	}

	src := z.Data()
	re, im, buf := getScratch(len(src))
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(s.Magnitude.Data(), re, im)
	phase := s.Phase.Data()
	for i := range phase {
		phase[i] = Phase(re[i], im[i])
	}
	putScratch(buf)

	return s, nil
}

// Phase returns atan2(im, re) folded into (−π, π].
func Phase(re, im float64) float64 {
	p := math.Atan2(im, re)
	if p == -math.Pi {
		return math.Pi
	}
	return p
}

// Recompose rebuilds the complex buffer m·e^{iφ} from s.
func Recompose(s Spectrum) (*grid.Complex, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := grid.MustNew[complex128](s.Height(), s.Width())
	mag, phase, dst := s.Magnitude.Data(), s.Phase.Data(), out.Data()
	for i := range dst {
		dst[i] = cmplx.Rect(mag[i], phase[i])
	}
	return out, nil
}

// MagnitudeOnly returns s with every phase set to zero.
func MagnitudeOnly(s Spectrum) (Spectrum, error) {
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}
	return Spectrum{
		Magnitude: s.Magnitude.Clone(),
		Phase:     grid.MustNew[float64](s.Height(), s.Width()),
	}, nil
}

// PhaseOnly returns s with every magnitude set to one.
func PhaseOnly(s Spectrum) (Spectrum, error) {
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}
	mag := grid.MustNew[float64](s.Height(), s.Width())
	mag.Fill(1)
	return Spectrum{Magnitude: mag, Phase: s.Phase.Clone()}, nil
}

// Transplant combines the magnitude of magSrc with the phase of phaseSrc.
// Both spectra must have the same shape.
func Transplant(magSrc, phaseSrc Spectrum) (Spectrum, error) {
	if err := magSrc.Validate(); err != nil {
		return Spectrum{}, err
	}
	if err := phaseSrc.Validate(); err != nil {
		return Spectrum{}, err
	}
	if !grid.SameSize(magSrc.Magnitude, phaseSrc.Phase) {
		return Spectrum{}, fmt.Errorf("spectrum: %w: magnitude %dx%d, phase %dx%d", ErrInvalidDimension,
			magSrc.Height(), magSrc.Width(), phaseSrc.Height(), phaseSrc.Width())
	}
	return Spectrum{
		Magnitude: magSrc.Magnitude.Clone(),
		Phase:     phaseSrc.Phase.Clone(),
	}, nil
}

// LogMagnitude returns 20·ln(|F| + eps) for display. A non-positive eps is
// replaced by 1, which keeps zero bins at 0.
func LogMagnitude(s Spectrum, eps float64) (*grid.Real, error) {
	if err := grid.Check(s.Magnitude); err != nil {
		return nil, err
	}
	if eps <= 0 {
		eps = 1
	}
	return grid.Map(s.Magnitude, func(m float64) float64 {
		return 20 * logE(m+eps)
	}), nil
}
