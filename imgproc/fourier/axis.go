package fourier

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/cmplxs"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-imgproc/imgproc/core"
)

// axisTransform computes 1D transforms of one fixed length. Implementations
// hold scratch state and must not be shared between goroutines. dst and src
// never alias.
type axisTransform interface {
	forward(dst, src []complex128) error
	// inverse is scaled by 1/n.
	inverse(dst, src []complex128) error
}

// newAxis picks the backend for an axis of length n: algo-fft plans for
// power-of-two lengths, gonum's mixed-radix FFT otherwise, the direct DFT
// when requested.
func newAxis(n int, direct bool) (axisTransform, error) {
	switch {
	case n == 1:
		return identityAxis{}, nil
	case direct:
		return newDirectAxis(n), nil
	case core.IsPowerOfTwo(n):
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			// algo-fft restricts some small sizes; gonum handles every length.
			return newGonumAxis(n), nil
		}
		return planAxis{plan: plan}, nil
	default:
		return newGonumAxis(n), nil
	}
}

type identityAxis struct{}

func (identityAxis) forward(dst, src []complex128) error { copy(dst, src); return nil }
func (identityAxis) inverse(dst, src []complex128) error { copy(dst, src); return nil }

type planAxis struct {
	plan *algofft.Plan[complex128]
}

func (a planAxis) forward(dst, src []complex128) error {
	if err := a.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fourier: forward FFT failed: %w", err)
	}
	return nil
}

func (a planAxis) inverse(dst, src []complex128) error {
	if err := a.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fourier: inverse FFT failed: %w", err)
	}
	return nil
}

type gonumAxis struct {
	fft   *gonumfourier.CmplxFFT
	scale float64
}

func newGonumAxis(n int) gonumAxis {
	return gonumAxis{fft: gonumfourier.NewCmplxFFT(n), scale: 1 / float64(n)}
}

func (a gonumAxis) forward(dst, src []complex128) error {
	a.fft.Coefficients(dst, src)
	return nil
}

func (a gonumAxis) inverse(dst, src []complex128) error {
	// gonum leaves the inverse unnormalized.
	a.fft.Sequence(dst, src)
	cmplxs.Scale(complex(a.scale, 0), dst)
	return nil
}

// directAxis is the O(n²) reference DFT.
type directAxis struct {
	twiddle []complex128 // exp(-2πik/n)
}

func newDirectAxis(n int) directAxis {
	tw := make([]complex128, n)
	for k := range tw {
		tw[k] = cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n))
	}
	return directAxis{twiddle: tw}
}

func (a directAxis) forward(dst, src []complex128) error {
	a.transform(dst, src, false)
	return nil
}

func (a directAxis) inverse(dst, src []complex128) error {
	a.transform(dst, src, true)
	cmplxs.Scale(complex(1/float64(len(a.twiddle)), 0), dst)
	return nil
}

func (a directAxis) transform(dst, src []complex128, conj bool) {
	n := len(a.twiddle)
	for k := 0; k < n; k++ {
		var sum complex128
		idx := 0
		for j := 0; j < n; j++ {
			w := a.twiddle[idx]
			if conj {
				w = cmplx.Conj(w)
			}
			sum += src[j] * w
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		dst[k] = sum
	}
}
