package kernels

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
)

// Box returns the n×n mean filter with every weight equal to 1/n².
func Box(n int) (*conv.Kernel, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 1 / float64(n*n)
	}
	return conv.NewKernelData(n, n, data)
}

// DefaultSigma returns the standard deviation used when a non-positive sigma
// is passed to Gaussian or Gaussian1D:
//
//	sigma = 0.3·((n−1)·0.5 − 1) + 0.8
//
// This is the rule common image-processing toolkits use for auto-sized
// Gaussian kernels; for n = 3 it yields 0.8 and for n = 9 it yields 1.7.
func DefaultSigma(n int) float64 {
	return 0.3*((float64(n)-1)*0.5-1) + 0.8
}

// Gaussian1D returns n samples of exp(−(i−c)²/(2σ²)) with c = (n−1)/2,
// normalized to sum 1.
func Gaussian1D(n int, sigma float64) ([]float64, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if sigma <= 0 || math.IsNaN(sigma) {
		sigma = DefaultSigma(n)
	}
	c := float64(n-1) / 2
	g := make([]float64, n)
	for i := range g {
		d := float64(i) - c
		g[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(g), g)
	return g, nil
}

// Gaussian returns the separable n×n Gaussian kernel, the outer product of
// Gaussian1D with itself. Its weights sum to 1.
func Gaussian(n int, sigma float64) (*conv.Kernel, error) {
	g, err := Gaussian1D(n, sigma)
	if err != nil {
		return nil, err
	}
	return conv.Outer(g, g)
}

func checkSize(n int) error {
	if n <= 0 || n%2 == 0 {
		return fmt.Errorf("%w: size %d must be odd and positive", conv.ErrInvalidKernel, n)
	}
	return nil
}
