package edge

import (
	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/imgproc/kernels"
)

// Gradient holds the first-derivative responses of an image.
type Gradient struct {
	X, Y *grid.Real
	// Magnitude is sqrt(X² + Y²).
	Magnitude *grid.Real
	// Direction is atan2(Y, X) in degrees, in [0, 360).
	Direction *grid.Real
}

// Sobel returns the Sobel gradient of img.
func Sobel(img *grid.Real, b conv.Boundary, opts ...core.ProcessorOption) (*Gradient, error) {
	return gradient(img, kernels.SobelX(), kernels.SobelY(), b, opts)
}

// Prewitt returns the Prewitt gradient of img.
func Prewitt(img *grid.Real, b conv.Boundary, opts ...core.ProcessorOption) (*Gradient, error) {
	return gradient(img, kernels.PrewittX(), kernels.PrewittY(), b, opts)
}

func gradient(img *grid.Real, kx, ky *conv.Kernel, b conv.Boundary, opts []core.ProcessorOption) (*Gradient, error) {
	gx, err := conv.Convolve(img, kx, b, opts...)
	if err != nil {
		return nil, err
	}
	gy, err := conv.Convolve(img, ky, b, opts...)
	if err != nil {
		return nil, err
	}
	mag, err := conv.GradientMagnitude(gx, gy)
	if err != nil {
		return nil, err
	}
	dir, err := conv.GradientDirection(gx, gy, true)
	if err != nil {
		return nil, err
	}
	return &Gradient{X: gx, Y: gy, Magnitude: mag, Direction: dir}, nil
}
