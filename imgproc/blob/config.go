package blob

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("blob: invalid config")

const (
	defaultKernelSize = 9
	defaultSigma      = 2.0
	defaultThreshold  = 100.0

	// responseScale is the top of the normalized response range.
	responseScale = 255.0

	// noiseFloor is the peak response, relative to the input range, below
	// which an image is treated as featureless.
	noiseFloor = 1e-12
)

// Config parameterizes a Detector.
type Config struct {
	// KernelSize is the odd Gaussian smoothing window.
	KernelSize int
	// Sigma is the Gaussian standard deviation. Values <= 0 select
	// kernels.DefaultSigma(KernelSize).
	Sigma float64
	// Threshold selects pixels whose normalized response is >= Threshold,
	// on a [0, 255] scale.
	Threshold float64
	// Boundary is used by both convolution stages.
	Boundary conv.Boundary
	// MinArea drops blobs with fewer pixels. Zero keeps everything.
	MinArea int
	// MaxArea drops blobs with more pixels. Zero means unbounded.
	MaxArea int
	// Workers parallelizes the convolutions over rows.
	Workers int
}

// DefaultConfig returns a 9×9 Gaussian with sigma 2, a threshold of 100 and
// replicated borders, which suits star fields and similar point sources.
func DefaultConfig() Config {
	return Config{
		KernelSize: defaultKernelSize,
		Sigma:      defaultSigma,
		Threshold:  defaultThreshold,
		Boundary:   conv.Replicate,
		Workers:    1,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.KernelSize <= 0 || c.KernelSize%2 == 0 {
		return fmt.Errorf("%w: kernel size must be odd and positive: %d", ErrInvalidConfig, c.KernelSize)
	}
	if math.IsNaN(c.Sigma) || math.IsInf(c.Sigma, 0) {
		return fmt.Errorf("%w: sigma must be finite: %f", ErrInvalidConfig, c.Sigma)
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold must be finite: %f", ErrInvalidConfig, c.Threshold)
	}
	if !c.Boundary.Valid() {
		return fmt.Errorf("%w: unknown boundary %v", ErrInvalidConfig, c.Boundary)
	}
	if c.MinArea < 0 || c.MaxArea < 0 {
		return fmt.Errorf("%w: areas must be >= 0: min %d, max %d", ErrInvalidConfig, c.MinArea, c.MaxArea)
	}
	if c.MaxArea > 0 && c.MaxArea < c.MinArea {
		return fmt.Errorf("%w: max area %d < min area %d", ErrInvalidConfig, c.MaxArea, c.MinArea)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0: %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
