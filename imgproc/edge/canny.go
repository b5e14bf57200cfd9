package edge

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/imgproc/kernels"
	"github.com/cwbudde/algo-imgproc/imgproc/label"
)

// ErrInvalidConfig is returned when a Canny configuration fails validation.
var ErrInvalidConfig = errors.New("edge: invalid config")

// Config parameterizes Canny.
type Config struct {
	// KernelSize is the odd Gaussian smoothing window. 1 disables smoothing.
	KernelSize int
	// Sigma is the Gaussian standard deviation; values <= 0 select
	// kernels.DefaultSigma(KernelSize).
	Sigma float64
	// Low and High are the hysteresis thresholds on the gradient magnitude.
	Low, High float64
	Boundary  conv.Boundary
	Workers   int
}

// DefaultConfig returns a 5×5 automatic-sigma blur with thresholds 50 and
// 150.
func DefaultConfig() Config {
	return Config{
		KernelSize: 5,
		Low:        50,
		High:       150,
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
	if c.Low < 0 || c.High < c.Low || math.IsNaN(c.Low) || math.IsNaN(c.High) {
		return fmt.Errorf("%w: thresholds must satisfy 0 <= low <= high: %f, %f", ErrInvalidConfig, c.Low, c.High)
	}
	if !c.Boundary.Valid() {
		return fmt.Errorf("%w: unknown boundary %v", ErrInvalidConfig, c.Boundary)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0: %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Canny returns the edge mask of img: Gaussian smoothing, Sobel gradients,
// non-maximum suppression along the gradient direction and hysteresis.
//
// A pixel survives suppression when its magnitude exceeds the neighbor
// behind it and is not below the neighbor ahead of it, which keeps exactly
// one pixel across a symmetric ridge. Hysteresis keeps every 8-connected run
// of surviving pixels >= Low that contains at least one pixel >= High.
func Canny(img *grid.Real, cfg Config) (*grid.Mask, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []core.ProcessorOption{core.WithWorkers(cfg.Workers)}

	g, err := kernels.Gaussian1D(cfg.KernelSize, cfg.Sigma)
	if err != nil {
		return nil, err
	}
	smooth, err := conv.ConvolveSeparable(img, g, g, cfg.Boundary, opts...)
	if err != nil {
		return nil, err
	}
	grad, err := Sobel(smooth, cfg.Boundary, opts...)
	if err != nil {
		return nil, err
	}

	thin := suppress(grad)
	// Suppressed samples are zero and never edges, even with Low == 0.
	weak := grid.Map(thin, func(v float64) bool { return v > 0 && v >= cfg.Low })

	labels, n, err := label.Map(weak, label.WithConnectivity(label.Eight))
	if err != nil {
		return nil, err
	}
	keep := make([]bool, n+1)
	for i, v := range thin.Data() {
		if v >= cfg.High && labels[i] != 0 {
			keep[labels[i]] = true
		}
	}

	out := grid.MustNew[bool](img.Height(), img.Width())
	dst := out.Data()
	for i, id := range labels {
		dst[i] = id != 0 && keep[id]
	}
	return out, nil
}

// suppress zeroes every magnitude that is not a local maximum along its
// gradient direction.
func suppress(grad *Gradient) *grid.Real {
	h, w := grad.Magnitude.Height(), grad.Magnitude.Width()
	mag := grad.Magnitude
	out := grid.MustNew[float64](h, w)

	at := func(r, c int) float64 {
		if !mag.InBounds(r, c) {
			return 0
		}
		return mag.At(r, c)
	}

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := mag.At(r, c)
			if v == 0 {
				continue
			}
			dr, dc := sector(grad.Direction.At(r, c))
			if v > at(r-dr, c-dc) && v >= at(r+dr, c+dc) {
				out.Set(r, c, v)
			}
		}
	}
	return out
}

// sector quantizes a direction in degrees to the row/column step of the
// nearest of the four principal axes.
func sector(deg float64) (dr, dc int) {
	a := math.Mod(deg, 180)
	switch {
	case a < 22.5 || a >= 157.5:
		return 0, 1
	case a < 67.5:
		return 1, 1
	case a < 112.5:
		return 1, 0
	default:
		return 1, -1
	}
}
