package blob

import (
	"fmt"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/imgproc/kernels"
	"github.com/cwbudde/algo-imgproc/imgproc/label"
	"github.com/cwbudde/algo-imgproc/imgproc/levels"
)

// Blob is one detected region.
type Blob struct {
	Component label.Component
	// Centroid is the mean pixel position (X column, Y row).
	Centroid label.Point
	Area     int
}

// Result carries the blobs together with the intermediate stages.
type Result struct {
	Blobs []Blob
	// Response is |LoG(img)| mapped linearly so its minimum is 0 and its
	// maximum 255.
	Response *grid.Real
	// Mask is the thresholded response before area filtering.
	Mask *grid.Mask
}

// Detector runs the LoG blob pipeline with a fixed configuration. It is safe
// for concurrent use.
type Detector struct {
	cfg      Config
	gaussian []float64
	lap      *conv.Kernel
	opts     []core.ProcessorOption
}

// NewDetector validates cfg and precomputes its kernels.
func NewDetector(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := kernels.Gaussian1D(cfg.KernelSize, cfg.Sigma)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Detector{
		cfg:      cfg,
		gaussian: g,
		lap:      kernels.Laplacian(),
		opts:     []core.ProcessorOption{core.WithWorkers(cfg.Workers)},
	}, nil
}

// Config returns the detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// Detect runs a one-off detection with cfg.
func Detect(img *grid.Real, cfg Config) ([]Blob, error) {
	d, err := NewDetector(cfg)
	if err != nil {
		return nil, err
	}
	return d.Detect(img)
}

// Detect returns the blobs of img ordered by the row-major position of their
// first pixel.
func (d *Detector) Detect(img *grid.Real) ([]Blob, error) {
	res, err := d.DetectDetailed(img)
	if err != nil {
		return nil, err
	}
	return res.Blobs, nil
}

// DetectDetailed runs Gaussian smoothing, the Laplacian, absolute value,
// min-max normalization to [0, 255], thresholding, labeling and area
// filtering.
//
// An image whose response is zero everywhere, such as a constant image,
// yields no blobs and no error. The same holds when the peak response is
// below 1e-12 of the input's value range.
func (d *Detector) DetectDetailed(img *grid.Real) (*Result, error) {
	smooth, err := conv.ConvolveSeparable(img, d.gaussian, d.gaussian, d.cfg.Boundary, d.opts...)
	if err != nil {
		return nil, err
	}
	lap, err := conv.Convolve(smooth, d.lap, d.cfg.Boundary, d.opts...)
	if err != nil {
		return nil, err
	}
	peak, err := levels.MaxAbs(lap)
	if err != nil {
		return nil, err
	}
	mag, err := levels.Abs(lap)
	if err != nil {
		return nil, err
	}
	lo, hi, err := levels.MinMax(img)
	if err != nil {
		return nil, err
	}
	response, err := levels.NormalizeMinMax(mag, 0, responseScale)
	if err != nil {
		return nil, err
	}
	res := &Result{Blobs: []Blob{}, Response: response}

	// Rounding in the smoothing stage leaves residues far below the input
	// range on flat images; those count as no response.
	if hi == lo || peak <= noiseFloor*(hi-lo) {
		response.Fill(0)
		res.Mask = grid.MustNew[bool](img.Height(), img.Width())
		return res, nil
	}

	res.Mask, err = levels.Threshold(response, d.cfg.Threshold)
	if err != nil {
		return nil, err
	}
	comps, err := label.Label(res.Mask)
	if err != nil {
		return nil, err
	}
	for _, c := range comps {
		area := c.Area()
		if area < d.cfg.MinArea || (d.cfg.MaxArea > 0 && area > d.cfg.MaxArea) {
			continue
		}
		res.Blobs = append(res.Blobs, Blob{Component: c, Centroid: c.Centroid(), Area: area})
	}
	return res, nil
}
