package blob

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/imgproc/kernels"
	"github.com/cwbudde/algo-imgproc/internal/testutil"
)

func starField() *grid.Real {
	img := testutil.Constant(10, 64, 64)
	testutil.Disc(img, 16, 16, 2, 255)
	testutil.Disc(img, 40, 44, 2, 255)
	testutil.Disc(img, 50, 12, 2, 255)
	return img
}

func TestDetectFindsStars(t *testing.T) {
	blobs, err := Detect(starField(), DefaultConfig())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(blobs) != 3 {
		t.Fatalf("got %d blobs, want 3", len(blobs))
	}

	want := [][2]float64{{16, 16}, {44, 40}, {12, 50}}
	for i, b := range blobs {
		if math.Abs(b.Centroid.X-want[i][0]) > 0.5 || math.Abs(b.Centroid.Y-want[i][1]) > 0.5 {
			t.Fatalf("blob %d centroid = %+v, want near (%v, %v)", i, b.Centroid, want[i][0], want[i][1])
		}
		if b.Area != b.Component.Area() || b.Area == 0 {
			t.Fatalf("blob %d area = %d, component area %d", i, b.Area, b.Component.Area())
		}
	}
}

func TestDetectDegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		img  *grid.Real
	}{
		{name: "zero", img: testutil.Constant(0, 32, 32)},
		{name: "constant", img: testutil.Constant(128, 32, 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDetector(DefaultConfig())
			if err != nil {
				t.Fatalf("NewDetector: %v", err)
			}
			res, err := d.DetectDetailed(tt.img)
			if err != nil {
				t.Fatalf("DetectDetailed: %v", err)
			}
			if len(res.Blobs) != 0 {
				t.Fatalf("got %d blobs, want 0", len(res.Blobs))
			}
			for i, v := range res.Response.Data() {
				if v != 0 {
					t.Fatalf("response[%d] = %v, want 0", i, v)
				}
			}
			for i, on := range res.Mask.Data() {
				if on {
					t.Fatalf("mask[%d] set", i)
				}
			}
		})
	}
}

func TestDetectDetailedResponse(t *testing.T) {
	d, err := NewDetector(DefaultConfig())
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	res, err := d.DetectDetailed(starField())
	if err != nil {
		t.Fatalf("DetectDetailed: %v", err)
	}
	testutil.RequireFinite(t, res.Response)

	var peak float64
	for _, v := range res.Response.Data() {
		if v < 0 {
			t.Fatalf("negative normalized response %v", v)
		}
		peak = math.Max(peak, v)
	}
	if math.Abs(peak-255) > 1e-9 {
		t.Fatalf("peak = %v, want 255", peak)
	}
	for _, b := range res.Blobs {
		for _, p := range b.Component.Pixels {
			if !res.Mask.At(p.Y, p.X) {
				t.Fatalf("blob pixel %v not in mask", p)
			}
		}
	}
}

func TestResponseIsMinMaxNormalized(t *testing.T) {
	// A curved background keeps |LoG| above zero almost everywhere.
	img := grid.MustNew[float64](48, 48)
	for r := 0; r < 48; r++ {
		for c := 0; c < 48; c++ {
			img.Set(r, c, 0.05*float64(c*c))
		}
	}
	img.Set(24, 24, img.At(24, 24)+255)

	cfg := DefaultConfig()
	d, err := NewDetector(cfg)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	res, err := d.DetectDetailed(img)
	if err != nil {
		t.Fatalf("DetectDetailed: %v", err)
	}

	g, err := kernels.Gaussian1D(cfg.KernelSize, cfg.Sigma)
	if err != nil {
		t.Fatalf("Gaussian1D: %v", err)
	}
	smooth, err := conv.ConvolveSeparable(img, g, g, cfg.Boundary)
	if err != nil {
		t.Fatalf("ConvolveSeparable: %v", err)
	}
	lap, err := conv.Convolve(smooth, kernels.Laplacian(), cfg.Boundary)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range lap.Data() {
		lo = math.Min(lo, math.Abs(v))
		hi = math.Max(hi, math.Abs(v))
	}
	if lo <= 0 {
		t.Fatalf("background |LoG| floor = %v, want > 0", lo)
	}

	minResp, maxResp := math.Inf(1), math.Inf(-1)
	for i, v := range res.Response.Data() {
		want := 255 * (math.Abs(lap.Data()[i]) - lo) / (hi - lo)
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("response[%d] = %v, want %v", i, v, want)
		}
		minResp = math.Min(minResp, v)
		maxResp = math.Max(maxResp, v)
	}
	if minResp != 0 || math.Abs(maxResp-255) > 1e-9 {
		t.Fatalf("response range = [%v, %v], want [0, 255]", minResp, maxResp)
	}
}

func TestAreaFilter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinArea = 10000
	blobs, err := Detect(starField(), cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(blobs) != 0 {
		t.Fatalf("MinArea kept %d blobs", len(blobs))
	}

	cfg = DefaultConfig()
	cfg.MaxArea = 1
	cfg.MinArea = 1
	blobs, err = Detect(starField(), cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	for _, b := range blobs {
		if b.Area != 1 {
			t.Fatalf("MaxArea kept area %d", b.Area)
		}
	}
}

func TestWorkersMatchSerial(t *testing.T) {
	img := testutil.Noise(5, 100, 80, 80)
	testutil.Disc(img, 30, 30, 3, 2000)

	serial, err := Detect(img, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Workers = 4
	par, err := Detect(img, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(par) != len(serial) {
		t.Fatalf("parallel found %d blobs, serial %d", len(par), len(serial))
	}
	for i := range par {
		if par[i].Centroid != serial[i].Centroid || par[i].Area != serial[i].Area {
			t.Fatalf("blob %d differs: %+v vs %+v", i, par[i], serial[i])
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "even kernel", mutate: func(c *Config) { c.KernelSize = 8 }},
		{name: "zero kernel", mutate: func(c *Config) { c.KernelSize = 0 }},
		{name: "nan sigma", mutate: func(c *Config) { c.Sigma = math.NaN() }},
		{name: "inf threshold", mutate: func(c *Config) { c.Threshold = math.Inf(1) }},
		{name: "boundary", mutate: func(c *Config) { c.Boundary = conv.Boundary(17) }},
		{name: "negative area", mutate: func(c *Config) { c.MinArea = -1 }},
		{name: "inverted area", mutate: func(c *Config) { c.MinArea = 10; c.MaxArea = 5 }},
		{name: "workers", mutate: func(c *Config) { c.Workers = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, err := NewDetector(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewDetector() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	cfg := DefaultConfig()
	cfg.Sigma = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("auto sigma rejected: %v", err)
	}
}

func TestDetectInvalidImage(t *testing.T) {
	if _, err := Detect(nil, DefaultConfig()); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Fatalf("Detect(nil) error = %v", err)
	}
}
