package kernels

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/internal/testutil"
)

func TestDefaultSigma(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{n: 3, want: 0.8},
		{n: 5, want: 1.1},
		{n: 9, want: 1.7},
		{n: 21, want: 3.5},
	}
	for _, tt := range tests {
		if got := DefaultSigma(tt.n); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("DefaultSigma(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestGaussian1D(t *testing.T) {
	g, err := Gaussian1D(7, 1.5)
	if err != nil {
		t.Fatalf("Gaussian1D: %v", err)
	}

	var sum float64
	for _, v := range g {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("sum = %v, want 1", sum)
	}
	for i := 0; i < len(g)/2; i++ {
		if g[i] != g[len(g)-1-i] {
			t.Fatalf("not symmetric at %d: %v vs %v", i, g[i], g[len(g)-1-i])
		}
		if g[i] >= g[i+1] {
			t.Fatalf("not increasing toward center at %d", i)
		}
	}

	ratio := g[2] / g[3]
	if want := math.Exp(-1 / (2 * 1.5 * 1.5)); math.Abs(ratio-want) > 1e-12 {
		t.Fatalf("g[2]/g[3] = %v, want %v", ratio, want)
	}
}

func TestGaussianDefaultSigmaIsPinned(t *testing.T) {
	auto, err := Gaussian1D(9, 0)
	if err != nil {
		t.Fatalf("Gaussian1D: %v", err)
	}
	negative, err := Gaussian1D(9, -1)
	if err != nil {
		t.Fatalf("Gaussian1D: %v", err)
	}
	explicit, err := Gaussian1D(9, 1.7)
	if err != nil {
		t.Fatalf("Gaussian1D: %v", err)
	}
	for i := range auto {
		if math.Abs(auto[i]-explicit[i]) > 1e-12 || auto[i] != negative[i] {
			t.Fatalf("[%d] auto=%v negative=%v explicit=%v", i, auto[i], negative[i], explicit[i])
		}
	}
}

func TestGaussianKernel(t *testing.T) {
	k, err := Gaussian(5, 1)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if math.Abs(k.Sum()-1) > 1e-12 {
		t.Fatalf("Sum() = %v, want 1", k.Sum())
	}

	// Entries follow exp(-((i-c)²+(j-c)²)/(2σ²)) up to normalization.
	center := k.At(2, 2)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			d2 := float64((r-2)*(r-2) + (c-2)*(c-2))
			want := center * math.Exp(-d2/2)
			if got := k.At(r, c); math.Abs(got-want) > 1e-12 {
				t.Fatalf("At(%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestBox(t *testing.T) {
	k, err := Box(3)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if k.At(r, c) != 1.0/9 {
				t.Fatalf("At(%d,%d) = %v, want 1/9", r, c, k.At(r, c))
			}
		}
	}
}

func TestInvalidSizes(t *testing.T) {
	for _, n := range []int{0, -3, 4} {
		if _, err := Box(n); !errors.Is(err, conv.ErrInvalidKernel) {
			t.Fatalf("Box(%d) error = %v", n, err)
		}
		if _, err := Gaussian(n, 1); !errors.Is(err, conv.ErrInvalidKernel) {
			t.Fatalf("Gaussian(%d) error = %v", n, err)
		}
	}
}

func TestFixedKernels(t *testing.T) {
	tests := []struct {
		name string
		k    *conv.Kernel
		want [][]float64
	}{
		{name: "SobelY", k: SobelY(), want: [][]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}},
		{name: "PrewittY", k: PrewittY(), want: [][]float64{{-1, -1, -1}, {0, 0, 0}, {1, 1, 1}}},
		{name: "Laplacian", k: Laplacian(), want: [][]float64{{0, 1, 0}, {1, -4, 1}, {0, 1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for r := range tt.want {
				for c := range tt.want[r] {
					if got := tt.k.At(r, c); got != tt.want[r][c] {
						t.Fatalf("At(%d,%d) = %v, want %v", r, c, got, tt.want[r][c])
					}
				}
			}
		})
	}

	if Laplacian().Sum() != 0 || SobelX().Sum() != 0 || PrewittX().Sum() != 0 {
		t.Fatal("derivative kernels must sum to zero")
	}
	if Sharpen().Sum() != 1 {
		t.Fatalf("Sharpen().Sum() = %v, want 1", Sharpen().Sum())
	}
}

func TestImpulseResponseSobelVsPrewitt(t *testing.T) {
	img := testutil.Impulse(9, 9, 4, 4)

	response := func(k *conv.Kernel) (edge, corner float64) {
		out, err := conv.Convolve(img, k, conv.ZeroPad)
		if err != nil {
			t.Fatalf("Convolve: %v", err)
		}
		if out.At(4, 4) != k.At(1, 1) {
			t.Fatalf("center = %v, want %v", out.At(4, 4), k.At(1, 1))
		}
		return math.Abs(out.At(4, 3)), math.Abs(out.At(3, 3))
	}

	edge, corner := response(SobelX())
	if edge != 2*corner || corner != 1 {
		t.Fatalf("Sobel edge/corner = %v/%v, want 2/1", edge, corner)
	}
	edge, corner = response(PrewittX())
	if edge != corner || corner != 1 {
		t.Fatalf("Prewitt edge/corner = %v/%v, want 1/1", edge, corner)
	}
}
