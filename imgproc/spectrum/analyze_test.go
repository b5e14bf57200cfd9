package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/fourier"
	"github.com/cwbudde/algo-imgproc/imgproc/kernels"
	"github.com/cwbudde/algo-imgproc/internal/testutil"
)

func TestMagnitudeOnlyConstantImage(t *testing.T) {
	img := testutil.Constant(128, 64, 64)

	s, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if dc := s.Magnitude.At(32, 32); math.Abs(dc-128*64*64) > 1e-6 {
		t.Fatalf("centered DC = %v, want %v", dc, 128*64*64)
	}

	m, err := MagnitudeOnly(s)
	if err != nil {
		t.Fatalf("MagnitudeOnly: %v", err)
	}
	same, err := Transplant(m, m)
	if err != nil {
		t.Fatalf("Transplant: %v", err)
	}
	back, err := Reconstruct(same, OutputModulus)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	testutil.RequireGridNearlyEqual(t, back, img, 1e-9)
}

func TestAnalyzeReconstructRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{16, 16}, {15, 21}} {
		img := testutil.Noise(9, 127, size[0], size[1])

		s, err := Analyze(img)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		back, err := Reconstruct(s, OutputReal)
		if err != nil {
			t.Fatalf("Reconstruct: %v", err)
		}
		testutil.RequireGridNearlyEqual(t, back, img, 1e-9)
	}
}

func TestReconstructModulusIsNonNegative(t *testing.T) {
	img := testutil.Noise(3, 50, 12, 12)
	s, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	p, err := PhaseOnly(s)
	if err != nil {
		t.Fatalf("PhaseOnly: %v", err)
	}
	out, err := Reconstruct(p, OutputModulus)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	for i, v := range out.Data() {
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("sample %d = %v", i, v)
		}
	}

	if _, err := Reconstruct(p, Output(7)); err == nil {
		t.Fatal("unknown output mode accepted")
	}
}

func TestAnalyzerWorkersMatchDefault(t *testing.T) {
	img := testutil.Noise(17, 1, 40, 24)
	want, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	got, err := NewAnalyzer(fourier.WithWorkers(4)).Analyze(img)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	testutil.RequireGridNearlyEqual(t, got.Magnitude, want.Magnitude, 1e-9)
}

func TestKernelResponse(t *testing.T) {
	box, err := kernels.Box(3)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	resp, err := KernelResponse(box, 32)
	if err != nil {
		t.Fatalf("KernelResponse: %v", err)
	}
	// A normalized low-pass passes DC unchanged and attenuates the rest.
	if dc := resp.At(16, 16); math.Abs(dc-1) > 1e-12 {
		t.Fatalf("DC gain = %v, want 1", dc)
	}
	for i, v := range resp.Data() {
		if v > 1+1e-12 {
			t.Fatalf("bin %d gain %v > 1", i, v)
		}
	}

	lap, err := KernelResponse(kernels.Laplacian(), 32)
	if err != nil {
		t.Fatalf("KernelResponse: %v", err)
	}
	if dc := lap.At(16, 16); math.Abs(dc) > 1e-12 {
		t.Fatalf("Laplacian DC gain = %v, want 0", dc)
	}
	// Highest frequency in both axes: |−4 − 2 − 2| = 8.
	if hf := lap.At(0, 0); math.Abs(hf-8) > 1e-9 {
		t.Fatalf("Laplacian Nyquist gain = %v, want 8", hf)
	}
}

func TestKernelResponseErrors(t *testing.T) {
	g, err := kernels.Gaussian(9, 0)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if _, err := KernelResponse(g, 7); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("small size error = %v", err)
	}
	if _, err := KernelResponse(nil, 7); !errors.Is(err, conv.ErrInvalidKernel) {
		t.Fatalf("nil kernel error = %v", err)
	}
}
