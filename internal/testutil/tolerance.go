package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// RequireGridNearlyEqual fails t if the grids differ in shape or if any
// sample pair differs by more than eps.
func RequireGridNearlyEqual(t *testing.T, got, want *grid.Real, eps float64) {
	t.Helper()
	if !grid.SameSize(got, want) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Height(), got.Width(), want.Height(), want.Width())
	}
	for r := 0; r < got.Height(); r++ {
		for c := 0; c < got.Width(); c++ {
			diff := math.Abs(got.At(r, c) - want.At(r, c))
			if diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", r, c, got.At(r, c), want.At(r, c), diff, eps)
			}
		}
	}
}

// RequireComplexNearlyEqual is RequireGridNearlyEqual for complex grids,
// comparing |got - want|.
func RequireComplexNearlyEqual(t *testing.T, got, want *grid.Complex, eps float64) {
	t.Helper()
	if !grid.SameSize(got, want) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Height(), got.Width(), want.Height(), want.Width())
	}
	for r := 0; r < got.Height(); r++ {
		for c := 0; c < got.Width(); c++ {
			diff := cmplx.Abs(got.At(r, c) - want.At(r, c))
			if diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", r, c, got.At(r, c), want.At(r, c), diff, eps)
			}
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, g *grid.Real) {
	t.Helper()
	for i, v := range g.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
