package fourier

import (
	"testing"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	sizes := []struct {
		name          string
		height, width int
	}{
		{"256x256", 256, 256},
		{"1Kx1K", 1024, 1024},
		{"480x640", 480, 640},
	}

	for _, tc := range sizes {
		x := grid.ToComplex(testutil.Noise(1, 1, tc.height, tc.width))
		for _, workers := range []int{1, 4} {
			t := New(WithWorkers(workers))
			name := tc.name
			if workers > 1 {
				name += "/parallel"
			}
			b.Run(name, func(b *testing.B) {
				b.SetBytes(int64(tc.height * tc.width * 16))
				b.ResetTimer()
				for range b.N {
					_, _ = t.Forward(x)
				}
			})
		}
	}
}
