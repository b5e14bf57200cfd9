// Package testutil provides deterministic test images and tolerance helpers
// shared by the algo-imgproc test suites.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// Noise returns a height×width grid of uniform noise in [-amplitude, amplitude)
// drawn from a fixed seed.
func Noise(seed int64, amplitude float64, height, width int) *grid.Real {
	g := grid.MustNew[float64](height, width)
	rng := rand.New(rand.NewSource(seed))
	for i := range g.Data() {
		g.Data()[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}

// Impulse returns a zero grid with a single 1.0 at (r, c).
func Impulse(height, width, r, c int) *grid.Real {
	g := grid.MustNew[float64](height, width)
	if g.InBounds(r, c) {
		g.Set(r, c, 1)
	}
	return g
}

// Constant returns a grid with every sample equal to value.
func Constant(value float64, height, width int) *grid.Real {
	g := grid.MustNew[float64](height, width)
	g.Fill(value)
	return g
}

// Square describes a filled axis-aligned square by its top-left corner.
type Square struct {
	Row, Col, Size int
}

// Squares paints value into every square of a zero grid.
func Squares(height, width int, value float64, squares ...Square) *grid.Real {
	g := grid.MustNew[float64](height, width)
	for _, sq := range squares {
		for r := sq.Row; r < sq.Row+sq.Size; r++ {
			for c := sq.Col; c < sq.Col+sq.Size; c++ {
				if g.InBounds(r, c) {
					g.Set(r, c, value)
				}
			}
		}
	}
	return g
}

// SquaresMask is the binary-mask counterpart of Squares.
func SquaresMask(height, width int, squares ...Square) *grid.Mask {
	return grid.Map(Squares(height, width, 1, squares...), func(v float64) bool { return v != 0 })
}

// Disc paints a filled disc of the given radius centered at (r, c).
func Disc(g *grid.Real, r, c int, radius, value float64) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			dy, dx := float64(y-r), float64(x-c)
			if dy*dy+dx*dx <= radius*radius {
				g.Set(y, x, value)
			}
		}
	}
}
