package fourier

import "github.com/cwbudde/algo-imgproc/imgproc/grid"

// Shift swaps the quadrants of g so the sample at (0,0) moves to
// (H/2, W/2). For even dimensions Shift is its own inverse; use Unshift to
// undo it for any dimensions.
func Shift[T grid.Sample](g *grid.Grid[T]) (*grid.Grid[T], error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	return roll(g, g.Height()/2, g.Width()/2)
}

// Unshift is the exact inverse of Shift: the sample at (H/2, W/2) returns to
// (0,0).
func Unshift[T grid.Sample](g *grid.Grid[T]) (*grid.Grid[T], error) {
	if err := grid.Check(g); err != nil {
		return nil, err
	}
	h, w := g.Height(), g.Width()
	return roll(g, h-h/2, w-w/2)
}

// roll circularly moves every sample down by dr rows and right by dc columns.
func roll[T grid.Sample](g *grid.Grid[T], dr, dc int) (*grid.Grid[T], error) {
	h, w := g.Height(), g.Width()
	out, err := grid.New[T](h, w)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h; r++ {
		dst := out.Row((r + dr) % h)
		src := g.Row(r)
		// Each row is a rotation: src[c] lands at (c+dc) % w.
		copy(dst[dc:], src[:w-dc])
		copy(dst[:dc], src[w-dc:])
	}
	return out, nil
}
