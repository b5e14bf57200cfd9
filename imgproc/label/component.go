package label

import "image"

// Point is a sub-pixel position. X is the column and Y is the row.
type Point struct {
	X, Y float64
}

// Component is one maximal set of connected foreground pixels.
type Component struct {
	// ID is the 1-based label of the component in the label raster.
	ID int
	// Pixels lists the member positions in row-major order, with X as the
	// column and Y as the row.
	Pixels []image.Point
	// Bounds is the smallest rectangle containing every pixel; Max is
	// exclusive.
	Bounds image.Rectangle
}

// Area returns the pixel count.
func (c Component) Area() int { return len(c.Pixels) }

// Centroid returns the mean pixel position. It is the zero Point for an empty
// component.
func (c Component) Centroid() Point {
	if len(c.Pixels) == 0 {
		return Point{}
	}
	var sx, sy int
	for _, p := range c.Pixels {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(c.Pixels))
	return Point{X: float64(sx) / n, Y: float64(sy) / n}
}

// Contains reports whether p belongs to the component.
func (c Component) Contains(p image.Point) bool {
	if !p.In(c.Bounds) {
		return false
	}
	for _, q := range c.Pixels {
		if q == p {
			return true
		}
	}
	return false
}
