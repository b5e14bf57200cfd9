// Package grid provides the dense 2D sample buffers shared by every
// algo-imgproc package.
//
// A [Grid] stores height×width samples in row-major order. The sample type is
// restricted to float64 (intensity and filter responses), complex128
// (frequency-domain data) and bool (binary masks):
//
//	img, err := grid.New[float64](480, 640)
//	img.Set(10, 20, 1.0)
//	row := img.Row(10) // mutable view of row 10
//
// Operations that produce a new buffer never alias their input.
package grid

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrInvalidDimension is returned for empty buffers and for buffers whose
// shapes differ where equal shapes are required.
var ErrInvalidDimension = errors.New("grid: invalid dimension")

// Sample is the set of element types a Grid can hold.
type Sample interface {
	float64 | complex128 | bool
}

// Grid is a dense row-major 2D buffer with fixed dimensions.
type Grid[T Sample] struct {
	data   []T
	width  int
	height int
}

// Real is a grid of signed real samples.
type Real = Grid[float64]

// Complex is a grid of complex samples.
type Complex = Grid[complex128]

// Mask is a binary mask; true marks foreground.
type Mask = Grid[bool]

// New returns a zeroed grid with the given dimensions.
func New[T Sample](height, width int) (*Grid[T], error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}
	return &Grid[T]{
		data:   make([]T, height*width),
		width:  width,
		height: height,
	}, nil
}

// MustNew is like New but panics on invalid dimensions. It is meant for
// fixed-size buffers in tests and examples.
func MustNew[T Sample](height, width int) *Grid[T] {
	g, err := New[T](height, width)
	if err != nil {
		panic(err)
	}
	return g
}

// FromRows copies a slice of equal-length rows into a new grid.
func FromRows[T Sample](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimension)
	}

	g, err := New[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrInvalidDimension, r, len(row), g.width)
		}
		copy(g.Row(r), row)
	}
	return g, nil
}

// FromData wraps a row-major slice. The slice is copied.
func FromData[T Sample](height, width int, data []T) (*Grid[T], error) {
	g, err := New[T](height, width)
	if err != nil {
		return nil, err
	}
	if len(data) != height*width {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidDimension, len(data), height, width)
	}
	copy(g.data, data)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of samples.
func (g *Grid[T]) Len() int { return len(g.data) }

// Empty reports whether g is nil or has no samples.
func (g *Grid[T]) Empty() bool {
	return g == nil || len(g.data) == 0
}

// At returns the sample at row r, column c. It panics when out of range.
func (g *Grid[T]) At(r, c int) T {
	return g.data[g.index(r, c)]
}

// Set stores v at row r, column c. It panics when out of range.
func (g *Grid[T]) Set(r, c int, v T) {
	g.data[g.index(r, c)] = v
}

// InBounds reports whether (r, c) addresses a sample of g.
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Row returns a mutable view of row r.
func (g *Grid[T]) Row(r int) []T {
	start := r * g.width
	return g.data[start : start+g.width]
}

// Data returns the backing row-major slice.
func (g *Grid[T]) Data() []T { return g.data }

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, g.height)
	for r := range out {
		out[r] = append([]T(nil), g.Row(r)...)
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		data:   append([]T(nil), g.data...),
		width:  g.width,
		height: g.height,
	}
}

// Fill sets every sample to v in place.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

func (g *Grid[T]) index(r, c int) int {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", r, c, g.height, g.width))
	}
	return r*g.width + c
}

// SameSize reports whether a and b have identical dimensions.
func SameSize[T, U Sample](a *Grid[T], b *Grid[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Check returns ErrInvalidDimension when g is nil or empty.
func Check[T Sample](g *Grid[T]) error {
	if g.Empty() {
		return fmt.Errorf("%w: empty buffer", ErrInvalidDimension)
	}
	return nil
}

// CheckSameSize returns ErrInvalidDimension unless a and b are non-empty and
// equally shaped.
func CheckSameSize[T, U Sample](a *Grid[T], b *Grid[U]) error {
	if err := Check(a); err != nil {
		return err
	}
	if err := Check(b); err != nil {
		return err
	}
	if !SameSize(a, b) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrInvalidDimension, a.height, a.width, b.height, b.width)
	}
	return nil
}

// Map returns a new grid with fn applied to every sample of g.
func Map[T, U Sample](g *Grid[T], fn func(T) U) *Grid[U] {
	out := &Grid[U]{
		data:   make([]U, len(g.data)),
		width:  g.width,
		height: g.height,
	}
	for i, v := range g.data {
		out.data[i] = fn(v)
	}
	return out
}

// ToComplex lifts a real grid into the complex plane.
func ToComplex(g *Real) *Complex {
	return Map(g, func(v float64) complex128 { return complex(v, 0) })
}

// RealPart returns the real component of every sample.
func RealPart(g *Complex) *Real {
	return Map(g, func(v complex128) float64 { return real(v) })
}

// ImagPart returns the imaginary component of every sample.
func ImagPart(g *Complex) *Real {
	return Map(g, func(v complex128) float64 { return imag(v) })
}

// Modulus returns |z| for every sample.
func Modulus(g *Complex) *Real {
	return Map(g, cmplx.Abs)
}

// MaxAbsDiff returns the largest absolute element difference of two equally
// shaped real grids.
func MaxAbsDiff(a, b *Real) (float64, error) {
	if err := CheckSameSize(a, b); err != nil {
		return 0, err
	}
	var maxDiff float64
	for i := range a.data {
		maxDiff = math.Max(maxDiff, math.Abs(a.data[i]-b.data[i]))
	}
	return maxDiff, nil
}
