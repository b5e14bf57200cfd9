package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Kernel is an odd-sized real weight grid anchored at its exact center.
// Kernels are immutable once built.
type Kernel struct {
	data   []float64
	height int
	width  int
}

// NewKernel copies rows into a kernel. Both dimensions must be odd and >= 1
// and all rows must have the same length.
func NewKernel(rows [][]float64) (*Kernel, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidKernel)
	}
	k := &Kernel{height: len(rows), width: len(rows[0])}
	if err := validateShape(k.height, k.width); err != nil {
		return nil, err
	}
	k.data = make([]float64, 0, k.height*k.width)
	for r, row := range rows {
		if len(row) != k.width {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d", ErrInvalidKernel, r, len(row), k.width)
		}
		k.data = append(k.data, row...)
	}
	return k, nil
}

// NewKernelData builds a kernel from row-major weights.
func NewKernelData(height, width int, data []float64) (*Kernel, error) {
	if err := validateShape(height, width); err != nil {
		return nil, err
	}
	if len(data) != height*width {
		return nil, fmt.Errorf("%w: %d weights for %dx%d", ErrInvalidKernel, len(data), height, width)
	}
	return &Kernel{data: append([]float64(nil), data...), height: height, width: width}, nil
}

// MustKernel is like NewKernel but panics on an invalid shape. It is intended
// for the fixed kernels of the kernels package.
func MustKernel(rows [][]float64) *Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Outer returns the kernel col ⊗ row, i.e. k[i][j] = col[i]·row[j].
func Outer(col, row []float64) (*Kernel, error) {
	if err := validateShape(len(col), len(row)); err != nil {
		return nil, err
	}
	data := make([]float64, 0, len(col)*len(row))
	for _, cv := range col {
		for _, rv := range row {
			data = append(data, cv*rv)
		}
	}
	return &Kernel{data: data, height: len(col), width: len(row)}, nil
}

func validateShape(height, width int) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: %dx%d is empty", ErrInvalidKernel, height, width)
	}
	if height%2 == 0 || width%2 == 0 {
		return fmt.Errorf("%w: %dx%d is not odd-sized", ErrInvalidKernel, height, width)
	}
	return nil
}

// Height returns the number of kernel rows.
func (k *Kernel) Height() int { return k.height }

// Width returns the number of kernel columns.
func (k *Kernel) Width() int { return k.width }

// Anchor returns the center position (height/2, width/2).
func (k *Kernel) Anchor() (row, col int) { return k.height / 2, k.width / 2 }

// At returns the weight at kernel row r, column c.
func (k *Kernel) At(r, c int) float64 { return k.data[r*k.width+c] }

// row returns a read-only view of kernel row r.
func (k *Kernel) row(r int) []float64 {
	return k.data[r*k.width : (r+1)*k.width]
}

// Rows returns a copy of the weights as rows.
func (k *Kernel) Rows() [][]float64 {
	out := make([][]float64, k.height)
	for r := range out {
		out[r] = append([]float64(nil), k.row(r)...)
	}
	return out
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	return vecmath.Sum(k.data)
}

// Transpose returns the kernel mirrored across its main diagonal.
func (k *Kernel) Transpose() *Kernel {
	out := &Kernel{data: make([]float64, len(k.data)), height: k.width, width: k.height}
	for r := 0; r < k.height; r++ {
		for c := 0; c < k.width; c++ {
			out.data[c*out.width+r] = k.data[r*k.width+c]
		}
	}
	return out
}

// Flip returns the kernel rotated by 180 degrees. Correlating with the flipped
// kernel is true convolution with k.
func (k *Kernel) Flip() *Kernel {
	out := &Kernel{data: make([]float64, len(k.data)), height: k.height, width: k.width}
	n := len(k.data)
	for i, v := range k.data {
		out.data[n-1-i] = v
	}
	return out
}

// Scale returns the kernel with every weight multiplied by f.
func (k *Kernel) Scale(f float64) *Kernel {
	out := &Kernel{data: make([]float64, len(k.data)), height: k.height, width: k.width}
	for i, v := range k.data {
		out.data[i] = v * f
	}
	return out
}
