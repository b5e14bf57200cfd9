// Package fourier implements the 2D discrete Fourier transform over
// [grid.Complex] buffers, plus the quadrant shift that centers the
// zero-frequency term.
//
// # Transforms
//
// The 2D DFT is computed by separability: a 1D transform along every row,
// then along every column. Each axis picks its own backend:
//
//   - power-of-two lengths use algo-fft plans
//   - other lengths use gonum's mixed-radix FFT
//   - [WithDirect] forces the O(N²) reference DFT everywhere
//
// All backends agree within floating-point tolerance. [Inverse] is scaled by
// 1/(H·W), so Inverse(Forward(x)) reproduces x.
//
//	spec, err := fourier.ForwardReal(img)
//	back, err := fourier.Inverse(spec)
//
// # Shift
//
// [Shift] moves the DC term from (0,0) to (H/2, W/2); [Unshift] undoes it for
// any dimensions, odd or even.
//
// # Parallelism
//
// Row and column transforms are independent. [WithWorkers] spreads them over
// goroutines without changing the result.
package fourier
