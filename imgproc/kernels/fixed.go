package kernels

import "github.com/cwbudde/algo-imgproc/imgproc/conv"

// SobelX responds to horizontal intensity change (vertical edges).
func SobelX() *conv.Kernel {
	return conv.MustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
}

// SobelY is the transpose of SobelX.
func SobelY() *conv.Kernel {
	return SobelX().Transpose()
}

// PrewittX is the unweighted counterpart of SobelX.
func PrewittX() *conv.Kernel {
	return conv.MustKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
}

// PrewittY is the transpose of PrewittX.
func PrewittY() *conv.Kernel {
	return PrewittX().Transpose()
}

// Laplacian returns the 4-neighbor discrete Laplacian.
func Laplacian() *conv.Kernel {
	return conv.MustKernel([][]float64{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})
}

// Sharpen returns the identity plus the negated Laplacian.
func Sharpen() *conv.Kernel {
	return conv.MustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
}
