// Package kernels provides named convolution kernels for use with
// [conv.Convolve].
//
// Generated kernels ([Box], [Gaussian]) take an odd size and return
// [conv.ErrInvalidKernel] otherwise. Fixed 3×3 kernels ([SobelX], [SobelY],
// [PrewittX], [PrewittY], [Laplacian], [Sharpen]) are returned as fresh
// values on every call.
//
// # Gaussian sigma
//
// A non-positive sigma selects [DefaultSigma](n).
package kernels
