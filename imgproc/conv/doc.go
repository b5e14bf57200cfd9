// Package conv implements 2D spatial filtering of real images with odd-sized
// kernels.
//
// # Kernels
//
// A [Kernel] is an immutable odd×odd weight grid whose anchor is its exact
// center. Kernels are built from rows ([NewKernel]), flat data
// ([NewKernelData]) or as the outer product of two 1D kernels ([Outer]).
// Ready-made kernels live in the kernels package.
//
// # Filtering
//
// [Convolve] evaluates
//
//	out[r,c] = Σ img[r+dr, c+dc] · k[ar+dr, ac+dc]
//
// for every pixel. No flip is applied, which matches the behavior of common
// image-processing toolkits. Output is the same size as the input, unclamped
// and unscaled. [ConvolveSeparable] computes the same result for separable
// kernels with two 1D passes.
//
// # Boundaries
//
// Samples outside the image are synthesized according to a [Boundary]:
//
//	Replicate   aaa|abcd|ddd
//	ZeroPad     000|abcd|000
//	Reflect     cba|abcd|dcb
//	Reflect101  dcb|abcd|cba
//	Wrap        bcd|abcd|abc
//
// Replicate is the zero value. Interior pixels, whose full kernel footprint
// lies inside the image, are identical under every policy.
//
// # Gradients
//
// [GradientMagnitude] and [GradientDirection] combine the responses of a
// derivative kernel pair such as Sobel X and Y.
package conv
