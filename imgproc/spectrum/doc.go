// Package spectrum converts complex frequency buffers to and from polar form
// and runs the centered analysis/reconstruction pipeline.
//
// # Codec
//
// [Decompose] splits a [grid.Complex] into a [Spectrum] of magnitude and
// phase; [Recompose] rebuilds it. For every buffer z,
// Recompose(Decompose(z)) reproduces z within floating-point tolerance.
// Phase is reported in (−π, π], so Decompose(Recompose(s)) reproduces any s
// whose magnitudes are positive and whose phases lie in that interval.
//
// # Policies
//
// [MagnitudeOnly] drops the phase, [PhaseOnly] drops the magnitude, and
// [Transplant] crosses the magnitude of one image with the phase of another.
//
// # Pipeline
//
//	s, _ := spectrum.Analyze(img)               // FFT, shift, decompose
//	m, _ := spectrum.MagnitudeOnly(s)
//	back, _ := spectrum.Reconstruct(m, spectrum.OutputModulus)
//
// Reconstruct does not rescale contrast. [LogMagnitude] produces the usual
// 20·ln(|F|+1) display spectrum and [KernelResponse] the frequency response
// of a convolution kernel. Building with -tags fastmath computes the
// logarithm with algo-approx instead of the math package.
package spectrum
