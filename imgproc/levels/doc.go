// Package levels provides explicit intensity conversions between signed
// filter responses and display ranges.
//
// Filtering in this module never clamps. Callers that need a bounded range
// call [NormalizeMax], [NormalizeMinMax] or [Quantize] themselves. Degenerate
// inputs (an all-zero or flat image) normalize to zeros rather than NaN.
package levels
