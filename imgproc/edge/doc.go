// Package edge implements gradient operators and the Canny edge detector on
// top of the conv package.
//
// [Sobel] and [Prewitt] return the directional responses together with the
// gradient magnitude and direction. Directions are in degrees with rows
// growing downward, so 90° points toward increasing row index.
//
// [Canny] thins the Sobel magnitude of a Gaussian-smoothed image to one-pixel
// ridges and links them by hysteresis. Thresholds apply to the raw L2
// gradient magnitude.
package edge
