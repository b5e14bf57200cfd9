// Package stats computes summary statistics of real images: moments,
// extrema with their positions, energy, contrast and histograms.
package stats
