// Package core holds the small shared pieces of algo-imgproc: processing
// options and the numeric helpers the imgproc packages have in common.
package core
