//go:build fastmath

package spectrum

import "github.com/meko-christian/algo-approx"

// logE trades a few ulps for speed; LogMagnitude output is only displayed.
func logE(x float64) float64 {
	return approx.FastLog(x)
}
