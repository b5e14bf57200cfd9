//go:build !fastmath

package spectrum

import "math"

func logE(x float64) float64 {
	return math.Log(x)
}
