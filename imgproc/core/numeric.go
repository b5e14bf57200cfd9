package core

// Clamp limits value to [lo, hi]. Swapped bounds are accepted.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	default:
		return value
	}
}

// IsPowerOfTwo reports whether n is a positive power of two. Such axis
// lengths take the radix-2 FFT path.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
