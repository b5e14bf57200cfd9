package conv

import (
	"fmt"
	"strings"
)

// Boundary selects how samples outside the image are synthesized.
type Boundary int

const (
	// Replicate clamps coordinates to the nearest edge: aaa|abcd|ddd.
	// It is the default for edge and blob detection.
	Replicate Boundary = iota

	// ZeroPad treats every outside sample as 0.
	ZeroPad

	// Reflect mirrors across the edge, repeating the edge sample: cba|abcd|dcb.
	Reflect

	// Reflect101 mirrors across the edge sample without repeating it:
	// dcb|abcd|cba.
	Reflect101

	// Wrap repeats the image periodically: bcd|abcd|abc.
	Wrap
)

var boundaryNames = map[Boundary]string{
	Replicate:  "replicate",
	ZeroPad:    "zero",
	Reflect:    "reflect",
	Reflect101: "reflect101",
	Wrap:       "wrap",
}

// String returns the policy name accepted by ParseBoundary.
func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Valid reports whether b is a known policy.
func (b Boundary) Valid() bool {
	_, ok := boundaryNames[b]
	return ok
}

// ParseBoundary returns the policy with the given case-insensitive name.
func ParseBoundary(name string) (Boundary, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range boundaryNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBoundary, name)
}

// Index maps coordinate i onto [0, n). ok is false when the sample is
// outside and the policy is ZeroPad.
func (b Boundary) Index(i, n int) (idx int, ok bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch b {
	case ZeroPad:
		return 0, false
	case Reflect:
		period := 2 * n
		i = mod(i, period)
		if i >= n {
			i = period - 1 - i
		}
		return i, true
	case Reflect101:
		if n == 1 {
			return 0, true
		}
		period := 2*n - 2
		i = mod(i, period)
		if i >= n {
			i = period - i
		}
		return i, true
	case Wrap:
		return mod(i, n), true
	default:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	}
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
