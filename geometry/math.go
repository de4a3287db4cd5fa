// Package geometry holds the small numeric helpers and the pairwise box
// distances the connector router branches on.
package geometry

import "math"

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Sign returns -1 for negative x and +1 otherwise, so zero counts as positive.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
