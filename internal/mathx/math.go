// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package mathx

import "math"

// CeilLog10 returns max(1, ceil(log10(n))), computed on integers so powers of
// ten are exact.
func CeilLog10(n int) int {
	k := 0
	for p := 1; p < n; p *= 10 {
		k++
	}
	return max(1, k)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
