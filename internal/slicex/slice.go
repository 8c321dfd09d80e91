// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package slicex

import "cmp"

// MinMax returns the smallest and largest elements of s, or zero values when
// s is empty.
func MinMax[T cmp.Ordered](s []T) (lo, hi T) {
	if len(s) == 0 {
		return
	}

	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sum[T number](s []T) T {
	var sum T
	for _, v := range s {
		sum += v
	}
	return sum
}
