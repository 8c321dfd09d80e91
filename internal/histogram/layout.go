// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package histogram

import (
	"fmt"

	"github.com/bpfsnoop/lowhist/internal/mathx"
)

const (
	// DefaultWidth is used when no terminal width is known.
	DefaultWidth = 110

	// brackets, spaces and the " .. " separator framing every line
	extraChars = 10

	fallbackBarLen = 75
)

// Layout holds the per-render geometry of a histogram.
type Layout struct {
	RangeWidth int
	CountWidth int
	MaxBarLen  int
	Divisor    int
}

// ComputeLayout fits h into width columns. A width <= 0 means DefaultWidth.
func ComputeLayout(h *Histogram, width int) Layout {
	if width <= 0 {
		width = DefaultWidth
	}

	var l Layout
	l.RangeWidth = max(len(fmt.Sprintf("%.3f", h.min)), len(fmt.Sprintf("%.3f", h.max)))
	l.CountWidth = mathx.CeilLog10(h.top)

	fixed := l.RangeWidth + l.CountWidth
	if width < fixed+extraChars {
		l.MaxBarLen = fallbackBarLen
	} else {
		l.MaxBarLen = max(1, width-fixed-extraChars)
	}

	l.Divisor = max(1, h.top/l.MaxBarLen)
	return l
}
