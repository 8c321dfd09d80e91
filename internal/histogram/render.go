// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package histogram

import (
	"fmt"
	"io"
	"strings"
)

const glyph = "∎"

// Renderer draws a Histogram as a bar chart. It only reads the histogram, so
// one histogram can be rendered many times at different widths.
type Renderer struct {
	width  int
	styler Styler
}

// NewRenderer returns a Renderer fitting width columns. A width <= 0 means
// DefaultWidth; a nil styler means PlainStyler.
func NewRenderer(width int, styler Styler) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if styler == nil {
		styler = PlainStyler{}
	}
	return &Renderer{width: width, styler: styler}
}

func (r *Renderer) Width() int { return r.width }

// Render writes the header and one line per bucket to w.
func (r *Renderer) Render(w io.Writer, h *Histogram) error {
	l := ComputeLayout(h, r.width)

	var sb strings.Builder
	fmt.Fprintf(&sb, "each %s represents a count of %s\n",
		r.styler.Bar(glyph), r.styler.Label(fmt.Sprint(l.Divisor)))
	for i := range h.buckets {
		r.writeBucket(&sb, &h.buckets[i], l)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders h into a string.
func (r *Renderer) String(h *Histogram) string {
	var sb strings.Builder
	_ = r.Render(&sb, h)
	return sb.String()
}

func (r *Renderer) writeBucket(sb *strings.Builder, b *Bucket, l Layout) {
	rng := fmt.Sprintf("%*.3f .. %*.3f", l.RangeWidth, b.Start, l.RangeWidth, b.End)
	cnt := fmt.Sprintf("%*d", l.CountWidth, b.Count)
	bar := strings.Repeat(glyph, b.Count/l.Divisor)

	fmt.Fprintf(sb, "[%s] [%s] %s\n",
		r.styler.Label(rng), r.styler.Count(cnt), r.styler.Bar(bar))
}
