// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package histogram

import (
	"fmt"

	"github.com/bpfsnoop/lowhist/internal/mathx"
)

// Stats is the precomputed summary a Histogram is seeded from. Only Min is
// used to place the buckets; Max is kept for callers deriving the step.
type Stats interface {
	Min() float64
	Max() float64
}

// Bucket is the half-open interval [Start, End) and the number of samples
// that fell into it.
type Bucket struct {
	Start float64
	End   float64
	Count int
}

func (b *Bucket) increment() int {
	b.Count++
	return b.Count
}

// Histogram bins samples into fixed-width buckets spanning [min, max], where
// max = min + size*step. A sample equal to max lands in the last bucket.
//
// Histogram is not safe for concurrent use: Add updates a bucket counter and
// top in one unguarded read-modify-write.
type Histogram struct {
	buckets []Bucket
	min     float64
	max     float64
	step    float64
	top     int
	last    int

	dropped int

	stats Stats
}

// New allocates size buckets of width step starting at stats.Min().
func New(size int, step float64, stats Stats) (*Histogram, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !(step > 0) || !mathx.IsFinite(step) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	lo := stats.Min()
	if !mathx.IsFinite(lo) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMin, lo)
	}

	hi := lo + step*float64(size)
	if !mathx.IsFinite(hi) {
		return nil, fmt.Errorf("%w: %d buckets of %v from %v overflow", ErrInvalidStep, size, step, lo)
	}

	h := &Histogram{
		buckets: make([]Bucket, size),
		min:     lo,
		max:     hi,
		step:    step,
		last:    size - 1,
		stats:   stats,
	}
	for i := range h.buckets {
		h.buckets[i].Start = lo + step*float64(i)
		h.buckets[i].End = lo + step*float64(i+1)
	}

	return h, nil
}

// Load adds values in order.
func (h *Histogram) Load(values []float64) {
	for _, v := range values {
		h.Add(v)
	}
}

// Add counts v in its bucket. Values outside [min, max], and NaN, are dropped.
func (h *Histogram) Add(v float64) {
	slot, ok := h.findSlot(v)
	if !ok {
		h.dropped++
		return
	}

	h.top = max(h.top, h.buckets[slot].increment())
}

func (h *Histogram) findSlot(v float64) (int, bool) {
	if !(v >= h.min && v <= h.max) {
		return 0, false
	}

	return max(0, min(int((v-h.min)/h.step), h.last)), true
}

// Buckets returns a copy of the buckets, lowest interval first.
func (h *Histogram) Buckets() []Bucket {
	buckets := make([]Bucket, len(h.buckets))
	copy(buckets, h.buckets)
	return buckets
}

// Size returns the number of buckets.
func (h *Histogram) Size() int { return len(h.buckets) }

// Min returns the lower bound of the first bucket.
func (h *Histogram) Min() float64 { return h.min }

// Max returns the upper bound of the last bucket, min + size*step.
func (h *Histogram) Max() float64 { return h.max }

// Step returns the width of every bucket.
func (h *Histogram) Step() float64 { return h.step }

// Top returns the largest bucket count.
func (h *Histogram) Top() int { return h.top }

// Dropped returns how many samples fell outside [min, max].
func (h *Histogram) Dropped() int { return h.dropped }

// Stats returns the summary the histogram was seeded from.
func (h *Histogram) Stats() Stats { return h.stats }
