// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package histogram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bpfsnoop/lowhist/internal/stats"
	"github.com/bpfsnoop/lowhist/internal/test"
)

var basicSamples = []float64{
	-1.0, -1.1, 2.0, 2.0, 2.1, -0.9, 11.0, 11.2, 1.9, 1.99, 1.98, 1.97, 1.96,
}

type bounds struct {
	min, max float64
}

func (b bounds) Min() float64 { return b.min }
func (b bounds) Max() float64 { return b.max }

func newBasicHistogram(t *testing.T) *Histogram {
	t.Helper()

	h, err := New(8, 2.5, stats.New([]float64{-2.0, 14.0}))
	test.AssertNoErr(t, err)
	h.Load(basicSamples)
	return h
}

func recomputeTop(h *Histogram) int {
	var top int
	for _, b := range h.Buckets() {
		top = max(top, b.Count)
	}
	return top
}

func totalCount(h *Histogram) int {
	var total int
	for _, b := range h.Buckets() {
		total += b.Count
	}
	return total
}

func TestNew(t *testing.T) {
	s := stats.New([]float64{-2.0, 14.0})

	t.Run("zero size", func(t *testing.T) {
		_, err := New(0, 1, s)
		test.AssertIsErr(t, err, ErrInvalidSize)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := New(-3, 1, s)
		test.AssertIsErr(t, err, ErrInvalidSize)
	})

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := New(4, step, s)
		test.AssertIsErr(t, err, ErrInvalidStep)
	}

	t.Run("overflowing max", func(t *testing.T) {
		_, err := New(2, 1e308, bounds{min: 0})
		test.AssertIsErr(t, err, ErrInvalidStep)

		_, err = New(4, 1e308, bounds{min: -1e308})
		test.AssertIsErr(t, err, ErrInvalidStep)
	})

	t.Run("non-finite min", func(t *testing.T) {
		_, err := New(4, 1, bounds{min: math.Inf(-1)})
		test.AssertIsErr(t, err, ErrInvalidMin)
	})

	t.Run("boundaries", func(t *testing.T) {
		h, err := New(8, 2.5, s)
		test.AssertNoErr(t, err)
		test.AssertEqual(t, h.Size(), 8)
		test.AssertEqual(t, h.Min(), -2.0)
		test.AssertEqual(t, h.Max(), 18.0)
		test.AssertEqual(t, h.Step(), 2.5)
		test.AssertEqual(t, h.Top(), 0)

		buckets := h.Buckets()
		test.AssertEqual(t, buckets[0].Start, h.Min())
		test.AssertEqual(t, buckets[len(buckets)-1].End, h.Max())
		for i := 0; i+1 < len(buckets); i++ {
			test.AssertEqual(t, buckets[i].End, buckets[i+1].Start)
		}
		for i, b := range buckets {
			test.AssertEqual(t, b.Start, -2.0+2.5*float64(i))
			test.AssertEqual(t, b.End, b.Start+2.5)
			test.AssertEqual(t, b.Count, 0)
		}
	})

	t.Run("adjacency with inexact step", func(t *testing.T) {
		h, err := New(17, 0.1, stats.New([]float64{0.3}))
		test.AssertNoErr(t, err)

		buckets := h.Buckets()
		test.AssertEqual(t, buckets[0].Start, 0.3)
		test.AssertEqual(t, buckets[16].End, h.Max())
		for i := 0; i+1 < len(buckets); i++ {
			test.AssertEqual(t, buckets[i].End, buckets[i+1].Start)
		}
	})
}

func TestLoad(t *testing.T) {
	h := newBasicHistogram(t)

	buckets := h.Buckets()
	test.AssertEqual(t, h.Top(), 8)
	test.AssertEqual(t, buckets[0].Start, -2.0)
	test.AssertEqual(t, buckets[0].End, 0.5)
	test.AssertEqual(t, buckets[0].Count, 3)
	test.AssertEqual(t, buckets[1].Start, 0.5)
	test.AssertEqual(t, buckets[1].End, 3.0)
	test.AssertEqual(t, buckets[1].Count, 8)
	test.AssertEqual(t, buckets[5].Count, 2)
	test.AssertEqual(t, totalCount(h), len(basicSamples))
	test.AssertEqual(t, h.Dropped(), 0)
}

func TestAdd(t *testing.T) {
	t.Run("max lands in last bucket", func(t *testing.T) {
		h := newBasicHistogram(t)
		before := h.Buckets()[7].Count

		h.Add(h.Max())
		test.AssertEqual(t, h.Buckets()[7].Count, before+1)
		test.AssertEqual(t, h.Dropped(), 0)
	})

	t.Run("min lands in first bucket", func(t *testing.T) {
		h := newBasicHistogram(t)
		h.Add(h.Min())
		test.AssertEqual(t, h.Buckets()[0].Count, 4)
	})

	t.Run("bucket start is inclusive", func(t *testing.T) {
		h := newBasicHistogram(t)
		h.Add(0.5)
		test.AssertEqual(t, h.Buckets()[0].Count, 3)
		test.AssertEqual(t, h.Buckets()[1].Count, 9)
		test.AssertEqual(t, h.Top(), 9)
	})

	t.Run("out of range is dropped", func(t *testing.T) {
		h := newBasicHistogram(t)
		before := h.Buckets()

		for _, v := range []float64{-2.0001, 18.0001, -100, 1e9, math.NaN(), math.Inf(1), math.Inf(-1)} {
			h.Add(v)
		}

		test.AssertEqualSlice(t, h.Buckets(), before)
		test.AssertEqual(t, h.Top(), 8)
		test.AssertEqual(t, h.Dropped(), 7)
	})

	t.Run("huge values", func(t *testing.T) {
		h, err := New(2, 1e307, bounds{min: 0})
		test.AssertNoErr(t, err)

		h.Load([]float64{h.Max(), math.MaxFloat64, math.Inf(1), 1.5e307})
		test.AssertEqual(t, h.Buckets()[0].Count, 0)
		test.AssertEqual(t, h.Buckets()[1].Count, 2)
		test.AssertEqual(t, h.Dropped(), 2)
	})

	t.Run("single bucket", func(t *testing.T) {
		h, err := New(1, 1, stats.New([]float64{5}))
		test.AssertNoErr(t, err)

		h.Load([]float64{5, 5.5, 6, 6.5})
		test.AssertEqual(t, h.Buckets()[0].Count, 3)
		test.AssertEqual(t, h.Top(), 3)
		test.AssertEqual(t, h.Dropped(), 1)
	})
}

func TestAddProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	h, err := New(13, 0.75, stats.New([]float64{-3}))
	test.AssertNoErr(t, err)

	var inRange int
	for i := 0; i < 5000; i++ {
		v := rnd.Float64()*14 - 4.5
		before := h.Buckets()

		h.Add(v)

		after := h.Buckets()
		var changed, delta int
		for j := range after {
			if after[j].Count != before[j].Count {
				changed++
				delta += after[j].Count - before[j].Count
			}
		}

		if v >= h.Min() && v <= h.Max() {
			inRange++
			test.AssertEqual(t, changed, 1)
			test.AssertEqual(t, delta, 1)
		} else {
			test.AssertEqual(t, changed, 0)
		}

		if h.Top() != recomputeTop(h) {
			t.Fatalf("top %d diverged from recomputed %d after %v", h.Top(), recomputeTop(h), v)
		}
	}

	test.AssertEqual(t, totalCount(h), inRange)
	test.AssertEqual(t, h.Dropped(), 5000-inRange)
}

func TestLoadOrderIndependent(t *testing.T) {
	h1 := newBasicHistogram(t)

	reversed := make([]float64, len(basicSamples))
	for i, v := range basicSamples {
		reversed[len(basicSamples)-1-i] = v
	}
	h2, err := New(8, 2.5, stats.New([]float64{-2.0, 14.0}))
	test.AssertNoErr(t, err)
	h2.Load(reversed)

	test.AssertEqualSlice(t, h2.Buckets(), h1.Buckets())
	test.AssertEqual(t, h2.Top(), h1.Top())
}

func TestBucketsIsCopy(t *testing.T) {
	h := newBasicHistogram(t)

	buckets := h.Buckets()
	buckets[0].Count = 100

	test.AssertEqual(t, h.Buckets()[0].Count, 3)
	test.AssertEqual(t, h.Top(), 8)
}
