// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package stats

import (
	"fmt"
	"math"
	"strings"

	tdigest "github.com/caio/go-tdigest/v4"

	"github.com/bpfsnoop/lowhist/internal/mathx"
	"github.com/bpfsnoop/lowhist/internal/slicex"
)

// Decorator paints already formatted numbers. histogram.Styler satisfies it.
type Decorator interface {
	Label(s string) string
}

type plain struct{}

func (plain) Label(s string) string { return s }

// Summary holds aggregate values of a sample set. It is immutable once built.
type Summary struct {
	count  int
	sum    float64
	min    float64
	max    float64
	mean   float64
	vari   float64
	stdDev float64

	p50, p90, p95, p99 float64
}

// New computes the summary of values. An empty slice yields a zero Summary.
// Percentiles rank only finite samples and stay zero when there are none.
func New(values []float64) Summary {
	var s Summary
	if len(values) == 0 {
		return s
	}

	s.count = len(values)
	s.sum = slicex.Sum(values)
	s.min, s.max = slicex.MinMax(values)
	s.mean = s.sum / float64(s.count)

	var sq float64
	for _, v := range values {
		d := v - s.mean
		sq += d * d
	}
	s.vari = sq / float64(s.count)
	s.stdDev = math.Sqrt(s.vari)

	// Compression 100 is always accepted, so New only fails on invalid options.
	t, err := tdigest.New(tdigest.Compression(100))
	if err != nil {
		return s
	}

	var ranked int
	for _, v := range values {
		if !mathx.IsFinite(v) {
			continue
		}
		if err := t.Add(v); err != nil {
			continue
		}
		ranked++
	}
	if ranked == 0 {
		return s
	}

	s.p50 = t.Quantile(0.50)
	s.p90 = t.Quantile(0.90)
	s.p95 = t.Quantile(0.95)
	s.p99 = t.Quantile(0.99)

	return s
}

func (s Summary) Count() int { return s.count }
func (s Summary) Sum() float64 { return s.sum }
func (s Summary) Min() float64 { return s.min }
func (s Summary) Max() float64 { return s.max }
func (s Summary) Mean() float64 { return s.mean }
func (s Summary) Var() float64 { return s.vari }
func (s Summary) StdDev() float64 { return s.stdDev }
func (s Summary) P50() float64 { return s.p50 }
func (s Summary) P90() float64 { return s.p90 }
func (s Summary) P95() float64 { return s.p95 }
func (s Summary) P99() float64 { return s.p99 }
func (s Summary) Empty() bool { return s.count == 0 }
func (s Summary) String() string { return s.Format(plain{}) }

// Format renders the summary as three lines, painting every number with d.
func (s Summary) Format(d Decorator) string {
	num := func(f float64) string {
		return d.Label(fmt.Sprintf("%.3f", f))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Samples = %s; Min = %s; Max = %s\n",
		d.Label(fmt.Sprint(s.count)), num(s.min), num(s.max))
	fmt.Fprintf(&sb, "Average = %s; Variance = %s; STD = %s\n",
		num(s.mean), num(s.vari), num(s.stdDev))
	fmt.Fprintf(&sb, "P50 = %s; P90 = %s; P95 = %s; P99 = %s\n",
		num(s.p50), num(s.p90), num(s.p95), num(s.p99))
	return sb.String()
}
