// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package lowhist

import (
	"fmt"
	"io"
	"math"

	"github.com/bpfsnoop/lowhist/internal/histogram"
	"github.com/bpfsnoop/lowhist/internal/reader"
	"github.com/bpfsnoop/lowhist/internal/stats"
)

// Run reads the samples named by flags and writes their histogram to w.
func Run(flags *Flags, w io.Writer) error {
	VerboseLog("Reading samples from %s ..", flags.Input())

	rc, err := reader.Open(flags.Input())
	if err != nil {
		return err
	}
	defer rc.Close()

	dr, err := reader.NewDataReader(flags.ReaderOptions())
	if err != nil {
		return err
	}

	values, err := dr.Read(rc)
	if err != nil {
		return err
	}
	verboseLogIf(dr.Skipped() != 0, "Skipped %d lines without a usable sample", dr.Skipped())

	if len(values) == 0 {
		return ErrNoData
	}

	summary := stats.New(values)
	size := flags.Intervals()
	step := bucketStep(summary, size)
	DebugLog("Bucketing %d samples into %d buckets of width %v", len(values), size, step)

	hist, err := histogram.New(size, step, summary)
	if err != nil {
		return fmt.Errorf("failed to create histogram: %w", err)
	}
	hist.Load(values)
	verboseLogIf(hist.Dropped() != 0, "Dropped %d samples out of [%v, %v]", hist.Dropped(), hist.Min(), hist.Max())

	styler := histogram.NewStyler(flags.Colorful())
	if flags.ShowStats() {
		if _, err := io.WriteString(w, summary.Format(styler)); err != nil {
			return err
		}
	}

	return histogram.NewRenderer(flags.Width(), styler).Render(w, hist)
}

// bucketStep splits [s.Min(), s.Max()] into size buckets. The step is nudged
// up until min + size*step reaches max, so rounding never drops the largest
// sample. A zero range gets a step of 1.
func bucketStep(s stats.Summary, size int) float64 {
	if size <= 0 {
		return 0
	}

	step := (s.Max() - s.Min()) / float64(size)
	if !(step > 0) {
		return 1
	}

	for s.Min()+step*float64(size) < s.Max() {
		step = math.Nextafter(step, math.Inf(1))
	}
	return step
}
