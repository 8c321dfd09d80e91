// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/goccy/go-json"

	"github.com/bpfsnoop/lowhist/internal/mathx"
)

const maxLineSize = 1 << 20

// Options configures how a DataReader turns lines into samples.
type Options struct {
	// Regex extracts the sample from a line: the "value" group if present,
	// else the first group, else the whole match.
	Regex string

	// JSONField reads the sample from this top level field of a JSON object
	// per line. The field may be a number or a numeric string.
	JSONField string

	// Match skips lines not matching this glob.
	Match string

	// Min and Max, when set, discard samples outside them.
	Min *float64
	Max *float64

	// Verbose logs every skipped line.
	Verbose bool
}

// DataReader parses one sample per line.
type DataReader struct {
	re      *regexp.Regexp
	reGroup int

	field string
	match glob.Glob

	min, max *float64
	verbose  bool

	skipped int
}

func NewDataReader(opts Options) (*DataReader, error) {
	if opts.Regex != "" && opts.JSONField != "" {
		return nil, ErrConflictingParsers
	}
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, *opts.Min, *opts.Max)
	}

	r := &DataReader{
		field:   opts.JSONField,
		min:     opts.Min,
		max:     opts.Max,
		verbose: opts.Verbose,
	}

	if opts.Regex != "" {
		re, err := regexp.Compile(opts.Regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile regex %q: %w", opts.Regex, err)
		}

		r.re = re
		if idx := re.SubexpIndex("value"); idx > 0 {
			r.reGroup = idx
		} else if re.NumSubexp() > 0 {
			r.reGroup = 1
		}
	}

	if opts.Match != "" {
		g, err := glob.Compile(opts.Match)
		if err != nil {
			return nil, fmt.Errorf("failed to compile match pattern %q: %w", opts.Match, err)
		}
		r.match = g
	}

	return r, nil
}

// Read returns all samples of rd in input order.
func (r *DataReader) Read(rd io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var values []float64
	var lineno int
	for scanner.Scan() {
		lineno++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := r.parse(line)
		if err != nil {
			r.skipped++
			if r.verbose {
				log.Printf("Skipping line %d: %v", lineno, err)
			}
			continue
		}

		if (r.min != nil && v < *r.min) || (r.max != nil && v > *r.max) {
			r.skipped++
			continue
		}

		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return values, fmt.Errorf("failed to read line %d: %w", lineno+1, err)
	}

	return values, nil
}

// Skipped returns how many non-empty lines did not yield a sample.
func (r *DataReader) Skipped() int {
	return r.skipped
}

func (r *DataReader) parse(line string) (float64, error) {
	if r.match != nil && !r.match.Match(line) {
		return 0, fmt.Errorf("%w: no match", errSkipped)
	}

	switch {
	case r.re != nil:
		m := r.re.FindStringSubmatch(line)
		if m == nil {
			return 0, fmt.Errorf("%w: regex did not match", errSkipped)
		}
		return parseFloat(m[r.reGroup])

	case r.field != "":
		return r.parseJSON(line)

	default:
		return parseFloat(line)
	}
}

func (r *DataReader) parseJSON(line string) (float64, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return 0, fmt.Errorf("invalid json: %w", err)
	}

	val, ok := obj[r.field]
	if !ok {
		return 0, fmt.Errorf("%w: field %q not found", errSkipped, r.field)
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		return parseFloat(v)
	default:
		return 0, fmt.Errorf("field %q is %T, not a number", r.field, val)
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if !mathx.IsFinite(v) {
		return 0, fmt.Errorf("%w: non-finite number %q", errSkipped, s)
	}
	return v, nil
}
