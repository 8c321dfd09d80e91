// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package lowhist

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/bpfsnoop/lowhist/internal/reader"
)

const defaultIntervals = 20

var (
	verbose  bool
	debugLog bool
)

type Flags struct {
	input string

	intervals uint
	min, max  float64
	hasMin    bool
	hasMax    bool

	regex     string
	jsonField string
	match     string

	width   uint
	noColor bool
	noStats bool
}

// ParseFlags parses the command line of the process.
func ParseFlags() (*Flags, error) {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		return flags, err
	}

	flags.noColor = flags.noColor || !isatty(os.Stdout.Fd())
	if flags.width == 0 {
		flags.width = uint(max(0, termWidth(os.Stdout.Fd())))
	}

	return flags, nil
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags

	f := flag.NewFlagSet("lowhist", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lowhist [flags] [FILE]\n\nFILE defaults to '-', standard input. .xz and .zst files are decompressed.\n\n")
		f.PrintDefaults()
	}
	f.UintVarP(&flags.intervals, "intervals", "i", defaultIntervals, "number of buckets of the histogram")
	f.Float64Var(&flags.min, "min", 0, "discard samples below this value")
	f.Float64Var(&flags.max, "max", 0, "discard samples above this value")
	f.StringVarP(&flags.regex, "regex", "R", "", "regex extracting the sample from each line, the 'value' named group or the first group is used")
	f.StringVarP(&flags.jsonField, "json-field", "j", "", "read the sample from this field of JSON lines")
	f.StringVarP(&flags.match, "match", "m", "", "only consider lines matching this glob, e.g. '*GET /api*'")
	f.UintVarP(&flags.width, "width", "w", 0, "width of the output in columns, 0 to detect the terminal width")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&flags.noStats, "no-stats", false, "do not print the summary above the histogram")
	f.BoolVarP(&verbose, "verbose", "v", false, "output verbose log")
	f.BoolVarP(&debugLog, "debug-log", "D", false, "output many debug logs")

	f.MarkHidden("debug-log")

	err := f.Parse(args)

	flags.hasMin = f.Changed("min")
	flags.hasMax = f.Changed("max")

	switch f.NArg() {
	case 0:
		flags.input = reader.Stdin
	case 1:
		flags.input = f.Arg(0)
	default:
		return &flags, fmt.Errorf("%w: %v", ErrTooManyInputs, f.Args())
	}

	return &flags, err
}

func (f *Flags) Input() string {
	return f.input
}

func (f *Flags) Intervals() int {
	return int(f.intervals)
}

// Width returns the output width; 0 lets the renderer pick its default.
func (f *Flags) Width() int {
	return int(f.width)
}

func (f *Flags) Colorful() bool {
	return !f.noColor
}

func (f *Flags) ShowStats() bool {
	return !f.noStats
}

func (f *Flags) ReaderOptions() reader.Options {
	opts := reader.Options{
		Regex:     f.regex,
		JSONField: f.jsonField,
		Match:     f.match,
		Verbose:   verbose,
	}
	if f.hasMin {
		opts.Min = &f.min
	}
	if f.hasMax {
		opts.Max = &f.max
	}
	return opts
}
