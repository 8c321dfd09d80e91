// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package histogram

import "github.com/fatih/color"

// Styler decorates already laid out text. It must not change what the text
// says, only how it looks.
type Styler interface {
	Bar(s string) string
	Label(s string) string
	Count(s string) string
}

// PlainStyler returns every string unchanged.
type PlainStyler struct{}

func (PlainStyler) Bar(s string) string { return s }
func (PlainStyler) Label(s string) string { return s }
func (PlainStyler) Count(s string) string { return s }

// ColorStyler wraps strings in ANSI escapes: red bars, blue labels and green
// counts.
type ColorStyler struct {
	bar   *color.Color
	label *color.Color
	count *color.Color
}

// NewColorStyler returns a ColorStyler that always emits escapes, regardless
// of whether stdout is a terminal. Callers pick PlainStyler to turn color off.
func NewColorStyler() *ColorStyler {
	s := &ColorStyler{
		bar:   color.New(color.FgRed),
		label: color.New(color.FgBlue),
		count: color.New(color.FgGreen),
	}
	s.bar.EnableColor()
	s.label.EnableColor()
	s.count.EnableColor()
	return s
}

func (s *ColorStyler) Bar(str string) string { return s.bar.Sprint(str) }
func (s *ColorStyler) Label(str string) string { return s.label.Sprint(str) }
func (s *ColorStyler) Count(str string) string { return s.count.Sprint(str) }

// NewStyler returns a ColorStyler when colorful is set, else PlainStyler.
func NewStyler(colorful bool) Styler {
	if colorful {
		return NewColorStyler()
	}
	return PlainStyler{}
}
