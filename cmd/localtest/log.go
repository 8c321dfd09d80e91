// Copyright 2025 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func pr(w io.Writer, c *color.Color, level, format string, a ...any) {
	if colorful {
		c.Fprint(w, level)
		c.Fprintf(w, format, a...)
	} else {
		fmt.Fprint(w, level)
		fmt.Fprintf(w, format, a...)
	}
}

func prInfo(w io.Writer, c *color.Color, format string, a ...any) {
	pr(w, c, "[INF] ", format, a...)
}

func prErr(w io.Writer, c *color.Color, format string, a ...any) {
	pr(w, c, "[ERR] ", format, a...)
}

func prSeparator(w io.Writer, sep string) {
	if colorful {
		yellow.Fprint(w, sep)
	} else {
		fmt.Fprint(w, sep)
	}
}

func prSeparatorIf(w io.Writer, b bool) {
	if b {
		prSeparator(w, "\n==========\n\n")
	}
}

func prLongSeparatorIf(w io.Writer, b bool) {
	if b {
		prSeparator(w, "\n====================\n\n")
	}
}
