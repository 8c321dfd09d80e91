// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

var (
	colorful   bool
	testName   string
	lowhistBin string
)

type flags struct {
	noColor bool

	testCase
	match []string

	testFile string
	testDir  string
}

func parseFlags() *flags {
	var f flags

	flag.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	flag.StringVar(&lowhistBin, "bin", "./lowhist", "path of the lowhist binary under test")
	flag.StringVar(&f.tag, "tag", "", "tags for the test case")
	flag.StringVar(&f.test, "test", "", "lowhist arguments of the test case")
	flag.StringSliceVar(&f.match, "match", nil, "lines the stdout/stderr output must contain")
	flag.IntVar(&f.exitCode, "exit", 0, "expected exit code of lowhist")
	flag.DurationVar(&f.timeout, "timeout", 5*time.Second, "timeout for the test case")

	flag.StringVar(&testName, "name", "", "name of the test case to run in the file or directory")
	flag.StringVar(&f.testFile, "test-file", "", "test the cases in the specified file")
	flag.StringVar(&f.testDir, "test-dir", "", "test the cases in the specified directory")

	flag.Parse()

	if f.test != "" {
		f.test = lowhistBin + " " + f.test
	}
	f.matches = f.match

	f.noColor = f.noColor || !isatty(os.Stdout.Fd())
	colorful = !f.noColor

	return &f
}

// isatty checks if the given file descriptor is a terminal (TTY).
func isatty(fd uintptr) bool {
	// Attempt to get terminal attributes for the file descriptor using IoctlGetTermios.
	// If the call succeeds (err is nil), the file descriptor is a TTY.
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
