// Copyright 2025 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bpfsnoop/lowhist/internal/assert"
)

func report(w io.Writer, what string, started time.Time, passed bool) {
	fmt.Fprintln(w)
	prInfo(w, yellow, "%s completed in %s\n", what, time.Since(started))
	if passed {
		prInfo(w, green, "=== ALL TESTS PASSED ===\n")
	} else {
		prErr(w, red, "=== SOME TESTS FAILED ===\n")
	}
}

func main() {
	var passed bool
	defer func() {
		if !passed {
			os.Exit(1)
		}
	}()

	f := parseFlags()

	_, err := os.Stat(lowhistBin)
	assert.NoErr(err, "Failed to find lowhist binary %s: %v", lowhistBin)

	w := os.Stdout
	started := time.Now()

	switch {
	case f.testFile != "":
		passed = testFile(w, f.testFile)
		report(w, "Test file "+f.testFile, started, passed)

	case f.testDir != "":
		dentries, err := os.ReadDir(f.testDir)
		assert.NoErr(err, "Failed to read test directory %s: %v", f.testDir)

		files := make([]string, 0, len(dentries))
		for _, dent := range dentries {
			if !dent.IsDir() && strings.HasSuffix(dent.Name(), ".txt") {
				files = append(files, dent.Name())
			}
		}
		slices.Sort(files)

		passed = true
		for i, file := range files {
			prLongSeparatorIf(w, i > 0 && testName == "")
			passed = testFile(w, filepath.Join(f.testDir, file)) && passed
		}
		report(w, "Test dir "+f.testDir, started, passed)

	default:
		passed = runTest(w, f.testCase)
	}
}
