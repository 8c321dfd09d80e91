// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/bpfsnoop/lowhist/internal/assert"
	"github.com/bpfsnoop/lowhist/internal/lowhist"
)

func main() {
	flags, err := lowhist.ParseFlags()
	assert.NoErr(err, "Failed to parse flags: %v")

	err = lowhist.Run(flags, os.Stdout)
	assert.NoErr(err, "Failed to render histogram: %v")
}
