// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package assert

import "log"

// NoErr exits the program if err is not nil. The error is appended to args,
// so format must end with a verb for it, e.g. "Failed to open %s: %v".
func NoErr(err error, format string, args ...any) {
	if err != nil {
		log.Fatalf(format, append(args, err)...)
	}
}

// True exits the program if cond is false.
func True(cond bool, msg string) {
	if !cond {
		log.Fatalln(msg)
	}
}
