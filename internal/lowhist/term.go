// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package lowhist

import "golang.org/x/sys/unix"

// isatty checks if the given file descriptor is a terminal (TTY).
func isatty(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// termWidth returns the column count of the terminal behind fd, or 0 if fd
// is not a terminal.
func termWidth(fd uintptr) int {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
