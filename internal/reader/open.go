// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Stdin is the path meaning "read from standard input".
const Stdin = "-"

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error {
	return rc.close()
}

// Open returns a stream for path. Files ending in .xz, .zst or .zstd are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".xz":
		r, err := xz.NewReader(fd)
		if err != nil {
			_ = fd.Close()
			return nil, fmt.Errorf("failed to create xz reader for %s: %w", path, err)
		}
		return &readCloser{Reader: r, close: fd.Close}, nil

	case ".zst", ".zstd":
		dec, err := zstd.NewReader(fd)
		if err != nil {
			_ = fd.Close()
			return nil, fmt.Errorf("failed to create zstd reader for %s: %w", path, err)
		}
		return &readCloser{Reader: dec, close: func() error {
			dec.Close()
			return fd.Close()
		}}, nil
	}

	return fd, nil
}
