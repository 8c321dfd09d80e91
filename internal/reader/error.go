// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package reader

import "errors"

var (
	ErrConflictingParsers = errors.New("regex and json field are mutually exclusive")
	ErrInvalidRange       = errors.New("min must not be greater than max")
	errSkipped            = errors.New("skipped")
)
