// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package histogram

import "errors"

var (
	ErrInvalidSize = errors.New("bucket count must be positive")
	ErrInvalidStep = errors.New("bucket width must be positive and finite")
	ErrInvalidMin  = errors.New("lower bound must be finite")
)
