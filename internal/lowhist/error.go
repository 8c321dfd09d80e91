// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package lowhist

import "errors"

var (
	ErrNoData        = errors.New("no data to process")
	ErrTooManyInputs = errors.New("only one input file is supported")
)
