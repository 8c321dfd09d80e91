// Copyright 2025 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/fatih/color"

var (
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)
