// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the memu application.
package util

import "strconv"

// IntToStr converts an integer to its decimal string form.
func IntToStr(n int) string {
	return strconv.Itoa(n)
}
