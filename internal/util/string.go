// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "github.com/mattn/go-runewidth"

// StringWidth returns the display width of s in terminal columns,
// counting CJK and other wide runes as two. Tab widths, indicator sizing,
// and the cell-grid painter's MeasureText all go through here.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates s to at most maxWidth display columns,
// appending "..." when anything was cut and the budget allows it.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadWidth pads s with trailing spaces to exactly width columns,
// truncating first if s is too wide.
func PadWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateWidth(s, width)
	return runewidth.FillRight(s, width)
}
