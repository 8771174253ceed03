package utils

import "github.com/mattn/go-runewidth"

// TruncateString truncates a string to the specified display width, keeping
// wide runes (emoji icons) intact.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces up to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
