package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconLightbulb = "💡" // U+1F4A1
	IconPlay      = "▶" // U+25B6 without VS16
	IconScroll    = "📜" // U+1F4DC
	IconQuestion  = "❓" // U+2753
	IconPalette   = "🎨" // U+1F3A8
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Wide icons (two cells) get two trailing spaces so the next character is
// never swallowed.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}
