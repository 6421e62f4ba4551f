package common

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// CleanText prepares server text for the terminal: escape sequences and
// control characters other than newline and tab are dropped.
func CleanText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// TruncateLines keeps at most maxLines lines, each cut to width cells,
// marking elided text with an ellipsis.
func TruncateLines(s string, width, maxLines int) string {
	if width <= 0 || maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	clipped := len(lines) > maxLines
	if clipped {
		lines = lines[:maxLines]
	}
	for i, ln := range lines {
		if ansi.StringWidth(ln) > width {
			lines[i] = ansi.Truncate(ln, width, "…")
		}
	}
	if clipped {
		last := len(lines) - 1
		if ansi.StringWidth(lines[last])+1 > width {
			lines[last] = ansi.Truncate(lines[last], width-1, "")
		}
		lines[last] += "…"
	}
	return strings.Join(lines, "\n")
}

// Plural returns "1 comment" / "3 comments".
func Plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
