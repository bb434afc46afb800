// Package text measures and pads single-line strings for monospaced output.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI drops ANSI escape sequences from s. A sequence runs from ESC
// up to and including the first ASCII letter after it.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	escaped := false
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\x1b':
			escaped = true
			return -1
		case escaped:
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
				escaped = false
			}
			return -1
		}
		return r
	}, s)
}

// Width returns the visible display width of s (excluding ANSI codes).
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Blank returns a run of n spaces.
func Blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Center pads s with spaces to width columns.
//
// When the padding is odd the extra column goes to the left if width is odd
// and to the right if width is even, the same split CPython's str.center
// makes. A string already at least width wide is returned unchanged.
func Center(s string, width int) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	left := pad/2 + (pad & width & 1)
	return Blank(left) + s + Blank(pad-left)
}
