package block

import "strings"

// HorizontalLine is a one-row divider that spans whatever width its
// container gives it.
type HorizontalLine struct {
	size
}

// NewHorizontalLine creates a horizontal divider.
func NewHorizontalLine() *HorizontalLine {
	l := &HorizontalLine{}
	l.height = l.MinHeight()
	return l
}

// MinWidth implements Block.
func (l *HorizontalLine) MinWidth() int { return 0 }

// MinHeight implements Block.
func (l *HorizontalLine) MinHeight() int { return 1 }

// Render implements Block. Only the width is honored.
func (l *HorizontalLine) Render() []string {
	return []string{strings.Repeat(string(HorizontalGlyph), l.width)}
}

// VerticalLine is a one-column divider that spans whatever height its
// container gives it.
type VerticalLine struct {
	size
}

// NewVerticalLine creates a vertical divider.
func NewVerticalLine() *VerticalLine {
	l := &VerticalLine{}
	l.width = l.MinWidth()
	return l
}

// MinWidth implements Block.
func (l *VerticalLine) MinWidth() int { return 1 }

// MinHeight implements Block.
func (l *VerticalLine) MinHeight() int { return 0 }

// Render implements Block. Only the height is honored.
func (l *VerticalLine) Render() []string {
	lines := make([]string, l.height)
	for i := range lines {
		lines[i] = string(VerticalGlyph)
	}
	return lines
}
