package block

import "github.com/drake/tabula/text"

// Cell is a single line of text with one column of padding on each side.
type Cell struct {
	size
	text string
}

// NewCell creates a cell holding text. The text must not contain newlines.
func NewCell(s string) *Cell {
	c := &Cell{text: s}
	c.width = c.MinWidth()
	c.height = c.MinHeight()
	return c
}

// Text returns the cell's content.
func (c *Cell) Text() string {
	return c.text
}

// MinWidth implements Block.
func (c *Cell) MinWidth() int {
	return text.Width(c.text) + 2
}

// MinHeight implements Block.
func (c *Cell) MinHeight() int {
	return 1
}

// Render implements Block.
// The text is centered horizontally with text.Center. Vertically it sits on
// row height/2, except that an even height moves it one row up, so a
// height of 4 leaves one blank row above and two below.
func (c *Cell) Render() []string {
	above := c.height / 2
	under := c.height / 2
	if c.height%2 == 0 {
		above--
	}

	blank := text.Blank(c.width)
	lines := make([]string, 0, c.height)
	for range above {
		lines = append(lines, blank)
	}
	lines = append(lines, text.Center(c.text, c.width))
	for range under {
		lines = append(lines, blank)
	}
	return lines
}
