package block

import (
	"reflect"
	"testing"
)

func TestCellMinSize(t *testing.T) {
	c := NewCell("Source")
	if c.MinWidth() != 8 || c.MinHeight() != 1 {
		t.Fatalf("min size = %dx%d, want 8x1", c.MinWidth(), c.MinHeight())
	}
	if got := NewCell("").MinWidth(); got != 2 {
		t.Errorf("empty cell min width = %d, want 2", got)
	}
	if c.Text() != "Source" {
		t.Errorf("Text() = %q", c.Text())
	}
}

func TestCellHorizontalCentering(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"X", 5, "  X  "},
		{"X", 6, "  X   "},
		{"D3", 7, "   D3  "},
		{"4.0", 7, "  4.0  "},
		{"2.0", 6, " 2.0  "},
		{"abc", 0, " abc "},
	}
	for _, tt := range tests {
		c := NewCell(tt.text)
		c.SetWidth(tt.width)
		lines := checkGrid(t, tt.text, c)
		if lines[0] != tt.want {
			t.Errorf("Cell(%q) at width %d = %q, want %q", tt.text, tt.width, lines[0], tt.want)
		}
	}
}

func TestCellVerticalCentering(t *testing.T) {
	tests := []struct {
		height int
		line   int
	}{
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{6, 2},
	}
	for _, tt := range tests {
		c := NewCell("X")
		c.SetHeight(tt.height)
		lines := checkGrid(t, "X", c)
		for i, line := range lines {
			want := "   "
			if i == tt.line {
				want = " X "
			}
			if line != want {
				t.Errorf("height %d: line %d = %q, want %q", tt.height, i, line, want)
			}
		}
	}
}

func TestCellHeightFourLayout(t *testing.T) {
	c := NewCell("X")
	c.SetWidth(5)
	c.SetHeight(4)
	want := []string{"     ", "  X  ", "     ", "     "}
	if got := c.Render(); !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
