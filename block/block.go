// Package block is a box-layout engine for monospaced text grids.
//
// A grid is a tree of blocks built leaf-first: Cells and divider lines are
// added to Rows and Columns, which derive their minimum size from their
// children. Rendering the root propagates the final width down every
// Column and the final height across every Row, then returns the grid as
// equal-length lines.
//
//	row := block.NewRow()
//	row.Add(block.NewVerticalLine())
//	row.Add(block.NewCell("A1"))
//	row.Add(block.NewVerticalLine())
//	fmt.Println(block.String(row)) // "| A1 |"
//
// Sizes only grow. A block starts at its intrinsic minimum and SetWidth or
// SetHeight can enlarge it but never shrink it, so a tree must not be
// rendered and then extended.
package block

import (
	"fmt"
	"io"
	"strings"
)

// Divider glyphs.
const (
	HorizontalGlyph = '-'
	VerticalGlyph   = '|'
)

// Block is a node in the layout tree.
type Block interface {
	// MinWidth and MinHeight are the intrinsic lower bounds derived from
	// content. Containers recompute them from their children on every call.
	MinWidth() int
	MinHeight() int

	// Width and Height are the effective size used by Render.
	Width() int
	Height() int

	// SetWidth and SetHeight enlarge the effective size to at least the
	// given value. Smaller values are ignored.
	SetWidth(w int)
	SetHeight(h int)

	// Render returns Height() lines, each Width() columns wide.
	Render() []string
}

// Container is a Block that owns an ordered list of children.
type Container interface {
	Block

	// Add appends a child and grows the container to its new minimum size.
	Add(b Block)

	// Children returns the children in insertion order.
	Children() []Block
}

// Compile-time checks.
var (
	_ Block     = (*Cell)(nil)
	_ Block     = (*HorizontalLine)(nil)
	_ Block     = (*VerticalLine)(nil)
	_ Container = (*Column)(nil)
	_ Container = (*Row)(nil)
)

// size holds the grow-only effective dimensions shared by every block.
type size struct {
	width  int
	height int
}

func (s *size) Width() int  { return s.width }
func (s *size) Height() int { return s.height }

func (s *size) SetWidth(w int) {
	if w > s.width {
		s.width = w
	}
}

func (s *size) SetHeight(h int) {
	if h > s.height {
		s.height = h
	}
}

// String joins the rendered lines of b with newlines.
func String(b Block) string {
	return strings.Join(b.Render(), "\n")
}

// Write writes every rendered line of b to w, each followed by a newline.
func Write(w io.Writer, b Block) error {
	var sb strings.Builder
	for _, line := range b.Render() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("block: write: %w", err)
	}
	return nil
}
