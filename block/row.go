package block

// Row places its children side by side, left to right. All children render
// at the row's height.
type Row struct {
	size
	blocks []Block
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{}
}

// Add implements Container.
func (r *Row) Add(b Block) {
	r.blocks = append(r.blocks, b)
	r.SetWidth(r.MinWidth())
	r.SetHeight(r.MinHeight())
}

// Children implements Container.
func (r *Row) Children() []Block {
	return r.blocks
}

// MinWidth implements Block: the sum of the children's widths.
func (r *Row) MinWidth() int {
	w := 0
	for _, b := range r.blocks {
		w += b.MinWidth()
	}
	return w
}

// MinHeight implements Block: the tallest child.
func (r *Row) MinHeight() int {
	h := 0
	for _, b := range r.blocks {
		h = max(h, b.MinHeight())
	}
	return h
}

// Render implements Block.
// Line i of the row is line i of every child, concatenated in order.
func (r *Row) Render() []string {
	var lines []string
	for _, b := range r.blocks {
		b.SetHeight(r.height)
		for i, line := range b.Render() {
			if i < len(lines) {
				lines[i] += line
			} else {
				lines = append(lines, line)
			}
		}
	}
	return lines
}
