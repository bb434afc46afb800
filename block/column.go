package block

// Column stacks its children top to bottom. All children render at the
// column's width.
type Column struct {
	size
	blocks []Block
}

// NewColumn creates an empty column.
func NewColumn() *Column {
	return &Column{}
}

// Add implements Container.
func (c *Column) Add(b Block) {
	c.blocks = append(c.blocks, b)
	c.SetWidth(c.MinWidth())
	c.SetHeight(c.MinHeight())
}

// Children implements Container.
func (c *Column) Children() []Block {
	return c.blocks
}

// MinWidth implements Block: the widest child.
func (c *Column) MinWidth() int {
	w := 0
	for _, b := range c.blocks {
		w = max(w, b.MinWidth())
	}
	return w
}

// MinHeight implements Block: the sum of the children's heights.
func (c *Column) MinHeight() int {
	h := 0
	for _, b := range c.blocks {
		h += b.MinHeight()
	}
	return h
}

// Render implements Block.
// Extra height set on the column is not distributed among children; give a
// specific child more height before adding it instead.
func (c *Column) Render() []string {
	var lines []string
	for _, b := range c.blocks {
		b.SetWidth(c.width)
		lines = append(lines, b.Render()...)
	}
	return lines
}
