package lua

import (
	"slices"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tabula/block"
)

const luaBlockTypeName = "block"

// luaBlock is the userdata payload for a block. owned is set once the block
// has been added to a container, so a script cannot give it a second parent.
type luaBlock struct {
	b     block.Block
	owned bool
}

// registerBlockType registers the block type with the Lua state.
// Call this once during engine initialization.
func registerBlockType(L *glua.LState) {
	mt := L.NewTypeMetatable(luaBlockTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), blockMethods))
	L.SetField(mt, "__tostring", L.NewFunction(blockString))
}

// newBlock wraps b in userdata.
func newBlock(L *glua.LState, b block.Block) *glua.LUserData {
	ud := L.NewUserData()
	ud.Value = &luaBlock{b: b}
	L.SetMetatable(ud, L.GetTypeMetatable(luaBlockTypeName))
	return ud
}

// checkBlock retrieves a block from Lua userdata at the given stack position.
func checkBlock(L *glua.LState, n int) *luaBlock {
	ud := L.CheckUserData(n)
	if v, ok := ud.Value.(*luaBlock); ok {
		return v
	}
	L.ArgError(n, "block expected")
	return nil
}

// blockMethods defines the methods available on block objects in Lua.
var blockMethods = map[string]glua.LGFunction{
	"add":        blockAdd,
	"set_width":  blockSetWidth,
	"set_height": blockSetHeight,
	"width":      blockWidth,
	"height":     blockHeight,
	"min_width":  blockMinWidth,
	"min_height": blockMinHeight,
	"render":     blockRender,
}

// blockAdd appends children to a row or column and returns the container.
// Usage: col:add(a, b, ...)
func blockAdd(L *glua.LState) int {
	parent := checkBlock(L, 1)
	addChildren(L, parent, 2)
	L.Push(L.Get(1))
	return 1
}

// addChildren adds every block argument from stack position first onward.
// All arguments are checked before any is added, so a failed call leaves
// the container unchanged.
func addChildren(L *glua.LState, parent *luaBlock, first int) {
	c, ok := parent.b.(block.Container)
	if !ok {
		L.RaiseError("block: add on leaf")
		return
	}

	children := make([]*luaBlock, 0, L.GetTop()-first+1)
	for i := first; i <= L.GetTop(); i++ {
		child := checkBlock(L, i)
		switch {
		case child == parent:
			L.RaiseError("block: cannot add a block to itself")
			return
		case child.owned || slices.Contains(children, child):
			L.RaiseError("block: already owned")
			return
		case reaches(child.b, parent.b):
			L.RaiseError("block: cycle")
			return
		}
		children = append(children, child)
	}

	for _, child := range children {
		child.owned = true
		c.Add(child.b)
	}
}

// reaches reports whether target is root or one of its descendants.
func reaches(root, target block.Block) bool {
	if root == target {
		return true
	}
	c, ok := root.(block.Container)
	if !ok {
		return false
	}
	for _, child := range c.Children() {
		if reaches(child, target) {
			return true
		}
	}
	return false
}

// Usage: b:set_width(n)
func blockSetWidth(L *glua.LState) int {
	b := checkBlock(L, 1)
	b.b.SetWidth(L.CheckInt(2))
	L.Push(L.Get(1))
	return 1
}

// Usage: b:set_height(n)
func blockSetHeight(L *glua.LState) int {
	b := checkBlock(L, 1)
	b.b.SetHeight(L.CheckInt(2))
	L.Push(L.Get(1))
	return 1
}

func blockWidth(L *glua.LState) int {
	L.Push(glua.LNumber(checkBlock(L, 1).b.Width()))
	return 1
}

func blockHeight(L *glua.LState) int {
	L.Push(glua.LNumber(checkBlock(L, 1).b.Height()))
	return 1
}

func blockMinWidth(L *glua.LState) int {
	L.Push(glua.LNumber(checkBlock(L, 1).b.MinWidth()))
	return 1
}

func blockMinHeight(L *glua.LState) int {
	L.Push(glua.LNumber(checkBlock(L, 1).b.MinHeight()))
	return 1
}

// blockRender returns the rendered lines as a Lua array.
// Usage: b:render()
func blockRender(L *glua.LState) int {
	b := checkBlock(L, 1)
	lines := L.NewTable()
	for _, line := range b.b.Render() {
		lines.Append(glua.LString(line))
	}
	L.Push(lines)
	return 1
}

// blockString joins the rendered lines with newlines.
// Usage: tostring(b)
func blockString(L *glua.LState) int {
	b := checkBlock(L, 1)
	L.Push(glua.LString(block.String(b.b)))
	return 1
}
