package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tabula/block"
	"github.com/drake/tabula/transport"
)

// registerLayoutFuncs registers the tabula.* constructors and helpers.
func (e *Engine) registerLayoutFuncs() {
	e.L.SetFuncs(e.tabulaTable, map[string]glua.LGFunction{
		// tabula.cell(text): a single line of padded text
		"cell": func(L *glua.LState) int {
			L.Push(newBlock(L, block.NewCell(L.CheckString(1))))
			return 1
		},

		// tabula.hline(): horizontal divider
		"hline": func(L *glua.LState) int {
			L.Push(newBlock(L, block.NewHorizontalLine()))
			return 1
		},

		// tabula.vline(): vertical divider
		"vline": func(L *glua.LState) int {
			L.Push(newBlock(L, block.NewVerticalLine()))
			return 1
		},

		// tabula.row(...): row holding the given children
		"row": func(L *glua.LState) int {
			return newContainer(L, block.NewRow())
		},

		// tabula.column(...): column holding the given children
		"column": func(L *glua.LState) int {
			return newContainer(L, block.NewColumn())
		},

		// tabula.render(b): rendered lines as an array
		"render": blockRender,

		// tabula.string(b): rendered lines joined with newlines
		"string": blockString,

		// tabula.number(v): number formatted the way the transport table does
		"number": func(L *glua.LState) int {
			L.Push(glua.LString(transport.FormatNumber(float64(L.CheckNumber(1)))))
			return 1
		},
	})
}

func newContainer(L *glua.LState, c block.Container) int {
	ud := newBlock(L, c)
	addChildren(L, ud.Value.(*luaBlock), 1)
	L.Push(ud)
	return 1
}
