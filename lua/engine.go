// Package lua lets Lua scripts build block trees.
//
// A layout script uses the global tabula table to create blocks and returns
// the root:
//
//	local t = tabula
//	return t.column(t.hline(), t.row(t.vline(), t.cell("A1"), t.vline()), t.hline())
package lua

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/drake/tabula/block"
)

// ErrNoBlock is returned by Build when a script does not return a block.
var ErrNoBlock = errors.New("lua: script did not return a block")

// chunkCacheSize bounds the number of compiled scripts kept between builds.
const chunkCacheSize = 64

// Engine wraps gopher-lua and manages the VM lifecycle.
type Engine struct {
	L      *glua.LState
	chunks *lru.Cache[string, *glua.FunctionProto]

	// Cached table reference
	tabulaTable *glua.LTable

	args []string
}

// NewEngine creates an Engine. Call Init before running scripts.
func NewEngine() *Engine {
	cache, _ := lru.New[string, *glua.FunctionProto](chunkCacheSize)
	return &Engine{chunks: cache}
}

// SetArgs sets the values exposed to scripts as tabula.args.
// Takes effect on the next Init.
func (e *Engine) SetArgs(args []string) {
	e.args = args
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// Compiled chunks survive re-initialization.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}
	e.L = glua.NewState()

	registerBlockType(e.L)
	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// CachedChunks returns the number of compiled scripts held in the cache.
func (e *Engine) CachedChunks() int {
	return e.chunks.Len()
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	_, err := e.run(name, code, 0)
	return err
}

// DoFile executes a Lua file from the filesystem.
func (e *Engine) DoFile(path string) error {
	_, err := e.runFile(path, 0)
	return err
}

// Build runs code and returns the block it returns.
func (e *Engine) Build(name, code string) (block.Block, error) {
	ret, err := e.run(name, code, 1)
	if err != nil {
		return nil, err
	}
	return toBlock(name, ret)
}

// BuildFile runs the script at path and returns the block it returns.
// The script's directory is searched by require.
func (e *Engine) BuildFile(path string) (block.Block, error) {
	ret, err := e.runFile(path, 1)
	if err != nil {
		return nil, err
	}
	return toBlock(path, ret)
}

func (e *Engine) runFile(path string, nret int) (glua.LValue, error) {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	code, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(filepath.Dir(absPath)+"/?.lua;"+oldPath))
	defer e.L.SetField(pkg, "path", glua.LString(oldPath))

	return e.run(path, string(code), nret)
}

func (e *Engine) run(name, code string, nret int) (glua.LValue, error) {
	if e.L == nil {
		return nil, fmt.Errorf("lua: engine not initialized")
	}
	proto, err := e.compile(name, code)
	if err != nil {
		return nil, err
	}

	e.L.Push(e.L.NewFunctionFromProto(proto))
	if err := e.L.PCall(0, nret, nil); err != nil {
		return nil, err
	}
	if nret == 0 {
		return glua.LNil, nil
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)
	return ret, nil
}

// compile returns the compiled chunk for code, parsing it only once per
// distinct source.
func (e *Engine) compile(name, code string) (*glua.FunctionProto, error) {
	sum := sha256.Sum256([]byte(code))
	key := name + ":" + hex.EncodeToString(sum[:])
	if proto, ok := e.chunks.Get(key); ok {
		return proto, nil
	}

	chunk, err := parse.Parse(strings.NewReader(code), name)
	if err != nil {
		return nil, err
	}
	proto, err := glua.Compile(chunk, name)
	if err != nil {
		return nil, err
	}
	e.chunks.Add(key, proto)
	return proto, nil
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.tabulaTable = e.L.NewTable()
	e.L.SetGlobal("tabula", e.tabulaTable)

	e.registerLayoutFuncs()
	e.registerArgs()
}

func (e *Engine) registerArgs() {
	args := e.L.NewTable()
	for _, a := range e.args {
		args.Append(glua.LString(a))
	}
	e.L.SetField(e.tabulaTable, "args", args)
}

// --- Private Helpers ---

func toBlock(name string, v glua.LValue) (block.Block, error) {
	if ud, ok := v.(*glua.LUserData); ok {
		if lb, ok := ud.Value.(*luaBlock); ok {
			return lb.b, nil
		}
	}
	return nil, fmt.Errorf("%s: %w (got %s)", name, ErrNoBlock, v.Type())
}

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
