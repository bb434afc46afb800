// tabula renders a transportation problem, or a Lua layout script, as a
// text grid.
//
// Usage:
//
//	tabula                                     # built-in 3x5 example
//	tabula -f problem.yaml
//	tabula -supply 10,20 -demand 15,15 -costs "1,2;3,4"
//	tabula -script summary.lua [args...]
//	tabula -view -f problem.yaml               # interactive pager
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/drake/tabula/block"
	"github.com/drake/tabula/config"
	"github.com/drake/tabula/debug"
	"github.com/drake/tabula/lua"
	"github.com/drake/tabula/transport"
	"github.com/drake/tabula/ui"
)

type options struct {
	file   string
	supply string
	costs  string
	demand string
	script string
	view   bool
	args   []string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		// flag already printed the error and usage
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tabula", flag.ContinueOnError)
	fs.StringVar(&opts.file, "f", "", "Problem file (YAML or JSON)")
	fs.StringVar(&opts.supply, "supply", "", "Comma-separated supplies")
	fs.StringVar(&opts.costs, "costs", "", "Cost matrix rows separated by ';'")
	fs.StringVar(&opts.demand, "demand", "", "Comma-separated demands")
	fs.StringVar(&opts.script, "script", "", "Lua layout script (path or name under "+config.ScriptDir()+")")
	fs.BoolVar(&opts.view, "view", false, "Open the grid in an interactive pager")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.args = fs.Args()
	return opts, nil
}

func run(opts options, out io.Writer) error {
	src, title, err := source(opts)
	if err != nil {
		return err
	}
	if opts.view {
		return ui.Run(title, src)
	}

	b, err := src()
	if err != nil {
		return err
	}
	done := debug.Timer("render")
	defer done()
	debug.Logf("grid %dx%d", b.Width(), b.Height())
	return block.Write(out, b)
}

// source picks the block tree builder selected by opts.
func source(opts options) (ui.Source, string, error) {
	if opts.script != "" {
		path, err := config.ResolveScript(opts.script)
		if err != nil {
			return nil, "", err
		}
		return scriptSource(path, opts.args), filepath.Base(path), nil
	}

	load, title, err := problemLoader(opts)
	if err != nil {
		return nil, "", err
	}
	return func() (block.Block, error) {
		p, err := load()
		if err != nil {
			return nil, err
		}
		return transport.Table(p)
	}, title, nil
}

// scriptSource runs the script on a long-lived engine so reloads reuse its
// compiled chunk cache. The VM itself is reset on every build. The pager
// runs each build on its own goroutine, so builds are serialized.
func scriptSource(path string, args []string) ui.Source {
	var mu sync.Mutex
	engine := lua.NewEngine()
	engine.SetArgs(args)
	return func() (block.Block, error) {
		mu.Lock()
		defer mu.Unlock()

		defer debug.Timer("script " + path)()
		if err := engine.Init(); err != nil {
			return nil, err
		}
		return engine.BuildFile(path)
	}
}

func problemLoader(opts options) (func() (*transport.Problem, error), string, error) {
	inline := opts.supply != "" || opts.costs != "" || opts.demand != ""
	switch {
	case opts.file != "" && inline:
		return nil, "", fmt.Errorf("-f cannot be combined with -supply, -costs or -demand")

	case opts.file != "":
		return func() (*transport.Problem, error) {
			defer debug.Timer("load " + opts.file)()
			return transport.Load(opts.file)
		}, filepath.Base(opts.file), nil

	case inline:
		p, err := inlineProblem(opts)
		if err != nil {
			return nil, "", err
		}
		return func() (*transport.Problem, error) { return p, nil }, "inline", nil
	}

	return func() (*transport.Problem, error) { return transport.Example(), nil }, "example", nil
}

func inlineProblem(opts options) (*transport.Problem, error) {
	supply, err := transport.ParseVector(opts.supply)
	if err != nil {
		return nil, fmt.Errorf("-supply: %w", err)
	}
	demand, err := transport.ParseVector(opts.demand)
	if err != nil {
		return nil, fmt.Errorf("-demand: %w", err)
	}
	costs, err := transport.ParseMatrix(opts.costs)
	if err != nil {
		return nil, fmt.Errorf("-costs: %w", err)
	}
	p := &transport.Problem{Supply: supply, Costs: costs, Demand: demand}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
