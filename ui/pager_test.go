package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/tabula/block"
)

func boxSource() (block.Block, error) {
	row := block.NewRow()
	row.Add(block.NewVerticalLine())
	row.Add(block.NewCell("A1"))
	row.Add(block.NewVerticalLine())

	col := block.NewColumn()
	col.Add(block.NewHorizontalLine())
	col.Add(row)
	col.Add(block.NewHorizontalLine())
	return col, nil
}

// load runs the pager's init command and feeds the result back in.
func load(t *testing.T, p Pager) Pager {
	t.Helper()
	m, _ := p.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	p = m.(Pager)

	cmd := p.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	m, _ = p.Update(cmd())
	return m.(Pager)
}

func TestPagerShowsGrid(t *testing.T) {
	p := load(t, NewPager("box", boxSource))

	view := p.View()
	for _, want := range []string{"------", "| A1 |", "6x3", "box"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPagerShowsBuildError(t *testing.T) {
	failing := func() (block.Block, error) {
		return nil, errors.New("no such layout")
	}
	p := load(t, NewPager("broken", failing))

	if view := p.View(); !strings.Contains(view, "Error: no such layout") {
		t.Errorf("view missing error:\n%s", view)
	}
}

func TestPagerReload(t *testing.T) {
	calls := 0
	src := func() (block.Block, error) {
		calls++
		return boxSource()
	}
	p := load(t, NewPager("box", src))

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("reload returned no command")
	}
	if _, ok := cmd().(gridMsg); !ok {
		t.Error("reload command did not produce a grid")
	}
	if calls != 2 {
		t.Errorf("source called %d times, want 2", calls)
	}
}

func TestPagerQuit(t *testing.T) {
	p := NewPager("box", boxSource)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := p.Update(key)
		if cmd == nil {
			t.Fatalf("%s: no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", key)
		}
	}
}

func TestPagerLoading(t *testing.T) {
	p := NewPager("box", boxSource)
	if view := p.View(); !strings.Contains(view, "loading...") {
		t.Errorf("view missing loading state:\n%s", view)
	}
}
