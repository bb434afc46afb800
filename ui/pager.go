package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/tabula/block"
	"github.com/drake/tabula/debug"
	"github.com/drake/tabula/ui/style"
)

// Source builds a fresh block tree. Blocks never shrink after rendering,
// so the pager asks for a new tree on every reload.
type Source func() (block.Block, error)

// gridMsg carries a rendered grid, or the error that prevented building it.
type gridMsg struct {
	lines  []string
	width  int
	height int
	err    error
}

// build returns a command that runs src and renders the result.
func build(src Source) tea.Cmd {
	return func() tea.Msg {
		b, err := src()
		if err != nil {
			return gridMsg{err: err}
		}
		lines := b.Render()
		return gridMsg{lines: lines, width: b.Width(), height: b.Height()}
	}
}

// Pager is a Bubble Tea model that shows a rendered grid in a scrollable
// viewport with a one-line footer.
type Pager struct {
	title    string
	source   Source
	viewport viewport.Model
	styles   style.Styles

	gridWidth  int
	gridHeight int
	err        error
	loaded     bool

	width  int
	height int
}

// NewPager creates a pager for src.
func NewPager(title string, src Source) Pager {
	return Pager{
		title:    title,
		source:   src,
		viewport: viewport.New(0, 0),
		styles:   style.DefaultStyles(),
	}
}

// Init implements tea.Model.
func (p Pager) Init() tea.Cmd {
	return build(p.source)
}

// Update implements tea.Model.
func (p Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-1, 1)
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case "r":
			return p, build(p.source)
		}

	case gridMsg:
		if msg.err != nil {
			p.err = msg.err
			debug.Logf("pager: build failed: %v", msg.err)
			return p, nil
		}
		p.err = nil
		p.loaded = true
		p.gridWidth = msg.width
		p.gridHeight = msg.height
		p.viewport.SetContent(strings.Join(msg.lines, "\n"))
		debug.Logf("pager: loaded %dx%d grid", msg.width, msg.height)
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Pager) View() string {
	return p.viewport.View() + "\n" + p.footer()
}

func (p Pager) footer() string {
	title := p.styles.Title.Render(p.title)
	if p.err != nil {
		return title + " " + p.styles.Error.Render("Error: "+p.err.Error())
	}
	if !p.loaded {
		return title + " " + p.styles.Muted.Render("loading...")
	}
	info := fmt.Sprintf("%dx%d  %3.f%%", p.gridWidth, p.gridHeight, p.viewport.ScrollPercent()*100)
	help := p.styles.Muted.Render("r reload • q quit")
	return title + " " + p.styles.Footer.Render(info) + "  " + help
}

// Run shows the grid built by src until the user quits.
func Run(title string, src Source) error {
	program := tea.NewProgram(NewPager(title, src), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
