package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/csese/networkD3/pkg/errors"
	"github.com/csese/networkD3/pkg/network"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GraphTypeModel - Interactive graph type selection
// =============================================================================

// graphTypeEntry pairs a graph type with its menu description.
type graphTypeEntry struct {
	name string
	desc string
}

// graphTypeEntries lists the selectable graph types in menu order.
var graphTypeEntries = []graphTypeEntry{
	{network.TypeSimple, "minimal node-link diagram from a links table"},
	{network.TypeForce, "force-directed graph with grouped, sized nodes"},
	{network.TypeTree, "hierarchical tree from nested data"},
	{network.TypeFlow, "weighted flow (sankey) diagram"},
}

// GraphTypeModel is the bubbletea model for interactive graph type selection.
type GraphTypeModel struct {
	Cursor   int
	Selected string
}

// NewGraphTypeModel creates a new graph type picker model.
func NewGraphTypeModel() GraphTypeModel {
	return GraphTypeModel{}
}

func (m GraphTypeModel) Init() tea.Cmd {
	return nil
}

func (m GraphTypeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(graphTypeEntries)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = graphTypeEntries[m.Cursor].name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GraphTypeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Graph Type"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, entry := range graphTypeEntries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-8s  %s", cursor, entry.name, listDimStyle.Render(entry.desc))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickGraphType prompts for a graph type interactively when stdin is a
// terminal, otherwise defaults to a simple graph.
func pickGraphType() (string, error) {
	if fi, err := os.Stdin.Stat(); err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return network.TypeSimple, nil
	}

	p := tea.NewProgram(NewGraphTypeModel())
	result, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "graph type selection failed")
	}

	model, ok := result.(GraphTypeModel)
	if !ok || model.Selected == "" {
		return "", errors.New(errors.ErrCodeInvalidGraphType, "no graph type selected")
	}
	return model.Selected, nil
}
