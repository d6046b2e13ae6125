package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/render-core/mounting"
	"github.com/wippyai/render-core/shadow"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	createStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	deleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	updateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C9C9C9"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	oldRoot   *shadow.Node
	newRoot   *shadow.Node
	mutations []mounting.Mutation
	trees     viewport.Model
	selected  int
	width     int
	height    int
	ready     bool
}

func runInteractive(oldRoot, newRoot *shadow.Node, mutations []mounting.Mutation) error {
	model := interactiveModel{
		oldRoot:   oldRoot,
		newRoot:   newRoot,
		mutations: mutations,
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd {
	return nil
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.mutations)-1 {
				m.selected++
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		treeHeight := msg.Height/2 - 2
		if treeHeight < 4 {
			treeHeight = 4
		}
		if !m.ready {
			m.trees = viewport.New(msg.Width, treeHeight)
			m.ready = true
		} else {
			m.trees.Width = msg.Width
			m.trees.Height = treeHeight
		}
		m.trees.SetContent(m.treePanel())
	}

	var cmd tea.Cmd
	m.trees, cmd = m.trees.Update(msg)
	return m, cmd
}

func (m interactiveModel) treePanel() string {
	oldPanel := headingStyle.Render("Old tree") + "\n" + renderTree(m.oldRoot, 0)
	newPanel := headingStyle.Render("New tree") + "\n" + renderTree(m.newRoot, 0)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.width/2).Render(oldPanel),
		newPanel)
}

func mutationStyle(t mounting.MutationType) lipgloss.Style {
	switch t {
	case mounting.MutationCreate:
		return createStyle
	case mounting.MutationDelete:
		return deleteStyle
	case mounting.MutationUpdate:
		return updateStyle
	default:
		return moveStyle
	}
}

func (m interactiveModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("diffview"))
	b.WriteString("\n\n")
	b.WriteString(m.trees.View())
	b.WriteString("\n")
	b.WriteString(headingStyle.Render(fmt.Sprintf("Mutations (%d, applied top to bottom)", len(m.mutations))))
	b.WriteString("\n")

	visible := m.height/2 - 4
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	for i := start; i < len(m.mutations) && i < start+visible; i++ {
		line := fmt.Sprintf("%3d. %s", i, m.mutations[i])
		if i == m.selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(mutationStyle(m.mutations[i].Type).Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select mutation · q quit"))
	return b.String()
}
