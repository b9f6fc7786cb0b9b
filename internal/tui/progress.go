// Package tui renders live run progress in the terminal.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 60

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barDone     = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	barTodo     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// ProgressMsg carries one iteration's summary from the driver.
type ProgressMsg struct {
	Iter, Total int
	Energy      float64
	PX, PY      float64
}

// DoneMsg ends the program when the run finishes or dies.
type DoneMsg struct {
	Err error
}

type Model struct {
	bodies   int
	workers  int
	last     ProgressMsg
	done     bool
	canceled bool
	err      error
}

func NewModel(bodies, workers int) Model {
	return Model{bodies: bodies, workers: workers}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	case ProgressMsg:
		m.last = msg
	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

// Canceled reports whether the user quit before the run completed.
func (m Model) Canceled() bool { return m.canceled }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("gravnet · %d bodies · %d workers", m.bodies, m.workers)))
	b.WriteString("\n\n")

	percent := 0.0
	if m.last.Total > 0 {
		percent = float64(m.last.Iter) / float64(m.last.Total)
	}
	b.WriteString(renderBar(percent))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n\n", percent*100))

	b.WriteString(labelStyle.Render("iteration"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d / %d", m.last.Iter, m.last.Total)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("energy"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.6g", m.last.Energy)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("momentum"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("(%.6g, %.6g)", m.last.PX, m.last.PY)))
	b.WriteString("\n")

	if m.done {
		if m.err != nil {
			b.WriteString("\n" + valueStyle.Render(fmt.Sprintf("failed: %v", m.err)))
		}
	} else {
		b.WriteString(helpStyle.Render("q: abort run"))
	}

	return b.String()
}

func renderBar(percent float64) string {
	filled := int(percent * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return barDone.Render(strings.Repeat("█", filled)) +
		barTodo.Render(strings.Repeat("░", barWidth-filled))
}
