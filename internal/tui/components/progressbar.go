package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBarModel shows how far through the step sequence the user is.
// The total moves while the user answers, so both ends are settable.
type ProgressBarModel struct {
	done  int
	total int
	width int

	filled lipgloss.Style
	empty  lipgloss.Style
	text   lipgloss.Style
}

const minBarWidth = 5

func NewProgressBarModel(total, width int) ProgressBarModel {
	m := ProgressBarModel{total: total, width: width}
	m.SetColors(lipgloss.Color("#10B981"), lipgloss.Color("#6B7280"), lipgloss.Color("#E5E7EB"))
	return m
}

// SetColors restyles the bar for the active theme.
func (m *ProgressBarModel) SetColors(filled, empty, text lipgloss.Color) {
	m.filled = lipgloss.NewStyle().Foreground(filled)
	m.empty = lipgloss.NewStyle().Foreground(empty)
	m.text = lipgloss.NewStyle().Foreground(text)
}

// SetProgress updates both ends at once. done is clamped into [0, total].
func (m *ProgressBarModel) SetProgress(done, total int) {
	m.total = max(total, 0)
	m.done = min(max(done, 0), m.total)
}

func (m *ProgressBarModel) SetWidth(width int) {
	m.width = width
}

// Percent is the completed share, rounded down.
func (m ProgressBarModel) Percent() int {
	if m.total == 0 {
		return 0
	}
	return m.done * 100 / m.total
}

func (m ProgressBarModel) View() string {
	label := fmt.Sprintf(" %d/%d (%d%%)", m.done, m.total, m.Percent())
	barWidth := max(m.width-lipgloss.Width(label), minBarWidth)

	filled := 0
	if m.total > 0 {
		filled = m.done * barWidth / m.total
	}

	return m.filled.Render(strings.Repeat("█", filled)) +
		m.empty.Render(strings.Repeat("░", barWidth-filled)) +
		m.text.Render(label)
}
