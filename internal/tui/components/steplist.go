package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus is where a step stands relative to the current position.
type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepCurrent StepStatus = "current"
	StepDone    StepStatus = "done"
	StepInvalid StepStatus = "invalid" // visited, with outstanding errors
)

// StepListItem is one row of the step sidebar.
type StepListItem struct {
	ID     string
	Title  string
	Status StepStatus
}

// StepListStyles color the sidebar rows.
type StepListStyles struct {
	Current lipgloss.Style
	Done    lipgloss.Style
	Invalid lipgloss.Style
	Pending lipgloss.Style
}

// StepListModel is the read-only sidebar listing the resolved steps. It
// scrolls to keep the current step visible.
type StepListModel struct {
	items     []StepListItem
	current   int
	scrollOff int
	width     int
	height    int
	styles    StepListStyles
}

func NewStepListModel(styles StepListStyles) StepListModel {
	return StepListModel{styles: styles}
}

// SetItems replaces the rows. current indexes the row being answered.
func (m *StepListModel) SetItems(items []StepListItem, current int) {
	m.items = items
	m.current = min(max(current, 0), max(len(items)-1, 0))
	m.ensureVisible()
}

func (m *StepListModel) SetStyles(s StepListStyles) {
	m.styles = s
}

func (m *StepListModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ensureVisible()
}

// Items returns a copy of the rows.
func (m StepListModel) Items() []StepListItem {
	out := make([]StepListItem, len(m.items))
	copy(out, m.items)
	return out
}

func (m *StepListModel) ensureVisible() {
	listHeight := max(m.height, 1)
	if m.current < m.scrollOff {
		m.scrollOff = m.current
	}
	if m.current >= m.scrollOff+listHeight {
		m.scrollOff = m.current - listHeight + 1
	}
	if m.scrollOff > max(len(m.items)-listHeight, 0) {
		m.scrollOff = max(len(m.items)-listHeight, 0)
	}
}

func (m StepListModel) View() string {
	if m.width == 0 || m.height == 0 || len(m.items) == 0 {
		return ""
	}
	end := min(m.scrollOff+m.height, len(m.items))
	lines := make([]string, 0, end-m.scrollOff)
	for i := m.scrollOff; i < end; i++ {
		lines = append(lines, m.renderItem(m.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (m StepListModel) renderItem(item StepListItem) string {
	var icon string
	style := m.styles.Pending
	switch item.Status {
	case StepCurrent:
		icon, style = "▸", m.styles.Current
	case StepDone:
		icon, style = "✓", m.styles.Done
	case StepInvalid:
		icon, style = "!", m.styles.Invalid
	default:
		icon = "·"
	}

	title := item.Title
	if room := m.width - 3; room > 0 && lipgloss.Width(title) > room {
		title = truncate(title, room)
	}
	return style.Render(icon + " " + title)
}

// truncate cuts s to width cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
