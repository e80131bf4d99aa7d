package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manasm11/gamebrief/internal/config"
)

// DetectTheme resolves the configured preference against the terminal
// background. Call it before the program takes over the screen.
func DetectTheme(pref string) string {
	return config.ResolveTheme(pref, lipgloss.HasDarkBackground())
}

// Run shows the wizard full screen and blocks until the user quits.
func Run(ctx context.Context, d Deps) (*AppModel, error) {
	m := NewAppModel(d)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return m, fmt.Errorf("running wizard: %w", err)
	}
	return m, nil
}
