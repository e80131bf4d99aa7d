package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manasm11/gamebrief/internal/config"
)

// Palette is the set of colors a theme is drawn with.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color // header and status bar background
	Border    lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:   lipgloss.Color("#7C3AED"), // purple
		Secondary: lipgloss.Color("#06B6D4"), // cyan
		Success:   lipgloss.Color("#10B981"), // green
		Warning:   lipgloss.Color("#F59E0B"), // amber
		Danger:    lipgloss.Color("#EF4444"), // red
		Muted:     lipgloss.Color("#6B7280"), // gray
		Text:      lipgloss.Color("#E5E7EB"), // light gray
		Surface:   lipgloss.Color("#1F2937"),
		Border:    lipgloss.Color("#374151"),
	}

	LightPalette = Palette{
		Primary:   lipgloss.Color("#4F46E5"), // indigo
		Secondary: lipgloss.Color("#0E7490"),
		Success:   lipgloss.Color("#047857"),
		Warning:   lipgloss.Color("#B45309"),
		Danger:    lipgloss.Color("#B91C1C"),
		Muted:     lipgloss.Color("#64748B"), // slate
		Text:      lipgloss.Color("#0F172A"),
		Surface:   lipgloss.Color("#E2E8F0"),
		Border:    lipgloss.Color("#CBD5E1"),
	}
)

// PaletteFor returns the palette for a resolved theme name.
func PaletteFor(theme string) Palette {
	if theme == config.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Styles are the reusable styles derived from a palette.
type Styles struct {
	Palette Palette

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Header     lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	StepTitle  lipgloss.Style
	Label      lipgloss.Style
	LabelFocus lipgloss.Style
	Required   lipgloss.Style
	Option     lipgloss.Style
	OptionSel  lipgloss.Style
	Cursor     lipgloss.Style
	Value      lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Box        lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingLeft(1).
			PaddingRight(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Header: lipgloss.NewStyle().
			Background(p.Surface).
			PaddingLeft(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			PaddingLeft(1).
			PaddingRight(1),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			PaddingLeft(1),

		StepTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Label:      lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		LabelFocus: lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		Required:   lipgloss.NewStyle().Foreground(p.Danger),
		Option:     lipgloss.NewStyle().Foreground(p.Text),
		OptionSel:  lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Value:      lipgloss.NewStyle().Foreground(p.Text),
		Error:      lipgloss.NewStyle().Foreground(p.Danger),
		Success:    lipgloss.NewStyle().Foreground(p.Success),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			PaddingLeft(1).
			PaddingRight(1),
	}
}
