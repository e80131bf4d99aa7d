package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/manasm11/gamebrief/internal/config"
)

// ResultAction is something the user can do with a finished blueprint.
type ResultAction string

const (
	ActionCopy  ResultAction = "copy"
	ActionSave  ResultAction = "save"
	ActionOpen  ResultAction = "open"
	ActionReset ResultAction = "reset"
)

// ResultActionMsg is emitted when the user triggers an action on the result screen.
type ResultActionMsg struct {
	Action ResultAction
}

var resultKeys = map[string]ResultAction{
	"c": ActionCopy,
	"s": ActionSave,
	"o": ActionOpen,
	"r": ActionReset,
}

// ResultModel shows the generated blueprint as rendered markdown.
type ResultModel struct {
	viewport viewport.Model
	document string
	theme    string
	width    int
	height   int
}

func NewResultModel(theme string) ResultModel {
	return ResultModel{
		viewport: viewport.New(0, 0),
		theme:    theme,
	}
}

// SetDocument replaces the blueprint and scrolls back to the top.
func (m *ResultModel) SetDocument(doc string) {
	m.document = doc
	m.refresh()
	m.viewport.GotoTop()
}

func (m *ResultModel) SetTheme(theme string) {
	m.theme = theme
	m.refresh()
}

func (m *ResultModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

// Document is the raw markdown being shown.
func (m ResultModel) Document() string {
	return m.document
}

func (m *ResultModel) refresh() {
	m.viewport.SetContent(renderMarkdown(m.document, m.theme, m.width))
}

// renderMarkdown styles doc for the terminal. If glamour cannot render it
// the raw markdown is shown instead.
func renderMarkdown(doc, theme string, width int) string {
	if doc == "" {
		return ""
	}
	style := "dark"
	if theme == config.ThemeLight {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return doc
	}
	out, err := r.Render(doc)
	if err != nil {
		return doc
	}
	return strings.TrimRight(out, "\n")
}

func (m ResultModel) Init() tea.Cmd {
	return nil
}

func (m ResultModel) Update(msg tea.Msg) (ResultModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if action, ok := resultKeys[key.String()]; ok {
			return m, func() tea.Msg {
				return ResultActionMsg{Action: action}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ResultModel) View() string {
	return m.viewport.View()
}
