package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/manasm11/gamebrief/internal/config"
	"github.com/manasm11/gamebrief/internal/export"
	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/tui/components"
	"github.com/manasm11/gamebrief/internal/wizard"
)

const (
	sidebarWidth    = 24
	minSidebarWidth = 72 // below this terminal width the sidebar is hidden
	chromeHeight    = 4  // header, progress bar, spacer, status bar
)

// StatusMsg reports the outcome of a background action in the status bar.
type StatusMsg struct {
	Text string
	Err  error
}

// Deps are the collaborators the app drives.
type Deps struct {
	Session *wizard.Session
	Config  *config.Config
	// ConfigPath is where theme changes are persisted. Empty disables saving.
	ConfigPath string
	Theme      string // resolved "dark" or "light"
	Clipboard  export.Clipboard
	Open       export.Opener
	Logger     *zap.Logger
}

// AppModel is the root bubbletea model: the question form while the wizard
// runs, the rendered blueprint once it has been generated.
type AppModel struct {
	session   *wizard.Session
	cfg       *config.Config
	cfgPath   string
	clipboard export.Clipboard
	open      export.Opener
	log       *zap.Logger

	theme    string
	styles   Styles
	form     FormModel
	result   ResultModel
	steps    components.StepListModel
	progress components.ProgressBarModel

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

func NewAppModel(d Deps) *AppModel {
	if d.Session == nil {
		d.Session = wizard.New()
	}
	if d.Config == nil {
		d.Config = config.DefaultConfig()
	}
	if d.Clipboard == nil {
		d.Clipboard = export.SystemClipboard{}
	}
	if d.Open == nil {
		d.Open = export.OpenURL
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Theme != config.ThemeLight {
		d.Theme = config.ThemeDark
	}

	styles := NewStyles(PaletteFor(d.Theme))
	m := &AppModel{
		session:   d.Session,
		cfg:       d.Config,
		cfgPath:   d.ConfigPath,
		clipboard: d.Clipboard,
		open:      d.Open,
		log:       d.Logger,
		theme:     d.Theme,
		styles:    styles,
		form:      NewFormModel(d.Session, styles),
		result:    NewResultModel(d.Theme),
		steps:     components.NewStepListModel(stepListStyles(styles)),
		progress:  components.NewProgressBarModel(0, 0),
	}
	m.applyTheme()
	if m.session.Generated() {
		m.result.SetDocument(m.session.Document())
	}
	m.syncChrome()
	return m
}

func stepListStyles(s Styles) components.StepListStyles {
	p := s.Palette
	return components.StepListStyles{
		Current: lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		Done:    lipgloss.NewStyle().Foreground(p.Success),
		Invalid: lipgloss.NewStyle().Foreground(p.Danger),
		Pending: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

func (m *AppModel) applyTheme() {
	m.styles = NewStyles(PaletteFor(m.theme))
	p := m.styles.Palette
	m.form.SetStyles(m.styles)
	m.result.SetTheme(m.theme)
	m.steps.SetStyles(stepListStyles(m.styles))
	m.progress.SetColors(p.Success, p.Muted, p.Text)
}

// Session exposes the wizard for callers that inspect it after the program exits.
func (m *AppModel) Session() *wizard.Session {
	return m.session
}

// Theme is the active theme name.
func (m *AppModel) Theme() string {
	return m.theme
}

func (m *AppModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+t":
			return m, m.toggleTheme()
		}
		if m.session.Generated() {
			if msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			break
		}
		switch msg.String() {
		case "ctrl+n":
			m.advance()
			return m, nil
		case "ctrl+p":
			if m.session.Back() {
				m.form.Load()
				m.clearStatus()
			}
			m.syncChrome()
			return m, nil
		}

	case ResultActionMsg:
		return m, m.runAction(msg.Action)

	case StatusMsg:
		if msg.Err != nil {
			m.log.Warn("action failed", zap.String("session", m.session.ID()), zap.Error(msg.Err))
			m.status = msg.Err.Error()
			m.statusErr = true
		} else {
			m.status = msg.Text
			m.statusErr = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.session.Generated() {
		m.result, cmd = m.result.Update(msg)
	} else {
		m.form, cmd = m.form.Update(msg)
	}
	m.syncChrome()
	return m, cmd
}

func (m *AppModel) advance() {
	if !m.session.Advance() {
		m.setError("Fix the highlighted answers to continue")
		m.syncChrome()
		return
	}
	m.clearStatus()
	if m.session.Generated() {
		m.result.SetDocument(m.session.Document())
		m.status = "Blueprint ready"
	} else {
		m.form.Load()
	}
	m.syncChrome()
}

func (m *AppModel) runAction(action ResultAction) tea.Cmd {
	switch action {
	case ActionCopy:
		return m.copyCmd()
	case ActionSave:
		return m.saveCmd()
	case ActionOpen:
		return m.openCmd()
	case ActionReset:
		m.session.Reset()
		m.form.Load()
		m.result.SetDocument("")
		m.status = "Started a new blueprint"
		m.statusErr = false
		m.syncChrome()
	}
	return nil
}

func (m *AppModel) copyCmd() tea.Cmd {
	doc, clip := m.session.Document(), m.clipboard
	return func() tea.Msg {
		if err := clip.WriteAll(doc); err != nil {
			return StatusMsg{Err: err}
		}
		return StatusMsg{Text: "Copied blueprint to clipboard"}
	}
}

func (m *AppModel) saveCmd() tea.Cmd {
	doc, dir, title := m.session.Document(), m.cfg.OutputDir, m.session.Answers().Title
	return func() tea.Msg {
		path, err := export.SaveDocument(dir, title, doc)
		if err != nil {
			return StatusMsg{Err: err}
		}
		return StatusMsg{Text: "Saved " + path}
	}
}

// openCmd copies the blueprint and opens the studio so it can be pasted
// straight into a new prompt.
func (m *AppModel) openCmd() tea.Cmd {
	doc, url, clip, open := m.session.Document(), m.cfg.StudioURL, m.clipboard, m.open
	return func() tea.Msg {
		clipErr := clip.WriteAll(doc)
		if err := open(context.Background(), url); err != nil {
			return StatusMsg{Err: errors.Join(err, clipErr)}
		}
		if clipErr != nil {
			return StatusMsg{Text: fmt.Sprintf("Opened %s (copy failed: %v)", url, clipErr)}
		}
		return StatusMsg{Text: "Copied blueprint and opened " + url}
	}
}

func (m *AppModel) toggleTheme() tea.Cmd {
	if m.theme == config.ThemeDark {
		m.theme = config.ThemeLight
	} else {
		m.theme = config.ThemeDark
	}
	m.applyTheme()
	m.log.Info("theme changed", zap.String("theme", m.theme))

	m.cfg.Theme = m.theme
	path, theme := m.cfgPath, m.theme
	return func() tea.Msg {
		if path == "" {
			return StatusMsg{Text: "Theme: " + theme}
		}
		if err := config.SaveTheme(path, theme); err != nil {
			return StatusMsg{Err: err}
		}
		return StatusMsg{Text: "Theme: " + theme + " (saved)"}
	}
}

func (m *AppModel) setError(text string) {
	m.status = text
	m.statusErr = true
}

func (m *AppModel) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *AppModel) showSidebar() bool {
	return m.width >= minSidebarWidth && !m.session.Generated()
}

func (m *AppModel) layout() {
	contentHeight := max(m.height-chromeHeight, 0)
	contentWidth := m.width
	if m.width >= minSidebarWidth {
		contentWidth = m.width - sidebarWidth - 1
	}
	m.form.SetSize(contentWidth, contentHeight)
	m.result.SetSize(m.width, contentHeight)
	m.steps.SetSize(sidebarWidth, contentHeight)
	m.progress.SetWidth(max(m.width-2, 0))
}

// syncChrome refreshes the sidebar and progress bar from the session.
func (m *AppModel) syncChrome() {
	steps := m.session.Steps()
	errs := m.session.Errors()
	invalid := map[flow.StepID]bool{}
	for f := range errs {
		if step, ok := flow.StepOf(f); ok {
			invalid[step] = true
		}
	}

	items := make([]components.StepListItem, len(steps))
	for i, st := range steps {
		status := components.StepPending
		switch {
		case m.session.Generated() || i < m.session.Index():
			status = components.StepDone
		case i == m.session.Index():
			status = components.StepCurrent
		}
		if invalid[st] && status != components.StepPending {
			status = components.StepInvalid
		}
		items[i] = components.StepListItem{ID: string(st), Title: st.Title(), Status: status}
	}
	m.steps.SetItems(items, m.session.Index())

	done := m.session.Index() + 1
	if m.session.Generated() {
		done = len(steps)
	}
	m.progress.SetProgress(done, len(steps))
}

func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if m.session.Generated() {
		content = m.result.View()
	} else {
		content = m.form.View()
		if m.showSidebar() {
			sidebar := lipgloss.NewStyle().
				Width(sidebarWidth).
				Height(max(m.height-chromeHeight, 0)).
				BorderRight(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(m.styles.Palette.Border).
				Render(m.steps.View())
			content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
		}
	}

	content = lipgloss.NewStyle().Height(max(m.height-chromeHeight, 0)).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		" "+m.progress.View(),
		content,
		m.renderStatusBar(),
	)
}

func (m *AppModel) renderHeader() string {
	title := m.styles.Title.Render("◆ gamebrief")

	var where string
	if m.session.Generated() {
		where = "Blueprint"
	} else {
		where = fmt.Sprintf("Step %d of %d · %s",
			m.session.Index()+1, len(m.session.Steps()), m.session.Current().Title())
	}

	return m.styles.Header.
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", m.styles.Subtitle.Render(where)))
}

func (m *AppModel) renderStatusBar() string {
	help := m.helpText()
	if m.status != "" {
		style := m.styles.Success
		if m.statusErr {
			style = m.styles.Error
		}
		help = style.Render(m.status) + "  |  " + help
	}
	return m.styles.StatusBar.Width(m.width).MaxHeight(1).Render(help)
}

func (m *AppModel) helpText() string {
	if m.session.Generated() {
		return "c: copy  s: save  o: open studio  r: start over  ↑/↓: scroll  ctrl+t: theme  q: quit"
	}
	next := "ctrl+n: next"
	if m.session.IsLast() {
		next = "ctrl+n: generate"
	}
	help := "tab: next question  space: select  " + next
	if m.session.Index() > 0 {
		help += "  ctrl+p: back"
	}
	return help + "  ctrl+t: theme  ctrl+c: quit"
}
