package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
	"github.com/manasm11/gamebrief/internal/wizard"
)

const (
	textCharLimit = 200
	areaHeight    = 3
)

// FormModel renders the questions of the session's current step and turns
// key presses into answer edits.
type FormModel struct {
	session *wizard.Session
	styles  Styles

	step      flow.StepID
	questions []Question
	focus     int
	cursor    int // option under the cursor in the focused question

	input textinput.Model
	area  textarea.Model

	offset int // first rendered line
	width  int
	height int
}

func NewFormModel(s *wizard.Session, styles Styles) FormModel {
	ti := textinput.New()
	ti.CharLimit = textCharLimit
	ti.Prompt = "› "

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(areaHeight)

	m := FormModel{
		session: s,
		styles:  styles,
		input:   ti,
		area:    ta,
	}
	m.Load()
	return m
}

// Load shows the session's current step from its first question.
func (m *FormModel) Load() {
	m.step = m.session.Current()
	m.questions = VisibleQuestions(m.step, m.session.Answers())
	m.focus = 0
	m.offset = 0
	m.focusQuestion()
	m.syncScroll()
}

// SetStyles swaps the styles after a theme change.
func (m *FormModel) SetStyles(s Styles) {
	m.styles = s
}

func (m *FormModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = max(w-8, 10)
	m.area.SetWidth(max(w-4, 10))
	m.syncScroll()
}

// Focused returns the question with keyboard focus.
func (m FormModel) Focused() (Question, bool) {
	if m.focus < 0 || m.focus >= len(m.questions) {
		return Question{}, false
	}
	return m.questions[m.focus], true
}

// Questions returns the currently visible questions.
func (m FormModel) Questions() []Question {
	return m.questions
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) focusQuestion() {
	m.input.Blur()
	m.area.Blur()
	q, ok := m.Focused()
	if !ok {
		return
	}
	a := m.session.Answers()
	m.cursor = 0
	if q.Kind == KindSingle {
		m.cursor = selectedIndex(q, a)
	}
	switch {
	case q.Kind == KindLongText:
		m.area.Placeholder = q.Placeholder
		m.area.SetValue(textValue(q, a))
		m.area.Focus()
	case q.IsText():
		m.input.Placeholder = q.Placeholder
		m.input.SetValue(textValue(q, a))
		m.input.CursorEnd()
		m.input.Focus()
	}
}

// move shifts focus by delta questions.
func (m *FormModel) move(delta int) {
	next := m.focus + delta
	if next < 0 || next >= len(m.questions) {
		return
	}
	m.focus = next
	m.focusQuestion()
}

// arrowUp moves to the previous question the way the up arrow reads: a
// choice question is entered from its last option.
func (m *FormModel) arrowUp() {
	prev := m.focus
	m.move(-1)
	if m.focus == prev {
		return
	}
	if q := m.questions[m.focus]; q.Kind == KindMulti || q.Kind == KindSingle {
		m.cursor = len(choicesFor(q, m.session.Answers())) - 1
	}
}

// refresh re-derives the visible questions after an edit that may show or
// hide some of them, keeping focus and cursor on the same question.
func (m *FormModel) refresh() {
	key := ""
	if q, ok := m.Focused(); ok {
		key = q.Key()
	}
	cursor := m.cursor
	m.questions = VisibleQuestions(m.step, m.session.Answers())
	m.focus = 0
	for i, q := range m.questions {
		if q.Key() == key {
			m.focus = i
			break
		}
	}
	m.cursor = cursor
}

func (m *FormModel) edit(q Question, mutate func(*state.Answers)) {
	if m.session.Update([]state.Field{q.Field}, mutate) {
		m.refresh()
		if q.Kind == KindSingle {
			m.cursor = selectedIndex(q, m.session.Answers())
		}
	}
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncScroll()
	return m, cmd
}

// syncScroll moves the window so the focused question stays on screen.
// It waits for the first size so the step title is not scrolled away.
func (m *FormModel) syncScroll() {
	if m.height == 0 {
		return
	}
	_, from, to := m.render()
	m.offset = scrollToShow(m.offset, from, to, m.height)
}

func (m FormModel) update(msg tea.Msg) (FormModel, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	q, ok := m.Focused()
	if !ok {
		return m, nil
	}

	if isKey {
		switch key.String() {
		case "tab":
			m.move(1)
			return m, nil
		case "shift+tab":
			m.move(-1)
			return m, nil
		}
	}

	if q.IsText() {
		return m.updateText(q, msg)
	}
	if !isKey {
		return m, nil
	}

	a := m.session.Answers()
	switch q.Kind {
	case KindSingle, KindMulti:
		choices := choicesFor(q, a)
		switch key.String() {
		case "up", "k":
			if m.cursor == 0 {
				m.arrowUp()
			} else {
				m.cursor--
			}
		case "down", "j":
			if m.cursor >= len(choices)-1 {
				m.move(1)
			} else {
				m.cursor++
			}
		case "enter", " ", "x":
			if m.cursor < len(choices) {
				m.edit(q, choiceEdit(q, choices[m.cursor]))
			}
		}
	case KindSlider:
		switch key.String() {
		case "left", "h", "-":
			m.edit(q, sliderEdit(-1))
		case "right", "l", "+":
			m.edit(q, sliderEdit(1))
		case "up", "k":
			m.arrowUp()
		case "down", "j", "enter":
			m.move(1)
		}
	case KindToggle:
		switch key.String() {
		case "enter", " ", "x", "left", "right":
			m.edit(q, toggleSound)
		case "up", "k":
			m.arrowUp()
		case "down", "j":
			m.move(1)
		}
	}
	return m, nil
}

func (m FormModel) updateText(q Question, msg tea.Msg) (FormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && q.Kind != KindLongText {
		switch key.String() {
		case "up":
			m.arrowUp()
			return m, nil
		case "down", "enter":
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	var before, after string
	if q.Kind == KindLongText {
		before = m.area.Value()
		m.area, cmd = m.area.Update(msg)
		after = m.area.Value()
	} else {
		before = m.input.Value()
		m.input, cmd = m.input.Update(msg)
		after = m.input.Value()
	}
	if after != before {
		m.session.Update([]state.Field{q.Field}, textEdit(q, after))
	}
	return m, cmd
}

func (m FormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lines, from, to := m.render()
	offset := min(scrollToShow(m.offset, from, to, m.height), len(lines))
	end := min(offset+m.height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

// render lays out the whole step and reports the line span of the focused
// question.
func (m FormModel) render() (lines []string, focusFrom, focusTo int) {
	s := m.styles
	a := m.session.Answers()
	errs := m.session.Errors()

	lines = []string{s.StepTitle.Render(m.step.Title()), ""}
	for i, q := range m.questions {
		if i == m.focus {
			focusFrom = len(lines)
		}
		lines = append(lines, m.renderQuestion(q, a, errs, i == m.focus)...)
		if i == m.focus {
			focusTo = len(lines)
		}
		lines = append(lines, "")
	}
	return lines, focusFrom, focusTo
}

func (m FormModel) renderQuestion(q Question, a state.Answers, errs flow.Errors, focused bool) []string {
	s := m.styles
	wrap := max(m.width-4, 20)

	label := s.Label.Render(q.Label)
	prefix := "  "
	if focused {
		label = s.LabelFocus.Render(q.Label)
		prefix = s.Cursor.Render("▸ ")
	}
	if q.Required {
		label += s.Required.Render(" *")
	}
	lines := []string{prefix + label}

	if msg := questionError(q, errs); msg != "" {
		lines = append(lines, "  "+s.Error.Render("⚠ "+msg))
	}
	if focused && q.Help != "" {
		for _, l := range strings.Split(wordwrap.String(q.Help, wrap), "\n") {
			lines = append(lines, s.Help.Render(" "+l))
		}
	}

	switch q.Kind {
	case KindSingle, KindMulti:
		lines = append(lines, m.renderChoices(q, a, focused, wrap)...)
	case KindSlider:
		bar := fmt.Sprintf("◀ %s %d/%d ▶", sliderBar(a.Intensity), a.Intensity, state.MaxIntensity)
		lines = append(lines, "  "+s.Value.Render(bar))
	case KindToggle:
		on, off := "( ) On", "(•) Off"
		if a.IncludeSound {
			on, off = "(•) On", "( ) Off"
		}
		lines = append(lines, "  "+s.Value.Render(on+"   "+off))
	case KindLongText:
		if focused {
			lines = append(lines, strings.Split(m.area.View(), "\n")...)
			break
		}
		lines = append(lines, m.renderValue(q, a, wrap)...)
	default:
		if focused {
			lines = append(lines, "  "+m.input.View())
			break
		}
		lines = append(lines, m.renderValue(q, a, wrap)...)
	}
	return lines
}

func (m FormModel) renderChoices(q Question, a state.Answers, focused bool, wrap int) []string {
	s := m.styles
	var lines []string
	for i, c := range choicesFor(q, a) {
		sel := isSelected(q, a, c)
		mark := "( )"
		if q.Kind == KindMulti {
			mark = "[ ]"
			if sel {
				mark = "[x]"
			}
		} else if sel {
			mark = "(•)"
		}

		style := s.Option
		if sel {
			style = s.OptionSel
		}
		cursor := "  "
		if focused && i == m.cursor {
			cursor = s.Cursor.Render("› ")
		}
		lines = append(lines, "  "+cursor+style.Render(mark+" "+c.Display()))

		if focused && i == m.cursor && c.Help != "" {
			for _, l := range strings.Split(wordwrap.String(c.Help, wrap-8), "\n") {
				lines = append(lines, "        "+s.Subtitle.Render(l))
			}
		}
	}
	return lines
}

func (m FormModel) renderValue(q Question, a state.Answers, wrap int) []string {
	v := summary(q, a)
	if strings.TrimSpace(v) == "" {
		ph := q.Placeholder
		if ph == "" {
			ph = "(empty)"
		}
		return []string{"    " + m.styles.Subtitle.Render(ph)}
	}
	var lines []string
	for _, l := range strings.Split(wordwrap.String(v, wrap-4), "\n") {
		lines = append(lines, "    "+m.styles.Value.Render(l))
	}
	return lines
}
