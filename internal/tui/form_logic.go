package tui

import (
	"slices"
	"strings"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
)

// choicesFor returns the options of q. A current value that is not among
// them (a loaded file, or a default from an older option list) is listed
// first so it stays visible and selectable.
func choicesFor(q Question, a state.Answers) []Choice {
	if q.Kind != KindSingle {
		return q.Options
	}
	cur := a.Text(q.Field)
	if cur == "" || slices.ContainsFunc(q.Options, func(c Choice) bool { return c.Value == cur }) {
		return q.Options
	}
	return append([]Choice{{Value: cur}}, q.Options...)
}

func isSelected(q Question, a state.Answers, c Choice) bool {
	switch q.Kind {
	case KindSingle:
		return a.Text(q.Field) == c.Value
	case KindMulti:
		return slices.Contains(a.List(q.Field), c.Value)
	}
	return false
}

// selectedIndex is the position of the chosen option of a single choice
// question, or 0.
func selectedIndex(q Question, a state.Answers) int {
	for i, c := range choicesFor(q, a) {
		if isSelected(q, a, c) {
			return i
		}
	}
	return 0
}

// choiceEdit is the mutation applied when c is picked: single choice
// replaces the value, multi choice toggles membership.
func choiceEdit(q Question, c Choice) func(*state.Answers) {
	if q.Kind == KindMulti {
		return func(a *state.Answers) { a.Toggle(q.Field, c.Value) }
	}
	return func(a *state.Answers) { a.SetText(q.Field, c.Value) }
}

func textValue(q Question, a state.Answers) string {
	if q.Kind == KindMinigame {
		g := a.Minigame(q.Slot)
		if q.Objective {
			return g.Objective
		}
		return g.Name
	}
	return a.Text(q.Field)
}

func textEdit(q Question, v string) func(*state.Answers) {
	if q.Kind == KindMinigame {
		return func(a *state.Answers) {
			g := a.Minigame(q.Slot)
			if q.Objective {
				g.Objective = v
			} else {
				g.Name = v
			}
			a.SetMinigame(q.Slot, g)
		}
	}
	return func(a *state.Answers) { a.SetText(q.Field, v) }
}

func sliderEdit(delta int) func(*state.Answers) {
	return func(a *state.Answers) { a.SetIntensity(a.Intensity + delta) }
}

func toggleSound(a *state.Answers) { a.IncludeSound = !a.IncludeSound }

// questionError is the message shown under q. The minigame error belongs
// to the whole list, so only the first slot shows it.
func questionError(q Question, errs flow.Errors) string {
	if q.Kind == KindMinigame && (q.Slot != 0 || q.Objective) {
		return ""
	}
	return errs[q.Field]
}

// summary renders a question's value for the unfocused view.
func summary(q Question, a state.Answers) string {
	switch q.Kind {
	case KindMulti:
		var labels []string
		for _, c := range q.Options {
			if isSelected(q, a, c) {
				labels = append(labels, c.Display())
			}
		}
		return strings.Join(labels, ", ")
	case KindSingle:
		for _, c := range choicesFor(q, a) {
			if isSelected(q, a, c) {
				return c.Display()
			}
		}
		return ""
	case KindSlider:
		return sliderBar(a.Intensity)
	case KindToggle:
		if a.IncludeSound {
			return "On"
		}
		return "Off"
	default:
		return textValue(q, a)
	}
}

func sliderBar(v int) string {
	v = state.ClampIntensity(v)
	return strings.Repeat("●", v) + strings.Repeat("○", state.MaxIntensity-v)
}

// scrollToShow returns the window offset that keeps lines [from, to) of a
// view visible in height lines, moving as little as possible from offset.
func scrollToShow(offset, from, to, height int) int {
	if height < 1 {
		height = 1
	}
	if to-from > height {
		to = from + height
	}
	if from < offset {
		offset = from
	}
	if to > offset+height {
		offset = to - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
