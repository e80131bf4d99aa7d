package tui

import (
	"testing"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
)

func TestStepQuestions_EveryStepHasQuestions(t *testing.T) {
	t.Parallel()
	for _, step := range flow.AllSteps() {
		if len(StepQuestions(step)) == 0 {
			t.Errorf("%s has no questions", step)
		}
	}
	if got := StepQuestions("nope"); got != nil {
		t.Errorf("unknown step = %v, want nil", got)
	}
}

func TestStepQuestions_RequiredMatchesValidator(t *testing.T) {
	t.Parallel()
	for _, step := range flow.AllSteps() {
		asked := map[state.Field]bool{}
		for _, q := range StepQuestions(step) {
			asked[q.Field] = true
		}
		owned := map[state.Field]bool{}
		for _, f := range flow.StepFields(step) {
			owned[f] = true
			if !asked[f] {
				t.Errorf("%s: validated field %s has no question", step, f)
			}
		}
		for _, q := range StepQuestions(step) {
			if q.Required != owned[q.Field] {
				t.Errorf("%s/%s: Required = %v, want %v", step, q.Key(), q.Required, owned[q.Field])
			}
		}
	}
}

func TestStepQuestions_KeysUniqueAndOptionsValid(t *testing.T) {
	t.Parallel()
	for _, step := range flow.AllSteps() {
		keys := map[string]bool{}
		for _, q := range StepQuestions(step) {
			if keys[q.Key()] {
				t.Errorf("%s: duplicate key %s", step, q.Key())
			}
			keys[q.Key()] = true

			choice := q.Kind == KindSingle || q.Kind == KindMulti
			if choice != (len(q.Options) > 0) {
				t.Errorf("%s/%s: kind %d with %d options", step, q.Key(), q.Kind, len(q.Options))
			}
			if q.Kind == KindMulti && !state.IsList(q.Field) {
				t.Errorf("%s/%s: multi choice bound to scalar field", step, q.Key())
			}
			seen := map[string]bool{}
			for _, c := range q.Options {
				if c.Value == "" || seen[c.Value] {
					t.Errorf("%s/%s: bad option %q", step, q.Key(), c.Value)
				}
				seen[c.Value] = true
			}
		}
	}
}

func TestStepQuestions_MinigameSlots(t *testing.T) {
	t.Parallel()
	var names, objectives int
	for _, q := range StepQuestions(flow.StepPartyDetails) {
		if q.Kind != KindMinigame {
			continue
		}
		if q.Objective {
			objectives++
		} else {
			names++
		}
	}
	if names != state.MinigameCount || objectives != state.MinigameCount {
		t.Errorf("names = %d, objectives = %d, want %d each", names, objectives, state.MinigameCount)
	}
}

func TestVisibleQuestions(t *testing.T) {
	t.Parallel()
	has := func(qs []Question, f state.Field) bool {
		for _, q := range qs {
			if q.Field == f {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name   string
		step   flow.StepID
		edit   func(*state.Answers)
		field  state.Field
		wantOn bool
	}{
		{"modules hidden outside custom", flow.StepStart,
			func(a *state.Answers) { a.SpeedMode = state.SpeedFull }, state.FieldCustomSections, false},
		{"modules shown in custom", flow.StepStart,
			func(a *state.Answers) { a.SpeedMode = state.SpeedCustom }, state.FieldCustomSections, true},
		{"audio style shown with sound", flow.StepVisuals,
			func(a *state.Answers) { a.IncludeSound = true }, state.FieldAudioStyle, true},
		{"audio style hidden without sound", flow.StepVisuals,
			func(a *state.Answers) { a.IncludeSound = false }, state.FieldAudioStyle, false},
		{"accessibility in full mode", flow.StepFinish,
			func(a *state.Answers) { a.SpeedMode = state.SpeedFull }, state.FieldAccessibilityFeatures, true},
		{"accessibility hidden in quick mode", flow.StepFinish,
			func(a *state.Answers) { a.SpeedMode = state.SpeedQuick }, state.FieldAccessibilityFeatures, false},
		{"accessibility as custom module", flow.StepFinish,
			func(a *state.Answers) {
				a.SpeedMode = state.SpeedCustom
				a.CustomSections = []state.Module{state.ModuleAccessibility}
			}, state.FieldAccessibilityFeatures, true},
		{"extras always shown", flow.StepFinish,
			func(a *state.Answers) {}, state.FieldExtras, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := state.Defaults()
			tt.edit(&a)
			if got := has(VisibleQuestions(tt.step, a), tt.field); got != tt.wantOn {
				t.Errorf("%s visible = %v, want %v", tt.field, got, tt.wantOn)
			}
		})
	}
}

func TestQuestionKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		q    Question
		want string
	}{
		{Question{Field: state.FieldTitle, Kind: KindText}, "title"},
		{Question{Field: state.FieldPartyMinigames, Kind: KindMinigame, Slot: 1}, "party_minigames[1].name"},
		{Question{Field: state.FieldPartyMinigames, Kind: KindMinigame, Slot: 2, Objective: true}, "party_minigames[2].objective"},
	}
	for _, tt := range tests {
		if got := tt.q.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
	}
}
