package flow

import (
	"maps"

	"github.com/manasm11/gamebrief/internal/state"
)

// Validation messages shown next to the offending control.
const (
	MsgRequired      = "Required"
	MsgSelectType    = "Select at least one type"
	MsgSelectModule  = "Please select at least one module for Custom mode."
	MsgPickInterest  = "Pick at least one!"
	MsgPickMechanic  = "Pick at least one mechanic"
	MsgNameMinigames = "Please name your minigames."
)

// Errors maps a field to its validation message.
type Errors map[state.Field]string

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return Errors{}
	}
	return maps.Clone(e)
}

type requirement struct {
	field state.Field
	msg   string
}

var stepRequirements = map[StepID][]requirement{
	StepStart: {
		{state.FieldProjectTypes, MsgSelectType},
		{state.FieldSpeedMode, MsgRequired},
	},
	StepAboutYou: {
		{state.FieldAuthorName, MsgRequired},
		{state.FieldAuthorInterests, MsgPickInterest},
		{state.FieldPlayerType, MsgRequired},
	},
	StepCoreIdentity: {
		{state.FieldTitle, MsgRequired},
		{state.FieldPitch, MsgRequired},
		{state.FieldVibes, MsgRequired},
	},
	StepVisuals: {
		{state.FieldRenderStyle, MsgRequired},
		{state.FieldAssetStyle, MsgRequired},
		{state.FieldColorTheme, MsgRequired},
	},
	StepActionDetails: {
		{state.FieldActionGenre, MsgRequired},
		{state.FieldActionView, MsgRequired},
		{state.FieldActionMechanics, MsgPickMechanic},
	},
	StepPuzzleDetails: {
		{state.FieldPuzzleType, MsgRequired},
		{state.FieldPuzzleMechanic, MsgRequired},
	},
	StepRPGDetails: {
		{state.FieldRPGSetting, MsgRequired},
		{state.FieldRPGCombat, MsgRequired},
	},
	StepStrategyDetails: {
		{state.FieldSimType, MsgRequired},
		{state.FieldSimGoal, MsgRequired},
	},
	StepCreativeDetails: {
		{state.FieldCreativeToolType, MsgRequired},
	},
	StepAppDetails: {
		{state.FieldAppType, MsgRequired},
		{state.FieldAppDataModel, MsgRequired},
	},
	StepPartyDetails: {
		{state.FieldPartyPlayers, MsgRequired},
	},
	StepMultiplayer: {
		{state.FieldMPPlayerCount, MsgRequired},
		{state.FieldMPControls, MsgRequired},
	},
	StepProgression: {
		{state.FieldProgressionFeatures, MsgRequired},
		{state.FieldSaveProgress, MsgRequired},
	},
	StepContentLimits: {
		{state.FieldAllowedVibes, MsgRequired},
		{state.FieldNotAllowed, MsgRequired},
	},
}

// StepFields lists the fields whose errors are owned by a step: its
// required fields plus the fields of its cross-field rules.
func StepFields(step StepID) []state.Field {
	var fields []state.Field
	for _, r := range stepRequirements[step] {
		fields = append(fields, r.field)
	}
	if step == StepPartyDetails {
		fields = append(fields, state.FieldPartyMinigames)
	}
	return fields
}

// StepOf returns the step that owns a field's error, if any.
func StepOf(f state.Field) (StepID, bool) {
	for _, step := range AllSteps() {
		for _, owned := range StepFields(step) {
			if owned == f {
				return step, true
			}
		}
	}
	return "", false
}

// Validate checks only the given step and returns its failures. An empty
// result means the step may be advanced past.
func Validate(step StepID, a state.Answers) Errors {
	errs := Errors{}
	for _, r := range stepRequirements[step] {
		if a.IsEmpty(r.field) {
			errs[r.field] = r.msg
		}
	}

	switch step {
	case StepStart:
		// Reported against the mode, not the module picker.
		if a.SpeedMode == state.SpeedCustom && len(a.CustomSections) == 0 {
			errs[state.FieldSpeedMode] = MsgSelectModule
		}
	case StepPartyDetails:
		if a.HasUnnamedMinigame() {
			errs[state.FieldPartyMinigames] = MsgNameMinigames
		}
	}

	return errs
}
