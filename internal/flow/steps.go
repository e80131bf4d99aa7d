// Package flow derives the ordered list of wizard steps from the answers
// and validates the required fields of a single step.
package flow

import (
	"slices"

	"github.com/manasm11/gamebrief/internal/state"
)

// StepID names one wizard screen.
type StepID string

const (
	StepStart           StepID = "start"
	StepAboutYou        StepID = "about_you"
	StepCoreIdentity    StepID = "core_identity"
	StepVisuals         StepID = "visuals"
	StepActionDetails   StepID = "action_details"
	StepPuzzleDetails   StepID = "puzzle_details"
	StepRPGDetails      StepID = "rpg_details"
	StepStrategyDetails StepID = "strategy_details"
	StepPartyDetails    StepID = "party_details"
	StepCreativeDetails StepID = "creative_details"
	StepAppDetails      StepID = "app_details"
	StepMultiplayer     StepID = "multiplayer"
	StepProgression     StepID = "progression"
	StepContentLimits   StepID = "content_limits"
	StepFinish          StepID = "finish"
)

// Title is the heading shown for the step.
func (s StepID) Title() string {
	switch s {
	case StepStart:
		return "Start"
	case StepAboutYou:
		return "About You"
	case StepCoreIdentity:
		return "Core Identity"
	case StepVisuals:
		return "Tech Stack"
	case StepActionDetails:
		return "Action Details"
	case StepPuzzleDetails:
		return "Puzzle Details"
	case StepRPGDetails:
		return "RPG Details"
	case StepStrategyDetails:
		return "Strategy Details"
	case StepPartyDetails:
		return "Party Details"
	case StepCreativeDetails:
		return "Creative Details"
	case StepAppDetails:
		return "App Details"
	case StepMultiplayer:
		return "Multiplayer"
	case StepProgression:
		return "Progression"
	case StepContentLimits:
		return "Content Limits"
	case StepFinish:
		return "Finish"
	default:
		return string(s)
	}
}

// prefix is always visited first, in this order.
var prefix = []StepID{StepStart, StepAboutYou, StepCoreIdentity, StepVisuals}

// detailTriggers maps each genre-detail step to the categories that enable it.
// The slice order is the order detail steps are appended in.
var detailTriggers = []struct {
	step     StepID
	triggers []state.ProjectType
}{
	{StepActionDetails, []state.ProjectType{state.ProjectAction, state.ProjectMusic, state.ProjectSurvival, state.ProjectFighting}},
	{StepPuzzleDetails, []state.ProjectType{state.ProjectPuzzle, state.ProjectEducational, state.ProjectTabletop}},
	{StepRPGDetails, []state.ProjectType{state.ProjectRPG, state.ProjectVisualNovel}},
	{StepStrategyDetails, []state.ProjectType{state.ProjectStrategy, state.ProjectSimulation, state.ProjectSandbox, state.ProjectIdle}},
	{StepPartyDetails, []state.ProjectType{state.ProjectParty}},
	{StepCreativeDetails, []state.ProjectType{state.ProjectCreative}},
	{StepAppDetails, []state.ProjectType{state.ProjectApp, state.ProjectCalendar, state.ProjectEmail, state.ProjectFileManager, state.ProjectNoteTaking}},
}

// extensionSteps maps the optional module steps to their module id.
// Accessibility has no step of its own; it only adds a blueprint section.
var extensionSteps = []struct {
	step   StepID
	module state.Module
}{
	{StepMultiplayer, state.ModuleMultiplayer},
	{StepProgression, state.ModuleProgression},
	{StepContentLimits, state.ModuleSafety},
}

// Triggers returns the categories that enable a genre-detail step, or nil
// for steps that are not detail steps.
func Triggers(step StepID) []state.ProjectType {
	for _, d := range detailTriggers {
		if d.step == step {
			return slices.Clone(d.triggers)
		}
	}
	return nil
}

// DetailTriggered reports whether a genre-detail step is enabled by the
// selected categories. It is false for every non-detail step.
func DetailTriggered(a state.Answers, step StepID) bool {
	for _, d := range detailTriggers {
		if d.step == step {
			return a.HasAnyProjectType(d.triggers...)
		}
	}
	return false
}

// HasModule reports whether an optional module is active: always in Full
// mode, and in Custom mode only when picked.
func HasModule(a state.Answers, m state.Module) bool {
	switch a.SpeedMode {
	case state.SpeedFull:
		return true
	case state.SpeedCustom:
		return a.HasCustomSection(m)
	default:
		return false
	}
}

// Resolve computes the ordered step sequence for the answers. The result
// always starts with StepStart, ends with StepFinish and has no duplicates.
func Resolve(a state.Answers) []StepID {
	steps := make([]StepID, 0, len(prefix)+len(detailTriggers)+len(extensionSteps)+1)
	steps = append(steps, prefix...)

	for _, d := range detailTriggers {
		if a.HasAnyProjectType(d.triggers...) {
			steps = append(steps, d.step)
		}
	}

	for _, e := range extensionSteps {
		if HasModule(a, e.module) {
			steps = append(steps, e.step)
		}
	}

	return append(steps, StepFinish)
}

// IndexOf returns the position of step in steps, or -1.
func IndexOf(steps []StepID, step StepID) int {
	return slices.Index(steps, step)
}

// AllSteps lists every step in canonical order, regardless of answers.
func AllSteps() []StepID {
	all := slices.Clone(prefix)
	for _, d := range detailTriggers {
		all = append(all, d.step)
	}
	for _, e := range extensionSteps {
		all = append(all, e.step)
	}
	return append(all, StepFinish)
}
