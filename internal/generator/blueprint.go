package generator

import (
	"fmt"
	"strings"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
)

// DefaultTargetModel is named in the blueprint header when Options leaves it empty.
const DefaultTargetModel = "Gemini 3 Pro (Expert Reasoning)"

// Placeholder stands in for optional answers that were left blank.
const Placeholder = "N/A"

const defaultInstructions = "Ensure code is clean, commented, and performant."

// Options tunes the parts of the blueprint that are not answers.
type Options struct {
	TargetModel string
}

func (o Options) targetModel() string {
	if strings.TrimSpace(o.TargetModel) == "" {
		return DefaultTargetModel
	}
	return o.TargetModel
}

type genreSection struct {
	step    flow.StepID
	heading string
	lines   func(a state.Answers) [][2]string
}

// genreSections are rendered in this order, each only when its detail step
// is part of the resolved flow.
var genreSections = []genreSection{
	{flow.StepActionDetails, "ACTION / RHYTHM / COMBAT SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Sub-Genre", a.ActionGenre},
			{"Perspective", a.ActionView},
			{"Mechanics", join(a.ActionMechanics)},
		}
	}},
	{flow.StepPuzzleDetails, "PUZZLE / LOGIC / TABLETOP SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Type", a.PuzzleType},
			{"Core Mechanic", a.PuzzleMechanic},
			{"Level Generation", a.PuzzleLevelGen},
		}
	}},
	{flow.StepRPGDetails, "RPG / NARRATIVE SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Setting", a.RPGSetting},
			{"Perspective", a.RPGView},
			{"Combat", a.RPGCombat},
			{"Progression", a.RPGClassSystem},
		}
	}},
	{flow.StepStrategyDetails, "SIMULATION / STRATEGY / SANDBOX SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Type", a.SimType},
			{"Main Resource", a.SimGoal},
			{"Economy", a.SimEconomy},
		}
	}},
	{flow.StepAppDetails, "APP SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Archetype", a.AppType},
			{"Data Strategy", a.AppDataModel},
			{"UI Density", a.AppUIDensity},
		}
	}},
	{flow.StepPartyDetails, "PARTY SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Players", a.PartyPlayers},
			{"Round Length", a.PartyRoundLength},
			{"Format", a.PartyMatchFormat},
			{"Chaos Rule", a.PartyChaosRule},
			{"Comeback Mechanic", a.PartyComeback},
			{"Minigame Concepts", minigames(a.PartyMinigames)},
		}
	}},
	{flow.StepCreativeDetails, "CREATIVE TOOL SPECS", func(a state.Answers) [][2]string {
		return [][2]string{
			{"Tool Type", a.CreativeToolType},
			{"Output", a.CreativeOutput},
		}
	}},
}

// Blueprint assembles the markdown prompt for a. It never fails and returns
// the same bytes for the same answers and options.
func Blueprint(a state.Answers, opts Options) string {
	var b strings.Builder

	heads := make([]string, 0, len(a.ProjectTypes))
	for _, t := range a.ProjectTypes {
		heads = append(heads, t.Head())
	}
	fmt.Fprintf(&b, "# PROJECT BLUEPRINT: %s\n", strings.ToUpper(orPlaceholder(strings.Join(heads, " + "))))
	fmt.Fprintf(&b, "**Target Model:** %s\n", opts.targetModel())
	fmt.Fprintf(&b, "**Title:** %s\n", orPlaceholder(a.Title))
	fmt.Fprintf(&b, "**Pitch:** %s\n\n", orPlaceholder(a.Pitch))

	b.WriteString("## CREATOR PROFILE\n")
	bullet(&b, "Builder Name", a.AuthorName)
	bullet(&b, "Player Personality", a.PlayerType)
	bullet(&b, "Interests", join(a.AuthorInterests))
	b.WriteString("*System Note: Infuse the game's flavor text, easter eggs, and visual details with these interests.*\n\n")

	b.WriteString("## VISUAL IDENTITY\n")
	vibe := orPlaceholder(join(a.Vibes))
	if other := strings.TrimSpace(a.VibeOther); other != "" {
		vibe += " (" + other + ")"
	}
	bullet(&b, "Vibe", vibe)
	bullet(&b, "Theme/Setting", themeString(a))
	bullet(&b, "Color Palette", a.ColorTheme)
	bullet(&b, "Intensity", fmt.Sprintf("%d/%d", state.ClampIntensity(a.Intensity), state.MaxIntensity))
	b.WriteString("\n")

	b.WriteString("## TECHNICAL ARCHITECTURE\n")
	bullet(&b, "Render Engine", a.RenderStyle)
	bullet(&b, "Asset Strategy", orPlaceholder(a.AssetStyle)+" (Self-contained, NO external URLs)")
	audio := "None"
	if a.IncludeSound {
		audio = fmt.Sprintf("Procedural Web Audio (%s)", orPlaceholder(a.AudioStyle))
	}
	bullet(&b, "Audio", audio)
	bullet(&b, "Deployment", "Single-file HTML/JS/CSS or Standard Vite React.")
	b.WriteString("\n")

	for _, g := range genreSections {
		if !flow.DetailTriggered(a, g.step) {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", g.heading)
		for _, l := range g.lines(a) {
			bullet(&b, l[0], l[1])
		}
		b.WriteString("\n")
	}

	if ext := extendedSystems(a); ext != "" {
		b.WriteString("## EXTENDED SYSTEMS\n")
		b.WriteString(ext)
		b.WriteString("\n")
	}

	b.WriteString("## SPECIAL INSTRUCTIONS\n")
	extras := strings.TrimSpace(a.Extras)
	if extras == "" {
		extras = defaultInstructions
	}
	b.WriteString(extras)
	b.WriteString("\n")

	return b.String()
}

// extendedSystems renders one bullet group per active module, or "" when
// none is active.
func extendedSystems(a state.Answers) string {
	var b strings.Builder

	if flow.HasModule(a, state.ModuleMultiplayer) {
		players := fmt.Sprintf("%s Players", orPlaceholder(a.MPPlayerCount))
		if len(a.MPStyle) > 0 {
			players += " (" + join(a.MPStyle) + ")"
		}
		bullet(&b, "Multiplayer", players)
		bullet(&b, "Input", a.MPControls)
		if strings.TrimSpace(a.MPJoinButton) != "" {
			bullet(&b, "Join Button", a.MPJoinButton)
		}
	}
	if flow.HasModule(a, state.ModuleProgression) {
		bullet(&b, "Progression", join(a.ProgressionFeatures))
		bullet(&b, "Persistence", a.SaveProgress)
		bullet(&b, "Surprise Events", a.SurpriseEvents)
		bullet(&b, "Boss / Climax", a.BossIdea)
	}
	if flow.HasModule(a, state.ModuleSafety) {
		banned := append([]string{}, a.NotAllowed...)
		if other := strings.TrimSpace(a.NotAllowedOther); other != "" {
			banned = append(banned, other)
		}
		bullet(&b, "Content Boundary", fmt.Sprintf("Allow [%s], BAN [%s]", join(a.AllowedVibes), join(banned)))
	}
	if flow.HasModule(a, state.ModuleAccessibility) {
		access := join(a.AccessibilityFeatures)
		if access == "" {
			access = "Standard"
		}
		bullet(&b, "Accessibility", access)
	}

	return b.String()
}

func bullet(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s:** %s\n", label, orPlaceholder(value))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func join(items []string) string {
	return strings.Join(items, ", ")
}

func themeString(a state.Answers) string {
	parts := make([]string, 0, len(a.Themes)+1)
	for _, t := range a.Themes {
		if strings.TrimSpace(t) != "" {
			parts = append(parts, t)
		}
	}
	if c := strings.TrimSpace(a.CustomTheme); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, " + ")
}

func minigames(games []state.Minigame) string {
	parts := make([]string, 0, len(games))
	for _, m := range games {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		if obj := strings.TrimSpace(m.Objective); obj != "" {
			name += " (" + obj + ")"
		}
		parts = append(parts, name)
	}
	return join(parts)
}

// FileName turns a title into the name the blueprint is saved under: every
// character outside [A-Za-z0-9] becomes "_" and the result is lower-cased.
func FileName(title string) string {
	if strings.TrimSpace(title) == "" {
		title = "game_blueprint"
	}
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".md"
}
