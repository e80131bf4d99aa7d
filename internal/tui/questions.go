package tui

import (
	"fmt"
	"slices"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
)

// Kind is the control a question is answered with.
type Kind int

const (
	KindSingle   Kind = iota // pick one option
	KindMulti                // toggle any number of options
	KindText                 // one line
	KindLongText             // several lines
	KindSlider               // 1-5 intensity
	KindToggle               // on/off
	KindMinigame             // one slot of the party minigame list
)

// Choice is one option of a single or multi choice question.
type Choice struct {
	Value string
	Label string // shown instead of Value when set
	Help  string
}

func (c Choice) Display() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Value
}

// Question is a single control on a step screen.
type Question struct {
	Field       state.Field
	Label       string
	Kind        Kind
	Options     []Choice
	Required    bool
	Help        string
	Placeholder string

	// Minigame questions address one slot; Objective selects the second
	// half of the name/objective pair.
	Slot      int
	Objective bool

	// Visible hides the question unless it returns true. Nil means always shown.
	Visible func(a state.Answers) bool
}

// Key identifies a question within its step.
func (q Question) Key() string {
	if q.Kind == KindMinigame {
		part := "name"
		if q.Objective {
			part = "objective"
		}
		return fmt.Sprintf("%s[%d].%s", q.Field, q.Slot, part)
	}
	return string(q.Field)
}

func (q Question) Shown(a state.Answers) bool {
	return q.Visible == nil || q.Visible(a)
}

// IsText reports whether the question is edited through a text input.
func (q Question) IsText() bool {
	return q.Kind == KindText || q.Kind == KindLongText || q.Kind == KindMinigame
}

func values(vs ...string) []Choice {
	out := make([]Choice, len(vs))
	for i, v := range vs {
		out[i] = Choice{Value: v}
	}
	return out
}

var (
	interestChoices = values(
		"Space", "Animals", "Music", "Sports", "Food & Cooking", "History",
		"Mythology", "Technology", "Nature", "Art & Design", "Movies & Anime", "Science",
	)

	playerTypeChoices = []Choice{
		{Value: "Explorer", Help: "Loves discovering secrets and new places."},
		{Value: "Achiever", Help: "Loves completing goals and collecting everything."},
		{Value: "Competitor", Help: "Loves winning and climbing leaderboards."},
		{Value: "Socializer", Help: "Loves playing with and against friends."},
		{Value: "Creator", Help: "Loves building and expressing ideas."},
	}

	vibeChoices = []Choice{
		{Value: "Tactical", Help: "Requires thinking ahead."},
		{Value: "Chaotic", Help: "Unpredictable fun."},
		{Value: "Cozy", Help: "Relaxing, low stakes."},
		{Value: "Funny", Help: "Humorous or silly."},
		{Value: "Competitive", Help: "Player vs Player focus."},
		{Value: "Dark", Help: "Spooky or serious tone."},
		{Value: "Fast", Help: "High APM, speed focused."},
		{Value: "Zen", Help: "Satisfying, flow state."},
	}

	themeChoices = values(
		"Outer Space", "Underwater", "Medieval Kingdom", "Neon City", "Haunted House",
		"Enchanted Forest", "Inside a Computer", "Abstract Geometry", "Wild West", "Candy Land",
	)

	renderChoices = []Choice{
		{Value: state.RenderDOM, Help: "Standard HTML/CSS. Best for UI-heavy apps, idle games and text adventures."},
		{Value: state.RenderCanvas, Help: "High performance for moving objects. Best for action, platformers and shooters."},
		{Value: state.RenderThree, Help: "3D engine for immersive worlds. Higher complexity."},
		{Value: state.RenderSVG, Help: "Crisp at any size. Good for card games, puzzles and strategy maps."},
	}

	assetChoices = []Choice{
		{Value: state.AssetShapes, Help: "Clean geometry. Modern and abstract."},
		{Value: state.AssetEmojis, Help: "System emojis. Expressive, colorful and very lightweight."},
		{Value: state.AssetIcons, Help: "Icon set. Clean, professional app aesthetic."},
		{Value: state.AssetText, Help: "Text and ASCII art only."},
		{Value: state.AssetPixel, Help: "Procedural pixel art. Retro gaming nostalgia."},
	}

	colorChoices = values(
		state.ColorThemeDefault, state.ColorThemeDarkNeon, state.ColorThemePastel,
		state.ColorThemeRetro, state.ColorThemeMonochrome, state.ColorThemeEnterprise,
	)

	audioChoices = values(
		"Retro / 8-bit (Chiptune)",
		"Lo-Fi / Chill (Soft Synths)",
		"Sci-Fi / Futuristic (Beeps & Drones)",
		"Realistic / Foley (Percussive)",
		"Chaotic / Glitch",
	)
)

func projectTypeChoices() []Choice {
	out := make([]Choice, len(state.AllProjectTypes))
	for i, t := range state.AllProjectTypes {
		out[i] = Choice{Value: string(t)}
	}
	return out
}

var speedHelp = map[state.SpeedMode]string{
	state.SpeedQuick:  "Core ideas only. Good for prototypes.",
	state.SpeedFull:   "Includes multiplayer, progression, safety and accessibility.",
	state.SpeedCustom: "Choose exactly which extra modules to include.",
}

func speedChoices() []Choice {
	out := make([]Choice, len(state.AllSpeedModes))
	for i, m := range state.AllSpeedModes {
		out[i] = Choice{Value: string(m), Help: speedHelp[m]}
	}
	return out
}

func moduleChoices() []Choice {
	out := make([]Choice, len(state.AllModules))
	for i, m := range state.AllModules {
		out[i] = Choice{Value: string(m), Label: m.Label()}
	}
	return out
}

func isCustom(a state.Answers) bool { return a.SpeedMode == state.SpeedCustom }
func soundOn(a state.Answers) bool  { return a.IncludeSound }
func accessibilityOn(a state.Answers) bool {
	return flow.HasModule(a, state.ModuleAccessibility)
}

func minigameQuestions() []Question {
	var qs []Question
	for i := 0; i < state.MinigameCount; i++ {
		qs = append(qs,
			Question{
				Field:       state.FieldPartyMinigames,
				Label:       fmt.Sprintf("Minigame %d", i+1),
				Kind:        KindMinigame,
				Slot:        i,
				Placeholder: "e.g. Tank Sumo",
			},
			Question{
				Field:       state.FieldPartyMinigames,
				Label:       fmt.Sprintf("Minigame %d objective", i+1),
				Kind:        KindMinigame,
				Slot:        i,
				Objective:   true,
				Placeholder: "e.g. Push everyone off the platform",
			},
		)
	}
	qs[0].Help = "Name all three concepts."
	return qs
}

func catalogue(step flow.StepID) []Question {
	switch step {
	case flow.StepStart:
		return []Question{
			{Field: state.FieldProjectTypes, Label: "What are we building?", Kind: KindMulti, Options: projectTypeChoices(),
				Help: "Pick every category that applies. Each one can add a detail step."},
			{Field: state.FieldSpeedMode, Label: "Depth Mode", Kind: KindSingle, Options: speedChoices()},
			{Field: state.FieldCustomSections, Label: "Modules", Kind: KindMulti, Options: moduleChoices(), Visible: isCustom},
		}
	case flow.StepAboutYou:
		return []Question{
			{Field: state.FieldAuthorName, Label: "Your name", Kind: KindText, Placeholder: "Who is building this?"},
			{Field: state.FieldAuthorInterests, Label: "Interests", Kind: KindMulti, Options: interestChoices,
				Help: "Used for flavor text, easter eggs and visual details."},
			{Field: state.FieldPlayerType, Label: "What kind of player are you?", Kind: KindSingle, Options: playerTypeChoices},
		}
	case flow.StepCoreIdentity:
		return []Question{
			{Field: state.FieldTitle, Label: "Title", Kind: KindText, Placeholder: "e.g. Cyber Garden Tycoon"},
			{Field: state.FieldPitch, Label: "High Concept Pitch", Kind: KindLongText,
				Help: "Describe the project in one compelling sentence."},
			{Field: state.FieldVibes, Label: "Vibe Tags (Select 2-4)", Kind: KindMulti, Options: vibeChoices},
			{Field: state.FieldVibeOther, Label: "Other vibe", Kind: KindText, Placeholder: "Other vibe..."},
			{Field: state.FieldIntensity, Label: "Intensity Level", Kind: KindSlider,
				Help: "How much attention does the player need to pay?"},
			{Field: state.FieldThemes, Label: "Theme / Setting", Kind: KindMulti, Options: themeChoices},
			{Field: state.FieldCustomTheme, Label: "Custom setting", Kind: KindText, Placeholder: "Describe the world..."},
		}
	case flow.StepVisuals:
		return []Question{
			{Field: state.FieldRenderStyle, Label: "Rendering Engine", Kind: KindSingle, Options: renderChoices},
			{Field: state.FieldAssetStyle, Label: "Visual Assets", Kind: KindSingle, Options: assetChoices,
				Help: "Code-generated assets keep the result self-contained."},
			{Field: state.FieldColorTheme, Label: "Color Theme", Kind: KindSingle, Options: colorChoices},
			{Field: state.FieldIncludeSound, Label: "Audio System", Kind: KindToggle,
				Help: "Procedural audio is generated at runtime without sound files."},
			{Field: state.FieldAudioStyle, Label: "Audio Style", Kind: KindSingle, Options: audioChoices, Visible: soundOn},
		}
	case flow.StepActionDetails:
		return []Question{
			{Field: state.FieldActionGenre, Label: "Sub-Genre", Kind: KindSingle, Options: values(
				"Platformer", "Top-Down Shooter", "Twin Stick", "Endless Runner", "Beat 'em up", "Arena Survival")},
			{Field: state.FieldActionView, Label: "Perspective", Kind: KindSingle, Options: values(
				"Side View (2D)", "Top Down", "Isometric", "First Person (Raycasting/3D)")},
			{Field: state.FieldActionMechanics, Label: "Core Mechanics (Select multiple)", Kind: KindMulti, Options: []Choice{
				{Value: "Jumping / Gravity", Help: "Platformer physics."},
				{Value: "Shooting", Help: "Projectiles or hitscan."},
				{Value: "Dashing", Help: "Quick movement bursts."},
				{Value: "Melee Combat", Help: "Close range attacks."},
				{Value: "Stealth", Help: "Vision cones and hiding."},
				{Value: "Physics Objects", Help: "Pushing crates, ragdolls."},
			}, Help: "What actions does the player perform?"},
		}
	case flow.StepPuzzleDetails:
		return []Question{
			{Field: state.FieldPuzzleType, Label: "Puzzle Type", Kind: KindSingle, Options: values(
				"Match-3 / Grid", "Physics / Gravity", "Word / Logic", "Sokoban / Pushing", "Hidden Object", "Maze")},
			{Field: state.FieldPuzzleMechanic, Label: "Primary Mechanic", Kind: KindText,
				Help: "e.g. Swapping tiles, drawing lines, cutting ropes", Placeholder: "Describe the main interaction..."},
			{Field: state.FieldPuzzleLevelGen, Label: "Level Generation", Kind: KindSingle, Options: values(
				"Procedural (Infinite)", "Handcrafted (Fixed List)", "Daily Challenge")},
		}
	case flow.StepRPGDetails:
		return []Question{
			{Field: state.FieldRPGSetting, Label: "Setting Style", Kind: KindSingle, Options: values(
				"High Fantasy", "Cyberpunk / Sci-Fi", "Post-Apocalyptic", "Modern Mystery", "Eldritch Horror")},
			{Field: state.FieldRPGView, Label: "Perspective", Kind: KindSingle, Options: values(
				"Top Down (Classic)", "Side View", "Isometric", "First Person", "Text / Menu only")},
			{Field: state.FieldRPGCombat, Label: "Combat System", Kind: KindSingle, Options: values(
				"Turn-Based (Menu)", "Real-Time Action", "Tactical Grid", "Auto-Battler", "No Combat (Story only)")},
			{Field: state.FieldRPGClassSystem, Label: "Class / Progression", Kind: KindSingle, Options: values(
				"Class-based (Warrior/Mage)", "Skill Tree", "Loot based (Gear is power)", "Simple Leveling")},
		}
	case flow.StepStrategyDetails:
		return []Question{
			{Field: state.FieldSimType, Label: "Sim Type", Kind: KindSingle, Options: values(
				"Tycoon / Business", "City Builder", "Farming / Life Sim", "Tower Defense", "Idle / Clicker", "God Game")},
			{Field: state.FieldSimGoal, Label: "Primary Resource", Kind: KindText,
				Help: "What do players collect? e.g. Gold, Energy, Happiness.", Placeholder: "Resource name..."},
			{Field: state.FieldSimEconomy, Label: "Economy Complexity", Kind: KindSingle, Options: values(
				"Simple (Number goes up)", "Resource Chains (Wood -> Plank -> House)", "Market Driven (Supply/Demand)")},
		}
	case flow.StepPartyDetails:
		return append([]Question{
			{Field: state.FieldPartyPlayers, Label: "Player Count", Kind: KindSingle, Options: []Choice{
				{Value: "2", Label: "2 Players"}, {Value: "3", Label: "3 Players"}, {Value: "4", Label: "4 Players"},
			}},
			{Field: state.FieldPartyRoundLength, Label: "Round Length", Kind: KindSingle, Options: values(
				"30s Blitz", "60s Standard", "90s Long")},
			{Field: state.FieldPartyMatchFormat, Label: "Match Format", Kind: KindSingle, Options: values(
				"Best of 3", "Best of 5", "Mario Party Style (Board + Minigames)")},
			{Field: state.FieldPartyChaosRule, Label: "Chaos Rule", Kind: KindText,
				Help: "e.g. Controls swap every 10s", Placeholder: "Describe the chaos..."},
			{Field: state.FieldPartyComeback, Label: "Comeback Mechanic", Kind: KindText,
				Placeholder: "e.g. Last place gets a head start"},
		}, minigameQuestions()...)
	case flow.StepCreativeDetails:
		return []Question{
			{Field: state.FieldCreativeToolType, Label: "Tool Type", Kind: KindSingle, Options: values(
				"Pixel Art Editor", "Vector / Shape Designer", "Music / Sequencer", "Generative Art", "Text / Poetry Maker")},
			{Field: state.FieldCreativeOutput, Label: "Output / Share", Kind: KindText,
				Placeholder: "e.g. Save as PNG, Playback loop..."},
		}
	case flow.StepAppDetails:
		return []Question{
			{Field: state.FieldAppType, Label: "App Archetype", Kind: KindSingle, Options: values(
				"Dashboard / Analytics", "To-Do / Tracker", "Note Taking / Knowledge", "Social / Feed", "Calculator / Converter")},
			{Field: state.FieldAppDataModel, Label: "Data Model", Kind: KindSingle, Options: values(
				"Local Storage (Persist on device)", "Session only (Clears on refresh)", "Mock API (Simulated Backend)"),
				Help: "Local Storage is easiest for offline apps. Mock API simulates a real server."},
			{Field: state.FieldAppUIDensity, Label: "UI Density", Kind: KindSingle, Options: values(
				"Comfortable / Spacious", "Dense / Data Heavy", "Minimalist")},
		}
	case flow.StepMultiplayer:
		return []Question{
			{Field: state.FieldMPPlayerCount, Label: "Max Players", Kind: KindSingle, Options: values("1", "2", "3", "4")},
			{Field: state.FieldMPStyle, Label: "Mode", Kind: KindMulti, Options: []Choice{
				{Value: "Couch Co-op", Help: "Same screen, working together."},
				{Value: "Versus (PvP)", Help: "Fighting against each other."},
				{Value: "Team-based", Help: "2v2 or Team vs Environment."},
				{Value: "Leaderboards only", Help: "Async competition via scores."},
			}},
			{Field: state.FieldMPControls, Label: "Control Scheme", Kind: KindSingle, Options: values(
				"Keyboard (WASD/Arrows)", "Mouse / Touch", "Gamepad Support", "Hybrid (All)"),
				Help: "Gamepads need the Gamepad API. Touch needs on-screen joysticks."},
			{Field: state.FieldMPJoinButton, Label: "Join Button", Kind: KindText,
				Placeholder: "e.g. Press A to join"},
		}
	case flow.StepProgression:
		return []Question{
			{Field: state.FieldProgressionFeatures, Label: "Features (Select at least 1)", Kind: KindMulti, Options: []Choice{
				{Value: "Levels/Stages", Help: "Linear progression from A to B."},
				{Value: "XP & Leveling", Help: "Stats increase over time."},
				{Value: "Unlockable Skins", Help: "Cosmetic rewards."},
				{Value: "High Score Chasing", Help: "Arcade style loops."},
				{Value: "Story Chapters", Help: "Narrative unlock."},
				{Value: "Currency Shop", Help: "Buy upgrades with gold."},
			}},
			{Field: state.FieldSaveProgress, Label: "Persistence", Kind: KindSingle, Options: []Choice{
				{Value: "Auto-Save (Local Storage)", Help: "Remember progress after close."},
				{Value: "Roguelike (Wipe on Death)", Help: "Fresh start every run."},
			}},
			{Field: state.FieldSurpriseEvents, Label: "Surprise Events", Kind: KindText,
				Placeholder: "e.g. Meteor shower doubles points"},
			{Field: state.FieldBossIdea, Label: "Boss / Climax", Kind: KindText,
				Placeholder: "e.g. A giant robot made of your old levels"},
		}
	case flow.StepContentLimits:
		return []Question{
			{Field: state.FieldAllowedVibes, Label: "Allowed Tone", Kind: KindMulti, Options: values(
				"Tense", "Spooky (no gore)", "Action (cartoony)", "Comedy", "Competitive")},
			{Field: state.FieldNotAllowed, Label: "Strictly Forbidden", Kind: KindMulti, Options: values(
				"Gore", "Graphic violence", "Extreme jump scares", "Realistic horror")},
			{Field: state.FieldNotAllowedOther, Label: "Other restrictions", Kind: KindText, Placeholder: "Other restrictions..."},
		}
	case flow.StepFinish:
		return []Question{
			{Field: state.FieldAccessibilityFeatures, Label: "Accessibility Features", Kind: KindMulti, Options: []Choice{
				{Value: "Colorblind Friendly", Help: "High contrast, distinct patterns."},
				{Value: "Reduced Motion", Help: "Disable screen shake/flashing."},
				{Value: "Screen Reader Support", Help: "ARIA labels for UI elements."},
				{Value: "One-Handed Mode", Help: "Controls accessible with one hand."},
				{Value: "Game Speed Control", Help: "Slow down for easier reaction."},
			}, Visible: accessibilityOn},
			{Field: state.FieldExtras, Label: "Extra Requirements", Kind: KindLongText,
				Help: "Ranked mode, achievements, specific libraries?", Placeholder: "List any other requirements..."},
		}
	default:
		return nil
	}
}

// StepQuestions returns the ordered questions of a step. Required flags
// mirror the fields the step validator checks.
func StepQuestions(step flow.StepID) []Question {
	qs := catalogue(step)
	owned := flow.StepFields(step)
	for i := range qs {
		qs[i].Required = slices.Contains(owned, qs[i].Field)
	}
	return qs
}

// VisibleQuestions filters StepQuestions down to what a shows.
func VisibleQuestions(step flow.StepID, a state.Answers) []Question {
	var out []Question
	for _, q := range StepQuestions(step) {
		if q.Shown(a) {
			out = append(out, q)
		}
	}
	return out
}
