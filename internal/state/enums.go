package state

import (
	"slices"
	"strings"
)

// ProjectType is one selectable project category.
type ProjectType string

const (
	ProjectAction      ProjectType = "Action / Arcade"
	ProjectPuzzle      ProjectType = "Puzzle / Logic"
	ProjectRPG         ProjectType = "RPG / Adventure"
	ProjectStrategy    ProjectType = "Strategy / Sim"
	ProjectParty       ProjectType = "Party / Minigames"
	ProjectCreative    ProjectType = "Creative / Art Tool"
	ProjectApp         ProjectType = "Utility / Productivity"
	ProjectMusic       ProjectType = "Music / Rhythm"
	ProjectSurvival    ProjectType = "Survival / Crafting"
	ProjectFighting    ProjectType = "Fighting / Brawler"
	ProjectEducational ProjectType = "Educational / Quiz"
	ProjectTabletop    ProjectType = "Tabletop / Cards & Dice"
	ProjectVisualNovel ProjectType = "Visual Novel / Story"
	ProjectSimulation  ProjectType = "Simulation / Management"
	ProjectSandbox     ProjectType = "Sandbox / Physics Toy"
	ProjectIdle        ProjectType = "Idle / Clicker"
	ProjectCalendar    ProjectType = "Calendar / Scheduler"
	ProjectEmail       ProjectType = "Email / Inbox"
	ProjectFileManager ProjectType = "File Manager / Explorer"
	ProjectNoteTaking  ProjectType = "Note Taking / Wiki"
)

// AllProjectTypes lists every category in display order.
var AllProjectTypes = []ProjectType{
	ProjectAction, ProjectPuzzle, ProjectRPG, ProjectStrategy,
	ProjectParty, ProjectCreative, ProjectApp,
	ProjectMusic, ProjectSurvival, ProjectFighting,
	ProjectEducational, ProjectTabletop, ProjectVisualNovel,
	ProjectSimulation, ProjectSandbox, ProjectIdle,
	ProjectCalendar, ProjectEmail, ProjectFileManager, ProjectNoteTaking,
}

// Head returns the part of the label before the first "/", trimmed.
// "Action / Arcade" -> "Action".
func (p ProjectType) Head() string {
	s := string(p)
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Valid reports whether p is a known category.
func (p ProjectType) Valid() bool {
	return slices.Contains(AllProjectTypes, p)
}

// SpeedMode controls how many optional modules the wizard walks through.
type SpeedMode string

const (
	SpeedQuick  SpeedMode = "Quick (2 min)"
	SpeedFull   SpeedMode = "Full (5 min)"
	SpeedCustom SpeedMode = "Custom (Pick modules)"
)

// AllSpeedModes lists the depth modes in display order.
var AllSpeedModes = []SpeedMode{SpeedQuick, SpeedFull, SpeedCustom}

// Valid reports whether m is a known mode.
func (m SpeedMode) Valid() bool {
	return slices.Contains(AllSpeedModes, m)
}

// Module identifies an optional extension section of the blueprint.
type Module string

const (
	ModuleMultiplayer   Module = "multiplayer"
	ModuleProgression   Module = "progression"
	ModuleSafety        Module = "safety"
	ModuleAccessibility Module = "accessibility"
)

// AllModules lists the custom modules in display order.
var AllModules = []Module{ModuleMultiplayer, ModuleProgression, ModuleSafety, ModuleAccessibility}

func (m Module) Valid() bool {
	return slices.Contains(AllModules, m)
}

// Label is the human name shown next to a module checkbox.
func (m Module) Label() string {
	switch m {
	case ModuleMultiplayer:
		return "Multiplayer"
	case ModuleProgression:
		return "Progression"
	case ModuleSafety:
		return "Content Limits"
	case ModuleAccessibility:
		return "Accessibility"
	default:
		return string(m)
	}
}

// Labels for fixed single-choice answers that carry a default.
const (
	ColorThemeDefault    = "Clean / Modern"
	ColorThemeDarkNeon   = "Cyberpunk / Neon"
	ColorThemePastel     = "Cozy / Pastel"
	ColorThemeRetro      = "Retro / 8-bit"
	ColorThemeMonochrome = "High Contrast / BW"
	ColorThemeEnterprise = "Enterprise / SaaS"

	RenderDOM    = "React Components (DOM)"
	RenderCanvas = "HTML5 Canvas (2D)"
	RenderThree  = "Three.js (3D)"
	RenderSVG    = "SVG Manipulation"

	AssetShapes = "Geometric Shapes (Clean)"
	AssetEmojis = "Emojis (Expressive/Fast)"
	AssetIcons  = "Lucide Icons (UI/App)"
	AssetText   = "Typography / ASCII"
	AssetPixel  = "Procedural Pixel Art"
)
