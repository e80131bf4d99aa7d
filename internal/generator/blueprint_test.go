package generator

import (
	"strings"
	"testing"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
)

func neonRun() state.Answers {
	a := state.Defaults()
	a.ProjectTypes = []state.ProjectType{state.ProjectAction}
	a.SpeedMode = state.SpeedFull
	a.AuthorName = "Sam"
	a.AuthorInterests = []string{"Space", "Synthwave"}
	a.PlayerType = "Speedrunner"
	a.Title = "Neon Run"
	a.Pitch = "Outrun the grid"
	a.Vibes = []string{"Fast", "Chaotic"}
	a.RenderStyle = state.RenderCanvas
	a.AssetStyle = state.AssetShapes
	a.ActionGenre = "Endless Runner"
	a.ActionView = "Side View (2D)"
	a.ActionMechanics = []string{"Jumping / Gravity", "Dashing"}
	a.MPControls = "Keyboard (WASD/Arrows)"
	a.ProgressionFeatures = []string{"High Score Chasing"}
	a.SaveProgress = "Auto-Save (Local Storage)"
	a.AllowedVibes = []string{"Competitive"}
	a.NotAllowed = []string{"Gore"}
	return a
}

func TestBlueprint_NeonRun(t *testing.T) {
	t.Parallel()
	doc := Blueprint(neonRun(), Options{})

	mustContain := []string{
		"# PROJECT BLUEPRINT: ACTION\n",
		"**Target Model:** " + DefaultTargetModel,
		"**Title:** Neon Run",
		"**Pitch:** Outrun the grid",
		"- **Builder Name:** Sam",
		"- **Interests:** Space, Synthwave",
		"- **Vibe:** Fast, Chaotic\n",
		"- **Theme/Setting:** N/A",
		"- **Color Palette:** " + state.ColorThemeDefault,
		"- **Intensity:** 3/5",
		"- **Asset Strategy:** Geometric Shapes (Clean) (Self-contained, NO external URLs)",
		"- **Audio:** Procedural Web Audio (Retro / 8-bit (Chiptune))",
		"### ACTION / RHYTHM / COMBAT SPECS",
		"- **Mechanics:** Jumping / Gravity, Dashing",
		"## EXTENDED SYSTEMS\n- **Multiplayer:** 1 Players\n- **Input:** Keyboard (WASD/Arrows)",
		"- **Persistence:** Auto-Save (Local Storage)",
		"- **Content Boundary:** Allow [Competitive], BAN [Gore]",
		"- **Accessibility:** Standard",
		"## SPECIAL INSTRUCTIONS\n" + defaultInstructions + "\n",
	}
	for _, want := range mustContain {
		if !strings.Contains(doc, want) {
			t.Errorf("blueprint missing %q\n%s", want, doc)
		}
	}

	for _, absent := range []string{"PUZZLE /", "RPG /", "PARTY SPECS", "APP SPECS", "CREATIVE TOOL"} {
		if strings.Contains(doc, absent) {
			t.Errorf("blueprint should not contain %q", absent)
		}
	}
}

func TestBlueprint_Idempotent(t *testing.T) {
	t.Parallel()
	a := neonRun()
	first := Blueprint(a, Options{TargetModel: "custom-model"})
	second := Blueprint(a, Options{TargetModel: "custom-model"})
	if first != second {
		t.Error("Blueprint() is not deterministic")
	}
	if !strings.Contains(first, "**Target Model:** custom-model\n") {
		t.Error("configured target model not used")
	}
}

func TestBlueprint_SectionOrder(t *testing.T) {
	t.Parallel()
	doc := Blueprint(neonRun(), Options{})
	order := []string{
		"# PROJECT BLUEPRINT",
		"## CREATOR PROFILE",
		"## VISUAL IDENTITY",
		"## TECHNICAL ARCHITECTURE",
		"### ACTION / RHYTHM / COMBAT SPECS",
		"## EXTENDED SYSTEMS",
		"## SPECIAL INSTRUCTIONS",
	}
	last := -1
	for _, h := range order {
		i := strings.Index(doc, h)
		if i < 0 {
			t.Fatalf("missing heading %q", h)
		}
		if i <= last {
			t.Errorf("heading %q out of order", h)
		}
		last = i
	}
}

func TestBlueprint_GenreSectionsMatchFlow(t *testing.T) {
	t.Parallel()
	headings := map[flow.StepID]string{}
	for _, g := range genreSections {
		headings[g.step] = "### " + g.heading
	}

	for _, pt := range state.AllProjectTypes {
		for _, extra := range []state.ProjectType{"", state.ProjectParty, state.ProjectNoteTaking} {
			a := state.Defaults()
			a.SpeedMode = state.SpeedQuick
			a.ProjectTypes = []state.ProjectType{pt}
			if extra != "" && extra != pt {
				a.ProjectTypes = append(a.ProjectTypes, extra)
			}

			doc := Blueprint(a, Options{})
			steps := flow.Resolve(a)
			for step, heading := range headings {
				want := flow.IndexOf(steps, step) >= 0
				if got := strings.Contains(doc, heading); got != want {
					t.Errorf("types %v: %s present = %v, want %v", a.ProjectTypes, heading, got, want)
				}
			}
		}
	}
}

func TestBlueprint_ExtendedSystems(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mode    state.SpeedMode
		modules []state.Module
		want    []string
		absent  []string
	}{
		{
			name:   "quick omits section",
			mode:   state.SpeedQuick,
			absent: []string{"## EXTENDED SYSTEMS", "**Multiplayer:**", "**Accessibility:**"},
		},
		{
			name:    "custom with no selected module omits section",
			mode:    state.SpeedCustom,
			modules: []state.Module{},
			absent:  []string{"## EXTENDED SYSTEMS"},
		},
		{
			name:    "custom accessibility only",
			mode:    state.SpeedCustom,
			modules: []state.Module{state.ModuleAccessibility},
			want:    []string{"## EXTENDED SYSTEMS\n- **Accessibility:** Standard\n"},
			absent:  []string{"**Multiplayer:**", "**Progression:**", "**Content Boundary:**"},
		},
		{
			name: "full includes everything",
			mode: state.SpeedFull,
			want: []string{"**Multiplayer:**", "**Progression:**", "**Content Boundary:**", "**Accessibility:**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := state.Defaults()
			a.SpeedMode = tt.mode
			a.CustomSections = tt.modules
			doc := Blueprint(a, Options{})
			for _, w := range tt.want {
				if !strings.Contains(doc, w) {
					t.Errorf("missing %q", w)
				}
			}
			for _, w := range tt.absent {
				if strings.Contains(doc, w) {
					t.Errorf("unexpected %q", w)
				}
			}
		})
	}
}

func TestBlueprint_OptionalValues(t *testing.T) {
	t.Parallel()
	a := state.Defaults()
	a.ProjectTypes = []state.ProjectType{state.ProjectParty, state.ProjectCreative}
	a.SpeedMode = state.SpeedCustom
	a.CustomSections = []state.Module{state.ModuleSafety, state.ModuleAccessibility, state.ModuleMultiplayer}
	a.VibeOther = "melancholy"
	a.Vibes = []string{"Zen"}
	a.Themes = []string{"Space", ""}
	a.CustomTheme = "Underwater"
	a.IncludeSound = false
	a.Intensity = 9
	a.NotAllowed = []string{"Gore"}
	a.NotAllowedOther = "Spiders"
	a.AccessibilityFeatures = []string{"Reduced Motion", "Colorblind Friendly"}
	a.MPStyle = []string{"Couch Co-op", "Versus (PvP)"}
	a.MPPlayerCount = "4"
	a.PartyMinigames = []state.Minigame{{Name: "Sumo", Objective: "Push"}, {Name: "Dodge"}, {}}
	a.Extras = "Use a retro font."

	doc := Blueprint(a, Options{})
	for _, want := range []string{
		"# PROJECT BLUEPRINT: PARTY + CREATIVE\n",
		"**Title:** N/A",
		"- **Vibe:** Zen (melancholy)",
		"- **Theme/Setting:** Space + Underwater",
		"- **Intensity:** 5/5",
		"- **Audio:** None",
		"- **Render Engine:** N/A",
		"- **Minigame Concepts:** Sumo (Push), Dodge\n",
		"- **Output:** N/A",
		"- **Multiplayer:** 4 Players (Couch Co-op, Versus (PvP))",
		"BAN [Gore, Spiders]",
		"- **Accessibility:** Reduced Motion, Colorblind Friendly",
		"## SPECIAL INSTRUCTIONS\nUse a retro font.\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("blueprint missing %q", want)
		}
	}
	if strings.Contains(doc, "**Progression:**") {
		t.Error("progression not selected but rendered")
	}
}

func TestBlueprint_NoEscaping(t *testing.T) {
	t.Parallel()
	a := neonRun()
	a.Pitch = "<script>alert('x')</script> & **bold**"
	doc := Blueprint(a, Options{})
	if !strings.Contains(doc, "**Pitch:** <script>alert('x')</script> & **bold**") {
		t.Error("user text should be interpolated verbatim")
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		title string
		want  string
	}{
		{"Neon Run", "neon_run.md"},
		{"", "game_blueprint.md"},
		{"   ", "game_blueprint.md"},
		{"Super-Mega!! 2", "super_mega___2.md"},
		{"ABC123", "abc123.md"},
		{"Café", "caf_.md"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := FileName(tt.title); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
