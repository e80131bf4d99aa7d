package state

import (
	"slices"
	"strings"
)

// Field is the stable name of one answer. Error sets and UI bindings are keyed by it.
type Field string

const (
	FieldProjectTypes   Field = "project_types"
	FieldSpeedMode      Field = "speed_mode"
	FieldCustomSections Field = "custom_sections"

	FieldAuthorName      Field = "author_name"
	FieldAuthorInterests Field = "author_interests"
	FieldPlayerType      Field = "player_type"

	FieldTitle       Field = "title"
	FieldPitch       Field = "pitch"
	FieldVibes       Field = "vibes"
	FieldVibeOther   Field = "vibe_other"
	FieldIntensity   Field = "intensity"
	FieldThemes      Field = "themes"
	FieldCustomTheme Field = "custom_theme"

	FieldRenderStyle  Field = "render_style"
	FieldAssetStyle   Field = "asset_style"
	FieldColorTheme   Field = "color_theme"
	FieldIncludeSound Field = "include_sound"
	FieldAudioStyle   Field = "audio_style"

	FieldActionGenre     Field = "action_genre"
	FieldActionView      Field = "action_view"
	FieldActionMechanics Field = "action_mechanics"

	FieldPuzzleType     Field = "puzzle_type"
	FieldPuzzleMechanic Field = "puzzle_mechanic"
	FieldPuzzleLevelGen Field = "puzzle_level_gen"

	FieldRPGSetting     Field = "rpg_setting"
	FieldRPGView        Field = "rpg_view"
	FieldRPGCombat      Field = "rpg_combat"
	FieldRPGClassSystem Field = "rpg_class_system"

	FieldSimType    Field = "sim_type"
	FieldSimGoal    Field = "sim_goal"
	FieldSimEconomy Field = "sim_economy"

	FieldCreativeToolType Field = "creative_tool_type"
	FieldCreativeOutput   Field = "creative_output"

	FieldPartyPlayers     Field = "party_players"
	FieldPartyRoundLength Field = "party_round_length"
	FieldPartyMatchFormat Field = "party_match_format"
	FieldPartyChaosRule   Field = "party_chaos_rule"
	FieldPartyComeback    Field = "party_comeback"
	FieldPartyMinigames   Field = "party_minigames"

	FieldAppType      Field = "app_type"
	FieldAppDataModel Field = "app_data_model"
	FieldAppUIDensity Field = "app_ui_density"

	FieldMPPlayerCount Field = "mp_player_count"
	FieldMPStyle       Field = "mp_style"
	FieldMPControls    Field = "mp_controls"
	FieldMPJoinButton  Field = "mp_join_button"

	FieldProgressionFeatures Field = "progression_features"
	FieldSaveProgress        Field = "save_progress"
	FieldSurpriseEvents      Field = "surprise_events"
	FieldBossIdea            Field = "boss_idea"

	FieldAllowedVibes    Field = "allowed_vibes"
	FieldNotAllowed      Field = "not_allowed"
	FieldNotAllowedOther Field = "not_allowed_other"

	FieldAccessibilityFeatures Field = "accessibility_features"
	FieldExtras                Field = "extras"
)

// MinigameCount is the fixed number of party minigame slots.
const MinigameCount = 3

// Intensity bounds for the 1-5 slider.
const (
	MinIntensity     = 1
	MaxIntensity     = 5
	DefaultIntensity = 3
)

// Minigame is one party minigame concept.
type Minigame struct {
	Name      string `yaml:"name" json:"name"`
	Objective string `yaml:"objective" json:"objective"`
}

// Answers holds every question's current value for one wizard session.
// Collection fields are never nil; use Defaults and Normalize to keep it that way.
type Answers struct {
	ProjectTypes   []ProjectType `yaml:"project_types" json:"project_types"`
	SpeedMode      SpeedMode     `yaml:"speed_mode" json:"speed_mode"`
	CustomSections []Module      `yaml:"custom_sections" json:"custom_sections"`

	AuthorName      string   `yaml:"author_name" json:"author_name"`
	AuthorInterests []string `yaml:"author_interests" json:"author_interests"`
	PlayerType      string   `yaml:"player_type" json:"player_type"`

	Title       string   `yaml:"title" json:"title"`
	Pitch       string   `yaml:"pitch" json:"pitch"`
	Vibes       []string `yaml:"vibes" json:"vibes"`
	VibeOther   string   `yaml:"vibe_other" json:"vibe_other"`
	Intensity   int      `yaml:"intensity" json:"intensity"`
	Themes      []string `yaml:"themes" json:"themes"`
	CustomTheme string   `yaml:"custom_theme" json:"custom_theme"`

	RenderStyle  string `yaml:"render_style" json:"render_style"`
	AssetStyle   string `yaml:"asset_style" json:"asset_style"`
	ColorTheme   string `yaml:"color_theme" json:"color_theme"`
	IncludeSound bool   `yaml:"include_sound" json:"include_sound"`
	AudioStyle   string `yaml:"audio_style" json:"audio_style"`

	ActionGenre     string   `yaml:"action_genre" json:"action_genre"`
	ActionView      string   `yaml:"action_view" json:"action_view"`
	ActionMechanics []string `yaml:"action_mechanics" json:"action_mechanics"`

	PuzzleType     string `yaml:"puzzle_type" json:"puzzle_type"`
	PuzzleMechanic string `yaml:"puzzle_mechanic" json:"puzzle_mechanic"`
	PuzzleLevelGen string `yaml:"puzzle_level_gen" json:"puzzle_level_gen"`

	RPGSetting     string `yaml:"rpg_setting" json:"rpg_setting"`
	RPGView        string `yaml:"rpg_view" json:"rpg_view"`
	RPGCombat      string `yaml:"rpg_combat" json:"rpg_combat"`
	RPGClassSystem string `yaml:"rpg_class_system" json:"rpg_class_system"`

	SimType    string `yaml:"sim_type" json:"sim_type"`
	SimGoal    string `yaml:"sim_goal" json:"sim_goal"`
	SimEconomy string `yaml:"sim_economy" json:"sim_economy"`

	CreativeToolType string `yaml:"creative_tool_type" json:"creative_tool_type"`
	CreativeOutput   string `yaml:"creative_output" json:"creative_output"`

	PartyPlayers     string     `yaml:"party_players" json:"party_players"`
	PartyRoundLength string     `yaml:"party_round_length" json:"party_round_length"`
	PartyMatchFormat string     `yaml:"party_match_format" json:"party_match_format"`
	PartyChaosRule   string     `yaml:"party_chaos_rule" json:"party_chaos_rule"`
	PartyComeback    string     `yaml:"party_comeback" json:"party_comeback"`
	PartyMinigames   []Minigame `yaml:"party_minigames" json:"party_minigames"`

	AppType      string `yaml:"app_type" json:"app_type"`
	AppDataModel string `yaml:"app_data_model" json:"app_data_model"`
	AppUIDensity string `yaml:"app_ui_density" json:"app_ui_density"`

	MPPlayerCount string   `yaml:"mp_player_count" json:"mp_player_count"`
	MPStyle       []string `yaml:"mp_style" json:"mp_style"`
	MPControls    string   `yaml:"mp_controls" json:"mp_controls"`
	MPJoinButton  string   `yaml:"mp_join_button" json:"mp_join_button"`

	ProgressionFeatures []string `yaml:"progression_features" json:"progression_features"`
	SaveProgress        string   `yaml:"save_progress" json:"save_progress"`
	SurpriseEvents      string   `yaml:"surprise_events" json:"surprise_events"`
	BossIdea            string   `yaml:"boss_idea" json:"boss_idea"`

	AllowedVibes    []string `yaml:"allowed_vibes" json:"allowed_vibes"`
	NotAllowed      []string `yaml:"not_allowed" json:"not_allowed"`
	NotAllowedOther string   `yaml:"not_allowed_other" json:"not_allowed_other"`

	AccessibilityFeatures []string `yaml:"accessibility_features" json:"accessibility_features"`
	Extras                string   `yaml:"extras" json:"extras"`
}

// Defaults returns a fresh answer set with every collection present and empty.
func Defaults() Answers {
	return Answers{
		ProjectTypes:    []ProjectType{},
		CustomSections:  []Module{},
		AuthorInterests: []string{},
		Vibes:           []string{},
		Intensity:       DefaultIntensity,
		Themes:          []string{},

		ColorTheme:   ColorThemeDefault,
		IncludeSound: true,
		AudioStyle:   "Retro / 8-bit (Chiptune)",

		ActionMechanics: []string{},
		PuzzleLevelGen:  "Procedural (Infinite)",
		RPGClassSystem:  "Classless (Skill based)",
		SimEconomy:      "Simple Resource Flow",

		PartyMinigames: make([]Minigame, MinigameCount),

		AppDataModel: "Local Storage (Persist on device)",
		AppUIDensity: "Comfortable",

		MPPlayerCount:         "1",
		MPStyle:               []string{},
		ProgressionFeatures:   []string{},
		AllowedVibes:          []string{},
		NotAllowed:            []string{},
		AccessibilityFeatures: []string{},
	}
}

// Normalize restores the collection invariants after decoding: nil slices
// become empty, the minigame list is padded or cut to MinigameCount and the
// intensity is clamped into range.
func (a *Answers) Normalize() {
	if a.ProjectTypes == nil {
		a.ProjectTypes = []ProjectType{}
	}
	if a.CustomSections == nil {
		a.CustomSections = []Module{}
	}
	for _, ref := range []*[]string{
		&a.AuthorInterests, &a.Vibes, &a.Themes, &a.ActionMechanics,
		&a.MPStyle, &a.ProgressionFeatures, &a.AllowedVibes, &a.NotAllowed,
		&a.AccessibilityFeatures,
	} {
		if *ref == nil {
			*ref = []string{}
		}
	}
	switch {
	case len(a.PartyMinigames) < MinigameCount:
		a.PartyMinigames = append(a.PartyMinigames, make([]Minigame, MinigameCount-len(a.PartyMinigames))...)
	case len(a.PartyMinigames) > MinigameCount:
		a.PartyMinigames = a.PartyMinigames[:MinigameCount]
	}
	a.Intensity = ClampIntensity(a.Intensity)
}

// Clone returns a deep copy so callers can't alias the session's slices.
func (a Answers) Clone() Answers {
	c := a
	c.ProjectTypes = slices.Clone(a.ProjectTypes)
	c.CustomSections = slices.Clone(a.CustomSections)
	c.AuthorInterests = slices.Clone(a.AuthorInterests)
	c.Vibes = slices.Clone(a.Vibes)
	c.Themes = slices.Clone(a.Themes)
	c.ActionMechanics = slices.Clone(a.ActionMechanics)
	c.PartyMinigames = slices.Clone(a.PartyMinigames)
	c.MPStyle = slices.Clone(a.MPStyle)
	c.ProgressionFeatures = slices.Clone(a.ProgressionFeatures)
	c.AllowedVibes = slices.Clone(a.AllowedVibes)
	c.NotAllowed = slices.Clone(a.NotAllowed)
	c.AccessibilityFeatures = slices.Clone(a.AccessibilityFeatures)
	c.Normalize()
	return c
}

// ClampIntensity keeps v inside [MinIntensity, MaxIntensity].
func ClampIntensity(v int) int {
	if v < MinIntensity {
		return MinIntensity
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}

// SetIntensity stores v clamped into the slider range.
func (a *Answers) SetIntensity(v int) {
	a.Intensity = ClampIntensity(v)
}

// HasProjectType reports whether t is among the selected categories.
func (a *Answers) HasProjectType(t ProjectType) bool {
	return slices.Contains(a.ProjectTypes, t)
}

// HasAnyProjectType reports whether any of ts is selected.
func (a *Answers) HasAnyProjectType(ts ...ProjectType) bool {
	for _, t := range ts {
		if a.HasProjectType(t) {
			return true
		}
	}
	return false
}

// HasCustomSection reports whether m was picked as a custom module.
func (a *Answers) HasCustomSection(m Module) bool {
	return slices.Contains(a.CustomSections, m)
}

func (a *Answers) textRef(f Field) *string {
	switch f {
	case FieldAuthorName:
		return &a.AuthorName
	case FieldPlayerType:
		return &a.PlayerType
	case FieldTitle:
		return &a.Title
	case FieldPitch:
		return &a.Pitch
	case FieldVibeOther:
		return &a.VibeOther
	case FieldCustomTheme:
		return &a.CustomTheme
	case FieldRenderStyle:
		return &a.RenderStyle
	case FieldAssetStyle:
		return &a.AssetStyle
	case FieldColorTheme:
		return &a.ColorTheme
	case FieldAudioStyle:
		return &a.AudioStyle
	case FieldActionGenre:
		return &a.ActionGenre
	case FieldActionView:
		return &a.ActionView
	case FieldPuzzleType:
		return &a.PuzzleType
	case FieldPuzzleMechanic:
		return &a.PuzzleMechanic
	case FieldPuzzleLevelGen:
		return &a.PuzzleLevelGen
	case FieldRPGSetting:
		return &a.RPGSetting
	case FieldRPGView:
		return &a.RPGView
	case FieldRPGCombat:
		return &a.RPGCombat
	case FieldRPGClassSystem:
		return &a.RPGClassSystem
	case FieldSimType:
		return &a.SimType
	case FieldSimGoal:
		return &a.SimGoal
	case FieldSimEconomy:
		return &a.SimEconomy
	case FieldCreativeToolType:
		return &a.CreativeToolType
	case FieldCreativeOutput:
		return &a.CreativeOutput
	case FieldPartyPlayers:
		return &a.PartyPlayers
	case FieldPartyRoundLength:
		return &a.PartyRoundLength
	case FieldPartyMatchFormat:
		return &a.PartyMatchFormat
	case FieldPartyChaosRule:
		return &a.PartyChaosRule
	case FieldPartyComeback:
		return &a.PartyComeback
	case FieldAppType:
		return &a.AppType
	case FieldAppDataModel:
		return &a.AppDataModel
	case FieldAppUIDensity:
		return &a.AppUIDensity
	case FieldMPPlayerCount:
		return &a.MPPlayerCount
	case FieldMPControls:
		return &a.MPControls
	case FieldMPJoinButton:
		return &a.MPJoinButton
	case FieldSaveProgress:
		return &a.SaveProgress
	case FieldSurpriseEvents:
		return &a.SurpriseEvents
	case FieldBossIdea:
		return &a.BossIdea
	case FieldNotAllowedOther:
		return &a.NotAllowedOther
	case FieldExtras:
		return &a.Extras
	}
	return nil
}

func (a *Answers) listRef(f Field) *[]string {
	switch f {
	case FieldAuthorInterests:
		return &a.AuthorInterests
	case FieldVibes:
		return &a.Vibes
	case FieldThemes:
		return &a.Themes
	case FieldActionMechanics:
		return &a.ActionMechanics
	case FieldMPStyle:
		return &a.MPStyle
	case FieldProgressionFeatures:
		return &a.ProgressionFeatures
	case FieldAllowedVibes:
		return &a.AllowedVibes
	case FieldNotAllowed:
		return &a.NotAllowed
	case FieldAccessibilityFeatures:
		return &a.AccessibilityFeatures
	}
	return nil
}

// Text returns the value of a scalar string field, or "" for non-text fields.
func (a *Answers) Text(f Field) string {
	if f == FieldSpeedMode {
		return string(a.SpeedMode)
	}
	if ref := a.textRef(f); ref != nil {
		return *ref
	}
	return ""
}

// SetText assigns a scalar string field. Unknown fields are ignored and
// reported with false.
func (a *Answers) SetText(f Field, v string) bool {
	if f == FieldSpeedMode {
		a.SpeedMode = SpeedMode(v)
		return true
	}
	ref := a.textRef(f)
	if ref == nil {
		return false
	}
	*ref = v
	return true
}

// List returns a copy of a multi-choice field's values.
func (a *Answers) List(f Field) []string {
	switch f {
	case FieldProjectTypes:
		out := make([]string, len(a.ProjectTypes))
		for i, t := range a.ProjectTypes {
			out[i] = string(t)
		}
		return out
	case FieldCustomSections:
		out := make([]string, len(a.CustomSections))
		for i, m := range a.CustomSections {
			out[i] = string(m)
		}
		return out
	}
	if ref := a.listRef(f); ref != nil {
		return slices.Clone(*ref)
	}
	return []string{}
}

// SetList assigns a multi-choice field. A nil list is stored as empty.
func (a *Answers) SetList(f Field, vs []string) bool {
	switch f {
	case FieldProjectTypes:
		a.ProjectTypes = make([]ProjectType, len(vs))
		for i, v := range vs {
			a.ProjectTypes[i] = ProjectType(v)
		}
		return true
	case FieldCustomSections:
		a.CustomSections = make([]Module, len(vs))
		for i, v := range vs {
			a.CustomSections[i] = Module(v)
		}
		return true
	}
	ref := a.listRef(f)
	if ref == nil {
		return false
	}
	if vs == nil {
		vs = []string{}
	}
	*ref = slices.Clone(vs)
	return true
}

// IsList reports whether f is a multi-choice field.
func IsList(f Field) bool {
	if f == FieldProjectTypes || f == FieldCustomSections {
		return true
	}
	var a Answers
	return a.listRef(f) != nil
}

// IsEmpty implements the required-field rule: blank text or an empty list.
// Intensity and the sound toggle always hold a value.
func (a *Answers) IsEmpty(f Field) bool {
	switch f {
	case FieldIntensity, FieldIncludeSound:
		return false
	case FieldPartyMinigames:
		return len(a.PartyMinigames) == 0
	}
	if IsList(f) {
		return len(a.List(f)) == 0
	}
	return strings.TrimSpace(a.Text(f)) == ""
}

// Minigame returns the i-th minigame slot. Out-of-range indexes give a zero value.
func (a *Answers) Minigame(i int) Minigame {
	if i < 0 || i >= len(a.PartyMinigames) {
		return Minigame{}
	}
	return a.PartyMinigames[i]
}

// SetMinigame replaces the i-th minigame slot.
func (a *Answers) SetMinigame(i int, m Minigame) bool {
	if i < 0 || i >= len(a.PartyMinigames) {
		return false
	}
	a.PartyMinigames[i] = m
	return true
}

// HasUnnamedMinigame reports whether any slot has a blank name.
func (a *Answers) HasUnnamedMinigame() bool {
	for _, m := range a.PartyMinigames {
		if strings.TrimSpace(m.Name) == "" {
			return true
		}
	}
	return false
}

// Toggle flips v in or out of a multi-choice field and reports whether it is now selected.
func (a *Answers) Toggle(f Field, v string) bool {
	if !IsList(f) {
		return false
	}
	cur := a.List(f)
	if i := slices.Index(cur, v); i >= 0 {
		a.SetList(f, slices.Delete(cur, i, i+1))
		return false
	}
	a.SetList(f, append(cur, v))
	return true
}
