package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasm11/gamebrief/internal/state"
)

func writeAnswers(t *testing.T, name string, a state.Answers) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, state.SaveAnswers(path, a))
	return path
}

func actionAnswers() state.Answers {
	a := state.Defaults()
	a.ProjectTypes = []state.ProjectType{state.ProjectAction}
	a.SpeedMode = state.SpeedFull
	a.AuthorName = "Sam"
	a.AuthorInterests = []string{"Space"}
	a.PlayerType = "Explorer"
	a.Title = "Neon Run"
	a.Pitch = "Outrun the grid"
	a.Vibes = []string{"Fast"}
	a.RenderStyle = state.RenderCanvas
	a.AssetStyle = state.AssetShapes
	a.ActionGenre = "Endless Runner"
	a.ActionView = "Side View (2D)"
	a.ActionMechanics = []string{"Dashing"}
	a.MPControls = "Gamepad Support"
	a.ProgressionFeatures = []string{"High Score Chasing"}
	a.SaveProgress = "Auto-Save (Local Storage)"
	a.AllowedVibes = []string{"Comedy"}
	a.NotAllowed = []string{"Gore"}
	return a
}

func TestGenerateCommand_Stdout(t *testing.T) {
	path := writeAnswers(t, "answers.yaml", actionAnswers())

	c := newGenerateCommand()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs([]string{"--answers", path})

	require.NoError(t, c.Execute())
	doc := out.String()
	assert.True(t, strings.HasPrefix(doc, "# PROJECT BLUEPRINT: ACTION\n"), doc)
	assert.Contains(t, doc, "**Title:** Neon Run")
	assert.Contains(t, doc, "**Target Model:** "+cfg.TargetModel)
	assert.Empty(t, errOut.String())
}

func TestGenerateCommand_OutputFileAndModel(t *testing.T) {
	path := writeAnswers(t, "answers.json", actionAnswers())
	dest := filepath.Join(t.TempDir(), "nested", "brief.md")

	c := newGenerateCommand()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs([]string{"-a", path, "-o", dest, "--model", "Some Model 2"})

	require.NoError(t, c.Execute())
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "wrote "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "**Target Model:** Some Model 2")
}

func TestGenerateCommand_StrictReportsEveryGap(t *testing.T) {
	a := actionAnswers()
	a.Title = ""
	a.ActionMechanics = nil
	path := writeAnswers(t, "answers.yaml", a)

	c := newGenerateCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs([]string{"--answers", path, "--strict"})

	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answers are incomplete")
	assert.Contains(t, err.Error(), string(state.FieldTitle))
	assert.Contains(t, err.Error(), string(state.FieldActionMechanics))
	assert.Empty(t, out.String(), "nothing should be generated")
}

func TestGenerateCommand_StrictPassesCompleteAnswers(t *testing.T) {
	path := writeAnswers(t, "answers.yaml", actionAnswers())

	c := newGenerateCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs([]string{"--answers", path, "--strict"})

	require.NoError(t, c.Execute())
	assert.Contains(t, out.String(), "PROJECT BLUEPRINT")
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing flag", nil, `required flag(s) "answers" not set`},
		{"bad extension", []string{"--answers", "answers.toml"}, "unknown answers file format"},
		{"missing file", []string{"--answers", filepath.Join(t.TempDir(), "nope.yaml")}, "reading answers file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGenerateCommand()
			var out bytes.Buffer
			c.SetOut(&out)
			c.SetErr(&out)
			c.SetArgs(tt.args)

			err := c.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFlowCommand(t *testing.T) {
	a := actionAnswers()
	a.Title = ""
	path := writeAnswers(t, "answers.yaml", a)

	c := newFlowCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs([]string{"--answers", path})

	require.NoError(t, c.Execute())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], " 1. start")
	assert.True(t, strings.HasSuffix(lines[0], "ok"), lines[0])
	assert.Contains(t, out.String(), "Action")
	assert.Contains(t, out.String(), "1 missing")
	assert.Contains(t, lines[len(lines)-1], "finish")
}

func TestAnswerFilesRejectUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project_types: [Action]\nspeed_mode: Full\n"), 0o644))

	for _, c := range []*cobra.Command{newFlowCommand(), newGenerateCommand()} {
		var out bytes.Buffer
		c.SetOut(&out)
		c.SetErr(&out)
		c.SetArgs([]string{"--answers", path})

		err := c.Execute()
		require.ErrorIs(t, err, state.ErrUnknownValue, c.Name())
		assert.Empty(t, out.String(), c.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	SetBuild("abc123")
	t.Cleanup(func() { SetBuild("unknown") })

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "gamebrief "+Version+" (abc123)\n", out.String())
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "flow", "version"} {
		assert.True(t, names[want], "missing %s", want)
	}
}
