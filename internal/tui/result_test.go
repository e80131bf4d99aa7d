package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/manasm11/gamebrief/internal/config"
)

const sampleDoc = "# PROJECT BLUEPRINT: ACTION\n\n## 1. CREATOR PROFILE\n- **Name:** Sam\n"

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()
	for _, theme := range []string{config.ThemeDark, config.ThemeLight} {
		out := ansi.Strip(renderMarkdown(sampleDoc, theme, 80))
		for _, want := range []string{"PROJECT BLUEPRINT: ACTION", "CREATOR PROFILE", "Sam"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: rendered output missing %q:\n%s", theme, want, out)
			}
		}
		if strings.Contains(out, "**Name:**") {
			t.Errorf("%s: markdown emphasis should be rendered", theme)
		}
	}
	if renderMarkdown("", config.ThemeDark, 80) != "" {
		t.Error("empty document should render nothing")
	}
}

func TestResultModel_Keys(t *testing.T) {
	t.Parallel()
	tests := []struct {
		key  string
		want ResultAction
	}{
		{"c", ActionCopy},
		{"s", ActionSave},
		{"o", ActionOpen},
		{"r", ActionReset},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			m := NewResultModel(config.ThemeDark)
			m.SetSize(80, 20)
			m.SetDocument(sampleDoc)

			_, cmd := m.Update(keyMsg(tt.key))
			if cmd == nil {
				t.Fatal("expected a command")
			}
			msg, ok := cmd().(ResultActionMsg)
			if !ok || msg.Action != tt.want {
				t.Errorf("msg = %#v, want action %q", msg, tt.want)
			}
		})
	}
}

func TestResultModel_OtherKeysScroll(t *testing.T) {
	t.Parallel()
	m := NewResultModel(config.ThemeDark)
	m.SetSize(80, 3)
	m.SetDocument(strings.Repeat("- line\n", 40))

	m, _ = m.Update(keyMsg("j"))
	if m.viewport.YOffset != 1 {
		t.Errorf("YOffset = %d, want 1", m.viewport.YOffset)
	}

	m.SetDocument(sampleDoc)
	if m.viewport.YOffset != 0 {
		t.Error("a new document should scroll back to the top")
	}
	if m.Document() != sampleDoc {
		t.Error("Document() should return the raw markdown")
	}
}
