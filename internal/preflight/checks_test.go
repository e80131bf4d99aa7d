package preflight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/manasm11/gamebrief/internal/export"
)

func fakeLookPath(present ...string) func(string) (string, error) {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func TestRequirements_CoverEveryPlatform(t *testing.T) {
	t.Parallel()
	for _, goos := range []string{"linux", "darwin", "windows", "freebsd"} {
		reqs := Requirements(goos)
		purposes := map[string]bool{}
		for _, r := range reqs {
			if len(r.Tools) == 0 {
				t.Errorf("%s/%s has no tools", goos, r.Purpose)
			}
			purposes[r.Purpose] = true
		}
		if !purposes["clipboard"] || !purposes["browser"] {
			t.Errorf("%s: purposes = %v", goos, purposes)
		}
		for _, r := range reqs {
			if r.Purpose == "browser" && r.Tools[0].Name != export.OpenerFor(goos) {
				t.Errorf("%s: browser check looks for %s, but links open with %s", goos, r.Tools[0].Name, export.OpenerFor(goos))
			}
		}
	}
}

func TestRun_PicksFirstAvailableTool(t *testing.T) {
	t.Parallel()
	c := &Checker{LookPath: fakeLookPath("xsel", "wl-copy"), Timeout: time.Second}
	reqs := []Requirement{{"clipboard", []Tool{{Name: "xclip"}, {Name: "xsel"}, {Name: "wl-copy"}}}}

	results := c.Run(context.Background(), reqs)
	if len(results) != 1 {
		t.Fatalf("Run() returned %d results, want 1", len(results))
	}
	r := results[0]
	if !r.Found || r.Name != "xsel" || r.Purpose != "clipboard" {
		t.Errorf("result = %+v, want xsel found", r)
	}
}

func TestRun_MissingToolsReportError(t *testing.T) {
	t.Parallel()
	c := &Checker{LookPath: fakeLookPath(), Timeout: time.Second}
	results := c.Run(context.Background(), Requirements("linux"))

	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Found {
			t.Errorf("%s unexpectedly found", r.Purpose)
		}
		if r.Error == "" {
			t.Errorf("CheckResult for %q: Found=false but Error is empty", r.Purpose)
		}
	}
	if results[0].Name != "xclip/xsel/wl-copy" {
		t.Errorf("Name = %q", results[0].Name)
	}
}

func TestRunAll_ResultsPopulated(t *testing.T) {
	t.Parallel()
	for _, r := range RunAll() {
		if r.Name == "" || r.Purpose == "" {
			t.Errorf("incomplete result %+v", r)
		}
		if !r.Found && r.Error == "" {
			t.Errorf("CheckResult for %q: Found=false but Error is empty", r.Name)
		}
	}
}
