package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/manasm11/gamebrief/internal/export"
)

type CheckResult struct {
	Purpose string
	Name    string
	Found   bool
	Version string
	Error   string
}

// Requirement is one external capability, satisfied by any of its tools.
type Requirement struct {
	Purpose string
	Tools   []Tool
}

// Tool is a program and the flag that prints its version, if it has one.
type Tool struct {
	Name        string
	VersionArgs []string
}

// Requirements lists what the result screen shells out to on goos.
// Both are optional: a missing tool only disables one action.
func Requirements(goos string) []Requirement {
	opener := export.OpenerFor(goos)
	switch goos {
	case "darwin":
		return []Requirement{
			{"clipboard", []Tool{{Name: "pbcopy"}}},
			{"browser", []Tool{{Name: opener}}},
		}
	case "windows":
		return []Requirement{
			{"clipboard", []Tool{{Name: "clip"}}},
			{"browser", []Tool{{Name: opener}}},
		}
	default:
		return []Requirement{
			{"clipboard", []Tool{
				{"xclip", []string{"-version"}},
				{"xsel", []string{"--version"}},
				{"wl-copy", []string{"--version"}},
			}},
			{"browser", []Tool{{opener, []string{"--version"}}}},
		}
	}
}

// Checker resolves requirements against the PATH.
type Checker struct {
	LookPath func(string) (string, error)
	Timeout  time.Duration
}

func NewChecker() *Checker {
	return &Checker{LookPath: exec.LookPath, Timeout: 5 * time.Second}
}

// RunAll checks every requirement for the running platform.
func RunAll() []CheckResult {
	return NewChecker().Run(context.Background(), Requirements(runtime.GOOS))
}

// Run returns one result per requirement, naming the first tool found.
func (c *Checker) Run(ctx context.Context, reqs []Requirement) []CheckResult {
	results := make([]CheckResult, len(reqs))
	for i, req := range reqs {
		results[i] = c.resolve(ctx, req)
	}
	return results
}

func (c *Checker) resolve(ctx context.Context, req Requirement) CheckResult {
	names := make([]string, len(req.Tools))
	for i, tool := range req.Tools {
		names[i] = tool.Name
		if _, err := c.LookPath(tool.Name); err != nil {
			continue
		}
		return CheckResult{
			Purpose: req.Purpose,
			Name:    tool.Name,
			Found:   true,
			Version: c.version(ctx, tool),
		}
	}
	return CheckResult{
		Purpose: req.Purpose,
		Name:    strings.Join(names, "/"),
		Error:   fmt.Sprintf("none of %s found in PATH", strings.Join(names, ", ")),
	}
}

// version is best effort; several tools have no version flag at all.
func (c *Checker) version(ctx context.Context, tool Tool) string {
	if len(tool.VersionArgs) == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, tool.Name, tool.VersionArgs...).CombinedOutput()
	if err != nil {
		return ""
	}

	version := strings.TrimSpace(string(out))
	// Take only the first line if there are multiple
	if idx := strings.IndexByte(version, '\n'); idx != -1 {
		version = version[:idx]
	}
	return version
}
