// Package export hands a finished blueprint to the outside world: the system
// clipboard, a markdown file, or the browser.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/atotto/clipboard"

	"github.com/manasm11/gamebrief/internal/generator"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the platform clipboard tool.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// SaveDocument writes doc to dir under the file name derived from title and
// returns the full path.
func SaveDocument(dir, title, doc string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, generator.FileName(title))
	if err := WriteDocument(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDocument writes doc to path, creating the parent directory.
func WriteDocument(path, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing blueprint: %w", err)
	}
	return nil
}

const openTimeout = 5 * time.Second

// Opener launches a URL in the user's browser.
type Opener func(ctx context.Context, url string) error

// openCommand returns the platform command that opens a URL.
func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenerFor is the program OpenURL relies on for goos.
func OpenerFor(goos string) string {
	name, _ := openCommand(goos, "")
	return name
}

// OpenURL opens url with the platform opener.
func OpenURL(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	name, args := openCommand(runtime.GOOS, url)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("opening %s: timed out", url)
		}
		return fmt.Errorf("opening %s with %s: %w", url, name, err)
	}
	return nil
}
