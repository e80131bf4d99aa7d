package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for answer files that are neither YAML nor JSON.
	ErrUnknownFormat = errors.New("unknown answers file format")
	// ErrUnknownValue is returned when an answer file names a category,
	// mode or module that does not exist.
	ErrUnknownValue = errors.New("unknown answer value")
)

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("%w: %q (use .yaml, .yml or .json)", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadAnswers reads an answer set from a YAML or JSON file. Fields missing
// from the file keep their defaults.
func LoadAnswers(path string) (Answers, error) {
	format, err := formatOf(path)
	if err != nil {
		return Answers{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, fmt.Errorf("reading answers file: %w", err)
	}

	a := Defaults()
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &a)
	case "json":
		err = json.Unmarshal(data, &a)
	}
	if err != nil {
		return Answers{}, fmt.Errorf("parsing answers file: %w", err)
	}

	a.Normalize()
	if err := checkValues(a); err != nil {
		return Answers{}, fmt.Errorf("checking answers file: %w", err)
	}
	return a, nil
}

// checkValues rejects enumerated answers outside their option lists. An
// empty speed mode is allowed; it is caught by step validation instead.
func checkValues(a Answers) error {
	for _, t := range a.ProjectTypes {
		if !t.Valid() {
			return fmt.Errorf("%w: %s %q", ErrUnknownValue, FieldProjectTypes, t)
		}
	}
	if a.SpeedMode != "" && !a.SpeedMode.Valid() {
		return fmt.Errorf("%w: %s %q", ErrUnknownValue, FieldSpeedMode, a.SpeedMode)
	}
	for _, m := range a.CustomSections {
		if !m.Valid() {
			return fmt.Errorf("%w: %s %q", ErrUnknownValue, FieldCustomSections, m)
		}
	}
	return nil
}

// SaveAnswers writes the answer set to path, choosing the encoding from the
// extension. Parent directories are created as needed.
func SaveAnswers(path string, a Answers) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	a.Normalize()

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(a)
	case "json":
		data, err = json.MarshalIndent(a, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating answers directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing answers file: %w", err)
	}
	return nil
}
