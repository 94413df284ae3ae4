// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists a conversion run as a YAML manifest so a run's
// outcome can be inspected or diffed later without re-running the tool.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rulegen/internal/convert"
	"github.com/pdiddy/rulegen/pkg/types"
)

// Manifest is the on-disk representation of one conversion run.
type Manifest struct {
	Run     RunParams            `yaml:"run"`
	Files   []convert.FileResult `yaml:"files"`
	Summary RunSummary           `yaml:"summary"`
}

// RunParams stores the settings that produced the run.
type RunParams struct {
	InputRoot  string `yaml:"input_root"`
	OutputRoot string `yaml:"output_root"`
	SourceExt  string `yaml:"source_ext"`
	TargetExt  string `yaml:"target_ext"`
	Scheme     string `yaml:"scheme"`
	LinkPrefix string `yaml:"link_prefix"`
}

// RunSummary stores run totals and a timestamp.
type RunSummary struct {
	Converted   int       `yaml:"converted"`
	Failed      int       `yaml:"failed"`
	Directories int       `yaml:"directories"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// Write saves the run manifest to path.
func Write(path string, cfg types.Config, res convert.BatchResult) error {
	m := Manifest{
		Run: RunParams{
			InputRoot:  cfg.InputRoot,
			OutputRoot: cfg.OutputRoot,
			SourceExt:  cfg.SourceExt,
			TargetExt:  cfg.TargetExt,
			Scheme:     cfg.Scheme,
			LinkPrefix: cfg.EffectiveLinkPrefix(),
		},
		Files: res.Files,
		Summary: RunSummary{
			Converted:   res.Converted,
			Failed:      res.Failed,
			Directories: res.Dirs,
			Timestamp:   time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a run manifest from path.
func Read(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading report %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return m, nil
}
