// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration passed through the rulegen
// pipeline. The pipeline reads everything from an explicit Config rather
// than ambient process state (working directory, raw argv).
package types

import (
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults for the conversion settings. The CLI seeds its flag and
// config-file defaults from these.
const (
	DefaultSourceExt = ".md"
	DefaultTargetExt = ".mdc"
	DefaultScheme    = "mdc"
)

// Config holds one conversion run's settings.
type Config struct {
	// InputRoot is the source directory or single source file.
	InputRoot string `json:"input_root" yaml:"input_root"`

	// OutputRoot is the destination directory. The input tree structure
	// is mirrored beneath it.
	OutputRoot string `json:"output_root" yaml:"output_root"`

	// SourceExt is the extension of documents to convert (e.g. ".md").
	SourceExt string `json:"source_ext" yaml:"source_ext"`

	// TargetExt is the extension of converted documents (e.g. ".mdc").
	TargetExt string `json:"target_ext" yaml:"target_ext"`

	// Scheme is the literal prefixed to rewritten link targets
	// (e.g. "mdc" yields "mdc:<prefix>/<path>").
	Scheme string `json:"scheme" yaml:"scheme"`

	// LinkPrefix is the path segment placed after the scheme in
	// rewritten link targets. Empty means "derive from OutputRoot".
	LinkPrefix string `json:"link_prefix" yaml:"link_prefix"`
}

var (
	extPattern    = regexp.MustCompile(`^\.[a-z0-9]+$`)
	schemePattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
)

// Validate checks that the configuration is complete and well-formed.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.InputRoot, validation.Required),
		validation.Field(&c.OutputRoot, validation.Required),
		validation.Field(&c.SourceExt, validation.Required, validation.Match(extPattern)),
		validation.Field(&c.TargetExt, validation.Required, validation.Match(extPattern)),
		validation.Field(&c.Scheme, validation.Required, validation.Match(schemePattern)),
	)
}

// EffectiveLinkPrefix returns LinkPrefix, or the slash-normalized
// OutputRoot when no explicit prefix was configured.
func (c *Config) EffectiveLinkPrefix() string {
	if c.LinkPrefix != "" {
		return c.LinkPrefix
	}
	return filepath.ToSlash(filepath.Clean(c.OutputRoot))
}
