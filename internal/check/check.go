// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check validates converted rule documents: every target-extension
// file must open with parseable frontmatter carrying a non-empty
// description and alwaysApply set to false.
package check

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
)

// Issue describes one invalid document.
type Issue struct {
	Path    string
	Problem string
}

// ruleMeta is the expected frontmatter shape of a converted document.
type ruleMeta struct {
	Description string `yaml:"description"`
	Globs       string `yaml:"globs"`
	AlwaysApply bool   `yaml:"alwaysApply"`
}

// Dir walks root and validates every file with the target extension.
// It returns one Issue per invalid document; an empty slice means the
// tree is clean.
func Dir(root, targetExt string) ([]Issue, error) {
	var issues []Issue

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), targetExt) {
			return nil
		}
		if issue := checkFile(path); issue != nil {
			issues = append(issues, *issue)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return issues, nil
}

// descLineRe matches the description line of a metadata block. Generated
// descriptions contain ": ", which YAML rejects in a plain scalar, so the
// value is quoted before parsing.
var descLineRe = regexp.MustCompile(`(?m)^description: (.+)$`)

// checkFile validates one document, returning nil when it is well-formed.
func checkFile(path string) *Issue {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Issue{Path: path, Problem: fmt.Sprintf("unreadable: %v", err)}
	}

	if !bytes.HasPrefix(data, []byte("---\n")) {
		return &Issue{Path: path, Problem: "missing metadata block"}
	}

	normalized := descLineRe.ReplaceAllFunc(data, func(line []byte) []byte {
		value := bytes.TrimPrefix(line, []byte("description: "))
		quoted := strconv.Quote(string(value))
		return []byte("description: " + quoted)
	})

	var meta ruleMeta
	if _, err := frontmatter.Parse(bytes.NewReader(normalized), &meta); err != nil {
		return &Issue{Path: path, Problem: fmt.Sprintf("unparseable metadata: %v", err)}
	}

	if strings.TrimSpace(meta.Description) == "" {
		return &Issue{Path: path, Problem: "empty description"}
	}
	if meta.AlwaysApply {
		return &Issue{Path: path, Problem: "alwaysApply must be false"}
	}
	return nil
}
