// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rulegen/internal/convert"
	"github.com/pdiddy/rulegen/pkg/types"
)

func TestWriteRead(t *testing.T) {
	cfg := types.Config{
		InputRoot:  "docs",
		OutputRoot: "out",
		SourceExt:  ".md",
		TargetExt:  ".mdc",
		Scheme:     "mdc",
	}
	res := convert.BatchResult{
		Converted: 2,
		Failed:    1,
		Dirs:      3,
		Files: []convert.FileResult{
			{Source: "docs/a.md", Destination: "out/a.mdc", Status: convert.StatusConverted},
			{Source: "docs/guide/b.md", Destination: "out/guide/b.mdc", Status: convert.StatusConverted},
			{Source: "docs/c.md", Destination: "out/c.mdc", Status: convert.StatusFailed, Error: "reading docs/c.md: permission denied"},
		},
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, Write(path, cfg, res))

	m, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "docs", m.Run.InputRoot)
	assert.Equal(t, "out", m.Run.OutputRoot)
	// No explicit prefix configured: derived from the output root.
	assert.Equal(t, "out", m.Run.LinkPrefix)

	assert.Equal(t, 2, m.Summary.Converted)
	assert.Equal(t, 1, m.Summary.Failed)
	assert.Equal(t, 3, m.Summary.Directories)
	assert.False(t, m.Summary.Timestamp.IsZero())

	require.Len(t, m.Files, 3)
	assert.Equal(t, convert.StatusFailed, m.Files[2].Status)
	assert.Contains(t, m.Files[2].Error, "permission denied")
	assert.Empty(t, m.Files[0].Error)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
