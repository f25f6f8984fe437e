// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{"a.yaml", "nested/b.yaml", "nested/deeper/c.yaml", "notes.txt"} {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("records: []\n"), 0o644))
	}

	paths, err := expandPatterns([]string{filepath.Join(dir, "**", "*.yaml")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "nested", "b.yaml"),
		filepath.Join(dir, "nested", "deeper", "c.yaml"),
	}, paths)

	literal := filepath.Join(dir, "a.yaml")
	paths, err = expandPatterns([]string{literal, literal, filepath.Join(dir, "*.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{literal}, paths)
}

func TestExpandPatternsNoMatch(t *testing.T) {
	_, err := expandPatterns([]string{filepath.Join(t.TempDir(), "*.yaml")})
	require.Error(t, err)

	paths, err := expandPatterns([]string{"missing.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.yaml"}, paths)
}
