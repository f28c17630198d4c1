package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCmdProducesUnifiedDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("a\nb\nc\n"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("a\nB\nc\n"), 0o644))

	cmd := newDiffCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{oldPath, newPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "-b")
	assert.Contains(t, out.String(), "+B")
}

func TestDiffCmdRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("a\n"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("b\n"), 0o644))

	cmd := newDiffCmd()
	cmd.SetArgs([]string{"--algorithm", "bogus", oldPath, newPath})
	err := cmd.Execute()
	require.Error(t, err)
}
