package diff_test

import (
	"testing"

	diff "github.com/fwojciec/godiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicPatch(t *testing.T) {
	t.Parallel()

	text := "--- a/a.txt\n+++ b/a.txt\n@@ -1,3 +1,3 @@\n one\n-two\n+TWO\n three\n"
	p, err := diff.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", p.OldFile)
	assert.Equal(t, "a.txt", p.NewFile)
	require.Len(t, p.Chunks, 1)

	c := p.Chunks[0]
	assert.Equal(t, 0, c.OldStart)
	assert.Equal(t, 3, c.OldLines)
	assert.Equal(t, 0, c.NewStart)
	assert.Equal(t, 3, c.NewLines)
	require.Len(t, c.Operations, 4)
	assert.Equal(t, diff.OpContext, c.Operations[0].Kind)
	assert.Equal(t, diff.OpRemove, c.Operations[1].Kind)
	assert.Equal(t, "two", c.Operations[1].Text)
	assert.Equal(t, diff.OpAdd, c.Operations[2].Kind)
	assert.Equal(t, "TWO", c.Operations[2].Text)
}

func TestParseCreationAndDeletionHeaders(t *testing.T) {
	t.Parallel()

	t.Run("creation", func(t *testing.T) {
		t.Parallel()
		p, err := diff.Parse("--- /dev/null\n+++ b/new.txt\n@@ -0,0 +1,2 @@\n+a\n+b\n")
		require.NoError(t, err)
		assert.True(t, p.IsCreation())
		assert.Equal(t, 0, p.Chunks[0].OldStart)
		assert.Equal(t, 0, p.Chunks[0].OldLines)
	})

	t.Run("deletion", func(t *testing.T) {
		t.Parallel()
		p, err := diff.Parse("--- a/old.txt\n+++ /dev/null\n@@ -1,2 +0,0 @@\n-a\n-b\n")
		require.NoError(t, err)
		assert.True(t, p.IsDeletion())
		assert.Equal(t, 0, p.Chunks[0].NewStart)
		assert.Equal(t, 0, p.Chunks[0].NewLines)
	})
}

func TestParseNoNewlineMarker(t *testing.T) {
	t.Parallel()

	text := "--- a/a.txt\n+++ b/a.txt\n@@ -1 +1 @@\n only line\n\\ No newline at end of file\n"
	p, err := diff.Parse(text)
	require.NoError(t, err)
	op := p.Chunks[0].Operations[0]
	assert.True(t, op.NoNewlineOld)
	assert.True(t, op.NoNewlineNew)
}

func TestParseHeaderPathVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "with a/ prefix", header: "--- a/foo.txt\n", want: "foo.txt"},
		{name: "no prefix", header: "--- foo.txt\n", want: "foo.txt"},
		{name: "with timestamp", header: "--- foo.txt\t2024-01-01 00:00:00\n", want: "foo.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text := tt.header + "+++ b/foo.txt\n@@ -1 +1 @@\n-x\n+y\n"
			p, err := diff.Parse(text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.OldFile)
		})
	}
}

func TestParseMalformedHeader(t *testing.T) {
	t.Parallel()

	_, err := diff.Parse("this is not a patch\n")
	require.Error(t, err)
	var de *diff.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, diff.MalformedHeader, de.Kind)
}

func TestParseChunkCountMismatch(t *testing.T) {
	t.Parallel()

	text := "--- a/a.txt\n+++ b/a.txt\n@@ -1,3 +1,3 @@\n one\n-two\n+TWO\n"
	_, err := diff.Parse(text)
	require.Error(t, err)
	var de *diff.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, diff.ChunkCountMismatch, de.Kind)
}

func TestParseUnknownOperation(t *testing.T) {
	t.Parallel()

	text := "--- a/a.txt\n+++ b/a.txt\n@@ -1,1 +1,1 @@\n*garbage\n"
	_, err := diff.Parse(text)
	require.Error(t, err)
	var de *diff.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, diff.UnknownOperation, de.Kind)
}

func TestParseMultifileToleratesMalformedSegment(t *testing.T) {
	t.Parallel()

	text := "--- a/a.txt\n+++ b/a.txt\n@@ -1,1 +1,1 @@\n-x\n+y\n" +
		"--- c.txt\n" +
		"--- a/b.txt\n+++ b/b.txt\n@@ -1,1 +1,1 @@\n-p\n+q\n"

	mp, errs := diff.ParseMultifile(text)
	require.Len(t, errs, 1)
	require.Len(t, mp.Files, 2)
	assert.Equal(t, "a.txt", mp.Files[0].OldFile)
	assert.Equal(t, "b.txt", mp.Files[1].OldFile)
}

func TestSerializeParseRoundTrip(t *testing.T) {
	t.Parallel()

	old := "line1\nline2\nline3\nline4\nline5\n"
	new := "line1\nLINE2\nline3\nline4\nline4.5\nline5\n"

	patch := diff.Build(old, new, diff.DefaultOptions())
	patch.OldFile = "f.txt"
	patch.NewFile = "f.txt"

	text := diff.Serialize(patch)
	parsed, err := diff.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, patch.OldFile, parsed.OldFile)
	assert.Equal(t, patch.NewFile, parsed.NewFile)
	require.Equal(t, len(patch.Chunks), len(parsed.Chunks))

	applyOpts := diff.DefaultApplyOptions()
	applyOpts.Strategy = diff.Strict
	got, err := diff.Apply(old, parsed, applyOpts)
	require.NoError(t, err)
	assert.Equal(t, new, got)
}
