package diff_test

import (
	"testing"

	diff "github.com/fwojciec/godiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContextExpansion(t *testing.T) {
	t.Parallel()

	old := "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10\n"
	new := "l1\nl2\nl3\nl4\nCHANGED\nl6\nl7\nl8\nl9\nl10\n"

	patch := diff.Build(old, new, diff.Options{Algorithm: diff.XDiff, Context: 2})
	require.Len(t, patch.Chunks, 1)

	c := patch.Chunks[0]
	// change is at index 4 (l5); with 2 lines of context each side the
	// chunk should span indices 2..6 (l3..l7).
	assert.Equal(t, 2, c.OldStart)
	assert.Equal(t, 5, c.OldLines)
	assert.Equal(t, 2, c.NewStart)
	assert.Equal(t, 5, c.NewLines)
}

func TestBuildMergesNearbyChanges(t *testing.T) {
	t.Parallel()

	// two single-line changes separated by one equal line, with context 3:
	// the gap (1) is well under 2*context (6), so they merge into one chunk.
	old := "a\nb\nc\nd\ne\n"
	new := "a\nB\nc\nD\ne\n"

	patch := diff.Build(old, new, diff.Options{Algorithm: diff.XDiff, Context: 3})
	assert.Len(t, patch.Chunks, 1)
}

func TestBuildKeepsDistantChangesSeparate(t *testing.T) {
	t.Parallel()

	old := "c1\nc2\nc3\nc4\nc5\nc6\nc7\nc8\nc9\nc10\nc11\nc12\nc13\nc14\nc15\n"
	lines, _ := diff.SplitLines(old)
	lines[1] = "CHANGED2"
	lines[13] = "CHANGED14"
	new := ""
	for _, l := range lines {
		new += l + "\n"
	}

	patch := diff.Build(old, new, diff.Options{Algorithm: diff.XDiff, Context: 1})
	assert.Len(t, patch.Chunks, 2)
}

func TestBuildIdenticalContentProducesNoChunks(t *testing.T) {
	t.Parallel()

	text := "a\nb\nc\n"
	patch := diff.Build(text, text, diff.DefaultOptions())
	assert.Empty(t, patch.Chunks)
}

func TestBuildIdenticalContentDifferingNewline(t *testing.T) {
	t.Parallel()

	patch := diff.Build("a\nb\nc\n", "a\nb\nc", diff.DefaultOptions())
	require.Len(t, patch.Chunks, 1)

	c := patch.Chunks[0]
	require.Len(t, c.Operations, 2)
	assert.Equal(t, diff.OpRemove, c.Operations[0].Kind)
	assert.True(t, c.Operations[0].NoNewlineOld)
	assert.Equal(t, diff.OpAdd, c.Operations[1].Kind)
	assert.True(t, c.Operations[1].NoNewlineNew)
}
