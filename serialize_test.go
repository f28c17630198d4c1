package diff_test

import (
	"testing"

	diff "github.com/fwojciec/godiff"
	"github.com/stretchr/testify/assert"
)

func TestSerializeBasicPatch(t *testing.T) {
	t.Parallel()

	p := &diff.Patch{
		OldFile: "a.txt",
		NewFile: "a.txt",
		Chunks: []diff.Chunk{
			{
				OldStart: 0, OldLines: 3,
				NewStart: 0, NewLines: 3,
				Operations: []diff.Operation{
					{Kind: diff.OpContext, Text: "one"},
					{Kind: diff.OpRemove, Text: "two"},
					{Kind: diff.OpAdd, Text: "TWO"},
					{Kind: diff.OpContext, Text: "three"},
				},
			},
		},
	}

	want := "--- a/a.txt\n+++ b/a.txt\n@@ -1,3 +1,3 @@\n one\n-two\n+TWO\n three\n"
	assert.Equal(t, want, diff.Serialize(p))
}

func TestSerializeCreationHeader(t *testing.T) {
	t.Parallel()

	p := &diff.Patch{
		OldFile: "/dev/null",
		NewFile: "new.txt",
		Chunks: []diff.Chunk{
			{
				OldStart: 0, OldLines: 0,
				NewStart: 0, NewLines: 2,
				Operations: []diff.Operation{
					{Kind: diff.OpAdd, Text: "a"},
					{Kind: diff.OpAdd, Text: "b"},
				},
			},
		},
	}

	want := "--- /dev/null\n+++ b/new.txt\n@@ -0,0 +1,2 @@\n+a\n+b\n"
	assert.Equal(t, want, diff.Serialize(p))
}

func TestSerializeDeletionHeader(t *testing.T) {
	t.Parallel()

	p := &diff.Patch{
		OldFile: "old.txt",
		NewFile: "/dev/null",
		Chunks: []diff.Chunk{
			{
				OldStart: 0, OldLines: 2,
				NewStart: 0, NewLines: 0,
				Operations: []diff.Operation{
					{Kind: diff.OpRemove, Text: "a"},
					{Kind: diff.OpRemove, Text: "b"},
				},
			},
		},
	}

	want := "--- a/old.txt\n+++ /dev/null\n@@ -1,2 +0,0 @@\n-a\n-b\n"
	assert.Equal(t, want, diff.Serialize(p))
}

func TestSerializeNoNewlineMarker(t *testing.T) {
	t.Parallel()

	p := &diff.Patch{
		OldFile: "a.txt",
		NewFile: "a.txt",
		Chunks: []diff.Chunk{
			{
				OldStart: 0, OldLines: 1,
				NewStart: 0, NewLines: 1,
				Operations: []diff.Operation{
					{Kind: diff.OpContext, Text: "only line", NoNewlineOld: true, NoNewlineNew: true},
				},
			},
		},
	}

	want := "--- a/a.txt\n+++ b/a.txt\n@@ -1 +1 @@\n only line\n\\ No newline at end of file\n"
	assert.Equal(t, want, diff.Serialize(p))
}

func TestSerializeMultifile(t *testing.T) {
	t.Parallel()

	mp := &diff.MultifilePatch{
		Files: []diff.Patch{
			{
				OldFile: "a.txt", NewFile: "a.txt",
				Chunks: []diff.Chunk{{
					OldStart: 0, OldLines: 1, NewStart: 0, NewLines: 1,
					Operations: []diff.Operation{{Kind: diff.OpRemove, Text: "x"}, {Kind: diff.OpAdd, Text: "y"}},
				}},
			},
			{
				OldFile: "b.txt", NewFile: "b.txt",
				Chunks: []diff.Chunk{{
					OldStart: 0, OldLines: 1, NewStart: 0, NewLines: 1,
					Operations: []diff.Operation{{Kind: diff.OpRemove, Text: "p"}, {Kind: diff.OpAdd, Text: "q"}},
				}},
			},
		},
	}

	out := diff.SerializeMultifile(mp)
	assert.Contains(t, out, "--- a/a.txt")
	assert.Contains(t, out, "--- a/b.txt")
}
