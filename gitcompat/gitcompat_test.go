package gitcompat_test

import (
	"testing"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	diff "github.com/fwojciec/godiff"
	"github.com/fwojciec/godiff/gitcompat"
)

func TestFromFileModification(t *testing.T) {
	t.Parallel()

	f := &gitdiff.File{
		OldName: "a.txt",
		NewName: "a.txt",
		TextFragments: []*gitdiff.TextFragment{
			{
				OldPosition: 1,
				OldLines:    3,
				NewPosition: 1,
				NewLines:    3,
				Lines: []gitdiff.Line{
					{Op: gitdiff.OpContext, Line: "one\n"},
					{Op: gitdiff.OpDelete, Line: "two\n"},
					{Op: gitdiff.OpAdd, Line: "TWO\n"},
					{Op: gitdiff.OpContext, Line: "three\n"},
				},
			},
		},
	}

	p := gitcompat.FromFile(f)
	assert.Equal(t, "a.txt", p.OldFile)
	assert.Equal(t, "a.txt", p.NewFile)
	require.Len(t, p.Chunks, 1)

	c := p.Chunks[0]
	assert.Equal(t, 0, c.OldStart)
	assert.Equal(t, 3, c.OldLines)
	require.Len(t, c.Operations, 4)
	assert.Equal(t, diff.OpContext, c.Operations[0].Kind)
	assert.Equal(t, "one", c.Operations[0].Text)
	assert.Equal(t, diff.OpRemove, c.Operations[1].Kind)
	assert.Equal(t, diff.OpAdd, c.Operations[2].Kind)
}

func TestFromFileCreationAndDeletion(t *testing.T) {
	t.Parallel()

	created := &gitdiff.File{
		NewName: "new.txt",
		IsNew:   true,
		TextFragments: []*gitdiff.TextFragment{
			{NewPosition: 1, NewLines: 1, Lines: []gitdiff.Line{{Op: gitdiff.OpAdd, Line: "hi\n"}}},
		},
	}
	p := gitcompat.FromFile(created)
	assert.Equal(t, "/dev/null", p.OldFile)
	assert.Equal(t, "new.txt", p.NewFile)

	deleted := &gitdiff.File{
		OldName:  "old.txt",
		IsDelete: true,
		TextFragments: []*gitdiff.TextFragment{
			{OldPosition: 1, OldLines: 1, Lines: []gitdiff.Line{{Op: gitdiff.OpDelete, Line: "bye\n"}}},
		},
	}
	p2 := gitcompat.FromFile(deleted)
	assert.Equal(t, "old.txt", p2.OldFile)
	assert.Equal(t, "/dev/null", p2.NewFile)
}

func TestFromFilesSkipsBinary(t *testing.T) {
	t.Parallel()

	files := []*gitdiff.File{
		{OldName: "img.png", NewName: "img.png", IsBinary: true},
		{
			OldName: "a.txt", NewName: "a.txt",
			TextFragments: []*gitdiff.TextFragment{
				{OldPosition: 1, OldLines: 1, NewPosition: 1, NewLines: 1, Lines: []gitdiff.Line{{Op: gitdiff.OpContext, Line: "x\n"}}},
			},
		},
	}

	mp := gitcompat.FromFiles(files)
	require.Len(t, mp.Files, 1)
	assert.Equal(t, "a.txt", mp.Files[0].OldFile)
}
