// Package gitcompat bridges github.com/bluekeyes/go-gitdiff's parsed git
// diff output into this module's own diff.Patch/diff.Chunk types, so the
// applier can be driven off a real `git diff` (or `git format-patch`)
// stream and not only this module's own C4 parser. It is read-only: there
// is no path back from diff.Patch to gitdiff.File.
package gitcompat

import (
	"github.com/bluekeyes/go-gitdiff/gitdiff"

	diff "github.com/fwojciec/godiff"
)

// FromFiles converts parsed gitdiff.File values into a diff.MultifilePatch.
// Binary files (no TextFragments) are skipped, since this module's
// Non-goals exclude binary diffs.
func FromFiles(files []*gitdiff.File) *diff.MultifilePatch {
	mp := &diff.MultifilePatch{}
	for _, f := range files {
		if f.IsBinary || len(f.TextFragments) == 0 {
			continue
		}
		mp.Files = append(mp.Files, FromFile(f))
	}
	return mp
}

// FromFile converts a single gitdiff.File into a diff.Patch.
func FromFile(f *gitdiff.File) diff.Patch {
	p := diff.Patch{
		OldFile: gitPath(f.OldName, f.IsNew),
		NewFile: gitPath(f.NewName, f.IsDelete),
	}
	for _, frag := range f.TextFragments {
		p.Chunks = append(p.Chunks, fromFragment(frag))
	}
	return p
}

func gitPath(name string, absent bool) string {
	if absent || name == "" {
		return "/dev/null"
	}
	return name
}

func fromFragment(frag *gitdiff.TextFragment) diff.Chunk {
	c := diff.Chunk{
		OldStart: int(frag.OldPosition) - 1,
		OldLines: int(frag.OldLines),
		NewStart: int(frag.NewPosition) - 1,
		NewLines: int(frag.NewLines),
	}
	// A side spanning zero lines names the line it follows, not the
	// first line of its span, so its 0-based start is the position itself.
	if c.OldLines == 0 {
		c.OldStart = int(frag.OldPosition)
	}
	if c.NewLines == 0 {
		c.NewStart = int(frag.NewPosition)
	}
	if c.OldStart < 0 {
		c.OldStart = 0
	}
	if c.NewStart < 0 {
		c.NewStart = 0
	}
	for _, l := range frag.Lines {
		c.Operations = append(c.Operations, diff.Operation{
			Kind: fromLineOp(l.Op),
			Text: trimLineEnding(l.Line),
		})
	}
	return c
}

func fromLineOp(op gitdiff.LineOp) diff.OpKind {
	switch op {
	case gitdiff.OpAdd:
		return diff.OpAdd
	case gitdiff.OpDelete:
		return diff.OpRemove
	default:
		return diff.OpContext
	}
}

func trimLineEnding(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
