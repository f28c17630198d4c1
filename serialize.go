package diff

import (
	"strconv"
	"strings"
)

const noNewlineMarker = `\ No newline at end of file`

// Serialize renders p in the wire-exact unified-diff textual form (§4.4),
// including a trailing newline after the final line.
func Serialize(p *Patch) string {
	var b strings.Builder
	writePatch(&b, p)
	return b.String()
}

// SerializeMultifile renders a MultifilePatch as the concatenation of its
// per-file patches in order.
func SerializeMultifile(mp *MultifilePatch) string {
	var b strings.Builder
	for i := range mp.Files {
		writePatch(&b, &mp.Files[i])
	}
	return b.String()
}

func writePatch(b *strings.Builder, p *Patch) {
	for _, line := range p.Preamble {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("--- ")
	b.WriteString(headerPath(p.OldFile, "a/"))
	b.WriteByte('\n')
	b.WriteString("+++ ")
	b.WriteString(headerPath(p.NewFile, "b/"))
	b.WriteByte('\n')
	for i := range p.Chunks {
		writeChunk(b, &p.Chunks[i])
	}
}

func headerPath(file, prefix string) string {
	if file == devNull {
		return devNull
	}
	return prefix + file
}

func writeChunk(b *strings.Builder, c *Chunk) {
	b.WriteString("@@ ")
	b.WriteByte('-')
	b.WriteString(formatRange(c.OldStart, c.OldLines))
	b.WriteByte(' ')
	b.WriteByte('+')
	b.WriteString(formatRange(c.NewStart, c.NewLines))
	b.WriteString(" @@\n")

	for _, op := range c.Operations {
		written := []Operation{op}
		if op.Kind == OpContext && op.NoNewlineOld != op.NoNewlineNew {
			written = []Operation{
				{Kind: OpRemove, Text: op.Text, NoNewlineOld: op.NoNewlineOld},
				{Kind: OpAdd, Text: op.Text, NoNewlineNew: op.NoNewlineNew},
			}
		}
		for _, w := range written {
			b.WriteString(w.Kind.String())
			b.WriteString(w.Text)
			b.WriteByte('\n')
			if noNewlineAfter(w) {
				b.WriteString(noNewlineMarker)
				b.WriteByte('\n')
			}
		}
	}
}

// noNewlineAfter reports whether op's output line should be followed by a
// "\ No newline at end of file" marker. A Context line carries one marker
// when either side lacks a trailing newline there; writeChunk emits a
// Context line whose two flags disagree as a Remove/Add pair instead, so
// for Context this only fires with both flags set.
func noNewlineAfter(op Operation) bool {
	switch op.Kind {
	case OpAdd:
		return op.NoNewlineNew
	case OpRemove:
		return op.NoNewlineOld
	default:
		return op.NoNewlineOld || op.NoNewlineNew
	}
}

// formatRange renders a chunk's one-sided range per the textual
// (1-based, count-elided-when-1) convention of §4.3/§4.4.
func formatRange(start, lines int) string {
	textStart := start + 1
	if lines == 0 {
		textStart = start
		if textStart < 0 {
			textStart = 0
		}
	}
	s := strconv.Itoa(textStart)
	if lines == 1 {
		return s
	}
	return s + "," + strconv.Itoa(lines)
}
