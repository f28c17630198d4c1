package diff

import (
	"strconv"
	"strings"
)

// Parse parses a single unified-diff patch from text (§4.4).
func Parse(text string) (*Patch, error) {
	lines := splitRaw(text)
	p, _, err := parseOne(lines, 0)
	return p, err
}

// ParseMultifile parses a bundle of per-file patches (§4.4 "Multi-file
// parser"). A segment that fails to parse is recorded in the returned error
// slice rather than aborting the whole bundle.
func ParseMultifile(text string) (*MultifilePatch, []error) {
	lines := splitRaw(text)
	bounds := segmentBounds(lines)

	mp := &MultifilePatch{}
	var errs []error
	for _, seg := range bounds {
		segLines := lines[seg.start:seg.end]
		p, _, err := parseOne(segLines, seg.start)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		mp.Files = append(mp.Files, *p)
	}
	return mp, errs
}

type segment struct{ start, end int }

// segmentBounds splits raw lines into per-file segments at every
// `diff --git ` preamble line or at a fresh `--- ` header not preceded by a
// complete prior chunk body (i.e. any `--- ` line starts a new segment
// unless it is the first `--- ` header after the current segment's own
// `diff --git ` line).
func segmentBounds(lines []string) []segment {
	var starts []int
	for i, l := range lines {
		if strings.HasPrefix(l, "diff --git ") {
			starts = append(starts, i)
			continue
		}
		if strings.HasPrefix(l, "--- ") {
			if len(starts) == 0 || !precededByGitLine(lines, starts[len(starts)-1], i) {
				starts = append(starts, i)
			}
		}
	}
	if len(starts) == 0 {
		if len(lines) == 0 {
			return nil
		}
		return []segment{{0, len(lines)}}
	}
	segs := make([]segment, 0, len(starts))
	for i, s := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		segs = append(segs, segment{s, end})
	}
	return segs
}

// precededByGitLine reports whether a `--- ` header at index idx belongs to
// the segment already opened by a `diff --git ` line at segStart (i.e.
// there is no other `--- ` header for that segment yet).
func precededByGitLine(lines []string, segStart, idx int) bool {
	if !strings.HasPrefix(lines[segStart], "diff --git ") {
		return false
	}
	for i := segStart + 1; i < idx; i++ {
		if strings.HasPrefix(lines[i], "--- ") {
			return false
		}
	}
	return true
}

func splitRaw(text string) []string {
	if text == "" {
		return nil
	}
	trimmed := strings.TrimSuffix(text, "\n")
	return strings.Split(trimmed, "\n")
}

// parseOne parses a single patch segment starting at lines[0], which is
// absolute line offset base+1 in the original text (for error reporting).
// It returns the patch and the number of lines consumed.
func parseOne(lines []string, base int) (*Patch, int, error) {
	p := &Patch{}
	i := 0

	for i < len(lines) && !strings.HasPrefix(lines[i], "--- ") {
		p.Preamble = append(p.Preamble, lines[i])
		i++
	}
	if i >= len(lines) {
		return nil, i, &Error{Kind: MalformedHeader, Line: base + i + 1, Header: ""}
	}

	oldFile, err := parseFileHeader(lines[i], "--- ")
	if err != nil {
		return nil, i, withLine(err, base+i+1)
	}
	p.OldFile = oldFile
	i++

	if i >= len(lines) || !strings.HasPrefix(lines[i], "+++ ") {
		h := ""
		if i < len(lines) {
			h = lines[i]
		}
		return nil, i, &Error{Kind: MalformedHeader, Line: base + i + 1, Header: h}
	}
	newFile, err := parseFileHeader(lines[i], "+++ ")
	if err != nil {
		return nil, i, withLine(err, base+i+1)
	}
	p.NewFile = newFile
	i++

	for i < len(lines) && strings.HasPrefix(lines[i], "@@ ") {
		c, consumed, err := parseChunk(lines, i, base)
		if err != nil {
			return nil, i, err
		}
		p.Chunks = append(p.Chunks, *c)
		i += consumed
	}

	return p, i, nil
}

func withLine(err error, line int) error {
	if e, ok := err.(*Error); ok && e.Line == 0 {
		e.Line = line
	}
	return err
}

// parseFileHeader parses a `--- `/`+++ ` header line: strips the prefix
// marker, a single leading a/ or b/ path component, and a tab-delimited
// timestamp suffix if present.
func parseFileHeader(line, marker string) (string, error) {
	if !strings.HasPrefix(line, marker) {
		return "", &Error{Kind: MalformedHeader, Header: line}
	}
	rest := line[len(marker):]
	if tab := strings.IndexByte(rest, '\t'); tab >= 0 {
		rest = rest[:tab]
	}
	if rest == devNull {
		return devNull, nil
	}
	if strings.HasPrefix(rest, "a/") {
		rest = rest[2:]
	} else if strings.HasPrefix(rest, "b/") {
		rest = rest[2:]
	}
	return rest, nil
}

// parseChunk parses the `@@ ... @@` header at lines[i] and its operation
// body, returning the number of lines consumed (header + body).
func parseChunk(lines []string, i, base int) (*Chunk, int, error) {
	header := lines[i]
	oldStart, oldLines, newStart, newLines, err := parseChunkHeader(header)
	if err != nil {
		return nil, 0, withLine(err, base+i+1)
	}
	c := &Chunk{OldStart: oldStart, OldLines: oldLines, NewStart: newStart, NewLines: newLines}

	j := i + 1
	for j < len(lines) {
		l := lines[j]
		if strings.HasPrefix(l, "@@ ") || strings.HasPrefix(l, "--- ") || strings.HasPrefix(l, "diff --git ") {
			break
		}
		if l == noNewlineMarker {
			attachNoNewline(c)
			j++
			continue
		}
		op, err := parseOperationLine(l, base+j+1)
		if err != nil {
			return nil, 0, err
		}
		c.Operations = append(c.Operations, op)
		j++
	}

	gotOld, gotNew := c.counts()
	if gotOld != c.OldLines || gotNew != c.NewLines {
		declared, observed := c.OldLines, gotOld
		if gotOld == c.OldLines {
			declared, observed = c.NewLines, gotNew
		}
		return nil, 0, &Error{
			Kind:     ChunkCountMismatch,
			Line:     base + i + 1,
			Declared: declared,
			Observed: observed,
		}
	}

	return c, j - i, nil
}

// attachNoNewline marks the most recently parsed operation as lacking a
// trailing newline on the side(s) it affects.
func attachNoNewline(c *Chunk) {
	if len(c.Operations) == 0 {
		return
	}
	op := &c.Operations[len(c.Operations)-1]
	switch op.Kind {
	case OpAdd:
		op.NoNewlineNew = true
	case OpRemove:
		op.NoNewlineOld = true
	case OpContext:
		op.NoNewlineOld = true
		op.NoNewlineNew = true
	}
}

func parseOperationLine(l string, line int) (Operation, error) {
	if l == "" {
		return Operation{Kind: OpContext, Text: ""}, nil
	}
	switch l[0] {
	case ' ':
		return Operation{Kind: OpContext, Text: l[1:]}, nil
	case '+':
		return Operation{Kind: OpAdd, Text: l[1:]}, nil
	case '-':
		return Operation{Kind: OpRemove, Text: l[1:]}, nil
	default:
		return Operation{}, &Error{Kind: UnknownOperation, Line: line}
	}
}

// parseChunkHeader parses `@@ -os[,ol] +ns[,nl] @@[ ...]` into 0-based
// start indices and line counts, reversing the textual clamp rule of §4.3.
func parseChunkHeader(header string) (oldStart, oldLines, newStart, newLines int, err error) {
	rest := strings.TrimPrefix(header, "@@ ")
	end := strings.Index(rest, " @@")
	if end < 0 {
		return 0, 0, 0, 0, &Error{Kind: MalformedHeader, Header: header}
	}
	fields := strings.Fields(rest[:end])
	if len(fields) != 2 || len(fields[0]) == 0 || fields[0][0] != '-' || fields[1][0] != '+' {
		return 0, 0, 0, 0, &Error{Kind: MalformedHeader, Header: header}
	}
	oldStart, oldLines, err = parseRange(fields[0][1:])
	if err != nil {
		return 0, 0, 0, 0, &Error{Kind: MalformedHeader, Header: header, Err: err}
	}
	newStart, newLines, err = parseRange(fields[1][1:])
	if err != nil {
		return 0, 0, 0, 0, &Error{Kind: MalformedHeader, Header: header, Err: err}
	}
	return oldStart, oldLines, newStart, newLines, nil
}

// parseRange parses one side of a chunk header ("os[,ol]") into a 0-based
// start and a line count, reversing formatRange's textual convention.
func parseRange(s string) (start, lines int, err error) {
	parts := strings.SplitN(s, ",", 2)
	textStart, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return textStart - 1, 1, nil
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return textStart, 0, nil
	}
	return textStart - 1, n, nil
}
