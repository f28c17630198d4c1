package diff

import "strings"

// SplitLines splits s into lines without their terminating LF, and reports
// whether s ends with a trailing newline. A CRLF line ending keeps its CR as
// part of the line's text, matching the teacher's byte-faithful treatment of
// source content.
//
// An empty string splits to zero lines (hasTrailingNewline is true, since
// there is nothing to be missing a newline).
func SplitLines(s string) (lines []string, hasTrailingNewline bool) {
	if s == "" {
		return nil, true
	}
	hasTrailingNewline = strings.HasSuffix(s, "\n")
	trimmed := s
	if hasTrailingNewline {
		trimmed = s[:len(s)-1]
	}
	return strings.Split(trimmed, "\n"), hasTrailingNewline
}

// JoinLines is the inverse of SplitLines: it joins lines with LF and appends
// a trailing one unless hasTrailingNewline is false.
func JoinLines(lines []string, hasTrailingNewline bool) string {
	if len(lines) == 0 {
		return ""
	}
	s := strings.Join(lines, "\n")
	if hasTrailingNewline {
		s += "\n"
	}
	return s
}
