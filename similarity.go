package diff

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeWhitespace collapses runs of spaces/tabs to a single space and
// trims the ends, for the whitespace-normalized equality check used by
// fuzzy scoring (§4.5 ii).
func normalizeWhitespace(s string) string {
	trimmed := strings.TrimSpace(s)
	var b strings.Builder
	inSpace := false
	for _, r := range trimmed {
		if r == ' ' || r == '\t' {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// levenshtein computes the Unicode-scalar edit distance between a and b,
// per §9's requirement that similarity scoring be character-based rather
// than byte-based.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// levenshteinSimilarity returns 1 − edit_distance/max(|a|,|b|), in runes.
func levenshteinSimilarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// lineScore compares a patch-recorded line against a candidate source
// line per §4.5(ii): exact equality scores 1.0, whitespace-normalized
// equality scores 0.95, and a Levenshtein similarity of at least 0.75 is
// accepted as its own score; anything else scores 0.
func lineScore(patchLine, sourceLine string) float64 {
	patchLine, sourceLine = norm.NFC.String(patchLine), norm.NFC.String(sourceLine)
	if patchLine == sourceLine {
		return 1.0
	}
	if normalizeWhitespace(patchLine) == normalizeWhitespace(sourceLine) {
		return 0.95
	}
	if sim := levenshteinSimilarity(patchLine, sourceLine); sim >= 0.75 {
		return sim
	}
	return 0
}
