package diff

// fuzzyCandidate is one scored anchor position considered during a fuzzy
// search.
type fuzzyCandidate struct {
	anchor int
	score  float64
}

// fuzzyFindAnchor implements the fuzzy/similarity strategy (§4.5 ii): it
// searches a ±SearchRadius window around the expected anchor, scoring each
// candidate by its chunk's non-Add lines, falling back to a Context-only
// score if nothing clears the aggregate threshold.
func fuzzyFindAnchor(lines []string, i int, c *Chunk, opts ApplyOptions) (int, error) {
	expected := c.OldStart

	radius := opts.SearchRadius
	if radius == 0 {
		radius = 50
	}
	lo := expected - radius
	if lo < i {
		lo = i
	}
	hi := expected + radius
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo > hi {
		return 0, &Error{Kind: CannotLocateChunk, Anchor: expected}
	}

	if best, ok := scanCandidates(lines, lo, hi, expected, c.Operations, true); ok && best.score >= opts.MinAggregateScore {
		return best.anchor, nil
	}
	if best, ok := scanCandidates(lines, lo, hi, expected, c.Operations, false); ok && best.score >= opts.MinAggregateScore {
		return best.anchor, nil
	}
	return 0, &Error{Kind: CannotLocateChunk, Anchor: expected}
}

// scanCandidates scores every anchor in [lo,hi] and returns the best one,
// per the tie-break rule: highest score, then smallest distance from the
// expected anchor, then earliest position.
func scanCandidates(lines []string, lo, hi, expected int, ops []Operation, includeRemove bool) (fuzzyCandidate, bool) {
	var best fuzzyCandidate
	found := false
	for a := lo; a <= hi; a++ {
		score, ok := scoreAtAnchor(lines, a, ops, includeRemove)
		if !ok {
			continue
		}
		cand := fuzzyCandidate{anchor: a, score: score}
		if !found || betterCandidate(cand, best, expected) {
			best, found = cand, true
		}
	}
	return best, found
}

// scoreAtAnchor walks ops as if anchored at a, averaging lineScore over
// the considered lines (Context+Remove, or Context-only when
// includeRemove is false) while still advancing past every Context/Remove
// line to keep positional alignment with S.
func scoreAtAnchor(lines []string, a int, ops []Operation, includeRemove bool) (float64, bool) {
	pos := a
	var total float64
	var count int
	for _, op := range ops {
		if op.Kind == OpAdd {
			continue
		}
		if pos >= len(lines) {
			return 0, false
		}
		if op.Kind == OpContext || includeRemove {
			total += lineScore(op.Text, lines[pos])
			count++
		}
		pos++
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

func betterCandidate(cand, cur fuzzyCandidate, expected int) bool {
	if cand.score != cur.score {
		return cand.score > cur.score
	}
	dc, dcur := absInt(cand.anchor-expected), absInt(cur.anchor-expected)
	if dc != dcur {
		return dc < dcur
	}
	return cand.anchor < cur.anchor
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
