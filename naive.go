package diff

// naiveLookahead is the fixed window (lines on each side) the naive
// algorithm searches before giving up on finding a nearby match.
const naiveLookahead = 10

// naiveScript computes the raw edit script with a greedy single-pass
// algorithm: advance on equal lines, otherwise search up to
// naiveLookahead lines ahead on each side for the nearest matching pair
// and emit the Delete/Insert runs needed to reach it, falling back to a
// one-line Delete and one-line Insert when no nearby match exists. This
// trades optimality for a simple, predictable linear-ish pass.
func naiveScript(old, new []string) []change {
	n, m := len(old), len(new)
	var kinds []changeKind
	var oldIdxs, newIdxs []int

	i, j := 0, 0
	for i < n || j < m {
		if i < n && j < m && old[i] == new[j] {
			kinds = append(kinds, changeEqual)
			oldIdxs = append(oldIdxs, i)
			newIdxs = append(newIdxs, j)
			i++
			j++
			continue
		}

		bestOi, bestOj, bestScore := -1, -1, -1
		maxOi := min(i+naiveLookahead, n)
		maxOj := min(j+naiveLookahead, m)
		for oi := i; oi < maxOi; oi++ {
			for oj := j; oj < maxOj; oj++ {
				if old[oi] != new[oj] {
					continue
				}
				score := (oi - i) + (oj - j)
				if bestScore == -1 || score < bestScore {
					bestScore, bestOi, bestOj = score, oi, oj
				}
			}
		}

		if bestOi >= 0 {
			for k := i; k < bestOi; k++ {
				kinds = append(kinds, changeDelete)
				oldIdxs = append(oldIdxs, k)
				newIdxs = append(newIdxs, j)
			}
			for k := j; k < bestOj; k++ {
				kinds = append(kinds, changeInsert)
				oldIdxs = append(oldIdxs, bestOi)
				newIdxs = append(newIdxs, k)
			}
			i, j = bestOi, bestOj
			continue
		}

		if i < n {
			kinds = append(kinds, changeDelete)
			oldIdxs = append(oldIdxs, i)
			newIdxs = append(newIdxs, j)
			i++
		}
		if j < m {
			kinds = append(kinds, changeInsert)
			oldIdxs = append(oldIdxs, i)
			newIdxs = append(newIdxs, j)
			j++
		}
	}

	return coalesceSteps(kinds, oldIdxs, newIdxs)
}
