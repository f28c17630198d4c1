package diff

import "sort"

// similarSmallSpan is the subrange size below which the patience search
// gives way to a direct Myers pass.
const similarSmallSpan = 32

// anchorPair is a candidate alignment point: a line unique within both its
// old-side and new-side span, at (oi, nj) relative to that span.
type anchorPair struct{ oi, nj int }

// similarScript computes the raw edit script using a Patience-style
// approach: lines that occur exactly once on each side anchor the
// alignment (via a longest increasing subsequence over their new-side
// positions), and the gaps between anchors are solved recursively, falling
// back to Myers once a gap is small.
func similarScript(old, new []string) []change {
	var kinds []changeKind
	var oldIdxs, newIdxs []int
	similarRec(old, new, 0, len(old), 0, len(new), &kinds, &oldIdxs, &newIdxs)
	return coalesceSteps(kinds, oldIdxs, newIdxs)
}

func similarRec(old, new []string, aLo, aHi, bLo, bHi int, kinds *[]changeKind, oldIdxs, newIdxs *[]int) {
	for aLo < aHi && bLo < bHi && old[aLo] == new[bLo] {
		*kinds = append(*kinds, changeEqual)
		*oldIdxs = append(*oldIdxs, aLo)
		*newIdxs = append(*newIdxs, bLo)
		aLo++
		bLo++
	}

	var sufKinds []changeKind
	var sufOld, sufNew []int
	for aLo < aHi && bLo < bHi && old[aHi-1] == new[bHi-1] {
		aHi--
		bHi--
		sufKinds = append(sufKinds, changeEqual)
		sufOld = append(sufOld, aHi)
		sufNew = append(sufNew, bHi)
	}

	switch {
	case aLo == aHi && bLo == bHi:
		// trimmed to nothing
	case aLo == aHi:
		for j := bLo; j < bHi; j++ {
			*kinds = append(*kinds, changeInsert)
			*oldIdxs = append(*oldIdxs, aLo)
			*newIdxs = append(*newIdxs, j)
		}
	case bLo == bHi:
		for i := aLo; i < aHi; i++ {
			*kinds = append(*kinds, changeDelete)
			*oldIdxs = append(*oldIdxs, i)
			*newIdxs = append(*newIdxs, bLo)
		}
	case aHi-aLo <= similarSmallSpan || bHi-bLo <= similarSmallSpan:
		appendSubScript(myersScript(old[aLo:aHi], new[bLo:bHi]), aLo, bLo, kinds, oldIdxs, newIdxs)
	default:
		anchors := uniqueAnchors(old[aLo:aHi], new[bLo:bHi])
		if len(anchors) == 0 {
			appendSubScript(myersScript(old[aLo:aHi], new[bLo:bHi]), aLo, bLo, kinds, oldIdxs, newIdxs)
			break
		}
		prevOi, prevNj := 0, 0
		for _, anc := range anchors {
			similarRec(old, new, aLo+prevOi, aLo+anc.oi, bLo+prevNj, bLo+anc.nj, kinds, oldIdxs, newIdxs)
			*kinds = append(*kinds, changeEqual)
			*oldIdxs = append(*oldIdxs, aLo+anc.oi)
			*newIdxs = append(*newIdxs, bLo+anc.nj)
			prevOi, prevNj = anc.oi+1, anc.nj+1
		}
		similarRec(old, new, aLo+prevOi, aHi, bLo+prevNj, bHi, kinds, oldIdxs, newIdxs)
	}

	for i := len(sufKinds) - 1; i >= 0; i-- {
		*kinds = append(*kinds, sufKinds[i])
		*oldIdxs = append(*oldIdxs, sufOld[i])
		*newIdxs = append(*newIdxs, sufNew[i])
	}
}

// uniqueAnchors finds lines occurring exactly once in oldSeg and exactly
// once in newSeg, equal at both occurrences, then keeps the subset that
// forms a longest increasing subsequence by new-side position (so the
// anchors can be visited in a single old-index-ascending, new-index-
// ascending pass).
func uniqueAnchors(oldSeg, newSeg []string) []anchorPair {
	oldCount := make(map[string]int, len(oldSeg))
	for _, l := range oldSeg {
		oldCount[l]++
	}
	newCount := make(map[string]int, len(newSeg))
	newIndexOf := make(map[string]int, len(newSeg))
	for idx, l := range newSeg {
		newCount[l]++
		newIndexOf[l] = idx
	}

	var matches []anchorPair
	for oi, l := range oldSeg {
		if oldCount[l] == 1 && newCount[l] == 1 {
			matches = append(matches, anchorPair{oi: oi, nj: newIndexOf[l]})
		}
	}
	return longestIncreasingByNj(matches)
}

// longestIncreasingByNj returns the longest subsequence of matches (which
// is already old-index ascending) with strictly increasing nj, using the
// standard O(n log n) patience-sorting technique.
func longestIncreasingByNj(matches []anchorPair) []anchorPair {
	if len(matches) == 0 {
		return nil
	}
	tails := make([]int, 0, len(matches))
	pred := make([]int, len(matches))
	for i := range pred {
		pred[i] = -1
	}
	for i, m := range matches {
		lo := sort.Search(len(tails), func(k int) bool {
			return matches[tails[k]].nj >= m.nj
		})
		if lo > 0 {
			pred[i] = tails[lo-1]
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}
	result := make([]anchorPair, len(tails))
	k := tails[len(tails)-1]
	for i := len(tails) - 1; i >= 0; i-- {
		result[i] = matches[k]
		k = pred[k]
	}
	return result
}
