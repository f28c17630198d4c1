package diff

// Divide-and-conquer tuning. xdiffSmallSpan is the subrange size below
// which it is cheaper to fall back to a direct Myers pass than to keep
// recursing. xdiffMaxCost bounds the middle-snake search's edit-distance
// budget per call (the "cost cap" heuristic); spans that would need a
// deeper search fall back to Myers on that subrange instead of searching
// further, which keeps pathological inputs from blowing up the recursion.
const (
	xdiffSmallSpan = 64
	xdiffMaxCost   = 4096
)

// xdiffScript computes the raw edit script using a divide-and-conquer
// Myers variant: repeatedly trims common prefixes/suffixes, finds the
// middle snake of what remains, and recurses on the two halves. This is
// the default algorithm; its output is equivalent to plain Myers when the
// cost cap is never hit, and a still-correct (if slightly longer) script
// otherwise.
func xdiffScript(old, new []string) []change {
	var kinds []changeKind
	var oldIdxs, newIdxs []int
	xdiffRec(old, new, 0, len(old), 0, len(new), &kinds, &oldIdxs, &newIdxs)
	return coalesceSteps(kinds, oldIdxs, newIdxs)
}

func xdiffRec(old, new []string, aLo, aHi, bLo, bHi int, kinds *[]changeKind, oldIdxs, newIdxs *[]int) {
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
		// fully consumed by prefix/suffix trimming
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
	case aHi-aLo <= xdiffSmallSpan || bHi-bLo <= xdiffSmallSpan:
		appendSubScript(myersScript(old[aLo:aHi], new[bLo:bHi]), aLo, bLo, kinds, oldIdxs, newIdxs)
	default:
		if x, y, ok := middleSnake(old[aLo:aHi], new[bLo:bHi]); ok {
			xdiffRec(old, new, aLo, aLo+x, bLo, bLo+y, kinds, oldIdxs, newIdxs)
			xdiffRec(old, new, aLo+x, aHi, bLo+y, bHi, kinds, oldIdxs, newIdxs)
		} else {
			appendSubScript(myersScript(old[aLo:aHi], new[bLo:bHi]), aLo, bLo, kinds, oldIdxs, newIdxs)
		}
	}

	for i := len(sufKinds) - 1; i >= 0; i-- {
		*kinds = append(*kinds, sufKinds[i])
		*oldIdxs = append(*oldIdxs, sufOld[i])
		*newIdxs = append(*newIdxs, sufNew[i])
	}
}

// appendSubScript flattens a sub-range's run-length change script into
// per-line steps, offsetting indices back into the full buffers.
func appendSubScript(sub []change, aOff, bOff int, kinds *[]changeKind, oldIdxs, newIdxs *[]int) {
	for _, c := range sub {
		for i := 0; i < c.n; i++ {
			switch c.kind {
			case changeEqual:
				*kinds = append(*kinds, changeEqual)
				*oldIdxs = append(*oldIdxs, aOff+c.oldIdx+i)
				*newIdxs = append(*newIdxs, bOff+c.newIdx+i)
			case changeDelete:
				*kinds = append(*kinds, changeDelete)
				*oldIdxs = append(*oldIdxs, aOff+c.oldIdx+i)
				*newIdxs = append(*newIdxs, bOff+c.newIdx)
			case changeInsert:
				*kinds = append(*kinds, changeInsert)
				*oldIdxs = append(*oldIdxs, aOff+c.oldIdx)
				*newIdxs = append(*newIdxs, bOff+c.newIdx+i)
			}
		}
	}
}

// middleSnake finds a point (x,y) on an optimal edit path between a and b
// using the linear-space forward/backward search from Myers' paper §4b.
// It reports false if the cost cap was exhausted before the forward and
// backward frontiers met, signaling the caller to fall back to a direct
// algorithm on this span.
func middleSnake(a, b []string) (x, y int, ok bool) {
	n, m := len(a), len(b)
	maxD := (n + m + 1) / 2
	cap := maxD
	if cap > xdiffMaxCost {
		cap = xdiffMaxCost
	}
	delta := n - m
	offset := maxD
	size := 2*maxD + 1
	vf := make([]int, size)
	vb := make([]int, size)

	for d := 0; d <= cap; d++ {
		for k := -d; k <= d; k += 2 {
			var fx int
			if k == -d || (k != d && vf[k-1+offset] < vf[k+1+offset]) {
				fx = vf[k+1+offset]
			} else {
				fx = vf[k-1+offset] + 1
			}
			fy := fx - k
			for fx < n && fy < m && a[fx] == b[fy] {
				fx++
				fy++
			}
			vf[k+offset] = fx
			if delta%2 != 0 {
				kb := k - delta
				if kb >= -(d-1) && kb <= d-1 {
					if bx := vb[-kb+offset]; fx+bx >= n {
						return fx, fy, true
					}
				}
			}
		}
		for k := -d; k <= d; k += 2 {
			var bx int
			if k == -d || (k != d && vb[k-1+offset] < vb[k+1+offset]) {
				bx = vb[k+1+offset]
			} else {
				bx = vb[k-1+offset] + 1
			}
			by := bx - k
			for bx < n && by < m && a[n-1-bx] == b[m-1-by] {
				bx++
				by++
			}
			vb[k+offset] = bx
			if delta%2 == 0 {
				kf := delta - k
				if kf >= -d && kf <= d {
					if fx := vf[kf+offset]; fx+bx >= n {
						return n - bx, m - by, true
					}
				}
			}
		}
	}
	return 0, 0, false
}
