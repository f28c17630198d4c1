package diff

// runRange is a maximal span of consecutive non-Equal runs in a raw edit
// script: one "change region" before context expansion and merging.
type runRange struct{ start, end int } // inclusive indices into the script

// buildChunks folds a raw edit script into unified-diff Chunks with up to
// context lines of surrounding Equal lines, merging change regions whose
// gap is small enough to bridge (§4.3), then attaches the terminal
// no-newline markers (§4.1, §8 P5).
func buildChunks(script []change, oldLines, newLines []string, context int, oldNL, newNL bool) []Chunk {
	blocks := changeBlocks(script)
	if len(blocks) == 0 {
		return applyNewlineMarkers(nil, oldLines, newLines, oldNL, newNL)
	}
	merged := mergeBlocks(blocks, script, context)

	chunks := make([]Chunk, 0, len(merged))
	for _, b := range merged {
		chunks = append(chunks, buildOneChunk(b, script, oldLines, newLines, context))
	}
	return applyNewlineMarkers(chunks, oldLines, newLines, oldNL, newNL)
}

// changeBlocks finds the maximal runs of consecutive non-Equal script
// entries.
func changeBlocks(script []change) []runRange {
	var blocks []runRange
	i := 0
	for i < len(script) {
		if script[i].kind == changeEqual {
			i++
			continue
		}
		j := i
		for j < len(script) && script[j].kind != changeEqual {
			j++
		}
		blocks = append(blocks, runRange{i, j - 1})
		i = j
	}
	return blocks
}

// mergeBlocks merges adjacent change blocks whenever the single Equal run
// separating them is short enough (≤ 2·context lines) to bridge.
func mergeBlocks(blocks []runRange, script []change, context int) []runRange {
	merged := []runRange{blocks[0]}
	for k := 1; k < len(blocks); k++ {
		last := &merged[len(merged)-1]
		gapRunIdx := last.end + 1
		gapLen := script[gapRunIdx].n
		if gapLen <= 2*context {
			last.end = blocks[k].end
		} else {
			merged = append(merged, blocks[k])
		}
	}
	return merged
}

// buildOneChunk renders a single merged block into a Chunk, expanding its
// outer edges by up to context Equal lines.
func buildOneChunk(b runRange, script []change, oldLines, newLines []string, context int) Chunk {
	var ops []Operation

	leftRun, leftTake := -1, 0
	if b.start > 0 {
		leftRun = b.start - 1
		leftTake = min(context, script[leftRun].n)
	}
	rightRun, rightTake := -1, 0
	if b.end+1 < len(script) {
		rightRun = b.end + 1
		rightTake = min(context, script[rightRun].n)
	}

	oldStart, newStart := 0, 0
	if leftTake > 0 {
		r := script[leftRun]
		skip := r.n - leftTake
		oldStart = r.oldIdx + skip
		newStart = r.newIdx + skip
		for k := 0; k < leftTake; k++ {
			ops = append(ops, Operation{Kind: OpContext, Text: oldLines[oldStart+k]})
		}
	} else {
		r := script[b.start]
		oldStart, newStart = r.oldIdx, r.newIdx
	}

	for ri := b.start; ri <= b.end; ri++ {
		r := script[ri]
		switch r.kind {
		case changeDelete:
			for k := 0; k < r.n; k++ {
				ops = append(ops, Operation{Kind: OpRemove, Text: oldLines[r.oldIdx+k]})
			}
		case changeInsert:
			for k := 0; k < r.n; k++ {
				ops = append(ops, Operation{Kind: OpAdd, Text: newLines[r.newIdx+k]})
			}
		case changeEqual:
			for k := 0; k < r.n; k++ {
				ops = append(ops, Operation{Kind: OpContext, Text: oldLines[r.oldIdx+k]})
			}
		}
	}

	if rightTake > 0 {
		r := script[rightRun]
		for k := 0; k < rightTake; k++ {
			ops = append(ops, Operation{Kind: OpContext, Text: oldLines[r.oldIdx+k]})
		}
	}

	c := Chunk{OldStart: oldStart, NewStart: newStart, Operations: ops}
	c.OldLines, c.NewLines = c.counts()
	return c
}

// applyNewlineMarkers attaches NoNewlineOld/NoNewlineNew to whichever
// operation produced each side's terminal line. If the two buffers are
// identical in content and no chunk exists to carry the marker (P8-style
// identity, but with differing trailing-newline state), it synthesizes a
// minimal one-line Remove/Add chunk so the asymmetry can be represented.
func applyNewlineMarkers(chunks []Chunk, oldLines, newLines []string, oldNL, newNL bool) []Chunk {
	n, m := len(oldLines), len(newLines)
	if oldNL && newNL {
		return chunks
	}
	if n == 0 && m == 0 {
		return chunks
	}

	if len(chunks) == 0 {
		if oldNL == newNL {
			return chunks
		}
		text := ""
		oldStart, newStart := 0, 0
		if n > 0 {
			text = oldLines[n-1]
			oldStart = n - 1
		}
		if m > 0 {
			text = newLines[m-1]
			newStart = m - 1
		}
		return []Chunk{{
			OldStart: oldStart,
			OldLines: 1,
			NewStart: newStart,
			NewLines: 1,
			Operations: []Operation{
				{Kind: OpRemove, Text: text, NoNewlineOld: !oldNL},
				{Kind: OpAdd, Text: text, NoNewlineNew: !newNL},
			},
		}}
	}

	if n > 0 && !oldNL {
		markTerminalOld(chunks, n-1)
	}
	if m > 0 && !newNL {
		markTerminalNew(chunks, m-1)
	}
	return chunks
}

func markTerminalOld(chunks []Chunk, idx int) {
	for ci := len(chunks) - 1; ci >= 0; ci-- {
		c := &chunks[ci]
		if idx < c.OldStart || idx >= c.OldEnd() {
			continue
		}
		pos := c.OldStart
		for oi := range c.Operations {
			op := &c.Operations[oi]
			if op.Kind == OpAdd {
				continue
			}
			if pos == idx {
				op.NoNewlineOld = true
				return
			}
			pos++
		}
		return
	}
}

func markTerminalNew(chunks []Chunk, idx int) {
	for ci := len(chunks) - 1; ci >= 0; ci-- {
		c := &chunks[ci]
		if idx < c.NewStart || idx >= c.NewEnd() {
			continue
		}
		pos := c.NewStart
		for oi := range c.Operations {
			op := &c.Operations[oi]
			if op.Kind == OpRemove {
				continue
			}
			if pos == idx {
				op.NoNewlineNew = true
				return
			}
			pos++
		}
		return
	}
}
