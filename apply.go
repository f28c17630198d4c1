package diff

// Direction selects which side of a Patch is being reconstructed.
type Direction int

// Directions.
const (
	// Forward reconstructs NEW from OLD.
	Forward Direction = iota
	// Reverse reconstructs OLD from NEW.
	Reverse
)

// Strategy selects how a chunk's anchor is located in the source buffer.
type Strategy int

// Strategies.
const (
	// Fuzzy searches a window around the expected anchor and scores
	// candidates by similarity. This is the default.
	Fuzzy Strategy = iota
	// Strict requires the exact expected anchor and exact content.
	Strict
)

// ApplyOptions configures a single Apply call.
type ApplyOptions struct {
	Strategy  Strategy
	Direction Direction

	// SearchRadius bounds the fuzzy window on each side of the expected
	// anchor. Zero value falls back to 50 (see DefaultApplyOptions).
	SearchRadius int
	// MinAggregateScore is the minimum average per-line score (across a
	// chunk's considered lines) for a fuzzy anchor to be accepted.
	MinAggregateScore float64
}

// DefaultApplyOptions returns Fuzzy/Forward with the conventional window
// and threshold (±50 lines, 0.6 aggregate).
func DefaultApplyOptions() ApplyOptions {
	return ApplyOptions{
		Strategy:          Fuzzy,
		Direction:         Forward,
		SearchRadius:      50,
		MinAggregateScore: 0.6,
	}
}

// Apply reconstructs the other side of p against content, per opts.
func Apply(content string, p *Patch, opts ApplyOptions) (string, error) {
	lines, endsNL := SplitLines(content)
	i := 0
	var out []string
	var finalOp *Operation

	for ci := range p.Chunks {
		effective := &p.Chunks[ci]
		if opts.Direction == Reverse {
			effective = effective.reversed()
		}

		var anchor int
		var err error
		if opts.Strategy == Strict {
			anchor, err = strictFindAnchor(lines, i, effective)
		} else {
			anchor, err = fuzzyFindAnchor(lines, i, effective, opts)
		}
		if err != nil {
			setPath(err, p)
			return "", err
		}

		out = append(out, lines[i:anchor]...)

		consumed, chunkOut, err := walkChunk(lines, anchor, effective.Operations, opts.Strategy == Strict)
		if err != nil {
			setPath(err, p)
			return "", err
		}
		out = append(out, chunkOut...)
		i = anchor + consumed

		for k := len(effective.Operations) - 1; k >= 0; k-- {
			if effective.Operations[k].Kind != OpRemove {
				last := effective.Operations[k]
				finalOp = &last
				break
			}
		}
	}

	if i < len(lines) {
		out = append(out, lines[i:]...)
		finalOp = nil
	}

	outEndsNL := endsNL
	if finalOp != nil {
		outEndsNL = !finalOp.NoNewlineNew
	}

	return JoinLines(out, outEndsNL), nil
}

func setPath(err error, p *Patch) {
	if e, ok := err.(*Error); ok && e.Path == "" {
		e.Path = p.NewFile
	}
}

// walkChunk applies ops anchored at a against lines, returning the number
// of source lines consumed and the output lines produced. In strict mode
// every Context/Remove line must match the source exactly.
func walkChunk(lines []string, a int, ops []Operation, strict bool) (int, []string, error) {
	pos := a
	var out []string
	for _, op := range ops {
		switch op.Kind {
		case OpContext, OpRemove:
			if pos >= len(lines) {
				return 0, nil, &Error{Kind: ChunkOutOfBounds, Anchor: a}
			}
			if strict && lines[pos] != op.Text {
				return 0, nil, &Error{Kind: ContextMismatch, Anchor: pos}
			}
			if op.Kind == OpContext {
				out = append(out, op.Text)
			}
			pos++
		case OpAdd:
			out = append(out, op.Text)
		}
	}
	return pos - a, out, nil
}
