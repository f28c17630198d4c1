package diff

// Chunk is a contiguous edit region: a run of Operations together with the
// 0-based position and line count each side spans, context included.
//
// Invariants (see spec §3):
//   - count of {OpContext, OpRemove} operations equals OldLines.
//   - count of {OpContext, OpAdd} operations equals NewLines.
//   - OpContext operations equal the corresponding lines of both OLD and
//     NEW at their positions.
type Chunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int

	Operations []Operation
}

// counts returns the observed (old, new) line counts implied by Operations,
// for validating against OldLines/NewLines.
func (c *Chunk) counts() (oldLines, newLines int) {
	for _, op := range c.Operations {
		switch op.Kind {
		case OpContext:
			oldLines++
			newLines++
		case OpRemove:
			oldLines++
		case OpAdd:
			newLines++
		}
	}
	return oldLines, newLines
}

// OldEnd returns the exclusive end index of the chunk's span in OLD.
func (c *Chunk) OldEnd() int { return c.OldStart + c.OldLines }

// NewEnd returns the exclusive end index of the chunk's span in NEW.
func (c *Chunk) NewEnd() int { return c.NewStart + c.NewLines }

// reversed returns a Chunk suitable for applying this one in reverse:
// Add and Remove swap kind (and which side's no-newline flag they carry),
// and the old/new spans swap.
func (c *Chunk) reversed() *Chunk {
	ops := make([]Operation, len(c.Operations))
	for i, op := range c.Operations {
		r := op
		switch op.Kind {
		case OpAdd:
			r.Kind = OpRemove
		case OpRemove:
			r.Kind = OpAdd
		}
		r.NoNewlineOld, r.NoNewlineNew = op.NoNewlineNew, op.NoNewlineOld
		ops[i] = r
	}
	return &Chunk{
		OldStart:   c.NewStart,
		OldLines:   c.NewLines,
		NewStart:   c.OldStart,
		NewLines:   c.OldLines,
		Operations: ops,
	}
}
