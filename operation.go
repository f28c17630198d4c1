package diff

// OpKind identifies the role a line plays within a Chunk.
type OpKind int

// Operation kinds.
const (
	// OpContext marks a line present, unchanged, on both sides.
	OpContext OpKind = iota
	// OpAdd marks a line present only on the new side.
	OpAdd
	// OpRemove marks a line present only on the old side.
	OpRemove
)

// String renders the unified-diff prefix character for the kind.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpRemove:
		return "-"
	default:
		return " "
	}
}

// Operation is one line of a Chunk: its role and its literal content,
// without the terminating LF.
//
// NoNewlineOld/NoNewlineNew mark that this operation produced the terminal
// line of, respectively, the old or new side's source buffer, and that
// buffer had no trailing newline. NoNewlineOld is only meaningful on
// OpRemove and OpContext operations (they are the ones that produce an old
// side line); NoNewlineNew is only meaningful on OpAdd and OpContext. A
// Context operation can carry both at once when it is the final line of
// both buffers and neither had a trailing newline, or only one when the
// buffers agree on content there but disagree on trailing-newline state.
type Operation struct {
	Kind         OpKind
	Text         string
	NoNewlineOld bool
	NoNewlineNew bool
}
