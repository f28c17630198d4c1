package diff

import "fmt"

// Kind identifies the category of a parse or apply failure (spec §7).
type Kind int

// Error kinds.
const (
	// MalformedHeader means a `---`/`+++`/`@@` line could not be parsed.
	MalformedHeader Kind = iota
	// ChunkCountMismatch means a chunk's `@@` header declared line counts
	// that do not match the lines its operations actually span.
	ChunkCountMismatch
	// UnknownOperation means a chunk body line did not start with a
	// recognized prefix character (' ', '+', '-').
	UnknownOperation
	// ChunkOutOfBounds means a chunk's recorded OldStart/OldLines does not
	// fit within the target buffer.
	ChunkOutOfBounds
	// ContextMismatch means a chunk's context or removed lines did not
	// match the target buffer at the expected anchor (strict apply only).
	ContextMismatch
	// CannotLocateChunk means fuzzy apply could not find any anchor
	// scoring above the acceptance threshold.
	CannotLocateChunk
)

// String names the Kind the way the teacher's enums render themselves.
func (k Kind) String() string {
	switch k {
	case MalformedHeader:
		return "malformed header"
	case ChunkCountMismatch:
		return "chunk count mismatch"
	case UnknownOperation:
		return "unknown operation"
	case ChunkOutOfBounds:
		return "chunk out of bounds"
	case ContextMismatch:
		return "context mismatch"
	case CannotLocateChunk:
		return "cannot locate chunk"
	default:
		return "unknown error"
	}
}

// Error is a structured diff/patch failure. Positional fields are filled in
// as available for the Kind and left at their zero value otherwise.
type Error struct {
	Kind Kind

	// Line is the 1-based source line the failure was detected at, when
	// applicable (MalformedHeader, UnknownOperation).
	Line int

	// Path is the file path a chunk was being applied to, when known.
	Path string

	// Anchor is the 0-based line index a ContextMismatch or
	// ChunkOutOfBounds was detected at.
	Anchor int

	// Declared and Observed carry a chunk's line count as stated in its
	// header versus the count its parsed operations span, for
	// ChunkCountMismatch: the old side's counts when those differ,
	// otherwise the new side's.
	Declared int
	Observed int

	// Header is the raw malformed header text, for MalformedHeader.
	Header string

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MalformedHeader:
		if e.Line > 0 {
			return fmt.Sprintf("diff: malformed header at line %d: %q", e.Line, e.Header)
		}
		return fmt.Sprintf("diff: malformed header: %q", e.Header)
	case ChunkCountMismatch:
		return fmt.Sprintf("diff: chunk count mismatch: declared %d, observed %d", e.Declared, e.Observed)
	case UnknownOperation:
		return fmt.Sprintf("diff: unknown operation at line %d", e.Line)
	case ChunkOutOfBounds:
		return fmt.Sprintf("diff: chunk out of bounds for %q at line %d", e.Path, e.Anchor)
	case ContextMismatch:
		return fmt.Sprintf("diff: context mismatch for %q at line %d", e.Path, e.Anchor)
	case CannotLocateChunk:
		return fmt.Sprintf("diff: cannot locate chunk for %q near line %d", e.Path, e.Anchor)
	default:
		return "diff: error"
	}
}

func (e *Error) Unwrap() error { return e.Err }
