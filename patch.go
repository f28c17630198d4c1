package diff

// Patch describes the changes needed to turn one file's OLD content into
// its NEW content.
type Patch struct {
	// Preamble holds any free-text header lines (e.g. `diff --git ...`,
	// `index ...`) that preceded the `--- `/`+++ ` headers, preserved
	// verbatim for round-tripping. It is not interpreted.
	Preamble []string

	// OldFile and NewFile are the paths as they appear on the `---`/`+++`
	// lines, with any leading a/ or b/ prefix and trailing timestamp
	// stripped. "/dev/null" means "no such file" on that side.
	OldFile string
	NewFile string

	// Chunks are ordered by increasing OldStart; they never overlap.
	Chunks []Chunk
}

// MultifilePatch is an ordered bundle of per-file Patches, in input order.
type MultifilePatch struct {
	Files []Patch
}

const devNull = "/dev/null"

// IsCreation reports whether p represents the creation of NewFile from
// nothing.
func (p *Patch) IsCreation() bool { return p.OldFile == devNull }

// IsDeletion reports whether p represents the deletion of OldFile.
func (p *Patch) IsDeletion() bool { return p.NewFile == devNull }
