package diff

// strictFindAnchor implements the "Naive"/strict strategy: the actual
// anchor is always exactly the expected anchor (§4.5 i).
func strictFindAnchor(lines []string, i int, c *Chunk) (int, error) {
	expected := c.OldStart
	if expected < i || expected+c.OldLines > len(lines) {
		return 0, &Error{Kind: ChunkOutOfBounds, Anchor: expected}
	}
	return expected, nil
}
