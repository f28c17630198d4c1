package diff_test

import (
	"testing"

	diff "github.com/fwojciec/godiff"
	"github.com/stretchr/testify/assert"
)

func TestChunkEnds(t *testing.T) {
	t.Parallel()

	c := diff.Chunk{OldStart: 5, OldLines: 3, NewStart: 7, NewLines: 4}
	assert.Equal(t, 8, c.OldEnd())
	assert.Equal(t, 11, c.NewEnd())
}
