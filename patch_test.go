package diff_test

import (
	"testing"

	diff "github.com/fwojciec/godiff"
	"github.com/stretchr/testify/assert"
)

func TestPatchIsCreationDeletion(t *testing.T) {
	t.Parallel()

	creation := diff.Patch{OldFile: "/dev/null", NewFile: "new.txt"}
	assert.True(t, creation.IsCreation())
	assert.False(t, creation.IsDeletion())

	deletion := diff.Patch{OldFile: "old.txt", NewFile: "/dev/null"}
	assert.False(t, deletion.IsCreation())
	assert.True(t, deletion.IsDeletion())

	modification := diff.Patch{OldFile: "a.txt", NewFile: "a.txt"}
	assert.False(t, modification.IsCreation())
	assert.False(t, modification.IsDeletion())
}
