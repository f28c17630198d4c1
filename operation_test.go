package diff_test

import (
	"testing"

	diff "github.com/fwojciec/godiff"
	"github.com/stretchr/testify/assert"
)

func TestOpKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind diff.OpKind
		want string
	}{
		{diff.OpContext, " "},
		{diff.OpAdd, "+"},
		{diff.OpRemove, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
