// Command godiff is a thin CLI wrapper over the diff engine: diff two
// files, apply a patch, or page through a multi-file patch in the
// terminal. The CLI is an external collaborator, not part of the engine
// proper — it exists to prove the library's entry points are usable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "godiff",
		Short: "Compute and apply unified diffs",
	}
	root.AddCommand(newDiffCmd(), newApplyCmd(), newViewCmd())
	return root
}
