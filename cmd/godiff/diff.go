package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	diff "github.com/fwojciec/godiff"
)

func newDiffCmd() *cobra.Command {
	var algorithm string
	var context int

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compute a unified diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldBytes, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			newBytes, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			opts := diff.DefaultOptions()
			opts.Context = context
			switch algorithm {
			case "myers":
				opts.Algorithm = diff.Myers
			case "naive":
				opts.Algorithm = diff.Naive
			case "similar":
				opts.Algorithm = diff.SimilarAlg
			case "xdiff", "":
				opts.Algorithm = diff.XDiff
			default:
				return fmt.Errorf("unknown algorithm %q", algorithm)
			}

			patch := diff.Build(string(oldBytes), string(newBytes), opts)
			patch.OldFile = args[0]
			patch.NewFile = args[1]

			fmt.Fprint(cmd.OutOrStdout(), diff.Serialize(patch))
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "xdiff", "diff algorithm: xdiff, myers, naive, similar")
	cmd.Flags().IntVar(&context, "context", 3, "number of context lines")
	return cmd
}
