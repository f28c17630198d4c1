package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	diff "github.com/fwojciec/godiff"
	"github.com/fwojciec/godiff/multifile"
)

func newApplyCmd() *cobra.Command {
	var reverse bool
	var strict bool
	var root string

	cmd := &cobra.Command{
		Use:   "apply <patchfile>",
		Short: "Apply a multi-file patch to a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			mp, errs := diff.ParseMultifile(string(data))
			for _, e := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e)
			}

			d := multifile.NewDriver(root)
			if reverse {
				d.Direction = diff.Reverse
			}
			if !strict {
				d.Strategy = diff.Fuzzy
			}

			results := d.Apply(cmd.Context(), mp)
			out := cmd.OutOrStdout()
			for _, r := range results {
				switch r.Kind {
				case multifile.ResultApplied:
					fmt.Fprintf(out, "applied %s\n", r.Path)
				case multifile.ResultDeleted:
					fmt.Fprintf(out, "deleted %s\n", r.Path)
				case multifile.ResultSkipped:
					fmt.Fprintf(out, "skipped %s (%s)\n", r.Path, r.Reason)
				case multifile.ResultFailed:
					fmt.Fprintf(cmd.ErrOrStderr(), "failed %s: %v\n", r.Path, r.Err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "apply in reverse (undo)")
	cmd.Flags().BoolVar(&strict, "strict", true, "use strict context matching instead of fuzzy")
	cmd.Flags().StringVar(&root, "root", ".", "root directory to apply against")
	return cmd
}
