package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	diff "github.com/fwojciec/godiff"
	"github.com/fwojciec/godiff/tui"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <patchfile>",
		Short: "Page through a multi-file patch in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			mp, errs := diff.ParseMultifile(string(data))
			for _, e := range errs {
				cmd.PrintErrln("warning:", e)
			}

			p := tea.NewProgram(tui.NewModel(mp), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
