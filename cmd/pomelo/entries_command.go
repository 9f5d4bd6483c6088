package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pomelo/internal/library"
)

func newEntriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "List every file the library knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				out := cmd.OutOrStdout()
				entries := lib.Entries()

				if !isTerminal(out) {
					for _, entry := range entries {
						fmt.Fprintf(out, "%s %s\n", entry.Hash.Encode(), entry.RelPath)
					}
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{entry.Hash.Encode(), entry.RelPath})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"HASH", "PATH"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				fmt.Fprintf(out, "%d entries\n", len(entries))
				return nil
			})
		},
	}
}
