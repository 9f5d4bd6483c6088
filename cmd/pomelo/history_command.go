package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pomelo/internal/history"
	"pomelo/internal/library"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded import runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				store, err := history.Open(lib.MetaRoot())
				if err != nil {
					return fmt.Errorf("open import journal: %w", err)
				}
				defer store.Close()

				sessions, err := store.ListSessions(cmd.Context(), limit)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(sessions) == 0 {
					fmt.Fprintln(out, "No import runs recorded yet.")
					return nil
				}

				rows := make([][]string, 0, len(sessions))
				for _, session := range sessions {
					rows = append(rows, []string{
						session.StartedAt.Local().Format(time.DateTime),
						session.FinishedAt.Sub(session.StartedAt).Round(time.Millisecond).String(),
						session.Policy,
						strconv.Itoa(session.Scanned),
						strconv.Itoa(session.NewFiles),
						strconv.Itoa(session.Placed),
						session.ErrorText,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"STARTED", "DURATION", "POLICY", "SCANNED", "NEW", "PLACED", "ERROR"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	return cmd
}
