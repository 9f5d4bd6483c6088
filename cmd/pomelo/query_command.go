package main

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"pomelo/internal/library"
)

func newQueryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "query <glob>",
		Short: "Print entries whose relative path matches a glob",
		Long:  "Matches the glob against each entry's path relative to the output root and prints '<hash> <path>' per match to the error stream.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			if _, err := path.Match(pattern, ""); err != nil {
				return fmt.Errorf("bad glob %q: %w", pattern, err)
			}
			return ctx.withLibrary(func(lib *library.Library) error {
				errOut := cmd.ErrOrStderr()
				for _, entry := range lib.Entries() {
					ok, err := path.Match(pattern, filepath.ToSlash(entry.RelPath))
					if err != nil {
						return fmt.Errorf("bad glob %q: %w", pattern, err)
					}
					if ok {
						fmt.Fprintf(errOut, "%s %s\n", entry.Hash.Encode(), entry.RelPath)
					}
				}
				return nil
			})
		},
	}
}
