package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"

	"pomelo/internal/library"
)

func newTreeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Render the library's entries as a directory tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library.Library) error {
				entries := lib.Entries()
				paths := make([]string, 0, len(entries))
				for _, entry := range entries {
					paths = append(paths, entry.RelPath)
				}
				sort.Strings(paths)

				root := gotree.New(filepath.Base(lib.Root()))
				dirs := map[string]gotree.Tree{".": root}
				for _, p := range paths {
					treeDir(dirs, filepath.Dir(p)).Add(filepath.Base(p))
				}

				fmt.Fprint(cmd.OutOrStdout(), root.Print())
				return nil
			})
		},
	}
}

func treeDir(dirs map[string]gotree.Tree, dirPath string) gotree.Tree {
	if node, ok := dirs[dirPath]; ok {
		return node
	}
	parent := treeDir(dirs, filepath.Dir(dirPath))
	node := parent.Add(filepath.Base(dirPath))
	dirs[dirPath] = node
	return node
}
