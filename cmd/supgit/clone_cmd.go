package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
	"github.com/raphi011/supgit/internal/config"
)

func newCloneCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "clone <url> [directory]",
		Short:   "Clone a repository and change into it",
		GroupID: GroupRepo,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Clone a repository with 'git clone'.

The new directory is the given one, or the last part of the URL without
".git". Its absolute path is printed afterwards.`,
		Example: `  supgit clone https://github.com/org/repo.git
  supgit clone git@github.com:org/repo.git work/repo
  supgit clone --copy https://github.com/org/repo.git  # copy the path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := command.Clone{URL: args[0]}
			if len(args) > 1 {
				c.Directory = args[1]
			}

			a := newApp(config.FromContext(ctx))
			a.copyPath = copyToClipboard
			return a.dispatch(ctx, c)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the cloned directory to the clipboard")

	return cmd
}
