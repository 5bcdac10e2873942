package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

func newResetCmd() *cobra.Command {
	var r command.Reset

	cmd := &cobra.Command{
		Use:     "reset",
		Short:   "Discard changes",
		GroupID: GroupChanges,
		Args:    cobra.NoArgs,
		Long: `Discard changes in the working tree or staging area.

Without flags, asks about each kind of change in turn: staged changes,
edits to tracked files, untracked files. Nothing is discarded unless
confirmed.

  --staged     unstage everything (git restore --staged .)
  --tracked    discard edits to tracked files (git restore .)
  --untracked  remove untracked files and directories (git clean -fd)
  --unstaged   --tracked and --untracked together
  --all        all of the above`,
		Example: `  supgit reset            # interactive
  supgit reset --staged
  supgit reset --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), r)
		},
	}

	cmd.Flags().BoolVarP(&r.All, "all", "a", false, "Discard staged, tracked and untracked changes")
	cmd.Flags().BoolVar(&r.Staged, "staged", false, "Unstage all staged changes")
	cmd.Flags().BoolVar(&r.Unstaged, "unstaged", false, "Discard tracked edits and untracked files")
	cmd.Flags().BoolVar(&r.Tracked, "tracked", false, "Discard edits to tracked files")
	cmd.Flags().BoolVar(&r.Untracked, "untracked", false, "Remove untracked files and directories")

	return cmd
}
