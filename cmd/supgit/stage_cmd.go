package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

func newStageCmd() *cobra.Command {
	var all, tracked bool

	cmd := &cobra.Command{
		Use:     "stage [path...]",
		Short:   "Add changes to the staging area",
		Aliases: []string{"add"},
		GroupID: GroupChanges,
		Long: `Add changes to the staging area.

Without arguments, stages everything in the current directory.
--all stages every change in the repository including deletions,
--tracked stages modifications of files git already knows about.`,
		Example: `  supgit stage                 # stage the current directory
  supgit stage main.go docs/   # stage specific paths
  supgit stage --all
  supgit stage --tracked`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Stage{Targets: args, All: all, Tracked: tracked})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage all changes, including untracked files")
	cmd.Flags().BoolVarP(&tracked, "tracked", "t", false, "Stage changes to tracked files only")

	return cmd
}

func newUnstageCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "unstage [path...]",
		Short:   "Remove changes from the staging area",
		GroupID: GroupChanges,
		Long: `Remove changes from the staging area without touching the files.

Without arguments, unstages the current directory. --all unstages the whole
repository and cannot be combined with paths.`,
		Example: `  supgit unstage
  supgit unstage main.go
  supgit unstage --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Unstage{Targets: args, All: all})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Unstage everything")

	return cmd
}
