package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

func newStatusCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show staged and unstaged changes",
		Aliases: []string{"st"},
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Example: `  supgit status
  supgit status --short   # compact, with branch info (git status -sb)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Status{Short: short})
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Compact output")

	return cmd
}

func newLogCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show recent commits",
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `Show recent commits with decorations.

The number of commits is set by log.short_count and log.long_count in the
config file (20 and 40 by default).`,
		Example: `  supgit log
  supgit log --short   # one line per commit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Log{Short: short})
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "One line per commit")

	return cmd
}

func newDiffCmd() *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:     "diff [path]",
		Short:   "Show changes",
		GroupID: GroupChanges,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show changes in the working tree.

With --staged, shows what the next commit will contain. --staged takes
precedence over a path.`,
		Example: `  supgit diff
  supgit diff src/main.go
  supgit diff --staged`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := command.Diff{Staged: staged}
			if len(args) == 1 {
				c.Path = args[0]
			}
			return run(cmd.Context(), c)
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Show staged changes")

	return cmd
}
