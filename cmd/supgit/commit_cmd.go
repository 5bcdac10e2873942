package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

func newCommitCmd() *cobra.Command {
	var c command.Commit

	cmd := &cobra.Command{
		Use:     "commit -m <message>",
		Short:   "Record staged changes",
		GroupID: GroupChanges,
		Args:    cobra.NoArgs,
		Long: `Record staged changes in a new commit.

  --all       stage every change first (git add -A)
  --unstaged  stage modified tracked files first (git add -u)
  --staged    commit only what is already staged
  --push      push after committing
  --amend     rewrite the last commit
  --no-verify skip the commit hooks

A message is always required, including with --amend.`,
		Example: `  supgit commit -m "Fix typo"
  supgit commit --all -m "Add feature" --push
  supgit commit --amend -m "Fix typo in README"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), c)
		},
	}

	cmd.Flags().StringVarP(&c.Message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&c.All, "all", "a", false, "Stage all changes before committing")
	cmd.Flags().BoolVar(&c.Staged, "staged", false, "Commit only staged changes")
	cmd.Flags().BoolVarP(&c.Unstaged, "unstaged", "u", false, "Stage modified tracked files before committing")
	cmd.Flags().BoolVarP(&c.Push, "push", "p", false, "Push after committing")
	cmd.Flags().BoolVar(&c.Amend, "amend", false, "Amend the previous commit")
	cmd.Flags().BoolVar(&c.NoVerify, "no-verify", false, "Skip pre-commit and commit-msg hooks")

	return cmd
}
