package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Initialize a git repository",
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `Initialize a git repository in the current directory.

Runs 'git init' quietly and confirms when done.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Init{})
		},
	}
}
