package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
	"github.com/raphi011/supgit/internal/plan"
)

func newBranchCmd() *cobra.Command {
	var create, del string

	cmd := &cobra.Command{
		Use:     "branch",
		Short:   "Switch, create or delete branches",
		Aliases: []string{"br"},
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `Switch, create or delete branches.

Without flags, lists the local branches to switch to, with entries to
create or delete a branch. Deleting a branch that is not fully merged asks
before forcing the delete.`,
		Example: `  supgit branch                   # interactive
  supgit branch -c feature/login   # create and switch
  supgit branch -d feature/login   # delete`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A flag given with an empty value is an invalid name, not a
			// request for the interactive mode.
			for _, f := range []struct {
				name, value string
			}{{"create", create}, {"delete", del}} {
				if cmd.Flags().Changed(f.name) {
					if _, err := plan.ValidateBranchName(f.value); err != nil {
						return err
					}
				}
			}
			return run(cmd.Context(), command.Branch{Create: create, Delete: del})
		},
	}

	cmd.Flags().StringVarP(&create, "create", "c", "", "Create a branch and switch to it")
	cmd.Flags().StringVarP(&del, "delete", "d", "", "Delete a branch")
	cmd.MarkFlagsMutuallyExclusive("create", "delete")

	return cmd
}
