package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
	"github.com/raphi011/supgit/internal/update"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "update",
		Short:       "Install the latest supgit release",
		GroupID:     GroupSetup,
		Args:        cobra.NoArgs,
		Annotations: noGit,
		Long: `Install the latest supgit release with 'go install ` + update.InstallTarget() + `'.

supgit also checks for a newer release once a day and prints a notice.
Disable the check with update.check = false in the config file or by
setting SUPGIT_SKIP_UPDATE_CHECK.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Update{})
		},
	}
}
