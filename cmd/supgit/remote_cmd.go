package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

// remoteArgs reads the optional [remote] [branch] positional arguments.
func remoteArgs(args []string) (remote, branch string) {
	if len(args) > 0 {
		remote = args[0]
	}
	if len(args) > 1 {
		branch = args[1]
	}
	return remote, branch
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "push [remote] [branch]",
		Short:   "Send commits to a remote",
		GroupID: GroupRemote,
		Args:    cobra.MaximumNArgs(2),
		Long: `Send commits to a remote.

Without arguments, uses git's configured upstream.`,
		Example: `  supgit push
  supgit push origin
  supgit push origin main`,
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, branch := remoteArgs(args)
			return run(cmd.Context(), command.Push{Remote: remote, Branch: branch})
		},
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pull [remote] [branch]",
		Short:   "Fetch and merge from a remote",
		GroupID: GroupRemote,
		Args:    cobra.MaximumNArgs(2),
		Example: `  supgit pull
  supgit pull origin main`,
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, branch := remoteArgs(args)
			return run(cmd.Context(), command.Pull{Remote: remote, Branch: branch})
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sync [remote] [branch]",
		Short:   "Fetch, pull and push in one step",
		GroupID: GroupRemote,
		Args:    cobra.MaximumNArgs(2),
		Long: `Fetch, pull and push in one step.

A failing fetch is reported and the sync continues. A failing pull stops
the sync before anything is pushed.`,
		Example: `  supgit sync
  supgit sync origin main`,
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, branch := remoteArgs(args)
			return run(cmd.Context(), command.Sync{Remote: remote, Branch: branch})
		},
	}
}
