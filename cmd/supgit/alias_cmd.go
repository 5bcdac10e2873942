package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/command"
)

func newAliasCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:         "alias",
		Short:       "Make 'git' run supgit in your shell",
		GroupID:     GroupSetup,
		Args:        cobra.NoArgs,
		Annotations: noGit,
		Long: `Add "alias git='supgit'" to your shell startup file.

The file is ~/.zshrc when $SHELL is zsh and ~/.bashrc otherwise. Override
it with alias.shell_config in the config file or SUPGIT_SHELL_CONFIG.
Running alias twice leaves the file unchanged.`,
		Example: `  supgit alias
  supgit alias --dry-run   # show the target file only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Alias{DryRun: dryRun})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without writing")

	return cmd
}

func newUnaliasCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:         "unalias",
		Short:       "Remove the 'git' alias from your shell",
		GroupID:     GroupSetup,
		Args:        cobra.NoArgs,
		Annotations: noGit,
		Example: `  supgit unalias
  supgit unalias --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), command.Unalias{DryRun: dryRun})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without writing")

	return cmd
}
