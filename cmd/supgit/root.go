package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/supgit/internal/config"
	"github.com/raphi011/supgit/internal/git"
	"github.com/raphi011/supgit/internal/log"
	"github.com/raphi011/supgit/internal/output"
	"github.com/raphi011/supgit/internal/ui/styles"
	"github.com/raphi011/supgit/internal/update"
)

// Command group IDs for organizing help output
const (
	GroupRepo    = "repo"
	GroupChanges = "changes"
	GroupRemote  = "remote"
	GroupSetup   = "setup"
)

// errNoSubcommand is returned when supgit runs without a command.
var errNoSubcommand = errors.New("'supgit' requires a subcommand; use --help to see the available list")

// errExplained stops the command after --explain printed its text.
var errExplained = errors.New("explained")

// annotNoGit marks commands (and their subcommands) that run without git.
const annotNoGit = "supgit/no-git"

var noGit = map[string]string{annotNoGit: "true"}

// needsGit reports whether cmd or one of its parents is not marked with
// annotNoGit. help and completion never need git.
func needsGit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotNoGit] == "true" {
			return false
		}
	}
	return true
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		explain bool
	)

	root := &cobra.Command{
		Use:   "supgit",
		Short: "Git with simplified workflows",
		Long: `supgit is a beginner-friendly front end for git.

Each command maps to one or more git invocations with sane defaults and
safety checks. Run 'supgit --explain' for a summary of every command.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if explain {
				printExplanation(output.FromContext(ctx).Writer())
				return errExplained
			}

			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), verbose, quiet))
			cmd.SetContext(ctx)

			if cmd == cmd.Root() || !needsGit(cmd) {
				return nil
			}
			if err := git.CheckGit(); err != nil {
				return err
			}

			notifyUpdate(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoSubcommand
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings and notices")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")
	root.PersistentFlags().BoolVar(&explain, "explain", false, "Explain what every command does")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupRepo, Title: "Repository Commands:"},
		&cobra.Group{ID: GroupChanges, Title: "Change Commands:"},
		&cobra.Group{ID: GroupRemote, Title: "Remote Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	root.AddCommand(
		newInitCmd(),
		newCloneCmd(),
		newStatusCmd(),
		newLogCmd(),
		newBranchCmd(),

		newStageCmd(),
		newUnstageCmd(),
		newDiffCmd(),
		newCommitCmd(),
		newResetCmd(),

		newPushCmd(),
		newPullCmd(),
		newSyncCmd(),

		newAliasCmd(),
		newUnaliasCmd(),
		newUpdateCmd(),
		newConfigCmd(),
	)

	return root
}

// notifyUpdate runs the periodic release check unless it is disabled.
func notifyUpdate(ctx context.Context) {
	cfg := config.FromContext(ctx)
	if !cfg.Update.Check {
		return
	}

	store, err := update.DefaultStore()
	if err != nil {
		log.FromContext(ctx).Debug("update check skipped", "error", err)
		return
	}
	update.Notify(ctx, &update.Checker{
		Current:  version,
		Source:   update.NewGitHubSource(ctx, os.Getenv("GITHUB_TOKEN")),
		Store:    store,
		Interval: cfg.Update.Interval,
	})
}

// Execute builds the root command, runs it and exits with status 1 on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load config; an invalid file falls back to defaults
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := styles.Init(cfg.UI.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	ctx = config.WithConfig(ctx, &cfg)

	// Primary output degrades ANSI styling on pipes and NO_COLOR
	stdout := colorprofile.NewWriter(os.Stdout, os.Environ())
	ctx = output.WithPrinter(ctx, stdout)
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	root := newRootCmd()
	root.SetContext(ctx)

	if err := root.Execute(); err != nil && !errors.Is(err, errExplained) {
		renderError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// renderError writes one "error: " line per link of err's wrap chain,
// outermost first.
func renderError(w io.Writer, err error) {
	for _, line := range errorChain(err) {
		fmt.Fprintf(w, "error: %s\n", line)
	}
}
