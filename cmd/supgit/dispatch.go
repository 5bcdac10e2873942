package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/raphi011/supgit/internal/command"
	"github.com/raphi011/supgit/internal/config"
	"github.com/raphi011/supgit/internal/flow"
	"github.com/raphi011/supgit/internal/git"
	"github.com/raphi011/supgit/internal/log"
	"github.com/raphi011/supgit/internal/output"
	"github.com/raphi011/supgit/internal/plan"
	"github.com/raphi011/supgit/internal/shellrc"
	"github.com/raphi011/supgit/internal/ui/prompt"
	"github.com/raphi011/supgit/internal/update"
)

// app routes a parsed command to the plan runner, the interactive flows,
// the shell config editor or the updater.
type app struct {
	gw          git.Gateway
	prompt      flow.Prompter
	translator  *plan.Translator
	shellConfig string // alias target override; empty detects from $SHELL
	chdir       func(string) error
	install     update.Installer

	copyPath  bool // clone: copy the new directory to the clipboard
	clipboard func(string) error
}

// newApp wires the production collaborators for cfg.
func newApp(cfg *config.Config) *app {
	return &app{
		gw:     git.NewShell(),
		prompt: prompt.Terminal{},
		translator: &plan.Translator{
			LogShort: cfg.Log.ShortCount,
			LogLong:  cfg.Log.LongCount,
		},
		shellConfig: cfg.Alias.ShellConfig,
		chdir:       os.Chdir,
		clipboard:   clipboard.WriteAll,
	}
}

// run dispatches c with the app built from the context's config.
func run(ctx context.Context, c command.Command) error {
	return newApp(config.FromContext(ctx)).dispatch(ctx, c)
}

func (a *app) dispatch(ctx context.Context, c command.Command) error {
	if command.RequiresRepo(c) && !git.NewRepo(a.gw).IsInsideRepo(ctx) {
		return plan.ErrNotInRepo
	}

	switch c := c.(type) {
	case command.Update:
		return update.SelfUpdate(ctx, version, a.install)
	case command.Alias:
		return a.alias(ctx, c)
	case command.Unalias:
		return a.unalias(ctx, c)
	case command.Clone:
		return a.clone(ctx, c)
	}

	if plan.Interactive(c) {
		return a.interactive(ctx, c)
	}

	p, err := a.translator.Translate(c)
	if err != nil {
		return err
	}
	return plan.Run(ctx, a.gw, p)
}

func (a *app) interactive(ctx context.Context, c command.Command) error {
	ctl := flow.New(a.gw, a.prompt)

	switch c := c.(type) {
	case command.Branch:
		if c.Delete != "" {
			return ctl.DeleteNamed(ctx, c.Delete)
		}
		return ctl.Branch(ctx)
	case command.Reset:
		return ctl.Reset(ctx)
	default:
		return fmt.Errorf("%s has no interactive mode", c.Name())
	}
}

// clone runs the clone plan and changes into the new directory. The
// directory change only lasts for this process, so the path is printed
// for the user to follow.
func (a *app) clone(ctx context.Context, c command.Clone) error {
	p, err := a.translator.Translate(c)
	if err != nil {
		return err
	}
	if err := plan.Run(ctx, a.gw, p); err != nil {
		return err
	}

	dir, err := filepath.Abs(plan.CloneDir(c))
	if err != nil {
		return err
	}
	if err := a.chdir(dir); err != nil {
		return fmt.Errorf("change into %s: %w", dir, err)
	}

	out := output.FromContext(ctx)
	out.Success("Cloned into %s", dir)
	out.Printf("  Run 'cd %s' to start working in it.\n", dir)

	if a.copyPath {
		if err := a.clipboard(dir); err != nil {
			log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
		} else {
			out.Println("  Path copied to clipboard.")
		}
	}
	return nil
}

func (a *app) alias(ctx context.Context, c command.Alias) error {
	path, err := shellrc.Resolve(a.shellConfig)
	if err != nil {
		return err
	}
	out := output.FromContext(ctx)

	if c.DryRun {
		out.Printf("Would add alias to: %s\n", path)
		out.Println("Alias: git -> supgit")
		return nil
	}

	res, err := shellrc.Install(path)
	if err != nil {
		return err
	}
	if res == shellrc.AlreadyInstalled {
		out.Printf("Alias already exists in %s\n", path)
		return nil
	}
	out.Success("Added 'git' alias to %s", path)
	out.Printf("  Run 'source %s' or start a new shell for changes to take effect.\n", path)
	return nil
}

func (a *app) unalias(ctx context.Context, c command.Unalias) error {
	path, err := shellrc.Resolve(a.shellConfig)
	if err != nil {
		return err
	}
	out := output.FromContext(ctx)

	if c.DryRun {
		out.Printf("Would remove alias from: %s\n", path)
		return nil
	}

	res, err := shellrc.Uninstall(path)
	if err != nil {
		return err
	}
	if res == shellrc.NotInstalled {
		out.Printf("No alias found in %s\n", path)
		return nil
	}
	out.Success("Removed 'git' alias from %s", path)
	out.Printf("  Run 'source %s' or start a new shell for changes to take effect.\n", path)
	return nil
}
