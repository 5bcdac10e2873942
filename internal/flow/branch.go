package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/supgit/internal/git"
	"github.com/raphi011/supgit/internal/output"
	"github.com/raphi011/supgit/internal/plan"
)

// NotFullyMergedSignal is the text git prints when "branch -d" refuses an
// unmerged branch. Matching on human-readable output is fragile: it breaks
// if git changes the wording or runs under a translated locale.
const NotFullyMergedSignal = "not fully merged"

// Entries appended after the branch names in the selection list.
const (
	createEntry = "Create new branch..."
	deleteEntry = "Delete a branch..."
)

// Branch lets the user switch to a branch, create one or delete one.
func (c *Controller) Branch(ctx context.Context) error {
	set, err := c.repo.BranchSet(ctx)
	if err != nil {
		return err
	}

	options := make([]string, 0, len(set.Names)+2)
	for _, name := range set.Names {
		if name == set.Current {
			name += " (current)"
		}
		options = append(options, name)
	}
	options = append(options, createEntry, deleteEntry)

	res, err := c.prompt.Select("Select a branch to checkout", options)
	if err != nil {
		return err
	}
	if res.Cancelled {
		return cancelled(ctx)
	}

	switch res.Index {
	case len(set.Names):
		return c.create(ctx)
	case len(set.Names) + 1:
		return c.deleteInteractive(ctx, set)
	}

	selected := set.Names[res.Index]
	if selected == set.Current {
		output.FromContext(ctx).Printf("Already on branch '%s'.\n", selected)
		return nil
	}
	return plan.Run(ctx, c.gw, plan.Checkout(selected))
}

func (c *Controller) create(ctx context.Context) error {
	res, err := c.prompt.TextInput("New branch name", "feature/my-change")
	if err != nil {
		return err
	}
	if res.Cancelled {
		return cancelled(ctx)
	}

	p, err := plan.CreateBranch(plan.NormalizeBranchName(res.Value))
	if err != nil {
		return err
	}
	return plan.Run(ctx, c.gw, p)
}

// DeleteInteractive lets the user pick a branch other than the current one
// and deletes it after confirmation.
func (c *Controller) DeleteInteractive(ctx context.Context) error {
	set, err := c.repo.BranchSet(ctx)
	if err != nil {
		return err
	}
	return c.deleteInteractive(ctx, set)
}

func (c *Controller) deleteInteractive(ctx context.Context, set git.BranchSet) error {
	deletable := set.Others()
	if len(deletable) == 0 {
		return plan.Precondition("no branches available to delete (cannot delete current branch)")
	}

	res, err := c.prompt.Select("Select a branch to delete", deletable)
	if err != nil {
		return err
	}
	if res.Cancelled {
		return cancelled(ctx)
	}
	branch := deletable[res.Index]

	ok, err := c.confirm(fmt.Sprintf("Delete branch '%s'?", branch))
	if err != nil {
		return err
	}
	if !ok {
		return cancelled(ctx)
	}
	return c.delete(ctx, branch)
}

// DeleteNamed deletes the named branch. The current branch is refused
// before the branch list is consulted.
func (c *Controller) DeleteNamed(ctx context.Context, name string) error {
	name, err := plan.ValidateBranchName(name)
	if err != nil {
		return err
	}

	current, err := c.repo.CurrentBranch(ctx)
	if err != nil {
		current = ""
	}
	if name == current {
		return plan.Precondition("cannot delete the current branch '%s'; switch to another branch first", name)
	}

	branches, err := c.repo.Branches(ctx)
	if err != nil {
		return err
	}
	set := git.BranchSet{Names: branches, Current: current}
	if !set.Contains(name) {
		if suggestion := closest(name, set.Others()); suggestion != "" {
			return plan.Invalid("branch '%s' does not exist (did you mean '%s'?)", name, suggestion)
		}
		return plan.Invalid("branch '%s' does not exist", name)
	}
	return c.delete(ctx, name)
}

// delete tries a safe delete and offers a forced one when git reports the
// branch as not fully merged.
func (c *Controller) delete(ctx context.Context, branch string) error {
	out, err := c.gw.InvokeCaptured(ctx, "branch", "-d", branch)
	if err == nil {
		output.FromContext(ctx).Success("Deleted branch '%s'", branch)
		return nil
	}

	var toolErr *git.ToolError
	if !errors.As(err, &toolErr) || !strings.Contains(out.Stderr, NotFullyMergedSignal) {
		return fmt.Errorf("failed to delete branch '%s': %w", branch, err)
	}

	ok, err := c.confirm(fmt.Sprintf("Branch '%s' is not fully merged. Force delete?", branch))
	if err != nil {
		return err
	}
	if !ok {
		return cancelled(ctx)
	}

	if err := c.gw.InvokeSilent(ctx, "branch", "-D", branch); err != nil {
		return err
	}
	output.FromContext(ctx).Success("Force deleted branch '%s'", branch)
	return nil
}

// closest returns the best fuzzy match for name among candidates, or "".
func closest(name string, candidates []string) string {
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
