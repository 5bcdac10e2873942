package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoCurrentBranch is returned when HEAD cannot be resolved, e.g. in a
// repository without commits.
var ErrNoCurrentBranch = errors.New("cannot determine current branch")

// Repo answers questions about the repository in the gateway's directory.
type Repo struct {
	gw Gateway
}

// NewRepo returns a Repo querying through gw.
func NewRepo(gw Gateway) *Repo {
	return &Repo{gw: gw}
}

// BranchSet is a snapshot of the local branches.
type BranchSet struct {
	Names   []string // git's listing order
	Current string   // empty when detached or unborn
}

// Contains reports whether name is a local branch.
func (b BranchSet) Contains(name string) bool {
	return slices.Contains(b.Names, name)
}

// Others returns every branch except the current one, in listing order.
func (b BranchSet) Others() []string {
	others := make([]string, 0, len(b.Names))
	for _, name := range b.Names {
		if name != b.Current {
			others = append(others, name)
		}
	}
	return others
}

// CurrentBranch returns the abbreviated name of HEAD.
// Returns "" for a detached HEAD.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.gw.InvokeCaptured(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoCurrentBranch, err)
	}
	branch := strings.TrimSpace(out.Stdout)
	if branch == "HEAD" {
		return "", nil
	}
	return branch, nil
}

// Branches lists local branch names in git's native order.
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	out, err := r.gw.InvokeCaptured(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	var names []string
	for _, line := range strings.Split(out.Stdout, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// BranchSet lists local branches and resolves the current one. A HEAD that
// cannot be resolved counts as no current branch.
func (r *Repo) BranchSet(ctx context.Context) (BranchSet, error) {
	names, err := r.Branches(ctx)
	if err != nil {
		return BranchSet{}, err
	}
	current, err := r.CurrentBranch(ctx)
	if err != nil {
		current = ""
	}
	return BranchSet{Names: names, Current: current}, nil
}
