package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo reports whether the gateway's working directory is inside a
// git work tree.
func (r *Repo) IsInsideRepo(ctx context.Context) bool {
	out, err := r.gw.InvokeCaptured(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out.Stdout) == "true"
}
