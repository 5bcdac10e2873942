// Package flow drives the interactive commands: choosing, creating and
// deleting branches, and confirming what a bare "reset" should discard.
//
// Declining a confirmation or backing out of a prompt ends the flow with
// "Cancelled." and a nil error; it is a normal outcome. Nothing resumes
// a cancelled flow.
package flow

import (
	"context"

	"github.com/raphi011/supgit/internal/git"
	"github.com/raphi011/supgit/internal/output"
	"github.com/raphi011/supgit/internal/ui/prompt"
)

// Prompter asks the user questions. prompt.Terminal is the production
// implementation.
type Prompter interface {
	Select(title string, options []string) (prompt.SelectResult, error)
	Confirm(question string) (prompt.ConfirmResult, error)
	TextInput(title, placeholder string) (prompt.TextInputResult, error)
}

// Controller runs the interactive flows against one repository.
type Controller struct {
	gw     git.Gateway
	repo   *git.Repo
	prompt Prompter
}

// New returns a Controller issuing invocations through gw.
func New(gw git.Gateway, p Prompter) *Controller {
	return &Controller{gw: gw, repo: git.NewRepo(gw), prompt: p}
}

// confirm asks a yes/no question; cancelling counts as no.
func (c *Controller) confirm(question string) (bool, error) {
	res, err := c.prompt.Confirm(question)
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

func cancelled(ctx context.Context) error {
	output.FromContext(ctx).Cancelled()
	return nil
}
