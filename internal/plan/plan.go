// Package plan translates simplified commands into ordered git invocations.
//
// Translation is pure: [Translator.Translate] validates a command and
// returns a [Plan] without touching git, so every option combination can
// be tested by inspecting the returned steps. [Run] then executes a plan
// through a git.Gateway, strictly in order.
package plan

import (
	"context"
	"strings"

	"github.com/raphi011/supgit/internal/git"
	"github.com/raphi011/supgit/internal/log"
	"github.com/raphi011/supgit/internal/output"
)

// Mode selects how a step's git output is handled.
type Mode int

const (
	// Stream shows git's own output.
	Stream Mode = iota
	// Silent hides git's stdout; the step's Message confirms instead.
	Silent
)

// Step is one git invocation.
type Step struct {
	Args    []string
	Mode    Mode
	Message string // printed with a check mark after success
	// Optional steps report failure as a warning and the plan carries on.
	Optional bool
}

// Line returns the argument list joined by spaces.
func (s Step) Line() string {
	return strings.Join(s.Args, " ")
}

// Plan is an ordered list of steps.
type Plan []Step

// Lines returns the joined argument list of every step.
func (p Plan) Lines() []string {
	lines := make([]string, len(p))
	for i, s := range p {
		lines[i] = s.Line()
	}
	return lines
}

// Run executes the steps of p in order. The first failing step that is not
// Optional stops the plan and its error is returned.
func Run(ctx context.Context, gw git.Gateway, p Plan) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	for _, step := range p {
		var err error
		switch step.Mode {
		case Silent:
			err = gw.InvokeSilent(ctx, step.Args...)
		default:
			err = gw.Invoke(ctx, step.Args...)
		}

		if err != nil {
			if step.Optional && ctx.Err() == nil {
				l.Warnf("%v; continuing", err)
				continue
			}
			return err
		}
		if step.Message != "" {
			out.Success("%s", step.Message)
		}
	}
	return nil
}
