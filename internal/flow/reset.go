package flow

import (
	"context"

	"github.com/raphi011/supgit/internal/plan"
)

// Reset asks about each kind of change in turn and discards the ones the
// user agreed to. Declining everything issues no invocation.
func (c *Controller) Reset(ctx context.Context) error {
	var scope plan.ResetScope
	for _, q := range plan.ResetPrompts {
		ok, err := c.confirm(q.Question)
		if err != nil {
			return err
		}
		if ok {
			q.Select(&scope)
		}
	}

	if scope.Empty() {
		return cancelled(ctx)
	}
	return plan.Run(ctx, c.gw, plan.ResetPlan(scope))
}
