package plan

import "github.com/raphi011/supgit/internal/command"

// ResetScope selects which kinds of changes a reset discards.
type ResetScope struct {
	Unstage         bool // move staged changes back to the working tree
	DiscardTracked  bool // revert edits to tracked files
	RemoveUntracked bool // delete untracked files and directories
}

// Empty reports whether the scope selects nothing.
func (s ResetScope) Empty() bool {
	return !s.Unstage && !s.DiscardTracked && !s.RemoveUntracked
}

// ScopeOf maps the reset modifiers onto the three kinds of change.
func ScopeOf(r command.Reset) ResetScope {
	return ResetScope{
		Unstage:         r.All || r.Staged,
		DiscardTracked:  r.All || r.Unstaged || r.Tracked,
		RemoveUntracked: r.All || r.Unstaged || r.Untracked,
	}
}

// ResetPrompt describes one kind of change for the interactive reset.
type ResetPrompt struct {
	Question string
	Select   func(*ResetScope)
}

// ResetPrompts lists the interactive questions in execution order.
var ResetPrompts = []ResetPrompt{
	{"Unstage all staged changes?", func(s *ResetScope) { s.Unstage = true }},
	{"Discard all changes to tracked files?", func(s *ResetScope) { s.DiscardTracked = true }},
	{"Remove all untracked files and directories?", func(s *ResetScope) { s.RemoveUntracked = true }},
}

// ResetPlan returns the steps for scope: unstage, then discard tracked
// edits, then remove untracked files. Each runs at most once.
func ResetPlan(scope ResetScope) Plan {
	var p Plan
	if scope.Unstage {
		p = append(p, Step{
			Args:    []string{"restore", "--staged", "."},
			Mode:    Silent,
			Message: "Unstaged all changes",
		})
	}
	if scope.DiscardTracked {
		p = append(p, Step{
			Args:    []string{"restore", "."},
			Mode:    Silent,
			Message: "Discarded changes to tracked files",
		})
	}
	if scope.RemoveUntracked {
		p = append(p, Step{
			Args:    []string{"clean", "-fd"},
			Mode:    Silent,
			Message: "Removed untracked files",
		})
	}
	return p
}
