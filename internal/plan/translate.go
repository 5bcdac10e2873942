package plan

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/raphi011/supgit/internal/command"
)

// Default log lengths.
const (
	DefaultLogShort = 20
	DefaultLogLong  = 40
)

// Translator turns git-backed commands into plans.
type Translator struct {
	LogShort int // entries shown by "log --short"
	LogLong  int // entries shown by "log"
}

// NewTranslator returns a Translator with the default log lengths.
func NewTranslator() *Translator {
	return &Translator{LogShort: DefaultLogShort, LogLong: DefaultLogLong}
}

// Interactive reports whether c is resolved by the interactive flows
// instead of a static plan: branch without an option, branch deletion
// (which needs the branch list) and reset without a modifier.
func Interactive(c command.Command) bool {
	switch c := c.(type) {
	case command.Branch:
		return c.Create == ""
	case command.Reset:
		return c.None()
	default:
		return false
	}
}

// Translate validates c and returns the git invocations it stands for.
// Validation errors are returned before any step is built.
func (t *Translator) Translate(c command.Command) (Plan, error) {
	switch c := c.(type) {
	case command.Init:
		return Plan{{Args: []string{"init"}, Mode: Silent, Message: "Initialized Git repository"}}, nil
	case command.Stage:
		return stage(c)
	case command.Unstage:
		return unstage(c)
	case command.Status:
		if c.Short {
			return single("status", "-sb"), nil
		}
		return single("status"), nil
	case command.Log:
		if c.Short {
			return single("log", "--oneline", "--decorate", "-n", strconv.Itoa(t.LogShort)), nil
		}
		return single("log", "--decorate", "-n", strconv.Itoa(t.LogLong)), nil
	case command.Diff:
		switch {
		case c.Staged:
			return single("diff", "--staged"), nil
		case c.Path != "":
			return single("diff", c.Path), nil
		default:
			return single("diff"), nil
		}
	case command.Reset:
		if c.None() {
			return nil, errInteractive(c)
		}
		return ResetPlan(ScopeOf(c)), nil
	case command.Branch:
		if c.Create == "" {
			return nil, errInteractive(c)
		}
		return CreateBranch(c.Create)
	case command.Push:
		args, err := remoteArgs("push", c.Remote, c.Branch)
		if err != nil {
			return nil, err
		}
		return single(args...), nil
	case command.Pull:
		args, err := remoteArgs("pull", c.Remote, c.Branch)
		if err != nil {
			return nil, err
		}
		return single(args...), nil
	case command.Sync:
		return sync(c)
	case command.Commit:
		return commit(c)
	case command.Clone:
		return clone(c)
	default:
		return nil, fmt.Errorf("%s does not translate to git invocations", c.Name())
	}
}

func errInteractive(c command.Command) error {
	return fmt.Errorf("%s without options runs interactively", c.Name())
}

func single(args ...string) Plan {
	return Plan{{Args: args, Mode: Stream}}
}

func targetsOrDot(targets []string) []string {
	if len(targets) == 0 {
		return []string{"."}
	}
	return targets
}

func stage(c command.Stage) (Plan, error) {
	if c.All && c.Tracked {
		return nil, Invalid("cannot combine --all with --tracked")
	}

	var args []string
	var msg string
	switch {
	case c.All:
		args = append([]string{"add", "-A"}, c.Targets...)
		msg = "Staged all changes"
	case c.Tracked:
		args = append([]string{"add", "-u"}, c.Targets...)
		msg = "Staged changes to tracked files"
	default:
		args = append([]string{"add"}, targetsOrDot(c.Targets)...)
		msg = "Staged changes in the current directory"
		if len(c.Targets) > 0 {
			msg = "Staged " + strings.Join(c.Targets, " ")
		}
	}
	if (c.All || c.Tracked) && len(c.Targets) > 0 {
		msg += " in " + strings.Join(c.Targets, " ")
	}
	return Plan{{Args: args, Mode: Silent, Message: msg}}, nil
}

func unstage(c command.Unstage) (Plan, error) {
	if c.All && len(c.Targets) > 0 {
		return nil, Invalid("cannot combine --all with paths")
	}
	msg := "Unstaged changes in the current directory"
	if len(c.Targets) > 0 {
		msg = "Unstaged " + strings.Join(c.Targets, " ")
	}
	return Plan{{
		Args:    append([]string{"restore", "--staged"}, targetsOrDot(c.Targets)...),
		Mode:    Silent,
		Message: msg,
	}}, nil
}

// remoteArgs appends remote and branch positionally. A branch needs a
// remote to be unambiguous.
func remoteArgs(verb, remote, branch string) ([]string, error) {
	if branch != "" && remote == "" {
		return nil, Invalid("cannot specify a branch without a remote")
	}
	args := []string{verb}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}
	return args, nil
}

// sync fetches, pulls and pushes. A failed fetch is only reported since
// pull fetches again; a failed pull stops the plan before push.
func sync(c command.Sync) (Plan, error) {
	pull, err := remoteArgs("pull", c.Remote, c.Branch)
	if err != nil {
		return nil, err
	}
	push, _ := remoteArgs("push", c.Remote, c.Branch)

	fetch := []string{"fetch"}
	if c.Remote != "" {
		fetch = append(fetch, c.Remote)
	}

	return Plan{
		{Args: fetch, Mode: Stream, Optional: true},
		{Args: pull, Mode: Stream},
		{Args: push, Mode: Stream, Message: "Sync complete"},
	}, nil
}

func commit(c command.Commit) (Plan, error) {
	if c.Staged && (c.All || c.Unstaged) {
		return nil, Invalid("cannot combine --staged with --all or --unstaged")
	}
	if c.All && c.Unstaged {
		return nil, Invalid("cannot combine --all with --unstaged")
	}
	msg := strings.TrimSpace(c.Message)
	if msg == "" {
		return nil, Invalid("commit message cannot be empty; pass it with -m")
	}

	var p Plan
	switch {
	case c.All:
		p = append(p, Step{Args: []string{"add", "-A"}, Mode: Silent})
	case c.Unstaged:
		p = append(p, Step{Args: []string{"add", "-u"}, Mode: Silent})
	}

	args := []string{"commit"}
	if c.Amend {
		args = append(args, "--amend")
	}
	if c.NoVerify {
		args = append(args, "--no-verify")
	}
	args = append(args, "-m", c.Message)

	step := Step{Args: args, Mode: Stream}
	if c.All {
		step.Message = "All tracked and untracked files staged, commit complete."
	}
	p = append(p, step)

	if c.Push {
		p = append(p, Step{Args: []string{"push"}, Mode: Stream})
	}
	return p, nil
}

func clone(c command.Clone) (Plan, error) {
	if strings.TrimSpace(c.URL) == "" {
		return nil, Invalid("clone requires a repository URL")
	}
	args := []string{"clone", c.URL}
	if c.Directory != "" {
		args = append(args, c.Directory)
	}
	return Plan{{Args: args, Mode: Stream}}, nil
}

// CloneDir returns the directory git clone creates for c: the explicit
// directory, or the last segment of the URL without ".git".
func CloneDir(c command.Clone) string {
	if c.Directory != "" {
		return c.Directory
	}
	u := strings.TrimRight(strings.TrimSpace(c.URL), "/")
	u = strings.TrimSuffix(u, "/.git")
	if i := strings.LastIndexAny(u, "/:"); i >= 0 {
		u = u[i+1:]
	}
	return strings.TrimSuffix(path.Base(u), ".git")
}
