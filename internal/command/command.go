// Package command defines the simplified commands supgit understands.
//
// [Command] is a closed sum type: every supgit subcommand has exactly one
// struct here carrying only its own options. The CLI layer constructs a
// value once per run; everything downstream switches on the concrete type.
package command

// Command is implemented only by the types in this package.
type Command interface {
	// Name is the subcommand name as typed by the user.
	Name() string
	sealed()
}

// Init creates a repository in the current directory.
type Init struct{}

// Stage adds changes to the index.
type Stage struct {
	Targets []string
	All     bool // tracked and untracked, including deletions
	Tracked bool // tracked files only
}

// Unstage removes changes from the index, keeping the working tree.
type Unstage struct {
	Targets []string
	All     bool
}

// Status shows the working tree status.
type Status struct {
	Short bool
}

// Log shows recent history.
type Log struct {
	Short bool
}

// Diff shows changes. Staged takes precedence over Path.
type Diff struct {
	Path   string
	Staged bool
}

// Reset discards changes. With no modifier set the user is asked about
// each kind of change in turn.
type Reset struct {
	All       bool
	Staged    bool
	Unstaged  bool
	Tracked   bool
	Untracked bool
}

// None reports whether no modifier is set.
func (r Reset) None() bool {
	return !r.All && !r.Staged && !r.Unstaged && !r.Tracked && !r.Untracked
}

// Branch switches, creates or deletes branches. With neither Create nor
// Delete set it runs interactively.
type Branch struct {
	Create string
	Delete string
}

// Push sends commits to a remote.
type Push struct {
	Remote string
	Branch string
}

// Pull fetches and merges from a remote.
type Pull struct {
	Remote string
	Branch string
}

// Sync runs fetch, pull and push in sequence.
type Sync struct {
	Remote string
	Branch string
}

// Commit records staged changes, optionally staging and pushing.
type Commit struct {
	Message  string
	All      bool
	Staged   bool
	Unstaged bool
	Push     bool
	Amend    bool
	NoVerify bool
}

// Clone copies a repository and changes into it.
type Clone struct {
	URL       string
	Directory string
}

// Update reinstalls supgit at the latest version.
type Update struct{}

// Alias installs the git alias into the shell configuration.
type Alias struct {
	DryRun bool
}

// Unalias removes the git alias from the shell configuration.
type Unalias struct {
	DryRun bool
}

func (Init) Name() string    { return "init" }
func (Stage) Name() string   { return "stage" }
func (Unstage) Name() string { return "unstage" }
func (Status) Name() string  { return "status" }
func (Log) Name() string     { return "log" }
func (Diff) Name() string    { return "diff" }
func (Reset) Name() string   { return "reset" }
func (Branch) Name() string  { return "branch" }
func (Push) Name() string    { return "push" }
func (Pull) Name() string    { return "pull" }
func (Sync) Name() string    { return "sync" }
func (Commit) Name() string  { return "commit" }
func (Clone) Name() string   { return "clone" }
func (Update) Name() string  { return "update" }
func (Alias) Name() string   { return "alias" }
func (Unalias) Name() string { return "unalias" }

func (Init) sealed()    {}
func (Stage) sealed()   {}
func (Unstage) sealed() {}
func (Status) sealed()  {}
func (Log) sealed()     {}
func (Diff) sealed()    {}
func (Reset) sealed()   {}
func (Branch) sealed()  {}
func (Push) sealed()    {}
func (Pull) sealed()    {}
func (Sync) sealed()    {}
func (Commit) sealed()  {}
func (Clone) sealed()   {}
func (Update) sealed()  {}
func (Alias) sealed()   {}
func (Unalias) sealed() {}

// RequiresRepo reports whether c may only run inside a git work tree.
// Creating or cloning a repository, updating supgit and editing the shell
// configuration all work anywhere.
func RequiresRepo(c Command) bool {
	switch c.(type) {
	case Init, Clone, Update, Alias, Unalias:
		return false
	default:
		return true
	}
}
