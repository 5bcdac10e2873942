// Package git runs the git binary on behalf of supgit.
//
// All operations call the git CLI through [os/exec] rather than a Go git
// library, so hooks, credential helpers and user configuration apply
// unchanged.
//
// # Gateway
//
// [Gateway] is the only way the rest of supgit touches git. [Shell] is the
// real implementation; the gittest subpackage provides a recording double.
// Three modes are offered:
//
//   - [Gateway.Invoke]: git's output goes straight to the terminal
//   - [Gateway.InvokeSilent]: git's stdout is dropped, the caller confirms
//   - [Gateway.InvokeCaptured]: both streams are returned for inspection
//
// A non-zero exit becomes a [*ToolError] with the argument list and exit
// status. Nothing here retries.
//
// # Repository Queries
//
// [Repo] derives the facts supgit decides on:
//
//   - [Repo.CurrentBranch]: abbreviated HEAD, [ErrNoCurrentBranch] on failure
//   - [Repo.Branches]: local branch names in listing order
//   - [Repo.BranchSet]: both, recomputed on every call
//   - [Repo.IsInsideRepo]: the precondition for most commands
package git
