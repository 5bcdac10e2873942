// Package cmd provides helpers for executing external commands with proper error handling.
//
// Every helper takes a [context.Context] carrying the logger; in verbose
// mode each command line is echoed to stderr along with its duration.
//
// # Modes
//
//   - [StreamContext]: stdin/stdout/stderr inherited (git output shown as-is)
//   - [RunContext]: stdout discarded, stderr captured into the error
//   - [OutputContext]: stdout returned, stderr captured into the error
//   - [CaptureContext]: both streams returned, even on failure
//
// A command that runs and exits non-zero yields an [*ExitError] carrying the
// arguments, the exit code and the captured stderr.
//
// # Design Notes
//
// supgit shells out to the git CLI rather than using a Go git library so
// that the user's configuration (hooks, credential helpers, aliases,
// signing) applies exactly as if they had typed the git command.
package cmd
