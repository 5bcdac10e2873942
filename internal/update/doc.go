// Package update checks for newer supgit releases and installs them.
//
// The automatic check runs before most commands at most once per
// configured interval. It is best effort: a failing lookup, an unreadable
// timestamp or a missing network never changes the outcome of the command
// the user asked for. The timestamp of the last check lives behind the
// [Store] interface so that callers and tests can swap the file-backed
// default.
package update
