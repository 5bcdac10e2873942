package main

import (
	"fmt"
	"io"
)

// explanations is printed by --explain, one entry per command in help order.
var explanations = []struct{ name, text string }{
	{"init", "initialize a git repository (runs `git init`)."},
	{"clone", "clone a repository and print the path of the new directory (`--copy` copies it)."},
	{"status", "show what is staged vs unstaged (`--short` uses `git status -sb`)."},
	{"log", "view history (`--short` shows one line per commit)."},
	{"branch", "list and switch branches interactively; -c <name> creates, -d <name> deletes a branch."},
	{"stage", "add files to the staging area (the current directory, paths, or --all/--tracked)."},
	{"unstage", "remove staged files safely (the current directory, paths, or --all)."},
	{"diff", "compare working changes (`--staged` shows what will be committed)."},
	{"commit", "make commits; `--all` stages everything, `--unstaged` stages only modified tracked files, `--push` runs `git push`, `--amend` rewrites the last commit, and `--no-verify` skips hooks."},
	{"reset", "discard changes (interactive, or use --all/--staged/--unstaged/--tracked/--untracked)."},
	{"push", "send commits to your remote (uses git's defaults unless you pass a remote and branch)."},
	{"pull", "fetch + merge from your remote repository."},
	{"sync", "fetch, pull, and push in one command; a failed fetch is reported and skipped."},
	{"alias", "add a 'git' alias pointing to supgit in your shell config."},
	{"unalias", "remove the 'git' alias from your shell config."},
	{"update", "update supgit to the latest release via `go install`."},
	{"config", "create or show ~/.config/supgit/config.toml."},
}

func printExplanation(w io.Writer) {
	fmt.Fprintln(w, "supgit simplifies git for beginners by wrapping each major workflow:")
	fmt.Fprintln(w)
	for _, e := range explanations {
		fmt.Fprintf(w, "  %-8s %s\n", e.name, e.text)
	}
}
