package git_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/raphi011/supgit/internal/git"
	"github.com/raphi011/supgit/internal/git/gittest"
)

func TestRepo_CurrentBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    gittest.Response
		want    string
		wantErr bool
	}{
		{"named branch", gittest.Response{Stdout: "main\n"}, "main", false},
		{"detached head", gittest.Response{Stdout: "HEAD\n"}, "", false},
		{"no commits", gittest.Response{Stderr: "fatal: ambiguous argument 'HEAD'", ExitCode: 128}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := gittest.NewRecorder().On("rev-parse --abbrev-ref HEAD", tt.resp)
			got, err := git.NewRepo(rec).CurrentBranch(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("CurrentBranch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, git.ErrNoCurrentBranch) {
				t.Errorf("CurrentBranch() error = %v, want ErrNoCurrentBranch", err)
			}
			if got != tt.want {
				t.Errorf("CurrentBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepo_Branches(t *testing.T) {
	t.Parallel()

	rec := gittest.NewRecorder().On("branch --format=%(refname:short)", gittest.Response{
		Stdout: "feature/login\nmain\n\nrelease-1.0\n",
	})
	got, err := git.NewRepo(rec).Branches(context.Background())
	if err != nil {
		t.Fatalf("Branches() error = %v", err)
	}
	want := []string{"feature/login", "main", "release-1.0"}
	if !slices.Equal(got, want) {
		t.Errorf("Branches() = %v, want %v", got, want)
	}
}

func TestRepo_BranchSet_UnbornHead(t *testing.T) {
	t.Parallel()

	rec := gittest.NewRecorder().
		On("branch --format=%(refname:short)", gittest.Response{Stdout: ""}).
		Fail("rev-parse --abbrev-ref HEAD", "fatal: ambiguous argument 'HEAD'")

	set, err := git.NewRepo(rec).BranchSet(context.Background())
	if err != nil {
		t.Fatalf("BranchSet() error = %v", err)
	}
	if set.Current != "" {
		t.Errorf("Current = %q, want empty", set.Current)
	}
	if len(set.Names) != 0 {
		t.Errorf("Names = %v, want none", set.Names)
	}
}

func TestBranchSet_Others(t *testing.T) {
	t.Parallel()

	set := git.BranchSet{Names: []string{"dev", "main", "topic"}, Current: "main"}
	if got, want := set.Others(), []string{"dev", "topic"}; !slices.Equal(got, want) {
		t.Errorf("Others() = %v, want %v", got, want)
	}
	if !set.Contains("topic") || set.Contains("nope") {
		t.Error("Contains() disagrees with Names")
	}
}

func TestRepo_IsInsideRepo(t *testing.T) {
	t.Parallel()

	inside := gittest.NewRecorder().On("rev-parse --is-inside-work-tree", gittest.Response{Stdout: "true\n"})
	if !git.NewRepo(inside).IsInsideRepo(context.Background()) {
		t.Error("IsInsideRepo() = false inside a work tree")
	}

	bare := gittest.NewRecorder().On("rev-parse --is-inside-work-tree", gittest.Response{Stdout: "false\n"})
	if git.NewRepo(bare).IsInsideRepo(context.Background()) {
		t.Error("IsInsideRepo() = true in a bare repository")
	}

	outside := gittest.NewRecorder().Fail("rev-parse --is-inside-work-tree", "fatal: not a git repository")
	if git.NewRepo(outside).IsInsideRepo(context.Background()) {
		t.Error("IsInsideRepo() = true outside a repository")
	}
}

func TestToolError_Message(t *testing.T) {
	t.Parallel()

	err := &git.ToolError{
		Args:     []string{"branch", "-d", "topic"},
		ExitCode: 1,
		Status:   "exit status 1",
		Stderr:   "error: the branch 'topic' is not fully merged",
	}
	want := "git branch -d topic failed with exit status 1: error: the branch 'topic' is not fully merged"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
