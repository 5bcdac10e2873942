package update

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/mod/semver"
	"golang.org/x/oauth2"

	"github.com/raphi011/supgit/internal/log"
)

// Release coordinates on GitHub.
const (
	Owner      = "raphi011"
	Repository = "supgit"
	ModulePath = "github.com/raphi011/supgit"
)

// lookupTimeout bounds the release lookup of the automatic check.
const lookupTimeout = 3 * time.Second

// ReleaseSource returns the tag of the newest published release.
type ReleaseSource interface {
	LatestVersion(ctx context.Context) (string, error)
}

// GitHubSource reads releases through the GitHub API.
type GitHubSource struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubSource returns a source for the supgit repository. An empty
// token uses unauthenticated requests, which GitHub rate-limits harder.
func NewGitHubSource(ctx context.Context, token string) *GitHubSource {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}
	return &GitHubSource{client: github.NewClient(hc), owner: Owner, repo: Repository}
}

// LatestVersion returns the tag name of the latest release.
func (s *GitHubSource) LatestVersion(ctx context.Context) (string, error) {
	rel, _, err := s.client.Repositories.GetLatestRelease(ctx, s.owner, s.repo)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	return rel.GetTagName(), nil
}

// Result is the outcome of a check.
type Result struct {
	Current string
	Latest  string // empty when unknown
	Checked bool   // false when the interval had not elapsed
}

// Newer reports whether Latest is a newer version than Current.
// Development builds never report a newer version.
func (r Result) Newer() bool {
	cur, latest := canonical(r.Current), canonical(r.Latest)
	if cur == "" || latest == "" {
		return false
	}
	return semver.Compare(latest, cur) > 0
}

// canonical returns v with a leading "v" when it is valid semver, else "".
func canonical(v string) string {
	if v == "" {
		return ""
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// Checker performs the periodic release check.
type Checker struct {
	Current  string
	Source   ReleaseSource
	Store    Store
	Interval time.Duration
	Now      func() time.Time
}

// Check looks up the latest release unless the last check is more recent
// than the interval. The timestamp is recorded before the lookup so that
// a failing lookup is not retried on every invocation.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	res := Result{Current: c.Current}

	if err := c.Store.Init(); err != nil {
		return res, fmt.Errorf("init update store: %w", err)
	}
	last, err := c.Store.Read()
	if err != nil {
		return res, fmt.Errorf("read last update check: %w", err)
	}

	now := c.now()
	if !last.CheckedAt.IsZero() && now.Sub(last.CheckedAt) < c.Interval {
		res.Latest = last.Latest
		return res, nil
	}

	stamp := Stamp{CheckedAt: now, Latest: last.Latest}
	if err := c.Store.Write(stamp); err != nil {
		return res, fmt.Errorf("record update check: %w", err)
	}
	res.Checked = true

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	latest, err := c.Source.LatestVersion(ctx)
	if err != nil {
		res.Latest = last.Latest
		return res, err
	}
	res.Latest = latest

	stamp.Latest = latest
	if err := c.Store.Write(stamp); err != nil {
		return res, fmt.Errorf("record update check: %w", err)
	}
	return res, nil
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Notify runs the check and prints a notice when a newer release exists.
// Errors are logged in verbose mode only.
func Notify(ctx context.Context, c *Checker) {
	l := log.FromContext(ctx)

	res, err := c.Check(ctx)
	if err != nil {
		l.Debug("update check failed", "error", err)
	}
	if res.Newer() {
		l.Printf("A new supgit release is available: %s (current %s). Run 'supgit update' to install it.\n",
			res.Latest, res.Current)
	}
}
