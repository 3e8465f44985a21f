package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner      = "nlpgym"
	defaultRepo       = "tagdrill"
	defaultAPIBaseURL = "https://api.github.com"
)

// Checker resolves and installs new releases from GitHub.
type Checker struct {
	client     *http.Client
	owner      string
	repo       string
	apiBaseURL string
	execPath   func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithBaseURL points the checker at a different API host (for tests).
func WithBaseURL(api string) Option {
	return func(c *Checker) {
		c.apiBaseURL = api
	}
}

// WithExecPath overrides how the running binary's path is resolved (for tests).
func WithExecPath(fn func() (string, error)) Option {
	return func(c *Checker) {
		c.execPath = fn
	}
}

// NewChecker creates a Checker for the tagdrill release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: 30 * time.Second},
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		execPath:   os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// release is the subset of the GitHub release payload the checker needs:
// the tag plus the download URL of every published asset.
type release struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name        string `json:"name"`
		DownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// assetURL returns the download URL of the named asset, or "" when the
// release does not publish it.
func (r *release) assetURL(name string) string {
	for _, a := range r.Assets {
		if a.Name == name {
			return a.DownloadURL
		}
	}
	return ""
}

// latestRelease fetches the most recent published release.
func (c *Checker) latestRelease(ctx context.Context) (*release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if rel.TagName == "" {
		return nil, fmt.Errorf("release from %s has no tag name", url)
	}
	return &rel, nil
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
}

// Check queries the latest release and compares semantic versions.
func (c *Checker) Check(ctx context.Context, currentVersion string) (*CheckResult, error) {
	rel, err := c.latestRelease(ctx)
	if err != nil {
		return nil, err
	}
	newer, err := isNewer(rel.TagName, currentVersion)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		UpdateAvailable: newer,
		CurrentVersion:  currentVersion,
		LatestVersion:   rel.TagName,
	}, nil
}

// isNewer reports whether tag is a strictly newer semantic version than
// current. A current version that does not parse counts as out of date.
func isNewer(tag, current string) (bool, error) {
	latest := canonicalVersion(tag)
	if !semver.IsValid(latest) {
		return false, fmt.Errorf("release tag %q is not a semantic version", tag)
	}
	cur := canonicalVersion(current)
	return !semver.IsValid(cur) || semver.Compare(latest, cur) > 0, nil
}

// canonicalVersion adds the "v" prefix semver.Compare expects.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
