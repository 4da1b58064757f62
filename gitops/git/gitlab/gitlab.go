package gitlab

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/byte4ever/helpmerge/gitops/git"
)

const draftPrefix = "Draft: "

// Config holds the settings needed to open merge
// requests on GitLab.
type Config struct {
	// Host is the base URL of the GitLab instance.
	// Empty means "https://gitlab.com".
	Host string
	// Repo is the full project path
	// (e.g. "org/project").
	Repo string
	// AccessToken is a personal or project access
	// token.
	AccessToken string
	// RemoveSourceBranch deletes the head branch once
	// the merge request is merged.
	RemoveSourceBranch bool
}

// Provider opens merge requests on GitLab.
type Provider struct {
	client *gl.Client
	cfg    Config
}

// NewProvider validates cfg and returns a Provider.
func NewProvider(cfg Config) (*Provider, error) {
	const errCtx = "creating gitlab provider"

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("%s: access token must be set", errCtx)
	}

	if cfg.Repo == "" {
		return nil, fmt.Errorf("%s: repo must be set", errCtx)
	}

	if cfg.Host == "" {
		cfg.Host = "https://gitlab.com"
	}

	client, err := gl.NewClient(cfg.AccessToken, gl.WithBaseURL(cfg.Host))
	if err != nil {
		return nil, fmt.Errorf("%s: new client: %w", errCtx, err)
	}

	return &Provider{client: client, cfg: cfg}, nil
}

// NewRequest builds the API options for pr. Drafts are
// expressed through the title prefix GitLab recognises.
func (p *Provider) NewRequest(pr git.PullRequest) *gl.CreateMergeRequestOptions {
	title := pr.Title
	if pr.Draft {
		title = draftPrefix + title
	}

	body := pr.Body
	if body == "" {
		body = pr.Title
	}

	return &gl.CreateMergeRequestOptions{
		Title:              &title,
		Description:        &body,
		SourceBranch:       &pr.Head,
		TargetBranch:       &pr.Base,
		RemoveSourceBranch: &p.cfg.RemoveSourceBranch,
	}
}

// CreatePR opens a merge request for pr. An existing
// merge request for the same source branch (HTTP 409) is
// not an error.
func (p *Provider) CreatePR(ctx context.Context, pr git.PullRequest) error {
	const errCtx = "creating gitlab merge request"

	created, resp, err := p.client.MergeRequests.CreateMergeRequest(
		p.cfg.Repo, p.NewRequest(pr), gl.WithContext(ctx),
	)
	if err == nil {
		slog.Info("created merge request", "url", created.WebURL)

		return nil
	}

	if resp != nil && resp.StatusCode == http.StatusConflict {
		slog.Info("reusing existing merge request", "head", pr.Head)

		return nil
	}

	return fmt.Errorf("%s: %w", errCtx, err)
}
