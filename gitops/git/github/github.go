package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v68/github"

	"github.com/byte4ever/helpmerge/gitops/git"
)

// Config holds the settings needed to open pull
// requests on GitHub.
type Config struct {
	// RepoOwner owns the repository the pull request
	// targets.
	RepoOwner string
	// Repo is the target repository name.
	Repo string
	// AccessToken authenticates the API calls.
	AccessToken string
	// EnterpriseHost is an optional GitHub Enterprise
	// hostname. Leave empty for github.com.
	EnterpriseHost string
	// HeadOwner owns the fork holding the head branch.
	// Empty means the head branch lives in the target
	// repository.
	HeadOwner string
	// MaintainerCanModify lets maintainers of the
	// target repository push to the head branch.
	MaintainerCanModify bool
}

// Provider opens pull requests on GitHub.
type Provider struct {
	client *gh.Client
	cfg    Config
}

// NewProvider validates cfg and returns a Provider.
func NewProvider(cfg Config) (*Provider, error) {
	const errCtx = "creating github provider"

	switch {
	case cfg.RepoOwner == "":
		return nil, fmt.Errorf("%s: repo owner must be set", errCtx)
	case cfg.Repo == "":
		return nil, fmt.Errorf("%s: repo must be set", errCtx)
	case cfg.AccessToken == "":
		return nil, fmt.Errorf("%s: access token must be set", errCtx)
	}

	client := gh.NewClient(nil).WithAuthToken(cfg.AccessToken)

	if cfg.EnterpriseHost != "" {
		var err error

		client, err = client.WithEnterpriseURLs(
			"https://"+cfg.EnterpriseHost+"/api/v3/",
			"https://"+cfg.EnterpriseHost+"/api/uploads/",
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: enterprise urls: %w", errCtx, err,
			)
		}
	}

	return &Provider{client: client, cfg: cfg}, nil
}

// NewRequest builds the API payload for pr.
func (p *Provider) NewRequest(pr git.PullRequest) *gh.NewPullRequest {
	head := pr.Head
	if p.cfg.HeadOwner != "" {
		head = p.cfg.HeadOwner + ":" + pr.Head
	}

	body := pr.Body
	if body == "" {
		body = pr.Title
	}

	return &gh.NewPullRequest{
		Title:               gh.Ptr(pr.Title),
		Head:                gh.Ptr(head),
		Base:                gh.Ptr(pr.Base),
		Body:                gh.Ptr(body),
		MaintainerCanModify: gh.Ptr(p.cfg.MaintainerCanModify),
		Draft:               gh.Ptr(pr.Draft),
	}
}

// alreadyExistsMsg starts the validation error GitHub
// returns for a duplicate head and base.
const alreadyExistsMsg = "A pull request already exists"

// CreatePR opens pr. An existing pull request for the
// same head and base is not an error. Other validation
// failures are.
func (p *Provider) CreatePR(ctx context.Context, pr git.PullRequest) error {
	const errCtx = "creating github pull request"

	created, resp, err := p.client.PullRequests.Create(
		ctx, p.cfg.RepoOwner, p.cfg.Repo, p.NewRequest(pr),
	)
	if err == nil {
		slog.Info("created pull request", "url", created.GetHTMLURL())

		return nil
	}

	if alreadyExists(resp, err) {
		slog.Info("reusing existing pull request", "head", pr.Head)

		return nil
	}

	if resp != nil && resp.Body != nil {
		defer resp.Body.Close() //nolint:errcheck

		if rb, readErr := io.ReadAll(resp.Body); readErr == nil {
			slog.Warn("github response", "body", string(rb))
		}
	}

	return fmt.Errorf("%s: %w", errCtx, err)
}

func alreadyExists(resp *gh.Response, err error) bool {
	if resp == nil ||
		resp.StatusCode != http.StatusUnprocessableEntity {
		return false
	}

	var er *gh.ErrorResponse
	if !errors.As(err, &er) {
		return false
	}

	for _, e := range er.Errors {
		if strings.HasPrefix(e.Message, alreadyExistsMsg) {
			return true
		}
	}

	return strings.Contains(er.Message, alreadyExistsMsg)
}
