package git

import "context"

// PullRequest describes a pull request to open.
type PullRequest struct {
	// Head is the branch holding the changes.
	Head string
	// Base is the branch the changes go into.
	Base string
	// Title is the pull request title.
	Title string
	// Body is the description. Providers use Title
	// when it is empty.
	Body string
	// Draft opens the pull request as a draft where
	// the platform supports it.
	Draft bool
}

// GitProvider opens pull requests on a git hosting
// platform.
type GitProvider interface {
	CreatePR(ctx context.Context, pr PullRequest) error
}

// GitProviderFunc adapts a plain function to the
// GitProvider interface.
type GitProviderFunc func(ctx context.Context, pr PullRequest) error

// CreatePR delegates to the wrapped function, filling an
// empty body with the title.
func (f GitProviderFunc) CreatePR(
	ctx context.Context,
	pr PullRequest,
) error {
	if pr.Body == "" {
		pr.Body = pr.Title
	}

	return f(ctx, pr)
}
