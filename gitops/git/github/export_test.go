package github

import "net/url"

// NewProviderWithBaseURL returns a Provider talking to
// baseURL, for tests against a local server.
func NewProviderWithBaseURL(cfg Config, baseURL string) (*Provider, error) {
	p, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	p.client.BaseURL = u

	return p, nil
}
