package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// Profile is the external identity returned by the provider after a
// successful code exchange
type Profile struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider is the capability interface for the OAuth collaborator
type Provider interface {
	// AuthCodeURL returns the provider URL to redirect the user to
	AuthCodeURL(state string) string

	// ExchangeAuthCode trades an authorization code for the external
	// profile of the authenticated user
	ExchangeAuthCode(ctx context.Context, code string) (*Profile, error)
}

// Compile-time interface satisfaction check.
var _ Provider = (*GitHubProvider)(nil)

// GitHubProvider implements Provider against the GitHub OAuth application
// flow
type GitHubProvider struct {
	config *oauth2.Config
	apiURL string
}

// NewGitHubProvider creates a provider for a registered GitHub OAuth app
func NewGitHubProvider(clientID, clientSecret, redirectURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		apiURL: "https://api.github.com/user",
	}
}

// NewGitHubProviderForTesting creates a provider pointed at a stand-in
// server for both the token endpoint and the user API
func NewGitHubProviderForTesting(clientID, clientSecret, tokenURL, apiURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  tokenURL,
				TokenURL: tokenURL,
			},
		},
		apiURL: apiURL,
	}
}

// AuthCodeURL returns the provider URL to redirect the user to
func (p *GitHubProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeAuthCode trades the authorization code for an access token and
// fetches the authenticated user's profile
func (p *GitHubProvider) ExchangeAuthCode(ctx context.Context, code string) (*Profile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	client := p.config.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building profile request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile request returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}
