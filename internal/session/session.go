package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"filmoteca/internal/shared"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

// User is the identity reported by the provider's userinfo endpoint.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is a read-only snapshot of the session state as seen by the rest of
// the application.
type Session struct {
	Authenticated bool
	User          *User
	Err           error
}

// Provider wraps an Auth0-style OAuth2 tenant: authorization code flow for
// login, an opaque token source for silent token acquisition, and a userinfo
// lookup for identity.
type Provider struct {
	config     *oauth2.Config
	store      *Store
	logger     *log.Logger
	domain     string
	audience   string
	httpClient *http.Client
}

// ProviderOpts contains the dependencies for creating a [Provider].
type ProviderOpts struct {
	Auth       shared.AuthConfig
	Audience   string
	Store      *Store
	Logger     *log.Logger
	HTTPClient *http.Client
}

// NewProvider creates a session provider for the configured tenant.
func NewProvider(opts ProviderOpts) (*Provider, error) {
	if opts.Auth.Domain == "" || opts.Auth.ClientID == "" {
		return nil, fmt.Errorf("%w: auth.domain and auth.client_id must be set", shared.ErrMissingCredentials)
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("%w: session store is required", shared.ErrInvalidConfig)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	redirectURI := opts.Auth.RedirectURI
	if redirectURI == "" {
		redirectURI = "http://localhost:8080/callback"
	}

	config := &oauth2.Config{
		ClientID:     opts.Auth.ClientID,
		ClientSecret: opts.Auth.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("https://%s/authorize", opts.Auth.Domain),
			TokenURL: fmt.Sprintf("https://%s/oauth/token", opts.Auth.Domain),
		},
	}

	return &Provider{
		config:     config,
		store:      opts.Store,
		logger:     opts.Logger,
		domain:     opts.Auth.Domain,
		audience:   opts.Audience,
		httpClient: opts.HTTPClient,
	}, nil
}

// AuthURL returns the provider's authorization URL for the login redirect.
// The audience parameter tells the tenant which API the token is for.
func (p *Provider) AuthURL(state string) string {
	authOpts := []oauth2.AuthCodeOption{oauth2.AccessTypeOffline}
	if p.audience != "" {
		authOpts = append(authOpts, oauth2.SetAuthURLParam("audience", p.audience))
	}
	return p.config.AuthCodeURL(state, authOpts...)
}

// OAuthConfig exposes the underlying [oauth2.Config] for the callback handler.
func (p *Provider) OAuthConfig() *oauth2.Config {
	return p.config
}

// SaveToken persists a token obtained from a completed login redirect.
func (p *Provider) SaveToken(token *oauth2.Token) error {
	if err := p.store.SaveToken(p.domain, token); err != nil {
		return err
	}
	p.logger.Info("session token saved", "domain", p.domain)
	return nil
}

// AccessToken returns a fresh bearer token for API calls. The token source
// transparently refreshes expired tokens when the provider issued a refresh
// token; refreshed tokens are persisted back to the store.
func (p *Provider) AccessToken(ctx context.Context) (string, error) {
	saved, err := p.store.LoadToken(p.domain)
	if err != nil {
		return "", err
	}
	if saved == nil {
		return "", shared.ErrNotAuthenticated
	}

	token, err := p.config.TokenSource(ctx, saved).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if token.AccessToken != saved.AccessToken {
		if err := p.store.SaveToken(p.domain, token); err != nil {
			p.logger.Warn("failed to persist refreshed token", "error", err)
		}
	}

	return token.AccessToken, nil
}

// Authenticated reports whether a session token is present without contacting
// the provider.
func (p *Provider) Authenticated() bool {
	token, err := p.store.LoadToken(p.domain)
	return err == nil && token != nil
}

// Current returns a snapshot of the session, resolving the user identity from
// the provider's userinfo endpoint. Provider-reported failures are terminal
// for the session view: the error is carried on the snapshot, not retried.
func (p *Provider) Current(ctx context.Context) Session {
	token, err := p.AccessToken(ctx)
	if err != nil {
		return Session{Authenticated: false, Err: err}
	}

	user, err := p.userInfo(ctx, token)
	if err != nil {
		return Session{Authenticated: true, Err: err}
	}

	return Session{Authenticated: true, User: user}
}

// Logout clears the persisted session for this tenant.
func (p *Provider) Logout(ctx context.Context) error {
	if err := p.store.DeleteToken(p.domain); err != nil {
		return err
	}
	p.logger.Info("session cleared", "domain", p.domain)
	return nil
}

// userInfo fetches the OIDC userinfo document with the given access token.
func (p *Provider) userInfo(ctx context.Context, accessToken string) (*User, error) {
	endpoint := fmt.Sprintf("https://%s/userinfo", p.domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: userinfo status %d", shared.ErrAuthFailed, resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return &user, nil
}
