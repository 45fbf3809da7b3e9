package logiless

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"logiless/internal/kv"
	"logiless/internal/tokenstore"
)

var (
	// ErrNotLoggedIn means no credential was ever stored; the operator has
	// to run the browser login flow once.
	ErrNotLoggedIn    = errors.New("logiless: not logged in")
	ErrRefreshFailed  = errors.New("logiless: token refresh failed")
	ErrExchangeFailed = errors.New("logiless: authorization code exchange failed")
)

// TokenManager owns the access/refresh token lifecycle. Expiry is checked
// lazily at the point of use; the manager keeps no state between calls
// beyond the persisted credential.
type TokenManager struct {
	httpClient   *http.Client
	store        *tokenstore.Store
	baseURL      string
	clientID     string
	clientSecret string
	redirectURI  string

	now func() time.Time
}

func NewTokenManager(httpClient *http.Client, store *tokenstore.Store, baseURL, clientID, clientSecret, redirectURI string) *TokenManager {
	return &TokenManager{
		httpClient:   httpClient,
		store:        store,
		baseURL:      trimHost(baseURL),
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		now:          time.Now,
	}
}

// ValidAccessToken returns the cached access token, refreshing it first when
// the stored expiry is missing or has passed. A valid cached token costs no
// network call.
func (m *TokenManager) ValidAccessToken(ctx context.Context) (string, error) {
	cred, expiresAt, err := m.store.Get(ctx)
	if errors.Is(err, kv.ErrNotFound) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", err
	}

	if expiresAt != nil && expiresAt.After(m.now()) {
		return cred.AccessToken, nil
	}

	query := url.Values{}
	query.Set("client_id", m.clientID)
	query.Set("client_secret", m.clientSecret)
	query.Set("refresh_token", cred.RefreshToken)
	query.Set("grant_type", "refresh_token")

	token, err := m.requestToken(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if err := m.persist(ctx, token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// ExchangeCode trades an authorization code for the initial credential. This
// is the only transition from "not logged in" to "logged in".
func (m *TokenManager) ExchangeCode(ctx context.Context, code string) error {
	query := url.Values{}
	query.Set("client_id", m.clientID)
	query.Set("client_secret", m.clientSecret)
	query.Set("code", code)
	query.Set("grant_type", "authorization_code")
	query.Set("redirect_uri", m.redirectURI)

	token, err := m.requestToken(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}
	return m.persist(ctx, token)
}

// AuthorizeQuery builds the query string for the upstream authorization
// endpoint used by the login redirect.
func (m *TokenManager) AuthorizeQuery() url.Values {
	query := url.Values{}
	query.Set("client_id", m.clientID)
	query.Set("response_type", "code")
	query.Set("redirect_uri", m.redirectURI)
	return query
}

func (m *TokenManager) requestToken(ctx context.Context, query url.Values) (*tokenResponse, error) {
	// The upstream token endpoint takes its parameters as a GET query
	// string rather than a form POST.
	fullURL := m.baseURL + "/oauth2/token?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" || token.RefreshToken == "" {
		return nil, fmt.Errorf("token response missing tokens")
	}
	return &token, nil
}

func (m *TokenManager) persist(ctx context.Context, token *tokenResponse) error {
	cred := tokenstore.Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	expiresAt := m.now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return m.store.Put(ctx, cred, expiresAt)
}
