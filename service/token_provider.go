package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuth scopes used by the sheet, mail and blob-store calls.
const (
	ScopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"
	ScopeGmailSend    = "https://www.googleapis.com/auth/gmail.send"
	ScopeDrive        = "https://www.googleapis.com/auth/drive"
)

// ErrNoToken is returned when sign-in completed but no usable access token
// is available. It is distinct from generic transport failures.
var ErrNoToken = errors.New("no access token available")

// TokenProvider supplies bearer tokens for authorized requests.
// Invalidate forces a fresh token on the next call, used by the transport's
// one-shot 401 retry.
type TokenProvider interface {
	EnsureSignedIn(ctx context.Context) error
	AccessToken(ctx context.Context) (string, error)
	Invalidate()
}

// GoogleTokenProvider issues tokens from Service Account credentials JSON.
// Refresh is single-flighted behind the mutex, so concurrent 401 retries
// share one reauthentication.
type GoogleTokenProvider struct {
	credentialsJSON []byte
	scopes          []string

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewGoogleTokenProvider creates a provider from a Service Account JSON
// credentials file.
func NewGoogleTokenProvider(credentialsPath string, scopes ...string) (*GoogleTokenProvider, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return &GoogleTokenProvider{credentialsJSON: data, scopes: scopes}, nil
}

// Ensure GoogleTokenProvider implements TokenProvider
var _ TokenProvider = (*GoogleTokenProvider)(nil)

// EnsureSignedIn makes sure a token can be issued. Idempotent.
func (p *GoogleTokenProvider) EnsureSignedIn(ctx context.Context) error {
	_, err := p.AccessToken(ctx)
	return err
}

// AccessToken returns a valid bearer token, refreshing if needed.
func (p *GoogleTokenProvider) AccessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.source == nil {
		creds, err := google.CredentialsFromJSON(ctx, p.credentialsJSON, p.scopes...)
		if err != nil {
			return "", fmt.Errorf("failed to build token source: %w", err)
		}
		p.source = creds.TokenSource
	}

	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoToken, err)
	}
	if tok.AccessToken == "" {
		return "", ErrNoToken
	}
	return tok.AccessToken, nil
}

// Invalidate discards the cached token source so the next AccessToken call
// reauthenticates from scratch.
func (p *GoogleTokenProvider) Invalidate() {
	p.mu.Lock()
	p.source = nil
	p.mu.Unlock()
}

// StaticTokenProvider returns a fixed token. Used in tests and with
// externally managed tokens.
type StaticTokenProvider struct {
	Token string
}

// Ensure StaticTokenProvider implements TokenProvider
var _ TokenProvider = (*StaticTokenProvider)(nil)

// EnsureSignedIn reports whether the fixed token is set.
func (p *StaticTokenProvider) EnsureSignedIn(ctx context.Context) error {
	if p.Token == "" {
		return ErrNoToken
	}
	return nil
}

// AccessToken returns the fixed token.
func (p *StaticTokenProvider) AccessToken(ctx context.Context) (string, error) {
	if p.Token == "" {
		return "", ErrNoToken
	}
	return p.Token, nil
}

// Invalidate is a no-op for static tokens.
func (p *StaticTokenProvider) Invalidate() {}
