package brainsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the BrainSync API. It covers the public
// endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the API rooted at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthenticateWithPassword logs in and returns a Session for the user.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	tok, err := c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok), nil
}

// NewSession wraps an existing token response. Tokens are not refreshed;
// once the access token expires a new login is needed.
func (c *SDKClient) NewSession(tok *TokenResponse) *Session {
	return &Session{
		client:      c,
		accessToken: tok.AccessToken,
		user:        tok.User,
	}
}
