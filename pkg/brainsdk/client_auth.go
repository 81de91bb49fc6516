package brainsdk

import (
	"context"
	"net/http"
)

// Signup registers a new account and returns its first access token.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/signup", "", req)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Login exchanges credentials for an access token.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", req)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}
