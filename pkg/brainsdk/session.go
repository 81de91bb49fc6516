package brainsdk

import (
	"context"
	"net/http"
)

// Session carries the access token of a signed-in user.
type Session struct {
	client      *SDKClient
	accessToken string
	user        User
}

// User returns the account the session belongs to.
func (s *Session) User() User { return s.user }

// AccessToken returns the bearer token sent with each request.
func (s *Session) AccessToken() string { return s.accessToken }

// ChangePassword replaces the session user's password. The current access
// token stays valid until it expires.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/auth/password", s.accessToken, PasswordChangeRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// CreateTranslation records a translation owned by the session user.
func (s *Session) CreateTranslation(ctx context.Context, req CreateTranslationRequest) (*Translation, error) {
	return s.client.createTranslation(ctx, s.accessToken, req)
}
