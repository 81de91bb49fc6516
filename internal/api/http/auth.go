package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/brainsync/internal/api/service"
	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
	"github.com/aussiebroadwan/brainsync/pkg/slogx"
)

// AuthHandler handles signup, login and password changes.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignup handles POST /auth/signup
//
//	@Summary		Sign Up
//	@Description	Registers a new account and returns an access token for it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		brainsdk.SignupRequest	true	"Account details"
//	@Success		200		{object}	brainsdk.TokenResponse	"access_token, token_type, user"
//	@Failure		400		{object}	brainsdk.ErrorResponse	"email taken or invalid input"
//	@Failure		429		{object}	brainsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Router			/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req brainsdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	res, err := h.AuthService.Signup(ctx, service.SignupInput{
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		LanguagePreference: req.LanguagePreference,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to sign up")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(res))
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Log In
//	@Description	Exchanges email and password for an access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		brainsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	brainsdk.TokenResponse	"access_token, token_type, user"
//	@Failure		400		{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	brainsdk.ErrorResponse	"incorrect email or password"
//	@Failure		429		{object}	brainsdk.ErrorResponse	"rate limited"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req brainsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	res, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Failed to log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(res))
}

// HandleChangePassword handles POST /auth/password
//
//	@Summary		Change Password
//	@Description	Replaces the caller's password. Existing tokens stay valid until they expire.
//	@Tags			Auth
//	@Accept			json
//	@Security		BearerAuth
//	@Param			Authorization	header	string							true	"Bearer token"
//	@Param			request			body	brainsdk.PasswordChangeRequest	true	"Old and new password"
//	@Success		204				"No Content"
//	@Failure		400				{object}	brainsdk.ErrorResponse	"new password too short"
//	@Failure		401				{object}	brainsdk.ErrorResponse	"invalid token or wrong old password"
//	@Failure		404				{object}	brainsdk.ErrorResponse	"user no longer exists"
//	@Router			/auth/password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok || claims.Subject == "" {
		httpx.WriteError(w, http.StatusUnauthorized, brainsdk.ErrorCodeInvalidToken, "missing authenticated user")
		return
	}

	var req brainsdk.PasswordChangeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	if err := h.AuthService.ChangePassword(ctx, claims.Subject, req.OldPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err, "Failed to change password")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func tokenResponse(res service.AuthResult) brainsdk.TokenResponse {
	return brainsdk.TokenResponse{
		AccessToken: res.Token,
		TokenType:   "bearer",
		User: brainsdk.User{
			ID:       res.User.ID,
			Email:    res.User.Email,
			FullName: res.User.FullName,
		},
	}
}

// writeServiceError maps service errors to responses. Anything unexpected is
// logged and reported as a 500 with fallback as the description.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, validationMessage(err))
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeEmailTaken, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, brainsdk.ErrorCodeInvalidCredentials, "Incorrect email or password")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, brainsdk.ErrorCodeNotFound, "Not found")
	default:
		slogx.FromContext(r.Context()).Error(fallback, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, brainsdk.ErrorCodeServerError, fallback)
	}
}

// validationMessage strips the sentinel prefix from a wrapped ErrValidation.
func validationMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), service.ErrValidation.Error()+": "); ok {
		return msg
	}
	return err.Error()
}
