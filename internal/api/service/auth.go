package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/cryptox"
	"github.com/aussiebroadwan/brainsync/pkg/jwtx"
	"github.com/aussiebroadwan/brainsync/pkg/slogx"
)

// MinPasswordLength applies to signup and password changes.
const MinPasswordLength = 8

// Unknown emails are checked against this digest so a failed login costs
// one Argon2id evaluation whether or not the account exists.
var decoyHash = sync.OnceValues(func() (string, error) {
	return cryptox.HashPassword("brainsync-decoy-password")
})

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(subject, email string, now time.Time) (string, error)
	Verify(token string) (jwtx.Claims, error)
}

type SignupInput struct {
	Email              string
	Password           string
	FullName           string
	LanguagePreference string
}

// UserSummary is the public subset of a user returned after authentication.
type UserSummary struct {
	ID       string
	Email    string
	FullName string
}

type AuthResult struct {
	Token string
	User  UserSummary
}

type AuthService struct {
	Store  store.Store
	Tokens TokenIssuer

	// Now defaults to time.Now.
	Now func() time.Time

	// verify defaults to cryptox.VerifyPassword.
	verify func(password, hash string) error
}

// Signup registers a new user and returns a token for it. Email uniqueness
// is exact and case-sensitive.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	if err := validateSignup(in); err != nil {
		return AuthResult{}, err
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return AuthResult{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	lang := in.LanguagePreference
	if lang == "" {
		lang = domain.DefaultLanguagePreference
	}

	now := s.now()
	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Email:              in.Email,
		PasswordHash:       hash,
		FullName:           in.FullName,
		LanguagePreference: lang,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// lost a race with a concurrent signup for the same email
		return AuthResult{}, ErrDuplicateEmail
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(id, in.Email, now)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	l.Info("user signed up", "user_id", id)
	return AuthResult{
		Token: token,
		User:  UserSummary{ID: id, Email: in.Email, FullName: in.FullName},
	}, nil
}

// Login checks credentials and issues a token. Unknown emails, wrong
// passwords and deactivated accounts all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		hash, herr := decoyHash()
		if herr != nil {
			return AuthResult{}, fmt.Errorf("decoy hash: %w", herr)
		}
		_ = s.verifyPassword(password, hash)
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := s.verifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Warn("stored password hash unreadable", "user_id", u.ID, "err", err)
		}
		return AuthResult{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID, u.Email, s.now())
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	return AuthResult{
		Token: token,
		User:  UserSummary{ID: u.ID, Email: u.Email, FullName: u.FullName},
	}, nil
}

// ChangePassword replaces the password of userID after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: new_password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := s.verifyPassword(oldPassword, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.Store.Users().UpdatePasswordHash(ctx, userID, hash, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	slogx.FromContext(ctx).Info("password changed", "user_id", userID)
	return nil
}

// Authenticate verifies a bearer token and returns its claims.
func (s *AuthService) Authenticate(token string) (jwtx.Claims, error) {
	return s.Tokens.Verify(token)
}

func (s *AuthService) verifyPassword(password, hash string) error {
	if s.verify != nil {
		return s.verify(password, hash)
	}
	return cryptox.VerifyPassword(password, hash)
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC().Truncate(time.Millisecond)
	}
	return time.Now().UTC().Truncate(time.Millisecond)
}

func validateSignup(in SignupInput) error {
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	return nil
}
