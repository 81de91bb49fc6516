package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/brainsync/pkg/idx"
)

// DefaultAccessTokenTTL is the lifetime of an access token when none is configured.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user at the time the token was issued.
	Email string `json:"email,omitempty"`
}

// NewClaims builds minimally-correct claims.
func NewClaims(subject, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
	}
}

// NewJTI returns a unique identifier for the "jti" claim.
func NewJTI() string {
	return idx.New().String()
}
