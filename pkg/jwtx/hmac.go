package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrUnsupportedAlg is returned by NewIssuer for anything but HS256/384/512.
	ErrUnsupportedAlg = errors.New("jwtx: unsupported algorithm")

	// ErrEmptyKey is returned by NewIssuer when no signing secret is configured.
	ErrEmptyKey = errors.New("jwtx: empty signing key")
)

var hmacMethods = map[string]*jwt.SigningMethodHMAC{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// IssuerConfig configures an Issuer.
type IssuerConfig struct {
	// Algorithm is one of HS256, HS384 or HS512. Empty means HS256.
	Algorithm string

	// Secret is the shared HMAC key.
	Secret []byte

	// TTL is the access-token lifetime. Zero means DefaultAccessTokenTTL.
	TTL time.Duration

	// Issuer is written to and enforced on the "iss" claim when non-empty.
	Issuer string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration
}

// Issuer signs and verifies HMAC access tokens with a single shared secret.
type Issuer struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	ttl    time.Duration
	issuer string
	leeway time.Duration
}

var _ Verifier = (*Issuer)(nil)

// NewIssuer validates cfg and returns a ready Issuer.
func NewIssuer(cfg IssuerConfig) (*Issuer, error) {
	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := hmacMethods[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, alg)
	}
	if len(cfg.Secret) == 0 {
		return nil, ErrEmptyKey
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return &Issuer{
		method: method,
		secret: append([]byte(nil), cfg.Secret...),
		ttl:    ttl,
		issuer: cfg.Issuer,
		leeway: cfg.Leeway,
	}, nil
}

// Alg reports the configured signing algorithm.
func (i *Issuer) Alg() string { return i.method.Alg() }

// TTL reports the access-token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for subject valid from now for the configured TTL.
func (i *Issuer) Issue(subject, email string, now time.Time) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrMalformed)
	}
	return i.Sign(NewClaims(subject, email, i.issuer, i.ttl, now))
}

// Sign serialises and signs arbitrary claims.
func (i *Issuer) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(i.method, c)
	s, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

// Verify parses tokenStr, checks the signature, algorithm, expiry and
// issuer, and returns the claims. Each failure class maps to its own
// sentinel error.
func (i *Issuer) Verify(tokenStr string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(i.leeway),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	parser := jwt.NewParser(opts...)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method == nil || t.Method.Alg() != i.method.Alg() {
			return nil, ErrAlgMismatch
		}
		return i.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !token.Valid || claims.Subject == "" {
		return Claims{}, ErrMalformed
	}

	return claims, nil
}
