package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/brainsync/internal/api/store/document"
	"github.com/aussiebroadwan/brainsync/pkg/docstore/memdb"
	"github.com/aussiebroadwan/brainsync/pkg/jwtx"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	issuer, err := jwtx.NewIssuer(jwtx.IssuerConfig{
		Secret: []byte("test-secret-key"),
		// generous so tokens minted at testNow still verify
		Leeway: 100 * 365 * 24 * time.Hour,
	})
	require.NoError(t, err)

	return &AuthService{
		Store:  document.NewStore(memdb.New()),
		Tokens: issuer,
		Now:    fixedClock(),
	}
}

func newTranslationService() *TranslationService {
	return &TranslationService{
		Store: document.NewStore(memdb.New()),
		Now:   fixedClock(),
	}
}

func ptr(s string) *string { return &s }
