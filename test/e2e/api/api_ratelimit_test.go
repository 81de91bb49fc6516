//go:build e2e

package api_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
)

// TestLoginRateLimit uses the production strict profile.
func TestLoginRateLimit(t *testing.T) {
	limits := relaxedLimits()
	limits.Strict = httpx.StrictLimit
	baseURL := setupAPI(t, limits)
	client := brainsdk.NewSDKClient(baseURL)

	req := brainsdk.LoginRequest{Email: testEmail, Password: "wrong-password"}
	for range httpx.StrictLimit.Burst {
		_, err := client.Login(t.Context(), req)
		requireAPIError(t, err, http.StatusUnauthorized, brainsdk.ErrorCodeInvalidCredentials)
	}

	_, err := client.Login(t.Context(), req)
	requireAPIError(t, err, http.StatusTooManyRequests, brainsdk.ErrorCodeRateLimited)
}
