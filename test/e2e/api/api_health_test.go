//go:build e2e

package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
)

func TestSystemEndpoints(t *testing.T) {
	baseURL := setupAPI(t, relaxedLimits())
	client := brainsdk.NewSDKClient(baseURL)

	root, err := client.GetRoot(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Welcome to BrainSync API", root.Message)
	require.Equal(t, "1.0.0", root.Version)

	health, err := client.GetHealth(t.Context())
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Uptime)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
