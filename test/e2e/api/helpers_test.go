//go:build e2e

package api_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/brainsync/internal/api/app"
	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
	"github.com/aussiebroadwan/brainsync/pkg/idx"
)

/*
 * Common constants and helper functions for the API end-to-end tests.
 * A single MongoDB container serves the whole run; every test gets its own
 * database and an in-process API server.
 */

const (
	testEmail    = "ada@example.com"
	testPassword = "correct-horse"
	testFullName = "Ada Lovelace"
)

var mongoURI string

// TestMain starts MongoDB once before all tests and removes it afterwards.
func TestMain(m *testing.M) {
	ctx := context.Background()

	fmt.Fprintf(os.Stdout, "Starting MongoDB container...")
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to start MongoDB: %v\n", err)
		os.Exit(1)
	}

	host, err := container.Host(ctx)
	if err == nil {
		var port string
		if mapped, perr := container.MappedPort(ctx, "27017/tcp"); perr == nil {
			port = mapped.Port()
		} else {
			err = perr
		}
		mongoURI = fmt.Sprintf("mongodb://%s:%s", host, port)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to resolve MongoDB address: %v\n", err)
		_ = container.Terminate(ctx)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Stopping MongoDB container...")
	_ = container.Terminate(ctx)
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func relaxedLimits() httpx.Limits {
	loose := httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	return httpx.Limits{Strict: loose, Moderate: loose, Lenient: loose, Public: loose}
}

// setupAPI starts the API against a fresh database and returns its base URL.
func setupAPI(t *testing.T, limits httpx.Limits) string {
	t.Helper()

	cfg := app.Config{
		MongoURL:            mongoURI,
		DatabaseName:        "e2e_" + strings.ToLower(idx.New().String()),
		MongoConnectTimeout: 10 * time.Second,
		SecretKey:           "e2e-secret-key",
		Algorithm:           "HS256",
		AccessTokenTTL:      30 * time.Minute,
		TokenIssuer:         "brainsync-e2e",
		Env:                 "test",
		LogLevel:            "warn",
		LogFormat:           "json",
		Port:                8000,
		ShutdownGracePeriod: 5 * time.Second,
		AllowedOrigins:      []string{"http://localhost:5173"},
		RateLimits:          limits,
	}

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		if err := application.Shutdown(); err != nil {
			t.Logf("failed to shut down application: %v", err)
		}
	})

	return srv.URL
}

// signupUser registers the standard test user and returns a session for it.
func signupUser(t *testing.T, client *brainsdk.SDKClient) *brainsdk.Session {
	t.Helper()

	tok, err := client.Signup(t.Context(), brainsdk.SignupRequest{
		Email:    testEmail,
		Password: testPassword,
		FullName: testFullName,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok.AccessToken)

	return client.NewSession(tok)
}

func createText(t *testing.T, client *brainsdk.SDKClient, typ, text string) *brainsdk.Translation {
	t.Helper()

	tr, err := client.CreateTranslation(t.Context(), brainsdk.CreateTranslationRequest{
		SourceText:      &text,
		TranslationType: typ,
	})
	require.NoError(t, err)
	return tr
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, brainsdk.StatusCode(err), err.Error())
	require.True(t, brainsdk.IsCode(err, code), err.Error())
}
