package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
)

// RootHandler godoc
//
//	@Summary		API Banner
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	brainsdk.RootResponse	"message, docs, version"
//	@Router			/ [get].
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, brainsdk.RootResponse{
			Message: "Welcome to BrainSync API",
			Docs:    "/docs",
			Version: APIVersion,
		})
	}
}

// HealthHandler godoc
//
//	@Summary		Health Check
//	@Description	Always reports healthy while the process is serving requests.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	brainsdk.HealthResponse	"status"
//	@Router			/health [get].
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, brainsdk.HealthResponse{Status: "healthy"})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Returns 200 OK with uptime and version while the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	brainsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, brainsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Pings the document store; reports 503 when it is unreachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	brainsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	brainsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &brainsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, brainsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
