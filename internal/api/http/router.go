package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/brainsync/api/docs" // Swagger docs
	"github.com/aussiebroadwan/brainsync/internal/api/service"
	"github.com/aussiebroadwan/brainsync/internal/api/store"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
	"github.com/aussiebroadwan/brainsync/pkg/jwtx"
	"github.com/aussiebroadwan/brainsync/pkg/slogx"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.Limits
	proxies      httpx.TrustedProxies

	store              store.Store
	AuthService        *service.AuthService
	TranslationService *service.TranslationService
}

// RouterConfig carries the transport settings that come from configuration.
type RouterConfig struct {
	BuildVersion   string
	AllowedOrigins []string
	Limits         httpx.Limits
	TrustedProxies httpx.TrustedProxies
}

func NewRouter(
	st store.Store,
	logger *slog.Logger,
	cfg RouterConfig,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: cfg.BuildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       cfg.Limits,
		proxies:      cfg.TrustedProxies,
		store:        st,
	}

	// Logging wraps CORS so preflight requests are logged too.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", slogx.RequestIDHeader},
			ExposedHeaders:   []string{slogx.RequestIDHeader, "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

// ApplyRoutes registers every endpoint. AuthService and TranslationService
// must be set first.
func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTranslations()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
	r.Mux.Handle("GET /docs", http.RedirectHandler("/swagger/index.html", http.StatusFound))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BrainSync API
//	@version		1.0.0
//	@description	Accounts and translation history for the BrainSync assistive translation app.
//	@description
//	@description				Tokens are HMAC-signed JWTs returned by signup and login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/brainsync
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// verifier routes bearer checks through the auth service.
func (r *Router) verifier() jwtx.Verifier {
	return jwtx.VerifierFunc(r.AuthService.Authenticate)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP (brute force)
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(r.limits.Strict, r.proxies),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(r.limits.Strict, r.proxies),
		),
	)

	// POST /auth/password - strict by user, old password is guessable otherwise
	r.Mux.Handle("POST /auth/password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			httpx.AuthnMiddleware(r.verifier()),
			httpx.RateLimitByUser(r.limits.Strict, r.proxies),
		),
	)
}

func (r *Router) registerTranslations() {
	h := &TranslationsHandler{TranslationService: r.TranslationService}

	// Writes - moderate rate limit. Create attaches the caller when a valid
	// bearer token is sent, anonymous requests are still accepted.
	create := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.OptionalAuthn(r.verifier()),
		httpx.RateLimitByUser(r.limits.Moderate, r.proxies),
	)
	update := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.RateLimitByIP(r.limits.Moderate, r.proxies),
	)
	remove := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.RateLimitByIP(r.limits.Moderate, r.proxies),
	)

	// Reads - lenient rate limit
	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.RateLimitByIP(r.limits.Lenient, r.proxies),
	)
	stats := httpx.Chain(http.HandlerFunc(h.HandleStats),
		httpx.RateLimitByIP(r.limits.Lenient, r.proxies),
	)

	// Trailing slash variants share the same limiter.
	r.Mux.Handle("POST /translations", create)
	r.Mux.Handle("POST /translations/{$}", create)
	r.Mux.Handle("GET /translations", list)
	r.Mux.Handle("GET /translations/{$}", list)
	r.Mux.Handle("GET /translations/stats", stats)
	r.Mux.Handle("PATCH /translations/{id}", update)
	r.Mux.Handle("DELETE /translations/{id}", remove)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RootHandler(),
			httpx.RateLimitByIP(r.limits.Public, r.proxies),
		),
	)
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(),
			httpx.RateLimitByIP(r.limits.Public, r.proxies),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public, r.proxies),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.limits.Public, r.proxies),
		),
	)
}
