package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/brainsync/pkg/httpx"
	"github.com/aussiebroadwan/brainsync/pkg/jwtx"
)

// DefaultSecretKey is the placeholder shipped in example .env files. It is
// refused outside development.
const DefaultSecretKey = "your-secret-key-change-this-in-production"

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
}

type Config struct {
	MongoURL            string        // Required unless UseInMemoryDB: MongoDB connection string
	DatabaseName        string        // Optional: database name (default: brainsync)
	MongoConnectTimeout time.Duration // Optional: startup ping deadline (default: 5s)
	UseInMemoryDB       bool          // Optional: use the in-memory store, development only (default: false)

	SecretKey      string        // Required outside dev: HMAC signing key
	Algorithm      string        // Optional: HS256, HS384 or HS512 (default: HS256)
	AccessTokenTTL time.Duration // Optional: token lifetime (default: 30m)
	TokenIssuer    string        // Optional: iss claim written and enforced on tokens
	PepperFile     string        // Optional: password pepper file, empty disables it

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	Debug               bool          // Forces debug logging (default: false)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	AllowedOrigins      []string      // CORS origins (default: local frontend dev servers)
	RateLimits          httpx.Limits  // Per endpoint class, see httpx.LimitsFromEnv
	TrustedProxies      []string      // Proxy IPs/CIDRs whose X-Forwarded-For is honoured (default: none)
}

// LoadConfig reads configuration from the environment after loading an
// optional .env file from the working directory. Variables already set in
// the environment win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		MongoURL:            os.Getenv("MONGODB_URL"),
		DatabaseName:        getEnvOrDefault("DATABASE_NAME", "brainsync"),
		MongoConnectTimeout: getEnvDurationOrDefault("MONGODB_CONNECT_TIMEOUT", 5*time.Second),
		UseInMemoryDB:       getEnvBoolOrDefault("USE_IN_MEMORY_DB", false),

		SecretKey:   os.Getenv("SECRET_KEY"),
		Algorithm:   getEnvOrDefault("ALGORITHM", "HS256"),
		TokenIssuer: os.Getenv("TOKEN_ISSUER"),
		PepperFile:  os.Getenv("PEPPER_FILE"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		Debug:               getEnvBoolOrDefault("DEBUG", false),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		AllowedOrigins:      getEnvListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		RateLimits:          httpx.LimitsFromEnv(),
		TrustedProxies:      getEnvListOrDefault("TRUSTED_PROXIES", nil),
	}

	// Token lifetime is configured in whole minutes; a value that does not
	// parse is kept as a negative TTL so Validate reports it.
	cfg.AccessTokenTTL = jwtx.DefaultAccessTokenTTL
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			minutes = -1
		}
		cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute
	}

	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg
}

// IsDevelopment reports whether the service runs in a local environment.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.Env) {
	case "dev", "development", "local":
		return true
	}
	return false
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	if !c.UseInMemoryDB && c.MongoURL == "" {
		errs = append(errs, errors.New("MONGODB_URL is required unless USE_IN_MEMORY_DB is set"))
	}
	if c.DatabaseName == "" {
		errs = append(errs, errors.New("DATABASE_NAME must not be empty"))
	}

	if !c.IsDevelopment() {
		switch c.SecretKey {
		case "":
			errs = append(errs, fmt.Errorf("SECRET_KEY is required when ENV=%s", c.Env))
		case DefaultSecretKey:
			errs = append(errs, fmt.Errorf("SECRET_KEY must be changed from the example value when ENV=%s", c.Env))
		}
	}

	switch c.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("ALGORITHM %q is not supported (HS256, HS384, HS512)", c.Algorithm))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer"))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}
	if c.MongoConnectTimeout <= 0 {
		errs = append(errs, errors.New("MONGODB_CONNECT_TIMEOUT must be positive"))
	}
	if _, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: %w", err))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma-separated variable, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return out
}
