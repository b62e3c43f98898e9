package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port          string
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration

	FoursquareClientID     string
	FoursquareClientSecret string
	FoursquareRedirectURI  string

	// WrappedYear is the report year; check-in fetches are bounded to it.
	WrappedYear int

	// FrontendURL is where the callback redirects after login.
	FrontendURL string

	// LogFile enables rotating file logging when set.
	LogFile string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", ":8080"),
		DBPath:        getEnv("DB_PATH", "./data/wrapped.db"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionTTL:    24 * time.Hour,

		FoursquareClientID:     os.Getenv("FOURSQUARE_CLIENT_ID"),
		FoursquareClientSecret: os.Getenv("FOURSQUARE_CLIENT_SECRET"),
		FoursquareRedirectURI:  getEnv("FOURSQUARE_REDIRECT_URI", "http://localhost:8080/auth/callback"),

		WrappedYear: getEnvInt("WRAPPED_YEAR", time.Now().Year()),
		FrontendURL: getEnv("FRONTEND_URL", "/"),
		LogFile:     os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
