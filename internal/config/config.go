package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSupabase = "supabase"
	BackendLocal    = "local"
)

type Config struct {
	Supabase SupabaseConfig
	Store    StoreConfig
	App      AppConfig
}

// SupabaseConfig holds the PostgREST endpoint credentials. The anon key
// doubles as both the apikey header and the bearer token.
type SupabaseConfig struct {
	URL         string
	AnonKey     string
	HTTPTimeout time.Duration
}

// StoreConfig selects the employee persistence backend.
type StoreConfig struct {
	Backend     string
	LocalDBPath string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	httpTimeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	config.Supabase = SupabaseConfig{
		URL:         getEnv("SUPABASE_URL", ""),
		AnonKey:     getEnv("SUPABASE_ANON_KEY", ""),
		HTTPTimeout: httpTimeout,
	}

	config.Store = StoreConfig{
		Backend:     getEnv("STORE_BACKEND", BackendSupabase),
		LocalDBPath: getEnv("LOCAL_DB_PATH", "kepegawaian.db"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration. Missing Supabase credentials are
// the one fatal startup condition: no request may be served without them.
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.AnonKey == "" {
		return fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if c.Store.Backend != BackendSupabase && c.Store.Backend != BackendLocal {
		return fmt.Errorf("STORE_BACKEND must be %q or %q", BackendSupabase, BackendLocal)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
