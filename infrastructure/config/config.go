package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Supabase configuration
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseSchema     string

	// Table names
	CategoriesTable     string
	BookmarksTable      string
	PublicBookmarksTable string
	ProfilesTable       string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Metadata fetching
	MetadataFetchTimeout time.Duration

	// Rate limiting, requests per minute
	RateLimitPerIP   int
	RateLimitPerUser int

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseSchema:     getEnv("SUPABASE_SCHEMA", "public"),

		CategoriesTable:      getEnv("CATEGORIES_TABLE", "bookmark_categories"),
		BookmarksTable:       getEnv("BOOKMARKS_TABLE", "bookmarks"),
		PublicBookmarksTable: getEnv("PUBLIC_BOOKMARKS_TABLE", "public_bookmarks"),
		ProfilesTable:        getEnv("PROFILES_TABLE", "public_profiles"),

		JWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("JWT_SECRET", "")),
		JWTIssuer: getEnv("JWT_ISSUER", ""),

		MetadataFetchTimeout: getEnvDuration("METADATA_FETCH_TIMEOUT", 5*time.Second),

		RateLimitPerIP:   getEnvInt("RATE_LIMIT_PER_IP", 100),
		RateLimitPerUser: getEnvInt("RATE_LIMIT_PER_USER", 200),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if c.Environment == "production" && c.JWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
