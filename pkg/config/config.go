package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool

	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	RefreshTokenExpiryDuration time.Duration

	// External OAuth provider
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Base URL embedded in the QR payload printed on waybills.
	PublicTrackingBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file
// if one is present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("PUBLIC_TRACKING_BASE_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		MigrationsPath:        viper.GetString("MIGRATIONS_PATH"),
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		JWTSecret:             viper.GetString("JWT_SECRET"),
		GoogleClientID:        viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:    viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:     viper.GetString("GOOGLE_REDIRECT_URL"),
		PublicTrackingBaseURL: viper.GetString("PUBLIC_TRACKING_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth variables not fully set. Google sign-in will not function.")
	}

	cfg.JWTExpiryDuration = parseDurationOrDefault(viper.GetString("JWT_EXPIRY_DURATION"), time.Hour, "JWT_EXPIRY_DURATION")
	cfg.RefreshTokenExpiryDuration = parseDurationOrDefault(viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION"), 7*24*time.Hour, "REFRESH_TOKEN_EXPIRY_DURATION")

	return cfg, nil
}

func parseDurationOrDefault(value string, fallback time.Duration, name string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", name, value, fallback)
		return fallback
	}
	return d
}
