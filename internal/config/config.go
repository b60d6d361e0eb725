package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort  = "8080"
	defaultCartTTL  = 6 * time.Hour
	defaultStore    = "DALAROSA"
	defaultSSLMode  = "disable"
	defaultCORSHost = "http://localhost:5173"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	AppPort string
	AppEnv  string

	JWTSecret string

	StoreName        string
	WhatsAppNumber   string
	StoreProfilePath string
	CORSOrigin       string
	CartTTL          time.Duration
}

// LoadConfig reads the environment (and a .env file when present).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		DBSSLMode:        getenv("DB_SSLMODE", defaultSSLMode),
		AppPort:          getenv("APP_PORT", defaultAppPort),
		AppEnv:           os.Getenv("APP_ENV"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		StoreName:        getenv("STORE_NAME", defaultStore),
		WhatsAppNumber:   os.Getenv("WHATSAPP_NUMBER"),
		StoreProfilePath: os.Getenv("STORE_PROFILE_PATH"),
		CORSOrigin:       getenv("CORS_ORIGIN", defaultCORSHost),
		CartTTL:          defaultCartTTL,
	}

	if v := os.Getenv("CART_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CART_TTL must be a duration: %w", err)
		}
		cfg.CartTTL = ttl
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.WhatsAppNumber == "" {
		missing = append(missing, "WHATSAPP_NUMBER")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction reports whether APP_ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
