package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is loaded once at
// process start and passed explicitly to the services that need it.
type Config struct {
	// Server configuration
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Token signing
	SecretKey string
	Algorithm string

	// Model API
	ModelAPIKey string
	ModelAPIURL string
	ModelName   string

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment (and a .env file when
// present) into an immutable Config. It fails fast on a missing secret or an
// unknown signing algorithm.
func Load() (*Config, error) {
	// Best effort: a missing .env file is fine in production
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "fitcoach"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SecretKey: os.Getenv("SECRET_KEY"),
		Algorithm: getEnv("ALGORITHM", "HS256"),

		ModelAPIKey: os.Getenv("OPENAI_API_KEY"),
		ModelAPIURL: getEnv("OPENAI_API_URL", "https://api.openai.com/v1/responses"),
		ModelName:   getEnv("OPENAI_MODEL", "ft:gpt-4o-mini-2024-07-18:tcc:teste2:CbGGCMeu"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY must be set")
	}
	if jwt.GetSigningMethod(cfg.Algorithm) == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:4200,http://localhost:8000,http://localhost:8081")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

// SigningMethod resolves the configured token signing algorithm.
func (c *Config) SigningMethod() jwt.SigningMethod {
	return jwt.GetSigningMethod(c.Algorithm)
}

// RedisAddr returns the host:port address of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
