package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

// BackendConfig points the client at the REST backend that owns all data.
type BackendConfig struct {
	BaseURL    string
	Timeout    time.Duration
	LoginRoute string
}

// SessionConfig selects where the bearer token is persisted.
// Store is either "file" or "redis".
type SessionConfig struct {
	Store     string
	TokenFile string
	RedisAddr string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Backend: BackendConfig{
			BaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
			Timeout:    time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
			LoginRoute: getEnv("LOGIN_ROUTE", "/login"),
		},
		Session: SessionConfig{
			Store:     getEnv("TOKEN_STORE", "file"),
			TokenFile: getEnv("TOKEN_FILE", ".fete-cms-token"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if c.Session.Store != "file" && c.Session.Store != "redis" {
		return fmt.Errorf("TOKEN_STORE must be \"file\" or \"redis\", got %q", c.Session.Store)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
