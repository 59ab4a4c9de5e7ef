// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Database struct {
		Driver   string `json:"driver"`
		Path     string `json:"path"`
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Name     string `json:"name"`
		SSLMode  string `json:"sslmode"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		BasePath     string        `json:"base_path"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration. The default is a single-writer SQLite file;
	// set DB_DRIVER=postgres to use a shared server instead.
	cfg.Database.Driver = getEnv("DB_DRIVER", "sqlite")
	cfg.Database.Path = getEnv("DB_PATH", "db/flow3.db")
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "flow3")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	// JWT configuration. Tokens are valid for 30 days.
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = 30 * 24 * time.Hour

	// Server configuration
	cfg.Server.Port = getEnv("PORT", "5000")
	cfg.Server.BasePath = strings.TrimSuffix(getEnv("BASE_PATH", ""), "/")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	return cfg
}

// PostgresDSN assembles the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
