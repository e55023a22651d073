package config

import (
	"fmt"     // For error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For cache TTL

	"github.com/joho/godotenv" // For loading .env files
)

const (
	DriverMySQL  = "mysql"  // MySQL through gorm.io/driver/mysql
	DriverSQLite = "sqlite" // Pure Go SQLite, used for local runs and tests
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBDriver   string        // Database driver: mysql or sqlite
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	DBPath     string        // SQLite database file
	RedisAddr  string        // Redis server address, empty disables caching
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	CacheTTL   time.Duration // Lifetime of cached complaint reads
	LogLevel   string        // Logrus level name
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only
func FromEnv() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	ttlSeconds, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "60"))
	if err != nil || ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS: %q", os.Getenv("CACHE_TTL_SECONDS"))
	}
	cfg := &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     os.Getenv("DB_NAME"),
		DBPath:     getEnv("DB_PATH", "complaints.db"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASS"),
		RedisDB:    redisDB,
		CacheTTL:   time.Duration(ttlSeconds) * time.Second,
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
	switch cfg.DBDriver {
	case DriverMySQL:
		if cfg.DBName == "" {
			return nil, fmt.Errorf("DB_NAME is required for the %s driver", DriverMySQL)
		}
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (must be %q or %q)", cfg.DBDriver, DriverMySQL, DriverSQLite)
	}
	return cfg, nil
}

// DSN returns the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBPath
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true"
}

// CacheEnabled reports whether a Redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// getEnv returns the variable's value or def when it is unset or empty
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
