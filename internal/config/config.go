// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMySQL     = "mysql"
	StoragePostgREST = "postgrest"
)

// Config holds all configuration for the application
type Config struct {
	StorageDriver string
	Database      DatabaseConfig
	PostgREST     PostgRESTConfig
	Redis         RedisConfig
	Server        ServerConfig
	Logging       LoggingConfig
	CORS          CORSConfig
	JWT           JWTConfig
	Search        SearchConfig
	Jobs          JobsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// PostgRESTConfig holds the hosted database API settings
type PostgRESTConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds the settings used to check admin access tokens
type JWTConfig struct {
	Secret    string
	AdminRole int
}

// SearchConfig holds live search settings
type SearchConfig struct {
	Debounce      time.Duration
	LookupTimeout time.Duration
}

// JobsConfig holds background job schedules
type JobsConfig struct {
	// OrderRepairSchedule is a cron expression; empty disables the job
	OrderRepairSchedule string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	cfg.StorageDriver = strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageMySQL
	}

	switch cfg.StorageDriver {
	case StorageMySQL:
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	case StoragePostgREST:
		if err := loadPostgREST(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: must be %s or %s", cfg.StorageDriver, StorageMySQL, StoragePostgREST)
	}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	cfg.JWT.AdminRole, err = envInt("ADMIN_ROLE", 3)
	if err != nil {
		return nil, err
	}

	if err := loadRedis(cfg); err != nil {
		return nil, err
	}

	// Search configuration
	cfg.Search.Debounce, err = envDuration("SEARCH_DEBOUNCE", 300*time.Millisecond)
	if err != nil {
		return nil, err
	}
	cfg.Search.LookupTimeout, err = envDuration("SEARCH_LOOKUP_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	// Jobs configuration; set ORDER_REPAIR_SCHEDULE to "off" to disable
	repairSchedule, ok := os.LookupEnv("ORDER_REPAIR_SCHEDULE")
	if !ok {
		repairSchedule = "@every 1h"
	}
	if strings.EqualFold(repairSchedule, "off") {
		repairSchedule = ""
	}
	cfg.Jobs.OrderRepairSchedule = strings.TrimSpace(repairSchedule)

	return cfg, nil
}

// loadDatabase reads the required MySQL settings
func loadDatabase(cfg *Config) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

// loadPostgREST reads the required hosted database API settings
func loadPostgREST(cfg *Config) error {
	url := os.Getenv("POSTGREST_URL")
	if url == "" {
		return fmt.Errorf("POSTGREST_URL is required")
	}
	cfg.PostgREST.URL = url

	apiKey := os.Getenv("POSTGREST_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("POSTGREST_API_KEY is required")
	}
	cfg.PostgREST.APIKey = apiKey

	timeout, err := envDuration("POSTGREST_TIMEOUT", 10*time.Second)
	if err != nil {
		return err
	}
	cfg.PostgREST.Timeout = timeout

	return nil
}

// loadRedis reads the optional catalog cache settings
func loadRedis(cfg *Config) error {
	enabled, err := strconv.ParseBool(envOr("REDIS_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_ENABLED: %w", err)
	}
	cfg.Redis.Enabled = enabled

	cfg.Redis.Host = envOr("REDIS_HOST", "localhost")

	cfg.Redis.Port, err = envInt("REDIS_PORT", 6379)
	if err != nil {
		return err
	}

	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD") // optional

	cfg.Redis.DB, err = envInt("REDIS_DB", 0)
	if err != nil {
		return err
	}

	cfg.Redis.CacheTTL, err = envDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return err
	}

	return nil
}

// parseOrigins splits comma-separated origins, allowing all origins when none are given
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

// DSN returns the database connection string.
// clientFoundRows makes an UPDATE that rewrites an identical value still count the matched row.
func (c *Config) DSN() string {
	return c.Database.DSN()
}

// DSN returns the MySQL connection string for these settings
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&clientFoundRows=true&multiStatements=true",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}

// RedisAddr returns the Redis host:port address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
