package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTimeLayout = "1/2/2006, 3:04:05 PM"
	defaultRedisAddr  = "localhost:6379"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Display DisplayConfig
	DB      DBConfig
	Redis   RedisConfig
	Limit   RateLimitConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// APIConfig locates the proxy request backend.
type APIConfig struct {
	// BaseURL is the scheme+host prefix for every API path. It is fixed per
	// build, see APIBaseURL.
	BaseURL string
	// Timeout bounds each API call. Zero means no timeout.
	Timeout time.Duration

	selfPort string
}

// Origin returns the prefix the API client should use. An empty BaseURL means
// the API is served from the same origin as the dashboard itself.
func (c APIConfig) Origin() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return "http://localhost:" + c.selfPort
}

type DisplayConfig struct {
	Location   *time.Location
	TimeLayout string
}

type DBConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
	DSN     string
}

// Enabled reports whether a database has been configured at all.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS   int
	Burst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads the environment. defaultPort is used when SERVER_PORT is
// unset, so the api and the dashboard binaries can share one .env file.
func LoadConfig(defaultPort string) (*Config, error) {
	port := getEnv("SERVER_PORT", defaultPort)

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	if apiTimeout < 0 {
		return nil, fmt.Errorf("invalid API_TIMEOUT: must not be negative")
	}

	loc, err := time.LoadLocation(getEnv("DISPLAY_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}

	dbConfig := DBConfig{
		Host:    os.Getenv("DB_HOST"),
		User:    os.Getenv("DB_USER"),
		Pass:    os.Getenv("DB_PASS"),
		Name:    os.Getenv("DB_NAME"),
		SSLMode: getEnv("DB_SSLMODE", "disable"),
	}
	if dbConfig.Enabled() {
		dbConfig.Port, err = strconv.Atoi(getEnv("DB_PORT", "5432"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		dbConfig.DSN = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.Pass, dbConfig.Name, dbConfig.SSLMode,
		)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	rps, err := strconv.Atoi(getEnv("RATE_LIMIT_RPS", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		API: APIConfig{
			BaseURL:  APIBaseURL,
			Timeout:  apiTimeout,
			selfPort: port,
		},
		Display: DisplayConfig{
			Location:   loc,
			TimeLayout: getEnv("DISPLAY_TIME_LAYOUT", DefaultTimeLayout),
		},
		DB: dbConfig,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", defaultRedisAddr),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Limit: RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ORIGINS", defaultCORSOrigins())),
		},
	}, nil
}

// defaultCORSOrigins opens /api to every origin in development builds only,
// where dashboards and tools run on other ports. Production serves the API
// on the dashboard's own origin.
func defaultCORSOrigins() string {
	if Development {
		return "*"
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
