// Package config provides configuration management for the postage comparator.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers.
const (
	StorageDriverFile  = "file"
	StorageDriverMongo = "mongo"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Quote    QuoteConfig
	Client   ClientConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// StorageConfig selects where settings, items and packaging are persisted.
type StorageConfig struct {
	// Driver is either "file" or "mongo".
	Driver string
	// DataDir holds the JSON documents of the file driver.
	DataDir string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI            string
	DatabaseName   string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// QuoteConfig holds quote aggregation settings.
type QuoteConfig struct {
	Currency       string
	DefaultCountry string
	// VolumetricFactor is kilograms charged per 1000 cm³ of packaging volume.
	VolumetricFactor float64
	// RateTableFile optionally replaces the built-in rate table.
	RateTableFile string
	// Providers lists the enabled carrier adapters in quote order.
	Providers []string
}

// ClientConfig holds settings for the terminal client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Storage: StorageConfig{
			Driver:  parseStorageDriver(os.Getenv("STORAGE_DRIVER")),
			DataDir: getEnv("POSTAGE_DATA_DIR", "./data"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "postage_comparator"),
			MaxPoolSize:                    uint64(max(getEnvInt("MONGODB_MAX_POOL_SIZE", 20), 1)),
			ConnectTimeout:                 getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Quote: QuoteConfig{
			Currency:         getEnv("QUOTE_CURRENCY", "AUD"),
			DefaultCountry:   getEnv("QUOTE_DEFAULT_COUNTRY", "AU"),
			VolumetricFactor: getEnvFloat("VOLUMETRIC_FACTOR", 0.25),
			RateTableFile:    getEnv("RATE_TABLE_FILE", ""),
			Providers:        parseList(getEnv("CARRIER_PROVIDERS", "rules")),
		},
		Client: ClientConfig{
			BaseURL: getEnv("POSTAGE_API_BASE_URL", "http://localhost:8080/api"),
			Timeout: getEnvDuration("POSTAGE_API_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseStorageDriver(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), StorageDriverMongo) {
		return StorageDriverMongo
	}
	return StorageDriverFile
}

func parseList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.ToLower(strings.TrimSpace(p)); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if s == "" {
		return defaults
	}
	return append(defaults, parseList(s)...)
}
