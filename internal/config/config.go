package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Pipeline ingestion
	PipelineAPIKey string

	// Kafka; an empty broker list disables both consumer and publisher
	KafkaBrokers      []string
	KafkaSpreadsTopic string
	KafkaScansTopic   string
	KafkaGroupID      string

	// Scanner pools, mirroring the list() calls each dashboard view makes
	ScannerPoolLimit     int
	OpportunityPoolLimit int
	AnalyticsPoolLimit   int
	ScanDelay            time.Duration

	// Seeding
	SeedGlob string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "spreadscan"),
		DBPassword: getEnv("DB_PASSWORD", "spreadscan"),
		DBName:     getEnv("DB_NAME", "spreadscan"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "spreadscan.db"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		PipelineAPIKey: getEnv("PIPELINE_API_KEY", ""),

		KafkaBrokers:      splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaSpreadsTopic: getEnv("KAFKA_SPREADS_TOPIC", "options.spreads"),
		KafkaScansTopic:   getEnv("KAFKA_SCANS_TOPIC", "options.scans"),
		KafkaGroupID:      getEnv("KAFKA_GROUP_ID", "spreadscan"),

		ScannerPoolLimit:     getEnvInt("SCANNER_POOL_LIMIT", 500),
		OpportunityPoolLimit: getEnvInt("OPPORTUNITY_POOL_LIMIT", 20),
		AnalyticsPoolLimit:   getEnvInt("ANALYTICS_POOL_LIMIT", 1000),

		SeedGlob: getEnv("SEED_GLOB", "seeds/**/*.yaml"),
	}

	config.JWTExpirationDur = getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.ScanDelay = getEnvDuration("SCAN_DELAY", 0)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// KafkaEnabled reports whether any Kafka brokers are configured.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
