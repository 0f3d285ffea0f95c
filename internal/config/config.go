package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	// Redis
	Redis RedisConfig

	// Market Data
	MarketData MarketDataConfig

	// Analyzer service
	Analyzer AnalyzerConfig

	// Indicator engine periods
	Engine EngineConfig
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// MarketDataConfig holds market data provider configuration
type MarketDataConfig struct {
	Provider string // "mock" or a vendor name registered with the factory
	APIKey   string
	BaseURL  string
	Symbols  []string
}

// AnalyzerConfig holds analyzer service configuration
type AnalyzerConfig struct {
	HealthCheckPort int
	Schedule        string // cron expression for scheduled runs
	HistoryDays     int    // how much daily history to fetch per run
	SnapshotStream  string // Redis stream snapshots are published to
	FetchTimeout    time.Duration
	RunOnStart      bool
}

// EngineConfig holds the indicator window sizes
type EngineConfig struct {
	ShortMAPeriod       int
	MidMAPeriod         int
	LongMAPeriod        int
	FastEMASpan         int
	SlowEMASpan         int
	MACDSignalSpan      int
	RSIPeriod           int
	ATRPeriod           int
	BollingerPeriod     int
	BollingerMultiplier float64
}

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory or parent directories
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnvAsInt("REDIS_PORT", 6379),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		MarketData: MarketDataConfig{
			Provider: getEnv("MARKET_DATA_PROVIDER", "mock"),
			APIKey:   getEnv("MARKET_DATA_API_KEY", ""),
			BaseURL:  getEnv("MARKET_DATA_BASE_URL", ""),
			Symbols:  getEnvAsStringSlice("MARKET_DATA_SYMBOLS", []string{}),
		},
		Analyzer: AnalyzerConfig{
			HealthCheckPort: getEnvAsInt("ANALYZER_HEALTH_PORT", 8081),
			Schedule:        getEnv("ANALYZER_SCHEDULE", "30 22 * * 1-5"),
			HistoryDays:     getEnvAsInt("ANALYZER_HISTORY_DAYS", 365),
			SnapshotStream:  getEnv("ANALYZER_SNAPSHOT_STREAM", "indicators.snapshots"),
			FetchTimeout:    getEnvAsDuration("ANALYZER_FETCH_TIMEOUT", 30*time.Second),
			RunOnStart:      getEnvAsBool("ANALYZER_RUN_ON_START", true),
		},
		Engine: EngineConfig{
			ShortMAPeriod:       getEnvAsInt("ENGINE_SHORT_MA_PERIOD", 20),
			MidMAPeriod:         getEnvAsInt("ENGINE_MID_MA_PERIOD", 50),
			LongMAPeriod:        getEnvAsInt("ENGINE_LONG_MA_PERIOD", 200),
			FastEMASpan:         getEnvAsInt("ENGINE_FAST_EMA_SPAN", 12),
			SlowEMASpan:         getEnvAsInt("ENGINE_SLOW_EMA_SPAN", 26),
			MACDSignalSpan:      getEnvAsInt("ENGINE_MACD_SIGNAL_SPAN", 9),
			RSIPeriod:           getEnvAsInt("ENGINE_RSI_PERIOD", 14),
			ATRPeriod:           getEnvAsInt("ENGINE_ATR_PERIOD", 14),
			BollingerPeriod:     getEnvAsInt("ENGINE_BOLLINGER_PERIOD", 20),
			BollingerMultiplier: getEnvAsFloat("ENGINE_BOLLINGER_MULTIPLIER", 2.0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if len(c.MarketData.Symbols) == 0 {
		return fmt.Errorf("MARKET_DATA_SYMBOLS must contain at least one symbol")
	}
	if c.MarketData.Provider != "mock" && c.MarketData.APIKey == "" {
		return fmt.Errorf("MARKET_DATA_API_KEY is required for provider %q", c.MarketData.Provider)
	}
	if c.Analyzer.HistoryDays < 1 {
		return fmt.Errorf("ANALYZER_HISTORY_DAYS must be at least 1")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Split by comma and trim spaces
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
