package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	LogLevel          string
	DBPath            string
	CORSOrigins       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	AggregateCacheTTL time.Duration
	KThreshold        int
	BucketRulesPath   string
	LifecycleSchedule string
	IPHashCost        int
	RateLimitMax      int
	RateLimitWindow   time.Duration
}

var AppConfig *Config

// Load reads .env when present and fills AppConfig from the environment
func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:              GetEnv("PORT", "3000"),
		Env:               GetEnv("ENV", "development"),
		LogLevel:          strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		DBPath:            GetEnv("DB_PATH", "./data/ocai-hub.db"),
		CORSOrigins:       GetEnv("CORS_ORIGINS", "*"),
		RedisAddr:         GetEnv("REDIS_ADDR", ""),
		RedisPassword:     GetEnv("REDIS_PASSWORD", ""),
		RedisDB:           GetEnvInt("REDIS_DB", 0),
		AggregateCacheTTL: GetEnvDuration("AGGREGATE_CACHE_TTL", 5*time.Minute),
		KThreshold:        GetEnvInt("K_ANONYMITY_THRESHOLD", 7),
		BucketRulesPath:   GetEnv("BUCKET_RULES_PATH", ""),
		LifecycleSchedule: GetEnv("LIFECYCLE_SCHEDULE", "*/5 * * * *"),
		IPHashCost:        GetEnvInt("IP_HASH_COST", 10),
		RateLimitMax:      GetEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   GetEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
	}
	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt falls back to defaultValue when the variable is unset or not a number
func GetEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetEnvDuration accepts Go durations ("90s", "15m") or a bare number of seconds
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
