package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Recommendation modes
const (
	ModeScoring  = "scoring"
	ModeInsights = "insights"
	ModeAI       = "ai"
)

// Cache backends
const (
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBConn    string
	LogLevel  string
	JWTSecret string
	JWTTTL    time.Duration

	// AdvisorInviteCode gates POST /register; empty closes registration
	AdvisorInviteCode string

	RateFeedURL    string
	RateFeedMargin float64

	TextGenProvider string
	TextGenURL      string
	TextGenAPIKey   string
	TextGenModel    string
	TextGenTimeout  time.Duration

	RecommendationMode string
	CacheBackend       string
	RedisAddr          string
	RedisPassword      string
	HotCacheTTL        time.Duration
	RefreshSchedule    string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	CORSOrigins []string
}

// NewConfig loads configuration from a .env file if present, then environment variables
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	var errs []string
	duration := func(key string, def time.Duration) time.Duration {
		v, err := getEnvDuration(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	float := func(key string, def float64) float64 {
		v, err := getEnvFloat(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBConn:    getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=recommender sslmode=disable"),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
		JWTTTL:    duration("JWT_TTL", 24*time.Hour),

		AdvisorInviteCode: getEnv("ADVISOR_INVITE_CODE", ""),

		RateFeedURL:    getEnv("RATE_FEED_URL", ""),
		RateFeedMargin: float("RATE_FEED_MARGIN", 1.5),

		TextGenProvider: strings.ToLower(getEnv("TEXTGEN_PROVIDER", "simple")),
		TextGenURL:      getEnv("TEXTGEN_URL", ""),
		TextGenAPIKey:   getEnv("TEXTGEN_API_KEY", ""),
		TextGenModel:    getEnv("TEXTGEN_MODEL", ""),
		TextGenTimeout:  duration("TEXTGEN_TIMEOUT", 60*time.Second),

		RecommendationMode: strings.ToLower(getEnv("RECOMMENDATION_MODE", ModeScoring)),
		CacheBackend:       strings.ToLower(getEnv("CACHE_BACKEND", CachePostgres)),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		HotCacheTTL:        duration("HOT_CACHE_TTL", 10*time.Minute),
		RefreshSchedule:    getEnv("REFRESH_SCHEDULE", "0 3 * * *"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "advisor@bank.local"),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	switch cfg.RecommendationMode {
	case ModeScoring, ModeInsights, ModeAI:
	default:
		return nil, fmt.Errorf("RECOMMENDATION_MODE must be one of scoring, insights, ai: got %q", cfg.RecommendationMode)
	}
	switch cfg.CacheBackend {
	case CachePostgres:
	case CacheRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("CACHE_BACKEND must be postgres or redis: got %q", cfg.CacheBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %v", key, err)
	}
	return d, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %v", key, err)
	}
	return f, nil
}

func getEnvList(key string, defaultVal []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
