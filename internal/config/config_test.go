package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ModeScoring, cfg.RecommendationMode)
	assert.Equal(t, CachePostgres, cfg.CacheBackend)
	assert.Equal(t, 60*time.Second, cfg.TextGenTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.AdvisorInviteCode)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("RECOMMENDATION_MODE", "AI")
	t.Setenv("TEXTGEN_TIMEOUT", "5s")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RATE_FEED_MARGIN", "2.25")
	t.Setenv("ADVISOR_INVITE_CODE", "join-us")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeAI, cfg.RecommendationMode)
	assert.Equal(t, 5*time.Second, cfg.TextGenTimeout)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2.25, cfg.RateFeedMargin)
	assert.Equal(t, "join-us", cfg.AdvisorInviteCode)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown mode", "RECOMMENDATION_MODE", "magic"},
		{"bad duration", "TEXTGEN_TIMEOUT", "soon"},
		{"bad margin", "RATE_FEED_MARGIN", "lots"},
		{"unknown backend", "CACHE_BACKEND", "memcached"},
		{"redis without address", "CACHE_BACKEND", "redis"},
		{"empty jwt secret", "JWT_SECRET", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
