package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ProductListTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.ProductDetailTTL)
	assert.Equal(t, time.Hour, cfg.Cache.CategoryTTL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.PopularTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.Equal(t, 18, cfg.Verification.MinimumAge)
	assert.Equal(t, 24*time.Hour, cfg.Verification.TokenTTL)
	assert.Equal(t, "15 0 * * *", cfg.Analytics.RollupSchedule)
	assert.Equal(t, "UTC", cfg.Analytics.Timezone)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.MaxRequestBodySize = "2M"
	cfg.RateLimit.Requests = 10
	cfg.RateLimit.Burst = 3
	cfg.Verification.MinimumAge = 21

	applyDefaults(cfg)

	assert.Equal(t, "2M", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, 21, cfg.Verification.MinimumAge)
}
