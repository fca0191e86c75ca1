package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "emotehub", cfg.DBName)
	assert.Equal(t, "emotes", cfg.EmotesCollection)
	assert.Equal(t, "audit", cfg.AuditCollection)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.False(t, cfg.LegacyDefaultPermissions)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_NAME", "emotehub_test")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("LEGACY_DEFAULT_PERMISSIONS", "true")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "emotehub_test", cfg.DBName)
	assert.Equal(t, time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.LegacyDefaultPermissions)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "too-short")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "15")
	assert.Equal(t, 15*time.Second, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "garbage")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))
}
