package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DATA_SOURCE", "DATA_DIR", "PLAYBACK_TICK_MS", "PLAYBACK_STEP", "DB_HOST"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "50051", cfg.App.GRPCPort)
	assert.Equal(t, SourceFiles, cfg.Data.Source)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, time.Second, cfg.Playback.Tick)
	assert.Equal(t, 100.0, cfg.Playback.Step)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_SOURCE", SourcePostgres)
	t.Setenv("PLAYBACK_TICK_MS", "250")
	t.Setenv("PLAYBACK_STEP", "50.5")
	t.Setenv("DB_HOST", "db")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, SourcePostgres, cfg.Data.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Tick)
	assert.Equal(t, 50.5, cfg.Playback.Step)
	assert.Equal(t, "db", cfg.Database.Host)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("PLAYBACK_TICK_MS", "fast")
	t.Setenv("PLAYBACK_STEP", "far")

	assert.Equal(t, 1000, getEnvAsInt("PLAYBACK_TICK_MS", 1000))
	assert.Equal(t, 100.0, getEnvAsFloat("PLAYBACK_STEP", 100))
	assert.Equal(t, "x", getEnv("INSIDEOR_UNSET_KEY", "x"))
}
