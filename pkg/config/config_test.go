package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PULSESOUL_DATA_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, 4.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 2, cfg.RateLimitBurst)
	assert.Equal(t, filepath.Join(dir, "pulsesoul.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "audio"), cfg.Audio.Dir)
	assert.Equal(t, filepath.Join(dir, "exports"), cfg.ExportDir)
	assert.Equal(t, filepath.Join(dir, "pulsesoul.log"), cfg.Log.File)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 7, cfg.CacheDays)
	assert.Equal(t, "mpv", cfg.Player)
	assert.Equal(t, []string{"--no-video", "--really-quiet"}, cfg.PlayerArgs)
	assert.Equal(t, 3, cfg.DownloadConcurrency)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PULSESOUL_DATA_DIR", t.TempDir())
	t.Setenv("PULSESOUL_API_BASE_URL", "http://localhost:9000/v1/")
	t.Setenv("PULSESOUL_HTTP_TIMEOUT", "5s")
	t.Setenv("PULSESOUL_DB_PATH", "/tmp/other.db")
	t.Setenv("PULSESOUL_DAILY_CACHE_DAYS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/v1", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.CacheDays)
}

func TestLoadConfigFileInDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PULSESOUL_DATA_DIR", dir)
	yaml := "log_level: debug\naudio_player: ffplay\naudio_player_args: -nodisp -autoexit\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "ffplay", cfg.Player)
	assert.Equal(t, []string{"-nodisp", "-autoexit"}, cfg.PlayerArgs)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	t.Setenv("PULSESOUL_DATA_DIR", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("download_concurrency: 8\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.DownloadConcurrency)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PULSESOUL_DATA_DIR", t.TempDir())
	t.Setenv("PULSESOUL_DAILY_CACHE_DAYS", "0")

	_, err := Load("")
	assert.ErrorContains(t, err, "daily_cache_days")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		API:   API{BaseURL: DefaultAPIBaseURL},
		Audio: Audio{DownloadConcurrency: 1},
		Daily: Daily{CacheDays: 1},
	}
	assert.NoError(t, cfg.Validate())

	cfg.API.Timeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg.API.Timeout = 0
	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
