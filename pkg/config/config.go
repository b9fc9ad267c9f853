package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix         = "PULSESOUL"
	DefaultAPIBaseURL = "https://api.alquran.cloud/v1"
	dataDirName       = ".pulsesoul"
)

type (
	Config struct {
		API
		Storage
		Log
		Audio
		Daily
	}

	API struct {
		BaseURL            string
		Timeout            time.Duration // zero means no timeout
		RateLimitPerSecond float64
		RateLimitBurst     int
	}
	Storage struct {
		DataDir   string
		DBPath    string
		ExportDir string
	}
	Log struct {
		Level string
		File  string
	}
	Audio struct {
		Dir                 string
		Player              string
		PlayerArgs          []string
		DownloadConcurrency int
	}
	Daily struct {
		CacheDays int // distinct days kept in the daily verse cache
	}
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dataDirName
	}
	return filepath.Join(home, dataDirName)
}

// Load reads configuration from PULSESOUL_* environment variables and an
// optional YAML file. With an empty configFile, config.yaml in the data
// directory is used when present.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("http_timeout", "0s")
	v.SetDefault("rate_limit_per_second", 4)
	v.SetDefault("rate_limit_burst", 2)
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("db_path", "")
	v.SetDefault("audio_dir", "")
	v.SetDefault("export_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("daily_cache_days", 7)
	v.SetDefault("audio_player", "mpv")
	v.SetDefault("audio_player_args", "--no-video --really-quiet")
	v.SetDefault("download_concurrency", 3)

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(v.GetString("data_dir"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	dataDir := v.GetString("data_dir")
	cfg := &Config{
		API: API{
			BaseURL:            strings.TrimRight(v.GetString("api_base_url"), "/"),
			Timeout:            v.GetDuration("http_timeout"),
			RateLimitPerSecond: v.GetFloat64("rate_limit_per_second"),
			RateLimitBurst:     v.GetInt("rate_limit_burst"),
		},
		Storage: Storage{
			DataDir:   dataDir,
			DBPath:    orJoin(v.GetString("db_path"), dataDir, "pulsesoul.db"),
			ExportDir: orJoin(v.GetString("export_dir"), dataDir, "exports"),
		},
		Log: Log{
			Level: v.GetString("log_level"),
			File:  orJoin(v.GetString("log_file"), dataDir, "pulsesoul.log"),
		},
		Audio: Audio{
			Dir:                 orJoin(v.GetString("audio_dir"), dataDir, "audio"),
			Player:              v.GetString("audio_player"),
			PlayerArgs:          strings.Fields(v.GetString("audio_player_args")),
			DownloadConcurrency: v.GetInt("download_concurrency"),
		},
		Daily: Daily{
			CacheDays: v.GetInt("daily_cache_days"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func orJoin(value, dir, name string) string {
	if value != "" {
		return value
	}
	return filepath.Join(dir, name)
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", c.Timeout)
	}
	if c.CacheDays < 1 {
		return fmt.Errorf("daily_cache_days must be at least 1, got %d", c.CacheDays)
	}
	if c.DownloadConcurrency < 1 {
		return fmt.Errorf("download_concurrency must be at least 1, got %d", c.DownloadConcurrency)
	}
	return nil
}
