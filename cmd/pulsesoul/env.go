package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/pulsesoul/pkg/config"
	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/integrations"
	"github.com/kerbaras/pulsesoul/pkg/logging"
	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/kerbaras/pulsesoul/pkg/sources"
	"github.com/kerbaras/pulsesoul/pkg/utils"
	"go.uber.org/zap"
)

// environment is what every command runs against, built once per process.
type environment struct {
	cfg      *config.Config
	logger   *zap.Logger
	repo     *data.Repository
	api      *utils.API
	gateway  *sources.AlQuran
	settings *data.Settings
}

var env *environment

func setup(configFile string, logToFile bool) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logPath := ""
	if logToFile {
		logPath = cfg.Log.File
	}
	logger, err := logging.New(cfg.Level, logPath)
	if err != nil {
		return err
	}

	repo, err := data.NewDuckDBRepository(cfg.DBPath)
	if err != nil {
		logger.Error("open store", zap.String("path", cfg.DBPath), zap.Error(err))
		return fmt.Errorf("failed to open store: %w", err)
	}

	api := utils.NewAPI(cfg.API.BaseURL,
		utils.WithTimeout(cfg.API.Timeout),
		utils.WithRateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		utils.WithLogger(logger.Named("api")),
	)

	env = &environment{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		api:      api,
		gateway:  sources.NewAlQuran(api),
		settings: data.NewSettings(repo, logger),
	}
	logger.Debug("environment ready", zap.String("db", cfg.DBPath), zap.String("api", cfg.API.BaseURL))
	return nil
}

func teardown() {
	if env == nil {
		return
	}
	if err := env.repo.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close store: %v\n", err)
	}
	_ = env.logger.Sync()
	env = nil
}

func (e *environment) player() integrations.Player {
	return integrations.NewCachedPlayer(
		integrations.NewCommandPlayer(e.cfg.Player, e.cfg.PlayerArgs, e.logger.Named("audio")),
		e.cfg.Audio.Dir,
	)
}

func (e *environment) dailyVerse() *services.DailyVerse {
	return services.NewDailyVerse(
		e.gateway,
		data.NewDailyCache(e.repo, e.cfg.CacheDays, e.logger),
		data.NewBookmarks(e.repo, e.logger),
		e.player(),
		e.logger.Named("daily"),
	)
}

func (e *environment) explorer() *services.Explorer {
	return services.NewExplorer(
		e.gateway,
		data.NewProgressLog(e.repo, e.logger),
		data.NewFavorites(e.repo, e.logger),
		e.player(),
		e.logger.Named("explorer"),
	)
}

func (e *environment) audioDownloader() *services.AudioDownloader {
	return services.NewAudioDownloader(e.gateway, e.api, e.cfg.Audio.Dir, e.cfg.DownloadConcurrency, e.logger.Named("download"))
}
