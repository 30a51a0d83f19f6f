// Package main is the entry point for the portfolio analyser service. It
// wires the databases, the analysis pipeline and the HTTP server, then runs
// until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monjit-TAM/portfolio-analyser/internal/config"
	"github.com/monjit-TAM/portfolio-analyser/internal/database"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/aggregation"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/analysis"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/metrics"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/recommendation"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/valuation"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
	"github.com/monjit-TAM/portfolio-analyser/internal/reliability"
	"github.com/monjit-TAM/portfolio-analyser/internal/server"
	"github.com/monjit-TAM/portfolio-analyser/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting portfolio analyser")

	// Durable run history and the rebuildable result cache live in separate
	// databases with different durability profiles.
	analysisDB, err := database.New(database.Config{
		Path:    cfg.AnalysisDBPath(),
		Profile: database.ProfileStandard,
		Name:    "analysis",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open analysis database")
	}
	defer analysisDB.Close()

	cacheDB, err := database.New(database.Config{
		Path:    cfg.CacheDBPath(),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	repo := analysis.NewRepository(analysisDB.Conn(), log)
	if err := repo.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize run repository")
	}

	cache := analysis.NewCache(cacheDB.Conn(), time.Duration(cfg.CacheTTLMinutes)*time.Minute, log)
	if err := cache.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize result cache")
	}

	ref := refdata.Defaults()
	analysisService := analysis.NewService(
		valuation.NewService(ref, log),
		aggregation.NewService(log),
		metrics.NewEngine(ref, log),
		recommendation.NewEngine(ref, log),
		repo,
		cache,
		log,
	)

	var backupService *reliability.BackupService
	if cfg.Backup.Enabled {
		s3Client, err := reliability.NewS3Client(context.Background(), cfg.Backup, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create backup storage client")
		}
		backupService = reliability.NewBackupService(
			[]*database.DB{analysisDB, cacheDB},
			s3Client,
			cfg.DataDir,
			cfg.Backup.KeepCount,
			log,
		)
		log.Info().Str("bucket", cfg.Backup.Bucket).Msg("Backups enabled")
	}

	maintenance := reliability.NewMaintenanceService(
		analysisDB,
		cacheDB,
		repo,
		cache,
		cfg.RetentionDays,
		backupService,
		log,
	)
	if err := maintenance.Start(cfg.Backup.Schedule); err != nil {
		log.Fatal().Err(err).Msg("Failed to start maintenance scheduler")
	}
	defer maintenance.Stop()

	srv := server.New(server.Config{
		Log:        log,
		Config:     cfg,
		Analysis:   analysisService,
		AnalysisDB: analysisDB,
		CacheDB:    cacheDB,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
