package reliability

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/database"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/analysis"
)

const (
	nightlySchedule = "0 2 * * *"
	weeklySchedule  = "0 4 * * 0"
)

// MaintenanceService runs scheduled housekeeping: WAL checkpoints, run
// pruning, cache eviction and periodic vacuums.
type MaintenanceService struct {
	analysisDB *database.DB
	cacheDB    *database.DB
	repo       *analysis.Repository
	cache      *analysis.Cache

	retentionDays int
	cron          *cron.Cron
	backup        *BackupService
	log           zerolog.Logger
}

// NewMaintenanceService creates the maintenance scheduler. backup may be nil
// when backups are disabled.
func NewMaintenanceService(analysisDB, cacheDB *database.DB, repo *analysis.Repository, cache *analysis.Cache, retentionDays int, backup *BackupService, log zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{
		analysisDB:    analysisDB,
		cacheDB:       cacheDB,
		repo:          repo,
		cache:         cache,
		retentionDays: retentionDays,
		cron:          cron.New(),
		backup:        backup,
		log:           log.With().Str("service", "maintenance").Logger(),
	}
}

// Start registers the scheduled jobs and starts the scheduler.
func (s *MaintenanceService) Start(backupSchedule string) error {
	if _, err := s.cron.AddFunc(nightlySchedule, s.RunNightly); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(weeklySchedule, s.RunWeekly); err != nil {
		return err
	}

	if s.backup != nil {
		if _, err := s.cron.AddFunc(backupSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			if err := s.backup.Run(ctx); err != nil {
				s.log.Error().Err(err).Msg("Scheduled backup failed")
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.log.Info().
		Str("nightly", nightlySchedule).
		Str("weekly", weeklySchedule).
		Bool("backup_enabled", s.backup != nil).
		Msg("Maintenance scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *MaintenanceService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Maintenance scheduler stopped")
}

// RunNightly checkpoints the WALs, prunes old runs and evicts expired cache
// entries.
func (s *MaintenanceService) RunNightly() {
	start := time.Now()
	s.log.Info().Msg("Starting nightly maintenance")

	for _, db := range []*database.DB{s.analysisDB, s.cacheDB} {
		if db == nil {
			continue
		}
		if err := db.WALCheckpoint("TRUNCATE"); err != nil {
			s.log.Warn().Err(err).Str("database", db.Name()).Msg("WAL checkpoint failed")
		}
	}

	if s.repo != nil {
		cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
		deleted, err := s.repo.Prune(cutoff)
		if err != nil {
			s.log.Warn().Err(err).Msg("Run pruning failed")
		} else if deleted > 0 {
			s.log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Pruned old runs")
		}
	}

	if s.cache != nil {
		evicted, err := s.cache.EvictExpired()
		if err != nil {
			s.log.Warn().Err(err).Msg("Cache eviction failed")
		} else if evicted > 0 {
			s.log.Info().Int64("evicted", evicted).Msg("Evicted expired cache entries")
		}
	}

	s.log.Info().Dur("elapsed_ms", time.Since(start)).Msg("Nightly maintenance complete")
}

// RunWeekly runs integrity checks and vacuums both databases.
func (s *MaintenanceService) RunWeekly() {
	start := time.Now()
	s.log.Info().Msg("Starting weekly maintenance")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	for _, db := range []*database.DB{s.analysisDB, s.cacheDB} {
		if db == nil {
			continue
		}
		if err := db.HealthCheck(ctx); err != nil {
			s.log.Error().Err(err).Str("database", db.Name()).Msg("Integrity check failed")
			continue
		}
		s.vacuum(db)
	}

	s.log.Info().Dur("elapsed_ms", time.Since(start)).Msg("Weekly maintenance complete")
}

// vacuum reclaims space and logs the size change.
func (s *MaintenanceService) vacuum(db *database.DB) {
	sizeBefore := fileSize(db.Path())

	if err := db.Vacuum(); err != nil {
		s.log.Warn().Err(err).Str("database", db.Name()).Msg("Vacuum failed")
		return
	}

	sizeAfter := fileSize(db.Path())
	s.log.Info().
		Str("database", db.Name()).
		Int64("size_before_bytes", sizeBefore).
		Int64("size_after_bytes", sizeAfter).
		Int64("reclaimed_bytes", sizeBefore-sizeAfter).
		Msg("Database vacuumed")
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
