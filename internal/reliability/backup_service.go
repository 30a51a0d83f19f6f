package reliability

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/database"
)

const (
	backupPrefix     = "portfolio-analyser-backup-"
	backupTimeLayout = "2006-01-02-150405"
	minBackupsToKeep = 3
	metadataFileName = "backup-metadata.json"
)

// BackupService snapshots the databases, archives them and uploads the
// archive to object storage.
type BackupService struct {
	databases []*database.DB
	s3        *S3Client
	dataDir   string
	keepCount int
	log       zerolog.Logger
}

// BackupMetadata describes the contents of a backup archive.
type BackupMetadata struct {
	CreatedAt time.Time        `json:"created_at"`
	Databases []DatabaseBackup `json:"databases"`
}

// DatabaseBackup records one database's snapshot details.
type DatabaseBackup struct {
	Name      string `json:"name"`
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// NewBackupService creates a backup service for the given databases.
func NewBackupService(databases []*database.DB, s3 *S3Client, dataDir string, keepCount int, log zerolog.Logger) *BackupService {
	if keepCount < minBackupsToKeep {
		keepCount = minBackupsToKeep
	}
	return &BackupService{
		databases: databases,
		s3:        s3,
		dataDir:   dataDir,
		keepCount: keepCount,
		log:       log.With().Str("service", "backup").Logger(),
	}
}

// Run performs a full backup cycle: snapshot, archive, upload, rotate.
func (s *BackupService) Run(ctx context.Context) error {
	start := time.Now()
	s.log.Info().Msg("Starting backup")

	stagingDir, err := os.MkdirTemp(s.dataDir, "backup-staging-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	metadata, err := s.stageDatabases(ctx, stagingDir)
	if err != nil {
		return err
	}

	archivePath := filepath.Join(stagingDir, backupPrefix+metadata.CreatedAt.UTC().Format(backupTimeLayout)+".tar.gz")
	if err := s.createArchive(stagingDir, archivePath, metadata); err != nil {
		return err
	}

	archive, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	archiveInfo, err := archive.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive: %w", err)
	}

	key := filepath.Base(archivePath)
	if err := s.s3.Upload(ctx, key, archive); err != nil {
		return err
	}

	s.log.Info().
		Str("key", key).
		Int64("size_bytes", archiveInfo.Size()).
		Dur("elapsed_ms", time.Since(start)).
		Msg("Backup uploaded")

	if err := s.RotateOldBackups(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Backup rotation failed")
	}
	return nil
}

// stageDatabases snapshots each database into the staging directory using
// VACUUM INTO, which produces a consistent copy without blocking writers.
func (s *BackupService) stageDatabases(ctx context.Context, stagingDir string) (*BackupMetadata, error) {
	metadata := &BackupMetadata{CreatedAt: time.Now().UTC()}

	for _, db := range s.databases {
		fileName := db.Name() + ".db"
		stagedPath := filepath.Join(stagingDir, fileName)

		if _, err := db.Conn().ExecContext(ctx, "VACUUM INTO ?", stagedPath); err != nil {
			return nil, fmt.Errorf("failed to snapshot %s: %w", db.Name(), err)
		}

		checksum, size, err := fileChecksum(stagedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to checksum %s: %w", db.Name(), err)
		}

		metadata.Databases = append(metadata.Databases, DatabaseBackup{
			Name:      db.Name(),
			FileName:  fileName,
			SizeBytes: size,
			SHA256:    checksum,
		})
		s.log.Debug().Str("database", db.Name()).Int64("size_bytes", size).Msg("Database staged")
	}
	return metadata, nil
}

// createArchive writes a tar.gz containing the staged databases and the
// metadata file.
func (s *BackupService) createArchive(stagingDir, archivePath string, metadata *BackupMetadata) error {
	metadataPath := filepath.Join(stagingDir, metadataFileName)
	metadataBytes, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup metadata: %w", err)
	}
	if err := os.WriteFile(metadataPath, metadataBytes, 0644); err != nil {
		return fmt.Errorf("failed to write backup metadata: %w", err)
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	gzw := gzip.NewWriter(out)
	defer gzw.Close()
	tw := tar.NewWriter(gzw)
	defer tw.Close()

	files := []string{metadataPath}
	for _, db := range metadata.Databases {
		files = append(files, filepath.Join(stagingDir, db.FileName))
	}
	for _, path := range files {
		if err := addFileToArchive(tw, path); err != nil {
			return err
		}
	}
	return nil
}

func addFileToArchive(tw *tar.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for archiving: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build tar header for %s: %w", path, err)
	}
	header.Name = filepath.Base(path)

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write tar header for %s: %w", path, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return nil
}

// ListBackups returns stored backups, newest first.
func (s *BackupService) ListBackups(ctx context.Context) ([]ObjectInfo, error) {
	return s.s3.List(ctx, backupPrefix)
}

// RotateOldBackups deletes backups beyond the retention count. At least
// minBackupsToKeep always survive regardless of configuration.
func (s *BackupService) RotateOldBackups(ctx context.Context) error {
	backups, err := s.ListBackups(ctx)
	if err != nil {
		return err
	}
	if len(backups) <= s.keepCount {
		return nil
	}

	for _, obj := range backups[s.keepCount:] {
		if err := s.s3.Delete(ctx, obj.Key); err != nil {
			s.log.Warn().Err(err).Str("key", obj.Key).Msg("Failed to delete old backup")
			continue
		}
		s.log.Info().Str("key", obj.Key).Msg("Rotated old backup")
	}
	return nil
}

// ParseBackupTime extracts the creation time from a backup key. Returns an
// error for keys that do not match the backup naming scheme.
func ParseBackupTime(key string) (time.Time, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(key, backupPrefix), ".tar.gz")
	if name == key {
		return time.Time{}, fmt.Errorf("not a backup key: %s", key)
	}
	return time.Parse(backupTimeLayout, name)
}

func fileChecksum(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}
