package reliability

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackupTime(t *testing.T) {
	ts, err := ParseBackupTime("portfolio-analyser-backup-2026-08-01-030000.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC), ts)

	_, err = ParseBackupTime("unrelated-object.bin")
	assert.Error(t, err)
}

func TestFileChecksum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.db")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	checksum, size, err := fileChecksum(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	// sha256("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", checksum)
}

func TestCreateArchiveContainsMetadataAndDatabases(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analysis.db"), []byte("analysis-data"), 0644))

	svc := &BackupService{dataDir: dir, keepCount: minBackupsToKeep}
	metadata := &BackupMetadata{
		CreatedAt: time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC),
		Databases: []DatabaseBackup{{Name: "analysis", FileName: "analysis.db", SizeBytes: 13}},
	}

	archivePath := filepath.Join(dir, "backup.tar.gz")
	require.NoError(t, svc.createArchive(dir, archivePath, metadata))

	f, err := os.Open(archivePath)
	require.NoError(t, err)
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gzr)

	names := map[string]bool{}
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names[header.Name] = true
	}

	assert.True(t, names[metadataFileName])
	assert.True(t, names["analysis.db"])
}
