// Package archive moves the output of earlier runs out of the way, so a new
// run starts from empty bucket files instead of appending to old ones.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Dir is the directory below the base directory that holds archived runs.
const Dir = "archive"

// ArchiveBuckets moves every existing bucket directory below baseDir into
// <baseDir>/archive/run-<timestamp>/. It returns the archive path, or "" when
// none of the buckets existed and nothing was moved.
func ArchiveBuckets(baseDir string, buckets []string) (string, error) {
	var existing []string
	for _, name := range buckets {
		info, err := os.Stat(filepath.Join(baseDir, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to inspect bucket directory: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("bucket path is not a directory: %s", filepath.Join(baseDir, name))
		}
		existing = append(existing, name)
	}
	if len(existing) == 0 {
		return "", nil
	}

	archivePath := filepath.Join(baseDir, Dir, "run-"+time.Now().Format("20060102-150405"))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(baseDir, Dir, "run-"+time.Now().Format("20060102-150405.000000"))
	}

	if err := os.MkdirAll(archivePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	for _, name := range existing {
		if err := os.Rename(filepath.Join(baseDir, name), filepath.Join(archivePath, name)); err != nil {
			return "", fmt.Errorf("failed to archive bucket %s: %w", name, err)
		}
	}

	return archivePath, nil
}
