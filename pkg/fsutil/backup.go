package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is the suffix used for sidecar backup files.
const BackupSuffix = ".looneygrep.bak"

// BackupPath returns the sidecar backup path for the given file.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the file at path to its sidecar backup location
// if a backup does not already exist. Returns true when a backup was written.
//
// Backup creation is idempotent: an existing backup is never overwritten,
// so repeated replace runs keep the original content.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, info, err := ReadFile(ctx, path)
	if err != nil {
		return false, fmt.Errorf("read original: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}
