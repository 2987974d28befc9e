package filehandler

import (
	"fmt"
	"io"
	"os"
)

// BackupFile copies a file to <path>.backup before it is mutated. An existing
// backup is left untouched so that repeated cleaning runs preserve the first
// original. Returns the backup path.
func BackupFile(filePath string) (string, error) {
	backupPath := filePath + ".backup"
	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, nil
	}

	src, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source for backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	return backupPath, nil
}
