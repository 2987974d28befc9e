package filehandler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize caps whole-file reads. Every transform in this tool is a
// read/transform/write over a full buffer, so unbounded video inputs would
// otherwise exhaust memory.
const MaxFileSize = 100 * 1024 * 1024 // 100MB

// ErrFileTooLarge is returned when a file exceeds MaxFileSize
var ErrFileTooLarge = errors.New("file too large (max 100MB)")

// SupportedImageFormats maps image file extensions to their format names
var SupportedImageFormats = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".tiff": "tiff",
	".bmp":  "bmp",
}

// SupportedVideoFormats maps video file extensions to their container names
var SupportedVideoFormats = map[string]string{
	".mp4": "mp4",
	".avi": "avi",
	".mov": "mov",
	".mkv": "mkv",
	".wmv": "wmv",
}

// IsImageFile checks if a file is a supported image based on extension
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := SupportedImageFormats[ext]
	return ok
}

// IsVideoFile checks if a file is a supported video based on extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := SupportedVideoFormats[ext]
	return ok
}

// IsSupportedFile reports whether the file is in scope for cleaning at all
func IsSupportedFile(path string) bool {
	return IsImageFile(path) || IsVideoFile(path)
}

// ReadFileBytes reads a file and returns its content as a byte slice,
// refusing files beyond MaxFileSize.
func ReadFileBytes(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	size := info.Size()
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	content := make([]byte, size)
	if _, err := io.ReadFull(file, content); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return content, nil
}

// SaveFile saves data to a file, creating parent directories as needed
func SaveFile(data []byte, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}

// FilesInDirectory returns the supported media files beneath dirPath in
// directory traversal order.
func FilesInDirectory(dirPath string) ([]string, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var files []string
	err = filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if IsSupportedFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}

// GetFileSize returns the size of a file in bytes
func GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
