package cleaner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"mediascrub/pkg/filehandler"
	"mediascrub/pkg/jpegseg"
	"mediascrub/pkg/logger"
	"mediascrub/pkg/video"
)

// exifStripStage re-encodes an image from its decoded pixels, discarding
// EXIF and every other ancillary metadata block in the container.
type exifStripStage struct{}

func (exifStripStage) Name() string { return "exif-strip" }

func (exifStripStage) Applies(path string) bool {
	return filehandler.IsImageFile(path)
}

func (exifStripStage) Transform(_ context.Context, file *File) (string, error) {
	img, format, err := decodeImage(file.Path)
	if err != nil {
		return "", fmt.Errorf("exif strip: %w", err)
	}
	if err := encodeImage(img, file.Path, format); err != nil {
		return "", fmt.Errorf("exif strip: %w", err)
	}
	return "EXIF data removed", nil
}

// pixelNoiseStage perturbs a small fraction of pixels so pixel-exact
// fingerprinting and fragile LSB payloads do not survive cleaning.
type pixelNoiseStage struct {
	intensity float64
}

func (pixelNoiseStage) Name() string { return "pixel-noise" }

func (pixelNoiseStage) Applies(path string) bool {
	return filehandler.IsImageFile(path)
}

func (s pixelNoiseStage) Transform(_ context.Context, file *File) (string, error) {
	img, format, err := decodeImage(file.Path)
	if err != nil {
		return "", fmt.Errorf("pixel noise: %w", err)
	}
	noisy := addPixelNoise(img, s.intensity)
	if err := encodeImage(noisy, file.Path, format); err != nil {
		return "", fmt.Errorf("pixel noise: %w", err)
	}
	return "Pixels randomized", nil
}

// jpegSegmentStage removes APPn marker segments from JPEG files in place
type jpegSegmentStage struct{}

func (jpegSegmentStage) Name() string { return "jpeg-segments" }

func (jpegSegmentStage) Applies(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jpg" || ext == ".jpeg"
}

func (jpegSegmentStage) Transform(_ context.Context, file *File) (string, error) {
	data, err := filehandler.ReadFileBytes(file.Path)
	if err != nil {
		return "", fmt.Errorf("jpeg segment strip: %w", err)
	}

	cleaned, err := jpegseg.StripSegments(data)
	if err == jpegseg.ErrNotJPEG {
		// Wrong extension on a non-JPEG file: leave it alone
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("jpeg segment strip: %w", err)
	}

	if err := filehandler.SaveFile(cleaned, file.Path); err != nil {
		return "", fmt.Errorf("jpeg segment strip: %w", err)
	}
	return "JPEG segments cleaned", nil
}

// videoMetadataStage re-encodes video files through FFmpeg. When FFmpeg is
// not installed the stage skips with a log line instead of failing the file.
type videoMetadataStage struct {
	transcoder *video.Transcoder
	log        logger.Logger
}

func (videoMetadataStage) Name() string { return "video-metadata" }

func (videoMetadataStage) Applies(path string) bool {
	return filehandler.IsVideoFile(path)
}

func (s videoMetadataStage) Transform(ctx context.Context, file *File) (string, error) {
	if !s.transcoder.Available() {
		s.log.Emit(logger.WARNING, "Skipping video metadata removal for %s: FFmpeg unavailable\n", file.Path)
		return "", nil
	}
	if err := s.transcoder.StripMetadata(ctx, file.Path); err != nil {
		return "", fmt.Errorf("video metadata removal: %w", err)
	}
	return "Video metadata removed", nil
}

// timestampStage randomizes filesystem access/modification times
type timestampStage struct{}

func (timestampStage) Name() string { return "timestamp" }

func (timestampStage) Applies(string) bool { return true }

func (timestampStage) Transform(_ context.Context, file *File) (string, error) {
	if err := filehandler.RandomizeTimestamp(file.Path); err != nil {
		return "", fmt.Errorf("timestamp randomization: %w", err)
	}
	return "Timestamp randomized", nil
}

// renameStage replaces the filename with an anonymized one, keeping only the
// extension. It must run last: it changes the file's path.
type renameStage struct{}

func (renameStage) Name() string { return "rename" }

func (renameStage) Applies(string) bool { return true }

func (renameStage) Transform(_ context.Context, file *File) (string, error) {
	ext := filepath.Ext(file.Path)
	newName := filehandler.RandomFilename(ext)
	newPath := filepath.Join(filepath.Dir(file.Path), newName)

	if err := renameFile(file.Path, newPath); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	file.Path = newPath
	return fmt.Sprintf("File renamed to %s", newName), nil
}
