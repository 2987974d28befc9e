// Package video strips container metadata from video files by re-encoding
// them through FFmpeg. A full re-encode drops tag atoms, encoder fingerprints
// and the audio track, leaving only the picture stream.
package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/floostack/transcoder/ffmpeg"

	"mediascrub/pkg/logger"
)

// Config locates the FFmpeg binaries on the host
type Config struct {
	FfmpegBinPath  string
	FfprobeBinPath string
}

// Transcoder wraps an FFmpeg installation. Availability is probed once at
// construction; when the binary is missing, video operations degrade to a
// logged no-op rather than failing the whole run.
type Transcoder struct {
	cfg       Config
	log       logger.Logger
	available bool
}

// New creates a Transcoder, checking that the configured FFmpeg binary
// actually exists on this host.
func New(cfg Config, log logger.Logger) *Transcoder {
	available := true
	if _, err := os.Stat(cfg.FfmpegBinPath); err != nil {
		if _, lookErr := exec.LookPath("ffmpeg"); lookErr != nil {
			available = false
			log.Emit(logger.WARNING, "FFmpeg not found at %s or on PATH; video metadata removal disabled\n", cfg.FfmpegBinPath)
		} else {
			cfg.FfmpegBinPath = "ffmpeg"
			cfg.FfprobeBinPath = "ffprobe"
		}
	}

	return &Transcoder{cfg: cfg, log: log, available: available}
}

// Available reports whether FFmpeg was found at construction time
func (t *Transcoder) Available() bool {
	return t.available
}

// StripMetadata re-encodes the video at path into a temporary file and
// replaces the original with it. The temporary file keeps the original
// extension so FFmpeg infers the same container.
func (t *Transcoder) StripMetadata(ctx context.Context, path string) error {
	if !t.available {
		return fmt.Errorf("ffmpeg unavailable, cannot strip metadata from %s", path)
	}

	ext := filepath.Ext(path)
	tempPath := path[:len(path)-len(ext)] + ".scrubtmp" + ext

	videoCodec := "libx264"
	skipAudio := true
	opts := ffmpeg.Options{
		VideoCodec: &videoCodec,
		SkipAudio:  &skipAudio,
	}

	progress, err := ffmpeg.
		New(&ffmpeg.Config{
			FfmpegBinPath:   t.cfg.FfmpegBinPath,
			FfprobeBinPath:  t.cfg.FfprobeBinPath,
			ProgressEnabled: true,
		}).
		Input(path).
		Output(tempPath).
		WithContext(&ctx).
		Start(opts)
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("ffmpeg re-encode failed for %s: %w", path, err)
	}

	// Drain progress until the command completes
	for prog := range progress {
		t.log.Emit(logger.VERBOSE, "Re-encoding %s: %.1f%%\n", path, prog.GetProgress())
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace original video: %w", err)
	}

	return nil
}
