// Package cleaner drives the per-file transform pipeline: an ordered list of
// optional stages selected from configuration, applied to one file at a time.
package cleaner

import (
	"context"
	"fmt"
	"os"

	"mediascrub/internal/config"
	"mediascrub/pkg/filehandler"
	"mediascrub/pkg/heuristic"
	"mediascrub/pkg/logger"
	"mediascrub/pkg/models"
	"mediascrub/pkg/video"
)

// Cleaner applies the configured transform stages to media files. A Cleaner
// is safe for reuse across files; it holds no per-file state.
type Cleaner struct {
	cfg      config.Config
	stages   []Stage
	analyzer *heuristic.Analyzer
	log      logger.Logger
}

// New builds a Cleaner whose stage list reflects the configuration. The
// stage order is fixed: metadata and content transforms first, then
// timestamp randomization, then the rename (which changes the path and so
// must come last).
func New(cfg config.Config, analyzer *heuristic.Analyzer, transcoder *video.Transcoder, log logger.Logger) *Cleaner {
	var stages []Stage

	if cfg.RemoveEXIF {
		stages = append(stages, exifStripStage{})
	}
	stages = append(stages, pixelNoiseStage{intensity: cfg.PixelNoiseIntensity})
	stages = append(stages, jpegSegmentStage{})
	if cfg.RemoveVideoMetadata {
		stages = append(stages, videoMetadataStage{transcoder: transcoder, log: log})
	}
	if cfg.RandomizeTimestamps {
		stages = append(stages, timestampStage{})
	}
	if cfg.RenameFiles {
		stages = append(stages, renameStage{})
	}

	return &Cleaner{
		cfg:      cfg,
		stages:   stages,
		analyzer: analyzer,
		log:      log,
	}
}

// CleanFile runs every applicable stage against a single file. Stage
// failures are recorded on the result but do not stop later stages; only a
// missing file or a failed backup aborts processing. The final report from
// the heuristic analyzer is attached when analysis succeeds.
func (c *Cleaner) CleanFile(ctx context.Context, path string) models.CleaningResult {
	result := models.CleaningResult{
		OriginalPath: path,
		FinalPath:    path,
	}

	if _, err := os.Stat(path); err != nil {
		result.AddError("File not found")
		return result
	}

	if c.cfg.BackupOriginals {
		if _, err := filehandler.BackupFile(path); err != nil {
			c.log.Emit(logger.ERROR, "Backup failed for %s: %v\n", path, err)
			result.AddError("Backup creation failed")
			return result
		}
		result.AddOperation("Backup created")
	}

	file := &File{Path: path}
	for _, stage := range c.stages {
		if !stage.Applies(file.Path) {
			continue
		}

		op, err := stage.Transform(ctx, file)
		if err != nil {
			c.log.Emit(logger.ERROR, "Stage %s failed for %s: %v\n", stage.Name(), file.Path, err)
			result.AddError(err.Error())
			continue
		}
		if op != "" {
			result.AddOperation(op)
		}
	}

	result.FinalPath = file.Path
	result.Success = len(result.Errors) == 0

	if c.analyzer != nil {
		if report, err := c.analyzer.Analyze(file.Path); err == nil {
			result.Report = report
		}
	}

	return result
}

// CleanDirectory cleans every supported media file beneath dir in traversal
// order. Files are independent: one failure never prevents processing of the
// rest. Cancellation is cooperative and checked between files.
func (c *Cleaner) CleanDirectory(ctx context.Context, dir string) (*models.BatchSummary, error) {
	files, err := filehandler.FilesInDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("directory scan failed: %w", err)
	}

	summary := &models.BatchSummary{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			c.log.Emit(logger.WARNING, "Batch cancelled after %d of %d files\n", summary.TotalFiles, len(files))
			return summary, err
		}

		result := c.CleanFile(ctx, path)
		summary.Record(result)

		if result.Success {
			c.log.Emit(logger.INFO, "Successfully processed: %s\n", path)
		} else {
			c.log.Emit(logger.ERROR, "Failed to process: %s\n", path)
		}
	}

	return summary, nil
}

func renameFile(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
