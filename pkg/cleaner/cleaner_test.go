package cleaner_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediascrub/internal/config"
	"mediascrub/pkg/cleaner"
	"mediascrub/pkg/heuristic"
	"mediascrub/pkg/logger"
	"mediascrub/pkg/video"
)

func testConfig() config.Config {
	return config.Config{
		RemoveEXIF:          true,
		RemoveVideoMetadata: false,
		RandomizeTimestamps: true,
		RenameFiles:         false,
		BackupOriginals:     true,
		PixelNoiseIntensity: 0.01,
		LogLevel:            "ERROR",
	}
}

func newTestCleaner(t *testing.T, cfg config.Config) *cleaner.Cleaner {
	t.Helper()
	logs := logger.NewWithOutput(logger.FATAL, io.Discard)
	analyzer := heuristic.NewAnalyzer(nil, logs.GetLogger("Analyzer"))
	transcoder := video.New(video.Config{FfmpegBinPath: "/nonexistent/ffmpeg"}, logs.GetLogger("FFmpeg"))
	return cleaner.New(cfg, analyzer, transcoder, logs.GetLogger("Cleaner"))
}

// writeTestPNG writes a small valid PNG to dir and returns its path
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestCleanFile_MissingFile(t *testing.T) {
	c := newTestCleaner(t, testConfig())

	result := c.CleanFile(context.Background(), filepath.Join(t.TempDir(), "ghost.jpg"))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "File not found")
	assert.Empty(t, result.Operations)
}

func TestCleanFile_ImagePipeline(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "photo.png")

	c := newTestCleaner(t, testConfig())
	result := c.CleanFile(context.Background(), path)

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, path, result.FinalPath)
	assert.Contains(t, result.Operations, "Backup created")
	assert.Contains(t, result.Operations, "EXIF data removed")
	assert.Contains(t, result.Operations, "Pixels randomized")
	assert.Contains(t, result.Operations, "Timestamp randomized")

	// Backup holds the untouched original
	_, err := os.Stat(path + ".backup")
	assert.NoError(t, err)

	// Post-clean analysis is attached
	require.NotNil(t, result.Report)
	assert.Equal(t, path, result.Report.Path)
}

func TestCleanFile_NoBackupWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "photo.png")

	cfg := testConfig()
	cfg.BackupOriginals = false

	result := newTestCleaner(t, cfg).CleanFile(context.Background(), path)
	require.True(t, result.Success)
	assert.NotContains(t, result.Operations, "Backup created")

	_, err := os.Stat(path + ".backup")
	assert.True(t, os.IsNotExist(err))
}

func TestCleanFile_RenameChangesFinalPath(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "holiday.png")

	cfg := testConfig()
	cfg.RenameFiles = true

	result := newTestCleaner(t, cfg).CleanFile(context.Background(), path)
	require.True(t, result.Success, "errors: %v", result.Errors)

	assert.NotEqual(t, path, result.FinalPath)
	assert.True(t, strings.HasPrefix(filepath.Base(result.FinalPath), "cleaned_"))
	assert.Equal(t, ".png", filepath.Ext(result.FinalPath))

	_, err := os.Stat(result.FinalPath)
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "original name should be gone after rename")
}

func TestCleanFile_CorruptImageRecordsErrorButContinues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("this is not a png"), 0644))

	result := newTestCleaner(t, testConfig()).CleanFile(context.Background(), path)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
	// Later stages still ran: the timestamp stage applies to every file
	assert.Contains(t, result.Operations, "Timestamp randomized")
}

func TestCleanDirectory_FailuresAreIsolated(t *testing.T) {
	dir := t.TempDir()

	writeTestPNG(t, dir, "a.png")
	writeTestPNG(t, dir, "b.png")
	writeTestPNG(t, dir, "c.png")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad1.png"), []byte("junk"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad2.jpeg"), []byte("junk"), 0644))
	// Unsupported extensions are not counted at all
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644))

	summary, err := newTestCleaner(t, testConfig()).CleanDirectory(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalFiles)
	assert.Equal(t, 3, summary.ProcessedFiles)
	assert.Equal(t, 2, summary.FailedFiles)
	assert.Len(t, summary.FileResults, 5)
}

func TestCleanDirectory_Cancellation(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png")
	writeTestPNG(t, dir, "b.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := newTestCleaner(t, testConfig()).CleanDirectory(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.TotalFiles)
}

func TestCleanDirectory_MissingDirectory(t *testing.T) {
	_, err := newTestCleaner(t, testConfig()).CleanDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
