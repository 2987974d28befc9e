package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config is the flat user configuration for a cleaning run. Every key has a
// documented default so that running with no config file at all is valid.
type Config struct {
	RemoveEXIF          bool    `yaml:"remove_exif" env:"REMOVE_EXIF" env-default:"true"`
	RemoveVideoMetadata bool    `yaml:"remove_video_metadata" env:"REMOVE_VIDEO_METADATA" env-default:"true"`
	RandomizeTimestamps bool    `yaml:"randomize_timestamps" env:"RANDOMIZE_TIMESTAMPS" env-default:"true"`
	RenameFiles         bool    `yaml:"rename_files" env:"RENAME_FILES" env-default:"false"`
	BackupOriginals     bool    `yaml:"backup_originals" env:"BACKUP_ORIGINALS" env-default:"true"`
	OutputDirectory     string  `yaml:"output_directory" env:"OUTPUT_DIRECTORY" env-default:"cleaned_media"`
	LogLevel            string  `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	PixelNoiseIntensity float64 `yaml:"pixel_noise_intensity" env:"PIXEL_NOISE_INTENSITY" env-default:"0.01"`
	FfmpegBinaryPath    string  `yaml:"ffmpeg_bin" env:"FFMPEG_BIN" env-default:"/usr/bin/ffmpeg"`
	FfprobeBinaryPath   string  `yaml:"ffprobe_bin" env:"FFPROBE_BIN" env-default:"/usr/bin/ffprobe"`
}

// Default returns the configuration used when no file is supplied or the
// supplied file cannot be parsed.
func Default() Config {
	var cfg Config
	// Reading the environment alone applies every env-default tag
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		// Only possible with a broken struct definition
		panic(fmt.Sprintf("failed to construct default config: %v", err))
	}
	return cfg
}

// Load reads a YAML config file merged over the defaults: only the keys
// present in the file replace default values, so an explicit `false` is
// honoured. A missing or malformed file is not fatal: the defaults are
// returned alongside the load error so the caller can log a warning and
// continue.
func Load(configPath string) (Config, error) {
	cfg := Default()

	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read configuration from %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse configuration from %s: %w", configPath, err)
	}

	return cfg, nil
}
