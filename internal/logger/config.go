package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
	FileCompress   bool   `yaml:"file_compress"`
}

type fileConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig logs INFO text to the console with file output off.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FilePath:       "logs/enemyforge.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig reads the logging section of a YAML file on top of the
// defaults, then applies ENEMYFORGE_LOG_* environment overrides. A missing
// or empty path yields the defaults.
func LoadConfig(configPath string) (Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read logging config: %w", err)
		default:
			// Decoding onto the defaults leaves absent keys untouched
			wrapper := fileConfig{Logging: cfg}
			if err := yaml.Unmarshal(data, &wrapper); err != nil {
				return cfg, fmt.Errorf("failed to parse logging config: %w", err)
			}
			cfg = wrapper.Logging
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ENEMYFORGE_LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("ENEMYFORGE_LOG_FORMAT"); v != "" {
		cfg.ConsoleFormat = v
	}
	if v := os.Getenv("ENEMYFORGE_LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.FileEnabled = enabled
		}
	}
	if v := os.Getenv("ENEMYFORGE_LOG_FILE_PATH"); v != "" {
		cfg.FilePath = v
	}
}
