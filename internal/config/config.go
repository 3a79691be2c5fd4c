// Package config loads the enemyforge application configuration.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/enemyforge/internal/database"
	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
)

// AppConfig is the top-level configuration file. The file's logging
// section is read separately by logger.LoadConfig.
type AppConfig struct {
	Generator GeneratorConfig `yaml:"generator"`
	Database  database.Config `yaml:"database"`
}

// GeneratorConfig controls enemy generation.
type GeneratorConfig struct {
	// Seed for the shared random source. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// DefaultTier is used when a command does not name one.
	DefaultTier string `yaml:"default_tier"`

	// SpeciesFile lists species templates. Empty uses the built-in set.
	SpeciesFile string `yaml:"species_file"`

	// DifficultyFile holds partial per-tier profile overrides.
	DifficultyFile string `yaml:"difficulty_file"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Generator: GeneratorConfig{
			DefaultTier: difficulty.Medium.String(),
		},
		Database: database.DefaultConfig("data/enemyforge.db"),
	}
}

// LoadConfig reads path on top of the defaults and applies environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv("ENEMYFORGE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ENEMYFORGE_SEED %q: %w", v, err)
		}
		c.Generator.Seed = seed
	}
	if v := os.Getenv("ENEMYFORGE_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("ENEMYFORGE_DB_PATH"); v != "" {
		c.Database.SQLitePath = v
	}
	if v := os.Getenv("ENEMYFORGE_PG_HOST"); v != "" {
		c.Database.Postgres.Host = v
	}
	if v := os.Getenv("ENEMYFORGE_PG_PASSWORD"); v != "" {
		c.Database.Postgres.Password = v
	}
	return nil
}

// Validate checks values that would otherwise fail much later.
func (c *AppConfig) Validate() error {
	switch database.DialectType(c.Database.Driver) {
	case database.DialectSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("database.sqlite_path is required for the sqlite driver")
		}
	case database.DialectPostgres:
		if c.Database.Postgres.Host == "" {
			return errors.New("database.postgres.host is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	return nil
}

// Tier returns the configured default tier.
func (c *AppConfig) Tier() difficulty.Tier {
	return difficulty.ParseTier(c.Generator.DefaultTier)
}

// NewRand creates the random source all generators share.
func (c *AppConfig) NewRand() *rand.Rand {
	seed := c.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
