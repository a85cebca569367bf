// Package config loads dbsynth settings from dbsynth.yaml, DBSYNTH_*
// environment variables and .env files, in increasing order of precedence
// below command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys of the settings, shared by the config file, the environment and the CLI flags
const (
	KeyDatabaseURL      = "database_url"
	KeySchema           = "schema"
	KeyTables           = "tables"
	KeyExclude          = "exclude"
	KeySampleSize       = "sample_size"
	KeySeed             = "seed"
	KeyStrictReferences = "strict_references"
	KeyOutput           = "output"
	KeyOutputDir        = "output_dir"
	KeyFormat           = "format"
)

var keys = []string{
	KeyDatabaseURL, KeySchema, KeyTables, KeyExclude, KeySampleSize, KeySeed,
	KeyStrictReferences, KeyOutput, KeyOutputDir, KeyFormat,
}

type Config struct {
	DatabaseURL      string   `mapstructure:"database_url"`
	Schema           string   `mapstructure:"schema"`
	Tables           []string `mapstructure:"tables"`
	Exclude          []string `mapstructure:"exclude"`
	SampleSize       uint64   `mapstructure:"sample_size"`
	Seed             float64  `mapstructure:"seed"`
	StrictReferences bool     `mapstructure:"strict_references"`
	Output           string   `mapstructure:"output"`
	OutputDir        string   `mapstructure:"output_dir"`
	Format           string   `mapstructure:"format"`
}

// Init prepares v: loads .env files into the environment, binds the
// DBSYNTH_* variables and reads the config file. cfgFile may be empty, in
// which case ./dbsynth.yaml is used when present.
func Init(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load(".env.local")
	}

	v.SetDefault(KeySampleSize, 10)
	v.SetDefault(KeySeed, 0.5)
	v.SetDefault(KeyFormat, "json")

	v.SetEnvPrefix("DBSYNTH")
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("dbsynth")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Load returns the merged settings. A missing database URL falls back to
// DATABASE_URL, which is commonly kept in .env.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "json", "yaml", "text", "markdown":
	default:
		return fmt.Errorf("unsupported format: %s (supported: json, yaml, text, markdown)", c.Format)
	}

	if c.Seed < -1 || c.Seed > 1 {
		return fmt.Errorf("seed must be between -1 and 1, got %v", c.Seed)
	}

	if c.Output != "" && c.OutputDir != "" {
		return fmt.Errorf("output and output_dir are mutually exclusive")
	}

	return nil
}
