package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// DefaultPath is the config file read when no path is given. Unlike an
// explicit path, it may be absent.
const DefaultPath = "uaforge.yaml"

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Generator GeneratorConfig `koanf:"generator" validate:"required"`
	Browser   BrowserConfig   `koanf:"browser" validate:"required"`
}

// CatalogConfig selects the catalog data.
type CatalogConfig struct {
	// Dir is a directory of catalog JSON files. Empty means the bundled data.
	Dir string `koanf:"dir"`
}

// GeneratorConfig holds identity generation settings.
type GeneratorConfig struct {
	// Seed fixes the base seed. Nil means a clock-derived seed.
	Seed       *uint64 `koanf:"seed"`
	Count      int     `koanf:"count" validate:"min=1,max=1000000"`
	Workers    int     `koanf:"workers" validate:"min=1,max=256"`
	BufferSize int     `koanf:"buffer_size" validate:"min=1024"`
}

// BrowserConfig holds settings for headless browser emulation.
type BrowserConfig struct {
	Timeout    time.Duration `koanf:"timeout" validate:"required"`
	Headless   bool          `koanf:"headless"`
	NoSandbox  bool          `koanf:"no_sandbox"`
	ChromePath string        `koanf:"chrome_path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			Count:      10,
			Workers:    4,
			BufferSize: 64 << 10,
		},
		Browser: BrowserConfig{
			Timeout:  30 * time.Second,
			Headless: true,
		},
	}
}

// Load reads configuration from a YAML file over the defaults and validates
// the result. A missing file is an error only when explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// ConfigFrom extracts the Config from the CLI command metadata.
func ConfigFrom(cmd *cli.Command) (*Config, error) {
	v, ok := cmd.Root().Metadata["config"]
	if !ok {
		return nil, fmt.Errorf("config not found in command metadata")
	}
	cfg, ok := v.(*Config)
	if !ok {
		return nil, fmt.Errorf("config has unexpected type %T", v)
	}
	return cfg, nil
}
