package dropoff

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultDrivingFactor weighs driving against walking in the cost objective.
const DefaultDrivingFactor = 2.0 / 3.0

type Config struct {
	OutputDir        string  `yaml:"output_dir"`
	SourceComparator string  `yaml:"source_comparator" validate:"oneof=gt ge"`
	Objective        string  `yaml:"objective" validate:"oneof=none cost"`
	DrivingFactor    float64 `yaml:"driving_factor" validate:"gt=0"`
	Workers          int     `yaml:"workers" validate:"gte=1,lte=64"`
	Validate         bool    `yaml:"validate"`
}

func DefaultConfig() Config {
	return Config{
		OutputDir:        ".",
		SourceComparator: COMPARATOR_GT,
		Objective:        OBJECTIVE_NONE,
		DrivingFactor:    DefaultDrivingFactor,
		Workers:          4,
	}
}

var configValidate = validator.New()

// LoadConfig reads a YAML config. An empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills in the fields the file left empty.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.SourceComparator == "" {
		cfg.SourceComparator = def.SourceComparator
	}
	if cfg.Objective == "" {
		cfg.Objective = def.Objective
	}
	if cfg.DrivingFactor == 0 {
		cfg.DrivingFactor = def.DrivingFactor
	}
	if cfg.Workers == 0 {
		cfg.Workers = def.Workers
	}
}

func (c Config) Check() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
