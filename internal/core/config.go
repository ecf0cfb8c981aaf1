package core

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/jo-hoe/goicons/internal/common"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultConfig []byte

// ExtensionConfig controls the browser extension icon output
type ExtensionConfig struct {
	OutputDir string `yaml:"outputDir" validate:"required"`
	Sizes     []int  `yaml:"sizes" validate:"required,min=1,dive,min=1,max=1024"`
}

// FaviconConfig controls the favicon outputs
type FaviconConfig struct {
	OutputDir string `yaml:"outputDir" validate:"required"`
	PngName   string `yaml:"pngName" validate:"required"`
	IcoName   string `yaml:"icoName" validate:"required"`
	SvgName   string `yaml:"svgName" validate:"required"`
	IcoSizes  []int  `yaml:"icoSizes" validate:"required,min=1,dive,min=1,max=256"`
}

// GeneratorConfig holds the constants both generators run with
type GeneratorConfig struct {
	Renderer  string          `yaml:"renderer" validate:"required"`
	Filter    string          `yaml:"filter" validate:"required,oneof=catmullrom bilinear approxbilinear nearest"`
	LogLevel  string          `yaml:"logLevel" validate:"required,oneof=debug info warn error"`
	Extension ExtensionConfig `yaml:"extension"`
	Favicon   FaviconConfig   `yaml:"favicon"`
}

// DefaultConfig returns the configuration compiled into the binaries
func DefaultConfig() (*GeneratorConfig, error) {
	config, err := ParseConfig(defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid built-in configuration: %w", err)
	}
	return config, nil
}

// loadConfig reads and validates a YAML file. The binaries only use the
// embedded defaults; this reads overrides in tests.
func loadConfig(configPath string) (*GeneratorConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	return config, nil
}

// ParseConfig parses and validates a YAML configuration document
func ParseConfig(data []byte) (*GeneratorConfig, error) {
	var config GeneratorConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := common.NewGenericValidator().Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateUniqueSizes("extension.sizes", config.Extension.Sizes); err != nil {
		return nil, err
	}
	if err := validateUniqueSizes("favicon.icoSizes", config.Favicon.IcoSizes); err != nil {
		return nil, err
	}

	return &config, nil
}

// SlogLevel converts the configured log level to a slog.Level
func (c *GeneratorConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// validateUniqueSizes rejects lists that would write the same file twice
func validateUniqueSizes(field string, sizes []int) error {
	seen := make(map[int]bool)
	for _, s := range sizes {
		if seen[s] {
			return fmt.Errorf("duplicate size %d in %s", s, field)
		}
		seen[s] = true
	}
	return nil
}
