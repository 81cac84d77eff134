package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadFromEnv.
const (
	EnvName      = "TYPEREG_NAME"
	EnvOrdering  = "TYPEREG_ORDERING"
	EnvLogLevel  = "TYPEREG_LOG_LEVEL"
	EnvLogFormat = "TYPEREG_LOG_FORMAT"
	EnvMetrics   = "TYPEREG_METRICS"
	EnvTracing   = "TYPEREG_TRACING"
)

// FromFile loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses and validates YAML data.
func FromYAML(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	c = c.withDefaults()
	return c, c.Validate()
}

// FromJSON parses and validates JSON data.
func FromJSON(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	c = c.withDefaults()
	return c, c.Validate()
}

// LoadFromEnv reads TYPEREG_* variables. Files passed in dotenv are loaded
// first with godotenv (variables already set win); with no arguments ".env"
// in the working directory is loaded if it exists.
func LoadFromEnv(dotenv ...string) (Config, error) {
	if err := loadDotenv(dotenv); err != nil {
		return Config{}, err
	}

	c := Config{
		Name:      os.Getenv(EnvName),
		Ordering:  os.Getenv(EnvOrdering),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
	}

	var err error
	if c.Metrics, err = getenvBool(EnvMetrics); err != nil {
		return Config{}, err
	}
	if c.Tracing, err = getenvBool(EnvTracing); err != nil {
		return Config{}, err
	}

	c = c.withDefaults()
	return c, c.Validate()
}

func loadDotenv(files []string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

func getenvBool(k string) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalid, k, v)
	}
	return b, nil
}
