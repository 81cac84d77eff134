// Package config loads container settings from files and the environment and
// turns them into di options.
//
// # Sources
//
//	cfg, err := config.FromFile("typereg.yaml") // .yaml, .yml or .json
//	cfg, err := config.LoadFromEnv()            // TYPEREG_* variables, optional .env
//
// # Wiring
//
//	opts, err := cfg.Options(os.Stderr)
//	c := di.New(opts...)
//
// Zero values mean defaults, so an empty file is a valid configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sghaida/typereg/di"
	"github.com/sghaida/typereg/observability"
)

// Config holds container settings.
type Config struct {
	// Name labels the container in logs.
	Name string `yaml:"name" json:"name"`

	// Ordering is "value" (default) or "registration".
	Ordering string `yaml:"ordering" json:"ordering"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat is "text" (default) or "json".
	LogFormat string `yaml:"log_format" json:"log_format"`

	// Metrics and Tracing enable the OpenTelemetry recorders backed by the
	// global providers.
	Metrics bool `yaml:"metrics" json:"metrics"`
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Name:      "default",
		Ordering:  di.OrderByValue.String(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// withDefaults fills empty fields from Default.
func (c Config) withDefaults() Config {
	d := Default()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Ordering == "" {
		c.Ordering = d.Ordering
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	c = c.withDefaults()
	if _, ok := di.ParseOrdering(c.Ordering); !ok {
		return fmt.Errorf("%w: ordering %q", ErrInvalid, c.Ordering)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// Logger builds the slog logger described by c, writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := c.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Options converts c into container options. Logs are written to w.
func (c Config) Options(w io.Writer) ([]di.Option, error) {
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ord, _ := di.ParseOrdering(c.Ordering)
	logger, err := c.Logger(w)
	if err != nil {
		return nil, err
	}

	opts := []di.Option{
		di.WithName(c.Name),
		di.WithOrdering(ord),
		di.WithLogger(logger),
	}
	if c.Metrics {
		opts = append(opts, di.WithMetrics(observability.NewMetricsRecorder(nil)))
	}
	if c.Tracing {
		opts = append(opts, di.WithSpans(observability.NewSpanManager(nil)))
	}
	return opts, nil
}

// NewContainer is shorthand for di.New(c.Options(w)...).
func (c Config) NewContainer(w io.Writer) (*di.Container, error) {
	opts, err := c.Options(w)
	if err != nil {
		return nil, err
	}
	return di.New(opts...), nil
}
