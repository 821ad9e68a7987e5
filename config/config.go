// Package config loads run settings for the circuits CLI from defaults, an
// optional YAML file, CIRCUITS_* environment variables and bound flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates the merged settings failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable, e.g. CIRCUITS_EDGES.
const EnvPrefix = "CIRCUITS"

// Setting keys, shared by viper and flag bindings.
const (
	KeyEdges       = "edges"
	KeyWorkers     = "workers"
	KeyLogLevel    = "log_level"
	KeyJSON        = "json"
	KeyMetricsFile = "metrics_file"
)

// DefaultEdges is the bounded-mode edge budget for full-size inputs.
const DefaultEdges = 1000

// Config holds validated run settings.
type Config struct {
	// Edges is the bounded-mode edge budget.
	Edges int `mapstructure:"edges" validate:"gte=0"`

	// Workers is the edge generation parallelism; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers" validate:"gte=0,lte=1024"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// JSON switches command output to JSON objects.
	JSON bool `mapstructure:"json"`

	// MetricsFile, when set, receives Prometheus metrics after the run.
	MetricsFile string `mapstructure:"metrics_file"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewViper returns a viper instance with defaults and environment lookup set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyEdges, DefaultEdges)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyMetricsFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if non-empty) into v, then unmarshals and validates the
// merged settings. Without a path it looks for circuits.yaml in the working
// directory and silently continues when none exists.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("circuits")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
