// Package config loads analysis settings from TOML files and the
// environment.
//
// Settings are resolved in three steps, later steps winning:
//
//  1. [Default]: forward layering, discovery order, the legacy hotspot
//     policy (change count capped at 20, complexity at 30).
//  2. A TOML file passed to [Load].
//  3. CODEGRAPH_* environment variables applied by [Config.ApplyEnv]. A
//     .env file in the working directory is read first by [LoadEnvFile].
//
// A config file looks like:
//
//	[layering]
//	direction = "both"
//	roots = ["main"]
//	max_depth = 4
//
//	[ordering]
//	sort_by = "id"
//	sweeps = 2
//
//	[[risk.metrics]]
//	name = "changeCount"
//	cap = 20
//
//	[critical]
//	flag_attr = "status"
//	flag_value = "blocked"
//
// Every failure is reported with code INVALID_CONFIG, or FILE_NOT_FOUND for a
// missing config file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/layering"
	"github.com/matzehuels/codegraph/pkg/pipeline"
	"github.com/matzehuels/codegraph/pkg/risk"
)

// Environment variables read by ApplyEnv.
const (
	EnvDirection = "CODEGRAPH_DIRECTION"
	EnvRoots     = "CODEGRAPH_ROOTS"
	EnvMaxDepth  = "CODEGRAPH_MAX_DEPTH"
	EnvFlagAttr  = "CODEGRAPH_FLAG_ATTR"
	EnvFlagValue = "CODEGRAPH_FLAG_VALUE"
)

// Config holds every setting of an analysis run.
type Config struct {
	Layering Layering `toml:"layering"`
	Ordering Ordering `toml:"ordering"`
	Risk     Risk     `toml:"risk"`
	Critical Critical `toml:"critical"`
	Cycles   bool     `toml:"cycles"`

	// Concurrency bounds batch analysis. Zero uses GOMAXPROCS.
	Concurrency int `toml:"concurrency" validate:"gte=0,lte=1024"`
}

type Layering struct {
	Direction string   `toml:"direction" validate:"direction"`
	Roots     []string `toml:"roots" validate:"dive,required"`
	MaxDepth  int      `toml:"max_depth" validate:"gte=0"`
	EdgeKinds []string `toml:"edge_kinds" validate:"dive,required"`
}

type Ordering struct {
	// SortBy is empty for discovery order, "id", or an attribute key.
	SortBy string `toml:"sort_by"`
	Sweeps int    `toml:"sweeps" validate:"gte=0,lte=100"`
}

type Risk struct {
	Metrics []risk.Metric `toml:"metrics" validate:"dive"`
}

type Critical struct {
	FlagAttr      string   `toml:"flag_attr" validate:"required_with=FlagValue"`
	FlagValue     string   `toml:"flag_value"`
	FlagIDs       []string `toml:"flag_ids" validate:"dive,required"`
	BlockingKinds []string `toml:"blocking_kinds" validate:"dive,required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, err := layering.ParseDirection(fl.Field().String())
		return err == nil
	})
	return v
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Layering: Layering{Direction: layering.Forward.String()},
		Risk:     Risk{Metrics: risk.LegacyHotspotPolicy().Metrics},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
// Keys the Config does not know are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Risk.Metrics = nil
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if len(cfg.Risk.Metrics) == 0 {
		cfg.Risk.Metrics = risk.LegacyHotspotPolicy().Metrics
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile reads KEY=VALUE pairs from the given .env files (default
// ".env") into the process environment. Variables that are already set
// keep their value, and missing files are skipped.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", p)
		}
	}
	return nil
}

// ApplyEnv overrides settings from CODEGRAPH_* variables in the process
// environment and validates the result.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDirection); ok {
		c.Layering.Direction = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvRoots); ok {
		c.Layering.Roots = splitList(v)
	}
	if v, ok := lookup(EnvMaxDepth); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s must be an integer", EnvMaxDepth)
		}
		c.Layering.MaxDepth = n
	}
	if v, ok := lookup(EnvFlagAttr); ok {
		c.Critical.FlagAttr = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvFlagValue); ok {
		c.Critical.FlagValue = v
	}
	return c.Validate()
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks field constraints and the risk policy.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	for i, m := range c.Risk.Metrics {
		if err := errors.ValidateAttributeKey(m.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "risk.metrics[%d]", i)
		}
	}
	if err := c.policy().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "risk policy")
	}
	return nil
}

func (c *Config) policy() risk.Policy {
	return risk.Policy{Metrics: c.Risk.Metrics}
}

// formatValidationError turns the first validator failure into an
// INVALID_CONFIG error naming the field.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must not be empty", field)
	case "required_with":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: required when %s is set", field, e.Param())
	case "gte":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be at least %s", field, e.Param())
	case "lte":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must not exceed %s", field, e.Param())
	case "direction":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown direction %q", field, e.Value())
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: validation failed (%s)", field, e.Tag())
	}
}

// PipelineOptions converts the settings into pipeline options.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	dir, err := layering.ParseDirection(c.Layering.Direction)
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "layering.direction")
	}
	return pipeline.Options{
		Direction:     dir,
		Roots:         c.Layering.Roots,
		MaxDepth:      c.Layering.MaxDepth,
		EdgeKinds:     c.Layering.EdgeKinds,
		SortBy:        c.Ordering.SortBy,
		Sweeps:        c.Ordering.Sweeps,
		Policy:        c.policy(),
		FlagAttr:      c.Critical.FlagAttr,
		FlagValue:     c.Critical.FlagValue,
		FlagIDs:       c.Critical.FlagIDs,
		BlockingKinds: c.Critical.BlockingKinds,
		Cycles:        c.Cycles,
	}, nil
}
