// Package config loads the tartan tool's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tartan/generator"
	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/weave"
	"github.com/katalvlaran/tartan/yarn"
)

// EnvOutputDir overrides Output.Dir.
const EnvOutputDir = "TARTAN_OUTPUT_DIR"

// Config holds all tartan configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`

	// Custom colours added to the built-in palette.
	Palette []ColorConfig `yaml:"palette,omitempty"`

	// Extra product templates and yarn profiles; entries shadow built-ins
	// with the same key.
	Products     []yarn.Product `yaml:"products,omitempty"`
	YarnProfiles []yarn.Profile `yaml:"yarn_profiles,omitempty"`

	Generator GeneratorConfig `yaml:"generator"`
	Yarn      YarnConfig      `yaml:"yarn"`
	Output    OutputConfig    `yaml:"output"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// ColorConfig is one custom palette entry.
type ColorConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name,omitempty"`
	Hex  string `yaml:"hex"`
}

// GeneratorConfig holds generator defaults.
type GeneratorConfig struct {
	Seed             int64           `yaml:"seed"`
	Colors           generator.Range `yaml:"colors"`
	Stripes          generator.Range `yaml:"stripes"`
	ThreadsPerStripe generator.Range `yaml:"threads_per_stripe"`
	TotalThreads     generator.Range `yaml:"total_threads"`
	Symmetry         string          `yaml:"symmetry"` // symmetric, asymmetric, either
	AllowedColors    []string        `yaml:"allowed_colors,omitempty"`
	MaxBatchAttempts int             `yaml:"max_batch_attempts"`
	Workers          int             `yaml:"workers"` // concurrent draft writers
}

// YarnConfig holds yarn calculator defaults.
type YarnConfig struct {
	Profile      string  `yaml:"profile"`
	Waste        float64 `yaml:"waste"`
	Gauge        float64 `yaml:"gauge"` // 0 → derived from the profile
	CostPerSkein float64 `yaml:"cost_per_skein"`
}

// OutputConfig controls exported files.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Weave       string `yaml:"weave"`
	Author      string `yaml:"author,omitempty"`
	WarpRepeats int    `yaml:"warp_repeats"`
	WeftRepeats int    `yaml:"weft_repeats"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	c := generator.DefaultConstraints()
	return &Config{
		Logging: LoggingConfig{Level: "info", Encoding: "console"},
		Generator: GeneratorConfig{
			Seed:             1,
			Colors:           c.ColorCount,
			Stripes:          c.StripeCount,
			ThreadsPerStripe: c.ThreadPerStripe,
			TotalThreads:     c.TotalThreads,
			Symmetry:         c.Symmetry.String(),
			MaxBatchAttempts: 32,
			Workers:          4,
		},
		Yarn: YarnConfig{
			Profile: yarn.DefaultProfile,
			Waste:   yarn.DefaultWaste,
		},
		Output: OutputConfig{
			Dir:         ".",
			Weave:       weave.Twill22.String(),
			WarpRepeats: 1,
			WeftRepeats: 1,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
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

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.Output.Dir = dir
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every section that the CLI relies on.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Encoding != "json" && c.Logging.Encoding != "console" {
		return fmt.Errorf("invalid logging encoding: %s (valid: json, console)", c.Logging.Encoding)
	}

	pal, err := c.BuildPalette()
	if err != nil {
		return err
	}
	cons, err := c.Constraints()
	if err != nil {
		return err
	}
	if err := cons.Validate(generator.WithPalette(pal)); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if c.Generator.MaxBatchAttempts < 1 {
		return fmt.Errorf("generator.max_batch_attempts must be at least 1, got %d", c.Generator.MaxBatchAttempts)
	}
	if c.Generator.Workers < 1 {
		return fmt.Errorf("generator.workers must be at least 1, got %d", c.Generator.Workers)
	}

	for _, p := range c.Products {
		if p.Key == "" || !(p.Width > 0) || !(p.Length > 0) {
			return fmt.Errorf("product %q: key, width and length are required", p.Key)
		}
	}
	for _, p := range c.YarnProfiles {
		if p.Key == "" || !(p.WPI > 0) || !(p.YardsPer100g > 0) || p.SkeinGrams < 0 {
			return fmt.Errorf("yarn profile %q: key, wpi and yards_per_100g are required", p.Key)
		}
	}
	if c.Yarn.Waste < 1 {
		return fmt.Errorf("yarn.waste: %w", yarn.ErrBadWaste)
	}
	if c.Yarn.Gauge < 0 || c.Yarn.CostPerSkein < 0 {
		return fmt.Errorf("yarn.gauge and yarn.cost_per_skein must not be negative")
	}
	if _, err := c.YarnOptions(); err != nil {
		return err
	}

	if _, err := weave.Lookup(c.Output.Weave); err != nil {
		return fmt.Errorf("output.weave: %w", err)
	}
	if c.Output.WarpRepeats < 0 || c.Output.WeftRepeats < 0 {
		return fmt.Errorf("output repeats must not be negative")
	}
	return nil
}

// BuildPalette returns the built-in palette extended with the custom colours.
func (c *Config) BuildPalette() (palette.Palette, error) {
	custom := make([]palette.Color, len(c.Palette))
	for i, e := range c.Palette {
		custom[i] = palette.Color{Code: e.Code, Name: e.Name, Hex: e.Hex}
	}
	p, err := palette.New(custom...)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("palette: %w", err)
	}
	return p, nil
}

// Constraints converts the generator section.
func (c *Config) Constraints() (generator.Constraints, error) {
	sym, err := generator.ParseSymmetry(c.Generator.Symmetry)
	if err != nil {
		return generator.Constraints{}, err
	}
	return generator.Constraints{
		ColorCount:      c.Generator.Colors,
		StripeCount:     c.Generator.Stripes,
		ThreadPerStripe: c.Generator.ThreadsPerStripe,
		TotalThreads:    c.Generator.TotalThreads,
		Symmetry:        sym,
		AllowedColors:   append([]string(nil), c.Generator.AllowedColors...),
	}, nil
}

// YarnOptions converts the yarn section (plus registered products and
// profiles) into calculator options. The output weave drives gauge
// derivation.
func (c *Config) YarnOptions() ([]yarn.Option, error) {
	p, err := weave.Lookup(c.Output.Weave)
	if err != nil {
		return nil, fmt.Errorf("output.weave: %w", err)
	}
	if c.Yarn.Gauge < 0 || c.Yarn.CostPerSkein < 0 {
		return nil, fmt.Errorf("yarn.gauge and yarn.cost_per_skein must not be negative")
	}
	return []yarn.Option{
		yarn.WithProducts(c.Products...),
		yarn.WithProfiles(c.YarnProfiles...),
		yarn.WithProfile(c.Yarn.Profile),
		yarn.WithWaste(c.Yarn.Waste),
		yarn.WithGauge(c.Yarn.Gauge),
		yarn.WithCostPerSkein(c.Yarn.CostPerSkein),
		yarn.WithWeave(p),
	}, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
