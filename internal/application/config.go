// Package application provides the resource loading, batch scoring and
// report rendering that sit between the domain scorer and the CLI.
package application

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-revsent/internal/ports"
)

// Run modes.
const (
	ModeCompare  = "compare"
	ModeLines    = "lines"
	ModeFile     = "file"
	ModeTemplate = "template"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default resource locations and group names.
const (
	DefaultLexiconPath            = "cleanSentiment.csv"
	DefaultPositiveAdjectivesPath = "positiveAdjectives.txt"
	DefaultNegativeAdjectivesPath = "negativeAdjectives.txt"
	DefaultReviewsPath            = "app_store_music_reviews.csv"
	DefaultFirstGroup             = "Spotify"
	DefaultSecondGroup            = "Apple Music"
)

// RunConfig is the complete configuration for one scoring run. It is
// decoded from YAML on top of DefaultRunConfig, so a config file only
// needs the keys it changes.
type RunConfig struct {
	// Mode selects what the run does with its input.
	Mode string `yaml:"mode" validate:"required,oneof=compare lines file template"`
	// InputPath is the file the selected mode reads.
	InputPath string `yaml:"input" validate:"nonblank"`
	// Format selects how the report is rendered.
	Format string `yaml:"format" validate:"required,oneof=text json"`
	// Resources locates the lexicon and adjective lists.
	Resources ResourcesConfig `yaml:"resources"`
	// Groups names the two groups compared in compare mode.
	Groups GroupsConfig `yaml:"groups"`
	// Template configures review generation in template mode.
	Template TemplateConfig `yaml:"template"`
	// Metrics configures the optional Prometheus textfile export.
	Metrics MetricsConfig `yaml:"metrics"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ResourcesConfig holds the paths of the static word resources.
type ResourcesConfig struct {
	LexiconPath            string `yaml:"lexicon" validate:"nonblank"`
	PositiveAdjectivesPath string `yaml:"positive_adjectives" validate:"nonblank"`
	NegativeAdjectivesPath string `yaml:"negative_adjectives" validate:"nonblank"`
}

// GroupsConfig names the two groups of a comparison. Names match rows
// case-insensitively, so two names that differ only by case are rejected.
type GroupsConfig struct {
	First  string `yaml:"first" validate:"required,max=100"`
	Second string `yaml:"second" validate:"required,max=100"`
}

// TemplateConfig controls review generation.
type TemplateConfig struct {
	// Tone is positive, negative or random. Empty means random.
	Tone string `yaml:"tone" validate:"omitempty,oneof=positive negative random"`
	// Seed fixes the random source. Nil seeds from the runtime.
	Seed *uint64 `yaml:"seed"`
}

// MetricsConfig controls metric export.
type MetricsConfig struct {
	// TextfilePath, when set, receives the gathered metrics in the
	// Prometheus text exposition format after the run.
	TextfilePath string `yaml:"textfile"`
}

// DefaultRunConfig returns the configuration used when no config file is
// given: compare the default review file's two groups and print text.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Mode:      ModeCompare,
		InputPath: DefaultReviewsPath,
		Format:    FormatText,
		Resources: ResourcesConfig{
			LexiconPath:            DefaultLexiconPath,
			PositiveAdjectivesPath: DefaultPositiveAdjectivesPath,
			NegativeAdjectivesPath: DefaultNegativeAdjectivesPath,
		},
		Groups: GroupsConfig{
			First:  DefaultFirstGroup,
			Second: DefaultSecondGroup,
		},
		LogLevel: "info",
	}
}

// LoadRunConfig decodes a YAML run configuration from r on top of the
// defaults and validates the result. Unknown keys are rejected so typos
// are not silently ignored. An empty document yields the defaults.
func LoadRunConfig(r io.Reader) (RunConfig, error) {
	cfg := DefaultRunConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict mode - fail on unknown fields.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RunConfig{}, fmt.Errorf("YAML decode failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// LoadRunConfigFile reads and validates the run configuration at path.
func LoadRunConfigFile(path string) (RunConfig, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RunConfig{}, ports.NewConfigError(path, ports.ErrConfigNotFound)
		}
		return RunConfig{}, ports.NewConfigError(path, err)
	}
	defer f.Close()

	cfg, err := LoadRunConfig(f)
	if err != nil {
		return RunConfig{}, ports.NewConfigError(path, err)
	}
	return cfg, nil
}

// Validate checks struct tags and the cross-field rules registered in
// newConfigValidator.
func (c RunConfig) Validate() error {
	v, err := newConfigValidator()
	if err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("struct validation failed: %w", err)
	}
	return nil
}

// newConfigValidator builds a validator with the run config's custom rules.
func newConfigValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterConfigValidators(v); err != nil {
		return nil, err
	}
	return v, nil
}
