package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/pfrederiksen/golf-catalog/internal/corpus"
	"github.com/pfrederiksen/golf-catalog/internal/enrich"
	"github.com/pfrederiksen/golf-catalog/internal/matcher"
	"github.com/pfrederiksen/golf-catalog/internal/pipeline"
	"github.com/pfrederiksen/golf-catalog/internal/publish"
)

// DefaultPath is read when no config file is named and it exists.
const DefaultPath = "catalog.yaml"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the catalog tools.
// Values come from a YAML file with environment variable overrides.
// Secrets (API key, SFTP password) only come from the environment.
type Config struct {
	StorePath        string `yaml:"store" env:"CATALOG_STORE" env-default:"courses.json"`
	DescriptionsPath string `yaml:"descriptions" env:"CATALOG_DESCRIPTIONS" env-default:"course_descriptions.json"`
	LogLevel         string `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`

	Corpus  CorpusConfig   `yaml:"corpus"`
	Matcher matcher.Config `yaml:"matcher"`

	// Overrides map a corpus name to a record id. They are applied on top
	// of the built-in table; an empty id marks a name to skip.
	Overrides map[string]string `yaml:"overrides"`
	// SkipNames are corpus names that are not courses.
	SkipNames []string `yaml:"skip_names"`

	// Enrich replaces the built-in lookup tables. Omitted tables keep
	// their defaults.
	Enrich enrich.Tables `yaml:"enrich"`

	Publish publish.Config `yaml:"publish"`
	GolfAPI GolfAPIConfig  `yaml:"golf_api"`
	Igolf   IgolfConfig    `yaml:"igolf"`

	Studio pipeline.StudioConfig `yaml:"studio"`
}

// CorpusConfig controls description corpus parsing.
type CorpusConfig struct {
	Path         string               `yaml:"path" env:"CATALOG_CORPUS"`
	SkipPrefixes []string             `yaml:"skip_prefixes"`
	BatchHeaders []corpus.BatchHeader `yaml:"batch_headers"`
}

// Options returns the parser options.
func (c CorpusConfig) Options() corpus.Options {
	return corpus.Options{SkipPrefixes: c.SkipPrefixes, BatchHeaders: c.BatchHeaders}
}

// GolfAPIConfig holds the course lookup API settings.
type GolfAPIConfig struct {
	APIKey    string        `yaml:"-" env:"GOLF_COURSE_API_KEY"`
	BaseURL   string        `yaml:"base_url" env:"GOLF_COURSE_API_URL"`
	CachePath string        `yaml:"cache_path" env:"GOLF_COURSE_API_CACHE" env-default:"~/.cache/golf-catalog/course-api.json"`
	Timeout   time.Duration `yaml:"timeout" env:"GOLF_COURSE_API_TIMEOUT" env-default:"10s"`
}

// IgolfConfig locates the filler seed file. Empty uses the built-in list.
type IgolfConfig struct {
	SeedsPath string `yaml:"seeds" env:"IGOLF_SEEDS"`
}

// DefaultSkipPrefixes are corpus lines that never start an entry.
var DefaultSkipPrefixes = []string{"---", "===", "Note:"}

// DefaultBatchHeaders label corpus sections.
var DefaultBatchHeaders = []corpus.BatchHeader{
	{Key: "Batch 1:", Label: "Absolute Icons & Major Venues"},
	{Key: "Batch 2:", Label: "Premier Global Links & Sandbelt"},
	{Key: "Batch 3:", Label: "Classic American Golden Age Designs"},
	{Key: "Batch 4:", Label: "Historic & Championship International Links"},
	{Key: "Batch 5:", Label: "Modern American Icons & Stadium Courses"},
	{Key: "Batch 6:", Label: "Destination & Scenic Resort Courses"},
	{Key: "Batch 7:", Label: "Desert & Mountain Classics"},
	{Key: "Batch 8:", Label: "Strategic & Artistic Gems"},
}

// Load reads path with environment overrides. An empty path reads
// DefaultPath if it exists and otherwise uses defaults plus environment.
// A named file that does not exist is an error.
func Load(path string) (*Config, error) {
	// Set before reading so an explicit 0 in the file is kept.
	cfg := &Config{Matcher: matcher.DefaultConfig()}

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
			return nil, fmt.Errorf("checking config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Corpus.SkipPrefixes == nil {
		c.Corpus.SkipPrefixes = DefaultSkipPrefixes
	}
	if c.Corpus.BatchHeaders == nil {
		c.Corpus.BatchHeaders = DefaultBatchHeaders
	}
	if c.Publish.ImageURLPrefix == "" {
		c.Publish.ImageURLPrefix = publish.DefaultImageURLPrefix
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("%w: store path is empty", ErrInvalidConfig)
	}
	if c.Matcher.Threshold < 0 || c.Matcher.SubstringBonus < 0 || c.Matcher.CoverageBonus < 0 {
		return fmt.Errorf("%w: matcher threshold and bonuses must not be negative", ErrInvalidConfig)
	}
	for i, h := range c.Corpus.BatchHeaders {
		if h.Key == "" || h.Label == "" {
			return fmt.Errorf("%w: batch header %d needs key and label", ErrInvalidConfig, i)
		}
	}
	if c.Publish.SFTP.Enabled() && !c.Publish.Enabled() {
		return fmt.Errorf("%w: sftp upload needs publish.output_path", ErrInvalidConfig)
	}
	return nil
}

// MatchOverrides merges the built-in overrides, the configured ones and the
// skip names into one table.
func (c *Config) MatchOverrides() map[string]string {
	out := make(map[string]string, len(matcher.DefaultOverrides)+len(c.Overrides)+len(c.SkipNames))
	for k, v := range matcher.DefaultOverrides {
		out[k] = v
	}
	for k, v := range c.Overrides {
		out[k] = v
	}
	for _, name := range c.SkipNames {
		out[name] = ""
	}
	return out
}
