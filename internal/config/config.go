package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the searchd configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Rebuild RebuildConfig `yaml:"rebuild"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// EngineConfig holds relevance and response-shaping settings.
type EngineConfig struct {
	TitleWeight       float64 `yaml:"title_weight"`
	TitleBoost        float64 `yaml:"title_boost"`
	DescriptionWeight float64 `yaml:"description_weight"`
	DescriptionBoost  float64 `yaml:"description_boost"`
	TagWeight         float64 `yaml:"tag_weight"`
	TagBoost          float64 `yaml:"tag_boost"`

	FuzzyMaxDistance  int     `yaml:"fuzzy_max_distance"`
	FuzzyPrefixLength int     `yaml:"fuzzy_prefix_length"`
	DefaultMinScore   float64 `yaml:"default_min_score"`
	DefaultLanguage   string  `yaml:"default_language"` // es, en (default: es)

	MaxFacetCategories int `yaml:"max_facet_categories"`
	MaxFacetTags       int `yaml:"max_facet_tags"`
	TitleSuggestions   int `yaml:"title_suggestions"`
	TagSuggestions     int `yaml:"tag_suggestions"`

	// Workers sizes the scoring pool; 0 means NumCPU.
	Workers int `yaml:"workers"`
}

// RebuildConfig holds periodic rebuild settings.
type RebuildConfig struct {
	// Schedule is a cron expression; empty disables the scheduler.
	Schedule string `yaml:"schedule"`
	// SourceTimeoutSec bounds one collection + rebuild cycle.
	SourceTimeoutSec int `yaml:"source_timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Engine.TitleWeight <= 0 {
		c.Engine.TitleWeight = 2.0
	}
	if c.Engine.TitleBoost <= 0 {
		c.Engine.TitleBoost = 1.5
	}
	if c.Engine.DescriptionWeight <= 0 {
		c.Engine.DescriptionWeight = 1.0
	}
	if c.Engine.DescriptionBoost <= 0 {
		c.Engine.DescriptionBoost = 1.1
	}
	if c.Engine.TagWeight <= 0 {
		c.Engine.TagWeight = 1.5
	}
	if c.Engine.TagBoost <= 0 {
		c.Engine.TagBoost = 1.2
	}
	if c.Engine.FuzzyMaxDistance <= 0 {
		c.Engine.FuzzyMaxDistance = 2
	}
	if c.Engine.FuzzyPrefixLength <= 0 {
		c.Engine.FuzzyPrefixLength = 2
	}
	if c.Engine.DefaultMinScore <= 0 {
		c.Engine.DefaultMinScore = 0.1
	}
	if c.Engine.DefaultLanguage == "" {
		c.Engine.DefaultLanguage = "es"
	}
	if c.Engine.MaxFacetCategories <= 0 {
		c.Engine.MaxFacetCategories = 10
	}
	if c.Engine.MaxFacetTags <= 0 {
		c.Engine.MaxFacetTags = 20
	}
	if c.Engine.TitleSuggestions <= 0 {
		c.Engine.TitleSuggestions = 5
	}
	if c.Engine.TagSuggestions <= 0 {
		c.Engine.TagSuggestions = 3
	}
	if c.Engine.Workers <= 0 {
		c.Engine.Workers = runtime.NumCPU()
	}
	if c.Rebuild.SourceTimeoutSec <= 0 {
		c.Rebuild.SourceTimeoutSec = 120
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Engine.DefaultLanguage {
	case "es", "en":
	default:
		return fmt.Errorf("engine.default_language must be \"es\" or \"en\", got %q", c.Engine.DefaultLanguage)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
