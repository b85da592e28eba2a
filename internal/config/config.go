// Package config provides configuration management for qbank runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"qbank/internal/classifier"
	"qbank/internal/models"
)

// Configuration validation errors.
var (
	ErrNoCompanies           = errors.New("at least one company is required")
	ErrNoEnabledCompanies    = errors.New("at least one company must be enabled")
	ErrDuplicateCompany      = errors.New("company names must be unique")
	ErrInvalidSubheaderMode  = errors.New("classifier.subheader_mode must be 'non_ascii' or 'leading_glyph'")
	ErrNoSubheaderGlyphs     = errors.New("classifier.subheader_glyphs is required for leading_glyph mode")
	ErrInvalidKeywordMode    = errors.New("classifier.keyword_mode must be 'raw' or 'normalized'")
	ErrInvalidKeywordLength  = errors.New("classifier.min_keyword_length must be at least 1")
	ErrInvalidIndent         = errors.New("output.indent must be between 0 and 8")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidHeaderSection  = errors.New("classifier.headers section must be 'technical' or 'hr'")
	ErrHeaderMissingSubjects = errors.New("classifier.headers entry needs at least one 'all' substring")
)

// Subheader modes.
const (
	SubheaderNonASCII     = "non_ascii"
	SubheaderLeadingGlyph = "leading_glyph"
)

// DefaultBaseDir is where the built-in company list lives.
const DefaultBaseDir = "data/interviews"

// Config represents the complete qbank configuration.
type Config struct {
	BaseDir    string           `yaml:"base_dir"`
	Companies  []CompanyConfig  `yaml:"companies" validate:"dive"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CompanyConfig names one input dump and its output directory.
type CompanyConfig struct {
	Name      string `yaml:"name" validate:"required"`
	Input     string `yaml:"input" validate:"required"`
	OutputDir string `yaml:"output_dir" validate:"required"`
	Enabled   bool   `yaml:"enabled"`
}

// ClassifierConfig tunes the line classifier.
type ClassifierConfig struct {
	SubheaderMode    string         `yaml:"subheader_mode"`
	KeywordMode      string         `yaml:"keyword_mode"`
	SubheaderGlyphs  []string       `yaml:"subheader_glyphs"`
	Headers          []HeaderConfig `yaml:"headers" validate:"dive"`
	MinKeywordLength int            `yaml:"min_keyword_length"`
	StrictSections   bool           `yaml:"strict_sections"`
}

// HeaderConfig adds a section header rule on top of the built-in ones.
type HeaderConfig struct {
	Name    string   `yaml:"name" validate:"required"`
	Section string   `yaml:"section"`
	All     []string `yaml:"all"`
	Any     []string `yaml:"any"`
}

// OutputConfig defines JSON output formatting.
type OutputConfig struct {
	Indent int `yaml:"indent"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: Infosys and TCS under DefaultBaseDir.
func Default() *Config {
	return &Config{
		BaseDir: DefaultBaseDir,
		Companies: []CompanyConfig{
			{Name: "Infosys", Input: "infosys/raw_input.txt", OutputDir: "infosys", Enabled: true},
			{Name: "TCS", Input: "tcs/raw_input.txt", OutputDir: "tcs", Enabled: true},
		},
		Classifier: ClassifierConfig{
			SubheaderMode:    SubheaderNonASCII,
			KeywordMode:      string(classifier.KeywordsRaw),
			SubheaderGlyphs:  classifier.DefaultSubheaderGlyphs(),
			MinKeywordLength: classifier.DefaultMinKeywordLength,
		},
		Output:  OutputConfig{Indent: 4},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a YAML file layered over Default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Companies) == 0 {
		return ErrNoCompanies
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid field: %w", err)
	}

	seen := make(map[string]bool, len(c.Companies))
	enabledCount := 0

	for i, co := range c.Companies {
		if seen[co.Name] {
			return fmt.Errorf("%w: companies[%d] %q", ErrDuplicateCompany, i, co.Name)
		}

		seen[co.Name] = true

		if co.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledCompanies
	}

	cl := c.Classifier

	switch cl.SubheaderMode {
	case SubheaderNonASCII:
	case SubheaderLeadingGlyph:
		if len(cl.SubheaderGlyphs) == 0 {
			return ErrNoSubheaderGlyphs
		}
	default:
		return ErrInvalidSubheaderMode
	}

	switch classifier.KeywordMode(cl.KeywordMode) {
	case classifier.KeywordsRaw, classifier.KeywordsNormalized:
	default:
		return ErrInvalidKeywordMode
	}

	if cl.MinKeywordLength < 1 {
		return ErrInvalidKeywordLength
	}

	for i, h := range cl.Headers {
		if _, err := parseSection(h.Section); err != nil {
			return fmt.Errorf("%w: headers[%d]", err, i)
		}

		if len(h.All) == 0 {
			return fmt.Errorf("%w: headers[%d]", ErrHeaderMissingSubjects, i)
		}
	}

	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return ErrInvalidIndent
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

func parseSection(s string) (models.Section, error) {
	switch s {
	case "technical":
		return models.SectionTechnical, nil
	case "hr":
		return models.SectionHR, nil
	default:
		return models.SectionNone, ErrInvalidHeaderSection
	}
}

// ResolvePath joins a relative company path onto BaseDir.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}

	return filepath.Join(c.BaseDir, p)
}

// EnabledCompanies returns enabled companies with resolved paths, in config order.
func (c *Config) EnabledCompanies() []models.Company {
	var enabled []models.Company

	for _, co := range c.Companies {
		if !co.Enabled {
			continue
		}

		enabled = append(enabled, models.Company{
			Name:      co.Name,
			Input:     c.ResolvePath(co.Input),
			OutputDir: c.ResolvePath(co.OutputDir),
		})
	}

	return enabled
}

// ClassifierOptions converts the classifier section into classifier.Options.
func (c *Config) ClassifierOptions() (classifier.Options, error) {
	cl := c.Classifier

	opts := classifier.Options{
		KeywordMode:    classifier.KeywordMode(cl.KeywordMode),
		MinKeywordLen:  cl.MinKeywordLength,
		StrictSections: cl.StrictSections,
	}

	if cl.SubheaderMode == SubheaderLeadingGlyph {
		opts.Subheader = classifier.LeadingGlyph{Glyphs: cl.SubheaderGlyphs}
	} else {
		opts.Subheader = classifier.NonASCII{}
	}

	for i, h := range cl.Headers {
		section, err := parseSection(h.Section)
		if err != nil {
			return classifier.Options{}, fmt.Errorf("%w: headers[%d]", err, i)
		}

		opts.ExtraHeaders = append(opts.ExtraHeaders, classifier.HeaderRule{
			Name:    h.Name,
			All:     h.All,
			Any:     h.Any,
			Section: section,
		})
	}

	return opts, nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Companies: %d, BaseDir: %s, Subheader: %s, Keywords: %s}",
		len(c.Companies),
		c.BaseDir,
		c.Classifier.SubheaderMode,
		c.Classifier.KeywordMode,
	)
}
