package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/minibook-dev/minibook/internal/accounts"
	"github.com/minibook-dev/minibook/internal/model"
	"github.com/minibook-dev/minibook/internal/report"
)

// FileName is the config file looked up in the working directory.
const FileName = "minibook.yaml"

// Config represents the top-level minibook.yaml configuration.
type Config struct {
	Business       BusinessConfig       `yaml:"business"`
	Currency       CurrencyConfig       `yaml:"currency"`
	Classification ClassificationConfig `yaml:"classification"`
	Tolerance      string               `yaml:"tolerance"`
	Log            LogConfig            `yaml:"log"`
	Server         ServerConfig         `yaml:"server"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// CurrencyConfig controls how amounts are displayed.
type CurrencyConfig struct {
	Symbol    string `yaml:"symbol"`
	Thousands string `yaml:"thousands"`
	Decimal   string `yaml:"decimal"`
	Places    int32  `yaml:"places"`
}

// ClassificationConfig adds keyword rules ahead of the built-in ones.
type ClassificationConfig struct {
	Rules []RuleConfig `yaml:"rules,omitempty"`
}

// RuleConfig maps name keywords to an account type.
type RuleConfig struct {
	Keywords []string `yaml:"keywords"`
	Type     string   `yaml:"type"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads a minibook.yaml file from disk. Missing sections keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	m := report.DefaultMoney()
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Currency: CurrencyConfig{
			Symbol:    m.Symbol,
			Thousands: m.Thousands,
			Decimal:   m.Decimal,
			Places:    m.Places,
		},
		Tolerance: report.DefaultTolerance.String(),
		Log:       LogConfig{Level: "info", Format: "console"},
		Server:    ServerConfig{Addr: ":8080"},
	}
}

// Validate checks rule types, tolerance and log settings.
func (c *Config) Validate() error {
	var problems []string
	for i, r := range c.Classification.Rules {
		if !model.AccountType(strings.ToLower(r.Type)).Valid() {
			problems = append(problems, fmt.Sprintf("classification.rules[%d]: unknown type %q", i, r.Type))
		}
		if len(r.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("classification.rules[%d]: no keywords", i))
		}
	}
	if c.Tolerance != "" {
		tol, err := decimal.NewFromString(c.Tolerance)
		if err != nil || tol.IsNegative() {
			problems = append(problems, fmt.Sprintf("tolerance: %q is not a non-negative number", c.Tolerance))
		}
	}
	if c.Currency.Places < 0 {
		problems = append(problems, "currency.places: must not be negative")
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format: %q (want console or json)", c.Log.Format))
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Rules converts the configured keyword rules.
func (c *Config) Rules() []accounts.Rule {
	rules := make([]accounts.Rule, 0, len(c.Classification.Rules))
	for _, r := range c.Classification.Rules {
		rules = append(rules, accounts.Rule{
			Keywords: r.Keywords,
			Type:     model.AccountType(strings.ToLower(r.Type)),
		})
	}
	return rules
}

// Classifier builds a classifier with the configured rules ahead of the
// built-in ones.
func (c *Config) Classifier() (*accounts.Classifier, error) {
	return accounts.NewClassifier(c.Rules()...)
}

// ToleranceValue returns the configured tolerance, or the default if unset.
func (c *Config) ToleranceValue() decimal.Decimal {
	tol, err := decimal.NewFromString(c.Tolerance)
	if err != nil || tol.IsNegative() {
		return report.DefaultTolerance
	}
	return tol
}

// Money returns the display format for amounts.
func (c *Config) Money() report.Money {
	return report.Money{
		Symbol:    c.Currency.Symbol,
		Thousands: c.Currency.Thousands,
		Decimal:   c.Currency.Decimal,
		Places:    c.Currency.Places,
	}
}
