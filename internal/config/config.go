package config

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropenv/pkg/pipelines/bank"
	"github.com/ib-77/ropenv/pkg/pipelines/number"
)

// Config is the top-level configuration structure.
type Config struct {
	LogLevel  string       `yaml:"log_level"`
	LogFormat string       `yaml:"log_format"`
	Workers   int          `yaml:"workers"`
	FailFast  bool         `yaml:"fail_fast"`
	Bank      BankConfig   `yaml:"bank"`
	Number    NumberConfig `yaml:"number"`
}

type BankConfig struct {
	DefaultPreset string                 `yaml:"default_preset"`
	Presets       map[string]bank.Config `yaml:"presets"`
	Cases         []BankCase             `yaml:"cases"`
}

// BankCase is one demo run: an environment, a request and the preset to use.
type BankCase struct {
	Preset  string                 `yaml:"preset"`
	Env     bank.Env               `yaml:"env"`
	Request bank.NewAccountRequest `yaml:"request"`
}

type NumberConfig struct {
	DefaultPreset string                   `yaml:"default_preset"`
	Presets       map[string]number.Config `yaml:"presets"`
	Cases         []NumberCase             `yaml:"cases"`
}

type NumberCase struct {
	Preset string     `yaml:"preset"`
	Env    number.Env `yaml:"env"`
}

// Default returns the built-in presets and demo cases.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Bank: BankConfig{
			DefaultPreset: "standard",
			Presets: map[string]bank.Config{
				"standard": {
					Account: bank.AccountConfig{AccountFee: 50, InterestRate: 0.02},
					Bonus:   bank.BonusConfig{BonusMultiplier: 1.5},
				},
				"premium": {
					Account: bank.AccountConfig{AccountFee: 30, InterestRate: 0.025},
					Bonus:   bank.BonusConfig{BonusMultiplier: 2.0},
				},
				"basic": {
					Account: bank.AccountConfig{AccountFee: 100, InterestRate: 0.015},
					Bonus:   bank.BonusConfig{BonusMultiplier: 1.2},
				},
			},
			Cases: []BankCase{
				{
					Preset:  "standard",
					Env:     bank.Env{InitialBalance: 10000, CustomerName: "Kim Cheolsu", BankCode: "KB"},
					Request: bank.NewAccountRequest{CustomerName: "Kim Cheolsu", InitialDeposit: 1000, AccountType: bank.Savings},
				},
				{
					Preset:  "premium",
					Env:     bank.Env{InitialBalance: 50000, CustomerName: "Lee Younghee", BankCode: "NH"},
					Request: bank.NewAccountRequest{CustomerName: "Lee Younghee", InitialDeposit: 2000, AccountType: bank.Checking},
				},
				{
					Preset:  "basic",
					Env:     bank.Env{InitialBalance: 30000, CustomerName: "Park Minsu", BankCode: "SC"},
					Request: bank.NewAccountRequest{CustomerName: "Park Minsu", InitialDeposit: 1500, AccountType: bank.Savings},
				},
			},
		},
		Number: NumberConfig{
			DefaultPreset: "default",
			Presets: map[string]number.Config{
				"default": {
					Step1: number.Step1Config{InitialNumber: 2},
					Step2: number.Step2Config{AdditionalValue: 3},
					Step3: number.Step3Config{Multiplier: 2},
				},
				"aggressive": {
					Step1: number.Step1Config{InitialNumber: 5},
					Step2: number.Step2Config{AdditionalValue: 10},
					Step3: number.Step3Config{Multiplier: 3},
				},
				"conservative": {
					Step1: number.Step1Config{InitialNumber: 1},
					Step2: number.Step2Config{AdditionalValue: 1},
					Step3: number.Step3Config{Multiplier: 1.5},
				},
			},
			Cases: []NumberCase{
				{Preset: "default", Env: number.Env{A: "5"}},
				{Preset: "aggressive", Env: number.Env{A: "10"}},
				{Preset: "conservative", Env: number.Env{A: "3"}},
			},
		},
	}
}

// Load reads path and overlays it onto Default. Presets with the same name
// are replaced; cases, when present, replace the built-in list.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks levels, worker count and every preset.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format %q must be console or json", c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	for name, p := range c.Bank.Presets {
		if err := validateBank(p); err != nil {
			return fmt.Errorf("bank preset %q: %w", name, err)
		}
	}
	for name, p := range c.Number.Presets {
		if err := validateNumber(p); err != nil {
			return fmt.Errorf("number preset %q: %w", name, err)
		}
	}

	if _, err := c.BankPreset(c.Bank.DefaultPreset); err != nil {
		return fmt.Errorf("bank.default_preset: %w", err)
	}
	if _, err := c.NumberPreset(c.Number.DefaultPreset); err != nil {
		return fmt.Errorf("number.default_preset: %w", err)
	}
	for i, bc := range c.Bank.Cases {
		if _, err := c.BankPreset(bc.Preset); err != nil {
			return fmt.Errorf("bank.cases[%d]: %w", i, err)
		}
	}
	for i, nc := range c.Number.Cases {
		if _, err := c.NumberPreset(nc.Preset); err != nil {
			return fmt.Errorf("number.cases[%d]: %w", i, err)
		}
	}
	return nil
}

// BankPreset looks a preset up by name; an empty name selects the default.
func (c *Config) BankPreset(name string) (bank.Config, error) {
	if name == "" {
		name = c.Bank.DefaultPreset
	}
	p, ok := c.Bank.Presets[name]
	if !ok {
		return bank.Config{}, fmt.Errorf("unknown bank preset %q (have %v)", name, sortedKeys(c.Bank.Presets))
	}
	return p, nil
}

func (c *Config) NumberPreset(name string) (number.Config, error) {
	if name == "" {
		name = c.Number.DefaultPreset
	}
	p, ok := c.Number.Presets[name]
	if !ok {
		return number.Config{}, fmt.Errorf("unknown number preset %q (have %v)", name, sortedKeys(c.Number.Presets))
	}
	return p, nil
}

func validateBank(p bank.Config) error {
	switch {
	case !nonNegative(p.Account.AccountFee):
		return fmt.Errorf("account_fee must be a non-negative number")
	case !nonNegative(p.Account.InterestRate):
		return fmt.Errorf("interest_rate must be a non-negative number")
	case !nonNegative(p.Bonus.BonusMultiplier):
		return fmt.Errorf("bonus_multiplier must be a non-negative number")
	}
	return nil
}

func validateNumber(p number.Config) error {
	for field, v := range map[string]float64{
		"initial_number":   p.Step1.InitialNumber,
		"additional_value": p.Step2.AdditionalValue,
		"multiplier":       p.Step3.Multiplier,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", field)
		}
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
