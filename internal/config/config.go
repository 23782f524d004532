package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank      BankConfig `yaml:"bank"`
	SeedUsers []SeedUser `yaml:"seed_users,omitempty"`
}

// BankConfig identifies the simulated bank.
type BankConfig struct {
	Name string `yaml:"name"`
}

// SeedUser describes a user provisioned at startup. Every seed user
// gets the default Savings account; Accounts lists any additional
// accounts to open, in order.
type SeedUser struct {
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Pin       string   `yaml:"pin"`
	Accounts  []string `yaml:"accounts,omitempty"`
}

// Load reads a teller.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns the demo fixture: one customer with the default
// Savings account plus a Checking account.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{Name: bankName},
		SeedUsers: []SeedUser{
			{
				FirstName: "John",
				LastName:  "Doe",
				Pin:       "1234",
				Accounts:  []string{"Checking"},
			},
		},
	}
}
