package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SeedCamp describes a default camp ensured at startup. Seeding is
// idempotent: a camp with the same name is never inserted twice.
type SeedCamp struct {
	Name      string   `yaml:"name" validate:"required"`
	Beds      int      `yaml:"beds" validate:"min=0"`
	Resources []string `yaml:"resources,omitempty"`
	Contact   string   `yaml:"contact,omitempty"`
	Ambulance bool     `yaml:"ambulance,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL     string     `yaml:"databaseURL" validate:"required"`
	TokenSigningKey string     `yaml:"tokenSigningKey" validate:"required"`
	TokenTTL        string     `yaml:"tokenTTL,omitempty"`
	SeedCamps       []SeedCamp `yaml:"seedCamps,omitempty" validate:"dive"`
}

// TokenTTLDuration returns the parsed token lifetime, or zero when unset
// so the auth client applies its default
func (c *Config) TokenTTLDuration() time.Duration {
	if c.TokenTTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 0
	}
	return d
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// DefaultSeedCamps are the three camps ensured when the config does not
// override the seed list
func DefaultSeedCamps() []SeedCamp {
	return []SeedCamp{
		{
			Name:      "Riverside School Shelter",
			Beds:      120,
			Resources: []string{"food", "water", "blankets"},
			Contact:   "+1-555-0101",
			Ambulance: true,
		},
		{
			Name:      "North Community Hall",
			Beds:      80,
			Resources: []string{"food", "water", "first aid"},
			Contact:   "+1-555-0102",
			Ambulance: false,
		},
		{
			Name:      "Fairground Tent Camp",
			Beds:      200,
			Resources: []string{"water", "blankets", "sanitation"},
			Contact:   "+1-555-0103",
			Ambulance: true,
		},
	}
}

// LoadWithEnv loads the configuration for the given environment,
// looking for campledger_config.<env>.yaml
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("campledger_config.%s.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.SeedCamps) == 0 {
		cfg.SeedCamps = DefaultSeedCamps()
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks duration syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.TokenTTL != "" {
		if _, err := time.ParseDuration(cfg.TokenTTL); err != nil {
			return fmt.Errorf("invalid tokenTTL: %w", err)
		}
	}

	return nil
}

// findConfigFile searches for the named config file in the current
// directory and then the user's home directory
func findConfigFile(configFileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
