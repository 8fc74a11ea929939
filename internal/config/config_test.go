package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL:     "postgres://localhost:5432/campledger",
		TokenSigningKey: "secret123",
		SeedCamps: []SeedCamp{
			{
				Name:      "Test Camp",
				Beds:      10,
				Resources: []string{"water"},
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL:     "postgres://localhost:5432/campledger",
		TokenSigningKey: "secret123",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/campledger",
		// Missing TokenSigningKey
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_NegativeSeedBeds(t *testing.T) {
	cfg := &Config{
		DatabaseURL:     "postgres://localhost:5432/campledger",
		TokenSigningKey: "secret123",
		SeedCamps: []SeedCamp{
			{Name: "Test Camp", Beds: -1},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_SeedCampWithoutName(t *testing.T) {
	cfg := &Config{
		DatabaseURL:     "postgres://localhost:5432/campledger",
		TokenSigningKey: "secret123",
		SeedCamps: []SeedCamp{
			{Beds: 5},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
databaseURL: "postgres://localhost:5432/campledger"
tokenSigningKey: "secret123"
tokenTTL: 24h
seedCamps:
  - name: "Test Camp"
    beds: 25
    resources:
      - "water"
      - "blankets"
    contact: "+1-555-0000"
    ambulance: true
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/campledger", cfg.DatabaseURL)
	assert.Equal(t, "secret123", cfg.TokenSigningKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTLDuration())

	require.Len(t, cfg.SeedCamps, 1)
	camp := cfg.SeedCamps[0]
	assert.Equal(t, "Test Camp", camp.Name)
	assert.Equal(t, 25, camp.Beds)
	assert.Equal(t, []string{"water", "blankets"}, camp.Resources)
	assert.Equal(t, "+1-555-0000", camp.Contact)
	assert.True(t, camp.Ambulance)
}

func TestLoadFromPath_DefaultSeedCamps(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
databaseURL: "postgres://localhost:5432/campledger"
tokenSigningKey: "secret123"
`

	err := os.WriteFile(configPath, []byte(minimalConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	// Falls back to the three default camps
	require.Len(t, cfg.SeedCamps, 3)
	for _, camp := range cfg.SeedCamps {
		assert.NotEmpty(t, camp.Name)
		assert.Greater(t, camp.Beds, 0)
	}
}

func TestLoadFromPath_InvalidTokenTTL(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_ttl.yaml")

	invalidConfig := `
databaseURL: "postgres://localhost:5432/campledger"
tokenSigningKey: "secret123"
tokenTTL: "one day"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tokenTTL")
}

func TestLoadFromPath_MissingRequiredField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_config.yaml")

	invalidConfig := `
databaseURL: "postgres://localhost:5432/campledger"
# Missing tokenSigningKey
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
databaseURL: "postgres://localhost:5432/campledger"
  invalid indentation
tokenSigningKey: "secret123"
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
