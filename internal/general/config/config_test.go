package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
  port: 5433
  user: booking
  password: pw
  database: ride_booking
rabbitmq:
  user: guest
  password: guest
http:
  port: 8080
jwt:
  secret_key: super-secret
  access_ttl: 30m
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "ride_booking", cfg.Database.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "super-secret", cfg.JWT.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL.Std())

	// defaults fill what the file left out
	assert.Equal(t, "localhost", cfg.RabbitMQ.Host)
	assert.Equal(t, 5672, cfg.RabbitMQ.Port)
}

func TestLoadFromFileDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  user: booking
  password: pw
  database: ride_booking
rabbitmq:
  user: guest
  password: guest
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTTL.Std())
	assert.NotEmpty(t, cfg.JWT.SecretKey, "a random secret must be generated when none is configured")
}

func TestLoadFromFileValidation(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: localhost
`)
		_, err := LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.user is required")
		assert.Contains(t, err.Error(), "rabbitmq.user is required")
	})

	t.Run("ttl too short", func(t *testing.T) {
		path := writeConfig(t, `
database:
  user: booking
  password: pw
  database: ride_booking
rabbitmq:
  user: guest
  password: guest
jwt:
  access_ttl: 5s
`)
		_, err := LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.access_ttl")
	})
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writeConfig(t, "database: [not a mapping")
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
