package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
dbname = "hotel"
user = "hotel"
password = "from-file"

[admin]
jwt_secret = "file-secret"

[rate_limit]
enabled = true
requests_per_second = 0.5
burst = 3

[cors]
allowed_origins = ["https://hotel.example"]
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"https://hotel.example"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Mail.Enabled())
}

func TestParse_RequiresJWTSecret(t *testing.T) {
	_, err := Parse(`
[database]
host = "localhost"
dbname = "hotel"
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[server\nhttp_port = ")
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_JWT_SECRET", "env-secret")
	t.Setenv("HTTP_PORT", "8181")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Admin.JWTSecret)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
