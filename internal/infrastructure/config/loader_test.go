package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoad_DefaultsAndDurations(t *testing.T) {
	dir := writeConfig(t, Test, `
server:
  port: 9000
identity:
  jwtSecret: s3cret
`)

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Zero(t, cfg.Database.PoolMonitorPeriod)

	assert.Equal(t, 64, cfg.Funding.QueueBuffer)
	assert.Equal(t, time.Minute, cfg.Funding.QueueIdleTimeout)
	assert.Equal(t, 20*time.Millisecond, cfg.Funding.RetryBackoff)

	assert.Equal(t, "s3cret", cfg.Identity.JWTSecret)
	assert.Equal(t, "sid", cfg.Identity.CookieName)
	assert.Equal(t, time.Hour, cfg.Identity.TokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Identity.SessionTTL)

	assert.Equal(t, int64(10), cfg.RateLimit.LoginLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.LoginPeriod)
	assert.Equal(t, time.Hour, cfg.Scheduler.SessionCleanupInterval)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Production, `
database:
  host: file-host
  password: file-password
`)

	t.Setenv("CF_DB_HOST", "env-host")
	t.Setenv("CF_DB_PASSWORD", "env-password")
	t.Setenv("CF_SERVER_PORT", "9100")
	t.Setenv("CF_IDENTITY_JWT_SECRET", "env-secret")
	t.Setenv("CF_SEED_ENABLED", "true")
	t.Setenv("CF_RATE_LIMIT_LOGIN", "3")
	t.Setenv("CF_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load(Production, dir)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Identity.JWTSecret)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, int64(3), cfg.RateLimit.LoginLimit)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidOverrides(t *testing.T) {
	dir := writeConfig(t, Test, "server:\n  port: 1\n")

	t.Run("integer", func(t *testing.T) {
		t.Setenv("CF_SERVER_PORT", "eighty")
		_, err := Load(Test, dir)
		assert.ErrorContains(t, err, "CF_SERVER_PORT must be an integer")
	})

	t.Run("boolean", func(t *testing.T) {
		t.Setenv("CF_SEED_ENABLED", "maybe")
		_, err := Load(Test, dir)
		assert.ErrorContains(t, err, "CF_SEED_ENABLED must be a boolean")
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("staging", t.TempDir())
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoad_DemoUsers(t *testing.T) {
	dir := writeConfig(t, Development, `
seed:
  enabled: true
  demoUsers:
    - id: demo
      email: demo@example.com
      firstName: Demo
      password: pass
`)

	cfg, err := Load(Development, dir)
	require.NoError(t, err)
	require.Len(t, cfg.Seed.DemoUsers, 1)
	assert.Equal(t, DemoUserConfig{ID: "demo", Email: "demo@example.com", FirstName: "Demo", Password: "pass"}, cfg.Seed.DemoUsers[0])
}

func TestLoad_ShippedConfigs(t *testing.T) {
	for _, env := range []string{Development, Test, Production} {
		t.Run(env, func(t *testing.T) {
			cfg, err := Load(env, "../../../configs")
			require.NoError(t, err)
			assert.Equal(t, env, cfg.Environment)
			assert.NotZero(t, cfg.Server.Port)
			assert.NotEmpty(t, cfg.Database.Driver)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CF_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("CF_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}
