package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  env: test
  port: 8080
database:
  driver: sqlite
  url: "file:cfg?mode=memory"
identity:
  dev_secret: file-secret
workers:
  deletion_sweep_interval: 30s
`)
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "key-from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, EnvTest, cfg.Server.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file-secret", cfg.Identity.DevSecret)
	assert.Equal(t, "key-from-env", cfg.AI.GeminiAPIKey)
	assert.Equal(t, 30*time.Second, cfg.Workers.DeletionSweepInterval)

	// Значения по умолчанию сохраняются
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxResumeSize)
	assert.Equal(t, "https://api.beyondpresence.com/v1", cfg.Meeting.APIURL)
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	t.Setenv("IDENTITY_DEV_SECRET", "s")
	t.Setenv("NODE_ENV", "development")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_BrokenYAML(t *testing.T) {
	path := writeConfig(t, "server: [oops")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("production requires project id and webhook secret", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Env = EnvProduction
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "project_id")
		assert.Contains(t, err.Error(), "webhook.secret")
	})

	t.Run("production rejects dev secret", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Env = EnvProduction
		cfg.Identity.ProjectID = "p"
		cfg.Identity.DevSecret = "s"
		cfg.Webhook.Secret = "w"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dev_secret")
	})

	t.Run("unknown driver and env", func(t *testing.T) {
		cfg := Default()
		cfg.Identity.DevSecret = "s"
		cfg.Database.Driver = "oracle"
		cfg.Server.Env = "staging"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "oracle")
		assert.Contains(t, err.Error(), "staging")
	})

	t.Run("valid development", func(t *testing.T) {
		cfg := Default()
		cfg.Identity.DevSecret = "s"
		assert.NoError(t, cfg.Validate())
	})
}
