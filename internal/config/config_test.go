package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SCHOLARSHIPS_CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, TransportHTTP, cfg.Transport.Mode)
	require.Equal(t, ProviderNone, cfg.Generator.Provider)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
log:
  level: debug
records:
  catalog: compact
generator:
  provider: genai
  api_key: from-file
  timeout: 5s
calendar:
  upcoming_days: 14
`), 0o600))

	t.Setenv("SCHOLARSHIPS_CONFIG_PATH", path)
	t.Setenv("SCHOLARSHIPS_SERVER_PORT", "9191")
	t.Setenv("SCHOLARSHIPS_TRANSPORT", "stdio")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "compact", cfg.Records.Catalog)
	require.Equal(t, ProviderGenAI, cfg.Generator.Provider)
	require.Equal(t, "from-file", cfg.Generator.APIKey)
	require.Equal(t, 5*time.Second, cfg.Generator.Timeout)
	require.Equal(t, 14, cfg.Calendar.UpcomingDays)
	require.Equal(t, TransportStdio, cfg.Transport.Mode)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("SCHOLARSHIPS_SERVER_PORT", "eighty")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("SCHOLARSHIPS_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"transport":     func(c *Config) { c.Transport.Mode = "grpc" },
		"provider":      func(c *Config) { c.Generator.Provider = "openai" },
		"genai key":     func(c *Config) { c.Generator.Provider = ProviderGenAI },
		"timeout":       func(c *Config) { c.Generator.Timeout = -time.Second },
		"port":          func(c *Config) { c.Server.Port = 70000 },
		"upcoming days": func(c *Config) { c.Calendar.UpcomingDays = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	require.NoError(t, Default().Validate())
}
