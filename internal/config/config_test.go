package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POLICYDESK_STORE", "memory")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 1, cfg.Workers.PaymentNotices)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, 5.0, cfg.Quotes.RatePerSecond)
	assert.Equal(t, 10, cfg.Quotes.Burst)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Error(t, cfg.RequireSecret())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("POLICYDESK_DATABASE_URL", "postgres://localhost/policydesk")
	t.Setenv("POLICYDESK_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("POLICYDESK_WORKERS_POLL_INTERVAL", "2s")
	t.Setenv("POLICYDESK_LOG_FORMAT", "json")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "postgres://localhost/policydesk", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.RequireSecret())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policydesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store: memory
listen_addr: ":9090"
quotes:
  rate_per_second: 1.5
  burst: 3
`), 0o600))
	t.Setenv("POLICYDESK_LISTEN_ADDR", ":7070")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr, "environment wins over the file")
	assert.Equal(t, 1.5, cfg.Quotes.RatePerSecond)
	assert.Equal(t, 3, cfg.Quotes.Burst)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{}},
		{"unknown store", map[string]string{"POLICYDESK_STORE": "redis"}},
		{"negative workers", map[string]string{"POLICYDESK_STORE": "memory", "POLICYDESK_WORKERS_PAYMENT_NOTICES": "-1"}},
		{"bad log format", map[string]string{"POLICYDESK_STORE": "memory", "POLICYDESK_LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_FlagsOverride(t *testing.T) {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.String("store", "", "")
	fs.String("listen", "", "")
	require.NoError(t, fs.Parse([]string{"--store=memory"}))

	cfg, err := Load("", fs)
	require.NoError(t, err, "memory store needs no database url")
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, ":8080", cfg.ListenAddr, "unset flags keep lower layers")
}
