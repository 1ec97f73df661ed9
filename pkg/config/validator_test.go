package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a resolved default config for mutation in tests.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := load(context.Background(), t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.LLM.Provider = "anthropic" },
			wantErr: true,
			errMsg:  "unknown provider",
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.LLM.Model = "" },
			wantErr: true,
			errMsg:  "llm.model",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.LLM.MaxRetries = -1 },
			wantErr: true,
			errMsg:  "max_retries",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.LLM.Concurrency = 0 },
			wantErr: true,
			errMsg:  "concurrency",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: true,
			errMsg:  "worker_count",
		},
		{
			name:    "jitter not below poll interval",
			mutate:  func(c *Config) { c.Queue.PollIntervalJitter = c.Queue.PollInterval },
			wantErr: true,
			errMsg:  "poll_interval_jitter_ms must be less than poll_interval_ms",
		},
		{
			name:    "stall threshold below twice heartbeat",
			mutate:  func(c *Config) { c.Queue.StallThreshold = c.Queue.HeartbeatInterval },
			wantErr: true,
			errMsg:  "stall_timeout_seconds",
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.HTTP.Port = 0 },
			wantErr: true,
			errMsg:  "http.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
