package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 16, cfg.LLM.Concurrency)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.LLM.CacheEnabled)
	assert.InDelta(t, 0.2, cfg.LLM.CacheTemperatureThreshold, 1e-9)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.Queue.HeartbeatInterval)
	assert.Equal(t, 5*time.Minute, cfg.Queue.StallThreshold)

	assert.Equal(t, 3, cfg.Content.LessonParallelism)
	assert.Equal(t, 30*time.Minute, cfg.Content.SyncUnitTimeout)
	assert.Equal(t, "dall-e-3", cfg.Content.ImageModel)
	assert.Equal(t, 8000, cfg.HTTP.Port)
}

func TestInitialize_YAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
llm:
  model: gpt-4o
  max_retries: 0
  concurrency: 4
content:
  lesson_parallelism: 8
  podcast_voice: nova
queue:
  worker_count: 7
  max_concurrent_units: 7
http:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 0, cfg.LLM.MaxRetries, "explicit zero must survive the merge")
	assert.Equal(t, 4, cfg.LLM.Concurrency)
	assert.Equal(t, 8, cfg.Content.LessonParallelism)
	assert.Equal(t, "nova", cfg.Content.PodcastVoice)
	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 9090, cfg.HTTP.Port)

	// Unset values keep their defaults.
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_MODEL_DEFAULT", "gpt-4.1")
	t.Setenv("LLM_MAX_RETRIES", "5")
	t.Setenv("LLM_CONCURRENCY", "2")
	t.Setenv("LESSON_PARALLELISM", "6")
	t.Setenv("STALL_TIMEOUT_SECONDS", "600")
	t.Setenv("OBJECT_STORE_BUCKET", "deeplearn-media")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
	assert.Equal(t, 2, cfg.LLM.Concurrency)
	assert.Equal(t, 6, cfg.Content.LessonParallelism)
	assert.Equal(t, 10*time.Minute, cfg.Queue.StallThreshold)
	assert.Equal(t, "deeplearn-media", cfg.ObjectStore.Bucket)
}

func TestInitialize_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := "llm:\n  model: from-yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))
	t.Setenv("LLM_MODEL_DEFAULT", "from-env")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.Model, "env must win over YAML")
}

func TestInitialize_NonNumericEnvFails(t *testing.T) {
	t.Setenv("LESSON_PARALLELISM", "many")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LESSON_PARALLELISM")
}

func TestInitialize_LessonParallelismClamped(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"below minimum", "0", MinLessonParallelism},
		{"above maximum", "64", MaxLessonParallelism},
		{"in range", "12", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LESSON_PARALLELISM", tt.env)
			cfg, err := Initialize(context.Background(), t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Content.LessonParallelism)
		})
	}
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("llm: [broken"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_BUCKET", "media-bucket")

	out := ExpandEnv([]byte("object_store:\n  bucket: {{.TEST_BUCKET}}\n"))
	assert.Contains(t, string(out), "bucket: media-bucket")

	// Literal $ is preserved.
	out = ExpandEnv([]byte("password: p@ss$word"))
	assert.Equal(t, "password: p@ss$word", string(out))
}
