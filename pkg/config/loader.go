package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional overrides file looked up in the config dir.
const ConfigFileName = "deeplearn.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Merge deeplearn.yaml from configDir (if present), env-expanded
//  3. Apply environment variable overrides
//  4. Resolve into runtime types (durations, clamps)
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_provider", cfg.LLM.Provider,
		"llm_model", cfg.LLM.Model,
		"workers", cfg.Queue.WorkerCount,
		"lesson_parallelism", cfg.Content.LessonParallelism)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	fc := defaultFileConfig()

	user, err := loadYAML(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}
	if user != nil {
		if err := mergo.Merge(fc, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", ConfigFileName, err)
		}
	}

	if err := applyEnvOverrides(fc); err != nil {
		return nil, err
	}

	return resolve(fc), nil
}

// loadYAML reads and parses the overrides file. A missing file is not an
// error; everything then comes from defaults and the environment.
func loadYAML(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("No config file found, using defaults", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	expanded := ExpandEnv(data)

	var fc fileConfig
	if err := yaml.Unmarshal(expanded, &fc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &fc, nil
}

// applyEnvOverrides applies the well-known environment variables on top of
// the merged file config. Non-numeric values for numeric variables are
// startup errors, not silent fallbacks.
func applyEnvOverrides(fc *fileConfig) error {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		fc.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL_DEFAULT"); v != "" {
		fc.LLM.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		fc.LLM.BaseURL = v
	}
	if v := os.Getenv("OBJECT_STORE_BUCKET"); v != "" {
		fc.ObjectStore.Bucket = v
	}
	if v := os.Getenv("OBJECT_STORE_REGION"); v != "" {
		fc.ObjectStore.Region = v
	}
	if v := os.Getenv("OBJECT_STORE_ENDPOINT"); v != "" {
		fc.ObjectStore.Endpoint = v
	}

	intVars := []struct {
		name  string
		apply func(int)
	}{
		{"LLM_MAX_RETRIES", func(n int) { fc.LLM.MaxRetries = &n }},
		{"LLM_CONCURRENCY", func(n int) { fc.LLM.Concurrency = n }},
		{"LLM_TIMEOUT_SECONDS", func(n int) { fc.LLM.TimeoutSeconds = n }},
		{"LESSON_PARALLELISM", func(n int) { fc.Content.LessonParallelism = n }},
		{"STALL_TIMEOUT_SECONDS", func(n int) { fc.Queue.StallTimeoutSeconds = n }},
		{"QUEUE_WORKER_COUNT", func(n int) { fc.Queue.WorkerCount = n }},
		{"PORT", func(n int) { fc.HTTP.Port = n }},
	}
	for _, ev := range intVars {
		v := os.Getenv(ev.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return NewValidationError(ev.name, fmt.Sprintf("must be an integer, got %q", v))
		}
		ev.apply(n)
	}
	return nil
}

// resolve converts the file-shaped config into runtime types. Out-of-range
// lesson parallelism is clamped with a warning rather than rejected.
func resolve(fc *fileConfig) *Config {
	cfg := &Config{
		LLM: LLMConfig{
			Provider:        fc.LLM.Provider,
			Model:           fc.LLM.Model,
			APIKeyEnv:       fc.LLM.APIKeyEnv,
			BaseURL:         fc.LLM.BaseURL,
			Concurrency:     fc.LLM.Concurrency,
			Timeout:         time.Duration(fc.LLM.TimeoutSeconds) * time.Second,
			CacheMaxEntries: fc.LLM.CacheMaxEntries,
		},
		Queue: QueueConfig{
			WorkerCount:             fc.Queue.WorkerCount,
			MaxConcurrentUnits:      fc.Queue.MaxConcurrentUnits,
			PollInterval:            time.Duration(fc.Queue.PollIntervalMillis) * time.Millisecond,
			PollIntervalJitter:      time.Duration(fc.Queue.PollIntervalJitterMillis) * time.Millisecond,
			UnitTimeout:             time.Duration(fc.Queue.UnitTimeoutSeconds) * time.Second,
			GracefulShutdownTimeout: time.Duration(fc.Queue.GracefulShutdownTimeoutSeconds) * time.Second,
			HeartbeatInterval:       time.Duration(fc.Queue.HeartbeatIntervalSeconds) * time.Second,
			StallDetectionInterval:  time.Duration(fc.Queue.StallDetectionIntervalSeconds) * time.Second,
			StallThreshold:          time.Duration(fc.Queue.StallTimeoutSeconds) * time.Second,
		},
		Content: ContentConfig{
			LessonParallelism:  fc.Content.LessonParallelism,
			SyncUnitTimeout:    time.Duration(fc.Content.SyncUnitTimeoutSeconds) * time.Second,
			DefaultLessonCount: fc.Content.DefaultLessonCount,
			ImageModel:         fc.Content.ImageModel,
			AudioModel:         fc.Content.AudioModel,
			PodcastVoice:       fc.Content.PodcastVoice,
		},
		HTTP: HTTPConfig{
			Port: fc.HTTP.Port,
		},
		ObjectStore: ObjectStoreConfig{
			Bucket:   fc.ObjectStore.Bucket,
			Region:   fc.ObjectStore.Region,
			Endpoint: fc.ObjectStore.Endpoint,
		},
	}

	if fc.LLM.MaxRetries != nil {
		cfg.LLM.MaxRetries = *fc.LLM.MaxRetries
	}
	if fc.LLM.CacheEnabled != nil {
		cfg.LLM.CacheEnabled = *fc.LLM.CacheEnabled
	}
	if fc.LLM.CacheTemperatureThreshold != nil {
		cfg.LLM.CacheTemperatureThreshold = *fc.LLM.CacheTemperatureThreshold
	}
	if fc.Content.MediaEnabled != nil {
		cfg.Content.MediaEnabled = *fc.Content.MediaEnabled
	}
	if fc.ObjectStore.UsePathStyle != nil {
		cfg.ObjectStore.UsePathStyle = *fc.ObjectStore.UsePathStyle
	}

	if cfg.Content.LessonParallelism < MinLessonParallelism {
		slog.Warn("lesson_parallelism below minimum, clamping",
			"requested", cfg.Content.LessonParallelism, "min", MinLessonParallelism)
		cfg.Content.LessonParallelism = MinLessonParallelism
	}
	if cfg.Content.LessonParallelism > MaxLessonParallelism {
		slog.Warn("lesson_parallelism above maximum, clamping",
			"requested", cfg.Content.LessonParallelism, "max", MaxLessonParallelism)
		cfg.Content.LessonParallelism = MaxLessonParallelism
	}

	return cfg
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}
